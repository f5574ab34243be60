package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/database"
)

func ExistsByEmail(email string) bool {
	var count int64
	database.DB.Model(&User{}).Where("email = ?", email).Count(&count)
	return count > 0
}

func ExistsByUsername(username string) bool {
	var count int64
	database.DB.Model(&User{}).Where("username = ?", username).Count(&count)
	return count > 0
}

// ByUsername returns gorm.ErrRecordNotFound when no such account exists.
func ByUsername(username string) (User, error) {
	var u User
	err := database.DB.Where("username = ?", username).First(&u).Error
	return u, err
}

func ByID(id string) (User, error) {
	var u User
	err := database.DB.First(&u, "id = ?", id).Error
	return u, err
}

// IsAdmin reports whether the account with the given ID is an administrator.
func IsAdmin(userID string) (bool, error) {
	var isAdmin bool
	if err := database.DB.Model(&User{}).Select("is_admin").Where("id = ?", userID).Scan(&isAdmin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return isAdmin, nil
}

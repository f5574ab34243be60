package utils

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/database"
)

// Follow mirrors the follows table so packages that the follow package
// depends on can still query it without an import cycle.
type Follow struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    string
	AuthorID  string
}

// IsFollowing reports whether userID has a follow edge to authorID.
func IsFollowing(userID, authorID string) (bool, error) {
	var follow Follow
	err := database.DB.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		First(&follow).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

package post

import (
	"time"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/group"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/user"
)

type Post struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	Text      string `gorm:"not null"`
	ImageURL  string
	UserID    string
	User      user.User `gorm:"foreignKey:UserID"`
	GroupID   *string
	Group     *group.Group `gorm:"foreignKey:GroupID"`
}

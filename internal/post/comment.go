package post

import (
	"time"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/database"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/user"
)

type Comment struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	Text      string `gorm:"not null"`
	PostID    string `gorm:"index"`
	UserID    string
	User      user.User `gorm:"foreignKey:UserID"`
}

// CommentsFor returns a post's comments oldest first.
func CommentsFor(postID string) ([]Comment, error) {
	var comments []Comment
	err := database.DB.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at").
		Find(&comments).Error
	return comments, err
}

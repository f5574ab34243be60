package follow

import (
	"time"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/user"
)

// Follow is a directed edge: UserID follows AuthorID. The composite unique
// index is the only thing preventing duplicate edges under concurrent
// requests; handlers treat its violation as a benign no-op.
type Follow struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    string    `gorm:"uniqueIndex:idx_user_author"`
	User      user.User `gorm:"foreignKey:UserID"`
	AuthorID  string    `gorm:"uniqueIndex:idx_user_author"`
	Author    user.User `gorm:"foreignKey:AuthorID"`
}

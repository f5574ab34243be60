package post

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/database"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/group"
)

// PostForm binds untrusted form input for post create/edit. GroupID is the
// optional group reference; an empty value means "no group".
type PostForm struct {
	Text    string
	GroupID string
	Errors  map[string]string
}

func BindPostForm(c *gin.Context) *PostForm {
	return &PostForm{
		Text:    c.PostForm("text"),
		GroupID: c.PostForm("group"),
		Errors:  map[string]string{},
	}
}

// Valid checks field constraints. Nothing is persisted when it returns false.
func (f *PostForm) Valid() bool {
	if strings.TrimSpace(f.Text) == "" {
		f.Errors["text"] = "Text is required."
	}
	if f.GroupID != "" {
		var g group.Group
		err := database.DB.First(&g, "id = ?", f.GroupID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			f.Errors["group"] = "Unknown group."
		} else if err != nil {
			f.Errors["group"] = "Could not verify group."
		}
	}
	return len(f.Errors) == 0
}

func (f *PostForm) GroupRef() *string {
	if f.GroupID == "" {
		return nil
	}
	id := f.GroupID
	return &id
}

type CommentForm struct {
	Text   string
	Errors map[string]string
}

func BindCommentForm(c *gin.Context) *CommentForm {
	return &CommentForm{
		Text:   c.PostForm("text"),
		Errors: map[string]string{},
	}
}

func (f *CommentForm) Valid() bool {
	if strings.TrimSpace(f.Text) == "" {
		f.Errors["text"] = "Text is required."
	}
	return len(f.Errors) == 0
}

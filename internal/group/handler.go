package group

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/database"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/logs"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// BySlug returns gorm.ErrRecordNotFound when no group carries the slug.
func BySlug(slug string) (Group, error) {
	var g Group
	err := database.DB.Where("slug = ?", slug).First(&g).Error
	return g, err
}

func All() ([]Group, error) {
	var groups []Group
	err := database.DB.Order("title").Find(&groups).Error
	return groups, err
}

// CreateGroup POST /api/admin/groups
//
// Groups are created by administrators only; there is no end-user surface
// for creating or editing them.
func CreateGroup(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var input struct {
		Title       string `json:"title" binding:"required"`
		Slug        string `json:"slug" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and slug are required"})
		return
	}

	if !slugPattern.MatchString(input.Slug) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug must contain only lowercase letters, digits, '-' and '_'"})
		return
	}

	newGroup := Group{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now(),
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
	}

	if err := database.DB.Create(&newGroup).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create group"})
		logs.LogJSON("ERROR", "Error creating group", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"slug":   input.Slug,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"group": newGroup})
	logs.LogJSON("INFO", "Group created", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"slug":   newGroup.Slug,
	})
}

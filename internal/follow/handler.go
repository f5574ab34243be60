package follow

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/database"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/logs"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/post"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/user"
)

// ProfileFollow GET /profile/:username/follow/
//
// Self-follow and repeated follow both land on the profile page without
// creating anything; the duplicate case is decided by the DB constraint,
// not by a pre-check, so two racing requests cannot both insert.
func ProfileFollow(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	author, err := user.ByUsername(c.Param("username"))
	if err != nil {
		notFound(c)
		return
	}

	redirectTarget := "/profile/" + author.Username + "/"
	if author.ID == userID {
		c.Redirect(http.StatusFound, redirectTarget)
		return
	}

	newFollow := Follow{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		UserID:    userID,
		AuthorID:  author.ID,
	}
	if err := database.DB.Create(&newFollow).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			logs.LogJSON("ERROR", "Error adding follow", map[string]interface{}{
				"error":    err.Error(),
				"route":    route,
				"userID":   userID,
				"authorID": author.ID,
			})
		}
		// Already following: idempotent, fall through to the redirect.
		c.Redirect(http.StatusFound, redirectTarget)
		return
	}

	logs.LogJSON("INFO", "Followed author", map[string]interface{}{
		"route":    route,
		"userID":   userID,
		"authorID": author.ID,
	})
	c.Redirect(http.StatusFound, redirectTarget)
}

// ProfileUnfollow GET /profile/:username/unfollow/
//
// Unfollowing someone you do not follow is a 404, not a silent no-op.
func ProfileUnfollow(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	username := c.Param("username")

	var edge Follow
	err := database.DB.
		Joins("JOIN users ON users.id = follows.author_id").
		Where("follows.user_id = ? AND users.username = ?", userID, username).
		First(&edge).Error
	if err != nil {
		notFound(c)
		return
	}

	if err := database.DB.Delete(&edge).Error; err != nil {
		logs.LogJSON("ERROR", "Error removing follow", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
		return
	}

	logs.LogJSON("INFO", "Unfollowed author", map[string]interface{}{
		"route":    route,
		"userID":   userID,
		"authorID": edge.AuthorID,
	})
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}

// FollowIndex GET /follow/
//
// One merged feed of every followed author's posts, ordered by the global
// post ordering rather than interleaved per author.
func FollowIndex(c *gin.Context) {
	userID := c.GetString("user_id")

	query := database.DB.Model(&post.Post{}).
		Where("user_id IN (?)", database.DB.Model(&Follow{}).
			Select("author_id").
			Where("follows.user_id = ?", userID))

	posts, page, err := post.Feed(c, query)
	if err != nil {
		logs.LogJSON("ERROR", "Error fetching follow feed", map[string]interface{}{
			"error":  err.Error(),
			"route":  c.FullPath(),
			"userID": userID,
		})
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "follow.html", gin.H{
		"posts":    posts,
		"page_obj": page,
	})
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{"path": c.Request.URL.Path})
}

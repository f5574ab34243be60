package post

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/database"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/user"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/utils"
)

// Profile GET /profile/:username/
//
// Lives in the post package (not user) because it is a post listing; the
// user package cannot import post without a cycle.
func Profile(c *gin.Context) {
	author, err := user.ByUsername(c.Param("username"))
	if err != nil {
		notFound(c)
		return
	}

	posts, page, err := Feed(c, database.DB.Model(&Post{}).Where("user_id = ?", author.ID))
	if err != nil {
		serverError(c, "Error fetching profile feed", err)
		return
	}

	// The follow button state: false for anonymous viewers and for the
	// author looking at their own page.
	following := false
	viewerID := c.GetString("user_id")
	if viewerID != "" && viewerID != author.ID {
		following, err = utils.IsFollowing(viewerID, author.ID)
		if err != nil {
			serverError(c, "Error checking follow state", err)
			return
		}
	}

	var followersCount int64
	database.DB.Model(&utils.Follow{}).Where("author_id = ?", author.ID).Count(&followersCount)

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"author":          author,
		"posts":           posts,
		"page_obj":        page,
		"following":       following,
		"followers_count": followersCount,
		"is_self":         viewerID == author.ID,
	})
}

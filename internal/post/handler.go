package post

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/database"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/group"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/logs"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/pagination"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/storage"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/user"
)

// PostsOnPage is the fixed page size shared by every post listing.
// Overwritten from config at startup.
var PostsOnPage = 10

var validImageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
	".gif": true, ".webp": true,
}

// Feed returns the post listing for query, newest first, windowed to the
// requested ?page=.
func Feed(c *gin.Context, query *gorm.DB) ([]Post, pagination.Page, error) {
	var posts []Post
	page, err := pagination.Paginate(
		query.Preload("User").Preload("Group").Order("created_at DESC, id"),
		&posts,
		c.Query("page"),
		PostsOnPage,
	)
	return posts, page, err
}

// Index GET /
func Index(c *gin.Context) {
	posts, page, err := Feed(c, database.DB.Model(&Post{}))
	if err != nil {
		serverError(c, "Error fetching index feed", err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"posts":    posts,
		"page_obj": page,
	})
}

// GroupList GET /group/:slug/
func GroupList(c *gin.Context) {
	g, err := group.BySlug(c.Param("slug"))
	if err != nil {
		notFound(c)
		return
	}

	posts, page, err := Feed(c, database.DB.Model(&Post{}).Where("group_id = ?", g.ID))
	if err != nil {
		serverError(c, "Error fetching group feed", err)
		return
	}
	c.HTML(http.StatusOK, "group_list.html", gin.H{
		"group":    g,
		"posts":    posts,
		"page_obj": page,
	})
}

// PostDetail GET /posts/:id/
func PostDetail(c *gin.Context) {
	p, err := byID(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	comments, err := CommentsFor(p.ID)
	if err != nil {
		serverError(c, "Error fetching comments", err)
		return
	}

	c.HTML(http.StatusOK, "post_detail.html", gin.H{
		"post":     p,
		"comments": comments,
		"form":     &CommentForm{Errors: map[string]string{}},
	})
}

// PostCreatePage GET /create/
func PostCreatePage(c *gin.Context) {
	groups, _ := group.All()
	c.HTML(http.StatusOK, "create_post.html", gin.H{
		"form":   &PostForm{Errors: map[string]string{}},
		"groups": groups,
	})
}

// PostCreate POST /create/
func PostCreate(c *gin.Context) {
	userID := c.GetString("user_id")

	author, err := user.ByID(userID)
	if err != nil {
		notFound(c)
		return
	}

	// Validate before touching storage so an invalid form never leaves
	// an orphaned upload behind.
	form := BindPostForm(c)
	if !form.Valid() {
		groups, _ := group.All()
		c.HTML(http.StatusOK, "create_post.html", gin.H{
			"form":   form,
			"groups": groups,
		})
		return
	}

	imageURL, imageErr := saveImage(c)
	if imageErr != "" {
		form.Errors["image"] = imageErr
		groups, _ := group.All()
		c.HTML(http.StatusOK, "create_post.html", gin.H{
			"form":   form,
			"groups": groups,
		})
		return
	}

	newPost := Post{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Text:      form.Text,
		ImageURL:  imageURL,
		UserID:    author.ID,
		GroupID:   form.GroupRef(),
	}
	if err := database.DB.Create(&newPost).Error; err != nil {
		// The image is already in S3; clean it up so the failed insert
		// does not leak an object.
		if key := imageKey(imageURL); key != "" {
			_ = storage.DeleteFromS3(key)
		}
		serverError(c, "Error creating post", err)
		return
	}

	logs.LogJSON("INFO", "Post created", map[string]interface{}{
		"route":  c.FullPath(),
		"userID": author.ID,
		"postID": newPost.ID,
	})
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

// PostEditPage GET /posts/:id/edit/
func PostEditPage(c *gin.Context) {
	p, err := byID(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}
	if p.UserID != c.GetString("user_id") {
		c.Redirect(http.StatusFound, "/posts/"+p.ID+"/")
		return
	}

	groups, _ := group.All()
	form := &PostForm{Text: p.Text, Errors: map[string]string{}}
	if p.GroupID != nil {
		form.GroupID = *p.GroupID
	}
	c.HTML(http.StatusOK, "create_post.html", gin.H{
		"form":    form,
		"groups":  groups,
		"is_edit": true,
		"post":    p,
	})
}

// PostEdit POST /posts/:id/edit/
//
// A non-author lands back on the post detail page with nothing changed.
// That is a silent denial, not an error page.
func PostEdit(c *gin.Context) {
	p, err := byID(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}
	if p.UserID != c.GetString("user_id") {
		c.Redirect(http.StatusFound, "/posts/"+p.ID+"/")
		return
	}

	form := BindPostForm(c)
	if !form.Valid() {
		groups, _ := group.All()
		c.HTML(http.StatusOK, "create_post.html", gin.H{
			"form":    form,
			"groups":  groups,
			"is_edit": true,
			"post":    p,
		})
		return
	}

	imageURL, imageErr := saveImage(c)
	if imageErr != "" {
		form.Errors["image"] = imageErr
		groups, _ := group.All()
		c.HTML(http.StatusOK, "create_post.html", gin.H{
			"form":    form,
			"groups":  groups,
			"is_edit": true,
			"post":    p,
		})
		return
	}

	updates := map[string]interface{}{
		"text":     form.Text,
		"group_id": form.GroupRef(),
	}
	if imageURL != "" {
		updates["image_url"] = imageURL
	}
	oldImageURL := p.ImageURL
	if err := database.DB.Model(&p).Updates(updates).Error; err != nil {
		serverError(c, "Error updating post", err)
		return
	}
	if imageURL != "" && oldImageURL != "" {
		// The post now points at the new upload; drop the replaced object.
		if key := imageKey(oldImageURL); key != "" {
			if err := storage.DeleteFromS3(key); err != nil {
				logs.LogJSON("WARN", "Error deleting replaced image", map[string]interface{}{
					"route":  c.FullPath(),
					"postID": p.ID,
					"error":  err.Error(),
				})
			}
		}
	}

	logs.LogJSON("INFO", "Post updated", map[string]interface{}{
		"route":  c.FullPath(),
		"userID": p.UserID,
		"postID": p.ID,
	})
	c.Redirect(http.StatusFound, "/posts/"+p.ID+"/")
}

// AddComment POST /posts/:id/comment/
func AddComment(c *gin.Context) {
	p, err := byID(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	form := BindCommentForm(c)
	if !form.Valid() {
		comments, _ := CommentsFor(p.ID)
		c.HTML(http.StatusOK, "post_detail.html", gin.H{
			"post":     p,
			"comments": comments,
			"form":     form,
		})
		return
	}

	comment := Comment{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Text:      form.Text,
		PostID:    p.ID,
		UserID:    c.GetString("user_id"),
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		serverError(c, "Error creating comment", err)
		return
	}

	c.Redirect(http.StatusFound, "/posts/"+p.ID+"/")
}

func byID(id string) (Post, error) {
	var p Post
	err := database.DB.Preload("User").Preload("Group").First(&p, "id = ?", id).Error
	return p, err
}

// saveImage uploads the optional "image" form file and returns its public
// URL. The second return value is a form error message, empty when fine.
func saveImage(c *gin.Context) (string, string) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		// No file attached: the image field is optional.
		return "", ""
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !validImageExtensions[ext] {
		return "", "Unsupported image type."
	}
	if !storage.Enabled() {
		return "", "Image uploads are not available."
	}

	filename := fmt.Sprintf("post_%s%s", uuid.New().String(), ext)
	url, err := storage.UploadToS3(file, filename, header.Header.Get("Content-Type"), "posts")
	if err != nil {
		return "", "Image upload failed."
	}
	return url, ""
}

// imageKey extracts the S3 object key from a public image URL.
func imageKey(url string) string {
	parts := strings.Split(url, ".amazonaws.com/")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{"path": c.Request.URL.Path})
}

func serverError(c *gin.Context, message string, err error) {
	logs.LogJSON("ERROR", message, map[string]interface{}{
		"error": err.Error(),
		"route": c.FullPath(),
	})
	c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
}

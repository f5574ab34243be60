package router

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/auth"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/cache"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/config"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/follow"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/group"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/middleware"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/post"
	"github.com/Maxim-Smirnov-1998/hw05-final/web"
)

// New assembles the whole HTTP surface. Tests build the app through this
// same function so routing, middleware and templates match production.
func New(cfg *config.Config, store cache.Store) *gin.Engine {
	post.PostsOnPage = cfg.PostsOnPage

	r := gin.Default()
	r.SetHTMLTemplate(template.Must(
		template.New("").Funcs(templateFuncs).ParseFS(web.Templates, "templates/*.html"),
	))

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"path": c.Request.URL.Path})
	})

	// Public pages. Optional auth resolves the viewer for follow-state
	// rendering; the index response is cached whole for cfg.CacheTTL.
	public := r.Group("/", middleware.OptionalAuthMiddleware())
	public.GET("/", cache.Page(store, cfg.CacheTTL), post.Index)
	public.GET("/group/:slug/", post.GroupList)
	public.GET("/profile/:username/", post.Profile)
	public.GET("/posts/:id/", post.PostDetail)

	r.GET("/auth/signup/", auth.SignupPage)
	r.POST("/auth/signup/", auth.Signup)
	r.GET("/auth/login/", auth.LoginPage)
	r.POST("/auth/login/", auth.Login)
	r.GET("/auth/logout/", auth.Logout)

	// Pages behind a session. Anonymous requests bounce to the login page
	// with ?next= preserved.
	private := r.Group("/", middleware.AuthMiddleware())
	private.GET("/create/", post.PostCreatePage)
	private.POST("/create/", post.PostCreate)
	private.GET("/posts/:id/edit/", post.PostEditPage)
	private.POST("/posts/:id/edit/", post.PostEdit)
	private.POST("/posts/:id/comment/", post.AddComment)
	private.GET("/follow/", follow.FollowIndex)
	private.GET("/profile/:username/follow/", follow.ProfileFollow)
	private.GET("/profile/:username/unfollow/", follow.ProfileUnfollow)

	admin := r.Group("/api/admin", middleware.AuthMiddleware(), middleware.AdminOnlyMiddleware())
	admin.POST("/groups", group.CreateGroup)

	return r
}

// Package testutil assembles the app against an in-memory database so
// handler tests exercise the same routing and middleware as production.
package testutil

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/auth"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/cache"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/config"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/database"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/follow"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/group"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/post"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/router"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/user"
)

// SetupDB swaps database.DB for a fresh in-memory sqlite and restores the
// old handle when the test finishes.
func SetupDB(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.AutoMigrate(
		&user.User{}, &group.Group{}, &post.Post{}, &post.Comment{}, &follow.Follow{},
	); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	originalDB := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = originalDB })
}

// NewRouter builds the full app the way main does, with a page size of 10
// and an in-memory page cache.
func NewRouter(store cache.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if store == nil {
		store = cache.NewMemoryStore()
	}
	cfg := &config.Config{
		PostsOnPage: 10,
		CacheTTL:    time.Minute,
	}
	return router.New(cfg, store)
}

func CreateUser(t *testing.T, username string) user.User {
	t.Helper()
	u := user.User{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Username:  username,
		Email:     username + "@example.com",
	}
	if err := database.DB.Create(&u).Error; err != nil {
		t.Fatalf("creating user %s: %v", username, err)
	}
	return u
}

func CreateGroup(t *testing.T, title, slug string) group.Group {
	t.Helper()
	g := group.Group{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Title:     title,
		Slug:      slug,
	}
	if err := database.DB.Create(&g).Error; err != nil {
		t.Fatalf("creating group %s: %v", slug, err)
	}
	return g
}

func CreatePost(t *testing.T, author user.User, text string, groupID *string) post.Post {
	t.Helper()
	p := post.Post{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Text:      text,
		UserID:    author.ID,
		GroupID:   groupID,
	}
	if err := database.DB.Create(&p).Error; err != nil {
		t.Fatalf("creating post: %v", err)
	}
	return p
}

// SessionCookie returns a logged-in session cookie for u.
func SessionCookie(t *testing.T, u user.User) *http.Cookie {
	t.Helper()
	token, err := auth.IssueToken(u.ID)
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}
	return &http.Cookie{Name: auth.SessionCookie, Value: token}
}

// Get performs a GET as u; pass a zero user.User for an anonymous request.
func Get(r *gin.Engine, t *testing.T, path string, u user.User) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if u.ID != "" {
		req.AddCookie(SessionCookie(t, u))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// PostMultipart performs a multipart POST as u with form fields and one
// attached file.
func PostMultipart(r *gin.Engine, t *testing.T, path string, u user.User, fields map[string]string, fileField, fileName string, fileBody []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("writing field %s: %v", k, err)
		}
	}
	part, err := mw.CreateFormFile(fileField, fileName)
	if err != nil {
		t.Fatalf("attaching file %s: %v", fileName, err)
	}
	if _, err := part.Write(fileBody); err != nil {
		t.Fatalf("writing file body: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if u.ID != "" {
		req.AddCookie(SessionCookie(t, u))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// PostForm performs a urlencoded POST as u.
func PostForm(r *gin.Engine, t *testing.T, path string, u user.User, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if u.ID != "" {
		req.AddCookie(SessionCookie(t, u))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

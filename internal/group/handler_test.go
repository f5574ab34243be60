package group_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/database"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/group"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/testutil"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/user"
)

func postJSON(r *gin.Engine, t *testing.T, path, body string, u user.User) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if u.ID != "" {
		req.AddCookie(testutil.SessionCookie(t, u))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func makeAdmin(t *testing.T, u user.User) {
	t.Helper()
	assert.NoError(t, database.DB.Model(&user.User{}).Where("id = ?", u.ID).Update("is_admin", true).Error)
}

func TestCreateGroupRequiresAdmin(t *testing.T) {
	testutil.SetupDB(t)
	r := testutil.NewRouter(nil)

	regular := testutil.CreateUser(t, "leo")
	w := postJSON(r, t, "/api/admin/groups", `{"title":"Cats","slug":"cats"}`, regular)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	database.DB.Model(&group.Group{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateGroup(t *testing.T) {
	testutil.SetupDB(t)
	r := testutil.NewRouter(nil)

	admin := testutil.CreateUser(t, "root")
	makeAdmin(t, admin)

	w := postJSON(r, t, "/api/admin/groups", `{"title":"Cats","slug":"cats","description":"cat pictures"}`, admin)
	assert.Equal(t, http.StatusCreated, w.Code)

	g, err := group.BySlug("cats")
	assert.NoError(t, err)
	assert.Equal(t, "Cats", g.Title)
}

func TestCreateGroupDuplicateSlug(t *testing.T) {
	testutil.SetupDB(t)
	r := testutil.NewRouter(nil)

	admin := testutil.CreateUser(t, "root")
	makeAdmin(t, admin)

	postJSON(r, t, "/api/admin/groups", `{"title":"Cats","slug":"cats"}`, admin)
	w := postJSON(r, t, "/api/admin/groups", `{"title":"More cats","slug":"cats"}`, admin)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateGroupBadSlug(t *testing.T) {
	testutil.SetupDB(t)
	r := testutil.NewRouter(nil)

	admin := testutil.CreateUser(t, "root")
	makeAdmin(t, admin)

	w := postJSON(r, t, "/api/admin/groups", `{"title":"Cats","slug":"Not A Slug"}`, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGroupListUnknownSlugIs404(t *testing.T) {
	testutil.SetupDB(t)
	r := testutil.NewRouter(nil)

	w := testutil.Get(r, t, "/group/no-such-group/", user.User{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/database"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/logs"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/user"
)

// SignupPage GET /auth/signup/
func SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

// Signup POST /auth/signup/
func Signup(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	formErrors := map[string]string{}
	if username == "" {
		formErrors["username"] = "Username is required."
	} else if user.ExistsByUsername(username) {
		formErrors["username"] = "Username already taken."
	}
	if email == "" {
		formErrors["email"] = "Email is required."
	} else if user.ExistsByEmail(email) {
		formErrors["email"] = "Email already registered."
	}
	if len(password) < 8 {
		formErrors["password"] = "Password must be at least 8 characters."
	}
	if len(formErrors) > 0 {
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"errors":   formErrors,
			"username": username,
			"email":    email,
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
			"errors": map[string]string{"password": "Could not process password."},
		})
		return
	}

	newUser := user.User{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
			"errors": map[string]string{"username": "Could not create account."},
		})
		logs.LogJSON("ERROR", "Error creating account", map[string]interface{}{
			"error":    err.Error(),
			"route":    c.FullPath(),
			"username": username,
		})
		return
	}

	logs.LogJSON("INFO", "Account created", map[string]interface{}{
		"route":  c.FullPath(),
		"userID": newUser.ID,
	})
	c.Redirect(http.StatusFound, "/auth/login/")
}

// LoginPage GET /auth/login/
func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"next": c.Query("next")})
}

// Login POST /auth/login/
func Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	next := c.PostForm("next")

	u, err := user.ByUsername(username)
	if err == nil {
		err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	}
	if err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"errors": map[string]string{"login": "Invalid username or password."},
			"next":   next,
		})
		return
	}

	token, err := IssueToken(u.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"errors": map[string]string{"login": "Could not start a session."},
		})
		logs.LogJSON("ERROR", "Error issuing session token", map[string]interface{}{
			"error":  err.Error(),
			"route":  c.FullPath(),
			"userID": u.ID,
		})
		return
	}

	c.SetCookie(SessionCookie, token, int((7 * 24 * time.Hour).Seconds()), "/", "", false, true)
	logs.LogJSON("INFO", "User logged in", map[string]interface{}{
		"route":  c.FullPath(),
		"userID": u.ID,
	})

	// Only relative targets are honoured, an absolute next would be an
	// open redirect.
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

// Logout GET /auth/logout/
func Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

package middleware

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/auth"
)

// sessionToken pulls the raw JWT from the session cookie, falling back to a
// Bearer header so the JSON admin surface can authenticate the same way.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func verifiedUserID(tokenStr string) (string, error) {
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid claims")
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("missing user id")
	}
	return userID, nil
}

// AuthMiddleware guards the HTML surface: anonymous requests are sent to the
// login page with the original path preserved in ?next=.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := sessionToken(c)
		if tokenStr == "" {
			redirectToLogin(c)
			return
		}

		userID, err := verifiedUserID(tokenStr)
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	target := "/auth/login/?next=" + url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

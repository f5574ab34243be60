package middleware

import (
	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware resolves the viewer's identity when a valid session
// is present and stays silent otherwise. Public pages use it to show
// viewer-dependent state (the follow button on a profile).
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := sessionToken(c)
		if tokenStr == "" {
			c.Next()
			return
		}

		userID, err := verifiedUserID(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const SessionCookie = "session"

// IssueToken signs a week-long HS256 session token for the given account.
func IssueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

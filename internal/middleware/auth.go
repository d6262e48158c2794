package middleware

import (
	"github.com/gin-gonic/gin"

	"notely/internal/pkg/jwt"
	"notely/internal/pkg/response"
)

const (
	ContextUserIDKey  = "user_id"
	SessionCookieName = "token"
)

// SessionAuth verifies the session cookie and attaches the user id to the
// request context. It does not re-check that the user row still exists; a
// deleted user stays authenticated until the token expires.
func SessionAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			response.AuthError(c, "No token provided")
			c.Abort()
			return
		}
		claims, err := jwt.ParseToken(token, secret)
		if err != nil {
			response.AuthError(c, "Invalid token")
			c.Abort()
			return
		}
		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"notely/internal/middleware"
)

// The session cookie is the only transport for the token: HttpOnly keeps it
// away from page scripts, SameSite=Strict from cross-site requests. Secure is
// set only in production so local plain-HTTP development keeps working.
func setSessionCookie(c *gin.Context, token string, maxAge time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, token, int(maxAge.Seconds()), "/", "", secure, true)
}

// clearSessionCookie only removes the client's copy; the token itself stays
// valid until its embedded expiry.
func clearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", secure, true)
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var debug bool

// SetDebug controls whether raw error details are included in 5xx bodies.
// Never enable in production.
func SetDebug(enabled bool) {
	debug = enabled
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func ValidationError(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Validation Error", "error": detail})
}

func AuthError(c *gin.Context, detail string) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed", "error": detail})
}

func ServerError(c *gin.Context, message string, err error) {
	body := gin.H{"message": message}
	if debug && err != nil {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

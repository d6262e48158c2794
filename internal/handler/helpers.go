package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"notely/internal/middleware"
	appErr "notely/internal/pkg/errors"
	"notely/internal/pkg/response"
)

func getUserID(c *gin.Context) string {
	value, _ := c.Get(middleware.ContextUserIDKey)
	userID, _ := value.(string)
	return userID
}

func handleError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case appErr.IsNotFound(err):
		response.Message(c, http.StatusNotFound, "Note not found")
	case appErr.IsConflict(err):
		response.Message(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, appErr.ErrUnauthorized):
		response.Message(c, http.StatusUnauthorized, "Invalid credentials")
	case appErr.IsDatabase(err):
		logError(c, err)
		response.ServerError(c, "Database error occurred", err)
	default:
		logError(c, err)
		response.ServerError(c, "Server error occurred", err)
	}
}

func logError(c *gin.Context, err error) {
	logutil.GetLogger(c.Request.Context()).Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("user_id", getUserID(c)),
		zap.String("request_id", c.GetString("request_id")),
		zap.Error(err),
	)
}

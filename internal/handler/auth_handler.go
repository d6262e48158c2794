package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"notely/internal/middleware"
	appErr "notely/internal/pkg/errors"
	"notely/internal/pkg/jwt"
	"notely/internal/pkg/response"
	"notely/internal/pkg/validation"
	"notely/internal/service"
)

type AuthHandler struct {
	auth       *service.AuthService
	jwtSecret  []byte
	sessionTTL time.Duration
	production bool
}

func NewAuthHandler(auth *service.AuthService, secret []byte, ttl time.Duration, production bool) *AuthHandler {
	return &AuthHandler{auth: auth, jwtSecret: secret, sessionTTL: ttl, production: production}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Valid email is required")
		return
	}
	// Registration accepts any "@"-shaped email; the stricter regex is only
	// applied on login.
	if !strings.Contains(req.Email, "@") {
		response.ValidationError(c, "Valid email is required")
		return
	}
	if len(req.Password) < validation.MinPasswordLength {
		response.ValidationError(c, "Password must be at least 6 characters long")
		return
	}
	user, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	setSessionCookie(c, token, h.sessionTTL, h.production)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    userInfo{ID: user.ID, Email: user.Email},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid email format")
		return
	}
	if !validation.ValidEmail(req.Email) {
		response.Message(c, http.StatusBadRequest, "Invalid email format")
		return
	}
	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	setSessionCookie(c, token, h.sessionTTL, h.production)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    userInfo{ID: user.ID, Email: user.Email},
	})
}

// Check, unlike the note routes, verifies that the user row still exists, so
// a valid token for a deleted user reads as unauthenticated here.
func (h *AuthHandler) Check(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || token == "" {
		response.Message(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	claims, err := jwt.ParseToken(token, h.jwtSecret)
	if err != nil {
		response.Message(c, http.StatusUnauthorized, "Invalid token")
		return
	}
	user, err := h.auth.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		if appErr.IsNotFound(err) {
			response.Message(c, http.StatusUnauthorized, "User not found")
			return
		}
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userInfo{ID: user.ID, Email: user.Email}})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	clearSessionCookie(c, h.production)
	response.Message(c, http.StatusOK, "Logged out successfully")
}

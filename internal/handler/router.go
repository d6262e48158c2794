package handler

import (
	"github.com/gin-gonic/gin"

	"notely/internal/middleware"
)

type RouterDeps struct {
	Auth      *AuthHandler
	Notes     *NoteHandler
	JWTSecret []byte
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/auth/register", deps.Auth.Register)
	api.POST("/auth/login", deps.Auth.Login)
	api.GET("/auth/check", deps.Auth.Check)
	api.POST("/auth/logout", deps.Auth.Logout)

	authGroup := api.Group("")
	authGroup.Use(middleware.SessionAuth(deps.JWTSecret))
	authGroup.GET("/notes", deps.Notes.List)
	authGroup.POST("/notes", deps.Notes.Create)
	authGroup.GET("/notes/:id", deps.Notes.Get)
	authGroup.PUT("/notes/:id", deps.Notes.Update)
	authGroup.DELETE("/notes/:id", deps.Notes.Delete)
}

package handler

import (
	"forum/internal/middleware"
	"forum/internal/models"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Post    *PostHandler
	Comment *CommentHandler
	Admin   *AdminHandler
	Events  *EventsHandler
}

// RegisterRoutes mounts the full API surface under /api. Listing and
// detail reads are public; everything mutating requires a valid token,
// and the admin group additionally requires the Admin role.
func RegisterRoutes(router *gin.Engine, h Handlers, jwtSecret string) {
	api := router.Group("/api")

	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	api.GET("/posts", h.Post.List)
	api.GET("/posts/:id", h.Post.Get)
	api.GET("/posts/:id/comments", h.Comment.ListForPost)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtSecret))
	authed.Use(middleware.RequireRoles(models.RoleUser, models.RoleAdmin))
	{
		authed.GET("/posts/my", h.Post.ListMine)
		authed.POST("/posts", h.Post.Create)
		authed.PUT("/posts/:id", h.Post.Update)
		authed.DELETE("/posts/:id", h.Post.Delete)

		authed.POST("/posts/:id/comments", h.Comment.Create)
		authed.GET("/comments/my", h.Comment.ListMine)
		authed.PUT("/comments/:id", h.Comment.Update)
		authed.DELETE("/comments/:id", h.Comment.Delete)

		if h.Events != nil {
			authed.GET("/ws", h.Events.Stream)
		}
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtSecret))
	admin.Use(middleware.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/posts", h.Post.List)
		admin.DELETE("/posts/:id", h.Post.Delete)
		admin.GET("/comments", h.Admin.ListAllComments)
		admin.GET("/deleted/posts", h.Admin.ListDeletedPosts)
		admin.GET("/deleted/posts/:id", h.Admin.GetDeletedPost)
		admin.GET("/deleted/comments", h.Admin.ListDeletedComments)
	}
}

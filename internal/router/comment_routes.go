package router

import (
	"photo-share-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerCommentRoutes(api *gin.RouterGroup, auth gin.HandlerFunc, h *handler.Handler) {
	comments := api.Group("/comments", auth)

	comments.POST("/photo/:photo_id", h.AddComment)
	comments.GET("/photo/:photo_id", h.ListComments)
	comments.PUT("/:comment_id", h.UpdateComment)
	comments.DELETE("/:comment_id", h.DeleteComment)
}

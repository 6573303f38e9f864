package router

import (
	"photo-share-server/internal/handler"
	"photo-share-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, auth gin.HandlerFunc, h *handler.Handler) {
	users := api.Group("/users", auth)

	users.GET("/me", h.Me)
	users.PATCH("/avatar", middleware.UploadBodyLimitMiddleware(), h.UpdateAvatar)
}

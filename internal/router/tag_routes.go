package router

import (
	"photo-share-server/internal/consts"
	"photo-share-server/internal/handler"
	"photo-share-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerTagRoutes(api *gin.RouterGroup, auth gin.HandlerFunc, h *handler.Handler) {
	tags := api.Group("/tags", auth)

	tags.POST("", h.CreateTag)
	tags.GET("", h.ListTags)
	tags.GET("/:tag_id", h.GetTag)
	tags.DELETE("/:tag_id", middleware.Authorize(consts.ActionTagManage), h.DeleteTag)
}

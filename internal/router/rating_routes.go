package router

import (
	"photo-share-server/internal/consts"
	"photo-share-server/internal/handler"
	"photo-share-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerRatingRoutes(api *gin.RouterGroup, auth gin.HandlerFunc, h *handler.Handler) {
	ratings := api.Group("/ratings", auth)

	ratings.POST("/photo/:photo_id", h.RatePhoto)
	ratings.GET("/photo/:photo_id", h.GetRating)
	ratings.DELETE("/photo/:photo_id", h.RemoveRating)

	// 评分统计只开放给管理/审核角色
	ratings.GET("/photo/:photo_id/summary", middleware.Authorize(consts.ActionRatingSummary), h.RatingSummary)
}

package router

import (
	"photo-share-server/internal/handler"
	"photo-share-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerPhotoRoutes(api *gin.RouterGroup, auth gin.HandlerFunc, h *handler.Handler) {
	photos := api.Group("/photos", auth)

	photos.GET("/all", h.ListPhotos)
	photos.POST("", middleware.UploadBodyLimitMiddleware(), h.UploadPhoto)
	photos.GET("/:photo_id", h.GetPhoto)
	photos.PUT("/:photo_id", h.UpdatePhotoDescription)
	photos.DELETE("/:photo_id", h.DeletePhoto)
	photos.POST("/:photo_id/qr", h.PhotoQRCode)
	photos.POST("/:photo_id/transform", h.TransformPhoto)

	// 照片标签关联
	photos.GET("/:photo_id/tags", h.ListPhotoTags)
	photos.POST("/:photo_id/tags/:tag_id", h.AttachTag)
	photos.DELETE("/:photo_id/tags/:tag_id", h.DetachTag)
}

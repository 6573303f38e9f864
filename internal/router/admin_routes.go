package router

import (
	"photo-share-server/internal/consts"
	"photo-share-server/internal/handler"
	"photo-share-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, auth gin.HandlerFunc, h *handler.Handler) {
	admin := api.Group("/admin", auth)

	admin.POST("/ban_user/:user_id", middleware.Authorize(consts.ActionUserBan), h.AdminBanUser)
	admin.DELETE("/ban_user/:user_id", middleware.Authorize(consts.ActionUserBan), h.AdminUnbanUser)
	admin.GET("/ban_users/all", middleware.Authorize(consts.ActionUserBan), h.AdminListBans)

	admin.PATCH("/users/:user_id/role", middleware.Authorize(consts.ActionUserManage), h.AdminUpdateRole)

	admin.DELETE("/photos/:photo_id", middleware.Authorize(consts.ActionPhotoModerate), h.AdminDeletePhoto)
}

package handler

import (
	"net/http"
	"photo-share-server/internal/common/httpx"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/middleware"
	"photo-share-server/internal/model"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AdminBanUser 封禁用户（user:ban 策略）
func (h *Handler) AdminBanUser(c *gin.Context) {
	operator, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
		return
	}
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}

	if err := h.services.Admin.BanUser(operator, userID); err != nil {
		httpx.WriteServiceError(c, err, "Failed to ban user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User banned"})
}

// AdminUnbanUser 解除封禁
func (h *Handler) AdminUnbanUser(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}

	if err := h.services.Admin.UnbanUser(userID); err != nil {
		httpx.WriteServiceError(c, err, "Failed to unban user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User unbanned"})
}

// AdminListBans 封禁列表
func (h *Handler) AdminListBans(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	bans, err := h.services.Admin.ListBans(skip, limit)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to list bans")
		return
	}
	c.JSON(http.StatusOK, bans)
}

// AdminUpdateRole 调整用户角色（user:manage 策略）
func (h *Handler) AdminUpdateRole(c *gin.Context) {
	operator, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
		return
	}
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "role is required"})
		return
	}

	user, err := h.services.Admin.UpdateUserRole(operator, userID, model.Role(req.Role))
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update role")
		return
	}
	c.JSON(http.StatusOK, user)
}

// AdminDeletePhoto 管理端删除任意照片（photo:moderate 策略）
func (h *Handler) AdminDeletePhoto(c *gin.Context) {
	photoID, ok := parseUintParam(c, "photo_id")
	if !ok {
		return
	}

	if err := h.services.Admin.RemovePhoto(photoID); err != nil {
		httpx.WriteServiceError(c, err, "Failed to delete photo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted"})
}

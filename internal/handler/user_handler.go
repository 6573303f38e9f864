package handler

import (
	"net/http"
	"photo-share-server/internal/common/httpx"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Me 返回当前用户信息
func (h *Handler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateAvatar 上传并更换头像（统一缩放 300x300）
func (h *Handler) UpdateAvatar(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file is required"})
		return
	}

	updated, err := h.services.User.UpdateAvatar(user, fileHeader)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update avatar")
		return
	}
	c.JSON(http.StatusOK, updated)
}

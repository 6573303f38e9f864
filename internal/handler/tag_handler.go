package handler

import (
	"net/http"
	"photo-share-server/internal/common/httpx"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// CreateTag 创建（或复用）标签
func (h *Handler) CreateTag(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "name is required"})
		return
	}

	tag, err := h.services.Tag.CreateTag(req.Name)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to create tag")
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.services.Tag.ListTags()
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to list tags")
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *Handler) GetTag(c *gin.Context) {
	tagID, ok := parseUintParam(c, "tag_id")
	if !ok {
		return
	}

	tag, err := h.services.Tag.GetTag(tagID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to get tag")
		return
	}
	c.JSON(http.StatusOK, tag)
}

// DeleteTag 删除标签（tag:manage 策略）
func (h *Handler) DeleteTag(c *gin.Context) {
	tagID, ok := parseUintParam(c, "tag_id")
	if !ok {
		return
	}

	if err := h.services.Tag.DeleteTag(tagID); err != nil {
		httpx.WriteServiceError(c, err, "Failed to delete tag")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}

// AttachTag 给照片打标签（每张至多 5 个）
func (h *Handler) AttachTag(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
		return
	}
	photoID, ok := parseUintParam(c, "photo_id")
	if !ok {
		return
	}
	tagID, ok := parseUintParam(c, "tag_id")
	if !ok {
		return
	}

	if err := h.services.Tag.AttachTag(photoID, tagID, user); err != nil {
		httpx.WriteServiceError(c, err, "Failed to attach tag")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tag attached"})
}

func (h *Handler) DetachTag(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
		return
	}
	photoID, ok := parseUintParam(c, "photo_id")
	if !ok {
		return
	}
	tagID, ok := parseUintParam(c, "tag_id")
	if !ok {
		return
	}

	if err := h.services.Tag.DetachTag(photoID, tagID, user); err != nil {
		httpx.WriteServiceError(c, err, "Failed to detach tag")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag detached"})
}

// ListPhotoTags 照片的标签列表
func (h *Handler) ListPhotoTags(c *gin.Context) {
	photoID, ok := parseUintParam(c, "photo_id")
	if !ok {
		return
	}

	tags, err := h.services.Tag.ListPhotoTags(photoID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to list photo tags")
		return
	}
	c.JSON(http.StatusOK, tags)
}

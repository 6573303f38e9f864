package handler

import (
	"net/http"
	"photo-share-server/internal/common/httpx"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/middleware"
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// UploadPhoto 上传照片（multipart：file + title + description）
func (h *Handler) UploadPhoto(c *gin.Context) {
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
	title := c.PostForm("title")
	description := c.PostForm("description")

	photo, err := h.services.Photo.UploadPhoto(title, description, fileHeader, user)
	if err != nil {
		httpx.WriteServiceError(c, err, "Upload failed")
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// ListPhotos 当前用户的照片列表（skip/limit）
func (h *Handler) ListPhotos(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	photos, err := h.services.Photo.ListPhotos(user, skip, limit)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to list photos")
		return
	}
	c.JSON(http.StatusOK, photos)
}

func (h *Handler) GetPhoto(c *gin.Context) {
	photoID, ok := parseUintParam(c, "photo_id")
	if !ok {
		return
	}

	photo, err := h.services.Photo.GetPhoto(photoID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to get photo")
		return
	}
	c.JSON(http.StatusOK, photo)
}

// UpdatePhotoDescription 仅作者本人可改
func (h *Handler) UpdatePhotoDescription(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
		return
	}
	photoID, ok := parseUintParam(c, "photo_id")
	if !ok {
		return
	}

	var req struct {
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "description is required"})
		return
	}

	photo, err := h.services.Photo.UpdateDescription(photoID, req.Description, user)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update photo")
		return
	}
	c.JSON(http.StatusOK, photo)
}

func (h *Handler) DeletePhoto(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
		return
	}
	photoID, ok := parseUintParam(c, "photo_id")
	if !ok {
		return
	}

	photo, err := h.services.Photo.DeletePhoto(photoID, user)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to delete photo")
		return
	}
	c.JSON(http.StatusOK, photo)
}

// PhotoQRCode 返回照片访问地址的二维码（base64 PNG）
func (h *Handler) PhotoQRCode(c *gin.Context) {
	photoID, ok := parseUintParam(c, "photo_id")
	if !ok {
		return
	}

	qr, err := h.services.Photo.QRCode(photoID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to generate QR code")
		return
	}
	c.JSON(http.StatusOK, gin.H{"qr_code": qr})
}

// TransformPhoto 生成缩放变体
func (h *Handler) TransformPhoto(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
		return
	}
	photoID, ok := parseUintParam(c, "photo_id")
	if !ok {
		return
	}

	var req struct {
		Width int `json:"width" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "width is required"})
		return
	}

	photo, err := h.services.Photo.Transform(photoID, req.Width, user)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to transform photo")
		return
	}
	c.JSON(http.StatusOK, photo)
}

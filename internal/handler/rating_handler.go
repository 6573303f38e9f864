package handler

import (
	"net/http"
	"photo-share-server/internal/common/httpx"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RatePhoto 打分（1..5），重复打分覆盖旧值
func (h *Handler) RatePhoto(c *gin.Context) {
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
		Rating int `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "rating is required"})
		return
	}

	rating, err := h.services.Rating.RatePhoto(photoID, req.Rating, user)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to rate photo")
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// GetRating 当前用户对照片的评分
func (h *Handler) GetRating(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
		return
	}
	photoID, ok := parseUintParam(c, "photo_id")
	if !ok {
		return
	}

	rating, err := h.services.Rating.GetRating(photoID, user)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to get rating")
		return
	}
	c.JSON(http.StatusOK, rating)
}

// RemoveRating 删除当前用户对照片的评分
func (h *Handler) RemoveRating(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
		return
	}
	photoID, ok := parseUintParam(c, "photo_id")
	if !ok {
		return
	}

	rating, err := h.services.Rating.RemoveRating(photoID, user)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to remove rating")
		return
	}
	c.JSON(http.StatusOK, rating)
}

// RatingSummary 评分分布与均值（管理/审核角色）
func (h *Handler) RatingSummary(c *gin.Context) {
	photoID, ok := parseUintParam(c, "photo_id")
	if !ok {
		return
	}

	summary, err := h.services.Rating.Summary(photoID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to get rating summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

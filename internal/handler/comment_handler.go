package handler

import (
	"net/http"
	"photo-share-server/internal/common/httpx"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// AddComment 给照片添加评论
func (h *Handler) AddComment(c *gin.Context) {
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
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "content is required"})
		return
	}

	comment, err := h.services.Comment.AddComment(photoID, req.Content, user)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to add comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// ListComments 照片评论列表，sort=desc 按时间倒序
func (h *Handler) ListComments(c *gin.Context) {
	photoID, ok := parseUintParam(c, "photo_id")
	if !ok {
		return
	}

	descending := c.DefaultQuery("sort", "asc") == "desc"
	comments, err := h.services.Comment.ListComments(photoID, descending)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to list comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// UpdateComment 仅评论作者可改
func (h *Handler) UpdateComment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
		return
	}
	commentID, ok := parseUintParam(c, "comment_id")
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "content is required"})
		return
	}

	comment, err := h.services.Comment.UpdateComment(commentID, req.Content, user)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment 作者或管理/审核角色可删
func (h *Handler) DeleteComment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
		return
	}
	commentID, ok := parseUintParam(c, "comment_id")
	if !ok {
		return
	}

	if err := h.services.Comment.DeleteComment(commentID, user); err != nil {
		httpx.WriteServiceError(c, err, "Failed to delete comment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

package service

import (
	"errors"
	"photo-share-server/internal/common"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/model"
	"strings"

	"gorm.io/gorm"
)

func (s *CommentService) AddComment(photoID uint, content string, user *model.User) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, common.NewValidationError("comment content is required")
	}

	if _, err := s.photoStore.FindByID(photoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError(consts.MsgPhotoNotFound)
		}
		return nil, common.NewInternalError("评论失败，请稍后重试")
	}

	comment := &model.Comment{
		Content: content,
		UserID:  user.ID,
		PhotoID: photoID,
	}
	if err := s.commentStore.Create(comment); err != nil {
		return nil, common.NewInternalError("评论失败，请稍后重试")
	}
	return comment, nil
}

func (s *CommentService) ListComments(photoID uint, descending bool) ([]model.Comment, error) {
	if _, err := s.photoStore.FindByID(photoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError(consts.MsgPhotoNotFound)
		}
		return nil, common.NewInternalError("获取评论失败")
	}

	comments, err := s.commentStore.ListByPhoto(photoID, descending)
	if err != nil {
		return nil, common.NewInternalError("获取评论失败")
	}
	return comments, nil
}

// UpdateComment 仅作者本人可编辑自己的评论
func (s *CommentService) UpdateComment(commentID uint, content string, user *model.User) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, common.NewValidationError("comment content is required")
	}

	comment, err := s.commentStore.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError(consts.MsgCommentNotFound)
		}
		return nil, common.NewInternalError("更新评论失败")
	}

	if comment.UserID != user.ID {
		return nil, common.NewForbiddenError(consts.MsgOperationForbidden)
	}

	comment.Content = content
	if err := s.commentStore.Save(comment); err != nil {
		return nil, common.NewInternalError("更新评论失败")
	}
	return comment, nil
}

// DeleteComment 作者本人或管理/审核角色可删
func (s *CommentService) DeleteComment(commentID uint, user *model.User) error {
	comment, err := s.commentStore.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError(consts.MsgCommentNotFound)
		}
		return common.NewInternalError("删除评论失败")
	}

	if comment.UserID != user.ID && !user.IsStaff() {
		return common.NewForbiddenError(consts.MsgOperationForbidden)
	}

	return s.commentStore.Delete(comment)
}

package service

import (
	"errors"
	"photo-share-server/internal/common"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/model"
	"strings"

	"gorm.io/gorm"
)

func (s *TagService) CreateTag(name string) (*model.Tag, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return nil, common.NewValidationError("tag name is required")
	}

	// 已存在同名标签直接复用
	if existing, err := s.tagStore.FindByName(name); err == nil {
		return existing, nil
	}

	tag := &model.Tag{Name: name}
	if err := s.tagStore.Create(tag); err != nil {
		return nil, common.NewConflictError("tag already exists")
	}
	return tag, nil
}

func (s *TagService) ListTags() ([]model.Tag, error) {
	tags, err := s.tagStore.ListAll()
	if err != nil {
		return nil, common.NewInternalError("获取标签失败")
	}
	return tags, nil
}

func (s *TagService) GetTag(tagID uint) (*model.Tag, error) {
	tag, err := s.tagStore.FindByID(tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError(consts.MsgTagNotFound)
		}
		return nil, common.NewInternalError("获取标签失败")
	}
	return tag, nil
}

func (s *TagService) DeleteTag(tagID uint) error {
	tag, err := s.GetTag(tagID)
	if err != nil {
		return err
	}
	if err := s.tagStore.Delete(tag); err != nil {
		return common.NewInternalError("删除标签失败")
	}
	return nil
}

// AttachTag 给照片打标签，每张照片至多 5 个
func (s *TagService) AttachTag(photoID, tagID uint, user *model.User) error {
	photo, err := s.photoStore.FindByID(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError(consts.MsgPhotoNotFound)
		}
		return common.NewInternalError("打标签失败")
	}
	if photo.UserID != user.ID && !user.IsStaff() {
		return common.NewForbiddenError(consts.MsgOperationForbidden)
	}

	if _, err := s.GetTag(tagID); err != nil {
		return err
	}

	count, err := s.tagStore.CountByPhoto(photoID)
	if err != nil {
		return common.NewInternalError("打标签失败")
	}
	if count >= consts.MaxTagsPerPhoto {
		return common.NewValidationError(consts.MsgTooManyTags)
	}

	if err := s.tagStore.AttachToPhoto(photoID, tagID); err != nil {
		return common.NewInternalError("打标签失败")
	}
	return nil
}

func (s *TagService) DetachTag(photoID, tagID uint, user *model.User) error {
	photo, err := s.photoStore.FindByID(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError(consts.MsgPhotoNotFound)
		}
		return common.NewInternalError("移除标签失败")
	}
	if photo.UserID != user.ID && !user.IsStaff() {
		return common.NewForbiddenError(consts.MsgOperationForbidden)
	}

	if err := s.tagStore.DetachFromPhoto(photoID, tagID); err != nil {
		return common.NewInternalError("移除标签失败")
	}
	return nil
}

func (s *TagService) ListPhotoTags(photoID uint) ([]model.Tag, error) {
	if _, err := s.photoStore.FindByID(photoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError(consts.MsgPhotoNotFound)
		}
		return nil, common.NewInternalError("获取标签失败")
	}

	tags, err := s.tagStore.ListByPhoto(photoID)
	if err != nil {
		return nil, common.NewInternalError("获取标签失败")
	}
	return tags, nil
}

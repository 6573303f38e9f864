package service

import (
	"errors"
	"photo-share-server/internal/common"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/model"

	"gorm.io/gorm"
)

// BanUser 封禁目标用户。管理员不能封禁自己，重复封禁返回冲突。
func (s *AdminService) BanUser(operator *model.User, targetID uint) error {
	if operator.ID == targetID {
		return common.NewConflictError(consts.MsgConflictRole)
	}

	target, err := s.userStore.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError(consts.MsgUserNotFound)
		}
		return common.NewInternalError("封禁失败")
	}

	exists, err := s.banStore.Exists(target.ID)
	if err != nil {
		return common.NewInternalError("封禁失败")
	}
	if exists {
		return common.NewConflictError(consts.MsgConflictRole)
	}

	if err := s.banStore.Create(&model.BanUser{UserID: target.ID}); err != nil {
		return common.NewInternalError("封禁失败")
	}

	// 封禁立即生效，清掉缓存里的会话副本
	s.cache.Invalidate(target.Email)
	return nil
}

func (s *AdminService) UnbanUser(targetID uint) error {
	ban, err := s.banStore.FindByUserID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError(consts.MsgNotBanUser)
		}
		return common.NewInternalError("解封失败")
	}

	if err := s.banStore.Delete(ban); err != nil {
		return common.NewInternalError("解封失败")
	}
	return nil
}

func (s *AdminService) ListBans(offset, limit int) ([]model.BanUser, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	bans, err := s.banStore.List(offset, limit)
	if err != nil {
		return nil, common.NewInternalError("获取封禁列表失败")
	}
	return bans, nil
}

// UpdateUserRole 调整用户角色，管理员不能改自己的角色。
func (s *AdminService) UpdateUserRole(operator *model.User, targetID uint, role model.Role) (*model.User, error) {
	switch role {
	case model.RoleAdmin, model.RoleModerator, model.RoleUser:
	default:
		return nil, common.NewValidationError("invalid role")
	}
	if operator.ID == targetID {
		return nil, common.NewConflictError(consts.MsgConflictRole)
	}

	target, err := s.userStore.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError(consts.MsgUserNotFound)
		}
		return nil, common.NewInternalError("更新角色失败")
	}

	if err := s.userStore.UpdateRole(target.ID, role); err != nil {
		return nil, common.NewInternalError("更新角色失败")
	}
	target.Role = role

	s.cache.Invalidate(target.Email)
	return target, nil
}

// RemovePhoto 管理端删除任意照片（含其评论、评分与标签关联）。
func (s *AdminService) RemovePhoto(photoID uint) error {
	photo, err := s.photoStore.FindByID(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError(consts.MsgPhotoNotFound)
		}
		return common.NewInternalError("删除照片失败")
	}

	if err := s.photoStore.Delete(photo); err != nil {
		return common.NewInternalError("删除照片失败")
	}
	return nil
}

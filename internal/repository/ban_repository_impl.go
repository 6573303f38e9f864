package repository

import (
	"photo-share-server/internal/model"

	"gorm.io/gorm"
)

type BanRepository struct {
	db *gorm.DB
}

func (r *BanRepository) FindByUserID(userID uint) (*model.BanUser, error) {
	var ban model.BanUser
	if err := r.db.Where("user_id = ?", userID).First(&ban).Error; err != nil {
		return nil, err
	}
	return &ban, nil
}

func (r *BanRepository) Exists(userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.BanUser{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BanRepository) Create(ban *model.BanUser) error {
	return r.db.Create(ban).Error
}

func (r *BanRepository) Delete(ban *model.BanUser) error {
	return r.db.Delete(ban).Error
}

func (r *BanRepository) List(offset, limit int) ([]model.BanUser, error) {
	var bans []model.BanUser
	query := r.db.Order("id ASC")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&bans).Error; err != nil {
		return nil, err
	}
	return bans, nil
}

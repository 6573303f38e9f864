package repository

import (
	"photo-share-server/internal/model"

	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func (r *PhotoRepository) FindByID(id uint) (*model.Photo, error) {
	var photo model.Photo
	if err := r.db.First(&photo, id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) ListByUser(userID uint, offset, limit int) ([]model.Photo, error) {
	var photos []model.Photo
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *PhotoRepository) Create(photo *model.Photo) error {
	return r.db.Create(photo).Error
}

func (r *PhotoRepository) Save(photo *model.Photo) error {
	return r.db.Save(photo).Error
}

func (r *PhotoRepository) UpdateDescription(photoID uint, description string) error {
	return r.db.Model(&model.Photo{}).Where("id = ?", photoID).Update("description", description).Error
}

func (r *PhotoRepository) Delete(photo *model.Photo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 评论、评分、标签关联随照片一并清理
		if err := tx.Where("photo_id = ?", photo.ID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("photo_id = ?", photo.ID).Delete(&model.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("photo_id = ?", photo.ID).Delete(&model.PhotoTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(photo).Error
	})
}

func (r *PhotoRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Photo{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

package repository

import (
	"photo-share-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	db *gorm.DB
}

// Upsert 单条原子写入：同一 (user_id, photo_id) 已存在时只更新分值。
// 依赖模型上的复合唯一索引，并发重复评分不会产生第二行。
func (r *RatingRepository) Upsert(rating *model.Rating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "photo_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating"}),
	}).Create(rating).Error
}

func (r *RatingRepository) FindByPhotoAndUser(photoID, userID uint) (*model.Rating, error) {
	var rating model.Rating
	if err := r.db.Where("photo_id = ? AND user_id = ?", photoID, userID).First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) ListByPhoto(photoID uint) ([]model.Rating, error) {
	var ratings []model.Rating
	if err := r.db.Where("photo_id = ?", photoID).Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *RatingRepository) Delete(rating *model.Rating) error {
	return r.db.Delete(rating).Error
}

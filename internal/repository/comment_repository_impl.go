package repository

import (
	"photo-share-server/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func (r *CommentRepository) FindByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) ListByPhoto(photoID uint, descending bool) ([]model.Comment, error) {
	order := "created_at ASC"
	if descending {
		order = "created_at DESC"
	}
	var comments []model.Comment
	if err := r.db.Where("photo_id = ?", photoID).Order(order).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) Save(comment *model.Comment) error {
	return r.db.Save(comment).Error
}

func (r *CommentRepository) Delete(comment *model.Comment) error {
	return r.db.Delete(comment).Error
}

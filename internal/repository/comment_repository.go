package repository

import "photo-share-server/internal/model"

type CommentStore interface {
	FindByID(id uint) (*model.Comment, error)
	ListByPhoto(photoID uint, descending bool) ([]model.Comment, error)
	Create(comment *model.Comment) error
	Save(comment *model.Comment) error
	Delete(comment *model.Comment) error
}

package repository

import "photo-share-server/internal/model"

type PhotoStore interface {
	FindByID(id uint) (*model.Photo, error)
	ListByUser(userID uint, offset, limit int) ([]model.Photo, error)
	Create(photo *model.Photo) error
	Save(photo *model.Photo) error
	UpdateDescription(photoID uint, description string) error
	Delete(photo *model.Photo) error
	CountAll() (int64, error)
}

package repository

import "photo-share-server/internal/model"

type TagStore interface {
	FindByID(id uint) (*model.Tag, error)
	FindByName(name string) (*model.Tag, error)
	ListAll() ([]model.Tag, error)
	Create(tag *model.Tag) error
	Delete(tag *model.Tag) error

	CountByPhoto(photoID uint) (int64, error)
	AttachToPhoto(photoID, tagID uint) error
	DetachFromPhoto(photoID, tagID uint) error
	ListByPhoto(photoID uint) ([]model.Tag, error)
}

package repository

import "photo-share-server/internal/model"

type BanStore interface {
	FindByUserID(userID uint) (*model.BanUser, error)
	Exists(userID uint) (bool, error)
	Create(ban *model.BanUser) error
	Delete(ban *model.BanUser) error
	List(offset, limit int) ([]model.BanUser, error)
}

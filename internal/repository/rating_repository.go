package repository

import "photo-share-server/internal/model"

type RatingStore interface {
	// Upsert 以 (user_id, photo_id) 为冲突键原子写入评分
	Upsert(rating *model.Rating) error
	FindByPhotoAndUser(photoID, userID uint) (*model.Rating, error)
	ListByPhoto(photoID uint) ([]model.Rating, error)
	Delete(rating *model.Rating) error
}

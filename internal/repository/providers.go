package repository

import (
	"gorm.io/gorm"
)

type Repositories struct {
	User    UserStore
	Photo   PhotoStore
	Rating  RatingStore
	Comment CommentStore
	Tag     TagStore
	Ban     BanStore
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func NewPhotoRepository(db *gorm.DB) PhotoStore {
	return &PhotoRepository{db: db}
}

func NewRatingRepository(db *gorm.DB) RatingStore {
	return &RatingRepository{db: db}
}

func NewCommentRepository(db *gorm.DB) CommentStore {
	return &CommentRepository{db: db}
}

func NewTagRepository(db *gorm.DB) TagStore {
	return &TagRepository{db: db}
}

func NewBanRepository(db *gorm.DB) BanStore {
	return &BanRepository{db: db}
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Photo:   NewPhotoRepository(db),
		Rating:  NewRatingRepository(db),
		Comment: NewCommentRepository(db),
		Tag:     NewTagRepository(db),
		Ban:     NewBanRepository(db),
	}
}

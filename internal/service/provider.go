package service

import (
	repo "photo-share-server/internal/repository"
)

type AuthService struct {
	userStore repo.UserStore
	banStore  repo.BanStore
	cache     *UserCache
	email     *EmailService
}

type PhotoService struct {
	photoStore repo.PhotoStore
}

type RatingService struct {
	ratingStore repo.RatingStore
	photoStore  repo.PhotoStore
}

type CommentService struct {
	commentStore repo.CommentStore
	photoStore   repo.PhotoStore
}

type TagService struct {
	tagStore   repo.TagStore
	photoStore repo.PhotoStore
}

type UserService struct {
	userStore repo.UserStore
	cache     *UserCache
}

type AdminService struct {
	userStore  repo.UserStore
	banStore   repo.BanStore
	photoStore repo.PhotoStore
	cache      *UserCache
}

type EmailService struct{}

func NewAuthService(userStore repo.UserStore, banStore repo.BanStore, cache *UserCache, email *EmailService) *AuthService {
	return &AuthService{userStore: userStore, banStore: banStore, cache: cache, email: email}
}

func NewPhotoService(photoStore repo.PhotoStore) *PhotoService {
	return &PhotoService{photoStore: photoStore}
}

func NewRatingService(ratingStore repo.RatingStore, photoStore repo.PhotoStore) *RatingService {
	return &RatingService{ratingStore: ratingStore, photoStore: photoStore}
}

func NewCommentService(commentStore repo.CommentStore, photoStore repo.PhotoStore) *CommentService {
	return &CommentService{commentStore: commentStore, photoStore: photoStore}
}

func NewTagService(tagStore repo.TagStore, photoStore repo.PhotoStore) *TagService {
	return &TagService{tagStore: tagStore, photoStore: photoStore}
}

func NewUserService(userStore repo.UserStore, cache *UserCache) *UserService {
	return &UserService{userStore: userStore, cache: cache}
}

func NewAdminService(userStore repo.UserStore, banStore repo.BanStore, photoStore repo.PhotoStore, cache *UserCache) *AdminService {
	return &AdminService{userStore: userStore, banStore: banStore, photoStore: photoStore, cache: cache}
}

func NewEmailService() *EmailService {
	return &EmailService{}
}

type Services struct {
	Auth    *AuthService
	Photo   *PhotoService
	Rating  *RatingService
	Comment *CommentService
	Tag     *TagService
	User    *UserService
	Admin   *AdminService
	Email   *EmailService
	Cache   *UserCache
}

func NewServices(repos *repo.Repositories) *Services {
	cache := NewUserCache()
	email := NewEmailService()
	return &Services{
		Auth:    NewAuthService(repos.User, repos.Ban, cache, email),
		Photo:   NewPhotoService(repos.Photo),
		Rating:  NewRatingService(repos.Rating, repos.Photo),
		Comment: NewCommentService(repos.Comment, repos.Photo),
		Tag:     NewTagService(repos.Tag, repos.Photo),
		User:    NewUserService(repos.User, cache),
		Admin:   NewAdminService(repos.User, repos.Ban, repos.Photo, cache),
		Email:   email,
		Cache:   cache,
	}
}

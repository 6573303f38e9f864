package repository

import (
	"photo-share-server/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) Save(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) UpdateRefreshToken(userID uint, token string) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Update("refresh_token", token).Error
}

func (r *UserRepository) UpdatePasswordByEmail(email string, hashedPassword string) error {
	return r.db.Model(&model.User{}).Where("email = ?", email).Update("password", hashedPassword).Error
}

func (r *UserRepository) UpdateAvatarByEmail(email string, url string) error {
	return r.db.Model(&model.User{}).Where("email = ?", email).Update("avatar", url).Error
}

func (r *UserRepository) MarkVerified(email string) error {
	return r.db.Model(&model.User{}).Where("email = ?", email).Update("verified", true).Error
}

func (r *UserRepository) UpdateRole(userID uint, role model.Role) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Update("role", role).Error
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

package repository

import "photo-share-server/internal/model"

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	Save(user *model.User) error
	UpdateRefreshToken(userID uint, token string) error
	UpdatePasswordByEmail(email string, hashedPassword string) error
	UpdateAvatarByEmail(email string, url string) error
	MarkVerified(email string) error
	UpdateRole(userID uint, role model.Role) error
	EmailExists(email string) (bool, error)
	CountAll() (int64, error)
}

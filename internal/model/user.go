package model

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `json:"username" gorm:"size:50;not null"`
	Email        string    `json:"email" gorm:"unique;not null;size:150"`
	Password     string    `json:"-" gorm:"size:255;not null"`
	Avatar       string    `json:"avatar" gorm:"size:255"`
	RefreshToken string    `json:"-" gorm:"size:512"`
	Role         Role      `json:"role" gorm:"size:20;default:user"`
	Verified     bool      `json:"verified" gorm:"default:false"`
	Photos       []Photo   `json:"-" gorm:"foreignKey:UserID"`
}

// IsStaff 是否具有管理/审核权限
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleModerator
}

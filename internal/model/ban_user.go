package model

// BanUser 封禁标记：该行存在即表示用户被封禁，登录时拒绝。
type BanUser struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"unique;not null"`
	User   User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}

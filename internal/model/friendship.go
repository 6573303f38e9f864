package model

import "time"

type Friendship struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey"`
	FriendID  uint      `json:"friend_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Friend    User      `json:"-" gorm:"foreignKey:FriendID;references:ID;constraint:OnDelete:CASCADE;"`
}

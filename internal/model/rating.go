package model

import "time"

// Rating 每个 (user_id, photo_id) 至多一条评分记录。
// 复合唯一索引配合 ON CONFLICT 更新，保证并发重复评分不会插入两行。
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_photo"`
	PhotoID   uint      `json:"photo_id" gorm:"not null;uniqueIndex:idx_user_photo"`
	Rating    int       `json:"rating" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Photo     Photo     `json:"-" gorm:"foreignKey:PhotoID;references:ID;constraint:OnDelete:CASCADE;"`
}

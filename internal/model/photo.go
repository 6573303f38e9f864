package model

import "time"

type Photo struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Title             string    `json:"title" gorm:"index;not null"`
	Description       string    `json:"description"`
	FilePath          string    `json:"file_path" gorm:"not null"`
	FilePathTransform string    `json:"file_path_transform"`
	UserID            uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt         time.Time `json:"created_at"`
	User              User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}

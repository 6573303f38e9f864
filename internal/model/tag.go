package model

type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"unique;not null"`
}

type PhotoTag struct {
	PhotoID uint  `json:"photo_id" gorm:"primaryKey"`
	TagID   uint  `json:"tag_id" gorm:"primaryKey"`
	Photo   Photo `json:"-" gorm:"foreignKey:PhotoID;references:ID;constraint:OnDelete:CASCADE;"`
	Tag     Tag   `json:"-" gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE;"`
}

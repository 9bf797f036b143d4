package models

import "gorm.io/gorm"

type Skill struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"index;not null"`
	Name   string `json:"name" gorm:"not null"`
	Level  string `json:"level" gorm:"default:'beginner'"`
	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

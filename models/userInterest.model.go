package models

import "gorm.io/gorm"

type UserInterest struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	Interest string `json:"interest" gorm:"not null"`
	User     User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

package models

import (
	"gorm.io/gorm"
)

// Roles and preferred languages are constrained to fixed sets; anything else
// is rejected at the validation layer before it reaches the database.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Languages the platform ships localized content for.
var SupportedLanguages = []string{"english", "hindi", "tamil", "telugu", "kannada"}

type User struct {
	gorm.Model
	Name              string `json:"name" gorm:"default:''"`
	Email             string `json:"email" gorm:"unique;not null"`
	Password          string `json:"-" gorm:"not null"`
	Role              string `json:"role" gorm:"default:'user'"`
	PreferredLanguage string `json:"preferred_language" gorm:"default:'english'"`
	XPPoints          uint   `json:"xp_points" gorm:"default:0"`
}

func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

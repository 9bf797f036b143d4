package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Course struct {
	gorm.Model
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Duration    string         `json:"duration"`
	Difficulty  string         `json:"difficulty" gorm:"default:'beginner'"`
	Skills      datatypes.JSON `json:"skills"` // skill tags taught by the course
}

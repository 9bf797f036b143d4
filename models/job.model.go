package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Job struct {
	gorm.Model
	Title        string         `json:"title" gorm:"not null"`
	Company      string         `json:"company"`
	Location     string         `json:"location"`
	Description  string         `json:"description"`
	Type         string         `json:"type" gorm:"default:'full-time'"`
	Requirements datatypes.JSON `json:"requirements"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// UserCourse tracks one user's progress through one course. The composite
// unique index keeps at most one progress row per user/course pair.
type UserCourse struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"index:idx_user_course,unique;not null"`
	CourseID     uint      `json:"course_id" gorm:"index:idx_user_course,unique;not null"`
	Progress     float64   `json:"progress" gorm:"default:0"` // 0.0 - 1.0
	Completed    bool      `json:"completed" gorm:"default:false"`
	LastAccessed time.Time `json:"last_accessed"`
	User         User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course       Course    `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

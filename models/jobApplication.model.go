package models

import (
	"time"

	"gorm.io/gorm"
)

// JobApplication records one user's application to one job; the composite
// unique index keeps at most one application per user/job pair.
type JobApplication struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index:idx_user_job,unique;not null"`
	JobID     uint      `json:"job_id" gorm:"index:idx_user_job,unique;not null"`
	Status    string    `json:"status" gorm:"default:'applied'"`
	AppliedAt time.Time `json:"applied_at"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Job       Job       `json:"job" gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

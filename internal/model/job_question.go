package model

import (
	"time"

	"gorm.io/gorm"
)

// JobQuestion is one spine question of a job. OrderIndex is the primary
// sequencing key; ties are broken by ID so the order is total and stable.
type JobQuestion struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	JobID      uint           `json:"job_id" gorm:"not null;index"`
	Text       string         `json:"text" gorm:"type:text;not null"`
	Competency *string        `json:"competency,omitempty" gorm:"size:100"`
	OrderIndex int            `json:"order_index" gorm:"not null;default:0"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

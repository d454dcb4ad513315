package model

import (
	"time"

	"gorm.io/gorm"
)

// ProctoringEvent is one behavioral event reported by the candidate's browser
// (tab hidden, paste, fullscreen exit, ...). Scoring is stateless over the
// full event list; events themselves are just an audit trail.
type ProctoringEvent struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	InterviewID uint           `json:"interview_id" gorm:"not null;index"`
	EventType   string         `json:"event_type" gorm:"size:50;not null"`
	OccurredAt  time.Time      `json:"occurred_at"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

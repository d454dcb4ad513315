package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer is an append-only record of one candidate response. QuestionText is
// frozen at ask time; later edits to the JobQuestion do not rewrite history.
// Rows are never mutated or deleted once scored.
type Answer struct {
	ID          uint  `gorm:"primarykey" json:"id"`
	InterviewID uint  `json:"interview_id" gorm:"not null;index"`
	QuestionID  *uint `json:"question_id,omitempty" gorm:"index"` // nil for follow-up rows

	QuestionText     string `json:"question_text" gorm:"type:text;not null"`
	IsFollowup       bool   `json:"is_followup" gorm:"not null;default:false"`
	ParentQuestionID *uint  `json:"parent_question_id,omitempty"` // spine question a follow-up probes
	FollowupRound    int    `json:"followup_round" gorm:"not null;default:0"`

	AnswerText       string         `json:"answer_text" gorm:"type:text;not null"`
	Score            *int           `json:"score,omitempty"` // 1-5
	CompetencyScores map[string]int `json:"competency_scores,omitempty" gorm:"serializer:json"`
	AIFeedback       string         `json:"ai_feedback,omitempty" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

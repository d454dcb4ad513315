package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	InterviewStatusNotStarted = "NOT_STARTED"
	InterviewStatusInProgress = "IN_PROGRESS"
	InterviewStatusCompleted  = "COMPLETED"
)

// PromptKind makes "what is the candidate currently answering" an explicit
// state instead of inferring it from a nullable follow-up text column.
const (
	PromptKindSpine    = "SPINE"
	PromptKindFollowup = "FOLLOWUP"
)

type Interview struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	JobID          uint   `json:"job_id" gorm:"not null;index"`
	Job            Job    `json:"job,omitempty" gorm:"foreignKey:JobID"`
	CandidateName  string `json:"candidate_name" gorm:"not null"`
	CandidateEmail string `json:"candidate_email" gorm:"not null;index"`

	// InviteToken is generated once at creation and never changes.
	InviteToken string `json:"invite_token" gorm:"size:255;uniqueIndex;not null"`

	Status string `json:"status" gorm:"default:'NOT_STARTED'"`

	// CurrentQuestionIndex counts fully resolved spine questions. It only
	// ever increases.
	CurrentQuestionIndex int   `json:"current_question_index" gorm:"not null;default:0"`
	ActiveQuestionID     *uint `json:"active_question_id,omitempty"`

	// PromptKind + FollowupText + FollowupRound form the pending-prompt state.
	// FollowupText and FollowupRound are meaningful only while PromptKind is
	// FOLLOWUP.
	PromptKind    string `json:"prompt_kind" gorm:"default:'SPINE'"`
	FollowupRound int    `json:"followup_round" gorm:"not null;default:0"`
	FollowupText  string `json:"followup_text,omitempty" gorm:"type:text"`

	MaxFollowupsPerQuestion int `json:"max_followups_per_question" gorm:"not null;default:2"`

	// QuestionSnapshot freezes the ordered spine question IDs at start time,
	// so edits to the job's questions cannot shift an in-flight interview.
	QuestionSnapshot []uint `json:"question_snapshot,omitempty" gorm:"serializer:json"`

	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Transcript  string     `json:"transcript,omitempty" gorm:"type:text"`

	// Proctoring output, loosely coupled to progression.
	IntegrityScore *int           `json:"integrity_score,omitempty"`
	IntegrityFlags map[string]any `json:"integrity_flags,omitempty" gorm:"serializer:json"`

	Answers   []Answer       `json:"answers,omitempty" gorm:"foreignKey:InterviewID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

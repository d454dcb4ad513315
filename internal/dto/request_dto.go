package dto

import "time"

// JobQuestionCreateDTO is one spine question inside a job creation request.
type JobQuestionCreateDTO struct {
	Text       string  `json:"text" binding:"required"`
	Competency *string `json:"competency"`
	OrderIndex int     `json:"order_index"`
}

// JobCreateDTO is for an admin creating a job with its ordered questions.
type JobCreateDTO struct {
	Title        string                 `json:"title" binding:"required"`
	Description  string                 `json:"description" binding:"required"`
	Competencies []string               `json:"competencies"`
	Questions    []JobQuestionCreateDTO `json:"questions" binding:"required,min=0,dive"`
}

// InterviewCreateDTO creates one interview invite for a (job, candidate).
type InterviewCreateDTO struct {
	JobID          uint   `json:"job_id" binding:"required"`
	CandidateName  string `json:"candidate_name" binding:"required"`
	CandidateEmail string `json:"candidate_email" binding:"required,email"`

	// MaxFollowups overrides the configured per-question follow-up cap.
	MaxFollowups *int `json:"max_followups,omitempty" binding:"omitempty,min=0"`
}

// AnswerSubmitDTO carries one candidate answer to the currently open prompt.
type AnswerSubmitDTO struct {
	AnswerText string `json:"answer_text" binding:"required"`
}

// ProctoringEventDTO is one browser-side behavioral event.
type ProctoringEventDTO struct {
	EventType  string     `json:"event_type" binding:"required"`
	OccurredAt *time.Time `json:"occurred_at"`
}

// ProctoringSubmitDTO reports a batch of behavioral events for an interview.
type ProctoringSubmitDTO struct {
	Events []ProctoringEventDTO `json:"events" binding:"required,min=1,dive"`
}

package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type JobQuestionDTO struct {
	ID         uint    `json:"id"`
	JobID      uint    `json:"job_id"`
	Text       string  `json:"text"`
	Competency *string `json:"competency,omitempty"`
	OrderIndex int     `json:"order_index"`
}

type JobDTO struct {
	ID           uint             `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Competencies []string         `json:"competencies,omitempty"`
	Questions    []JobQuestionDTO `json:"questions,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

type InterviewDTO struct {
	ID                   uint       `json:"id"`
	JobID                uint       `json:"job_id"`
	CandidateName        string     `json:"candidate_name"`
	CandidateEmail       string     `json:"candidate_email"`
	Status               string     `json:"status"`
	CurrentQuestionIndex int        `json:"current_question_index"`
	InviteToken          string     `json:"invite_token"`
	StartedAt            *time.Time `json:"started_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
}

// NextQuestionDTO is the next prompt to show the candidate. Kind is either
// SPINE (QuestionID set) or FOLLOWUP (Round set, QuestionID empty).
type NextQuestionDTO struct {
	Kind       string  `json:"kind"`
	QuestionID *uint   `json:"question_id,omitempty"`
	Text       string  `json:"text"`
	Competency *string `json:"competency,omitempty"`
	Round      int     `json:"round,omitempty"`
}

type InterviewStartDTO struct {
	InterviewID  uint             `json:"interview_id"`
	Status       string           `json:"status"`
	NextQuestion *NextQuestionDTO `json:"next_question,omitempty"`
}

// AnswerScoringDTO is the result bundle of one submitted answer.
type AnswerScoringDTO struct {
	AskedQuestionText string           `json:"asked_question_text"`
	IsFollowup        bool             `json:"is_followup"`
	FollowupRound     int              `json:"followup_round"`
	Score             *int             `json:"score,omitempty"`
	CompetencyScores  map[string]int   `json:"competency_scores,omitempty"`
	AIFeedback        string           `json:"ai_feedback,omitempty"`
	NextQuestion      *NextQuestionDTO `json:"next_question,omitempty"`
	InterviewStatus   string           `json:"interview_status"`
}

type InterviewCompleteDTO struct {
	InterviewID uint   `json:"interview_id"`
	Status      string `json:"status"`
	Transcript  string `json:"transcript"`
}

type InterviewSummaryDTO struct {
	InterviewID       uint               `json:"interview_id"`
	Recommendation    string             `json:"recommendation"`
	OverallCommentary string             `json:"overall_commentary"`
	AverageScore      float64            `json:"average_score"`
	CompetencySummary map[string]float64 `json:"competency_summary"`
}

type AnswerDTO struct {
	ID               uint           `json:"id"`
	QuestionID       *uint          `json:"question_id,omitempty"`
	QuestionText     string         `json:"question_text"`
	IsFollowup       bool           `json:"is_followup"`
	ParentQuestionID *uint          `json:"parent_question_id,omitempty"`
	FollowupRound    int            `json:"followup_round"`
	AnswerText       string         `json:"answer_text"`
	Score            *int           `json:"score,omitempty"`
	CompetencyScores map[string]int `json:"competency_scores,omitempty"`
	AIFeedback       string         `json:"ai_feedback,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// InterviewDetailDTO is the admin view of one interview with its transcript.
type InterviewDetailDTO struct {
	ID                   uint           `json:"id"`
	JobID                uint           `json:"job_id"`
	JobTitle             string         `json:"job_title,omitempty"`
	CandidateName        string         `json:"candidate_name"`
	CandidateEmail       string         `json:"candidate_email"`
	Status               string         `json:"status"`
	CurrentQuestionIndex int            `json:"current_question_index"`
	StartedAt            *time.Time     `json:"started_at,omitempty"`
	CompletedAt          *time.Time     `json:"completed_at,omitempty"`
	Transcript           string         `json:"transcript,omitempty"`
	IntegrityScore       *int           `json:"integrity_score,omitempty"`
	IntegrityFlags       map[string]any `json:"integrity_flags,omitempty"`
	Answers              []AnswerDTO    `json:"answers,omitempty"`
}

// IntegrityDTO is the proctoring scorer's output for an interview.
type IntegrityDTO struct {
	InterviewID uint           `json:"interview_id"`
	Score       int            `json:"score"`
	Flags       map[string]any `json:"flags"`
}

package service

import "context"

// ScoreResult is what the scoring oracle returns for one answer.
type ScoreResult struct {
	OverallScore     int            `json:"overall_score"` // 1-5
	CompetencyScores map[string]int `json:"competency_scores"`
	Feedback         string         `json:"feedback"`
}

// QAItem is one transcript entry handed to the summarizer. Spine answers and
// follow-ups are both included so the summarizer sees the full probing context.
type QAItem struct {
	Question         string         `json:"question"`
	Answer           string         `json:"answer"`
	Score            *int           `json:"score"`
	CompetencyScores map[string]int `json:"competency_scores"`
	IsFollowup       bool           `json:"is_followup"`
	FollowupRound    int            `json:"followup_round"`
}

// SummaryResult is the summarizer's verdict over a completed interview.
type SummaryResult struct {
	Recommendation    string             `json:"recommendation"`
	OverallCommentary string             `json:"overall_commentary"`
	AverageScore      float64            `json:"average_score"`
	CompetencySummary map[string]float64 `json:"competency_summary"`
}

// Recommendations the summarizer may return.
var AllowedRecommendations = []string{
	"Strong Hire", "Hire", "Leaning Hire", "Neutral", "Leaning No", "No Hire",
}

// ScoringOracle scores one answer against the base spine question. A failure
// (timeout, malformed response) must surface as an error; it never defaults
// to a score.
type ScoringOracle interface {
	Score(ctx context.Context, questionText, answerText string, competencies []string) (*ScoreResult, error)
}

// FollowupGenerator produces one natural-language probe question. An empty
// result is legal and triggers the caller's fixed fallback probe.
type FollowupGenerator interface {
	Generate(ctx context.Context, baseQuestion, answerText string, competencies []string, score *ScoreResult, round int) (string, error)
}

// Summarizer turns the full chronological transcript into a hire
// recommendation, commentary and per-competency averages.
type Summarizer interface {
	Summarize(ctx context.Context, jobTitle, jobDescription string, qa []QAItem) (*SummaryResult, error)
}

package service

import (
	"context"
	"strings"
	"testing"
)

const (
	ownedNoNumberAnswer = "I rebuilt the deployment pipeline with my teammates and the service became noticeably faster for every consumer downstream afterwards."
	teamOnlyAnswer      = "The team rebuilt the deployment pipeline and the service became faster for everyone involved in the project overall."
)

func TestRuleOracleScore(t *testing.T) {
	oracle := NewRuleBasedOracle()

	tests := []struct {
		name   string
		answer string
		want   int
	}{
		{"very short answer", "Fixed the bug quickly.", 1},
		{"plain answer", "I worked with my team to rewrite the module and we shipped it after review.", 2},
		{"answer with a number", "I worked with my team to rewrite the module and we shipped it after 3 reviews.", 3},
		{"rich answer", longAnswer, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oracle.Score(context.Background(), "Q", tt.answer, []string{"Go", "Databases"})
			if err != nil {
				t.Fatalf("Score failed: %v", err)
			}
			if got.OverallScore != tt.want {
				t.Errorf("OverallScore = %d, want %d", got.OverallScore, tt.want)
			}
			if got.Feedback == "" {
				t.Error("empty feedback")
			}
			if len(got.CompetencyScores) != 2 || got.CompetencyScores["Go"] != tt.want {
				t.Errorf("CompetencyScores = %v", got.CompetencyScores)
			}
		})
	}
}

func TestRuleOracleProbeLadder(t *testing.T) {
	oracle := NewRuleBasedOracle()

	tests := []struct {
		name     string
		answer   string
		fragment string
	}{
		{"too short asks for detail", "We fixed it.", "step-by-step"},
		{"no ownership asks for role", teamOnlyAnswer, "your specific role"},
		{"no number asks for impact", ownedNoNumberAnswer, "measurable impact"},
		{"otherwise asks for reflection", longAnswer, "differently next time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe, err := oracle.Generate(context.Background(), "Q", tt.answer, nil, nil, 0)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if !strings.Contains(probe, tt.fragment) {
				t.Errorf("probe = %q, want it to contain %q", probe, tt.fragment)
			}
		})
	}
}

func TestRuleOracleSummarize(t *testing.T) {
	oracle := NewRuleBasedOracle()

	score := func(n int) *int { return &n }
	tests := []struct {
		name    string
		scores  []int
		wantRec string
		wantAvg float64
	}{
		{"strong hire", []int{5, 4}, "Strong Hire", 4.5},
		{"hire", []int{4, 4}, "Hire", 4.0},
		{"leaning hire", []int{3, 4}, "Leaning Hire", 3.5},
		{"neutral", []int{3}, "Neutral", 3.0},
		{"leaning no", []int{2}, "Leaning No", 2.0},
		{"no hire", []int{1}, "No Hire", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qa := make([]QAItem, 0, len(tt.scores))
			for _, s := range tt.scores {
				qa = append(qa, QAItem{Question: "Q", Answer: "A", Score: score(s), CompetencyScores: map[string]int{"Go": s}})
			}
			got, err := oracle.Summarize(context.Background(), "Backend Engineer", "desc", qa)
			if err != nil {
				t.Fatalf("Summarize failed: %v", err)
			}
			if got.Recommendation != tt.wantRec {
				t.Errorf("Recommendation = %q, want %q", got.Recommendation, tt.wantRec)
			}
			if got.AverageScore != tt.wantAvg {
				t.Errorf("AverageScore = %v, want %v", got.AverageScore, tt.wantAvg)
			}
			if got.CompetencySummary["Go"] != tt.wantAvg {
				t.Errorf("CompetencySummary = %v", got.CompetencySummary)
			}
			if got.OverallCommentary == "" {
				t.Error("empty commentary")
			}
		})
	}
}

func TestRuleOracleSummarizeEmptyTranscript(t *testing.T) {
	oracle := NewRuleBasedOracle()
	if _, err := oracle.Summarize(context.Background(), "Backend Engineer", "desc", nil); err == nil {
		t.Error("expected an error for an empty transcript")
	}
}

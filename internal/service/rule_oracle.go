package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// RuleBasedOracle is the deterministic predecessor of the LLM collaborators.
// It scores on surface signals (length, numbers, outcome words), picks probes
// from a fixed ladder, and summarises by plain averaging. Wired in when no
// Gemini key is configured, and handy as a stand-in wherever a live model is
// unwanted.
type RuleBasedOracle struct{}

func NewRuleBasedOracle() *RuleBasedOracle {
	return &RuleBasedOracle{}
}

var numberPattern = regexp.MustCompile(`\b\d+(\.\d+)?\b`)

func hasNumber(text string) bool {
	return numberPattern.MatchString(text)
}

func isTooShort(text string) bool {
	t := strings.TrimSpace(text)
	return len(t) < 60 || len(strings.Fields(t)) < 15
}

func missingOwnership(text string) bool {
	lowered := " " + strings.ToLower(text) + " "
	return !strings.Contains(lowered, " i ") && !strings.Contains(lowered, " my ")
}

var outcomeWords = []string{"result", "impact", "improved", "reduced", "increased", "optimized"}

func scoreAnswerText(answer string) int {
	a := strings.TrimSpace(answer)
	if len(a) < 40 {
		return 1
	}

	score := 2
	if len(strings.Fields(a)) >= 30 {
		score++
	}
	if hasNumber(a) {
		score++
	}
	lowered := strings.ToLower(a)
	for _, k := range outcomeWords {
		if strings.Contains(lowered, k) {
			score++
			break
		}
	}
	if score < 1 {
		score = 1
	}
	if score > 5 {
		score = 5
	}
	return score
}

func (o *RuleBasedOracle) Score(_ context.Context, _ string, answerText string, competencies []string) (*ScoreResult, error) {
	score := scoreAnswerText(answerText)

	compScores := make(map[string]int, len(competencies))
	for _, c := range competencies {
		compScores[c] = score
	}

	feedback := "Needs deeper clarity and reflection."
	switch {
	case score >= 4:
		feedback = "Strong answer with concrete detail."
	case isTooShort(answerText):
		feedback = "Answer is too brief; needs more detail."
	case missingOwnership(answerText):
		feedback = "Ownership is unclear."
	case !hasNumber(answerText):
		feedback = "Missing measurable impact."
	}

	return &ScoreResult{
		OverallScore:     score,
		CompetencyScores: compScores,
		Feedback:         feedback,
	}, nil
}

func (o *RuleBasedOracle) Generate(_ context.Context, _ string, answerText string, _ []string, _ *ScoreResult, _ int) (string, error) {
	switch {
	case isTooShort(answerText):
		return "Can you add more detail? Walk me through what you did step-by-step and what the outcome was.", nil
	case missingOwnership(answerText):
		return "What was your specific role in this? What did you personally do vs what the team did?", nil
	case !hasNumber(answerText):
		return "What was the measurable impact? For example: time saved, errors reduced, performance improved, or cost impact.", nil
	default:
		return "That makes sense — what would you do differently next time, and why?", nil
	}
}

func (o *RuleBasedOracle) Summarize(_ context.Context, jobTitle, _ string, qa []QAItem) (*SummaryResult, error) {
	if len(qa) == 0 {
		return nil, fmt.Errorf("cannot summarise an empty transcript")
	}

	var total float64
	var scored int
	compTotals := map[string]float64{}
	compCounts := map[string]int{}
	for _, item := range qa {
		if item.Score != nil {
			total += float64(*item.Score)
			scored++
		}
		for comp, s := range item.CompetencyScores {
			compTotals[comp] += float64(s)
			compCounts[comp]++
		}
	}

	avg := 0.0
	if scored > 0 {
		avg = total / float64(scored)
	}

	compSummary := make(map[string]float64, len(compTotals))
	comps := make([]string, 0, len(compTotals))
	for comp := range compTotals {
		compSummary[comp] = compTotals[comp] / float64(compCounts[comp])
		comps = append(comps, comp)
	}
	sort.Strings(comps)

	var recommendation string
	switch {
	case avg >= 4.5:
		recommendation = "Strong Hire"
	case avg >= 4.0:
		recommendation = "Hire"
	case avg >= 3.5:
		recommendation = "Leaning Hire"
	case avg >= 3.0:
		recommendation = "Neutral"
	case avg >= 2.0:
		recommendation = "Leaning No"
	default:
		recommendation = "No Hire"
	}

	var commentary strings.Builder
	commentary.WriteString(fmt.Sprintf("Candidate answered %d prompts for the %s role with an average score of %.1f. ", len(qa), jobTitle, avg))
	for _, comp := range comps {
		commentary.WriteString(fmt.Sprintf("%s averaged %.1f. ", comp, compSummary[comp]))
	}

	return &SummaryResult{
		Recommendation:    recommendation,
		OverallCommentary: strings.TrimSpace(commentary.String()),
		AverageScore:      avg,
		CompetencySummary: compSummary,
	}, nil
}

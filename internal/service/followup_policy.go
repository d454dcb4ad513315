package service

import (
	"strings"

	"github.com/dnkhanh/hireflow/config"
)

type Decision int

const (
	DecisionAdvance Decision = iota
	DecisionFollowup
)

// FollowupPolicy decides whether to keep probing the active spine question or
// advance. It never chooses what the follow-up asks; that is the generator's
// job.
type FollowupPolicy interface {
	Decide(score *ScoreResult, answerText string, currentRound, maxRounds int) Decision
}

type thresholdPolicy struct {
	cfg config.Interview
}

func NewFollowupPolicy(cfg *config.Config) FollowupPolicy {
	return &thresholdPolicy{cfg: cfg.Interview}
}

// Decide applies the rules in order: round cap, strong answer, weak or
// too-short answer, default advance.
func (p *thresholdPolicy) Decide(score *ScoreResult, answerText string, currentRound, maxRounds int) Decision {
	if currentRound >= maxRounds {
		return DecisionAdvance
	}
	if score.OverallScore >= p.cfg.AdvanceScore {
		return DecisionAdvance
	}
	if score.OverallScore <= p.cfg.ProbeScore || p.tooShort(answerText) {
		return DecisionFollowup
	}
	return DecisionAdvance
}

func (p *thresholdPolicy) tooShort(answerText string) bool {
	trimmed := strings.TrimSpace(answerText)
	return len(trimmed) < p.cfg.MinAnswerChars || len(strings.Fields(trimmed)) < p.cfg.MinAnswerWords
}

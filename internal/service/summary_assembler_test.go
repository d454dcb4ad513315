package service

import (
	"testing"

	"github.com/dnkhanh/hireflow/internal/model"
)

func TestAssembleQAKeepsEveryAnswer(t *testing.T) {
	score3, score4 := 3, 4
	qID := uint(10)
	answers := []model.Answer{
		{
			QuestionID:       &qID,
			QuestionText:     "Tell me about an incident.",
			AnswerText:       "It was DNS.",
			Score:            &score3,
			CompetencyScores: map[string]int{"Debugging": 3},
		},
		{
			QuestionText:     "What exactly failed?",
			AnswerText:       "The resolver cache.",
			IsFollowup:       true,
			ParentQuestionID: &qID,
			FollowupRound:    1,
			Score:            &score4,
		},
	}

	qa := AssembleQA(answers)

	if len(qa) != len(answers) {
		t.Fatalf("assembled %d items from %d answers", len(qa), len(answers))
	}
	if qa[0].Question != "Tell me about an incident." || *qa[0].Score != 3 {
		t.Errorf("spine item = %+v", qa[0])
	}
	if !qa[1].IsFollowup || qa[1].FollowupRound != 1 {
		t.Errorf("follow-up item lost its probing context: %+v", qa[1])
	}
	if qa[0].CompetencyScores["Debugging"] != 3 {
		t.Errorf("competency scores dropped: %+v", qa[0].CompetencyScores)
	}
}

func TestAssembleQAEmpty(t *testing.T) {
	if qa := AssembleQA(nil); len(qa) != 0 {
		t.Errorf("AssembleQA(nil) = %v, want empty", qa)
	}
}

package service

import "github.com/dnkhanh/hireflow/internal/model"

// AssembleQA maps an interview's answers, in creation order, onto the
// summarizer's input. Nothing is filtered: spine answers and follow-ups both
// go in so the summarizer sees the full probing context.
func AssembleQA(answers []model.Answer) []QAItem {
	qa := make([]QAItem, 0, len(answers))
	for _, a := range answers {
		qa = append(qa, QAItem{
			Question:         a.QuestionText,
			Answer:           a.AnswerText,
			Score:            a.Score,
			CompetencyScores: a.CompetencyScores,
			IsFollowup:       a.IsFollowup,
			FollowupRound:    a.FollowupRound,
		})
	}
	return qa
}

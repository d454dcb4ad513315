package service

import (
	"sort"

	"github.com/dnkhanh/hireflow/internal/model"
)

// QuestionSequencer orders a job's spine questions and resolves "the Nth
// spine question". Pure and idempotent: same inputs, same outputs.
type QuestionSequencer struct{}

func NewQuestionSequencer() *QuestionSequencer {
	return &QuestionSequencer{}
}

// Order sorts by (order_index ascending, id ascending). The ID tie-breaker
// keeps the order total and stable even when order_index collides.
func (s *QuestionSequencer) Order(questions []model.JobQuestion) []model.JobQuestion {
	ordered := make([]model.JobQuestion, len(questions))
	copy(ordered, questions)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].OrderIndex != ordered[j].OrderIndex {
			return ordered[i].OrderIndex < ordered[j].OrderIndex
		}
		return ordered[i].ID < ordered[j].ID
	})
	return ordered
}

// Resolve returns the spine question at index, or nil when the index is out
// of bounds — the "spine exhausted" signal.
func (s *QuestionSequencer) Resolve(questions []model.JobQuestion, index int) *model.JobQuestion {
	ordered := s.Order(questions)
	if index < 0 || index >= len(ordered) {
		return nil
	}
	q := ordered[index]
	return &q
}

// Snapshot materializes the ordered question IDs. Stored on the interview at
// start time so later edits to the job cannot shift the in-flight spine.
func (s *QuestionSequencer) Snapshot(questions []model.JobQuestion) []uint {
	ordered := s.Order(questions)
	ids := make([]uint, 0, len(ordered))
	for _, q := range ordered {
		ids = append(ids, q.ID)
	}
	return ids
}

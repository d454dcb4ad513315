package service

import (
	"context"
	"strings"
	"time"

	"github.com/dnkhanh/hireflow/internal/dto"
	"github.com/dnkhanh/hireflow/internal/model"
	"github.com/dnkhanh/hireflow/internal/repository"
	"github.com/rs/zerolog/log"
)

const integrityRulesVersion = "v1"

// Event weights. Transparent, deterministic, tunable without touching the
// frontend.
var integrityWeights = map[string]int{
	"TAB_HIDDEN":      8,
	"WINDOW_BLUR":     6,
	"PASTE":           10,
	"COPY":            4,
	"CUT":             4,
	"FULLSCREEN_EXIT": 12,
}

// ProctoringService records behavioral events and keeps the interview's
// integrity score current. Scoring is stateless over the full event list and
// entirely independent of question progression.
type ProctoringService interface {
	RecordEvents(ctx context.Context, interviewID uint, req dto.ProctoringSubmitDTO) (*dto.IntegrityDTO, error)
}

type proctoringService struct {
	store repository.Store
}

func NewProctoringService(store repository.Store) ProctoringService {
	return &proctoringService{store: store}
}

func (s *proctoringService) RecordEvents(ctx context.Context, interviewID uint, req dto.ProctoringSubmitDTO) (*dto.IntegrityDTO, error) {
	var out *dto.IntegrityDTO
	err := s.store.InTx(ctx, func(tx repository.Store) error {
		iv, err := tx.Interviews().FindByIDForUpdate(interviewID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		batch := make([]model.ProctoringEvent, 0, len(req.Events))
		for _, e := range req.Events {
			occurred := now
			if e.OccurredAt != nil {
				occurred = e.OccurredAt.UTC()
			}
			batch = append(batch, model.ProctoringEvent{
				InterviewID: interviewID,
				EventType:   normalizeEventType(e.EventType),
				OccurredAt:  occurred,
			})
		}
		if err := tx.ProctoringEvents().AppendBatch(batch); err != nil {
			return err
		}

		all, err := tx.ProctoringEvents().FindByInterviewID(interviewID)
		if err != nil {
			return err
		}
		score, flags := ComputeIntegrity(all)

		iv.IntegrityScore = &score
		iv.IntegrityFlags = flags
		if err := tx.Interviews().Update(iv); err != nil {
			return err
		}

		log.Info().Uint("interviewID", interviewID).Int("score", score).Int("events", len(all)).Msg("Integrity recomputed")
		out = &dto.IntegrityDTO{InterviewID: interviewID, Score: score, Flags: flags}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ComputeIntegrity scores a full event list: weighted penalties, an
// escalation for repeated tab switches, clamped to 0-100.
func ComputeIntegrity(events []model.ProctoringEvent) (int, map[string]any) {
	counts := map[string]int{}
	penalty := 0

	for _, e := range events {
		et := normalizeEventType(e.EventType)
		counts[et]++
		penalty += integrityWeights[et]
	}

	// Repeated tab switches hurt more.
	if tab := counts["TAB_HIDDEN"]; tab >= 3 {
		penalty += (tab - 2) * 5
	}

	score := 100 - penalty
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	flags := map[string]any{
		"version": integrityRulesVersion,
		"counts":  counts,
		"penalty": penalty,
	}
	return score, flags
}

func normalizeEventType(eventType string) string {
	return strings.ToUpper(strings.TrimSpace(eventType))
}

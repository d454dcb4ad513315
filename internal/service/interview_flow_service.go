package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dnkhanh/hireflow/config"
	"github.com/dnkhanh/hireflow/internal/apperror"
	"github.com/dnkhanh/hireflow/internal/dto"
	"github.com/dnkhanh/hireflow/internal/model"
	"github.com/dnkhanh/hireflow/internal/repository"
	"github.com/rs/zerolog/log"
)

// fallbackProbeText is the one sanctioned default: used when the generator
// returns an empty follow-up. Any other collaborator failure is an error.
const fallbackProbeText = "Can you add more detail? Walk me through what you did step-by-step and what the outcome was."

// InterviewFlowService is the adaptive progression state machine. Every
// operation runs inside a transaction holding a row lock on the interview, so
// concurrent calls against the same interview serialize; different interviews
// never contend.
type InterviewFlowService interface {
	Start(ctx context.Context, inviteToken string) (*dto.InterviewStartDTO, error)
	SubmitAnswer(ctx context.Context, interviewID uint, answerText string) (*dto.AnswerScoringDTO, error)
	Complete(ctx context.Context, interviewID uint) (*dto.InterviewCompleteDTO, error)
	Summarize(ctx context.Context, interviewID uint) (*dto.InterviewSummaryDTO, error)
}

type interviewFlowService struct {
	store      repository.Store
	sequencer  *QuestionSequencer
	policy     FollowupPolicy
	oracle     ScoringOracle
	generator  FollowupGenerator
	summarizer Summarizer
	cfg        *config.Config
}

func NewInterviewFlowService(
	store repository.Store,
	sequencer *QuestionSequencer,
	policy FollowupPolicy,
	oracle ScoringOracle,
	generator FollowupGenerator,
	summarizer Summarizer,
	cfg *config.Config,
) InterviewFlowService {
	return &interviewFlowService{
		store:      store,
		sequencer:  sequencer,
		policy:     policy,
		oracle:     oracle,
		generator:  generator,
		summarizer: summarizer,
		cfg:        cfg,
	}
}

// Start transitions NOT_STARTED to IN_PROGRESS, snapshots the spine and
// returns the first question. Calling it again on a running interview is
// idempotent: it returns the currently open prompt without touching progress.
func (s *interviewFlowService) Start(ctx context.Context, inviteToken string) (*dto.InterviewStartDTO, error) {
	var out *dto.InterviewStartDTO
	err := s.store.InTx(ctx, func(tx repository.Store) error {
		found, err := tx.Interviews().FindByToken(inviteToken)
		if err != nil {
			return err
		}
		iv, err := tx.Interviews().FindByIDForUpdate(found.ID)
		if err != nil {
			return err
		}
		if iv.Status == model.InterviewStatusCompleted {
			return apperror.InvalidStatef("interview %d already completed", iv.ID)
		}

		questions, err := tx.Questions().FindByJobID(iv.JobID)
		if err != nil {
			return err
		}
		ordered := s.sequencer.Order(questions)
		byID := indexQuestionsByID(ordered)

		if iv.Status == model.InterviewStatusInProgress {
			next, err := s.currentPrompt(iv, ordered, byID)
			if err != nil {
				return err
			}
			out = &dto.InterviewStartDTO{InterviewID: iv.ID, Status: iv.Status, NextQuestion: next}
			return nil
		}

		now := time.Now().UTC()
		iv.Status = model.InterviewStatusInProgress
		if iv.StartedAt == nil {
			iv.StartedAt = &now
		}
		iv.QuestionSnapshot = s.sequencer.Snapshot(ordered)

		q, err := s.resolveByIndex(iv, ordered, byID, iv.CurrentQuestionIndex)
		if err != nil {
			return err
		}
		if q != nil {
			iv.ActiveQuestionID = &q.ID
		} else {
			// Job without questions: the first submit completes the interview.
			iv.ActiveQuestionID = nil
		}
		iv.PromptKind = model.PromptKindSpine
		iv.FollowupRound = 0
		iv.FollowupText = ""

		if err := tx.Interviews().Update(iv); err != nil {
			return err
		}

		log.Info().Uint("interviewID", iv.ID).Int("questions", len(ordered)).Msg("Interview started")
		out = &dto.InterviewStartDTO{InterviewID: iv.ID, Status: iv.Status, NextQuestion: spinePromptDTO(q)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitAnswer records one answer and returns exactly one of: a follow-up
// probe, the next spine question, or completion. The answer row and the
// interview mutation commit together; an oracle failure rolls both back.
func (s *interviewFlowService) SubmitAnswer(ctx context.Context, interviewID uint, answerText string) (*dto.AnswerScoringDTO, error) {
	var out *dto.AnswerScoringDTO
	err := s.store.InTx(ctx, func(tx repository.Store) error {
		iv, err := tx.Interviews().FindByIDForUpdate(interviewID)
		if err != nil {
			return err
		}
		switch iv.Status {
		case model.InterviewStatusCompleted:
			return apperror.InvalidStatef("interview %d already completed", interviewID)
		case model.InterviewStatusNotStarted:
			return apperror.InvalidStatef("interview %d has not been started", interviewID)
		}

		job, err := tx.Jobs().FindByID(iv.JobID)
		if err != nil {
			return err
		}
		questions, err := tx.Questions().FindByJobID(iv.JobID)
		if err != nil {
			return err
		}
		ordered := s.sequencer.Order(questions)
		byID := indexQuestionsByID(ordered)

		isFollowup := iv.PromptKind == model.PromptKindFollowup

		// The base spine question, from the active id with index resolution as
		// the fallback.
		var spine *model.JobQuestion
		if iv.ActiveQuestionID != nil {
			if q, ok := byID[*iv.ActiveQuestionID]; ok {
				spine = &q
			}
		}
		if spine == nil {
			spine, err = s.resolveByIndex(iv, ordered, byID, iv.CurrentQuestionIndex)
			if err != nil {
				return err
			}
			if spine != nil {
				iv.ActiveQuestionID = &spine.ID
			}
		}

		// Spine exhausted and nothing pending: complete without an answer row.
		if spine == nil && !isFollowup {
			s.finish(iv)
			if err := tx.Interviews().Update(iv); err != nil {
				return err
			}
			log.Info().Uint("interviewID", iv.ID).Msg("Interview completed, spine exhausted")
			out = &dto.AnswerScoringDTO{InterviewStatus: iv.Status}
			return nil
		}
		if spine == nil {
			return apperror.NotFoundf("active spine question for interview %d", interviewID)
		}

		askedText := spine.Text
		currentRound := 0
		if isFollowup {
			askedText = iv.FollowupText
			currentRound = iv.FollowupRound
		}

		// Scoring always targets the base spine question, even when the
		// literal prompt answered was a follow-up.
		score, err := s.scoreAnswer(ctx, spine.Text, answerText, job.Competencies)
		if err != nil {
			return err
		}

		answer := &model.Answer{
			InterviewID:      iv.ID,
			QuestionText:     askedText,
			IsFollowup:       isFollowup,
			FollowupRound:    currentRound,
			AnswerText:       answerText,
			Score:            &score.OverallScore,
			CompetencyScores: score.CompetencyScores,
			AIFeedback:       score.Feedback,
		}
		if isFollowup {
			answer.ParentQuestionID = &spine.ID
		} else {
			answer.QuestionID = &spine.ID
		}
		if err := tx.Answers().Append(answer); err != nil {
			return err
		}

		var next *dto.NextQuestionDTO
		switch s.policy.Decide(score, answerText, currentRound, iv.MaxFollowupsPerQuestion) {
		case DecisionFollowup:
			text, err := s.generateFollowup(ctx, spine.Text, answerText, job.Competencies, score, currentRound)
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				text = fallbackProbeText
			}
			iv.PromptKind = model.PromptKindFollowup
			iv.FollowupRound = currentRound + 1
			iv.FollowupText = text
			next = &dto.NextQuestionDTO{Kind: model.PromptKindFollowup, Text: text, Round: iv.FollowupRound}

		default: // advance
			iv.PromptKind = model.PromptKindSpine
			iv.FollowupRound = 0
			iv.FollowupText = ""
			iv.CurrentQuestionIndex++

			nq, err := s.resolveByIndex(iv, ordered, byID, iv.CurrentQuestionIndex)
			if err != nil {
				return err
			}
			if nq != nil {
				iv.ActiveQuestionID = &nq.ID
				next = spinePromptDTO(nq)
			} else {
				iv.ActiveQuestionID = nil
				s.finish(iv)
			}
		}

		if err := tx.Interviews().Update(iv); err != nil {
			return err
		}

		log.Info().
			Uint("interviewID", iv.ID).
			Bool("wasFollowup", isFollowup).
			Int("score", score.OverallScore).
			Str("status", iv.Status).
			Msg("Answer processed")

		out = &dto.AnswerScoringDTO{
			AskedQuestionText: askedText,
			IsFollowup:        isFollowup,
			FollowupRound:     currentRound,
			Score:             &score.OverallScore,
			CompetencyScores:  score.CompetencyScores,
			AIFeedback:        score.Feedback,
			NextQuestion:      next,
			InterviewStatus:   iv.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Complete builds and persists the transcript of an interview that already
// reached COMPLETED through the candidate flow.
func (s *interviewFlowService) Complete(ctx context.Context, interviewID uint) (*dto.InterviewCompleteDTO, error) {
	var out *dto.InterviewCompleteDTO
	err := s.store.InTx(ctx, func(tx repository.Store) error {
		iv, err := tx.Interviews().FindByIDForUpdate(interviewID)
		if err != nil {
			return err
		}
		if iv.Status != model.InterviewStatusCompleted {
			return apperror.InvalidStatef("interview %d is not completed yet", interviewID)
		}

		answers, err := tx.Answers().FindByInterviewID(interviewID)
		if err != nil {
			return err
		}

		var b strings.Builder
		for _, a := range answers {
			b.WriteString(fmt.Sprintf("Q: %s\nA: %s\n\n", a.QuestionText, a.AnswerText))
		}
		iv.Transcript = strings.TrimSpace(b.String())
		if iv.CompletedAt == nil {
			now := time.Now().UTC()
			iv.CompletedAt = &now
		}
		if err := tx.Interviews().Update(iv); err != nil {
			return err
		}

		out = &dto.InterviewCompleteDTO{InterviewID: iv.ID, Status: iv.Status, Transcript: iv.Transcript}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Summarize assembles the chronological transcript and delegates the verdict
// to the summarizer. No averaging happens here.
func (s *interviewFlowService) Summarize(ctx context.Context, interviewID uint) (*dto.InterviewSummaryDTO, error) {
	var out *dto.InterviewSummaryDTO
	err := s.store.InTx(ctx, func(tx repository.Store) error {
		iv, err := tx.Interviews().FindByIDForUpdate(interviewID)
		if err != nil {
			return err
		}
		if iv.Status != model.InterviewStatusCompleted {
			return apperror.InvalidStatef("interview %d is not completed yet", interviewID)
		}

		job, err := tx.Jobs().FindByID(iv.JobID)
		if err != nil {
			return err
		}
		answers, err := tx.Answers().FindByInterviewID(interviewID)
		if err != nil {
			return err
		}

		octx, cancel := context.WithTimeout(ctx, s.cfg.Interview.OracleTimeout)
		defer cancel()
		summary, err := s.summarizer.Summarize(octx, job.Title, job.Description, AssembleQA(answers))
		if err != nil {
			return apperror.OracleFailure(err)
		}

		out = &dto.InterviewSummaryDTO{
			InterviewID:       iv.ID,
			Recommendation:    summary.Recommendation,
			OverallCommentary: summary.OverallCommentary,
			AverageScore:      summary.AverageScore,
			CompetencySummary: summary.CompetencySummary,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *interviewFlowService) scoreAnswer(ctx context.Context, questionText, answerText string, competencies []string) (*ScoreResult, error) {
	octx, cancel := context.WithTimeout(ctx, s.cfg.Interview.OracleTimeout)
	defer cancel()
	result, err := s.oracle.Score(octx, questionText, answerText, competencies)
	if err != nil {
		return nil, apperror.OracleFailure(err)
	}
	return result, nil
}

func (s *interviewFlowService) generateFollowup(ctx context.Context, baseQuestion, answerText string, competencies []string, score *ScoreResult, round int) (string, error) {
	octx, cancel := context.WithTimeout(ctx, s.cfg.Interview.OracleTimeout)
	defer cancel()
	text, err := s.generator.Generate(octx, baseQuestion, answerText, competencies, score, round)
	if err != nil {
		return "", apperror.OracleFailure(err)
	}
	return text, nil
}

// resolveByIndex resolves the spine question at index through the start-time
// snapshot; live (order_index, id) resolution is the fallback for interviews
// without one. Nil means the spine is exhausted.
func (s *interviewFlowService) resolveByIndex(iv *model.Interview, ordered []model.JobQuestion, byID map[uint]model.JobQuestion, index int) (*model.JobQuestion, error) {
	if iv.QuestionSnapshot == nil {
		return s.sequencer.Resolve(ordered, index), nil
	}
	if index < 0 || index >= len(iv.QuestionSnapshot) {
		return nil, nil
	}
	id := iv.QuestionSnapshot[index]
	q, ok := byID[id]
	if !ok {
		return nil, apperror.NotFoundf("snapshotted question %d", id)
	}
	return &q, nil
}

// currentPrompt rebuilds the prompt the candidate is currently facing.
func (s *interviewFlowService) currentPrompt(iv *model.Interview, ordered []model.JobQuestion, byID map[uint]model.JobQuestion) (*dto.NextQuestionDTO, error) {
	if iv.PromptKind == model.PromptKindFollowup {
		return &dto.NextQuestionDTO{Kind: model.PromptKindFollowup, Text: iv.FollowupText, Round: iv.FollowupRound}, nil
	}
	if iv.ActiveQuestionID != nil {
		if q, ok := byID[*iv.ActiveQuestionID]; ok {
			return spinePromptDTO(&q), nil
		}
	}
	q, err := s.resolveByIndex(iv, ordered, byID, iv.CurrentQuestionIndex)
	if err != nil {
		return nil, err
	}
	return spinePromptDTO(q), nil
}

func (s *interviewFlowService) finish(iv *model.Interview) {
	iv.Status = model.InterviewStatusCompleted
	iv.PromptKind = model.PromptKindSpine
	iv.FollowupRound = 0
	iv.FollowupText = ""
	if iv.CompletedAt == nil {
		now := time.Now().UTC()
		iv.CompletedAt = &now
	}
}

func spinePromptDTO(q *model.JobQuestion) *dto.NextQuestionDTO {
	if q == nil {
		return nil
	}
	return &dto.NextQuestionDTO{
		Kind:       model.PromptKindSpine,
		QuestionID: &q.ID,
		Text:       q.Text,
		Competency: q.Competency,
	}
}

func indexQuestionsByID(questions []model.JobQuestion) map[uint]model.JobQuestion {
	byID := make(map[uint]model.JobQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return byID
}

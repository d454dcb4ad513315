package service

import (
	"context"

	"github.com/dnkhanh/hireflow/config"
	"github.com/dnkhanh/hireflow/internal/dto"
	"github.com/dnkhanh/hireflow/internal/model"
	"github.com/dnkhanh/hireflow/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// AdminJobService covers the recruiter-facing surface: jobs with their
// ordered questions, interview invites, and interview inspection.
type AdminJobService interface {
	CreateJob(ctx context.Context, req dto.JobCreateDTO) (*dto.JobDTO, error)
	GetJob(ctx context.Context, id uint) (*dto.JobDTO, error)
	ListJobs(ctx context.Context) ([]dto.JobDTO, error)
	CreateInterview(ctx context.Context, req dto.InterviewCreateDTO) (*dto.InterviewDTO, error)
	ListInterviews(ctx context.Context, jobID uint) ([]dto.InterviewDTO, error)
	GetInterviewDetail(ctx context.Context, interviewID uint) (*dto.InterviewDetailDTO, error)
}

type adminJobService struct {
	store repository.Store
	cfg   *config.Config
}

func NewAdminJobService(store repository.Store, cfg *config.Config) AdminJobService {
	return &adminJobService{store: store, cfg: cfg}
}

func (s *adminJobService) CreateJob(ctx context.Context, req dto.JobCreateDTO) (*dto.JobDTO, error) {
	job := model.Job{
		Title:        req.Title,
		Description:  req.Description,
		Competencies: req.Competencies,
	}
	for _, q := range req.Questions {
		job.Questions = append(job.Questions, model.JobQuestion{
			Text:       q.Text,
			Competency: q.Competency,
			OrderIndex: q.OrderIndex,
		})
	}

	err := s.store.InTx(ctx, func(tx repository.Store) error {
		return tx.Jobs().Create(&job)
	})
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create job")
		return nil, err
	}

	var resp dto.JobDTO
	if err := copier.Copy(&resp, &job); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *adminJobService) GetJob(ctx context.Context, id uint) (*dto.JobDTO, error) {
	job, err := s.store.Jobs().FindByIDWithQuestions(id)
	if err != nil {
		return nil, err
	}
	var resp dto.JobDTO
	if err := copier.Copy(&resp, job); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *adminJobService) ListJobs(ctx context.Context) ([]dto.JobDTO, error) {
	jobs, err := s.store.Jobs().FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.JobDTO, 0, len(jobs))
	if err := copier.Copy(&resp, &jobs); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateInterview issues one invite for a (job, candidate). The token is
// generated here, once, and never changes.
func (s *adminJobService) CreateInterview(ctx context.Context, req dto.InterviewCreateDTO) (*dto.InterviewDTO, error) {
	maxFollowups := s.cfg.Interview.MaxFollowups
	if req.MaxFollowups != nil {
		maxFollowups = *req.MaxFollowups
	}

	interview := model.Interview{
		JobID:                   req.JobID,
		CandidateName:           req.CandidateName,
		CandidateEmail:          req.CandidateEmail,
		InviteToken:             uuid.NewString(),
		Status:                  model.InterviewStatusNotStarted,
		PromptKind:              model.PromptKindSpine,
		MaxFollowupsPerQuestion: maxFollowups,
	}

	err := s.store.InTx(ctx, func(tx repository.Store) error {
		if _, err := tx.Jobs().FindByID(req.JobID); err != nil {
			return err
		}
		return tx.Interviews().Create(&interview)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("jobID", req.JobID).Uint("interviewID", interview.ID).Msg("Interview invite created")

	var resp dto.InterviewDTO
	if err := copier.Copy(&resp, &interview); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *adminJobService) ListInterviews(ctx context.Context, jobID uint) ([]dto.InterviewDTO, error) {
	if _, err := s.store.Jobs().FindByID(jobID); err != nil {
		return nil, err
	}
	interviews, err := s.store.Interviews().FindAllByJob(jobID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.InterviewDTO, 0, len(interviews))
	if err := copier.Copy(&resp, &interviews); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *adminJobService) GetInterviewDetail(ctx context.Context, interviewID uint) (*dto.InterviewDetailDTO, error) {
	interview, err := s.store.Interviews().FindByIDWithAnswers(interviewID)
	if err != nil {
		return nil, err
	}

	var resp dto.InterviewDetailDTO
	if err := copier.Copy(&resp, interview); err != nil {
		return nil, err
	}
	resp.JobTitle = interview.Job.Title

	resp.Answers = make([]dto.AnswerDTO, 0, len(interview.Answers))
	for _, a := range interview.Answers {
		var answerDTO dto.AnswerDTO
		if err := copier.Copy(&answerDTO, &a); err != nil {
			return nil, err
		}
		resp.Answers = append(resp.Answers, answerDTO)
	}
	return &resp, nil
}

package repository

import (
	"errors"

	"github.com/dnkhanh/hireflow/internal/apperror"
	"github.com/dnkhanh/hireflow/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InterviewRepository interface {
	Create(interview *model.Interview) error
	Update(interview *model.Interview) error
	FindByID(id uint) (*model.Interview, error)
	// FindByIDForUpdate locks the interview row (SELECT ... FOR UPDATE).
	// Only meaningful inside a transaction; it is what serializes the four
	// state-machine operations per interview.
	FindByIDForUpdate(id uint) (*model.Interview, error)
	FindByToken(token string) (*model.Interview, error)
	FindByIDWithAnswers(id uint) (*model.Interview, error)
	FindAllByJob(jobID uint) ([]model.Interview, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(interview *model.Interview) error {
	return r.db.Create(interview).Error
}

func (r *interviewRepository) Update(interview *model.Interview) error {
	return r.db.Save(interview).Error
}

func (r *interviewRepository) FindByID(id uint) (*model.Interview, error) {
	var interview model.Interview
	if err := r.db.First(&interview, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("interview %d", id)
		}
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindByIDForUpdate(id uint) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&interview, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("interview %d", id)
		}
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindByToken(token string) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.Where("invite_token = ?", token).First(&interview).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("interview with token %s", token)
		}
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindByIDWithAnswers(id uint) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.
		Preload("Job").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.created_at ASC, answers.id ASC")
		}).
		First(&interview, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("interview %d", id)
		}
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindAllByJob(jobID uint) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.Where("job_id = ?", jobID).Order("id DESC").Find(&interviews).Error
	if err != nil {
		return nil, err
	}
	return interviews, nil
}

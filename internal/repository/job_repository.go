package repository

import (
	"errors"

	"github.com/dnkhanh/hireflow/internal/apperror"
	"github.com/dnkhanh/hireflow/internal/model"
	"gorm.io/gorm"
)

type JobRepository interface {
	Create(job *model.Job) error
	FindByID(id uint) (*model.Job, error)
	FindByIDWithQuestions(id uint) (*model.Job, error)
	FindAll() ([]model.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *model.Job) error {
	// GORM creates the associated questions when job.Questions is populated.
	return r.db.Create(job).Error
}

func (r *jobRepository) FindByID(id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("job %d", id)
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindByIDWithQuestions(id uint) (*model.Job, error) {
	var job model.Job
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("job_questions.order_index ASC, job_questions.id ASC")
	}).First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("job %d", id)
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindAll() ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

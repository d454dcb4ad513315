package repository

import (
	"errors"

	"github.com/dnkhanh/hireflow/internal/apperror"
	"github.com/dnkhanh/hireflow/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByID(id uint) (*model.JobQuestion, error)
	// FindByJobID returns a job's questions in spine order:
	// order_index ascending, ID ascending as the tie-breaker.
	FindByJobID(jobID uint) ([]model.JobQuestion, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByID(id uint) (*model.JobQuestion, error) {
	var question model.JobQuestion
	if err := r.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("question %d", id)
		}
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByJobID(jobID uint) ([]model.JobQuestion, error) {
	var questions []model.JobQuestion
	err := r.db.
		Where("job_id = ?", jobID).
		Order("order_index ASC, id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

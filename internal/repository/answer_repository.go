package repository

import (
	"github.com/dnkhanh/hireflow/internal/model"
	"gorm.io/gorm"
)

// AnswerRepository is append-only: answers are created once, never updated or
// deleted. The transcript is the creation-ordered list.
type AnswerRepository interface {
	Append(answer *model.Answer) error
	FindByInterviewID(interviewID uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Append(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) FindByInterviewID(interviewID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Where("interview_id = ?", interviewID).
		Order("created_at ASC, id ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

package repository

import (
	"github.com/dnkhanh/hireflow/internal/model"
	"gorm.io/gorm"
)

type ProctoringEventRepository interface {
	AppendBatch(events []model.ProctoringEvent) error
	FindByInterviewID(interviewID uint) ([]model.ProctoringEvent, error)
}

type proctoringEventRepository struct {
	db *gorm.DB
}

func NewProctoringEventRepository(db *gorm.DB) ProctoringEventRepository {
	return &proctoringEventRepository{db: db}
}

func (r *proctoringEventRepository) AppendBatch(events []model.ProctoringEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.Create(&events).Error
}

func (r *proctoringEventRepository) FindByInterviewID(interviewID uint) ([]model.ProctoringEvent, error) {
	var events []model.ProctoringEvent
	err := r.db.
		Where("interview_id = ?", interviewID).
		Order("created_at ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the entity repositories and transaction handling. InTx hands
// fn a Store bound to the transaction, so a submit-answer turn can lock the
// interview row, append the answer and update the interview atomically.
type Store interface {
	Jobs() JobRepository
	Questions() QuestionRepository
	Interviews() InterviewRepository
	Answers() AnswerRepository
	ProctoringEvents() ProctoringEventRepository

	InTx(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Jobs() JobRepository                         { return &jobRepository{db: s.db} }
func (s *gormStore) Questions() QuestionRepository               { return &questionRepository{db: s.db} }
func (s *gormStore) Interviews() InterviewRepository             { return &interviewRepository{db: s.db} }
func (s *gormStore) Answers() AnswerRepository                   { return &answerRepository{db: s.db} }
func (s *gormStore) ProctoringEvents() ProctoringEventRepository { return &proctoringEventRepository{db: s.db} }

func (s *gormStore) InTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

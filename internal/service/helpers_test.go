package service

import (
	"context"
	"sort"
	"time"

	"github.com/dnkhanh/hireflow/config"
	"github.com/dnkhanh/hireflow/internal/apperror"
	"github.com/dnkhanh/hireflow/internal/model"
	"github.com/dnkhanh/hireflow/internal/repository"
)

// memStore is an in-memory repository.Store for exercising the services
// without a database. InTx runs the callback directly; tests that care about
// rollback rely on the services erroring before any write.
type memStore struct {
	jobs       map[uint]*model.Job
	questions  []model.JobQuestion
	interviews map[uint]*model.Interview
	answers    []model.Answer
	events     []model.ProctoringEvent

	nextJobID       uint
	nextQuestionID  uint
	nextInterviewID uint
	nextAnswerID    uint
	nextEventID     uint
}

func newMemStore() *memStore {
	return &memStore{
		jobs:       map[uint]*model.Job{},
		interviews: map[uint]*model.Interview{},
	}
}

func (s *memStore) Jobs() repository.JobRepository                         { return memJobs{s} }
func (s *memStore) Questions() repository.QuestionRepository               { return memQuestions{s} }
func (s *memStore) Interviews() repository.InterviewRepository             { return memInterviews{s} }
func (s *memStore) Answers() repository.AnswerRepository                   { return memAnswers{s} }
func (s *memStore) ProctoringEvents() repository.ProctoringEventRepository { return memEvents{s} }

func (s *memStore) InTx(_ context.Context, fn func(tx repository.Store) error) error {
	return fn(s)
}

type memJobs struct{ s *memStore }

func (r memJobs) Create(job *model.Job) error {
	r.s.nextJobID++
	job.ID = r.s.nextJobID
	for i := range job.Questions {
		r.s.nextQuestionID++
		job.Questions[i].ID = r.s.nextQuestionID
		job.Questions[i].JobID = job.ID
		r.s.questions = append(r.s.questions, job.Questions[i])
	}
	stored := *job
	r.s.jobs[job.ID] = &stored
	return nil
}

func (r memJobs) FindByID(id uint) (*model.Job, error) {
	job, ok := r.s.jobs[id]
	if !ok {
		return nil, apperror.NotFoundf("job %d", id)
	}
	copied := *job
	copied.Questions = nil
	return &copied, nil
}

func (r memJobs) FindByIDWithQuestions(id uint) (*model.Job, error) {
	job, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	job.Questions, _ = memQuestions{r.s}.FindByJobID(id)
	return job, nil
}

func (r memJobs) FindAll() ([]model.Job, error) {
	out := make([]model.Job, 0, len(r.s.jobs))
	for _, job := range r.s.jobs {
		copied := *job
		copied.Questions = nil
		out = append(out, copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memQuestions struct{ s *memStore }

func (r memQuestions) FindByID(id uint) (*model.JobQuestion, error) {
	for _, q := range r.s.questions {
		if q.ID == id {
			copied := q
			return &copied, nil
		}
	}
	return nil, apperror.NotFoundf("question %d", id)
}

func (r memQuestions) FindByJobID(jobID uint) ([]model.JobQuestion, error) {
	var out []model.JobQuestion
	for _, q := range r.s.questions {
		if q.JobID == jobID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type memInterviews struct{ s *memStore }

func (r memInterviews) Create(iv *model.Interview) error {
	r.s.nextInterviewID++
	iv.ID = r.s.nextInterviewID
	stored := *iv
	r.s.interviews[iv.ID] = &stored
	return nil
}

func (r memInterviews) Update(iv *model.Interview) error {
	if _, ok := r.s.interviews[iv.ID]; !ok {
		return apperror.NotFoundf("interview %d", iv.ID)
	}
	stored := *iv
	r.s.interviews[iv.ID] = &stored
	return nil
}

func (r memInterviews) FindByID(id uint) (*model.Interview, error) {
	iv, ok := r.s.interviews[id]
	if !ok {
		return nil, apperror.NotFoundf("interview %d", id)
	}
	copied := *iv
	return &copied, nil
}

func (r memInterviews) FindByIDForUpdate(id uint) (*model.Interview, error) {
	return r.FindByID(id)
}

func (r memInterviews) FindByToken(token string) (*model.Interview, error) {
	for _, iv := range r.s.interviews {
		if iv.InviteToken == token {
			copied := *iv
			return &copied, nil
		}
	}
	return nil, apperror.NotFoundf("interview with token %s", token)
}

func (r memInterviews) FindByIDWithAnswers(id uint) (*model.Interview, error) {
	iv, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if job, ok := r.s.jobs[iv.JobID]; ok {
		iv.Job = *job
	}
	iv.Answers, _ = memAnswers{r.s}.FindByInterviewID(id)
	return iv, nil
}

func (r memInterviews) FindAllByJob(jobID uint) ([]model.Interview, error) {
	var out []model.Interview
	for _, iv := range r.s.interviews {
		if iv.JobID == jobID {
			out = append(out, *iv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type memAnswers struct{ s *memStore }

func (r memAnswers) Append(answer *model.Answer) error {
	r.s.nextAnswerID++
	answer.ID = r.s.nextAnswerID
	answer.CreatedAt = time.Unix(int64(answer.ID), 0)
	r.s.answers = append(r.s.answers, *answer)
	return nil
}

func (r memAnswers) FindByInterviewID(interviewID uint) ([]model.Answer, error) {
	var out []model.Answer
	for _, a := range r.s.answers {
		if a.InterviewID == interviewID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memEvents struct{ s *memStore }

func (r memEvents) AppendBatch(events []model.ProctoringEvent) error {
	for _, e := range events {
		r.s.nextEventID++
		e.ID = r.s.nextEventID
		r.s.events = append(r.s.events, e)
	}
	return nil
}

func (r memEvents) FindByInterviewID(interviewID uint) ([]model.ProctoringEvent, error) {
	var out []model.ProctoringEvent
	for _, e := range r.s.events {
		if e.InterviewID == interviewID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Scripted collaborators.

type scriptedOracle struct {
	scores []int
	calls  int
	err    error
}

func (o *scriptedOracle) Score(_ context.Context, _, _ string, competencies []string) (*ScoreResult, error) {
	if o.err != nil {
		return nil, o.err
	}
	idx := o.calls
	if idx >= len(o.scores) {
		idx = len(o.scores) - 1
	}
	o.calls++
	score := o.scores[idx]
	compScores := make(map[string]int, len(competencies))
	for _, c := range competencies {
		compScores[c] = score
	}
	return &ScoreResult{OverallScore: score, CompetencyScores: compScores, Feedback: "noted"}, nil
}

type scriptedGenerator struct {
	text  string
	err   error
	calls int
}

func (g *scriptedGenerator) Generate(_ context.Context, _, _ string, _ []string, _ *ScoreResult, _ int) (string, error) {
	g.calls++
	return g.text, g.err
}

type scriptedSummarizer struct {
	result *SummaryResult
	err    error
	gotQA  []QAItem
}

func (s *scriptedSummarizer) Summarize(_ context.Context, _, _ string, qa []QAItem) (*SummaryResult, error) {
	s.gotQA = qa
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Interview: config.Interview{
			AdvanceScore:   4,
			ProbeScore:     3,
			MinAnswerWords: 15,
			MinAnswerChars: 60,
			MaxFollowups:   2,
			OracleTimeout:  time.Second,
		},
	}
}

// Long enough to never trip the too-short rule, so the score alone drives the
// follow-up decision in flow tests.
const longAnswer = "I led the migration of our billing pipeline to a queue-based design, measured a 40 percent latency reduction afterwards, and documented the rollout so the result was repeatable for the whole team."

func seedJobWithQuestions(s *memStore, n int) *model.Job {
	comp := "Go"
	job := &model.Job{
		Title:        "Backend Engineer",
		Description:  "Build and run Go services.",
		Competencies: []string{"Go", "System Design"},
	}
	for i := 0; i < n; i++ {
		job.Questions = append(job.Questions, model.JobQuestion{
			Text:       "Spine question " + string(rune('A'+i)),
			Competency: &comp,
			OrderIndex: i,
		})
	}
	if err := s.Jobs().Create(job); err != nil {
		panic(err)
	}
	return job
}

func seedInterview(s *memStore, jobID uint, maxFollowups int) *model.Interview {
	iv := &model.Interview{
		JobID:                   jobID,
		CandidateName:           "Ada Lovelace",
		CandidateEmail:          "ada@example.com",
		InviteToken:             "tok-1",
		Status:                  model.InterviewStatusNotStarted,
		PromptKind:              model.PromptKindSpine,
		MaxFollowupsPerQuestion: maxFollowups,
	}
	if err := s.Interviews().Create(iv); err != nil {
		panic(err)
	}
	return iv
}

func newFlowService(s *memStore, oracle ScoringOracle, gen FollowupGenerator, sum Summarizer, cfg *config.Config) InterviewFlowService {
	return NewInterviewFlowService(s, NewQuestionSequencer(), NewFollowupPolicy(cfg), oracle, gen, sum, cfg)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dnkhanh/hireflow/internal/apperror"
	"github.com/dnkhanh/hireflow/internal/model"
)

func TestStartReturnsFirstQuestion(t *testing.T) {
	store := newMemStore()
	job := seedJobWithQuestions(store, 2)
	iv := seedInterview(store, job.ID, 2)

	flow := newFlowService(store, &scriptedOracle{scores: []int{5}}, &scriptedGenerator{}, &scriptedSummarizer{}, testConfig())

	out, err := flow.Start(context.Background(), iv.InviteToken)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if out.Status != model.InterviewStatusInProgress {
		t.Errorf("status = %q, want IN_PROGRESS", out.Status)
	}
	if out.NextQuestion == nil || out.NextQuestion.Kind != model.PromptKindSpine {
		t.Fatalf("next question = %+v, want a SPINE prompt", out.NextQuestion)
	}
	if *out.NextQuestion.QuestionID != job.Questions[0].ID {
		t.Errorf("first question ID = %d, want %d", *out.NextQuestion.QuestionID, job.Questions[0].ID)
	}

	stored, _ := store.Interviews().FindByID(iv.ID)
	if stored.StartedAt == nil {
		t.Error("StartedAt was not set")
	}
	if len(stored.QuestionSnapshot) != 2 {
		t.Errorf("snapshot length = %d, want 2", len(stored.QuestionSnapshot))
	}
}

func TestStartIsIdempotentWhileInProgress(t *testing.T) {
	store := newMemStore()
	job := seedJobWithQuestions(store, 2)
	iv := seedInterview(store, job.ID, 2)

	flow := newFlowService(store, &scriptedOracle{scores: []int{5}}, &scriptedGenerator{}, &scriptedSummarizer{}, testConfig())

	first, err := flow.Start(context.Background(), iv.InviteToken)
	if err != nil {
		t.Fatalf("first Start failed: %v", err)
	}
	second, err := flow.Start(context.Background(), iv.InviteToken)
	if err != nil {
		t.Fatalf("second Start failed: %v", err)
	}
	if *first.NextQuestion.QuestionID != *second.NextQuestion.QuestionID {
		t.Errorf("restart moved the prompt: %d vs %d", *first.NextQuestion.QuestionID, *second.NextQuestion.QuestionID)
	}

	stored, _ := store.Interviews().FindByID(iv.ID)
	if stored.CurrentQuestionIndex != 0 {
		t.Errorf("restart advanced the index to %d", stored.CurrentQuestionIndex)
	}
}

func TestStartCompletedInterviewRejected(t *testing.T) {
	store := newMemStore()
	job := seedJobWithQuestions(store, 1)
	iv := seedInterview(store, job.ID, 2)
	iv.Status = model.InterviewStatusCompleted
	if err := store.Interviews().Update(iv); err != nil {
		t.Fatal(err)
	}

	flow := newFlowService(store, &scriptedOracle{scores: []int{5}}, &scriptedGenerator{}, &scriptedSummarizer{}, testConfig())

	_, err := flow.Start(context.Background(), iv.InviteToken)
	if !errors.Is(err, apperror.ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func TestHighScoresAdvanceWithoutFollowups(t *testing.T) {
	store := newMemStore()
	job := seedJobWithQuestions(store, 2)
	iv := seedInterview(store, job.ID, 2)

	gen := &scriptedGenerator{text: "probe"}
	flow := newFlowService(store, &scriptedOracle{scores: []int{5}}, gen, &scriptedSummarizer{}, testConfig())

	if _, err := flow.Start(context.Background(), iv.InviteToken); err != nil {
		t.Fatal(err)
	}

	out, err := flow.SubmitAnswer(context.Background(), iv.ID, longAnswer)
	if err != nil {
		t.Fatalf("first SubmitAnswer failed: %v", err)
	}
	if out.NextQuestion == nil || out.NextQuestion.Kind != model.PromptKindSpine {
		t.Fatalf("next = %+v, want the second spine question", out.NextQuestion)
	}
	if *out.NextQuestion.QuestionID != job.Questions[1].ID {
		t.Errorf("next question ID = %d, want %d", *out.NextQuestion.QuestionID, job.Questions[1].ID)
	}

	out, err = flow.SubmitAnswer(context.Background(), iv.ID, longAnswer)
	if err != nil {
		t.Fatalf("second SubmitAnswer failed: %v", err)
	}
	if out.InterviewStatus != model.InterviewStatusCompleted {
		t.Errorf("status = %q, want COMPLETED", out.InterviewStatus)
	}
	if out.NextQuestion != nil {
		t.Errorf("completed interview still returned a prompt: %+v", out.NextQuestion)
	}
	if gen.calls != 0 {
		t.Errorf("generator was called %d times for strong answers", gen.calls)
	}

	answers, _ := store.Answers().FindByInterviewID(iv.ID)
	if len(answers) != 2 {
		t.Fatalf("answer rows = %d, want 2", len(answers))
	}
	for _, a := range answers {
		if a.IsFollowup {
			t.Errorf("unexpected follow-up row: %+v", a)
		}
	}
}

func TestLowScoreProbesThenAdvancesAtCap(t *testing.T) {
	store := newMemStore()
	job := seedJobWithQuestions(store, 1)
	iv := seedInterview(store, job.ID, 1)

	flow := newFlowService(store, &scriptedOracle{scores: []int{2}}, &scriptedGenerator{text: "What exactly did you change?"}, &scriptedSummarizer{}, testConfig())

	if _, err := flow.Start(context.Background(), iv.InviteToken); err != nil {
		t.Fatal(err)
	}

	out, err := flow.SubmitAnswer(context.Background(), iv.ID, longAnswer)
	if err != nil {
		t.Fatalf("spine SubmitAnswer failed: %v", err)
	}
	if out.NextQuestion == nil || out.NextQuestion.Kind != model.PromptKindFollowup {
		t.Fatalf("next = %+v, want a FOLLOWUP prompt", out.NextQuestion)
	}
	if out.NextQuestion.Round != 1 {
		t.Errorf("follow-up round = %d, want 1", out.NextQuestion.Round)
	}

	out, err = flow.SubmitAnswer(context.Background(), iv.ID, longAnswer)
	if err != nil {
		t.Fatalf("follow-up SubmitAnswer failed: %v", err)
	}
	if !out.IsFollowup || out.FollowupRound != 1 {
		t.Errorf("scored answer = followup=%v round=%d, want followup round 1", out.IsFollowup, out.FollowupRound)
	}
	if out.InterviewStatus != model.InterviewStatusCompleted {
		t.Errorf("status = %q, want COMPLETED after the round cap", out.InterviewStatus)
	}

	answers, _ := store.Answers().FindByInterviewID(iv.ID)
	if len(answers) != 2 {
		t.Fatalf("answer rows = %d, want 2", len(answers))
	}
	spineRow, probeRow := answers[0], answers[1]
	if spineRow.QuestionID == nil || *spineRow.QuestionID != job.Questions[0].ID {
		t.Errorf("spine row QuestionID = %v", spineRow.QuestionID)
	}
	if !probeRow.IsFollowup || probeRow.QuestionID != nil {
		t.Errorf("probe row should be a follow-up with nil QuestionID: %+v", probeRow)
	}
	if probeRow.ParentQuestionID == nil || *probeRow.ParentQuestionID != job.Questions[0].ID {
		t.Errorf("probe row ParentQuestionID = %v, want %d", probeRow.ParentQuestionID, job.Questions[0].ID)
	}
	if probeRow.QuestionText != "What exactly did you change?" {
		t.Errorf("probe row froze text %q", probeRow.QuestionText)
	}
}

func TestFollowupRoundNeverExceedsCap(t *testing.T) {
	store := newMemStore()
	job := seedJobWithQuestions(store, 1)
	iv := seedInterview(store, job.ID, 2)

	flow := newFlowService(store, &scriptedOracle{scores: []int{2}}, &scriptedGenerator{text: "probe"}, &scriptedSummarizer{}, testConfig())

	if _, err := flow.Start(context.Background(), iv.InviteToken); err != nil {
		t.Fatal(err)
	}

	rounds := []int{}
	for i := 0; i < 3; i++ {
		out, err := flow.SubmitAnswer(context.Background(), iv.ID, longAnswer)
		if err != nil {
			t.Fatalf("submit %d failed: %v", i, err)
		}
		if out.NextQuestion != nil && out.NextQuestion.Kind == model.PromptKindFollowup {
			rounds = append(rounds, out.NextQuestion.Round)
		}
	}

	if len(rounds) != 2 || rounds[0] != 1 || rounds[1] != 2 {
		t.Errorf("follow-up rounds = %v, want [1 2]", rounds)
	}
	stored, _ := store.Interviews().FindByID(iv.ID)
	if stored.Status != model.InterviewStatusCompleted {
		t.Errorf("status = %q, want COMPLETED after exhausting the cap", stored.Status)
	}
}

func TestEmptyGeneratorFallsBackToDefaultProbe(t *testing.T) {
	store := newMemStore()
	job := seedJobWithQuestions(store, 1)
	iv := seedInterview(store, job.ID, 2)

	flow := newFlowService(store, &scriptedOracle{scores: []int{2}}, &scriptedGenerator{text: "  "}, &scriptedSummarizer{}, testConfig())

	if _, err := flow.Start(context.Background(), iv.InviteToken); err != nil {
		t.Fatal(err)
	}
	out, err := flow.SubmitAnswer(context.Background(), iv.ID, longAnswer)
	if err != nil {
		t.Fatal(err)
	}
	if out.NextQuestion == nil || out.NextQuestion.Text != fallbackProbeText {
		t.Errorf("probe text = %+v, want the fixed fallback", out.NextQuestion)
	}
}

func TestZeroQuestionJobCompletesOnFirstSubmit(t *testing.T) {
	store := newMemStore()
	job := seedJobWithQuestions(store, 0)
	iv := seedInterview(store, job.ID, 2)

	oracle := &scriptedOracle{scores: []int{5}}
	flow := newFlowService(store, oracle, &scriptedGenerator{}, &scriptedSummarizer{}, testConfig())

	start, err := flow.Start(context.Background(), iv.InviteToken)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if start.NextQuestion != nil {
		t.Errorf("empty spine returned a prompt: %+v", start.NextQuestion)
	}

	out, err := flow.SubmitAnswer(context.Background(), iv.ID, longAnswer)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if out.InterviewStatus != model.InterviewStatusCompleted {
		t.Errorf("status = %q, want COMPLETED", out.InterviewStatus)
	}
	if oracle.calls != 0 {
		t.Errorf("oracle was called %d times with no open prompt", oracle.calls)
	}
	answers, _ := store.Answers().FindByInterviewID(iv.ID)
	if len(answers) != 0 {
		t.Errorf("answer rows = %d, want 0", len(answers))
	}
}

func TestSubmitRejectedOutsideInProgress(t *testing.T) {
	store := newMemStore()
	job := seedJobWithQuestions(store, 1)
	iv := seedInterview(store, job.ID, 2)

	flow := newFlowService(store, &scriptedOracle{scores: []int{5}}, &scriptedGenerator{}, &scriptedSummarizer{}, testConfig())

	// Not started yet.
	if _, err := flow.SubmitAnswer(context.Background(), iv.ID, longAnswer); !errors.Is(err, apperror.ErrInvalidState) {
		t.Errorf("submit before start: err = %v, want ErrInvalidState", err)
	}

	if _, err := flow.Start(context.Background(), iv.InviteToken); err != nil {
		t.Fatal(err)
	}
	if _, err := flow.SubmitAnswer(context.Background(), iv.ID, longAnswer); err != nil {
		t.Fatal(err)
	}

	// Completed now.
	if _, err := flow.SubmitAnswer(context.Background(), iv.ID, longAnswer); !errors.Is(err, apperror.ErrInvalidState) {
		t.Errorf("submit after completion: err = %v, want ErrInvalidState", err)
	}
	answers, _ := store.Answers().FindByInterviewID(iv.ID)
	if len(answers) != 1 {
		t.Errorf("rejected submits recorded rows: got %d, want 1", len(answers))
	}
}

func TestOracleFailureLeavesStateUntouched(t *testing.T) {
	store := newMemStore()
	job := seedJobWithQuestions(store, 1)
	iv := seedInterview(store, job.ID, 2)

	flow := newFlowService(store, &scriptedOracle{err: fmt.Errorf("model unavailable")}, &scriptedGenerator{}, &scriptedSummarizer{}, testConfig())

	if _, err := flow.Start(context.Background(), iv.InviteToken); err != nil {
		t.Fatal(err)
	}

	_, err := flow.SubmitAnswer(context.Background(), iv.ID, longAnswer)
	if !errors.Is(err, apperror.ErrOracleFailure) {
		t.Fatalf("err = %v, want ErrOracleFailure", err)
	}

	stored, _ := store.Interviews().FindByID(iv.ID)
	if stored.Status != model.InterviewStatusInProgress || stored.CurrentQuestionIndex != 0 {
		t.Errorf("state moved on failure: status=%q index=%d", stored.Status, stored.CurrentQuestionIndex)
	}
	answers, _ := store.Answers().FindByInterviewID(iv.ID)
	if len(answers) != 0 {
		t.Errorf("answer rows = %d, want 0 after oracle failure", len(answers))
	}
}

func TestSnapshotShieldsInFlightInterviewFromJobEdits(t *testing.T) {
	store := newMemStore()
	job := seedJobWithQuestions(store, 2)
	iv := seedInterview(store, job.ID, 2)

	flow := newFlowService(store, &scriptedOracle{scores: []int{5}}, &scriptedGenerator{}, &scriptedSummarizer{}, testConfig())

	if _, err := flow.Start(context.Background(), iv.InviteToken); err != nil {
		t.Fatal(err)
	}

	// A question inserted at the front of the spine after start must not shift
	// the in-flight interview.
	store.nextQuestionID++
	store.questions = append(store.questions, model.JobQuestion{
		ID:         store.nextQuestionID,
		JobID:      job.ID,
		Text:       "Inserted later",
		OrderIndex: -1,
	})

	out, err := flow.SubmitAnswer(context.Background(), iv.ID, longAnswer)
	if err != nil {
		t.Fatal(err)
	}
	if out.NextQuestion == nil || *out.NextQuestion.QuestionID != job.Questions[1].ID {
		t.Errorf("next = %+v, want snapshotted question %d", out.NextQuestion, job.Questions[1].ID)
	}
}

func TestCompleteBuildsTranscript(t *testing.T) {
	store := newMemStore()
	job := seedJobWithQuestions(store, 1)
	iv := seedInterview(store, job.ID, 2)

	flow := newFlowService(store, &scriptedOracle{scores: []int{5}}, &scriptedGenerator{}, &scriptedSummarizer{}, testConfig())

	// Complete before the interview is done is rejected.
	if _, err := flow.Complete(context.Background(), iv.ID); !errors.Is(err, apperror.ErrInvalidState) {
		t.Errorf("early Complete: err = %v, want ErrInvalidState", err)
	}

	if _, err := flow.Start(context.Background(), iv.InviteToken); err != nil {
		t.Fatal(err)
	}
	if _, err := flow.SubmitAnswer(context.Background(), iv.ID, longAnswer); err != nil {
		t.Fatal(err)
	}

	out, err := flow.Complete(context.Background(), iv.ID)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if !strings.Contains(out.Transcript, "Q: "+job.Questions[0].Text) {
		t.Errorf("transcript missing question: %q", out.Transcript)
	}
	if !strings.Contains(out.Transcript, "A: "+longAnswer) {
		t.Errorf("transcript missing answer: %q", out.Transcript)
	}

	stored, _ := store.Interviews().FindByID(iv.ID)
	if stored.Transcript == "" || stored.CompletedAt == nil {
		t.Error("transcript or CompletedAt not persisted")
	}
}

func TestSummarizeDelegatesFullTranscript(t *testing.T) {
	store := newMemStore()
	job := seedJobWithQuestions(store, 1)
	iv := seedInterview(store, job.ID, 1)

	summarizer := &scriptedSummarizer{result: &SummaryResult{
		Recommendation:    "Hire",
		OverallCommentary: "Solid across the board.",
		AverageScore:      4.0,
		CompetencySummary: map[string]float64{"Go": 4.0},
	}}
	flow := newFlowService(store, &scriptedOracle{scores: []int{2}}, &scriptedGenerator{text: "probe"}, summarizer, testConfig())

	// Summarize before completion is rejected.
	if _, err := flow.Summarize(context.Background(), iv.ID); !errors.Is(err, apperror.ErrInvalidState) {
		t.Errorf("early Summarize: err = %v, want ErrInvalidState", err)
	}

	if _, err := flow.Start(context.Background(), iv.InviteToken); err != nil {
		t.Fatal(err)
	}
	// Spine answer triggers a probe, probe answer hits the cap.
	if _, err := flow.SubmitAnswer(context.Background(), iv.ID, longAnswer); err != nil {
		t.Fatal(err)
	}
	if _, err := flow.SubmitAnswer(context.Background(), iv.ID, longAnswer); err != nil {
		t.Fatal(err)
	}

	out, err := flow.Summarize(context.Background(), iv.ID)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if out.Recommendation != "Hire" || out.AverageScore != 4.0 {
		t.Errorf("summary = %+v", out)
	}
	if len(summarizer.gotQA) != 2 {
		t.Fatalf("summarizer saw %d items, want the full transcript of 2", len(summarizer.gotQA))
	}
	if !summarizer.gotQA[1].IsFollowup {
		t.Error("follow-up answer was filtered out of the summarizer input")
	}
}

func TestSummarizerFailureSurfacesAsOracleFailure(t *testing.T) {
	store := newMemStore()
	job := seedJobWithQuestions(store, 1)
	iv := seedInterview(store, job.ID, 2)

	flow := newFlowService(store, &scriptedOracle{scores: []int{5}}, &scriptedGenerator{}, &scriptedSummarizer{err: fmt.Errorf("timeout")}, testConfig())

	if _, err := flow.Start(context.Background(), iv.InviteToken); err != nil {
		t.Fatal(err)
	}
	if _, err := flow.SubmitAnswer(context.Background(), iv.ID, longAnswer); err != nil {
		t.Fatal(err)
	}

	_, err := flow.Summarize(context.Background(), iv.ID)
	if !errors.Is(err, apperror.ErrOracleFailure) {
		t.Errorf("err = %v, want ErrOracleFailure", err)
	}
}

func TestStartUnknownTokenNotFound(t *testing.T) {
	store := newMemStore()
	flow := newFlowService(store, &scriptedOracle{scores: []int{5}}, &scriptedGenerator{}, &scriptedSummarizer{}, testConfig())

	_, err := flow.Start(context.Background(), "no-such-token")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

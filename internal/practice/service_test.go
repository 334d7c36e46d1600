package practice

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/generator"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/store"
)

// fakePracticeRepo is an in-memory PracticeRepo.
type fakePracticeRepo struct {
	questions []*store.PracticeQuestion
	attempts  []*store.PracticeAttempt
}

func (f *fakePracticeRepo) CachedQuestion(_ context.Context, identifier string, notBefore time.Time) (*store.PracticeQuestion, error) {
	for i := len(f.questions) - 1; i >= 0; i-- {
		q := f.questions[i]
		if q.Identifier == identifier && !q.GeneratedAt.Before(notBefore) {
			return q, nil
		}
	}
	return nil, nil
}

func (f *fakePracticeRepo) SaveQuestion(_ context.Context, q *store.PracticeQuestion) (*store.PracticeQuestion, error) {
	cp := *q
	cp.ID = uuid.New()
	f.questions = append(f.questions, &cp)
	return &cp, nil
}

func (f *fakePracticeRepo) TouchQuestion(_ context.Context, id uuid.UUID, usedAt time.Time) error {
	for _, q := range f.questions {
		if q.ID == id {
			q.LastUsedAt = usedAt
		}
	}
	return nil
}

func (f *fakePracticeRepo) AppendAttempt(_ context.Context, a *store.PracticeAttempt) (*store.PracticeAttempt, error) {
	cp := *a
	cp.ID = uuid.New()
	cp.Timestamp = time.Now()
	f.attempts = append(f.attempts, &cp)
	return &cp, nil
}

func (f *fakePracticeRepo) AttemptsByUser(_ context.Context, userID uuid.UUID) ([]*store.PracticeAttempt, error) {
	var out []*store.PracticeAttempt
	for i := len(f.attempts) - 1; i >= 0; i-- {
		if f.attempts[i].UserID == userID {
			out = append(out, f.attempts[i])
		}
	}
	return out, nil
}

func (f *fakePracticeRepo) DistinctSkills(_ context.Context, userID uuid.UUID) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, a := range f.attempts {
		if a.UserID == userID && !seen[a.Skill] {
			seen[a.Skill] = true
			out = append(out, a.Skill)
		}
	}
	return out, nil
}

func questionResponse() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{
		"title": "Reverse a string",
		"description": "Read a line from stdin and print it reversed.",
		"examples": [
			{"input": "abc", "output": "cba"},
			{"input": "go", "output": "og"}
		],
		"constraints": "1 <= len(s) <= 1000",
		"default_stdin": "abc"
	}`)}
}

func reviewResponse(status string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{
		"overall_status": "` + status + `",
		"summary_feedback": "Clean and correct.",
		"scores": {"correctness": 9, "efficiency": 8, "readability": 9, "robustness": 7}
	}`)}
}

func newTestService(repo *fakePracticeRepo, responses ...llm.MockResponse) (*Service, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	gen := generator.New(mock, generator.DefaultConfig())
	return NewService(repo, gen, logger.NewNop()), mock
}

func TestQuestion_CachesPerTopic(t *testing.T) {
	repo := &fakePracticeRepo{}
	svc, mock := newTestService(repo, questionResponse())
	ctx := context.Background()

	first, err := svc.Question(ctx, "recursion", "easy")
	if err != nil {
		t.Fatalf("Question: %v", err)
	}
	second, err := svc.Question(ctx, "Recursion", "Easy")
	if err != nil {
		t.Fatalf("Question: %v", err)
	}
	if first.ID != second.ID {
		t.Error("cache miss for a case-variant of the same topic")
	}
	if mock.CallCount() != 1 {
		t.Errorf("LLM called %d times, want 1", mock.CallCount())
	}
	if len(first.Examples) != 2 {
		t.Errorf("got %d examples, want 2", len(first.Examples))
	}
}

func TestQuestion_InvalidDifficulty(t *testing.T) {
	svc, _ := newTestService(&fakePracticeRepo{})
	_, err := svc.Question(context.Background(), "recursion", "impossible")
	if !apperr.IsValidation(err) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestSubmit_RecordsReviewedAttempt(t *testing.T) {
	repo := &fakePracticeRepo{}
	svc, _ := newTestService(repo, questionResponse(), reviewResponse("pass"))
	ctx := context.Background()
	userID := uuid.New()

	attempt, err := svc.SubmitByTopic(ctx, userID, "recursion", "easy", "python", "print(input()[::-1])")
	if err != nil {
		t.Fatalf("SubmitByTopic: %v", err)
	}
	if attempt.OverallStatus != "pass" {
		t.Errorf("status = %q", attempt.OverallStatus)
	}
	if attempt.Scores["correctness"] != 9 {
		t.Errorf("correctness = %d", attempt.Scores["correctness"])
	}

	history, err := svc.History(ctx, userID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("got %d attempts, want 1", len(history))
	}
}

func TestSubmit_EmptyCode(t *testing.T) {
	svc, _ := newTestService(&fakePracticeRepo{})
	_, err := svc.Submit(context.Background(), uuid.New(), "recursion", "easy", "python", "  ", &store.PracticeQuestion{})
	if !apperr.IsValidation(err) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestSubmit_ReviewFailureIsNotRecorded(t *testing.T) {
	repo := &fakePracticeRepo{}
	svc, _ := newTestService(repo, questionResponse(), llm.MockResponse{
		Content: json.RawMessage(`{"overall_status": "excellent"}`),
	})

	_, err := svc.SubmitByTopic(context.Background(), uuid.New(), "recursion", "easy", "go", "package main")
	if !apperr.IsGenerationFailed(err) {
		t.Fatalf("got %v, want generation failure", err)
	}
	if len(repo.attempts) != 0 {
		t.Error("failed review was persisted")
	}
}

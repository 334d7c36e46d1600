package quiz

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/ent/schema"
	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/generator"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/store"
)

func llmMock() *llm.MockProvider {
	return llm.NewMockProvider()
}

func quizResponse() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{
		"title": "HTML",
		"questions": [
			{"text": "What does the a element do?", "type": "multiple-choice", "options": ["Link", "Image", "List", "Table"], "correct_answer": "Link"},
			{"text": "Which attribute holds a link target?", "type": "short-answer", "options": [], "correct_answer": "href"}
		]
	}`)}
}

// fakeJudge marks an answer correct when it equals the expected answer
// ignoring case.
type fakeJudge struct {
	calls int
}

func (f *fakeJudge) JudgeAnswer(_ context.Context, _, correctAnswer, userAnswer string) (*generator.Judgment, error) {
	f.calls++
	return &generator.Judgment{
		Correct: strings.EqualFold(correctAnswer, userAnswer),
	}, nil
}

// fakeQuizRepo is an in-memory QuizRepo.
type fakeQuizRepo struct {
	quizzes []*store.GeneratedQuiz
	results []*store.QuizResult
}

func (f *fakeQuizRepo) CachedQuiz(_ context.Context, identifier string, notBefore time.Time) (*store.GeneratedQuiz, error) {
	for i := len(f.quizzes) - 1; i >= 0; i-- {
		q := f.quizzes[i]
		if q.Identifier == identifier && !q.GeneratedAt.Before(notBefore) {
			return q, nil
		}
	}
	return nil, nil
}

func (f *fakeQuizRepo) QuizByID(_ context.Context, id uuid.UUID) (*store.GeneratedQuiz, error) {
	for _, q := range f.quizzes {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, nil
}

func (f *fakeQuizRepo) SaveQuiz(_ context.Context, q *store.GeneratedQuiz) (*store.GeneratedQuiz, error) {
	cp := *q
	cp.ID = uuid.New()
	f.quizzes = append(f.quizzes, &cp)
	return &cp, nil
}

func (f *fakeQuizRepo) TouchQuiz(_ context.Context, id uuid.UUID, usedAt time.Time) error {
	for _, q := range f.quizzes {
		if q.ID == id {
			q.LastUsedAt = usedAt
		}
	}
	return nil
}

func (f *fakeQuizRepo) AppendResult(_ context.Context, r *store.QuizResult) (*store.QuizResult, error) {
	cp := *r
	cp.ID = uuid.New()
	if cp.Timestamp.IsZero() {
		cp.Timestamp = time.Now()
	}
	f.results = append(f.results, &cp)
	return &cp, nil
}

func (f *fakeQuizRepo) LatestResult(_ context.Context, userID, roadmapID uuid.UUID, stage, step int) (*store.QuizResult, error) {
	for i := len(f.results) - 1; i >= 0; i-- {
		r := f.results[i]
		if r.UserID == userID && r.RoadmapID == roadmapID && r.StageIndex == stage && r.StepIndex == step {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeQuizRepo) ResultsByUser(_ context.Context, userID uuid.UUID) ([]*store.QuizResult, error) {
	var out []*store.QuizResult
	for i := len(f.results) - 1; i >= 0; i-- {
		if f.results[i].UserID == userID {
			out = append(out, f.results[i])
		}
	}
	return out, nil
}

// fakeProgress serves one roadmap and records score submissions.
type fakeProgress struct {
	roadmap *store.Roadmap
	scored  []int
}

func (f *fakeProgress) Get(_ context.Context, _ uuid.UUID, domain string) (*store.Roadmap, error) {
	if f.roadmap == nil || f.roadmap.Domain != domain {
		return nil, apperr.ErrNotFound
	}
	return f.roadmap, nil
}

func (f *fakeProgress) RecordStepScore(_ context.Context, _ uuid.UUID, _ string, target store.StepRef, score int) (*store.Roadmap, error) {
	st := &f.roadmap.Stages[target.Stage].Steps[target.Step]
	if st.Completed {
		return nil, apperr.InvalidTransition("already completed")
	}
	if !st.Unlocked {
		return nil, apperr.InvalidTransition("locked")
	}
	st.Completed = true
	st.TestScore = &score
	f.scored = append(f.scored, score)
	return f.roadmap, nil
}

func testRoadmap(userID uuid.UUID) *store.Roadmap {
	return &store.Roadmap{
		ID:      uuid.New(),
		UserID:  userID,
		Domain:  "frontend",
		Version: 1,
		Stages: []store.Stage{
			{Title: "Foundations", Steps: []store.Step{
				{Title: "HTML", Unlocked: true},
				{Title: "CSS"},
			}},
		},
	}
}

func mcQuestions() []schema.QuizQuestion {
	return []schema.QuizQuestion{
		{Text: "q1", Type: "multiple-choice", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a"},
		{Text: "q2", Type: "multiple-choice", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "b"},
		{Text: "q3", Type: "multiple-choice", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "c"},
		{Text: "q4", Type: "multiple-choice", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "d"},
		{Text: "q5", Type: "short-answer", CorrectAnswer: "flexbox"},
	}
}

func TestGrade_PassBoundary(t *testing.T) {
	judge := &fakeJudge{}
	questions := make([]schema.QuizQuestion, 10)
	for i := range questions {
		questions[i] = schema.QuizQuestion{
			Text: "q", Type: "multiple-choice",
			Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a",
		}
	}

	// 7/10 correct is exactly the threshold.
	answers := []string{"a", "a", "a", "a", "a", "a", "a", "b", "b", "b"}
	score, passed, _, err := Grade(context.Background(), questions, answers, judge)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if score != 70 || !passed {
		t.Errorf("score = %d passed = %t, want 70 pass", score, passed)
	}

	// 6/10 falls short.
	answers = []string{"a", "a", "a", "a", "a", "a", "b", "b", "b", "b"}
	score, passed, _, err = Grade(context.Background(), questions, answers, judge)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if score != 60 || passed {
		t.Errorf("score = %d passed = %t, want 60 fail", score, passed)
	}
}

func TestGrade_JudgeOnlyForAnsweredFreeform(t *testing.T) {
	judge := &fakeJudge{}
	questions := []schema.QuizQuestion{
		{Text: "q1", Type: "multiple-choice", Options: []string{"a", "b"}, CorrectAnswer: "a"},
		{Text: "q2", Type: "short-answer", CorrectAnswer: "flexbox"},
		{Text: "q3", Type: "short-answer", CorrectAnswer: "grid"},
	}

	score, _, detail, err := Grade(context.Background(), questions, []string{"a", "Flexbox"}, judge)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if judge.calls != 1 {
		t.Errorf("judge called %d times, want 1 (unanswered q3 must not reach it)", judge.calls)
	}
	if score != 67 {
		t.Errorf("score = %d, want 67", score)
	}
	if !detail[1].Correct {
		t.Error("case-insensitive freeform answer marked incorrect")
	}
	if detail[2].Correct || detail[2].UserAnswer != "" {
		t.Errorf("unanswered question graded as %+v", detail[2])
	}
}

func TestGrade_MultipleChoiceIsExactMatch(t *testing.T) {
	judge := &fakeJudge{}
	questions := []schema.QuizQuestion{
		{Text: "q1", Type: "multiple-choice", Options: []string{"Go", "go"}, CorrectAnswer: "Go"},
	}
	score, _, _, err := Grade(context.Background(), questions, []string{"go"}, judge)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if score != 0 {
		t.Errorf("score = %d, want 0: option match is exact", score)
	}
	if judge.calls != 0 {
		t.Error("multiple choice answer reached the judge")
	}
}

func newTestService(repo *fakeQuizRepo, prog *fakeProgress) *Service {
	gen := generator.New(llmMock(), generator.DefaultConfig())
	return NewService(repo, prog, gen, &fakeJudge{}, logger.NewNop())
}

func TestSubmit_PassCompletesStep(t *testing.T) {
	userID := uuid.New()
	prog := &fakeProgress{roadmap: testRoadmap(userID)}
	repo := &fakeQuizRepo{}
	svc := newTestService(repo, prog)

	saved, err := repo.SaveQuiz(context.Background(), &store.GeneratedQuiz{
		Identifier: Identifier("HTML", ""),
		Title:      "HTML",
		Questions:  mcQuestions(),
	})
	if err != nil {
		t.Fatal(err)
	}

	res, err := svc.Submit(context.Background(), userID, saved.ID, "frontend",
		store.StepRef{Stage: 0, Step: 0}, []string{"a", "b", "c", "d", "flexbox"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Score != 100 || !res.Passed {
		t.Errorf("score = %d passed = %t, want 100 pass", res.Score, res.Passed)
	}
	if len(prog.scored) != 1 || prog.scored[0] != 100 {
		t.Errorf("recorded scores = %v, want [100]", prog.scored)
	}
	if len(repo.results) != 1 || !repo.results[0].Passed {
		t.Errorf("stored results = %+v, want one passing result", repo.results)
	}
}

func TestSubmit_FailLeavesStepLocked(t *testing.T) {
	userID := uuid.New()
	prog := &fakeProgress{roadmap: testRoadmap(userID)}
	repo := &fakeQuizRepo{}
	svc := newTestService(repo, prog)

	saved, _ := repo.SaveQuiz(context.Background(), &store.GeneratedQuiz{
		Identifier: Identifier("HTML", ""),
		Title:      "HTML",
		Questions:  mcQuestions(),
	})

	res, err := svc.Submit(context.Background(), userID, saved.ID, "frontend",
		store.StepRef{Stage: 0, Step: 0}, []string{"b", "b", "c", "a", "tables"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Passed {
		t.Errorf("score %d passed, want fail", res.Score)
	}
	if len(prog.scored) != 0 {
		t.Error("failing submission reached the progression engine")
	}
	// The attempt is still recorded.
	if len(repo.results) != 1 || repo.results[0].Passed {
		t.Errorf("stored results = %+v, want one failing result", repo.results)
	}
	if prog.roadmap.Stages[0].Steps[1].Unlocked {
		t.Error("next step unlocked by a failing score")
	}
}

func TestSubmit_UnknownQuiz(t *testing.T) {
	userID := uuid.New()
	svc := newTestService(&fakeQuizRepo{}, &fakeProgress{roadmap: testRoadmap(userID)})

	_, err := svc.Submit(context.Background(), userID, uuid.New(), "frontend", store.StepRef{}, nil)
	if !apperr.IsNotFound(err) {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestSubmit_LockedStep(t *testing.T) {
	userID := uuid.New()
	prog := &fakeProgress{roadmap: testRoadmap(userID)}
	repo := &fakeQuizRepo{}
	svc := newTestService(repo, prog)

	saved, _ := repo.SaveQuiz(context.Background(), &store.GeneratedQuiz{
		Identifier: Identifier("CSS", ""),
		Title:      "CSS",
		Questions:  mcQuestions(),
	})

	_, err := svc.Submit(context.Background(), userID, saved.ID, "frontend",
		store.StepRef{Stage: 0, Step: 1}, []string{"a", "b", "c", "d", "flexbox"})
	if !apperr.IsInvalidTransition(err) {
		t.Fatalf("got %v, want invalid transition", err)
	}
	if len(repo.results) != 0 {
		t.Error("rejected submission was recorded")
	}
}

func TestCheckEligibility_Cooldown(t *testing.T) {
	userID := uuid.New()
	prog := &fakeProgress{roadmap: testRoadmap(userID)}
	repo := &fakeQuizRepo{}
	svc := newTestService(repo, prog)

	now := time.Now()
	svc.now = func() time.Time { return now }

	// A failed attempt 30 minutes ago blocks a retry.
	repo.results = append(repo.results, &store.QuizResult{
		UserID:    userID,
		RoadmapID: prog.roadmap.ID,
		Score:     40,
		Passed:    false,
		Timestamp: now.Add(-30 * time.Minute),
	})

	el, err := svc.CheckEligibility(context.Background(), userID, "frontend", store.StepRef{Stage: 0, Step: 0})
	if err != nil {
		t.Fatalf("CheckEligibility: %v", err)
	}
	if el.Eligible || el.Reason != ReasonCooldown {
		t.Errorf("eligibility = %+v, want cooldown block", el)
	}
	if el.RetryAt == nil || !el.RetryAt.Equal(now.Add(30*time.Minute)) {
		t.Errorf("retryAt = %v, want 30m from now", el.RetryAt)
	}

	// After the cooldown the step is attemptable again.
	svc.now = func() time.Time { return now.Add(2 * time.Hour) }
	el, err = svc.CheckEligibility(context.Background(), userID, "frontend", store.StepRef{Stage: 0, Step: 0})
	if err != nil {
		t.Fatalf("CheckEligibility: %v", err)
	}
	if !el.Eligible {
		t.Errorf("eligibility = %+v, want eligible", el)
	}
}

func TestCheckEligibility_CompletedAndLocked(t *testing.T) {
	userID := uuid.New()
	rm := testRoadmap(userID)
	rm.Stages[0].Steps[0].Completed = true
	prog := &fakeProgress{roadmap: rm}
	svc := newTestService(&fakeQuizRepo{}, prog)

	el, err := svc.CheckEligibility(context.Background(), userID, "frontend", store.StepRef{Stage: 0, Step: 0})
	if err != nil {
		t.Fatalf("CheckEligibility: %v", err)
	}
	if el.Eligible || el.Reason != ReasonAlreadyCompleted {
		t.Errorf("eligibility = %+v, want already_completed", el)
	}

	el, err = svc.CheckEligibility(context.Background(), userID, "frontend", store.StepRef{Stage: 0, Step: 1})
	if err != nil {
		t.Fatalf("CheckEligibility: %v", err)
	}
	if el.Eligible || el.Reason != ReasonLocked {
		t.Errorf("eligibility = %+v, want locked", el)
	}
}

func TestGenerate_ServesFromCache(t *testing.T) {
	userID := uuid.New()
	prog := &fakeProgress{roadmap: testRoadmap(userID)}
	repo := &fakeQuizRepo{}

	mock := llmMock()
	mock.AddResponse(quizResponse())
	gen := generator.New(mock, generator.DefaultConfig())
	svc := NewService(repo, prog, gen, &fakeJudge{}, logger.NewNop())

	first, err := svc.Generate(context.Background(), "HTML", "markup basics")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Clients see the hyphenated type tokens.
	if got := first.Questions[0].Type; got != "multiple-choice" {
		t.Errorf("question type = %q, want multiple-choice", got)
	}
	// Same topic, different case: cache hit, no second LLM call.
	second, err := svc.Generate(context.Background(), "html", "Markup Basics")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if first.ID != second.ID {
		t.Error("cache miss for a case-variant of the same topic")
	}
	if mock.CallCount() != 1 {
		t.Errorf("LLM called %d times, want 1", mock.CallCount())
	}
	for _, q := range second.Questions {
		if strings.Contains(strings.ToLower(q.Text), "correct_answer") {
			t.Error("served question leaks grading data")
		}
	}
}

func TestGenerate_ExpiredCacheRegenerates(t *testing.T) {
	userID := uuid.New()
	prog := &fakeProgress{roadmap: testRoadmap(userID)}
	repo := &fakeQuizRepo{}

	// Seed an entry older than the validity window.
	repo.quizzes = append(repo.quizzes, &store.GeneratedQuiz{
		ID:          uuid.New(),
		Identifier:  Identifier("HTML", "markup basics"),
		Title:       "HTML",
		Questions:   mcQuestions(),
		GeneratedAt: time.Now().Add(-CacheValidity - time.Hour),
	})

	mock := llmMock()
	mock.AddResponse(quizResponse())
	gen := generator.New(mock, generator.DefaultConfig())
	svc := NewService(repo, prog, gen, &fakeJudge{}, logger.NewNop())

	if _, err := svc.Generate(context.Background(), "HTML", "markup basics"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("LLM called %d times, want 1 for an expired cache entry", mock.CallCount())
	}
}

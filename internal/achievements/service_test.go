package achievements

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/store"
)

// Fakes cover only what the aggregator reads.

type fakeRoadmaps struct {
	roadmaps []*store.Roadmap
}

func (f *fakeRoadmaps) Get(_ context.Context, _ uuid.UUID, _ string) (*store.Roadmap, error) {
	return nil, nil
}
func (f *fakeRoadmaps) ListByUser(_ context.Context, _ uuid.UUID) ([]*store.Roadmap, error) {
	return f.roadmaps, nil
}
func (f *fakeRoadmaps) LastDomain(_ context.Context, _ uuid.UUID) (string, error) { return "", nil }
func (f *fakeRoadmaps) Replace(_ context.Context, rm *store.Roadmap) (*store.Roadmap, error) {
	return rm, nil
}
func (f *fakeRoadmaps) CompleteStep(_ context.Context, _ uuid.UUID, _ int, _ store.StepRef, _ *store.StepRef, _ int) error {
	return nil
}

type fakeAnalyses struct {
	rows []*store.SkillGapAnalysis
}

func (f *fakeAnalyses) Append(_ context.Context, a *store.SkillGapAnalysis) (*store.SkillGapAnalysis, error) {
	return a, nil
}
func (f *fakeAnalyses) History(_ context.Context, _ uuid.UUID, _ string) ([]*store.SkillGapAnalysis, error) {
	return f.rows, nil
}
func (f *fakeAnalyses) Latest(_ context.Context, _ uuid.UUID, _ string) (*store.SkillGapAnalysis, error) {
	return nil, nil
}
func (f *fakeAnalyses) LatestAny(_ context.Context, _ uuid.UUID) (*store.SkillGapAnalysis, error) {
	if len(f.rows) == 0 {
		return nil, nil
	}
	return f.rows[len(f.rows)-1], nil
}
func (f *fakeAnalyses) ListByUser(_ context.Context, _ uuid.UUID) ([]*store.SkillGapAnalysis, error) {
	return f.rows, nil
}
func (f *fakeAnalyses) CountByUser(_ context.Context, _ uuid.UUID) (int, error) {
	return len(f.rows), nil
}

type fakeQuizzes struct {
	results []*store.QuizResult
}

func (f *fakeQuizzes) CachedQuiz(_ context.Context, _ string, _ time.Time) (*store.GeneratedQuiz, error) {
	return nil, nil
}
func (f *fakeQuizzes) QuizByID(_ context.Context, _ uuid.UUID) (*store.GeneratedQuiz, error) {
	return nil, nil
}
func (f *fakeQuizzes) SaveQuiz(_ context.Context, q *store.GeneratedQuiz) (*store.GeneratedQuiz, error) {
	return q, nil
}
func (f *fakeQuizzes) TouchQuiz(_ context.Context, _ uuid.UUID, _ time.Time) error { return nil }
func (f *fakeQuizzes) AppendResult(_ context.Context, r *store.QuizResult) (*store.QuizResult, error) {
	return r, nil
}
func (f *fakeQuizzes) LatestResult(_ context.Context, _, _ uuid.UUID, _, _ int) (*store.QuizResult, error) {
	return nil, nil
}
func (f *fakeQuizzes) ResultsByUser(_ context.Context, _ uuid.UUID) ([]*store.QuizResult, error) {
	return f.results, nil
}

type fakePractice struct {
	attempts []*store.PracticeAttempt
	skills   []string
}

func (f *fakePractice) CachedQuestion(_ context.Context, _ string, _ time.Time) (*store.PracticeQuestion, error) {
	return nil, nil
}
func (f *fakePractice) SaveQuestion(_ context.Context, q *store.PracticeQuestion) (*store.PracticeQuestion, error) {
	return q, nil
}
func (f *fakePractice) TouchQuestion(_ context.Context, _ uuid.UUID, _ time.Time) error { return nil }
func (f *fakePractice) AppendAttempt(_ context.Context, a *store.PracticeAttempt) (*store.PracticeAttempt, error) {
	return a, nil
}
func (f *fakePractice) AttemptsByUser(_ context.Context, _ uuid.UUID) ([]*store.PracticeAttempt, error) {
	return f.attempts, nil
}
func (f *fakePractice) DistinctSkills(_ context.Context, _ uuid.UUID) ([]string, error) {
	return f.skills, nil
}

type fakeUsers struct {
	user *store.User
}

func (f *fakeUsers) Create(_ context.Context, u *store.User) (*store.User, error) { return u, nil }
func (f *fakeUsers) ByEmail(_ context.Context, _ string) (*store.User, error)     { return nil, nil }
func (f *fakeUsers) ByID(_ context.Context, _ uuid.UUID) (*store.User, error) {
	return f.user, nil
}
func (f *fakeUsers) UpdateProfile(_ context.Context, _ uuid.UUID, _, _ []string) error { return nil }

func score(v int) *int { return &v }

func doneRoadmap(domain string) *store.Roadmap {
	return &store.Roadmap{
		ID:     uuid.New(),
		Domain: domain,
		Stages: []store.Stage{
			{Title: "Only", Steps: []store.Step{
				{Title: "A", Unlocked: true, Completed: true, TestScore: score(90)},
				{Title: "B", Unlocked: true, Completed: true, TestScore: score(80)},
			}},
		},
	}
}

func inProgressRoadmap(domain string) *store.Roadmap {
	return &store.Roadmap{
		ID:     uuid.New(),
		Domain: domain,
		Stages: []store.Stage{
			{Title: "Only", Steps: []store.Step{
				{Title: "A", Unlocked: true, Completed: true, TestScore: score(75)},
				{Title: "B", Unlocked: true},
				{Title: "C"},
			}},
		},
	}
}

func newService(rms *fakeRoadmaps, an *fakeAnalyses, pr *fakePractice) *Service {
	return NewService(rms, an, &fakeQuizzes{}, pr, &fakeUsers{}, logger.NewNop())
}

func TestBuildSummary(t *testing.T) {
	svc := newService(
		&fakeRoadmaps{roadmaps: []*store.Roadmap{doneRoadmap("frontend"), inProgressRoadmap("backend")}},
		&fakeAnalyses{rows: []*store.SkillGapAnalysis{{}, {}, {}}},
		&fakePractice{skills: []string{"recursion", "sql"}},
	)

	sum, err := svc.BuildSummary(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("BuildSummary: %v", err)
	}
	if sum.CompletedCourseCount != 1 {
		t.Errorf("completed courses = %d, want 1", sum.CompletedCourseCount)
	}
	if sum.CompletedStepCount != 3 {
		t.Errorf("completed steps = %d, want 3", sum.CompletedStepCount)
	}
	if sum.SkillAnalysisCount != 3 {
		t.Errorf("analyses = %d, want 3", sum.SkillAnalysisCount)
	}
	if sum.PracticeSkillCount != 2 {
		t.Errorf("practiced skills = %d, want 2", sum.PracticeSkillCount)
	}
}

func TestBuildDetail(t *testing.T) {
	svc := NewService(
		&fakeRoadmaps{roadmaps: []*store.Roadmap{inProgressRoadmap("backend")}},
		&fakeAnalyses{rows: []*store.SkillGapAnalysis{{Domain: "backend"}}},
		&fakeQuizzes{results: []*store.QuizResult{{QuizTitle: "A", Score: 75, Passed: true}}},
		&fakePractice{attempts: []*store.PracticeAttempt{{Skill: "sql"}}},
		&fakeUsers{},
		logger.NewNop(),
	)

	det, err := svc.BuildDetail(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("BuildDetail: %v", err)
	}
	if len(det.CompletedSteps) != 1 {
		t.Fatalf("got %d completed steps, want 1", len(det.CompletedSteps))
	}
	cs := det.CompletedSteps[0]
	if cs.Domain != "backend" || cs.StepTitle != "A" || cs.Score == nil || *cs.Score != 75 {
		t.Errorf("completed step = %+v", cs)
	}
	if len(det.QuizResults) != 1 || det.QuizResults[0].Score != 75 {
		t.Errorf("quiz results = %+v", det.QuizResults)
	}
	if len(det.Analyses) != 1 || len(det.PracticeAttempts) != 1 {
		t.Errorf("detail = %d analyses, %d attempts", len(det.Analyses), len(det.PracticeAttempts))
	}
}

func TestWhatsNext_Priority(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	missing := &fakeAnalyses{rows: []*store.SkillGapAnalysis{{
		Domain:        "frontend",
		MissingSkills: []string{"css grid"},
	}}}

	t.Run("no roadmaps wins over everything", func(t *testing.T) {
		svc := newService(&fakeRoadmaps{}, missing, &fakePractice{})
		sug, err := svc.WhatsNext(ctx, userID)
		if err != nil {
			t.Fatalf("WhatsNext: %v", err)
		}
		if sug.Kind != SuggestWelcome {
			t.Errorf("kind = %q, want %q", sug.Kind, SuggestWelcome)
		}
	})

	t.Run("frontier step beats missing skills", func(t *testing.T) {
		svc := newService(
			&fakeRoadmaps{roadmaps: []*store.Roadmap{inProgressRoadmap("backend")}},
			missing,
			&fakePractice{},
		)
		sug, err := svc.WhatsNext(ctx, userID)
		if err != nil {
			t.Fatalf("WhatsNext: %v", err)
		}
		if sug.Kind != SuggestRoadmapStep {
			t.Errorf("kind = %q, want %q", sug.Kind, SuggestRoadmapStep)
		}
		if sug.Step == nil || *sug.Step != (store.StepRef{Stage: 0, Step: 1}) {
			t.Errorf("step = %v, want 0.1", sug.Step)
		}
		if sug.StepTitle != "B" {
			t.Errorf("step title = %q, want B", sug.StepTitle)
		}
	})

	t.Run("all roadmaps done falls through to missing skills", func(t *testing.T) {
		svc := newService(
			&fakeRoadmaps{roadmaps: []*store.Roadmap{doneRoadmap("frontend")}},
			missing,
			&fakePractice{},
		)
		sug, err := svc.WhatsNext(ctx, userID)
		if err != nil {
			t.Fatalf("WhatsNext: %v", err)
		}
		if sug.Kind != SuggestPracticeSkills {
			t.Errorf("kind = %q, want %q", sug.Kind, SuggestPracticeSkills)
		}
		if len(sug.MissingSkills) != 1 {
			t.Errorf("missing skills = %v", sug.MissingSkills)
		}
	})

	t.Run("nothing else left suggests an analysis", func(t *testing.T) {
		svc := newService(
			&fakeRoadmaps{roadmaps: []*store.Roadmap{doneRoadmap("frontend")}},
			&fakeAnalyses{},
			&fakePractice{},
		)
		sug, err := svc.WhatsNext(ctx, userID)
		if err != nil {
			t.Fatalf("WhatsNext: %v", err)
		}
		if sug.Kind != SuggestRunAnalysis {
			t.Errorf("kind = %q, want %q", sug.Kind, SuggestRunAnalysis)
		}
	})

	t.Run("analysis suggestion names the primary domain", func(t *testing.T) {
		svc := NewService(
			&fakeRoadmaps{roadmaps: []*store.Roadmap{doneRoadmap("frontend")}},
			&fakeAnalyses{},
			&fakeQuizzes{},
			&fakePractice{},
			&fakeUsers{user: &store.User{ID: userID, Domains: []string{"cloud engineering", "devops"}}},
			logger.NewNop(),
		)
		sug, err := svc.WhatsNext(ctx, userID)
		if err != nil {
			t.Fatalf("WhatsNext: %v", err)
		}
		if sug.Kind != SuggestRunAnalysis {
			t.Fatalf("kind = %q, want %q", sug.Kind, SuggestRunAnalysis)
		}
		if sug.Domain != "cloud engineering" {
			t.Errorf("domain = %q, want cloud engineering", sug.Domain)
		}
	})

	t.Run("analysis suggestion without stored domains carries none", func(t *testing.T) {
		svc := newService(
			&fakeRoadmaps{roadmaps: []*store.Roadmap{doneRoadmap("frontend")}},
			&fakeAnalyses{},
			&fakePractice{},
		)
		sug, err := svc.WhatsNext(ctx, userID)
		if err != nil {
			t.Fatalf("WhatsNext: %v", err)
		}
		if sug.Domain != "" {
			t.Errorf("domain = %q, want empty", sug.Domain)
		}
	})
}

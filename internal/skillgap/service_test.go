package skillgap

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

// fakeAnalysisRepo is an in-memory append-only AnalysisRepo.
type fakeAnalysisRepo struct {
	rows []*store.SkillGapAnalysis
}

func (f *fakeAnalysisRepo) Append(_ context.Context, a *store.SkillGapAnalysis) (*store.SkillGapAnalysis, error) {
	cp := *a
	cp.ID = uuid.New()
	if cp.Timestamp.IsZero() {
		cp.Timestamp = time.Now()
	}
	f.rows = append(f.rows, &cp)
	return &cp, nil
}

func (f *fakeAnalysisRepo) History(_ context.Context, userID uuid.UUID, domain string) ([]*store.SkillGapAnalysis, error) {
	var out []*store.SkillGapAnalysis
	for _, a := range f.rows {
		if a.UserID == userID && a.Domain == domain {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAnalysisRepo) Latest(_ context.Context, userID uuid.UUID, domain string) (*store.SkillGapAnalysis, error) {
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].UserID == userID && f.rows[i].Domain == domain {
			return f.rows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAnalysisRepo) LatestAny(_ context.Context, userID uuid.UUID) (*store.SkillGapAnalysis, error) {
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].UserID == userID {
			return f.rows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAnalysisRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*store.SkillGapAnalysis, error) {
	var out []*store.SkillGapAnalysis
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].UserID == userID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeAnalysisRepo) CountByUser(_ context.Context, userID uuid.UUID) (int, error) {
	n := 0
	for _, a := range f.rows {
		if a.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	user *store.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *store.User) (*store.User, error) { return u, nil }
func (f *fakeUserRepo) ByEmail(_ context.Context, _ string) (*store.User, error)    { return f.user, nil }
func (f *fakeUserRepo) ByID(_ context.Context, id uuid.UUID) (*store.User, error) {
	if f.user != nil && f.user.ID == id {
		return f.user, nil
	}
	return nil, nil
}
func (f *fakeUserRepo) UpdateProfile(_ context.Context, _ uuid.UUID, _, _ []string) error {
	return nil
}

func comparisonResponse(missing ...string) llm.MockResponse {
	out := map[string]any{
		"acquired_skills": []string{"python"},
		"missing_skills":  missing,
		"recommendations": []string{"practice"},
	}
	raw, _ := json.Marshal(out)
	return llm.MockResponse{Content: raw}
}

func newTestService(repo *fakeAnalysisRepo, responses ...llm.MockResponse) (*Service, uuid.UUID) {
	user := &store.User{ID: uuid.New(), Skills: []string{"python"}}
	gen := generator.New(llm.NewMockProvider(responses...), generator.DefaultConfig())
	return NewService(repo, &fakeUserRepo{user: user}, gen, logger.NewNop()), user.ID
}

func TestAnalyze_AppendsToHistory(t *testing.T) {
	repo := &fakeAnalysisRepo{}
	svc, userID := newTestService(repo,
		comparisonResponse("sql", "statistics", "tableau"),
		comparisonResponse("tableau"),
	)
	ctx := context.Background()

	first, err := svc.Analyze(ctx, userID, "data analyst", nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(first.MissingSkills) != 3 {
		t.Errorf("missing = %v, want 3 skills", first.MissingSkills)
	}

	second, err := svc.Analyze(ctx, userID, "data analyst", []string{"python", "sql", "statistics"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if second.ID == first.ID {
		t.Error("second analysis reused the first record")
	}

	// Both analyses survive, oldest first, counts shrinking.
	points, err := svc.History(ctx, userID, "data analyst")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d history points, want 2", len(points))
	}
	if points[0].MissingSkillCount != 3 || points[1].MissingSkillCount != 1 {
		t.Errorf("counts = [%d, %d], want [3, 1]",
			points[0].MissingSkillCount, points[1].MissingSkillCount)
	}
	if points[1].Date.Before(points[0].Date) {
		t.Error("history is not in chronological order")
	}
}

func TestAnalyze_GenerationFailure(t *testing.T) {
	repo := &fakeAnalysisRepo{}
	svc, userID := newTestService(repo, llm.MockResponse{
		Content: json.RawMessage(`{"acquired_skills": ["python"]}`),
	})

	_, err := svc.Analyze(context.Background(), userID, "data analyst", nil)
	if !apperr.IsGenerationFailed(err) {
		t.Fatalf("got %v, want generation failure", err)
	}
	if len(repo.rows) != 0 {
		t.Error("failed analysis was persisted")
	}
}

func TestAnalyze_EmptyDomain(t *testing.T) {
	svc, userID := newTestService(&fakeAnalysisRepo{})
	_, err := svc.Analyze(context.Background(), userID, "", nil)
	if !apperr.IsValidation(err) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestLatest_NotFound(t *testing.T) {
	svc, userID := newTestService(&fakeAnalysisRepo{})
	_, err := svc.Latest(context.Background(), userID, "data analyst")
	if !apperr.IsNotFound(err) {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestHistory_EmptyIsNotAnError(t *testing.T) {
	svc, userID := newTestService(&fakeAnalysisRepo{})
	points, err := svc.History(context.Background(), userID, "data analyst")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("got %d points, want 0", len(points))
	}
}

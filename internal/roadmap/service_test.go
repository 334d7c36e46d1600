package roadmap

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/generator"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/store"
)

// fakeRoadmapRepo is an in-memory RoadmapRepo keyed by (user, domain).
type fakeRoadmapRepo struct {
	byKey map[string]*store.Roadmap
}

func newFakeRoadmapRepo() *fakeRoadmapRepo {
	return &fakeRoadmapRepo{byKey: make(map[string]*store.Roadmap)}
}

func (f *fakeRoadmapRepo) key(userID uuid.UUID, domain string) string {
	return userID.String() + "/" + domain
}

func (f *fakeRoadmapRepo) Get(_ context.Context, userID uuid.UUID, domain string) (*store.Roadmap, error) {
	rm := f.byKey[f.key(userID, domain)]
	if rm == nil {
		return nil, nil
	}
	cp := *rm
	return &cp, nil
}

func (f *fakeRoadmapRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*store.Roadmap, error) {
	var out []*store.Roadmap
	for _, rm := range f.byKey {
		if rm.UserID == userID {
			cp := *rm
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRoadmapRepo) LastDomain(_ context.Context, userID uuid.UUID) (string, error) {
	var latest *store.Roadmap
	for _, rm := range f.byKey {
		if rm.UserID != userID {
			continue
		}
		if latest == nil || rm.CreatedAt.After(latest.CreatedAt) {
			latest = rm
		}
	}
	if latest == nil {
		return "", nil
	}
	return latest.Domain, nil
}

func (f *fakeRoadmapRepo) Replace(_ context.Context, rm *store.Roadmap) (*store.Roadmap, error) {
	cp := *rm
	cp.ID = uuid.New()
	cp.Version = 1
	f.byKey[f.key(rm.UserID, rm.Domain)] = &cp
	out := cp
	return &out, nil
}

func (f *fakeRoadmapRepo) CompleteStep(_ context.Context, roadmapID uuid.UUID, version int, target store.StepRef, next *store.StepRef, score int) error {
	for _, rm := range f.byKey {
		if rm.ID != roadmapID {
			continue
		}
		if rm.Version != version {
			return store.ErrVersionConflict
		}
		rm.Version++
		st := &rm.Stages[target.Stage].Steps[target.Step]
		st.Completed = true
		st.TestScore = &score
		if next != nil {
			rm.Stages[next.Stage].Steps[next.Step].Unlocked = true
		}
		return nil
	}
	return store.ErrVersionConflict
}

// fakeUserRepo serves a single user.
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

func skeletonJSON() json.RawMessage {
	return json.RawMessage(`{
		"stages": [
			{
				"title": "Foundations",
				"steps": [
					{"title": "A", "description": "", "resource_type": "article", "study_link": ""},
					{"title": "B", "description": "", "resource_type": "article", "study_link": ""}
				]
			},
			{
				"title": "Advanced",
				"steps": [
					{"title": "C", "description": "", "resource_type": "article", "study_link": ""}
				]
			}
		]
	}`)
}

func newTestService(t *testing.T, repo *fakeRoadmapRepo, responses ...llm.MockResponse) (*Service, uuid.UUID) {
	t.Helper()
	user := &store.User{ID: uuid.New(), Name: "Dana", Email: "dana@example.com", Skills: []string{"html"}}
	gen := generator.New(llm.NewMockProvider(responses...), generator.DefaultConfig())
	svc := NewService(repo, &fakeUserRepo{user: user}, gen, logger.NewNop())
	return svc, user.ID
}

func TestGenerateOrRefresh_FirstStepUnlocked(t *testing.T) {
	repo := newFakeRoadmapRepo()
	svc, userID := newTestService(t, repo, llm.MockResponse{Content: skeletonJSON()})

	rm, err := svc.GenerateOrRefresh(context.Background(), userID, "frontend")
	if err != nil {
		t.Fatalf("GenerateOrRefresh: %v", err)
	}
	if len(rm.Stages) != 2 {
		t.Fatalf("got %d stages, want 2", len(rm.Stages))
	}
	for si, stage := range rm.Stages {
		for pi, step := range stage.Steps {
			wantUnlocked := si == 0 && pi == 0
			if step.Unlocked != wantUnlocked {
				t.Errorf("step %d.%d unlocked = %t, want %t", si, pi, step.Unlocked, wantUnlocked)
			}
			if step.Completed {
				t.Errorf("step %d.%d starts completed", si, pi)
			}
		}
	}
}

func TestGenerateOrRefresh_EmptyDomain(t *testing.T) {
	svc, userID := newTestService(t, newFakeRoadmapRepo())
	_, err := svc.GenerateOrRefresh(context.Background(), userID, "  ")
	if !apperr.IsValidation(err) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestGenerateOrRefresh_ResetsProgress(t *testing.T) {
	repo := newFakeRoadmapRepo()
	svc, userID := newTestService(t, repo,
		llm.MockResponse{Content: skeletonJSON()},
		llm.MockResponse{Content: skeletonJSON()},
	)
	ctx := context.Background()

	if _, err := svc.GenerateOrRefresh(ctx, userID, "frontend"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.RecordStepScore(ctx, userID, "frontend", store.StepRef{Stage: 0, Step: 0}, 85); err != nil {
		t.Fatalf("record score: %v", err)
	}

	rm, err := svc.GenerateOrRefresh(ctx, userID, "frontend")
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	completed, total := Progress(rm.Stages)
	if completed != 0 || total != 3 {
		t.Errorf("progress after refresh = %d/%d, want 0/3", completed, total)
	}
	if !rm.Stages[0].Steps[0].Unlocked {
		t.Error("first step is locked after refresh")
	}
}

func TestRecordStepScore_AdvancesFrontier(t *testing.T) {
	repo := newFakeRoadmapRepo()
	svc, userID := newTestService(t, repo, llm.MockResponse{Content: skeletonJSON()})
	ctx := context.Background()

	if _, err := svc.GenerateOrRefresh(ctx, userID, "frontend"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	rm, err := svc.RecordStepScore(ctx, userID, "frontend", store.StepRef{Stage: 0, Step: 0}, 90)
	if err != nil {
		t.Fatalf("record score: %v", err)
	}
	first := rm.Stages[0].Steps[0]
	if !first.Completed || first.TestScore == nil || *first.TestScore != 90 {
		t.Errorf("first step = %+v, want completed with score 90", first)
	}
	if fr := Frontier(rm.Stages); fr == nil || *fr != (store.StepRef{Stage: 0, Step: 1}) {
		t.Errorf("frontier = %v, want 0.1", fr)
	}

	// Completing the last step of a stage unlocks the first step of
	// the next stage.
	rm, err = svc.RecordStepScore(ctx, userID, "frontend", store.StepRef{Stage: 0, Step: 1}, 75)
	if err != nil {
		t.Fatalf("record score: %v", err)
	}
	if fr := Frontier(rm.Stages); fr == nil || *fr != (store.StepRef{Stage: 1, Step: 0}) {
		t.Errorf("frontier = %v, want 1.0", fr)
	}

	// Completing the final step leaves no frontier.
	rm, err = svc.RecordStepScore(ctx, userID, "frontend", store.StepRef{Stage: 1, Step: 0}, 100)
	if err != nil {
		t.Fatalf("record score: %v", err)
	}
	if fr := Frontier(rm.Stages); fr != nil {
		t.Errorf("frontier = %v, want nil", fr)
	}
}

func TestRecordStepScore_InvalidTransitions(t *testing.T) {
	repo := newFakeRoadmapRepo()
	svc, userID := newTestService(t, repo, llm.MockResponse{Content: skeletonJSON()})
	ctx := context.Background()

	if _, err := svc.GenerateOrRefresh(ctx, userID, "frontend"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	cases := []struct {
		name   string
		target store.StepRef
	}{
		{"locked step", store.StepRef{Stage: 0, Step: 1}},
		{"locked later stage", store.StepRef{Stage: 1, Step: 0}},
		{"stage out of range", store.StepRef{Stage: 5, Step: 0}},
		{"step out of range", store.StepRef{Stage: 0, Step: 9}},
		{"negative index", store.StepRef{Stage: -1, Step: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordStepScore(ctx, userID, "frontend", tc.target, 80)
			if !apperr.IsInvalidTransition(err) {
				t.Fatalf("got %v, want invalid transition", err)
			}
		})
	}

	// Nothing above may have mutated the roadmap.
	rm, err := svc.Get(ctx, userID, "frontend")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if completed, _ := Progress(rm.Stages); completed != 0 {
		t.Errorf("completed = %d after rejected transitions, want 0", completed)
	}

	// A completed step cannot be completed again.
	if _, err := svc.RecordStepScore(ctx, userID, "frontend", store.StepRef{Stage: 0, Step: 0}, 80); err != nil {
		t.Fatalf("record score: %v", err)
	}
	_, err = svc.RecordStepScore(ctx, userID, "frontend", store.StepRef{Stage: 0, Step: 0}, 95)
	if !apperr.IsInvalidTransition(err) {
		t.Fatalf("got %v, want invalid transition for repeat completion", err)
	}
}

func TestRecordStepScore_ScoreOutOfRange(t *testing.T) {
	svc, userID := newTestService(t, newFakeRoadmapRepo())
	for _, score := range []int{-1, 101} {
		_, err := svc.RecordStepScore(context.Background(), userID, "frontend", store.StepRef{}, score)
		if !apperr.IsValidation(err) {
			t.Errorf("score %d: got %v, want validation error", score, err)
		}
	}
}

func TestRecordStepScore_MissingRoadmap(t *testing.T) {
	svc, userID := newTestService(t, newFakeRoadmapRepo())
	_, err := svc.RecordStepScore(context.Background(), userID, "frontend", store.StepRef{}, 80)
	if !apperr.IsNotFound(err) {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestGlobalPosition(t *testing.T) {
	stages := []store.Stage{
		{Title: "a", Steps: []store.Step{{Title: "s0"}, {Title: "s1"}}},
		{Title: "b", Steps: []store.Step{{Title: "s2"}}},
		{Title: "c", Steps: []store.Step{{Title: "s3"}, {Title: "s4"}}},
	}
	cases := []struct {
		ref  store.StepRef
		want int
	}{
		{store.StepRef{Stage: 0, Step: 0}, 0},
		{store.StepRef{Stage: 0, Step: 1}, 1},
		{store.StepRef{Stage: 1, Step: 0}, 2},
		{store.StepRef{Stage: 2, Step: 1}, 4},
		{store.StepRef{Stage: 1, Step: 1}, -1},
		{store.StepRef{Stage: 3, Step: 0}, -1},
	}
	for _, tc := range cases {
		if got := globalPosition(stages, tc.ref); got != tc.want {
			t.Errorf("globalPosition(%v) = %d, want %d", tc.ref, got, tc.want)
		}
	}
}

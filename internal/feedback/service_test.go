package feedback

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/store"
)

type fakeFeedbackRepo struct {
	rows []*store.FeedbackEvent
}

func (f *fakeFeedbackRepo) Append(_ context.Context, e *store.FeedbackEvent) (*store.FeedbackEvent, error) {
	cp := *e
	cp.ID = uuid.New()
	f.rows = append(f.rows, &cp)
	return &cp, nil
}

func TestRecord(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := NewService(repo, logger.NewNop())

	ev, err := svc.Record(context.Background(), uuid.New(), "Quiz", "abc", 4, "  good questions ")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if ev.Kind != "quiz" {
		t.Errorf("kind = %q, want normalized quiz", ev.Kind)
	}
	if ev.Comment != "good questions" {
		t.Errorf("comment = %q", ev.Comment)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("stored %d rows, want 1", len(repo.rows))
	}
}

func TestRecord_Invalid(t *testing.T) {
	svc := NewService(&fakeFeedbackRepo{}, logger.NewNop())
	ctx := context.Background()

	if _, err := svc.Record(ctx, uuid.New(), "podcast", "x", 3, ""); !apperr.IsValidation(err) {
		t.Errorf("unknown kind: got %v, want validation error", err)
	}
	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.Record(ctx, uuid.New(), "quiz", "x", rating, ""); !apperr.IsValidation(err) {
			t.Errorf("rating %d: got %v, want validation error", rating, err)
		}
	}
}

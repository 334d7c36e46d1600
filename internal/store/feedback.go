package store

import (
	"context"
	"fmt"

	"github.com/abhisek/pathwise/ent"
)

type feedbackRepo struct {
	client *ent.Client
}

func (r *feedbackRepo) Append(ctx context.Context, f *FeedbackEvent) (*FeedbackEvent, error) {
	saved, err := r.client.FeedbackEvent.Create().
		SetUserID(f.UserID).
		SetKind(f.Kind).
		SetItemID(f.ItemID).
		SetRating(f.Rating).
		SetComment(f.Comment).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append feedback: %w", err)
	}
	return &FeedbackEvent{
		ID:        saved.ID,
		UserID:    saved.UserID,
		Kind:      saved.Kind,
		ItemID:    saved.ItemID,
		Rating:    saved.Rating,
		Comment:   saved.Comment,
		Timestamp: saved.Timestamp,
	}, nil
}

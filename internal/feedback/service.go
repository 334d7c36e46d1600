// Package feedback records user ratings of AI-generated content.
package feedback

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/store"
)

// Rateable content kinds.
var kinds = map[string]bool{
	"roadmap":  true,
	"quiz":     true,
	"analysis": true,
	"practice": true,
}

// Service validates and stores feedback events.
type Service struct {
	feedback store.FeedbackRepo
	log      *logger.Logger
}

func NewService(feedback store.FeedbackRepo, log *logger.Logger) *Service {
	return &Service{feedback: feedback, log: log}
}

// Record stores a rating of a generated item. Rating runs 1 (poor) to
// 5 (excellent).
func (s *Service) Record(ctx context.Context, userID uuid.UUID, kind, itemID string, rating int, comment string) (*store.FeedbackEvent, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if !kinds[kind] {
		return nil, apperr.Validation("kind", "must be roadmap, quiz, analysis or practice")
	}
	if rating < 1 || rating > 5 {
		return nil, apperr.Validation("rating", "must be between 1 and 5")
	}

	saved, err := s.feedback.Append(ctx, &store.FeedbackEvent{
		UserID:  userID,
		Kind:    kind,
		ItemID:  strings.TrimSpace(itemID),
		Rating:  rating,
		Comment: strings.TrimSpace(comment),
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("feedback recorded", "user_id", userID, "kind", kind, "rating", rating)
	return saved, nil
}

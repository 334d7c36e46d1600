// Package practice serves AI-generated coding problems and reviews
// submitted solutions. Questions are cached per (skill, difficulty)
// topic; attempts are append-only history.
package practice

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/ent/schema"
	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/generator"
	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/store"
)

// CacheValidity is how long a generated question is served from cache.
const CacheValidity = 48 * time.Hour

// Difficulty levels accepted by Question.
var difficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

// Service generates practice questions and reviews attempts.
type Service struct {
	practice store.PracticeRepo
	gen      generator.Generator
	log      *logger.Logger
	now      func() time.Time
}

func NewService(practice store.PracticeRepo, gen generator.Generator, log *logger.Logger) *Service {
	return &Service{practice: practice, gen: gen, log: log, now: time.Now}
}

// Identifier derives the cache key for a practice topic.
func Identifier(skill, difficulty string) string {
	h := sha256.Sum256([]byte(strings.ToLower(skill) + "::" + strings.ToLower(difficulty)))
	return hex.EncodeToString(h[:])
}

// Question returns a practice problem for (skill, difficulty), cached
// when a fresh enough entry exists.
func (s *Service) Question(ctx context.Context, skill, difficulty string) (*store.PracticeQuestion, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, apperr.Validation("skill", "must not be empty")
	}
	difficulty = strings.ToLower(strings.TrimSpace(difficulty))
	if !difficulties[difficulty] {
		return nil, apperr.Validation("difficulty", "must be easy, medium or hard")
	}

	id := Identifier(skill, difficulty)
	now := s.now()

	cached, err := s.practice.CachedQuestion(ctx, id, now.Add(-CacheValidity))
	if err != nil {
		return nil, err
	}
	if cached != nil {
		if err := s.practice.TouchQuestion(ctx, cached.ID, now); err != nil {
			return nil, err
		}
		return cached, nil
	}

	spec, err := s.gen.PracticeQuestion(ctx, skill, difficulty)
	if err != nil {
		return nil, err
	}

	stored := &store.PracticeQuestion{
		Identifier:   id,
		Title:        spec.Title,
		Description:  spec.Description,
		Constraints:  spec.Constraints,
		DefaultStdin: spec.DefaultStdin,
		GeneratedAt:  now,
		LastUsedAt:   now,
	}
	for _, ex := range spec.Examples {
		stored.Examples = append(stored.Examples, schema.PracticeExample{
			Input:  ex.Input,
			Output: ex.Output,
		})
	}
	saved, err := s.practice.SaveQuestion(ctx, stored)
	if err != nil {
		return nil, err
	}
	s.log.Info("practice question generated", "skill", skill, "difficulty", difficulty)
	return saved, nil
}

// Submit reviews the solution and appends the attempt to the user's
// history.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, skill, difficulty, language, code string, question *store.PracticeQuestion) (*store.PracticeAttempt, error) {
	if strings.TrimSpace(code) == "" {
		return nil, apperr.Validation("code", "must not be empty")
	}
	if strings.TrimSpace(language) == "" {
		return nil, apperr.Validation("language", "must not be empty")
	}

	spec := &generator.PracticeSpec{
		Title:       question.Title,
		Description: question.Description,
		Constraints: question.Constraints,
	}
	for _, ex := range question.Examples {
		spec.Examples = append(spec.Examples, generator.PracticeExample{
			Input:  ex.Input,
			Output: ex.Output,
		})
	}

	review, err := s.gen.AnalyzePractice(ctx, spec, language, code)
	if err != nil {
		s.log.Warn("practice review failed", "user_id", userID, "skill", skill, "error", err)
		return nil, err
	}

	saved, err := s.practice.AppendAttempt(ctx, &store.PracticeAttempt{
		UserID:          userID,
		Skill:           skill,
		Difficulty:      difficulty,
		Language:        language,
		Code:            code,
		OverallStatus:   review.OverallStatus,
		SummaryFeedback: review.SummaryFeedback,
		Scores:          review.Scores,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("practice attempt reviewed", "user_id", userID, "skill", skill,
		"status", saved.OverallStatus)
	return saved, nil
}

// History returns the user's attempts, newest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]*store.PracticeAttempt, error) {
	return s.practice.AttemptsByUser(ctx, userID)
}

// SubmitByTopic loads (or regenerates) the cached question for the
// topic and reviews the solution against it.
func (s *Service) SubmitByTopic(ctx context.Context, userID uuid.UUID, skill, difficulty, language, code string) (*store.PracticeAttempt, error) {
	q, err := s.Question(ctx, skill, difficulty)
	if err != nil {
		return nil, err
	}
	return s.Submit(ctx, userID, skill, difficulty, language, code, q)
}

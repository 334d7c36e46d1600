package roadmap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/generator"
	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/store"
)

// Service owns roadmap generation and step progression. All writes for
// one (user, domain) pair are serialized through a keyed mutex, so a
// generate and a score submission for the same roadmap never interleave.
type Service struct {
	roadmaps store.RoadmapRepo
	users    store.UserRepo
	gen      generator.Generator
	log      *logger.Logger
	locks    *keyedMutex
}

func NewService(roadmaps store.RoadmapRepo, users store.UserRepo, gen generator.Generator, log *logger.Logger) *Service {
	return &Service{
		roadmaps: roadmaps,
		users:    users,
		gen:      gen,
		log:      log,
		locks:    newKeyedMutex(),
	}
}

func lockKey(userID uuid.UUID, domain string) string {
	return userID.String() + "|" + strings.ToLower(domain)
}

// GenerateOrRefresh produces a fresh roadmap for (userID, domain) and
// stores it, replacing any existing one. A refresh starts over: prior
// unlock and completion state is not carried into the new roadmap.
func (s *Service) GenerateOrRefresh(ctx context.Context, userID uuid.UUID, domain string) (*store.Roadmap, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return nil, apperr.Validation("domain", "must not be empty")
	}

	key := lockKey(userID, domain)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, apperr.ErrNotFound)
	}

	sk, err := s.gen.RoadmapSkeleton(ctx, domain, user.Skills)
	if err != nil {
		s.log.Warn("roadmap generation failed", "user_id", userID, "domain", domain, "error", err)
		return nil, err
	}

	rm := &store.Roadmap{UserID: userID, Domain: domain}
	for _, stage := range sk.Stages {
		st := store.Stage{Title: stage.Title}
		for _, step := range stage.Steps {
			st.Steps = append(st.Steps, store.Step{
				Title:        step.Title,
				Description:  step.Description,
				ResourceType: step.ResourceType,
				StudyLink:    step.StudyLink,
			})
		}
		rm.Stages = append(rm.Stages, st)
	}
	// Only the first step starts unlocked.
	rm.Stages[0].Steps[0].Unlocked = true

	saved, err := s.roadmaps.Replace(ctx, rm)
	if err != nil {
		return nil, err
	}
	s.log.Info("roadmap generated", "user_id", userID, "domain", domain,
		"stages", len(saved.Stages), "steps", stepCount(saved.Stages))
	return saved, nil
}

// Get returns the roadmap for (userID, domain).
func (s *Service) Get(ctx context.Context, userID uuid.UUID, domain string) (*store.Roadmap, error) {
	rm, err := s.roadmaps.Get(ctx, userID, domain)
	if err != nil {
		return nil, err
	}
	if rm == nil {
		return nil, fmt.Errorf("roadmap for domain %q: %w", domain, apperr.ErrNotFound)
	}
	return rm, nil
}

// List returns all of the user's roadmaps, most recently updated first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*store.Roadmap, error) {
	return s.roadmaps.ListByUser(ctx, userID)
}

// LastDomain returns the domain of the user's most recently created
// roadmap, or "" if the user has none.
func (s *Service) LastDomain(ctx context.Context, userID uuid.UUID) (string, error) {
	return s.roadmaps.LastDomain(ctx, userID)
}

// RecordStepScore marks target completed with score and unlocks the
// next step in flattened order. The target must be the frontier: an
// unlocked, not yet completed step. Anything else is an invalid
// transition and leaves the roadmap untouched.
func (s *Service) RecordStepScore(ctx context.Context, userID uuid.UUID, domain string, target store.StepRef, score int) (*store.Roadmap, error) {
	if score < 0 || score > 100 {
		return nil, apperr.Validation("score", "must be between 0 and 100")
	}

	key := lockKey(userID, domain)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	rm, err := s.roadmaps.Get(ctx, userID, domain)
	if err != nil {
		return nil, err
	}
	if rm == nil {
		return nil, fmt.Errorf("roadmap for domain %q: %w", domain, apperr.ErrNotFound)
	}

	if globalPosition(rm.Stages, target) < 0 {
		return nil, apperr.InvalidTransition("step %d.%d does not exist in the %s roadmap", target.Stage, target.Step, domain)
	}
	step := rm.Stages[target.Stage].Steps[target.Step]
	if step.Completed {
		return nil, apperr.InvalidTransition("step %q is already completed", step.Title)
	}
	if !step.Unlocked {
		return nil, apperr.InvalidTransition("step %q is locked", step.Title)
	}

	next := nextRef(rm.Stages, target)
	if err := s.roadmaps.CompleteStep(ctx, rm.ID, rm.Version, target, next, score); err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			// A writer outside this process advanced the roadmap
			// between our read and write.
			return nil, apperr.InvalidTransition("roadmap changed concurrently, retry")
		}
		return nil, err
	}

	// Mirror the write in the loaded copy instead of re-reading.
	now := time.Now()
	st := &rm.Stages[target.Stage].Steps[target.Step]
	st.Completed = true
	st.TestScore = &score
	st.CompletedAt = &now
	if next != nil {
		rm.Stages[next.Stage].Steps[next.Step].Unlocked = true
	}
	rm.Version++
	rm.UpdatedAt = now

	s.log.Info("step completed", "user_id", userID, "domain", domain,
		"stage", target.Stage, "step", target.Step, "score", score)
	return rm, nil
}

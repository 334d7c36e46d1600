// Package skillgap runs skills-vs-domain analyses and keeps their full
// history. History is append-only: a new analysis never replaces or
// rewrites earlier ones, so trend views stay truthful.
package skillgap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/generator"
	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/store"
)

// Service owns skill-gap analysis and its history.
type Service struct {
	analyses store.AnalysisRepo
	users    store.UserRepo
	gen      generator.Generator
	log      *logger.Logger
}

func NewService(analyses store.AnalysisRepo, users store.UserRepo, gen generator.Generator, log *logger.Logger) *Service {
	return &Service{analyses: analyses, users: users, gen: gen, log: log}
}

// Analyze compares the user's current skills against the domain and
// appends the result to the history. The user's stored skills can be
// overridden by passing a non-nil skills slice.
func (s *Service) Analyze(ctx context.Context, userID uuid.UUID, domain string, skills []string) (*store.SkillGapAnalysis, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return nil, apperr.Validation("domain", "must not be empty")
	}

	if skills == nil {
		user, err := s.users.ByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("user %s: %w", userID, apperr.ErrNotFound)
		}
		skills = user.Skills
	}

	cmp, err := s.gen.CompareSkills(ctx, domain, skills)
	if err != nil {
		s.log.Warn("skill comparison failed", "user_id", userID, "domain", domain, "error", err)
		return nil, err
	}

	saved, err := s.analyses.Append(ctx, &store.SkillGapAnalysis{
		UserID:          userID,
		Domain:          domain,
		AcquiredSkills:  cmp.AcquiredSkills,
		MissingSkills:   cmp.MissingSkills,
		Recommendations: cmp.Recommendations,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("skill gap analyzed", "user_id", userID, "domain", domain,
		"missing", len(saved.MissingSkills))
	return saved, nil
}

// HistoryPoint is one analysis summarized for trend views.
type HistoryPoint struct {
	Date              time.Time `json:"date"`
	MissingSkillCount int       `json:"missingSkillCount"`
}

// History returns one point per stored analysis for (userID, domain),
// oldest first. Repeating an analysis adds a point; it never collapses
// the series.
func (s *Service) History(ctx context.Context, userID uuid.UUID, domain string) ([]HistoryPoint, error) {
	rows, err := s.analyses.History(ctx, userID, domain)
	if err != nil {
		return nil, err
	}
	points := make([]HistoryPoint, len(rows))
	for i, a := range rows {
		points[i] = HistoryPoint{
			Date:              a.Timestamp,
			MissingSkillCount: len(a.MissingSkills),
		}
	}
	return points, nil
}

// Latest returns the newest analysis for (userID, domain).
func (s *Service) Latest(ctx context.Context, userID uuid.UUID, domain string) (*store.SkillGapAnalysis, error) {
	a, err := s.analyses.Latest(ctx, userID, domain)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("analysis for domain %q: %w", domain, apperr.ErrNotFound)
	}
	return a, nil
}

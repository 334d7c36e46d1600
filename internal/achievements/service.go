// Package achievements aggregates progress across roadmaps, analyses
// and practice into summary, detail and "what next" views. Everything
// here is read-only over the other services' data.
package achievements

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/roadmap"
	"github.com/abhisek/pathwise/internal/store"
)

// Service builds the aggregated views.
type Service struct {
	roadmaps store.RoadmapRepo
	analyses store.AnalysisRepo
	quizzes  store.QuizRepo
	practice store.PracticeRepo
	users    store.UserRepo
	log      *logger.Logger
}

func NewService(roadmaps store.RoadmapRepo, analyses store.AnalysisRepo, quizzes store.QuizRepo, practice store.PracticeRepo, users store.UserRepo, log *logger.Logger) *Service {
	return &Service{
		roadmaps: roadmaps,
		analyses: analyses,
		quizzes:  quizzes,
		practice: practice,
		users:    users,
		log:      log,
	}
}

// Summary is the headline achievement counts.
type Summary struct {
	CompletedCourseCount int `json:"completedCourseCount"`
	CompletedStepCount   int `json:"completedStepCount"`
	SkillAnalysisCount   int `json:"skillAnalysisCount"`
	PracticeSkillCount   int `json:"practiceSkillCount"`
}

// BuildSummary counts fully completed roadmaps, completed steps, stored
// analyses and distinct practiced skills.
func (s *Service) BuildSummary(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	roadmaps, err := s.roadmaps.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sum := &Summary{}
	for _, rm := range roadmaps {
		completed, total := roadmap.Progress(rm.Stages)
		sum.CompletedStepCount += completed
		if total > 0 && completed == total {
			sum.CompletedCourseCount++
		}
	}

	sum.SkillAnalysisCount, err = s.analyses.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	skills, err := s.practice.DistinctSkills(ctx, userID)
	if err != nil {
		return nil, err
	}
	sum.PracticeSkillCount = len(skills)
	return sum, nil
}

// CompletedStep is one finished roadmap step with its quiz outcome.
type CompletedStep struct {
	Domain      string     `json:"domain"`
	StageTitle  string     `json:"stageTitle"`
	StepTitle   string     `json:"stepTitle"`
	Score       *int       `json:"score,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Detail is the full achievement record. QuizResults carries the
// per-question grading breakdown for the review view.
type Detail struct {
	CompletedSteps   []CompletedStep           `json:"completedSteps"`
	QuizResults      []*store.QuizResult       `json:"quizResults"`
	Analyses         []*store.SkillGapAnalysis `json:"analyses"`
	PracticeAttempts []*store.PracticeAttempt  `json:"practiceAttempts"`
}

// BuildDetail lists every completed step with its graded quiz results,
// every analysis and every practice attempt.
func (s *Service) BuildDetail(ctx context.Context, userID uuid.UUID) (*Detail, error) {
	roadmaps, err := s.roadmaps.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	det := &Detail{}
	for _, rm := range roadmaps {
		for _, stage := range rm.Stages {
			for _, step := range stage.Steps {
				if !step.Completed {
					continue
				}
				det.CompletedSteps = append(det.CompletedSteps, CompletedStep{
					Domain:      rm.Domain,
					StageTitle:  stage.Title,
					StepTitle:   step.Title,
					Score:       step.TestScore,
					CompletedAt: step.CompletedAt,
				})
			}
		}
	}

	det.QuizResults, err = s.quizzes.ResultsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	det.Analyses, err = s.analyses.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	det.PracticeAttempts, err = s.practice.AttemptsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return det, nil
}

// Suggestion kinds, strongest first.
const (
	SuggestWelcome        = "WELCOME"
	SuggestRoadmapStep    = "ROADMAP_STEP"
	SuggestPracticeSkills = "PRACTICE_SKILLS"
	SuggestRunAnalysis    = "RUN_ANALYSIS"
)

// Suggestion is the single next action the platform recommends.
type Suggestion struct {
	Kind          string         `json:"kind"`
	Message       string         `json:"message"`
	Domain        string         `json:"domain,omitempty"`
	Step          *store.StepRef `json:"step,omitempty"`
	StepTitle     string         `json:"stepTitle,omitempty"`
	MissingSkills []string       `json:"missingSkills,omitempty"`
}

// WhatsNext picks the highest-priority next action:
//  1. no roadmaps yet: welcome the user into generating one
//  2. an in-progress roadmap: point at its frontier step
//  3. a latest analysis with missing skills: suggest practicing them
//  4. otherwise: suggest running an analysis
func (s *Service) WhatsNext(ctx context.Context, userID uuid.UUID) (*Suggestion, error) {
	roadmaps, err := s.roadmaps.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(roadmaps) == 0 {
		return &Suggestion{
			Kind:    SuggestWelcome,
			Message: "Generate your first roadmap to get started.",
		}, nil
	}

	// Most recently updated first, so the first roadmap with an open
	// frontier is the one the user is actively working.
	for _, rm := range roadmaps {
		if fr := roadmap.Frontier(rm.Stages); fr != nil {
			title := rm.Stages[fr.Stage].Steps[fr.Step].Title
			return &Suggestion{
				Kind:      SuggestRoadmapStep,
				Message:   "Continue your " + rm.Domain + " roadmap: " + title + ".",
				Domain:    rm.Domain,
				Step:      fr,
				StepTitle: title,
			}, nil
		}
	}

	latest, err := s.analyses.LatestAny(ctx, userID)
	if err != nil {
		return nil, err
	}
	if latest != nil && len(latest.MissingSkills) > 0 {
		return &Suggestion{
			Kind:          SuggestPracticeSkills,
			Message:       "Practice the skills you're missing for " + latest.Domain + ".",
			Domain:        latest.Domain,
			MissingSkills: latest.MissingSkills,
		}, nil
	}

	sug := &Suggestion{
		Kind:    SuggestRunAnalysis,
		Message: "Run a skill gap analysis to see where to go next.",
	}
	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user != nil && len(user.Domains) > 0 {
		// The user's primary domain seeds the suggested analysis.
		sug.Domain = user.Domains[0]
		sug.Message = "Run a skill gap analysis for " + user.Domains[0] + " to see where to go next."
	}
	return sug, nil
}

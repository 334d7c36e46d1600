// Package quiz generates step assessments, grades submissions
// server-side and enforces retry eligibility. Correct answers never
// leave the server: clients receive question text and options only, and
// submissions reference a stored quiz by id.
package quiz

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/ent/schema"
	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/generator"
	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/store"
)

const (
	// PassThreshold is the minimum score that completes a step.
	PassThreshold = 70

	// CacheValidity is how long a generated quiz is served from cache.
	CacheValidity = 48 * time.Hour

	// RetryCooldown is the wait imposed after a failed attempt.
	RetryCooldown = time.Hour
)

// AnswerJudge decides freeform answers. Satisfied by the content
// generator; swapped for a deterministic fake in tests.
type AnswerJudge interface {
	JudgeAnswer(ctx context.Context, question, correctAnswer, userAnswer string) (*generator.Judgment, error)
}

// RoadmapProgress is the slice of the roadmap service this package
// needs: reading a roadmap and recording a passing score.
type RoadmapProgress interface {
	Get(ctx context.Context, userID uuid.UUID, domain string) (*store.Roadmap, error)
	RecordStepScore(ctx context.Context, userID uuid.UUID, domain string, target store.StepRef, score int) (*store.Roadmap, error)
}

// Service generates, grades and gates quizzes.
type Service struct {
	quizzes  store.QuizRepo
	roadmaps RoadmapProgress
	gen      generator.Generator
	judge    AnswerJudge
	log      *logger.Logger
	now      func() time.Time
}

func NewService(quizzes store.QuizRepo, roadmaps RoadmapProgress, gen generator.Generator, judge AnswerJudge, log *logger.Logger) *Service {
	return &Service{
		quizzes:  quizzes,
		roadmaps: roadmaps,
		gen:      gen,
		judge:    judge,
		log:      log,
		now:      time.Now,
	}
}

// PublicQuestion is a question as served to clients: no correct answer.
type PublicQuestion struct {
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

// PublicQuiz is the client-facing quiz shape.
type PublicQuiz struct {
	ID        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	Questions []PublicQuestion `json:"questions"`
}

// Identifier derives the cache key for a quiz topic. Case differences
// in title or description hit the same cache entry.
func Identifier(title, description string) string {
	h := sha256.Sum256([]byte(strings.ToLower(title) + "::" + strings.ToLower(description)))
	return hex.EncodeToString(h[:])
}

// Generate returns a quiz for the step topic, serving a cached one when
// a fresh enough entry exists and generating otherwise. The returned
// quiz carries no correct answers.
func (s *Service) Generate(ctx context.Context, title, description string) (*PublicQuiz, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.Validation("title", "must not be empty")
	}

	id := Identifier(title, description)
	now := s.now()

	cached, err := s.quizzes.CachedQuiz(ctx, id, now.Add(-CacheValidity))
	if err != nil {
		return nil, err
	}
	if cached != nil {
		if err := s.quizzes.TouchQuiz(ctx, cached.ID, now); err != nil {
			return nil, err
		}
		s.log.Debug("quiz served from cache", "identifier", id, "quiz_id", cached.ID)
		return publicView(cached), nil
	}

	gq, err := s.gen.Quiz(ctx, title, description)
	if err != nil {
		return nil, err
	}

	stored := &store.GeneratedQuiz{
		Identifier:  id,
		Title:       gq.Title,
		GeneratedAt: now,
		LastUsedAt:  now,
	}
	for _, q := range gq.Questions {
		stored.Questions = append(stored.Questions, schema.QuizQuestion{
			Text:          q.Text,
			Type:          q.Type,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	saved, err := s.quizzes.SaveQuiz(ctx, stored)
	if err != nil {
		return nil, err
	}
	s.log.Info("quiz generated", "title", title, "questions", len(saved.Questions))
	return publicView(saved), nil
}

func publicView(q *store.GeneratedQuiz) *PublicQuiz {
	pub := &PublicQuiz{ID: q.ID, Title: q.Title}
	for _, qq := range q.Questions {
		pub.Questions = append(pub.Questions, PublicQuestion{
			Text:    qq.Text,
			Type:    qq.Type,
			Options: qq.Options,
		})
	}
	return pub
}

// Grade scores answers against questions. Multiple choice grades by
// exact match; freeform questions go to the judge. A missing or empty
// answer is incorrect and never reaches the judge. The score is the
// percentage of correct answers rounded to the nearest integer.
func Grade(ctx context.Context, questions []schema.QuizQuestion, answers []string, judge AnswerJudge) (score int, passed bool, detail []schema.QuestionResult, err error) {
	if len(questions) == 0 {
		return 0, false, nil, apperr.Validation("questions", "quiz has no questions")
	}

	correct := 0
	for i, q := range questions {
		var answer string
		if i < len(answers) {
			answer = strings.TrimSpace(answers[i])
		}

		ok := false
		switch {
		case answer == "":
			// Unanswered.
		case q.Type == generator.QuestionMultipleChoice:
			ok = answer == q.CorrectAnswer
		default:
			j, jerr := judge.JudgeAnswer(ctx, q.Text, q.CorrectAnswer, answer)
			if jerr != nil {
				return 0, false, nil, jerr
			}
			ok = j.Correct
		}
		if ok {
			correct++
		}
		detail = append(detail, schema.QuestionResult{
			Question:      q.Text,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       ok,
		})
	}

	score = int(math.Round(float64(correct) * 100 / float64(len(questions))))
	return score, score >= PassThreshold, detail, nil
}

// SubmitResult is the outcome of a graded submission.
type SubmitResult struct {
	Score   int
	Passed  bool
	Detail  []schema.QuestionResult
	Roadmap *store.Roadmap
}

// Submit grades the user's answers against the stored quiz, appends the
// result to the attempt history and, on a passing score, completes the
// roadmap step. The target must be an unlocked, uncompleted step of the
// user's roadmap for the domain.
func (s *Service) Submit(ctx context.Context, userID, quizID uuid.UUID, domain string, target store.StepRef, answers []string) (*SubmitResult, error) {
	q, err := s.quizzes.QuizByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, fmt.Errorf("quiz %s: %w", quizID, apperr.ErrNotFound)
	}

	rm, err := s.roadmaps.Get(ctx, userID, domain)
	if err != nil {
		return nil, err
	}
	if err := checkStep(rm, target); err != nil {
		return nil, err
	}
	if len(answers) > len(q.Questions) {
		return nil, apperr.Validation("answers", "more answers than questions")
	}

	score, passed, detail, err := Grade(ctx, q.Questions, answers, s.judge)
	if err != nil {
		return nil, err
	}

	if _, err := s.quizzes.AppendResult(ctx, &store.QuizResult{
		UserID:     userID,
		RoadmapID:  rm.ID,
		StageIndex: target.Stage,
		StepIndex:  target.Step,
		QuizTitle:  q.Title,
		Score:      score,
		Passed:     passed,
		Detail:     detail,
	}); err != nil {
		return nil, err
	}

	res := &SubmitResult{Score: score, Passed: passed, Detail: detail, Roadmap: rm}
	if passed {
		updated, err := s.roadmaps.RecordStepScore(ctx, userID, domain, target, score)
		if err != nil {
			return nil, err
		}
		res.Roadmap = updated
	}
	s.log.Info("quiz submitted", "user_id", userID, "domain", domain,
		"stage", target.Stage, "step", target.Step, "score", score, "passed", passed)
	return res, nil
}

// Eligibility reports whether the user may attempt the quiz for a step
// right now.
type Eligibility struct {
	Eligible bool       `json:"eligible"`
	Reason   string     `json:"reason,omitempty"`
	RetryAt  *time.Time `json:"retryAt,omitempty"`
}

// Eligibility reasons.
const (
	ReasonAlreadyCompleted = "already_completed"
	ReasonLocked           = "locked"
	ReasonCooldown         = "cooldown"
)

// CheckEligibility reports whether the user may attempt the step's quiz:
// not for locked or completed steps, and not within the cooldown after
// a failed attempt.
func (s *Service) CheckEligibility(ctx context.Context, userID uuid.UUID, domain string, target store.StepRef) (*Eligibility, error) {
	rm, err := s.roadmaps.Get(ctx, userID, domain)
	if err != nil {
		return nil, err
	}
	if target.Stage < 0 || target.Stage >= len(rm.Stages) ||
		target.Step < 0 || target.Step >= len(rm.Stages[target.Stage].Steps) {
		return nil, apperr.InvalidTransition("step %d.%d does not exist", target.Stage, target.Step)
	}
	step := rm.Stages[target.Stage].Steps[target.Step]
	if step.Completed {
		return &Eligibility{Eligible: false, Reason: ReasonAlreadyCompleted}, nil
	}
	if !step.Unlocked {
		return &Eligibility{Eligible: false, Reason: ReasonLocked}, nil
	}

	last, err := s.quizzes.LatestResult(ctx, userID, rm.ID, target.Stage, target.Step)
	if err != nil {
		return nil, err
	}
	if last != nil && !last.Passed {
		retryAt := last.Timestamp.Add(RetryCooldown)
		if s.now().Before(retryAt) {
			return &Eligibility{Eligible: false, Reason: ReasonCooldown, RetryAt: &retryAt}, nil
		}
	}
	return &Eligibility{Eligible: true}, nil
}

// checkStep verifies target addresses an unlocked, uncompleted step.
func checkStep(rm *store.Roadmap, target store.StepRef) error {
	if target.Stage < 0 || target.Stage >= len(rm.Stages) ||
		target.Step < 0 || target.Step >= len(rm.Stages[target.Stage].Steps) {
		return apperr.InvalidTransition("step %d.%d does not exist", target.Stage, target.Step)
	}
	step := rm.Stages[target.Stage].Steps[target.Step]
	if step.Completed {
		return apperr.InvalidTransition("step %q is already completed", step.Title)
	}
	if !step.Unlocked {
		return apperr.InvalidTransition("step %q is locked", step.Title)
	}
	return nil
}

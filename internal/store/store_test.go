package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathwise/ent/schema"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestUser(t *testing.T, s *Store, email string) *User {
	t.Helper()
	u, err := s.UserRepo().Create(context.Background(), &User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$notarealhash",
	})
	require.NoError(t, err)
	return u
}

func twoStageRoadmap(userID uuid.UUID, domain string) *Roadmap {
	return &Roadmap{
		UserID: userID,
		Domain: domain,
		Stages: []Stage{
			{Title: "Foundations", Steps: []Step{
				{Title: "Intro", ResourceType: "video", Unlocked: true},
				{Title: "Basics", ResourceType: "article"},
			}},
			{Title: "Advanced", Steps: []Step{
				{Title: "Deep dive", ResourceType: "course"},
			}},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestUserCreateAndLookup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.UserRepo()

	u := createTestUser(t, s, "ada@example.com")
	require.NotEqual(t, uuid.Nil, u.ID)

	got, err := repo.ByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)

	got, err = repo.ByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ada@example.com", got.Email)

	got, err = repo.ByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserDuplicateEmail(t *testing.T) {
	s := openTestStore(t)
	createTestUser(t, s, "dup@example.com")

	_, err := s.UserRepo().Create(context.Background(), &User{
		Name:         "Second",
		Email:        "dup@example.com",
		PasswordHash: "x",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserUpdateProfile(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u := createTestUser(t, s, "profile@example.com")

	err := s.UserRepo().UpdateProfile(ctx, u.ID, []string{"go", "sql"}, []string{"backend development"})
	require.NoError(t, err)

	got, err := s.UserRepo().ByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql"}, got.Skills)
	assert.Equal(t, []string{"backend development"}, got.Domains)
}

func TestRoadmapReplaceAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.RoadmapRepo()
	u := createTestUser(t, s, "roadmap@example.com")

	stored, err := repo.Replace(ctx, twoStageRoadmap(u.ID, "data engineering"))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, stored.ID)
	assert.Equal(t, 1, stored.Version)

	got, err := repo.Get(ctx, u.ID, "data engineering")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Stages, 2)
	require.Len(t, got.Stages[0].Steps, 2)
	assert.True(t, got.Stages[0].Steps[0].Unlocked)
	assert.False(t, got.Stages[0].Steps[1].Unlocked)
	assert.Equal(t, "Deep dive", got.Stages[1].Steps[0].Title)

	// Replacing discards the old roadmap entirely.
	fresh := twoStageRoadmap(u.ID, "data engineering")
	fresh.Stages[0].Title = "Regenerated"
	stored2, err := repo.Replace(ctx, fresh)
	require.NoError(t, err)
	assert.NotEqual(t, stored.ID, stored2.ID)

	got, err = repo.Get(ctx, u.ID, "data engineering")
	require.NoError(t, err)
	assert.Equal(t, "Regenerated", got.Stages[0].Title)
}

func TestRoadmapGetAbsent(t *testing.T) {
	s := openTestStore(t)
	got, err := s.RoadmapRepo().Get(context.Background(), uuid.New(), "nothing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRoadmapCompleteStep(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.RoadmapRepo()
	u := createTestUser(t, s, "progress@example.com")

	rm, err := repo.Replace(ctx, twoStageRoadmap(u.ID, "backend"))
	require.NoError(t, err)

	next := &StepRef{Stage: 0, Step: 1}
	err = repo.CompleteStep(ctx, rm.ID, rm.Version, StepRef{Stage: 0, Step: 0}, next, 85)
	require.NoError(t, err)

	got, err := repo.Get(ctx, u.ID, "backend")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)
	first := got.Stages[0].Steps[0]
	assert.True(t, first.Completed)
	require.NotNil(t, first.TestScore)
	assert.Equal(t, 85, *first.TestScore)
	require.NotNil(t, first.CompletedAt)
	assert.True(t, got.Stages[0].Steps[1].Unlocked)

	// A stale version must not apply.
	err = repo.CompleteStep(ctx, rm.ID, rm.Version, StepRef{Stage: 0, Step: 1}, nil, 90)
	assert.ErrorIs(t, err, ErrVersionConflict)

	got, err = repo.Get(ctx, u.ID, "backend")
	require.NoError(t, err)
	assert.False(t, got.Stages[0].Steps[1].Completed)
}

func TestRoadmapLastDomain(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.RoadmapRepo()
	u := createTestUser(t, s, "domains@example.com")

	domain, err := repo.LastDomain(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, domain)

	_, err = repo.Replace(ctx, twoStageRoadmap(u.ID, "frontend"))
	require.NoError(t, err)
	_, err = repo.Replace(ctx, twoStageRoadmap(u.ID, "devops"))
	require.NoError(t, err)

	domain, err = repo.LastDomain(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "devops", domain)
}

func TestQuizCacheWindow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.QuizRepo()

	q, err := repo.SaveQuiz(ctx, &GeneratedQuiz{
		Identifier: "abc123",
		Title:      "SQL Joins",
		Questions: []schema.QuizQuestion{
			{Text: "Which join keeps unmatched left rows?", Type: "multiple-choice",
				Options:       []string{"INNER", "LEFT", "RIGHT", "CROSS"},
				CorrectAnswer: "LEFT"},
		},
		GeneratedAt: time.Now().UTC(),
		LastUsedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)

	got, err := repo.CachedQuiz(ctx, "abc123", time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, q.ID, got.ID)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, "LEFT", got.Questions[0].CorrectAnswer)

	// A cutoff after the generation time excludes the entry.
	got, err = repo.CachedQuiz(ctx, "abc123", time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.CachedQuiz(ctx, "unknown", time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestQuizResultHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.QuizRepo()
	u := createTestUser(t, s, "quiz@example.com")
	rm, err := s.RoadmapRepo().Replace(ctx, twoStageRoadmap(u.ID, "backend"))
	require.NoError(t, err)

	base := time.Now().UTC().Add(-time.Hour)
	for i, score := range []int{55, 80} {
		_, err := repo.AppendResult(ctx, &QuizResult{
			UserID:     u.ID,
			RoadmapID:  rm.ID,
			StageIndex: 0,
			StepIndex:  0,
			QuizTitle:  "Intro",
			Score:      score,
			Passed:     score >= 70,
			Detail: []schema.QuestionResult{
				{Question: "q", UserAnswer: "a", CorrectAnswer: "a", Correct: true},
			},
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	latest, err := repo.LatestResult(ctx, u.ID, rm.ID, 0, 0)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 80, latest.Score)
	assert.True(t, latest.Passed)

	latest, err = repo.LatestResult(ctx, u.ID, rm.ID, 0, 1)
	require.NoError(t, err)
	assert.Nil(t, latest)

	all, err := repo.ResultsByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 80, all[0].Score)
}

func TestAnalysisAppendOnlyHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.AnalysisRepo()
	u := createTestUser(t, s, "gap@example.com")

	base := time.Now().UTC().Add(-2 * time.Hour)
	for i, missing := range [][]string{{"docker", "k8s", "terraform"}, {"terraform"}} {
		_, err := repo.Append(ctx, &SkillGapAnalysis{
			UserID:         u.ID,
			Domain:         "devops",
			AcquiredSkills: []string{"linux"},
			MissingSkills:  missing,
			Timestamp:      base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	history, err := repo.History(ctx, u.ID, "devops")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Len(t, history[0].MissingSkills, 3)
	assert.Len(t, history[1].MissingSkills, 1)

	latest, err := repo.Latest(ctx, u.ID, "devops")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, []string{"terraform"}, latest.MissingSkills)

	latest, err = repo.Latest(ctx, u.ID, "frontend")
	require.NoError(t, err)
	assert.Nil(t, latest)

	latestAny, err := repo.LatestAny(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, latestAny)
	assert.Equal(t, "devops", latestAny.Domain)

	n, err := repo.CountByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPracticeAttempts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.PracticeRepo()
	u := createTestUser(t, s, "practice@example.com")

	for _, skill := range []string{"sql", "sql", "go"} {
		_, err := repo.AppendAttempt(ctx, &PracticeAttempt{
			UserID:        u.ID,
			Skill:         skill,
			Difficulty:    "easy",
			Language:      "go",
			Code:          "package main",
			OverallStatus: "pass",
			Scores:        map[string]int{"correctness": 9},
			Timestamp:     time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	attempts, err := repo.AttemptsByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, attempts, 3)

	skills, err := repo.DistinctSkills(ctx, u.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sql", "go"}, skills)
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "quiz-gen",
		InputTokens:  1200,
		OutputTokens: 400,
		LatencyMs:    900,
		Success:      true,
		RequestBody:  `{"system":"..."}`,
		ResponseBody: `{"questions":[]}`,
	})
	require.NoError(t, err)

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "quiz-gen", events[0].Purpose)

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, 1200, e.InputTokens)

	stats, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].Calls)
	assert.Equal(t, 1200, stats[0].InputTokens)

	models, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "claude-sonnet-4-5", models[0].Model)
}

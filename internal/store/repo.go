package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/ent/schema"
)

// ErrVersionConflict is returned by RoadmapRepo.CompleteStep when the
// expected roadmap version no longer matches, meaning a concurrent
// writer got there first.
var ErrVersionConflict = errors.New("roadmap version conflict")

// ErrEmailTaken is returned by UserRepo.Create for a duplicate email.
var ErrEmailTaken = errors.New("email already registered")

// User is an account record.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Skills       []string
	Domains      []string
	CreatedAt    time.Time
}

// UserRepo manages user accounts.
type UserRepo interface {
	// Create stores a new user. Returns ErrEmailTaken if the email is
	// already registered.
	Create(ctx context.Context, u *User) (*User, error)

	// ByEmail returns the user with the given email, or nil if none.
	ByEmail(ctx context.Context, email string) (*User, error)

	// ByID returns the user with the given id, or nil if none.
	ByID(ctx context.Context, id uuid.UUID) (*User, error)

	// UpdateProfile replaces the user's skills and domains.
	UpdateProfile(ctx context.Context, id uuid.UUID, skills, domains []string) error
}

// Roadmap is a learning path for one (user, domain) pair. Stages and
// steps are ordered; a step's global position is its index when all
// steps are flattened in stage-then-step order and is always computed,
// never stored.
type Roadmap struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Domain    string
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
	Stages    []Stage
}

// Stage is an ordered group of steps within a roadmap.
type Stage struct {
	Title string
	Steps []Step
}

// Step is a single learning unit. TestScore is present only once the
// step is completed.
type Step struct {
	Title        string
	Description  string
	ResourceType string
	StudyLink    string
	Unlocked     bool
	Completed    bool
	TestScore    *int
	CompletedAt  *time.Time
}

// StepRef addresses a step by its stage and step indices.
type StepRef struct {
	Stage int
	Step  int
}

// RoadmapRepo persists roadmaps and their step state.
type RoadmapRepo interface {
	// Get returns the roadmap for (userID, domain), or nil if none.
	Get(ctx context.Context, userID uuid.UUID, domain string) (*Roadmap, error)

	// ListByUser returns all of the user's roadmaps, most recently
	// updated first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Roadmap, error)

	// LastDomain returns the domain of the user's most recently created
	// roadmap, or "" if the user has none.
	LastDomain(ctx context.Context, userID uuid.UUID) (string, error)

	// Replace atomically removes any existing roadmap for
	// (rm.UserID, rm.Domain) and stores rm in its place. Returns the
	// stored roadmap with its assigned id. Nothing is persisted on error.
	Replace(ctx context.Context, rm *Roadmap) (*Roadmap, error)

	// CompleteStep atomically marks target completed with score, unlocks
	// next (when non-nil), and bumps the roadmap version. The update
	// applies only if the stored version still equals version; otherwise
	// ErrVersionConflict is returned and nothing changes.
	CompleteStep(ctx context.Context, roadmapID uuid.UUID, version int, target StepRef, next *StepRef, score int) error
}

// GeneratedQuiz is a cached quiz definition. Questions include correct
// answers and stay server-side.
type GeneratedQuiz struct {
	ID          uuid.UUID
	Identifier  string
	Title       string
	Questions   []schema.QuizQuestion
	GeneratedAt time.Time
	LastUsedAt  time.Time
}

// QuizResult is one graded submission for a roadmap step. Append-only.
type QuizResult struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	RoadmapID  uuid.UUID
	StageIndex int
	StepIndex  int
	QuizTitle  string
	Score      int
	Passed     bool
	Detail     []schema.QuestionResult
	Timestamp  time.Time
}

// QuizRepo manages the quiz cache and the append-only result history.
type QuizRepo interface {
	// CachedQuiz returns the newest quiz for identifier generated at or
	// after notBefore, or nil if none qualifies.
	CachedQuiz(ctx context.Context, identifier string, notBefore time.Time) (*GeneratedQuiz, error)

	// QuizByID returns the quiz with the given id, or nil if none.
	QuizByID(ctx context.Context, id uuid.UUID) (*GeneratedQuiz, error)

	// SaveQuiz stores a freshly generated quiz and returns it with its
	// assigned id.
	SaveQuiz(ctx context.Context, q *GeneratedQuiz) (*GeneratedQuiz, error)

	// TouchQuiz updates the quiz's last_used_at.
	TouchQuiz(ctx context.Context, id uuid.UUID, usedAt time.Time) error

	// AppendResult stores a graded submission.
	AppendResult(ctx context.Context, r *QuizResult) (*QuizResult, error)

	// LatestResult returns the user's most recent result for the step,
	// or nil if the step has never been attempted.
	LatestResult(ctx context.Context, userID, roadmapID uuid.UUID, stage, step int) (*QuizResult, error)

	// ResultsByUser returns all of the user's results, newest first.
	ResultsByUser(ctx context.Context, userID uuid.UUID) ([]*QuizResult, error)
}

// SkillGapAnalysis is one timestamped skills-vs-domain comparison.
// Append-only; never mutated after creation.
type SkillGapAnalysis struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Domain          string
	AcquiredSkills  []string
	MissingSkills   []string
	Recommendations []string
	Timestamp       time.Time
}

// AnalysisRepo manages the append-only skill-gap analysis history.
type AnalysisRepo interface {
	// Append stores a new analysis and returns it with its assigned id.
	Append(ctx context.Context, a *SkillGapAnalysis) (*SkillGapAnalysis, error)

	// History returns all analyses for (userID, domain), oldest first.
	History(ctx context.Context, userID uuid.UUID, domain string) ([]*SkillGapAnalysis, error)

	// Latest returns the newest analysis for (userID, domain), or nil
	// if none.
	Latest(ctx context.Context, userID uuid.UUID, domain string) (*SkillGapAnalysis, error)

	// LatestAny returns the user's newest analysis across all domains,
	// or nil if none.
	LatestAny(ctx context.Context, userID uuid.UUID) (*SkillGapAnalysis, error)

	// ListByUser returns all of the user's analyses, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*SkillGapAnalysis, error)

	// CountByUser returns the total number of analyses for the user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// PracticeQuestion is a cached practice problem.
type PracticeQuestion struct {
	ID           uuid.UUID
	Identifier   string
	Title        string
	Description  string
	Examples     []schema.PracticeExample
	Constraints  string
	DefaultStdin string
	GeneratedAt  time.Time
	LastUsedAt   time.Time
}

// PracticeAttempt is one submitted solution with its AI review.
// Append-only.
type PracticeAttempt struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Skill           string
	Difficulty      string
	Language        string
	Code            string
	OverallStatus   string
	SummaryFeedback string
	Scores          map[string]int
	Timestamp       time.Time
}

// PracticeRepo manages the practice question cache and attempt history.
type PracticeRepo interface {
	// CachedQuestion returns the newest question for identifier
	// generated at or after notBefore, or nil if none qualifies.
	CachedQuestion(ctx context.Context, identifier string, notBefore time.Time) (*PracticeQuestion, error)

	// SaveQuestion stores a freshly generated question.
	SaveQuestion(ctx context.Context, q *PracticeQuestion) (*PracticeQuestion, error)

	// TouchQuestion updates the question's last_used_at.
	TouchQuestion(ctx context.Context, id uuid.UUID, usedAt time.Time) error

	// AppendAttempt stores a reviewed submission.
	AppendAttempt(ctx context.Context, a *PracticeAttempt) (*PracticeAttempt, error)

	// AttemptsByUser returns all of the user's attempts, newest first.
	AttemptsByUser(ctx context.Context, userID uuid.UUID) ([]*PracticeAttempt, error)

	// DistinctSkills returns the distinct skills the user has practiced.
	DistinctSkills(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// FeedbackEvent is a user rating of an AI-generated item. Append-only.
type FeedbackEvent struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      string
	ItemID    string
	Rating    int
	Comment   string
	Timestamp time.Time
}

// FeedbackRepo stores feedback ratings.
type FeedbackRepo interface {
	Append(ctx context.Context, f *FeedbackEvent) (*FeedbackEvent, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates token usage per purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns the event with the given id, or nil if none.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates usage per served model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

package generator

import "context"

// Generator produces all AI content the platform serves: roadmap
// skeletons, quizzes, skill comparisons, answer judgments and practice
// material. Every method returns apperr.GenerationFailed when the
// provider fails or returns unusable content.
type Generator interface {
	// RoadmapSkeleton produces a staged learning path for the domain,
	// taking the user's existing skills into account.
	RoadmapSkeleton(ctx context.Context, domain string, skills []string) (*Skeleton, error)

	// Quiz produces an assessment for a roadmap step.
	Quiz(ctx context.Context, title, description string) (*Quiz, error)

	// CompareSkills compares the user's skills against the domain's
	// requirements.
	CompareSkills(ctx context.Context, domain string, skills []string) (*SkillComparison, error)

	// JudgeAnswer decides whether a freeform answer matches the
	// expected one in meaning.
	JudgeAnswer(ctx context.Context, question, correctAnswer, userAnswer string) (*Judgment, error)

	// PracticeQuestion produces a coding problem for the skill at the
	// given difficulty.
	PracticeQuestion(ctx context.Context, skill, difficulty string) (*PracticeSpec, error)

	// AnalyzePractice reviews a submitted solution.
	AnalyzePractice(ctx context.Context, spec *PracticeSpec, language, code string) (*PracticeReview, error)
}

// Config controls the LLM generation calls.
type Config struct {
	// MaxTokens is the token budget for a single LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// QuizQuestionMin and QuizQuestionMax bound how many questions a
	// quiz asks for.
	QuizQuestionMin int
	QuizQuestionMax int
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       8192,
		Temperature:     0.7,
		QuizQuestionMin: 15,
		QuizQuestionMax: 25,
	}
}

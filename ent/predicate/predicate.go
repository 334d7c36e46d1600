// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// FeedbackEvent is the predicate function for feedbackevent builders.
type FeedbackEvent func(*sql.Selector)

// GeneratedQuiz is the predicate function for generatedquiz builders.
type GeneratedQuiz func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PracticeAttempt is the predicate function for practiceattempt builders.
type PracticeAttempt func(*sql.Selector)

// PracticeQuestion is the predicate function for practicequestion builders.
type PracticeQuestion func(*sql.Selector)

// QuizResult is the predicate function for quizresult builders.
type QuizResult func(*sql.Selector)

// Roadmap is the predicate function for roadmap builders.
type Roadmap func(*sql.Selector)

// SkillGapAnalysis is the predicate function for skillgapanalysis builders.
type SkillGapAnalysis func(*sql.Selector)

// Step is the predicate function for step builders.
type Step func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

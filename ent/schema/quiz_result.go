package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// QuizResult records one graded quiz submission for a roadmap step.
// Results are append-only: the latest row for a step drives retry
// eligibility, and the per-question detail feeds the achievements
// review view after the step has been completed.
type QuizResult struct {
	ent.Schema
}

func (QuizResult) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (QuizResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("roadmap_id", uuid.UUID{}),
		field.Int("stage_index").NonNegative(),
		field.Int("step_index").NonNegative(),
		field.String("quiz_title").NotEmpty(),
		field.Int("score").Range(0, 100),
		field.Bool("passed"),
		field.JSON("detail", []QuestionResult{}).
			Comment("Per-question grading breakdown"),
	}
}

func (QuizResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("roadmap_id", "stage_index", "step_index"),
	}
}

// QuestionResult is the stored grading outcome for a single question.
type QuestionResult struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PracticeQuestion caches an AI-generated practice problem keyed by a
// hash of (skill, difficulty), mirroring the quiz cache idiom.
type PracticeQuestion struct {
	ent.Schema
}

func (PracticeQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("identifier").
			NotEmpty().
			Comment("SHA-256 of normalized skill::difficulty"),
		field.String("title").NotEmpty(),
		field.String("description").NotEmpty(),
		field.JSON("examples", []PracticeExample{}),
		field.String("constraints").Optional(),
		field.String("default_stdin").Optional(),
		field.Time("generated_at").
			Default(time.Now),
		field.Time("last_used_at").
			Default(time.Now),
	}
}

func (PracticeQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("identifier", "generated_at"),
	}
}

// PracticeExample is a sample input/output pair for a practice problem.
type PracticeExample struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// PracticeAttempt records one submitted solution and its AI review.
// Attempts are append-only.
type PracticeAttempt struct {
	ent.Schema
}

func (PracticeAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (PracticeAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("user_id", uuid.UUID{}),
		field.String("skill").NotEmpty(),
		field.String("difficulty").NotEmpty(),
		field.String("language").NotEmpty(),
		field.Text("code"),
		field.String("overall_status").NotEmpty(),
		field.Text("summary_feedback"),
		field.JSON("scores", map[string]int{}).
			Comment("1-10 review scores keyed by dimension"),
	}
}

func (PracticeAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "skill"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// GeneratedQuiz caches an AI-generated quiz definition keyed by a hash of
// the course title and description. The questions column includes the
// correct answers and must never be returned to clients as stored;
// grading reloads the definition by id so answers never round-trip
// through the client.
type GeneratedQuiz struct {
	ent.Schema
}

func (GeneratedQuiz) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("identifier").
			NotEmpty().
			Comment("SHA-256 of normalized title::description"),
		field.String("title").NotEmpty(),
		field.JSON("questions", []QuizQuestion{}).
			Comment("Full question list, correct answers included"),
		field.Time("generated_at").
			Default(time.Now),
		field.Time("last_used_at").
			Default(time.Now),
	}
}

func (GeneratedQuiz) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("identifier", "generated_at"),
	}
}

// QuizQuestion is the stored shape of a single quiz question.
type QuizQuestion struct {
	Text          string   `json:"text"`
	Type          string   `json:"type"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
}


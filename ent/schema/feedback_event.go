package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// FeedbackEvent records a user rating of an AI-generated item.
type FeedbackEvent struct {
	ent.Schema
}

func (FeedbackEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (FeedbackEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("user_id", uuid.UUID{}),
		field.String("kind").
			NotEmpty().
			Comment("roadmap, quiz, skill_analysis, practice_question or recommendation"),
		field.String("item_id").
			NotEmpty().
			Comment("Identifier of the rated item"),
		field.Int("rating").Range(1, 5),
		field.String("comment").Optional(),
	}
}

func (FeedbackEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}

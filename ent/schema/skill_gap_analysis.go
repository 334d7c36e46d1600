package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// SkillGapAnalysis is one timestamped comparison of a user's skills
// against a target domain. Analyses for a domain form an append-only,
// time-ordered history; rows are never mutated after creation.
type SkillGapAnalysis struct {
	ent.Schema
}

func (SkillGapAnalysis) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (SkillGapAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("user_id", uuid.UUID{}),
		field.String("domain").NotEmpty(),
		field.JSON("acquired_skills", []string{}),
		field.JSON("missing_skills", []string{}),
		field.JSON("recommendations", []string{}),
	}
}

func (SkillGapAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "domain"),
	}
}

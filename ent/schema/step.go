package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Step is a single learning unit within a roadmap stage. Unlock and
// completion state live here; the flattened (stage, step) order defines
// the global position used by the linear unlock rule. Completion is
// permanent: a completed step is never re-locked.
type Step struct {
	ent.Schema
}

func (Step) Fields() []ent.Field {
	return []ent.Field{
		field.Int("stage_index").NonNegative(),
		field.Int("step_index").NonNegative(),
		field.String("stage_title").NotEmpty(),
		field.String("title").NotEmpty(),
		field.String("description"),
		field.String("resource_type"),
		field.String("study_link"),
		field.Bool("is_unlocked").Default(false),
		field.Bool("is_completed").Default(false),
		field.Int("test_score").
			Optional().
			Nillable().
			Range(0, 100).
			Comment("Present only once the step is completed"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Step) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("roadmap", Roadmap.Type).
			Ref("steps").
			Unique().
			Required(),
	}
}

func (Step) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stage_index", "step_index").
			Edges("roadmap").
			Unique(),
	}
}

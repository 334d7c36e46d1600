package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Roadmap is a generated learning path for one (user, domain) pair.
// Regeneration replaces the roadmap and all of its steps; the version
// field guards concurrent read-modify-write of step state.
type Roadmap struct {
	ent.Schema
}

func (Roadmap) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("user_id", uuid.UUID{}),
		field.String("domain").NotEmpty(),
		field.Int("version").
			Default(1).
			Comment("Bumped on every step-state mutation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

func (Roadmap) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", Step.Type),
	}
}

func (Roadmap) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "domain").Unique(),
		index.Fields("user_id", "updated_at"),
	}
}

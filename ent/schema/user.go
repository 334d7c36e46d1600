package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User is an account holder. All other entities reference users by id;
// users are never deleted.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").NotEmpty(),
		field.String("email").NotEmpty().Unique(),
		field.String("password_hash").NotEmpty().Sensitive(),
		field.JSON("skills", []string{}).
			Optional().
			Comment("Self-reported skill names"),
		field.JSON("domains", []string{}).
			Optional().
			Comment("Career domains of interest, primary first"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

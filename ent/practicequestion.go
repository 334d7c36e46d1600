// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathwise/ent/practicequestion"
	"github.com/abhisek/pathwise/ent/schema"
	"github.com/google/uuid"
)

// PracticeQuestion is the model entity for the PracticeQuestion schema.
type PracticeQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SHA-256 of normalized skill::difficulty
	Identifier string `json:"identifier,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Examples holds the value of the "examples" field.
	Examples []schema.PracticeExample `json:"examples,omitempty"`
	// Constraints holds the value of the "constraints" field.
	Constraints string `json:"constraints,omitempty"`
	// DefaultStdin holds the value of the "default_stdin" field.
	DefaultStdin string `json:"default_stdin,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt time.Time `json:"generated_at,omitempty"`
	// LastUsedAt holds the value of the "last_used_at" field.
	LastUsedAt   time.Time `json:"last_used_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practicequestion.FieldExamples:
			values[i] = new([]byte)
		case practicequestion.FieldIdentifier, practicequestion.FieldTitle, practicequestion.FieldDescription, practicequestion.FieldConstraints, practicequestion.FieldDefaultStdin:
			values[i] = new(sql.NullString)
		case practicequestion.FieldGeneratedAt, practicequestion.FieldLastUsedAt:
			values[i] = new(sql.NullTime)
		case practicequestion.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeQuestion fields.
func (_m *PracticeQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practicequestion.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case practicequestion.FieldIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field identifier", values[i])
			} else if value.Valid {
				_m.Identifier = value.String
			}
		case practicequestion.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case practicequestion.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case practicequestion.FieldExamples:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field examples", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Examples); err != nil {
					return fmt.Errorf("unmarshal field examples: %w", err)
				}
			}
		case practicequestion.FieldConstraints:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field constraints", values[i])
			} else if value.Valid {
				_m.Constraints = value.String
			}
		case practicequestion.FieldDefaultStdin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_stdin", values[i])
			} else if value.Valid {
				_m.DefaultStdin = value.String
			}
		case practicequestion.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = value.Time
			}
		case practicequestion.FieldLastUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_at", values[i])
			} else if value.Valid {
				_m.LastUsedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeQuestion.
// Note that you need to call PracticeQuestion.Unwrap() before calling this method if this PracticeQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeQuestion) Update() *PracticeQuestionUpdateOne {
	return NewPracticeQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeQuestion) Unwrap() *PracticeQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("identifier=")
	builder.WriteString(_m.Identifier)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("examples=")
	builder.WriteString(fmt.Sprintf("%v", _m.Examples))
	builder.WriteString(", ")
	builder.WriteString("constraints=")
	builder.WriteString(_m.Constraints)
	builder.WriteString(", ")
	builder.WriteString("default_stdin=")
	builder.WriteString(_m.DefaultStdin)
	builder.WriteString(", ")
	builder.WriteString("generated_at=")
	builder.WriteString(_m.GeneratedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_used_at=")
	builder.WriteString(_m.LastUsedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeQuestions is a parsable slice of PracticeQuestion.
type PracticeQuestions []*PracticeQuestion

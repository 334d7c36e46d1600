// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathwise/ent/skillgapanalysis"
	"github.com/google/uuid"
)

// SkillGapAnalysis is the model entity for the SkillGapAnalysis schema.
type SkillGapAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UTC wall-clock time the record was created
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain string `json:"domain,omitempty"`
	// AcquiredSkills holds the value of the "acquired_skills" field.
	AcquiredSkills []string `json:"acquired_skills,omitempty"`
	// MissingSkills holds the value of the "missing_skills" field.
	MissingSkills []string `json:"missing_skills,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations []string `json:"recommendations,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SkillGapAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case skillgapanalysis.FieldAcquiredSkills, skillgapanalysis.FieldMissingSkills, skillgapanalysis.FieldRecommendations:
			values[i] = new([]byte)
		case skillgapanalysis.FieldDomain:
			values[i] = new(sql.NullString)
		case skillgapanalysis.FieldTimestamp:
			values[i] = new(sql.NullTime)
		case skillgapanalysis.FieldID, skillgapanalysis.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SkillGapAnalysis fields.
func (_m *SkillGapAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case skillgapanalysis.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case skillgapanalysis.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case skillgapanalysis.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case skillgapanalysis.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case skillgapanalysis.FieldAcquiredSkills:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field acquired_skills", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AcquiredSkills); err != nil {
					return fmt.Errorf("unmarshal field acquired_skills: %w", err)
				}
			}
		case skillgapanalysis.FieldMissingSkills:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field missing_skills", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MissingSkills); err != nil {
					return fmt.Errorf("unmarshal field missing_skills: %w", err)
				}
			}
		case skillgapanalysis.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SkillGapAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *SkillGapAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SkillGapAnalysis.
// Note that you need to call SkillGapAnalysis.Unwrap() before calling this method if this SkillGapAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SkillGapAnalysis) Update() *SkillGapAnalysisUpdateOne {
	return NewSkillGapAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SkillGapAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SkillGapAnalysis) Unwrap() *SkillGapAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SkillGapAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SkillGapAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("SkillGapAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("acquired_skills=")
	builder.WriteString(fmt.Sprintf("%v", _m.AcquiredSkills))
	builder.WriteString(", ")
	builder.WriteString("missing_skills=")
	builder.WriteString(fmt.Sprintf("%v", _m.MissingSkills))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteByte(')')
	return builder.String()
}

// SkillGapAnalyses is a parsable slice of SkillGapAnalysis.
type SkillGapAnalyses []*SkillGapAnalysis

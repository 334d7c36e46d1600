// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/practiceattempt"
	"github.com/google/uuid"
)

// PracticeAttemptCreate is the builder for creating a PracticeAttempt entity.
type PracticeAttemptCreate struct {
	config
	mutation *PracticeAttemptMutation
	hooks    []Hook
}

// SetTimestamp sets the "timestamp" field.
func (_c *PracticeAttemptCreate) SetTimestamp(v time.Time) *PracticeAttemptCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PracticeAttemptCreate) SetNillableTimestamp(v *time.Time) *PracticeAttemptCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PracticeAttemptCreate) SetUserID(v uuid.UUID) *PracticeAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *PracticeAttemptCreate) SetSkill(v string) *PracticeAttemptCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *PracticeAttemptCreate) SetDifficulty(v string) *PracticeAttemptCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *PracticeAttemptCreate) SetLanguage(v string) *PracticeAttemptCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *PracticeAttemptCreate) SetCode(v string) *PracticeAttemptCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetOverallStatus sets the "overall_status" field.
func (_c *PracticeAttemptCreate) SetOverallStatus(v string) *PracticeAttemptCreate {
	_c.mutation.SetOverallStatus(v)
	return _c
}

// SetSummaryFeedback sets the "summary_feedback" field.
func (_c *PracticeAttemptCreate) SetSummaryFeedback(v string) *PracticeAttemptCreate {
	_c.mutation.SetSummaryFeedback(v)
	return _c
}

// SetScores sets the "scores" field.
func (_c *PracticeAttemptCreate) SetScores(v map[string]int) *PracticeAttemptCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PracticeAttemptCreate) SetID(v uuid.UUID) *PracticeAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PracticeAttemptCreate) SetNillableID(v *uuid.UUID) *PracticeAttemptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PracticeAttemptMutation object of the builder.
func (_c *PracticeAttemptCreate) Mutation() *PracticeAttemptMutation {
	return _c.mutation
}

// Save creates the PracticeAttempt in the database.
func (_c *PracticeAttemptCreate) Save(ctx context.Context) (*PracticeAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeAttemptCreate) SaveX(ctx context.Context) *PracticeAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeAttemptCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := practiceattempt.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := practiceattempt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeAttemptCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PracticeAttempt.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PracticeAttempt.user_id"`)}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "PracticeAttempt.skill"`)}
	}
	if v, ok := _c.mutation.Skill(); ok {
		if err := practiceattempt.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.skill": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "PracticeAttempt.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := practiceattempt.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "PracticeAttempt.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := practiceattempt.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "PracticeAttempt.code"`)}
	}
	if _, ok := _c.mutation.OverallStatus(); !ok {
		return &ValidationError{Name: "overall_status", err: errors.New(`ent: missing required field "PracticeAttempt.overall_status"`)}
	}
	if v, ok := _c.mutation.OverallStatus(); ok {
		if err := practiceattempt.OverallStatusValidator(v); err != nil {
			return &ValidationError{Name: "overall_status", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.overall_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SummaryFeedback(); !ok {
		return &ValidationError{Name: "summary_feedback", err: errors.New(`ent: missing required field "PracticeAttempt.summary_feedback"`)}
	}
	if _, ok := _c.mutation.Scores(); !ok {
		return &ValidationError{Name: "scores", err: errors.New(`ent: missing required field "PracticeAttempt.scores"`)}
	}
	return nil
}

func (_c *PracticeAttemptCreate) sqlSave(ctx context.Context) (*PracticeAttempt, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PracticeAttemptCreate) createSpec() (*PracticeAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practiceattempt.Table, sqlgraph.NewFieldSpec(practiceattempt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(practiceattempt.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(practiceattempt.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(practiceattempt.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(practiceattempt.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(practiceattempt.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(practiceattempt.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.OverallStatus(); ok {
		_spec.SetField(practiceattempt.FieldOverallStatus, field.TypeString, value)
		_node.OverallStatus = value
	}
	if value, ok := _c.mutation.SummaryFeedback(); ok {
		_spec.SetField(practiceattempt.FieldSummaryFeedback, field.TypeString, value)
		_node.SummaryFeedback = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(practiceattempt.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	return _node, _spec
}

// PracticeAttemptCreateBulk is the builder for creating many PracticeAttempt entities in bulk.
type PracticeAttemptCreateBulk struct {
	config
	err      error
	builders []*PracticeAttemptCreate
}

// Save creates the PracticeAttempt entities in the database.
func (_c *PracticeAttemptCreateBulk) Save(ctx context.Context) ([]*PracticeAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeAttemptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PracticeAttemptCreateBulk) SaveX(ctx context.Context) []*PracticeAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

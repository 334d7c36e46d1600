// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/quizresult"
	"github.com/abhisek/pathwise/ent/schema"
	"github.com/google/uuid"
)

// QuizResultCreate is the builder for creating a QuizResult entity.
type QuizResultCreate struct {
	config
	mutation *QuizResultMutation
	hooks    []Hook
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizResultCreate) SetTimestamp(v time.Time) *QuizResultCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableTimestamp(v *time.Time) *QuizResultCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *QuizResultCreate) SetUserID(v uuid.UUID) *QuizResultCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRoadmapID sets the "roadmap_id" field.
func (_c *QuizResultCreate) SetRoadmapID(v uuid.UUID) *QuizResultCreate {
	_c.mutation.SetRoadmapID(v)
	return _c
}

// SetStageIndex sets the "stage_index" field.
func (_c *QuizResultCreate) SetStageIndex(v int) *QuizResultCreate {
	_c.mutation.SetStageIndex(v)
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *QuizResultCreate) SetStepIndex(v int) *QuizResultCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetQuizTitle sets the "quiz_title" field.
func (_c *QuizResultCreate) SetQuizTitle(v string) *QuizResultCreate {
	_c.mutation.SetQuizTitle(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizResultCreate) SetScore(v int) *QuizResultCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *QuizResultCreate) SetPassed(v bool) *QuizResultCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *QuizResultCreate) SetDetail(v []schema.QuestionResult) *QuizResultCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetID sets the "id" field.
func (_c *QuizResultCreate) SetID(v uuid.UUID) *QuizResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableID(v *uuid.UUID) *QuizResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the QuizResultMutation object of the builder.
func (_c *QuizResultCreate) Mutation() *QuizResultMutation {
	return _c.mutation
}

// Save creates the QuizResult in the database.
func (_c *QuizResultCreate) Save(ctx context.Context) (*QuizResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizResultCreate) SaveX(ctx context.Context) *QuizResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizResultCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizresult.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := quizresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizResultCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizResult.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuizResult.user_id"`)}
	}
	if _, ok := _c.mutation.RoadmapID(); !ok {
		return &ValidationError{Name: "roadmap_id", err: errors.New(`ent: missing required field "QuizResult.roadmap_id"`)}
	}
	if _, ok := _c.mutation.StageIndex(); !ok {
		return &ValidationError{Name: "stage_index", err: errors.New(`ent: missing required field "QuizResult.stage_index"`)}
	}
	if v, ok := _c.mutation.StageIndex(); ok {
		if err := quizresult.StageIndexValidator(v); err != nil {
			return &ValidationError{Name: "stage_index", err: fmt.Errorf(`ent: validator failed for field "QuizResult.stage_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		return &ValidationError{Name: "step_index", err: errors.New(`ent: missing required field "QuizResult.step_index"`)}
	}
	if v, ok := _c.mutation.StepIndex(); ok {
		if err := quizresult.StepIndexValidator(v); err != nil {
			return &ValidationError{Name: "step_index", err: fmt.Errorf(`ent: validator failed for field "QuizResult.step_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuizTitle(); !ok {
		return &ValidationError{Name: "quiz_title", err: errors.New(`ent: missing required field "QuizResult.quiz_title"`)}
	}
	if v, ok := _c.mutation.QuizTitle(); ok {
		if err := quizresult.QuizTitleValidator(v); err != nil {
			return &ValidationError{Name: "quiz_title", err: fmt.Errorf(`ent: validator failed for field "QuizResult.quiz_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizResult.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := quizresult.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "QuizResult.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "QuizResult.passed"`)}
	}
	if _, ok := _c.mutation.Detail(); !ok {
		return &ValidationError{Name: "detail", err: errors.New(`ent: missing required field "QuizResult.detail"`)}
	}
	return nil
}

func (_c *QuizResultCreate) sqlSave(ctx context.Context) (*QuizResult, error) {
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

func (_c *QuizResultCreate) createSpec() (*QuizResult, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizresult.Table, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizresult.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.RoadmapID(); ok {
		_spec.SetField(quizresult.FieldRoadmapID, field.TypeUUID, value)
		_node.RoadmapID = value
	}
	if value, ok := _c.mutation.StageIndex(); ok {
		_spec.SetField(quizresult.FieldStageIndex, field.TypeInt, value)
		_node.StageIndex = value
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(quizresult.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = value
	}
	if value, ok := _c.mutation.QuizTitle(); ok {
		_spec.SetField(quizresult.FieldQuizTitle, field.TypeString, value)
		_node.QuizTitle = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(quizresult.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(quizresult.FieldDetail, field.TypeJSON, value)
		_node.Detail = value
	}
	return _node, _spec
}

// QuizResultCreateBulk is the builder for creating many QuizResult entities in bulk.
type QuizResultCreateBulk struct {
	config
	err      error
	builders []*QuizResultCreate
}

// Save creates the QuizResult entities in the database.
func (_c *QuizResultCreateBulk) Save(ctx context.Context) ([]*QuizResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizResultMutation)
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
func (_c *QuizResultCreateBulk) SaveX(ctx context.Context) []*QuizResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

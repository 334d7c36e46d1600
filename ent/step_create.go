// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/roadmap"
	"github.com/abhisek/pathwise/ent/step"
	"github.com/google/uuid"
)

// StepCreate is the builder for creating a Step entity.
type StepCreate struct {
	config
	mutation *StepMutation
	hooks    []Hook
}

// SetStageIndex sets the "stage_index" field.
func (_c *StepCreate) SetStageIndex(v int) *StepCreate {
	_c.mutation.SetStageIndex(v)
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *StepCreate) SetStepIndex(v int) *StepCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetStageTitle sets the "stage_title" field.
func (_c *StepCreate) SetStageTitle(v string) *StepCreate {
	_c.mutation.SetStageTitle(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *StepCreate) SetTitle(v string) *StepCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *StepCreate) SetDescription(v string) *StepCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetResourceType sets the "resource_type" field.
func (_c *StepCreate) SetResourceType(v string) *StepCreate {
	_c.mutation.SetResourceType(v)
	return _c
}

// SetStudyLink sets the "study_link" field.
func (_c *StepCreate) SetStudyLink(v string) *StepCreate {
	_c.mutation.SetStudyLink(v)
	return _c
}

// SetIsUnlocked sets the "is_unlocked" field.
func (_c *StepCreate) SetIsUnlocked(v bool) *StepCreate {
	_c.mutation.SetIsUnlocked(v)
	return _c
}

// SetNillableIsUnlocked sets the "is_unlocked" field if the given value is not nil.
func (_c *StepCreate) SetNillableIsUnlocked(v *bool) *StepCreate {
	if v != nil {
		_c.SetIsUnlocked(*v)
	}
	return _c
}

// SetIsCompleted sets the "is_completed" field.
func (_c *StepCreate) SetIsCompleted(v bool) *StepCreate {
	_c.mutation.SetIsCompleted(v)
	return _c
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_c *StepCreate) SetNillableIsCompleted(v *bool) *StepCreate {
	if v != nil {
		_c.SetIsCompleted(*v)
	}
	return _c
}

// SetTestScore sets the "test_score" field.
func (_c *StepCreate) SetTestScore(v int) *StepCreate {
	_c.mutation.SetTestScore(v)
	return _c
}

// SetNillableTestScore sets the "test_score" field if the given value is not nil.
func (_c *StepCreate) SetNillableTestScore(v *int) *StepCreate {
	if v != nil {
		_c.SetTestScore(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StepCreate) SetCompletedAt(v time.Time) *StepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableCompletedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetRoadmapID sets the "roadmap" edge to the Roadmap entity by ID.
func (_c *StepCreate) SetRoadmapID(id uuid.UUID) *StepCreate {
	_c.mutation.SetRoadmapID(id)
	return _c
}

// SetRoadmap sets the "roadmap" edge to the Roadmap entity.
func (_c *StepCreate) SetRoadmap(v *Roadmap) *StepCreate {
	return _c.SetRoadmapID(v.ID)
}

// Mutation returns the StepMutation object of the builder.
func (_c *StepCreate) Mutation() *StepMutation {
	return _c.mutation
}

// Save creates the Step in the database.
func (_c *StepCreate) Save(ctx context.Context) (*Step, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepCreate) SaveX(ctx context.Context) *Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepCreate) defaults() {
	if _, ok := _c.mutation.IsUnlocked(); !ok {
		v := step.DefaultIsUnlocked
		_c.mutation.SetIsUnlocked(v)
	}
	if _, ok := _c.mutation.IsCompleted(); !ok {
		v := step.DefaultIsCompleted
		_c.mutation.SetIsCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepCreate) check() error {
	if _, ok := _c.mutation.StageIndex(); !ok {
		return &ValidationError{Name: "stage_index", err: errors.New(`ent: missing required field "Step.stage_index"`)}
	}
	if v, ok := _c.mutation.StageIndex(); ok {
		if err := step.StageIndexValidator(v); err != nil {
			return &ValidationError{Name: "stage_index", err: fmt.Errorf(`ent: validator failed for field "Step.stage_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		return &ValidationError{Name: "step_index", err: errors.New(`ent: missing required field "Step.step_index"`)}
	}
	if v, ok := _c.mutation.StepIndex(); ok {
		if err := step.StepIndexValidator(v); err != nil {
			return &ValidationError{Name: "step_index", err: fmt.Errorf(`ent: validator failed for field "Step.step_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageTitle(); !ok {
		return &ValidationError{Name: "stage_title", err: errors.New(`ent: missing required field "Step.stage_title"`)}
	}
	if v, ok := _c.mutation.StageTitle(); ok {
		if err := step.StageTitleValidator(v); err != nil {
			return &ValidationError{Name: "stage_title", err: fmt.Errorf(`ent: validator failed for field "Step.stage_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Step.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := step.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Step.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Step.description"`)}
	}
	if _, ok := _c.mutation.ResourceType(); !ok {
		return &ValidationError{Name: "resource_type", err: errors.New(`ent: missing required field "Step.resource_type"`)}
	}
	if _, ok := _c.mutation.StudyLink(); !ok {
		return &ValidationError{Name: "study_link", err: errors.New(`ent: missing required field "Step.study_link"`)}
	}
	if _, ok := _c.mutation.IsUnlocked(); !ok {
		return &ValidationError{Name: "is_unlocked", err: errors.New(`ent: missing required field "Step.is_unlocked"`)}
	}
	if _, ok := _c.mutation.IsCompleted(); !ok {
		return &ValidationError{Name: "is_completed", err: errors.New(`ent: missing required field "Step.is_completed"`)}
	}
	if v, ok := _c.mutation.TestScore(); ok {
		if err := step.TestScoreValidator(v); err != nil {
			return &ValidationError{Name: "test_score", err: fmt.Errorf(`ent: validator failed for field "Step.test_score": %w`, err)}
		}
	}
	if len(_c.mutation.RoadmapIDs()) == 0 {
		return &ValidationError{Name: "roadmap", err: errors.New(`ent: missing required edge "Step.roadmap"`)}
	}
	return nil
}

func (_c *StepCreate) sqlSave(ctx context.Context) (*Step, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepCreate) createSpec() (*Step, *sqlgraph.CreateSpec) {
	var (
		_node = &Step{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(step.Table, sqlgraph.NewFieldSpec(step.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StageIndex(); ok {
		_spec.SetField(step.FieldStageIndex, field.TypeInt, value)
		_node.StageIndex = value
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(step.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = value
	}
	if value, ok := _c.mutation.StageTitle(); ok {
		_spec.SetField(step.FieldStageTitle, field.TypeString, value)
		_node.StageTitle = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(step.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(step.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ResourceType(); ok {
		_spec.SetField(step.FieldResourceType, field.TypeString, value)
		_node.ResourceType = value
	}
	if value, ok := _c.mutation.StudyLink(); ok {
		_spec.SetField(step.FieldStudyLink, field.TypeString, value)
		_node.StudyLink = value
	}
	if value, ok := _c.mutation.IsUnlocked(); ok {
		_spec.SetField(step.FieldIsUnlocked, field.TypeBool, value)
		_node.IsUnlocked = value
	}
	if value, ok := _c.mutation.IsCompleted(); ok {
		_spec.SetField(step.FieldIsCompleted, field.TypeBool, value)
		_node.IsCompleted = value
	}
	if value, ok := _c.mutation.TestScore(); ok {
		_spec.SetField(step.FieldTestScore, field.TypeInt, value)
		_node.TestScore = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.RoadmapIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   step.RoadmapTable,
			Columns: []string{step.RoadmapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(roadmap.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.roadmap_steps = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StepCreateBulk is the builder for creating many Step entities in bulk.
type StepCreateBulk struct {
	config
	err      error
	builders []*StepCreate
}

// Save creates the Step entities in the database.
func (_c *StepCreateBulk) Save(ctx context.Context) ([]*Step, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Step, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *StepCreateBulk) SaveX(ctx context.Context) []*Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

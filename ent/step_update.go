// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/predicate"
	"github.com/abhisek/pathwise/ent/roadmap"
	"github.com/abhisek/pathwise/ent/step"
	"github.com/google/uuid"
)

// StepUpdate is the builder for updating Step entities.
type StepUpdate struct {
	config
	hooks    []Hook
	mutation *StepMutation
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdate) Where(ps ...predicate.Step) *StepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStageIndex sets the "stage_index" field.
func (_u *StepUpdate) SetStageIndex(v int) *StepUpdate {
	_u.mutation.ResetStageIndex()
	_u.mutation.SetStageIndex(v)
	return _u
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_u *StepUpdate) SetNillableStageIndex(v *int) *StepUpdate {
	if v != nil {
		_u.SetStageIndex(*v)
	}
	return _u
}

// AddStageIndex adds value to the "stage_index" field.
func (_u *StepUpdate) AddStageIndex(v int) *StepUpdate {
	_u.mutation.AddStageIndex(v)
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *StepUpdate) SetStepIndex(v int) *StepUpdate {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *StepUpdate) SetNillableStepIndex(v *int) *StepUpdate {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *StepUpdate) AddStepIndex(v int) *StepUpdate {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetStageTitle sets the "stage_title" field.
func (_u *StepUpdate) SetStageTitle(v string) *StepUpdate {
	_u.mutation.SetStageTitle(v)
	return _u
}

// SetNillableStageTitle sets the "stage_title" field if the given value is not nil.
func (_u *StepUpdate) SetNillableStageTitle(v *string) *StepUpdate {
	if v != nil {
		_u.SetStageTitle(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StepUpdate) SetTitle(v string) *StepUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StepUpdate) SetNillableTitle(v *string) *StepUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StepUpdate) SetDescription(v string) *StepUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StepUpdate) SetNillableDescription(v *string) *StepUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetResourceType sets the "resource_type" field.
func (_u *StepUpdate) SetResourceType(v string) *StepUpdate {
	_u.mutation.SetResourceType(v)
	return _u
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (_u *StepUpdate) SetNillableResourceType(v *string) *StepUpdate {
	if v != nil {
		_u.SetResourceType(*v)
	}
	return _u
}

// SetStudyLink sets the "study_link" field.
func (_u *StepUpdate) SetStudyLink(v string) *StepUpdate {
	_u.mutation.SetStudyLink(v)
	return _u
}

// SetNillableStudyLink sets the "study_link" field if the given value is not nil.
func (_u *StepUpdate) SetNillableStudyLink(v *string) *StepUpdate {
	if v != nil {
		_u.SetStudyLink(*v)
	}
	return _u
}

// SetIsUnlocked sets the "is_unlocked" field.
func (_u *StepUpdate) SetIsUnlocked(v bool) *StepUpdate {
	_u.mutation.SetIsUnlocked(v)
	return _u
}

// SetNillableIsUnlocked sets the "is_unlocked" field if the given value is not nil.
func (_u *StepUpdate) SetNillableIsUnlocked(v *bool) *StepUpdate {
	if v != nil {
		_u.SetIsUnlocked(*v)
	}
	return _u
}

// SetIsCompleted sets the "is_completed" field.
func (_u *StepUpdate) SetIsCompleted(v bool) *StepUpdate {
	_u.mutation.SetIsCompleted(v)
	return _u
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_u *StepUpdate) SetNillableIsCompleted(v *bool) *StepUpdate {
	if v != nil {
		_u.SetIsCompleted(*v)
	}
	return _u
}

// SetTestScore sets the "test_score" field.
func (_u *StepUpdate) SetTestScore(v int) *StepUpdate {
	_u.mutation.ResetTestScore()
	_u.mutation.SetTestScore(v)
	return _u
}

// SetNillableTestScore sets the "test_score" field if the given value is not nil.
func (_u *StepUpdate) SetNillableTestScore(v *int) *StepUpdate {
	if v != nil {
		_u.SetTestScore(*v)
	}
	return _u
}

// AddTestScore adds value to the "test_score" field.
func (_u *StepUpdate) AddTestScore(v int) *StepUpdate {
	_u.mutation.AddTestScore(v)
	return _u
}

// ClearTestScore clears the value of the "test_score" field.
func (_u *StepUpdate) ClearTestScore() *StepUpdate {
	_u.mutation.ClearTestScore()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepUpdate) SetCompletedAt(v time.Time) *StepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepUpdate) SetNillableCompletedAt(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepUpdate) ClearCompletedAt() *StepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRoadmapID sets the "roadmap" edge to the Roadmap entity by ID.
func (_u *StepUpdate) SetRoadmapID(id uuid.UUID) *StepUpdate {
	_u.mutation.SetRoadmapID(id)
	return _u
}

// SetRoadmap sets the "roadmap" edge to the Roadmap entity.
func (_u *StepUpdate) SetRoadmap(v *Roadmap) *StepUpdate {
	return _u.SetRoadmapID(v.ID)
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdate) Mutation() *StepMutation {
	return _u.mutation
}

// ClearRoadmap clears the "roadmap" edge to the Roadmap entity.
func (_u *StepUpdate) ClearRoadmap() *StepUpdate {
	_u.mutation.ClearRoadmap()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdate) check() error {
	if v, ok := _u.mutation.StageIndex(); ok {
		if err := step.StageIndexValidator(v); err != nil {
			return &ValidationError{Name: "stage_index", err: fmt.Errorf(`ent: validator failed for field "Step.stage_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepIndex(); ok {
		if err := step.StepIndexValidator(v); err != nil {
			return &ValidationError{Name: "step_index", err: fmt.Errorf(`ent: validator failed for field "Step.step_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageTitle(); ok {
		if err := step.StageTitleValidator(v); err != nil {
			return &ValidationError{Name: "stage_title", err: fmt.Errorf(`ent: validator failed for field "Step.stage_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := step.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Step.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TestScore(); ok {
		if err := step.TestScoreValidator(v); err != nil {
			return &ValidationError{Name: "test_score", err: fmt.Errorf(`ent: validator failed for field "Step.test_score": %w`, err)}
		}
	}
	if _u.mutation.RoadmapCleared() && len(_u.mutation.RoadmapIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.roadmap"`)
	}
	return nil
}

func (_u *StepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageIndex(); ok {
		_spec.SetField(step.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIndex(); ok {
		_spec.AddField(step.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(step.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(step.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageTitle(); ok {
		_spec.SetField(step.FieldStageTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(step.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(step.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResourceType(); ok {
		_spec.SetField(step.FieldResourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudyLink(); ok {
		_spec.SetField(step.FieldStudyLink, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsUnlocked(); ok {
		_spec.SetField(step.FieldIsUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsCompleted(); ok {
		_spec.SetField(step.FieldIsCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TestScore(); ok {
		_spec.SetField(step.FieldTestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestScore(); ok {
		_spec.AddField(step.FieldTestScore, field.TypeInt, value)
	}
	if _u.mutation.TestScoreCleared() {
		_spec.ClearField(step.FieldTestScore, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(step.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.RoadmapCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoadmapIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepUpdateOne is the builder for updating a single Step entity.
type StepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepMutation
}

// SetStageIndex sets the "stage_index" field.
func (_u *StepUpdateOne) SetStageIndex(v int) *StepUpdateOne {
	_u.mutation.ResetStageIndex()
	_u.mutation.SetStageIndex(v)
	return _u
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableStageIndex(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetStageIndex(*v)
	}
	return _u
}

// AddStageIndex adds value to the "stage_index" field.
func (_u *StepUpdateOne) AddStageIndex(v int) *StepUpdateOne {
	_u.mutation.AddStageIndex(v)
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *StepUpdateOne) SetStepIndex(v int) *StepUpdateOne {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableStepIndex(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *StepUpdateOne) AddStepIndex(v int) *StepUpdateOne {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetStageTitle sets the "stage_title" field.
func (_u *StepUpdateOne) SetStageTitle(v string) *StepUpdateOne {
	_u.mutation.SetStageTitle(v)
	return _u
}

// SetNillableStageTitle sets the "stage_title" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableStageTitle(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetStageTitle(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StepUpdateOne) SetTitle(v string) *StepUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableTitle(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StepUpdateOne) SetDescription(v string) *StepUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableDescription(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetResourceType sets the "resource_type" field.
func (_u *StepUpdateOne) SetResourceType(v string) *StepUpdateOne {
	_u.mutation.SetResourceType(v)
	return _u
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableResourceType(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetResourceType(*v)
	}
	return _u
}

// SetStudyLink sets the "study_link" field.
func (_u *StepUpdateOne) SetStudyLink(v string) *StepUpdateOne {
	_u.mutation.SetStudyLink(v)
	return _u
}

// SetNillableStudyLink sets the "study_link" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableStudyLink(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetStudyLink(*v)
	}
	return _u
}

// SetIsUnlocked sets the "is_unlocked" field.
func (_u *StepUpdateOne) SetIsUnlocked(v bool) *StepUpdateOne {
	_u.mutation.SetIsUnlocked(v)
	return _u
}

// SetNillableIsUnlocked sets the "is_unlocked" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableIsUnlocked(v *bool) *StepUpdateOne {
	if v != nil {
		_u.SetIsUnlocked(*v)
	}
	return _u
}

// SetIsCompleted sets the "is_completed" field.
func (_u *StepUpdateOne) SetIsCompleted(v bool) *StepUpdateOne {
	_u.mutation.SetIsCompleted(v)
	return _u
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableIsCompleted(v *bool) *StepUpdateOne {
	if v != nil {
		_u.SetIsCompleted(*v)
	}
	return _u
}

// SetTestScore sets the "test_score" field.
func (_u *StepUpdateOne) SetTestScore(v int) *StepUpdateOne {
	_u.mutation.ResetTestScore()
	_u.mutation.SetTestScore(v)
	return _u
}

// SetNillableTestScore sets the "test_score" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableTestScore(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetTestScore(*v)
	}
	return _u
}

// AddTestScore adds value to the "test_score" field.
func (_u *StepUpdateOne) AddTestScore(v int) *StepUpdateOne {
	_u.mutation.AddTestScore(v)
	return _u
}

// ClearTestScore clears the value of the "test_score" field.
func (_u *StepUpdateOne) ClearTestScore() *StepUpdateOne {
	_u.mutation.ClearTestScore()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepUpdateOne) SetCompletedAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableCompletedAt(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepUpdateOne) ClearCompletedAt() *StepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRoadmapID sets the "roadmap" edge to the Roadmap entity by ID.
func (_u *StepUpdateOne) SetRoadmapID(id uuid.UUID) *StepUpdateOne {
	_u.mutation.SetRoadmapID(id)
	return _u
}

// SetRoadmap sets the "roadmap" edge to the Roadmap entity.
func (_u *StepUpdateOne) SetRoadmap(v *Roadmap) *StepUpdateOne {
	return _u.SetRoadmapID(v.ID)
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdateOne) Mutation() *StepMutation {
	return _u.mutation
}

// ClearRoadmap clears the "roadmap" edge to the Roadmap entity.
func (_u *StepUpdateOne) ClearRoadmap() *StepUpdateOne {
	_u.mutation.ClearRoadmap()
	return _u
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdateOne) Where(ps ...predicate.Step) *StepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepUpdateOne) Select(field string, fields ...string) *StepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Step entity.
func (_u *StepUpdateOne) Save(ctx context.Context) (*Step, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdateOne) SaveX(ctx context.Context) *Step {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdateOne) check() error {
	if v, ok := _u.mutation.StageIndex(); ok {
		if err := step.StageIndexValidator(v); err != nil {
			return &ValidationError{Name: "stage_index", err: fmt.Errorf(`ent: validator failed for field "Step.stage_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepIndex(); ok {
		if err := step.StepIndexValidator(v); err != nil {
			return &ValidationError{Name: "step_index", err: fmt.Errorf(`ent: validator failed for field "Step.step_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageTitle(); ok {
		if err := step.StageTitleValidator(v); err != nil {
			return &ValidationError{Name: "stage_title", err: fmt.Errorf(`ent: validator failed for field "Step.stage_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := step.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Step.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TestScore(); ok {
		if err := step.TestScoreValidator(v); err != nil {
			return &ValidationError{Name: "test_score", err: fmt.Errorf(`ent: validator failed for field "Step.test_score": %w`, err)}
		}
	}
	if _u.mutation.RoadmapCleared() && len(_u.mutation.RoadmapIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.roadmap"`)
	}
	return nil
}

func (_u *StepUpdateOne) sqlSave(ctx context.Context) (_node *Step, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Step.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, step.FieldID)
		for _, f := range fields {
			if !step.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != step.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageIndex(); ok {
		_spec.SetField(step.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIndex(); ok {
		_spec.AddField(step.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(step.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(step.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageTitle(); ok {
		_spec.SetField(step.FieldStageTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(step.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(step.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResourceType(); ok {
		_spec.SetField(step.FieldResourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudyLink(); ok {
		_spec.SetField(step.FieldStudyLink, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsUnlocked(); ok {
		_spec.SetField(step.FieldIsUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsCompleted(); ok {
		_spec.SetField(step.FieldIsCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TestScore(); ok {
		_spec.SetField(step.FieldTestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestScore(); ok {
		_spec.AddField(step.FieldTestScore, field.TypeInt, value)
	}
	if _u.mutation.TestScoreCleared() {
		_spec.ClearField(step.FieldTestScore, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(step.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.RoadmapCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoadmapIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Step{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

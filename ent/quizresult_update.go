// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/predicate"
	"github.com/abhisek/pathwise/ent/quizresult"
	"github.com/abhisek/pathwise/ent/schema"
	"github.com/google/uuid"
)

// QuizResultUpdate is the builder for updating QuizResult entities.
type QuizResultUpdate struct {
	config
	hooks    []Hook
	mutation *QuizResultMutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdate) Where(ps ...predicate.QuizResult) *QuizResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizResultUpdate) SetUserID(v uuid.UUID) *QuizResultUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableUserID(v *uuid.UUID) *QuizResultUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *QuizResultUpdate) SetRoadmapID(v uuid.UUID) *QuizResultUpdate {
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableRoadmapID(v *uuid.UUID) *QuizResultUpdate {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// SetStageIndex sets the "stage_index" field.
func (_u *QuizResultUpdate) SetStageIndex(v int) *QuizResultUpdate {
	_u.mutation.ResetStageIndex()
	_u.mutation.SetStageIndex(v)
	return _u
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableStageIndex(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetStageIndex(*v)
	}
	return _u
}

// AddStageIndex adds value to the "stage_index" field.
func (_u *QuizResultUpdate) AddStageIndex(v int) *QuizResultUpdate {
	_u.mutation.AddStageIndex(v)
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *QuizResultUpdate) SetStepIndex(v int) *QuizResultUpdate {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableStepIndex(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *QuizResultUpdate) AddStepIndex(v int) *QuizResultUpdate {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetQuizTitle sets the "quiz_title" field.
func (_u *QuizResultUpdate) SetQuizTitle(v string) *QuizResultUpdate {
	_u.mutation.SetQuizTitle(v)
	return _u
}

// SetNillableQuizTitle sets the "quiz_title" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableQuizTitle(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetQuizTitle(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultUpdate) SetScore(v int) *QuizResultUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableScore(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultUpdate) AddScore(v int) *QuizResultUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizResultUpdate) SetPassed(v bool) *QuizResultUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillablePassed(v *bool) *QuizResultUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *QuizResultUpdate) SetDetail(v []schema.QuestionResult) *QuizResultUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// AppendDetail appends value to the "detail" field.
func (_u *QuizResultUpdate) AppendDetail(v []schema.QuestionResult) *QuizResultUpdate {
	_u.mutation.AppendDetail(v)
	return _u
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdate) Mutation() *QuizResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdate) check() error {
	if v, ok := _u.mutation.StageIndex(); ok {
		if err := quizresult.StageIndexValidator(v); err != nil {
			return &ValidationError{Name: "stage_index", err: fmt.Errorf(`ent: validator failed for field "QuizResult.stage_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepIndex(); ok {
		if err := quizresult.StepIndexValidator(v); err != nil {
			return &ValidationError{Name: "step_index", err: fmt.Errorf(`ent: validator failed for field "QuizResult.step_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizTitle(); ok {
		if err := quizresult.QuizTitleValidator(v); err != nil {
			return &ValidationError{Name: "quiz_title", err: fmt.Errorf(`ent: validator failed for field "QuizResult.quiz_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := quizresult.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "QuizResult.score": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RoadmapID(); ok {
		_spec.SetField(quizresult.FieldRoadmapID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StageIndex(); ok {
		_spec.SetField(quizresult.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIndex(); ok {
		_spec.AddField(quizresult.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(quizresult.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(quizresult.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizTitle(); ok {
		_spec.SetField(quizresult.FieldQuizTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizresult.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(quizresult.FieldDetail, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetail(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldDetail, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizResultUpdateOne is the builder for updating a single QuizResult entity.
type QuizResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizResultMutation
}

// SetUserID sets the "user_id" field.
func (_u *QuizResultUpdateOne) SetUserID(v uuid.UUID) *QuizResultUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableUserID(v *uuid.UUID) *QuizResultUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *QuizResultUpdateOne) SetRoadmapID(v uuid.UUID) *QuizResultUpdateOne {
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableRoadmapID(v *uuid.UUID) *QuizResultUpdateOne {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// SetStageIndex sets the "stage_index" field.
func (_u *QuizResultUpdateOne) SetStageIndex(v int) *QuizResultUpdateOne {
	_u.mutation.ResetStageIndex()
	_u.mutation.SetStageIndex(v)
	return _u
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableStageIndex(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetStageIndex(*v)
	}
	return _u
}

// AddStageIndex adds value to the "stage_index" field.
func (_u *QuizResultUpdateOne) AddStageIndex(v int) *QuizResultUpdateOne {
	_u.mutation.AddStageIndex(v)
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *QuizResultUpdateOne) SetStepIndex(v int) *QuizResultUpdateOne {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableStepIndex(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *QuizResultUpdateOne) AddStepIndex(v int) *QuizResultUpdateOne {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetQuizTitle sets the "quiz_title" field.
func (_u *QuizResultUpdateOne) SetQuizTitle(v string) *QuizResultUpdateOne {
	_u.mutation.SetQuizTitle(v)
	return _u
}

// SetNillableQuizTitle sets the "quiz_title" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableQuizTitle(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetQuizTitle(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultUpdateOne) SetScore(v int) *QuizResultUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableScore(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultUpdateOne) AddScore(v int) *QuizResultUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizResultUpdateOne) SetPassed(v bool) *QuizResultUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillablePassed(v *bool) *QuizResultUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *QuizResultUpdateOne) SetDetail(v []schema.QuestionResult) *QuizResultUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// AppendDetail appends value to the "detail" field.
func (_u *QuizResultUpdateOne) AppendDetail(v []schema.QuestionResult) *QuizResultUpdateOne {
	_u.mutation.AppendDetail(v)
	return _u
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdateOne) Mutation() *QuizResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdateOne) Where(ps ...predicate.QuizResult) *QuizResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizResultUpdateOne) Select(field string, fields ...string) *QuizResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizResult entity.
func (_u *QuizResultUpdateOne) Save(ctx context.Context) (*QuizResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdateOne) SaveX(ctx context.Context) *QuizResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdateOne) check() error {
	if v, ok := _u.mutation.StageIndex(); ok {
		if err := quizresult.StageIndexValidator(v); err != nil {
			return &ValidationError{Name: "stage_index", err: fmt.Errorf(`ent: validator failed for field "QuizResult.stage_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepIndex(); ok {
		if err := quizresult.StepIndexValidator(v); err != nil {
			return &ValidationError{Name: "step_index", err: fmt.Errorf(`ent: validator failed for field "QuizResult.step_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizTitle(); ok {
		if err := quizresult.QuizTitleValidator(v); err != nil {
			return &ValidationError{Name: "quiz_title", err: fmt.Errorf(`ent: validator failed for field "QuizResult.quiz_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := quizresult.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "QuizResult.score": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultUpdateOne) sqlSave(ctx context.Context) (_node *QuizResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresult.FieldID)
		for _, f := range fields {
			if !quizresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizresult.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RoadmapID(); ok {
		_spec.SetField(quizresult.FieldRoadmapID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StageIndex(); ok {
		_spec.SetField(quizresult.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIndex(); ok {
		_spec.AddField(quizresult.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(quizresult.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(quizresult.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizTitle(); ok {
		_spec.SetField(quizresult.FieldQuizTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizresult.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(quizresult.FieldDetail, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetail(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldDetail, value)
		})
	}
	_node = &QuizResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

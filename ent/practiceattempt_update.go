// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/practiceattempt"
	"github.com/abhisek/pathwise/ent/predicate"
	"github.com/google/uuid"
)

// PracticeAttemptUpdate is the builder for updating PracticeAttempt entities.
type PracticeAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeAttemptMutation
}

// Where appends a list predicates to the PracticeAttemptUpdate builder.
func (_u *PracticeAttemptUpdate) Where(ps ...predicate.PracticeAttempt) *PracticeAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PracticeAttemptUpdate) SetUserID(v uuid.UUID) *PracticeAttemptUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableUserID(v *uuid.UUID) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *PracticeAttemptUpdate) SetSkill(v string) *PracticeAttemptUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableSkill(v *string) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PracticeAttemptUpdate) SetDifficulty(v string) *PracticeAttemptUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableDifficulty(v *string) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *PracticeAttemptUpdate) SetLanguage(v string) *PracticeAttemptUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableLanguage(v *string) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *PracticeAttemptUpdate) SetCode(v string) *PracticeAttemptUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableCode(v *string) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetOverallStatus sets the "overall_status" field.
func (_u *PracticeAttemptUpdate) SetOverallStatus(v string) *PracticeAttemptUpdate {
	_u.mutation.SetOverallStatus(v)
	return _u
}

// SetNillableOverallStatus sets the "overall_status" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableOverallStatus(v *string) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetOverallStatus(*v)
	}
	return _u
}

// SetSummaryFeedback sets the "summary_feedback" field.
func (_u *PracticeAttemptUpdate) SetSummaryFeedback(v string) *PracticeAttemptUpdate {
	_u.mutation.SetSummaryFeedback(v)
	return _u
}

// SetNillableSummaryFeedback sets the "summary_feedback" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableSummaryFeedback(v *string) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetSummaryFeedback(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *PracticeAttemptUpdate) SetScores(v map[string]int) *PracticeAttemptUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// Mutation returns the PracticeAttemptMutation object of the builder.
func (_u *PracticeAttemptUpdate) Mutation() *PracticeAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeAttemptUpdate) check() error {
	if v, ok := _u.mutation.Skill(); ok {
		if err := practiceattempt.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := practiceattempt.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := practiceattempt.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverallStatus(); ok {
		if err := practiceattempt.OverallStatusValidator(v); err != nil {
			return &ValidationError{Name: "overall_status", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.overall_status": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceattempt.Table, practiceattempt.Columns, sqlgraph.NewFieldSpec(practiceattempt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(practiceattempt.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(practiceattempt.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(practiceattempt.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(practiceattempt.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(practiceattempt.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallStatus(); ok {
		_spec.SetField(practiceattempt.FieldOverallStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SummaryFeedback(); ok {
		_spec.SetField(practiceattempt.FieldSummaryFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(practiceattempt.FieldScores, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeAttemptUpdateOne is the builder for updating a single PracticeAttempt entity.
type PracticeAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeAttemptMutation
}

// SetUserID sets the "user_id" field.
func (_u *PracticeAttemptUpdateOne) SetUserID(v uuid.UUID) *PracticeAttemptUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableUserID(v *uuid.UUID) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *PracticeAttemptUpdateOne) SetSkill(v string) *PracticeAttemptUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableSkill(v *string) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PracticeAttemptUpdateOne) SetDifficulty(v string) *PracticeAttemptUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableDifficulty(v *string) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *PracticeAttemptUpdateOne) SetLanguage(v string) *PracticeAttemptUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableLanguage(v *string) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *PracticeAttemptUpdateOne) SetCode(v string) *PracticeAttemptUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableCode(v *string) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetOverallStatus sets the "overall_status" field.
func (_u *PracticeAttemptUpdateOne) SetOverallStatus(v string) *PracticeAttemptUpdateOne {
	_u.mutation.SetOverallStatus(v)
	return _u
}

// SetNillableOverallStatus sets the "overall_status" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableOverallStatus(v *string) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetOverallStatus(*v)
	}
	return _u
}

// SetSummaryFeedback sets the "summary_feedback" field.
func (_u *PracticeAttemptUpdateOne) SetSummaryFeedback(v string) *PracticeAttemptUpdateOne {
	_u.mutation.SetSummaryFeedback(v)
	return _u
}

// SetNillableSummaryFeedback sets the "summary_feedback" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableSummaryFeedback(v *string) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetSummaryFeedback(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *PracticeAttemptUpdateOne) SetScores(v map[string]int) *PracticeAttemptUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// Mutation returns the PracticeAttemptMutation object of the builder.
func (_u *PracticeAttemptUpdateOne) Mutation() *PracticeAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeAttemptUpdate builder.
func (_u *PracticeAttemptUpdateOne) Where(ps ...predicate.PracticeAttempt) *PracticeAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeAttemptUpdateOne) Select(field string, fields ...string) *PracticeAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeAttempt entity.
func (_u *PracticeAttemptUpdateOne) Save(ctx context.Context) (*PracticeAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeAttemptUpdateOne) SaveX(ctx context.Context) *PracticeAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.Skill(); ok {
		if err := practiceattempt.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := practiceattempt.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := practiceattempt.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverallStatus(); ok {
		if err := practiceattempt.OverallStatusValidator(v); err != nil {
			return &ValidationError{Name: "overall_status", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.overall_status": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeAttemptUpdateOne) sqlSave(ctx context.Context) (_node *PracticeAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceattempt.Table, practiceattempt.Columns, sqlgraph.NewFieldSpec(practiceattempt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practiceattempt.FieldID)
		for _, f := range fields {
			if !practiceattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practiceattempt.FieldID {
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
		_spec.SetField(practiceattempt.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(practiceattempt.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(practiceattempt.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(practiceattempt.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(practiceattempt.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallStatus(); ok {
		_spec.SetField(practiceattempt.FieldOverallStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SummaryFeedback(); ok {
		_spec.SetField(practiceattempt.FieldSummaryFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(practiceattempt.FieldScores, field.TypeJSON, value)
	}
	_node = &PracticeAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

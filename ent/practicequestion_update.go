// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/practicequestion"
	"github.com/abhisek/pathwise/ent/predicate"
	"github.com/abhisek/pathwise/ent/schema"
)

// PracticeQuestionUpdate is the builder for updating PracticeQuestion entities.
type PracticeQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeQuestionMutation
}

// Where appends a list predicates to the PracticeQuestionUpdate builder.
func (_u *PracticeQuestionUpdate) Where(ps ...predicate.PracticeQuestion) *PracticeQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIdentifier sets the "identifier" field.
func (_u *PracticeQuestionUpdate) SetIdentifier(v string) *PracticeQuestionUpdate {
	_u.mutation.SetIdentifier(v)
	return _u
}

// SetNillableIdentifier sets the "identifier" field if the given value is not nil.
func (_u *PracticeQuestionUpdate) SetNillableIdentifier(v *string) *PracticeQuestionUpdate {
	if v != nil {
		_u.SetIdentifier(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PracticeQuestionUpdate) SetTitle(v string) *PracticeQuestionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PracticeQuestionUpdate) SetNillableTitle(v *string) *PracticeQuestionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PracticeQuestionUpdate) SetDescription(v string) *PracticeQuestionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PracticeQuestionUpdate) SetNillableDescription(v *string) *PracticeQuestionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetExamples sets the "examples" field.
func (_u *PracticeQuestionUpdate) SetExamples(v []schema.PracticeExample) *PracticeQuestionUpdate {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *PracticeQuestionUpdate) AppendExamples(v []schema.PracticeExample) *PracticeQuestionUpdate {
	_u.mutation.AppendExamples(v)
	return _u
}

// SetConstraints sets the "constraints" field.
func (_u *PracticeQuestionUpdate) SetConstraints(v string) *PracticeQuestionUpdate {
	_u.mutation.SetConstraints(v)
	return _u
}

// SetNillableConstraints sets the "constraints" field if the given value is not nil.
func (_u *PracticeQuestionUpdate) SetNillableConstraints(v *string) *PracticeQuestionUpdate {
	if v != nil {
		_u.SetConstraints(*v)
	}
	return _u
}

// ClearConstraints clears the value of the "constraints" field.
func (_u *PracticeQuestionUpdate) ClearConstraints() *PracticeQuestionUpdate {
	_u.mutation.ClearConstraints()
	return _u
}

// SetDefaultStdin sets the "default_stdin" field.
func (_u *PracticeQuestionUpdate) SetDefaultStdin(v string) *PracticeQuestionUpdate {
	_u.mutation.SetDefaultStdin(v)
	return _u
}

// SetNillableDefaultStdin sets the "default_stdin" field if the given value is not nil.
func (_u *PracticeQuestionUpdate) SetNillableDefaultStdin(v *string) *PracticeQuestionUpdate {
	if v != nil {
		_u.SetDefaultStdin(*v)
	}
	return _u
}

// ClearDefaultStdin clears the value of the "default_stdin" field.
func (_u *PracticeQuestionUpdate) ClearDefaultStdin() *PracticeQuestionUpdate {
	_u.mutation.ClearDefaultStdin()
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *PracticeQuestionUpdate) SetGeneratedAt(v time.Time) *PracticeQuestionUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *PracticeQuestionUpdate) SetNillableGeneratedAt(v *time.Time) *PracticeQuestionUpdate {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *PracticeQuestionUpdate) SetLastUsedAt(v time.Time) *PracticeQuestionUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *PracticeQuestionUpdate) SetNillableLastUsedAt(v *time.Time) *PracticeQuestionUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// Mutation returns the PracticeQuestionMutation object of the builder.
func (_u *PracticeQuestionUpdate) Mutation() *PracticeQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeQuestionUpdate) check() error {
	if v, ok := _u.mutation.Identifier(); ok {
		if err := practicequestion.IdentifierValidator(v); err != nil {
			return &ValidationError{Name: "identifier", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.identifier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := practicequestion.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := practicequestion.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.description": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicequestion.Table, practicequestion.Columns, sqlgraph.NewFieldSpec(practicequestion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Identifier(); ok {
		_spec.SetField(practicequestion.FieldIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(practicequestion.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(practicequestion.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(practicequestion.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicequestion.FieldExamples, value)
		})
	}
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(practicequestion.FieldConstraints, field.TypeString, value)
	}
	if _u.mutation.ConstraintsCleared() {
		_spec.ClearField(practicequestion.FieldConstraints, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultStdin(); ok {
		_spec.SetField(practicequestion.FieldDefaultStdin, field.TypeString, value)
	}
	if _u.mutation.DefaultStdinCleared() {
		_spec.ClearField(practicequestion.FieldDefaultStdin, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(practicequestion.FieldGeneratedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(practicequestion.FieldLastUsedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicequestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeQuestionUpdateOne is the builder for updating a single PracticeQuestion entity.
type PracticeQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeQuestionMutation
}

// SetIdentifier sets the "identifier" field.
func (_u *PracticeQuestionUpdateOne) SetIdentifier(v string) *PracticeQuestionUpdateOne {
	_u.mutation.SetIdentifier(v)
	return _u
}

// SetNillableIdentifier sets the "identifier" field if the given value is not nil.
func (_u *PracticeQuestionUpdateOne) SetNillableIdentifier(v *string) *PracticeQuestionUpdateOne {
	if v != nil {
		_u.SetIdentifier(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PracticeQuestionUpdateOne) SetTitle(v string) *PracticeQuestionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PracticeQuestionUpdateOne) SetNillableTitle(v *string) *PracticeQuestionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PracticeQuestionUpdateOne) SetDescription(v string) *PracticeQuestionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PracticeQuestionUpdateOne) SetNillableDescription(v *string) *PracticeQuestionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetExamples sets the "examples" field.
func (_u *PracticeQuestionUpdateOne) SetExamples(v []schema.PracticeExample) *PracticeQuestionUpdateOne {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *PracticeQuestionUpdateOne) AppendExamples(v []schema.PracticeExample) *PracticeQuestionUpdateOne {
	_u.mutation.AppendExamples(v)
	return _u
}

// SetConstraints sets the "constraints" field.
func (_u *PracticeQuestionUpdateOne) SetConstraints(v string) *PracticeQuestionUpdateOne {
	_u.mutation.SetConstraints(v)
	return _u
}

// SetNillableConstraints sets the "constraints" field if the given value is not nil.
func (_u *PracticeQuestionUpdateOne) SetNillableConstraints(v *string) *PracticeQuestionUpdateOne {
	if v != nil {
		_u.SetConstraints(*v)
	}
	return _u
}

// ClearConstraints clears the value of the "constraints" field.
func (_u *PracticeQuestionUpdateOne) ClearConstraints() *PracticeQuestionUpdateOne {
	_u.mutation.ClearConstraints()
	return _u
}

// SetDefaultStdin sets the "default_stdin" field.
func (_u *PracticeQuestionUpdateOne) SetDefaultStdin(v string) *PracticeQuestionUpdateOne {
	_u.mutation.SetDefaultStdin(v)
	return _u
}

// SetNillableDefaultStdin sets the "default_stdin" field if the given value is not nil.
func (_u *PracticeQuestionUpdateOne) SetNillableDefaultStdin(v *string) *PracticeQuestionUpdateOne {
	if v != nil {
		_u.SetDefaultStdin(*v)
	}
	return _u
}

// ClearDefaultStdin clears the value of the "default_stdin" field.
func (_u *PracticeQuestionUpdateOne) ClearDefaultStdin() *PracticeQuestionUpdateOne {
	_u.mutation.ClearDefaultStdin()
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *PracticeQuestionUpdateOne) SetGeneratedAt(v time.Time) *PracticeQuestionUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *PracticeQuestionUpdateOne) SetNillableGeneratedAt(v *time.Time) *PracticeQuestionUpdateOne {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *PracticeQuestionUpdateOne) SetLastUsedAt(v time.Time) *PracticeQuestionUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *PracticeQuestionUpdateOne) SetNillableLastUsedAt(v *time.Time) *PracticeQuestionUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// Mutation returns the PracticeQuestionMutation object of the builder.
func (_u *PracticeQuestionUpdateOne) Mutation() *PracticeQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeQuestionUpdate builder.
func (_u *PracticeQuestionUpdateOne) Where(ps ...predicate.PracticeQuestion) *PracticeQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeQuestionUpdateOne) Select(field string, fields ...string) *PracticeQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeQuestion entity.
func (_u *PracticeQuestionUpdateOne) Save(ctx context.Context) (*PracticeQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeQuestionUpdateOne) SaveX(ctx context.Context) *PracticeQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Identifier(); ok {
		if err := practicequestion.IdentifierValidator(v); err != nil {
			return &ValidationError{Name: "identifier", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.identifier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := practicequestion.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := practicequestion.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.description": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeQuestionUpdateOne) sqlSave(ctx context.Context) (_node *PracticeQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicequestion.Table, practicequestion.Columns, sqlgraph.NewFieldSpec(practicequestion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicequestion.FieldID)
		for _, f := range fields {
			if !practicequestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicequestion.FieldID {
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
	if value, ok := _u.mutation.Identifier(); ok {
		_spec.SetField(practicequestion.FieldIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(practicequestion.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(practicequestion.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(practicequestion.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicequestion.FieldExamples, value)
		})
	}
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(practicequestion.FieldConstraints, field.TypeString, value)
	}
	if _u.mutation.ConstraintsCleared() {
		_spec.ClearField(practicequestion.FieldConstraints, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultStdin(); ok {
		_spec.SetField(practicequestion.FieldDefaultStdin, field.TypeString, value)
	}
	if _u.mutation.DefaultStdinCleared() {
		_spec.ClearField(practicequestion.FieldDefaultStdin, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(practicequestion.FieldGeneratedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(practicequestion.FieldLastUsedAt, field.TypeTime, value)
	}
	_node = &PracticeQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicequestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

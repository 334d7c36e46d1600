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
	"github.com/abhisek/pathwise/ent/generatedquiz"
	"github.com/abhisek/pathwise/ent/predicate"
	"github.com/abhisek/pathwise/ent/schema"
)

// GeneratedQuizUpdate is the builder for updating GeneratedQuiz entities.
type GeneratedQuizUpdate struct {
	config
	hooks    []Hook
	mutation *GeneratedQuizMutation
}

// Where appends a list predicates to the GeneratedQuizUpdate builder.
func (_u *GeneratedQuizUpdate) Where(ps ...predicate.GeneratedQuiz) *GeneratedQuizUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIdentifier sets the "identifier" field.
func (_u *GeneratedQuizUpdate) SetIdentifier(v string) *GeneratedQuizUpdate {
	_u.mutation.SetIdentifier(v)
	return _u
}

// SetNillableIdentifier sets the "identifier" field if the given value is not nil.
func (_u *GeneratedQuizUpdate) SetNillableIdentifier(v *string) *GeneratedQuizUpdate {
	if v != nil {
		_u.SetIdentifier(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *GeneratedQuizUpdate) SetTitle(v string) *GeneratedQuizUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GeneratedQuizUpdate) SetNillableTitle(v *string) *GeneratedQuizUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *GeneratedQuizUpdate) SetQuestions(v []schema.QuizQuestion) *GeneratedQuizUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *GeneratedQuizUpdate) AppendQuestions(v []schema.QuizQuestion) *GeneratedQuizUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *GeneratedQuizUpdate) SetGeneratedAt(v time.Time) *GeneratedQuizUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *GeneratedQuizUpdate) SetNillableGeneratedAt(v *time.Time) *GeneratedQuizUpdate {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *GeneratedQuizUpdate) SetLastUsedAt(v time.Time) *GeneratedQuizUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *GeneratedQuizUpdate) SetNillableLastUsedAt(v *time.Time) *GeneratedQuizUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// Mutation returns the GeneratedQuizMutation object of the builder.
func (_u *GeneratedQuizUpdate) Mutation() *GeneratedQuizMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GeneratedQuizUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedQuizUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GeneratedQuizUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedQuizUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedQuizUpdate) check() error {
	if v, ok := _u.mutation.Identifier(); ok {
		if err := generatedquiz.IdentifierValidator(v); err != nil {
			return &ValidationError{Name: "identifier", err: fmt.Errorf(`ent: validator failed for field "GeneratedQuiz.identifier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := generatedquiz.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "GeneratedQuiz.title": %w`, err)}
		}
	}
	return nil
}

func (_u *GeneratedQuizUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedquiz.Table, generatedquiz.Columns, sqlgraph.NewFieldSpec(generatedquiz.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Identifier(); ok {
		_spec.SetField(generatedquiz.FieldIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(generatedquiz.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(generatedquiz.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generatedquiz.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(generatedquiz.FieldGeneratedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(generatedquiz.FieldLastUsedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedquiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GeneratedQuizUpdateOne is the builder for updating a single GeneratedQuiz entity.
type GeneratedQuizUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GeneratedQuizMutation
}

// SetIdentifier sets the "identifier" field.
func (_u *GeneratedQuizUpdateOne) SetIdentifier(v string) *GeneratedQuizUpdateOne {
	_u.mutation.SetIdentifier(v)
	return _u
}

// SetNillableIdentifier sets the "identifier" field if the given value is not nil.
func (_u *GeneratedQuizUpdateOne) SetNillableIdentifier(v *string) *GeneratedQuizUpdateOne {
	if v != nil {
		_u.SetIdentifier(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *GeneratedQuizUpdateOne) SetTitle(v string) *GeneratedQuizUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GeneratedQuizUpdateOne) SetNillableTitle(v *string) *GeneratedQuizUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *GeneratedQuizUpdateOne) SetQuestions(v []schema.QuizQuestion) *GeneratedQuizUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *GeneratedQuizUpdateOne) AppendQuestions(v []schema.QuizQuestion) *GeneratedQuizUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *GeneratedQuizUpdateOne) SetGeneratedAt(v time.Time) *GeneratedQuizUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *GeneratedQuizUpdateOne) SetNillableGeneratedAt(v *time.Time) *GeneratedQuizUpdateOne {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *GeneratedQuizUpdateOne) SetLastUsedAt(v time.Time) *GeneratedQuizUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *GeneratedQuizUpdateOne) SetNillableLastUsedAt(v *time.Time) *GeneratedQuizUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// Mutation returns the GeneratedQuizMutation object of the builder.
func (_u *GeneratedQuizUpdateOne) Mutation() *GeneratedQuizMutation {
	return _u.mutation
}

// Where appends a list predicates to the GeneratedQuizUpdate builder.
func (_u *GeneratedQuizUpdateOne) Where(ps ...predicate.GeneratedQuiz) *GeneratedQuizUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GeneratedQuizUpdateOne) Select(field string, fields ...string) *GeneratedQuizUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GeneratedQuiz entity.
func (_u *GeneratedQuizUpdateOne) Save(ctx context.Context) (*GeneratedQuiz, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedQuizUpdateOne) SaveX(ctx context.Context) *GeneratedQuiz {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GeneratedQuizUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedQuizUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedQuizUpdateOne) check() error {
	if v, ok := _u.mutation.Identifier(); ok {
		if err := generatedquiz.IdentifierValidator(v); err != nil {
			return &ValidationError{Name: "identifier", err: fmt.Errorf(`ent: validator failed for field "GeneratedQuiz.identifier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := generatedquiz.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "GeneratedQuiz.title": %w`, err)}
		}
	}
	return nil
}

func (_u *GeneratedQuizUpdateOne) sqlSave(ctx context.Context) (_node *GeneratedQuiz, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedquiz.Table, generatedquiz.Columns, sqlgraph.NewFieldSpec(generatedquiz.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GeneratedQuiz.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generatedquiz.FieldID)
		for _, f := range fields {
			if !generatedquiz.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generatedquiz.FieldID {
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
		_spec.SetField(generatedquiz.FieldIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(generatedquiz.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(generatedquiz.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generatedquiz.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(generatedquiz.FieldGeneratedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(generatedquiz.FieldLastUsedAt, field.TypeTime, value)
	}
	_node = &GeneratedQuiz{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedquiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/generatedquiz"
	"github.com/abhisek/pathwise/ent/schema"
	"github.com/google/uuid"
)

// GeneratedQuizCreate is the builder for creating a GeneratedQuiz entity.
type GeneratedQuizCreate struct {
	config
	mutation *GeneratedQuizMutation
	hooks    []Hook
}

// SetIdentifier sets the "identifier" field.
func (_c *GeneratedQuizCreate) SetIdentifier(v string) *GeneratedQuizCreate {
	_c.mutation.SetIdentifier(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *GeneratedQuizCreate) SetTitle(v string) *GeneratedQuizCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *GeneratedQuizCreate) SetQuestions(v []schema.QuizQuestion) *GeneratedQuizCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *GeneratedQuizCreate) SetGeneratedAt(v time.Time) *GeneratedQuizCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *GeneratedQuizCreate) SetNillableGeneratedAt(v *time.Time) *GeneratedQuizCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *GeneratedQuizCreate) SetLastUsedAt(v time.Time) *GeneratedQuizCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *GeneratedQuizCreate) SetNillableLastUsedAt(v *time.Time) *GeneratedQuizCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GeneratedQuizCreate) SetID(v uuid.UUID) *GeneratedQuizCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GeneratedQuizCreate) SetNillableID(v *uuid.UUID) *GeneratedQuizCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the GeneratedQuizMutation object of the builder.
func (_c *GeneratedQuizCreate) Mutation() *GeneratedQuizMutation {
	return _c.mutation
}

// Save creates the GeneratedQuiz in the database.
func (_c *GeneratedQuizCreate) Save(ctx context.Context) (*GeneratedQuiz, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GeneratedQuizCreate) SaveX(ctx context.Context) *GeneratedQuiz {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedQuizCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedQuizCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GeneratedQuizCreate) defaults() {
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := generatedquiz.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
	if _, ok := _c.mutation.LastUsedAt(); !ok {
		v := generatedquiz.DefaultLastUsedAt()
		_c.mutation.SetLastUsedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := generatedquiz.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GeneratedQuizCreate) check() error {
	if _, ok := _c.mutation.Identifier(); !ok {
		return &ValidationError{Name: "identifier", err: errors.New(`ent: missing required field "GeneratedQuiz.identifier"`)}
	}
	if v, ok := _c.mutation.Identifier(); ok {
		if err := generatedquiz.IdentifierValidator(v); err != nil {
			return &ValidationError{Name: "identifier", err: fmt.Errorf(`ent: validator failed for field "GeneratedQuiz.identifier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "GeneratedQuiz.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := generatedquiz.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "GeneratedQuiz.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "GeneratedQuiz.questions"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "GeneratedQuiz.generated_at"`)}
	}
	if _, ok := _c.mutation.LastUsedAt(); !ok {
		return &ValidationError{Name: "last_used_at", err: errors.New(`ent: missing required field "GeneratedQuiz.last_used_at"`)}
	}
	return nil
}

func (_c *GeneratedQuizCreate) sqlSave(ctx context.Context) (*GeneratedQuiz, error) {
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

func (_c *GeneratedQuizCreate) createSpec() (*GeneratedQuiz, *sqlgraph.CreateSpec) {
	var (
		_node = &GeneratedQuiz{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generatedquiz.Table, sqlgraph.NewFieldSpec(generatedquiz.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Identifier(); ok {
		_spec.SetField(generatedquiz.FieldIdentifier, field.TypeString, value)
		_node.Identifier = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(generatedquiz.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(generatedquiz.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(generatedquiz.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(generatedquiz.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = value
	}
	return _node, _spec
}

// GeneratedQuizCreateBulk is the builder for creating many GeneratedQuiz entities in bulk.
type GeneratedQuizCreateBulk struct {
	config
	err      error
	builders []*GeneratedQuizCreate
}

// Save creates the GeneratedQuiz entities in the database.
func (_c *GeneratedQuizCreateBulk) Save(ctx context.Context) ([]*GeneratedQuiz, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GeneratedQuiz, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GeneratedQuizMutation)
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
func (_c *GeneratedQuizCreateBulk) SaveX(ctx context.Context) []*GeneratedQuiz {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedQuizCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedQuizCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/practicequestion"
	"github.com/abhisek/pathwise/ent/schema"
	"github.com/google/uuid"
)

// PracticeQuestionCreate is the builder for creating a PracticeQuestion entity.
type PracticeQuestionCreate struct {
	config
	mutation *PracticeQuestionMutation
	hooks    []Hook
}

// SetIdentifier sets the "identifier" field.
func (_c *PracticeQuestionCreate) SetIdentifier(v string) *PracticeQuestionCreate {
	_c.mutation.SetIdentifier(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PracticeQuestionCreate) SetTitle(v string) *PracticeQuestionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PracticeQuestionCreate) SetDescription(v string) *PracticeQuestionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetExamples sets the "examples" field.
func (_c *PracticeQuestionCreate) SetExamples(v []schema.PracticeExample) *PracticeQuestionCreate {
	_c.mutation.SetExamples(v)
	return _c
}

// SetConstraints sets the "constraints" field.
func (_c *PracticeQuestionCreate) SetConstraints(v string) *PracticeQuestionCreate {
	_c.mutation.SetConstraints(v)
	return _c
}

// SetNillableConstraints sets the "constraints" field if the given value is not nil.
func (_c *PracticeQuestionCreate) SetNillableConstraints(v *string) *PracticeQuestionCreate {
	if v != nil {
		_c.SetConstraints(*v)
	}
	return _c
}

// SetDefaultStdin sets the "default_stdin" field.
func (_c *PracticeQuestionCreate) SetDefaultStdin(v string) *PracticeQuestionCreate {
	_c.mutation.SetDefaultStdin(v)
	return _c
}

// SetNillableDefaultStdin sets the "default_stdin" field if the given value is not nil.
func (_c *PracticeQuestionCreate) SetNillableDefaultStdin(v *string) *PracticeQuestionCreate {
	if v != nil {
		_c.SetDefaultStdin(*v)
	}
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *PracticeQuestionCreate) SetGeneratedAt(v time.Time) *PracticeQuestionCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *PracticeQuestionCreate) SetNillableGeneratedAt(v *time.Time) *PracticeQuestionCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *PracticeQuestionCreate) SetLastUsedAt(v time.Time) *PracticeQuestionCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *PracticeQuestionCreate) SetNillableLastUsedAt(v *time.Time) *PracticeQuestionCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PracticeQuestionCreate) SetID(v uuid.UUID) *PracticeQuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PracticeQuestionCreate) SetNillableID(v *uuid.UUID) *PracticeQuestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PracticeQuestionMutation object of the builder.
func (_c *PracticeQuestionCreate) Mutation() *PracticeQuestionMutation {
	return _c.mutation
}

// Save creates the PracticeQuestion in the database.
func (_c *PracticeQuestionCreate) Save(ctx context.Context) (*PracticeQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeQuestionCreate) SaveX(ctx context.Context) *PracticeQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeQuestionCreate) defaults() {
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := practicequestion.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
	if _, ok := _c.mutation.LastUsedAt(); !ok {
		v := practicequestion.DefaultLastUsedAt()
		_c.mutation.SetLastUsedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := practicequestion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeQuestionCreate) check() error {
	if _, ok := _c.mutation.Identifier(); !ok {
		return &ValidationError{Name: "identifier", err: errors.New(`ent: missing required field "PracticeQuestion.identifier"`)}
	}
	if v, ok := _c.mutation.Identifier(); ok {
		if err := practicequestion.IdentifierValidator(v); err != nil {
			return &ValidationError{Name: "identifier", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.identifier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "PracticeQuestion.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := practicequestion.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "PracticeQuestion.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := practicequestion.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Examples(); !ok {
		return &ValidationError{Name: "examples", err: errors.New(`ent: missing required field "PracticeQuestion.examples"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "PracticeQuestion.generated_at"`)}
	}
	if _, ok := _c.mutation.LastUsedAt(); !ok {
		return &ValidationError{Name: "last_used_at", err: errors.New(`ent: missing required field "PracticeQuestion.last_used_at"`)}
	}
	return nil
}

func (_c *PracticeQuestionCreate) sqlSave(ctx context.Context) (*PracticeQuestion, error) {
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

func (_c *PracticeQuestionCreate) createSpec() (*PracticeQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practicequestion.Table, sqlgraph.NewFieldSpec(practicequestion.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Identifier(); ok {
		_spec.SetField(practicequestion.FieldIdentifier, field.TypeString, value)
		_node.Identifier = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(practicequestion.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(practicequestion.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Examples(); ok {
		_spec.SetField(practicequestion.FieldExamples, field.TypeJSON, value)
		_node.Examples = value
	}
	if value, ok := _c.mutation.Constraints(); ok {
		_spec.SetField(practicequestion.FieldConstraints, field.TypeString, value)
		_node.Constraints = value
	}
	if value, ok := _c.mutation.DefaultStdin(); ok {
		_spec.SetField(practicequestion.FieldDefaultStdin, field.TypeString, value)
		_node.DefaultStdin = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(practicequestion.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(practicequestion.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = value
	}
	return _node, _spec
}

// PracticeQuestionCreateBulk is the builder for creating many PracticeQuestion entities in bulk.
type PracticeQuestionCreateBulk struct {
	config
	err      error
	builders []*PracticeQuestionCreate
}

// Save creates the PracticeQuestion entities in the database.
func (_c *PracticeQuestionCreateBulk) Save(ctx context.Context) ([]*PracticeQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeQuestionMutation)
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
func (_c *PracticeQuestionCreateBulk) SaveX(ctx context.Context) []*PracticeQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

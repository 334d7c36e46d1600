// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/skillgapanalysis"
	"github.com/google/uuid"
)

// SkillGapAnalysisCreate is the builder for creating a SkillGapAnalysis entity.
type SkillGapAnalysisCreate struct {
	config
	mutation *SkillGapAnalysisMutation
	hooks    []Hook
}

// SetTimestamp sets the "timestamp" field.
func (_c *SkillGapAnalysisCreate) SetTimestamp(v time.Time) *SkillGapAnalysisCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SkillGapAnalysisCreate) SetNillableTimestamp(v *time.Time) *SkillGapAnalysisCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SkillGapAnalysisCreate) SetUserID(v uuid.UUID) *SkillGapAnalysisCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *SkillGapAnalysisCreate) SetDomain(v string) *SkillGapAnalysisCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetAcquiredSkills sets the "acquired_skills" field.
func (_c *SkillGapAnalysisCreate) SetAcquiredSkills(v []string) *SkillGapAnalysisCreate {
	_c.mutation.SetAcquiredSkills(v)
	return _c
}

// SetMissingSkills sets the "missing_skills" field.
func (_c *SkillGapAnalysisCreate) SetMissingSkills(v []string) *SkillGapAnalysisCreate {
	_c.mutation.SetMissingSkills(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *SkillGapAnalysisCreate) SetRecommendations(v []string) *SkillGapAnalysisCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SkillGapAnalysisCreate) SetID(v uuid.UUID) *SkillGapAnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SkillGapAnalysisCreate) SetNillableID(v *uuid.UUID) *SkillGapAnalysisCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SkillGapAnalysisMutation object of the builder.
func (_c *SkillGapAnalysisCreate) Mutation() *SkillGapAnalysisMutation {
	return _c.mutation
}

// Save creates the SkillGapAnalysis in the database.
func (_c *SkillGapAnalysisCreate) Save(ctx context.Context) (*SkillGapAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillGapAnalysisCreate) SaveX(ctx context.Context) *SkillGapAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillGapAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillGapAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillGapAnalysisCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := skillgapanalysis.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := skillgapanalysis.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillGapAnalysisCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SkillGapAnalysis.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SkillGapAnalysis.user_id"`)}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "SkillGapAnalysis.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := skillgapanalysis.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "SkillGapAnalysis.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AcquiredSkills(); !ok {
		return &ValidationError{Name: "acquired_skills", err: errors.New(`ent: missing required field "SkillGapAnalysis.acquired_skills"`)}
	}
	if _, ok := _c.mutation.MissingSkills(); !ok {
		return &ValidationError{Name: "missing_skills", err: errors.New(`ent: missing required field "SkillGapAnalysis.missing_skills"`)}
	}
	if _, ok := _c.mutation.Recommendations(); !ok {
		return &ValidationError{Name: "recommendations", err: errors.New(`ent: missing required field "SkillGapAnalysis.recommendations"`)}
	}
	return nil
}

func (_c *SkillGapAnalysisCreate) sqlSave(ctx context.Context) (*SkillGapAnalysis, error) {
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

func (_c *SkillGapAnalysisCreate) createSpec() (*SkillGapAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillGapAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillgapanalysis.Table, sqlgraph.NewFieldSpec(skillgapanalysis.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(skillgapanalysis.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(skillgapanalysis.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(skillgapanalysis.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.AcquiredSkills(); ok {
		_spec.SetField(skillgapanalysis.FieldAcquiredSkills, field.TypeJSON, value)
		_node.AcquiredSkills = value
	}
	if value, ok := _c.mutation.MissingSkills(); ok {
		_spec.SetField(skillgapanalysis.FieldMissingSkills, field.TypeJSON, value)
		_node.MissingSkills = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(skillgapanalysis.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	return _node, _spec
}

// SkillGapAnalysisCreateBulk is the builder for creating many SkillGapAnalysis entities in bulk.
type SkillGapAnalysisCreateBulk struct {
	config
	err      error
	builders []*SkillGapAnalysisCreate
}

// Save creates the SkillGapAnalysis entities in the database.
func (_c *SkillGapAnalysisCreateBulk) Save(ctx context.Context) ([]*SkillGapAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillGapAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillGapAnalysisMutation)
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
func (_c *SkillGapAnalysisCreateBulk) SaveX(ctx context.Context) []*SkillGapAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillGapAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillGapAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

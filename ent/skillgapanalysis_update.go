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
	"github.com/abhisek/pathwise/ent/skillgapanalysis"
	"github.com/google/uuid"
)

// SkillGapAnalysisUpdate is the builder for updating SkillGapAnalysis entities.
type SkillGapAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *SkillGapAnalysisMutation
}

// Where appends a list predicates to the SkillGapAnalysisUpdate builder.
func (_u *SkillGapAnalysisUpdate) Where(ps ...predicate.SkillGapAnalysis) *SkillGapAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SkillGapAnalysisUpdate) SetUserID(v uuid.UUID) *SkillGapAnalysisUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SkillGapAnalysisUpdate) SetNillableUserID(v *uuid.UUID) *SkillGapAnalysisUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *SkillGapAnalysisUpdate) SetDomain(v string) *SkillGapAnalysisUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *SkillGapAnalysisUpdate) SetNillableDomain(v *string) *SkillGapAnalysisUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetAcquiredSkills sets the "acquired_skills" field.
func (_u *SkillGapAnalysisUpdate) SetAcquiredSkills(v []string) *SkillGapAnalysisUpdate {
	_u.mutation.SetAcquiredSkills(v)
	return _u
}

// AppendAcquiredSkills appends value to the "acquired_skills" field.
func (_u *SkillGapAnalysisUpdate) AppendAcquiredSkills(v []string) *SkillGapAnalysisUpdate {
	_u.mutation.AppendAcquiredSkills(v)
	return _u
}

// SetMissingSkills sets the "missing_skills" field.
func (_u *SkillGapAnalysisUpdate) SetMissingSkills(v []string) *SkillGapAnalysisUpdate {
	_u.mutation.SetMissingSkills(v)
	return _u
}

// AppendMissingSkills appends value to the "missing_skills" field.
func (_u *SkillGapAnalysisUpdate) AppendMissingSkills(v []string) *SkillGapAnalysisUpdate {
	_u.mutation.AppendMissingSkills(v)
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *SkillGapAnalysisUpdate) SetRecommendations(v []string) *SkillGapAnalysisUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *SkillGapAnalysisUpdate) AppendRecommendations(v []string) *SkillGapAnalysisUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// Mutation returns the SkillGapAnalysisMutation object of the builder.
func (_u *SkillGapAnalysisUpdate) Mutation() *SkillGapAnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillGapAnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillGapAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillGapAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillGapAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillGapAnalysisUpdate) check() error {
	if v, ok := _u.mutation.Domain(); ok {
		if err := skillgapanalysis.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "SkillGapAnalysis.domain": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillGapAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillgapanalysis.Table, skillgapanalysis.Columns, sqlgraph.NewFieldSpec(skillgapanalysis.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(skillgapanalysis.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(skillgapanalysis.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcquiredSkills(); ok {
		_spec.SetField(skillgapanalysis.FieldAcquiredSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcquiredSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skillgapanalysis.FieldAcquiredSkills, value)
		})
	}
	if value, ok := _u.mutation.MissingSkills(); ok {
		_spec.SetField(skillgapanalysis.FieldMissingSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skillgapanalysis.FieldMissingSkills, value)
		})
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(skillgapanalysis.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skillgapanalysis.FieldRecommendations, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillgapanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillGapAnalysisUpdateOne is the builder for updating a single SkillGapAnalysis entity.
type SkillGapAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillGapAnalysisMutation
}

// SetUserID sets the "user_id" field.
func (_u *SkillGapAnalysisUpdateOne) SetUserID(v uuid.UUID) *SkillGapAnalysisUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SkillGapAnalysisUpdateOne) SetNillableUserID(v *uuid.UUID) *SkillGapAnalysisUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *SkillGapAnalysisUpdateOne) SetDomain(v string) *SkillGapAnalysisUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *SkillGapAnalysisUpdateOne) SetNillableDomain(v *string) *SkillGapAnalysisUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetAcquiredSkills sets the "acquired_skills" field.
func (_u *SkillGapAnalysisUpdateOne) SetAcquiredSkills(v []string) *SkillGapAnalysisUpdateOne {
	_u.mutation.SetAcquiredSkills(v)
	return _u
}

// AppendAcquiredSkills appends value to the "acquired_skills" field.
func (_u *SkillGapAnalysisUpdateOne) AppendAcquiredSkills(v []string) *SkillGapAnalysisUpdateOne {
	_u.mutation.AppendAcquiredSkills(v)
	return _u
}

// SetMissingSkills sets the "missing_skills" field.
func (_u *SkillGapAnalysisUpdateOne) SetMissingSkills(v []string) *SkillGapAnalysisUpdateOne {
	_u.mutation.SetMissingSkills(v)
	return _u
}

// AppendMissingSkills appends value to the "missing_skills" field.
func (_u *SkillGapAnalysisUpdateOne) AppendMissingSkills(v []string) *SkillGapAnalysisUpdateOne {
	_u.mutation.AppendMissingSkills(v)
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *SkillGapAnalysisUpdateOne) SetRecommendations(v []string) *SkillGapAnalysisUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *SkillGapAnalysisUpdateOne) AppendRecommendations(v []string) *SkillGapAnalysisUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// Mutation returns the SkillGapAnalysisMutation object of the builder.
func (_u *SkillGapAnalysisUpdateOne) Mutation() *SkillGapAnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillGapAnalysisUpdate builder.
func (_u *SkillGapAnalysisUpdateOne) Where(ps ...predicate.SkillGapAnalysis) *SkillGapAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillGapAnalysisUpdateOne) Select(field string, fields ...string) *SkillGapAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillGapAnalysis entity.
func (_u *SkillGapAnalysisUpdateOne) Save(ctx context.Context) (*SkillGapAnalysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillGapAnalysisUpdateOne) SaveX(ctx context.Context) *SkillGapAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillGapAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillGapAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillGapAnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.Domain(); ok {
		if err := skillgapanalysis.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "SkillGapAnalysis.domain": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillGapAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *SkillGapAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillgapanalysis.Table, skillgapanalysis.Columns, sqlgraph.NewFieldSpec(skillgapanalysis.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillGapAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillgapanalysis.FieldID)
		for _, f := range fields {
			if !skillgapanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillgapanalysis.FieldID {
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
		_spec.SetField(skillgapanalysis.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(skillgapanalysis.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcquiredSkills(); ok {
		_spec.SetField(skillgapanalysis.FieldAcquiredSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcquiredSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skillgapanalysis.FieldAcquiredSkills, value)
		})
	}
	if value, ok := _u.mutation.MissingSkills(); ok {
		_spec.SetField(skillgapanalysis.FieldMissingSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skillgapanalysis.FieldMissingSkills, value)
		})
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(skillgapanalysis.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skillgapanalysis.FieldRecommendations, value)
		})
	}
	_node = &SkillGapAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillgapanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

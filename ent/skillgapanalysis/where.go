// Code generated by ent, DO NOT EDIT.

package skillgapanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathwise/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldLTE(FieldID, id))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldEQ(FieldUserID, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldEQ(FieldDomain, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldLTE(FieldUserID, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.FieldContainsFold(FieldDomain, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SkillGapAnalysis) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SkillGapAnalysis) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SkillGapAnalysis) predicate.SkillGapAnalysis {
	return predicate.SkillGapAnalysis(sql.NotPredicates(p))
}

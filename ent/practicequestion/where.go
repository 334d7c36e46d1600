// Code generated by ent, DO NOT EDIT.

package practicequestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathwise/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldID, id))
}

// Identifier applies equality check predicate on the "identifier" field. It's identical to IdentifierEQ.
func Identifier(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldIdentifier, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldDescription, v))
}

// Constraints applies equality check predicate on the "constraints" field. It's identical to ConstraintsEQ.
func Constraints(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldConstraints, v))
}

// DefaultStdin applies equality check predicate on the "default_stdin" field. It's identical to DefaultStdinEQ.
func DefaultStdin(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldDefaultStdin, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldGeneratedAt, v))
}

// LastUsedAt applies equality check predicate on the "last_used_at" field. It's identical to LastUsedAtEQ.
func LastUsedAt(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldLastUsedAt, v))
}

// IdentifierEQ applies the EQ predicate on the "identifier" field.
func IdentifierEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldIdentifier, v))
}

// IdentifierNEQ applies the NEQ predicate on the "identifier" field.
func IdentifierNEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldIdentifier, v))
}

// IdentifierIn applies the In predicate on the "identifier" field.
func IdentifierIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldIdentifier, vs...))
}

// IdentifierNotIn applies the NotIn predicate on the "identifier" field.
func IdentifierNotIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldIdentifier, vs...))
}

// IdentifierGT applies the GT predicate on the "identifier" field.
func IdentifierGT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldIdentifier, v))
}

// IdentifierGTE applies the GTE predicate on the "identifier" field.
func IdentifierGTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldIdentifier, v))
}

// IdentifierLT applies the LT predicate on the "identifier" field.
func IdentifierLT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldIdentifier, v))
}

// IdentifierLTE applies the LTE predicate on the "identifier" field.
func IdentifierLTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldIdentifier, v))
}

// IdentifierContains applies the Contains predicate on the "identifier" field.
func IdentifierContains(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContains(FieldIdentifier, v))
}

// IdentifierHasPrefix applies the HasPrefix predicate on the "identifier" field.
func IdentifierHasPrefix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasPrefix(FieldIdentifier, v))
}

// IdentifierHasSuffix applies the HasSuffix predicate on the "identifier" field.
func IdentifierHasSuffix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasSuffix(FieldIdentifier, v))
}

// IdentifierEqualFold applies the EqualFold predicate on the "identifier" field.
func IdentifierEqualFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEqualFold(FieldIdentifier, v))
}

// IdentifierContainsFold applies the ContainsFold predicate on the "identifier" field.
func IdentifierContainsFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContainsFold(FieldIdentifier, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContainsFold(FieldDescription, v))
}

// ConstraintsEQ applies the EQ predicate on the "constraints" field.
func ConstraintsEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldConstraints, v))
}

// ConstraintsNEQ applies the NEQ predicate on the "constraints" field.
func ConstraintsNEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldConstraints, v))
}

// ConstraintsIn applies the In predicate on the "constraints" field.
func ConstraintsIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldConstraints, vs...))
}

// ConstraintsNotIn applies the NotIn predicate on the "constraints" field.
func ConstraintsNotIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldConstraints, vs...))
}

// ConstraintsGT applies the GT predicate on the "constraints" field.
func ConstraintsGT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldConstraints, v))
}

// ConstraintsGTE applies the GTE predicate on the "constraints" field.
func ConstraintsGTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldConstraints, v))
}

// ConstraintsLT applies the LT predicate on the "constraints" field.
func ConstraintsLT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldConstraints, v))
}

// ConstraintsLTE applies the LTE predicate on the "constraints" field.
func ConstraintsLTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldConstraints, v))
}

// ConstraintsContains applies the Contains predicate on the "constraints" field.
func ConstraintsContains(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContains(FieldConstraints, v))
}

// ConstraintsHasPrefix applies the HasPrefix predicate on the "constraints" field.
func ConstraintsHasPrefix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasPrefix(FieldConstraints, v))
}

// ConstraintsHasSuffix applies the HasSuffix predicate on the "constraints" field.
func ConstraintsHasSuffix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasSuffix(FieldConstraints, v))
}

// ConstraintsIsNil applies the IsNil predicate on the "constraints" field.
func ConstraintsIsNil() predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIsNull(FieldConstraints))
}

// ConstraintsNotNil applies the NotNil predicate on the "constraints" field.
func ConstraintsNotNil() predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotNull(FieldConstraints))
}

// ConstraintsEqualFold applies the EqualFold predicate on the "constraints" field.
func ConstraintsEqualFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEqualFold(FieldConstraints, v))
}

// ConstraintsContainsFold applies the ContainsFold predicate on the "constraints" field.
func ConstraintsContainsFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContainsFold(FieldConstraints, v))
}

// DefaultStdinEQ applies the EQ predicate on the "default_stdin" field.
func DefaultStdinEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldDefaultStdin, v))
}

// DefaultStdinNEQ applies the NEQ predicate on the "default_stdin" field.
func DefaultStdinNEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldDefaultStdin, v))
}

// DefaultStdinIn applies the In predicate on the "default_stdin" field.
func DefaultStdinIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldDefaultStdin, vs...))
}

// DefaultStdinNotIn applies the NotIn predicate on the "default_stdin" field.
func DefaultStdinNotIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldDefaultStdin, vs...))
}

// DefaultStdinGT applies the GT predicate on the "default_stdin" field.
func DefaultStdinGT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldDefaultStdin, v))
}

// DefaultStdinGTE applies the GTE predicate on the "default_stdin" field.
func DefaultStdinGTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldDefaultStdin, v))
}

// DefaultStdinLT applies the LT predicate on the "default_stdin" field.
func DefaultStdinLT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldDefaultStdin, v))
}

// DefaultStdinLTE applies the LTE predicate on the "default_stdin" field.
func DefaultStdinLTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldDefaultStdin, v))
}

// DefaultStdinContains applies the Contains predicate on the "default_stdin" field.
func DefaultStdinContains(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContains(FieldDefaultStdin, v))
}

// DefaultStdinHasPrefix applies the HasPrefix predicate on the "default_stdin" field.
func DefaultStdinHasPrefix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasPrefix(FieldDefaultStdin, v))
}

// DefaultStdinHasSuffix applies the HasSuffix predicate on the "default_stdin" field.
func DefaultStdinHasSuffix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasSuffix(FieldDefaultStdin, v))
}

// DefaultStdinIsNil applies the IsNil predicate on the "default_stdin" field.
func DefaultStdinIsNil() predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIsNull(FieldDefaultStdin))
}

// DefaultStdinNotNil applies the NotNil predicate on the "default_stdin" field.
func DefaultStdinNotNil() predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotNull(FieldDefaultStdin))
}

// DefaultStdinEqualFold applies the EqualFold predicate on the "default_stdin" field.
func DefaultStdinEqualFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEqualFold(FieldDefaultStdin, v))
}

// DefaultStdinContainsFold applies the ContainsFold predicate on the "default_stdin" field.
func DefaultStdinContainsFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContainsFold(FieldDefaultStdin, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldGeneratedAt, v))
}

// LastUsedAtEQ applies the EQ predicate on the "last_used_at" field.
func LastUsedAtEQ(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldLastUsedAt, v))
}

// LastUsedAtNEQ applies the NEQ predicate on the "last_used_at" field.
func LastUsedAtNEQ(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldLastUsedAt, v))
}

// LastUsedAtIn applies the In predicate on the "last_used_at" field.
func LastUsedAtIn(vs ...time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldLastUsedAt, vs...))
}

// LastUsedAtNotIn applies the NotIn predicate on the "last_used_at" field.
func LastUsedAtNotIn(vs ...time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldLastUsedAt, vs...))
}

// LastUsedAtGT applies the GT predicate on the "last_used_at" field.
func LastUsedAtGT(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldLastUsedAt, v))
}

// LastUsedAtGTE applies the GTE predicate on the "last_used_at" field.
func LastUsedAtGTE(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldLastUsedAt, v))
}

// LastUsedAtLT applies the LT predicate on the "last_used_at" field.
func LastUsedAtLT(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldLastUsedAt, v))
}

// LastUsedAtLTE applies the LTE predicate on the "last_used_at" field.
func LastUsedAtLTE(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldLastUsedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeQuestion) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeQuestion) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeQuestion) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.NotPredicates(p))
}

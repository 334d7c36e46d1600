// Code generated by ent, DO NOT EDIT.

package practiceattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathwise/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldID, id))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldUserID, v))
}

// Skill applies equality check predicate on the "skill" field. It's identical to SkillEQ.
func Skill(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldSkill, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldDifficulty, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldLanguage, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldCode, v))
}

// OverallStatus applies equality check predicate on the "overall_status" field. It's identical to OverallStatusEQ.
func OverallStatus(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldOverallStatus, v))
}

// SummaryFeedback applies equality check predicate on the "summary_feedback" field. It's identical to SummaryFeedbackEQ.
func SummaryFeedback(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldSummaryFeedback, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldUserID, v))
}

// SkillEQ applies the EQ predicate on the "skill" field.
func SkillEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldSkill, v))
}

// SkillNEQ applies the NEQ predicate on the "skill" field.
func SkillNEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldSkill, v))
}

// SkillIn applies the In predicate on the "skill" field.
func SkillIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldSkill, vs...))
}

// SkillNotIn applies the NotIn predicate on the "skill" field.
func SkillNotIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldSkill, vs...))
}

// SkillGT applies the GT predicate on the "skill" field.
func SkillGT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldSkill, v))
}

// SkillGTE applies the GTE predicate on the "skill" field.
func SkillGTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldSkill, v))
}

// SkillLT applies the LT predicate on the "skill" field.
func SkillLT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldSkill, v))
}

// SkillLTE applies the LTE predicate on the "skill" field.
func SkillLTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldSkill, v))
}

// SkillContains applies the Contains predicate on the "skill" field.
func SkillContains(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContains(FieldSkill, v))
}

// SkillHasPrefix applies the HasPrefix predicate on the "skill" field.
func SkillHasPrefix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasPrefix(FieldSkill, v))
}

// SkillHasSuffix applies the HasSuffix predicate on the "skill" field.
func SkillHasSuffix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasSuffix(FieldSkill, v))
}

// SkillEqualFold applies the EqualFold predicate on the "skill" field.
func SkillEqualFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEqualFold(FieldSkill, v))
}

// SkillContainsFold applies the ContainsFold predicate on the "skill" field.
func SkillContainsFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContainsFold(FieldSkill, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContainsFold(FieldDifficulty, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContainsFold(FieldLanguage, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContainsFold(FieldCode, v))
}

// OverallStatusEQ applies the EQ predicate on the "overall_status" field.
func OverallStatusEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldOverallStatus, v))
}

// OverallStatusNEQ applies the NEQ predicate on the "overall_status" field.
func OverallStatusNEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldOverallStatus, v))
}

// OverallStatusIn applies the In predicate on the "overall_status" field.
func OverallStatusIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldOverallStatus, vs...))
}

// OverallStatusNotIn applies the NotIn predicate on the "overall_status" field.
func OverallStatusNotIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldOverallStatus, vs...))
}

// OverallStatusGT applies the GT predicate on the "overall_status" field.
func OverallStatusGT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldOverallStatus, v))
}

// OverallStatusGTE applies the GTE predicate on the "overall_status" field.
func OverallStatusGTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldOverallStatus, v))
}

// OverallStatusLT applies the LT predicate on the "overall_status" field.
func OverallStatusLT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldOverallStatus, v))
}

// OverallStatusLTE applies the LTE predicate on the "overall_status" field.
func OverallStatusLTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldOverallStatus, v))
}

// OverallStatusContains applies the Contains predicate on the "overall_status" field.
func OverallStatusContains(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContains(FieldOverallStatus, v))
}

// OverallStatusHasPrefix applies the HasPrefix predicate on the "overall_status" field.
func OverallStatusHasPrefix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasPrefix(FieldOverallStatus, v))
}

// OverallStatusHasSuffix applies the HasSuffix predicate on the "overall_status" field.
func OverallStatusHasSuffix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasSuffix(FieldOverallStatus, v))
}

// OverallStatusEqualFold applies the EqualFold predicate on the "overall_status" field.
func OverallStatusEqualFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEqualFold(FieldOverallStatus, v))
}

// OverallStatusContainsFold applies the ContainsFold predicate on the "overall_status" field.
func OverallStatusContainsFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContainsFold(FieldOverallStatus, v))
}

// SummaryFeedbackEQ applies the EQ predicate on the "summary_feedback" field.
func SummaryFeedbackEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldSummaryFeedback, v))
}

// SummaryFeedbackNEQ applies the NEQ predicate on the "summary_feedback" field.
func SummaryFeedbackNEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldSummaryFeedback, v))
}

// SummaryFeedbackIn applies the In predicate on the "summary_feedback" field.
func SummaryFeedbackIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldSummaryFeedback, vs...))
}

// SummaryFeedbackNotIn applies the NotIn predicate on the "summary_feedback" field.
func SummaryFeedbackNotIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldSummaryFeedback, vs...))
}

// SummaryFeedbackGT applies the GT predicate on the "summary_feedback" field.
func SummaryFeedbackGT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldSummaryFeedback, v))
}

// SummaryFeedbackGTE applies the GTE predicate on the "summary_feedback" field.
func SummaryFeedbackGTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldSummaryFeedback, v))
}

// SummaryFeedbackLT applies the LT predicate on the "summary_feedback" field.
func SummaryFeedbackLT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldSummaryFeedback, v))
}

// SummaryFeedbackLTE applies the LTE predicate on the "summary_feedback" field.
func SummaryFeedbackLTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldSummaryFeedback, v))
}

// SummaryFeedbackContains applies the Contains predicate on the "summary_feedback" field.
func SummaryFeedbackContains(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContains(FieldSummaryFeedback, v))
}

// SummaryFeedbackHasPrefix applies the HasPrefix predicate on the "summary_feedback" field.
func SummaryFeedbackHasPrefix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasPrefix(FieldSummaryFeedback, v))
}

// SummaryFeedbackHasSuffix applies the HasSuffix predicate on the "summary_feedback" field.
func SummaryFeedbackHasSuffix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasSuffix(FieldSummaryFeedback, v))
}

// SummaryFeedbackEqualFold applies the EqualFold predicate on the "summary_feedback" field.
func SummaryFeedbackEqualFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEqualFold(FieldSummaryFeedback, v))
}

// SummaryFeedbackContainsFold applies the ContainsFold predicate on the "summary_feedback" field.
func SummaryFeedbackContainsFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContainsFold(FieldSummaryFeedback, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeAttempt) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeAttempt) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeAttempt) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package step

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/pathwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldID, id))
}

// StageIndex applies equality check predicate on the "stage_index" field. It's identical to StageIndexEQ.
func StageIndex(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStageIndex, v))
}

// StepIndex applies equality check predicate on the "step_index" field. It's identical to StepIndexEQ.
func StepIndex(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStepIndex, v))
}

// StageTitle applies equality check predicate on the "stage_title" field. It's identical to StageTitleEQ.
func StageTitle(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStageTitle, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldDescription, v))
}

// ResourceType applies equality check predicate on the "resource_type" field. It's identical to ResourceTypeEQ.
func ResourceType(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldResourceType, v))
}

// StudyLink applies equality check predicate on the "study_link" field. It's identical to StudyLinkEQ.
func StudyLink(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStudyLink, v))
}

// IsUnlocked applies equality check predicate on the "is_unlocked" field. It's identical to IsUnlockedEQ.
func IsUnlocked(v bool) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldIsUnlocked, v))
}

// IsCompleted applies equality check predicate on the "is_completed" field. It's identical to IsCompletedEQ.
func IsCompleted(v bool) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldIsCompleted, v))
}

// TestScore applies equality check predicate on the "test_score" field. It's identical to TestScoreEQ.
func TestScore(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTestScore, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCompletedAt, v))
}

// StageIndexEQ applies the EQ predicate on the "stage_index" field.
func StageIndexEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStageIndex, v))
}

// StageIndexNEQ applies the NEQ predicate on the "stage_index" field.
func StageIndexNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldStageIndex, v))
}

// StageIndexIn applies the In predicate on the "stage_index" field.
func StageIndexIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldStageIndex, vs...))
}

// StageIndexNotIn applies the NotIn predicate on the "stage_index" field.
func StageIndexNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldStageIndex, vs...))
}

// StageIndexGT applies the GT predicate on the "stage_index" field.
func StageIndexGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldStageIndex, v))
}

// StageIndexGTE applies the GTE predicate on the "stage_index" field.
func StageIndexGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldStageIndex, v))
}

// StageIndexLT applies the LT predicate on the "stage_index" field.
func StageIndexLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldStageIndex, v))
}

// StageIndexLTE applies the LTE predicate on the "stage_index" field.
func StageIndexLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldStageIndex, v))
}

// StepIndexEQ applies the EQ predicate on the "step_index" field.
func StepIndexEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStepIndex, v))
}

// StepIndexNEQ applies the NEQ predicate on the "step_index" field.
func StepIndexNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldStepIndex, v))
}

// StepIndexIn applies the In predicate on the "step_index" field.
func StepIndexIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldStepIndex, vs...))
}

// StepIndexNotIn applies the NotIn predicate on the "step_index" field.
func StepIndexNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldStepIndex, vs...))
}

// StepIndexGT applies the GT predicate on the "step_index" field.
func StepIndexGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldStepIndex, v))
}

// StepIndexGTE applies the GTE predicate on the "step_index" field.
func StepIndexGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldStepIndex, v))
}

// StepIndexLT applies the LT predicate on the "step_index" field.
func StepIndexLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldStepIndex, v))
}

// StepIndexLTE applies the LTE predicate on the "step_index" field.
func StepIndexLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldStepIndex, v))
}

// StageTitleEQ applies the EQ predicate on the "stage_title" field.
func StageTitleEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStageTitle, v))
}

// StageTitleNEQ applies the NEQ predicate on the "stage_title" field.
func StageTitleNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldStageTitle, v))
}

// StageTitleIn applies the In predicate on the "stage_title" field.
func StageTitleIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldStageTitle, vs...))
}

// StageTitleNotIn applies the NotIn predicate on the "stage_title" field.
func StageTitleNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldStageTitle, vs...))
}

// StageTitleGT applies the GT predicate on the "stage_title" field.
func StageTitleGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldStageTitle, v))
}

// StageTitleGTE applies the GTE predicate on the "stage_title" field.
func StageTitleGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldStageTitle, v))
}

// StageTitleLT applies the LT predicate on the "stage_title" field.
func StageTitleLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldStageTitle, v))
}

// StageTitleLTE applies the LTE predicate on the "stage_title" field.
func StageTitleLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldStageTitle, v))
}

// StageTitleContains applies the Contains predicate on the "stage_title" field.
func StageTitleContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldStageTitle, v))
}

// StageTitleHasPrefix applies the HasPrefix predicate on the "stage_title" field.
func StageTitleHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldStageTitle, v))
}

// StageTitleHasSuffix applies the HasSuffix predicate on the "stage_title" field.
func StageTitleHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldStageTitle, v))
}

// StageTitleEqualFold applies the EqualFold predicate on the "stage_title" field.
func StageTitleEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldStageTitle, v))
}

// StageTitleContainsFold applies the ContainsFold predicate on the "stage_title" field.
func StageTitleContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldStageTitle, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldDescription, v))
}

// ResourceTypeEQ applies the EQ predicate on the "resource_type" field.
func ResourceTypeEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldResourceType, v))
}

// ResourceTypeNEQ applies the NEQ predicate on the "resource_type" field.
func ResourceTypeNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldResourceType, v))
}

// ResourceTypeIn applies the In predicate on the "resource_type" field.
func ResourceTypeIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldResourceType, vs...))
}

// ResourceTypeNotIn applies the NotIn predicate on the "resource_type" field.
func ResourceTypeNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldResourceType, vs...))
}

// ResourceTypeGT applies the GT predicate on the "resource_type" field.
func ResourceTypeGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldResourceType, v))
}

// ResourceTypeGTE applies the GTE predicate on the "resource_type" field.
func ResourceTypeGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldResourceType, v))
}

// ResourceTypeLT applies the LT predicate on the "resource_type" field.
func ResourceTypeLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldResourceType, v))
}

// ResourceTypeLTE applies the LTE predicate on the "resource_type" field.
func ResourceTypeLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldResourceType, v))
}

// ResourceTypeContains applies the Contains predicate on the "resource_type" field.
func ResourceTypeContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldResourceType, v))
}

// ResourceTypeHasPrefix applies the HasPrefix predicate on the "resource_type" field.
func ResourceTypeHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldResourceType, v))
}

// ResourceTypeHasSuffix applies the HasSuffix predicate on the "resource_type" field.
func ResourceTypeHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldResourceType, v))
}

// ResourceTypeEqualFold applies the EqualFold predicate on the "resource_type" field.
func ResourceTypeEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldResourceType, v))
}

// ResourceTypeContainsFold applies the ContainsFold predicate on the "resource_type" field.
func ResourceTypeContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldResourceType, v))
}

// StudyLinkEQ applies the EQ predicate on the "study_link" field.
func StudyLinkEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStudyLink, v))
}

// StudyLinkNEQ applies the NEQ predicate on the "study_link" field.
func StudyLinkNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldStudyLink, v))
}

// StudyLinkIn applies the In predicate on the "study_link" field.
func StudyLinkIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldStudyLink, vs...))
}

// StudyLinkNotIn applies the NotIn predicate on the "study_link" field.
func StudyLinkNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldStudyLink, vs...))
}

// StudyLinkGT applies the GT predicate on the "study_link" field.
func StudyLinkGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldStudyLink, v))
}

// StudyLinkGTE applies the GTE predicate on the "study_link" field.
func StudyLinkGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldStudyLink, v))
}

// StudyLinkLT applies the LT predicate on the "study_link" field.
func StudyLinkLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldStudyLink, v))
}

// StudyLinkLTE applies the LTE predicate on the "study_link" field.
func StudyLinkLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldStudyLink, v))
}

// StudyLinkContains applies the Contains predicate on the "study_link" field.
func StudyLinkContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldStudyLink, v))
}

// StudyLinkHasPrefix applies the HasPrefix predicate on the "study_link" field.
func StudyLinkHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldStudyLink, v))
}

// StudyLinkHasSuffix applies the HasSuffix predicate on the "study_link" field.
func StudyLinkHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldStudyLink, v))
}

// StudyLinkEqualFold applies the EqualFold predicate on the "study_link" field.
func StudyLinkEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldStudyLink, v))
}

// StudyLinkContainsFold applies the ContainsFold predicate on the "study_link" field.
func StudyLinkContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldStudyLink, v))
}

// IsUnlockedEQ applies the EQ predicate on the "is_unlocked" field.
func IsUnlockedEQ(v bool) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldIsUnlocked, v))
}

// IsUnlockedNEQ applies the NEQ predicate on the "is_unlocked" field.
func IsUnlockedNEQ(v bool) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldIsUnlocked, v))
}

// IsCompletedEQ applies the EQ predicate on the "is_completed" field.
func IsCompletedEQ(v bool) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldIsCompleted, v))
}

// IsCompletedNEQ applies the NEQ predicate on the "is_completed" field.
func IsCompletedNEQ(v bool) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldIsCompleted, v))
}

// TestScoreEQ applies the EQ predicate on the "test_score" field.
func TestScoreEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTestScore, v))
}

// TestScoreNEQ applies the NEQ predicate on the "test_score" field.
func TestScoreNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldTestScore, v))
}

// TestScoreIn applies the In predicate on the "test_score" field.
func TestScoreIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldTestScore, vs...))
}

// TestScoreNotIn applies the NotIn predicate on the "test_score" field.
func TestScoreNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldTestScore, vs...))
}

// TestScoreGT applies the GT predicate on the "test_score" field.
func TestScoreGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldTestScore, v))
}

// TestScoreGTE applies the GTE predicate on the "test_score" field.
func TestScoreGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldTestScore, v))
}

// TestScoreLT applies the LT predicate on the "test_score" field.
func TestScoreLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldTestScore, v))
}

// TestScoreLTE applies the LTE predicate on the "test_score" field.
func TestScoreLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldTestScore, v))
}

// TestScoreIsNil applies the IsNil predicate on the "test_score" field.
func TestScoreIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldTestScore))
}

// TestScoreNotNil applies the NotNil predicate on the "test_score" field.
func TestScoreNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldTestScore))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldCompletedAt))
}

// HasRoadmap applies the HasEdge predicate on the "roadmap" edge.
func HasRoadmap() predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RoadmapTable, RoadmapColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoadmapWith applies the HasEdge predicate on the "roadmap" edge with a given conditions (other predicates).
func HasRoadmapWith(preds ...predicate.Roadmap) predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := newRoadmapStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Step) predicate.Step {
	return predicate.Step(sql.NotPredicates(p))
}

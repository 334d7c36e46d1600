// Code generated by ent, DO NOT EDIT.

package step

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the step type in the database.
	Label = "step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStageIndex holds the string denoting the stage_index field in the database.
	FieldStageIndex = "stage_index"
	// FieldStepIndex holds the string denoting the step_index field in the database.
	FieldStepIndex = "step_index"
	// FieldStageTitle holds the string denoting the stage_title field in the database.
	FieldStageTitle = "stage_title"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldResourceType holds the string denoting the resource_type field in the database.
	FieldResourceType = "resource_type"
	// FieldStudyLink holds the string denoting the study_link field in the database.
	FieldStudyLink = "study_link"
	// FieldIsUnlocked holds the string denoting the is_unlocked field in the database.
	FieldIsUnlocked = "is_unlocked"
	// FieldIsCompleted holds the string denoting the is_completed field in the database.
	FieldIsCompleted = "is_completed"
	// FieldTestScore holds the string denoting the test_score field in the database.
	FieldTestScore = "test_score"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeRoadmap holds the string denoting the roadmap edge name in mutations.
	EdgeRoadmap = "roadmap"
	// Table holds the table name of the step in the database.
	Table = "steps"
	// RoadmapTable is the table that holds the roadmap relation/edge.
	RoadmapTable = "steps"
	// RoadmapInverseTable is the table name for the Roadmap entity.
	// It exists in this package in order to avoid circular dependency with the "roadmap" package.
	RoadmapInverseTable = "roadmaps"
	// RoadmapColumn is the table column denoting the roadmap relation/edge.
	RoadmapColumn = "roadmap_steps"
)

// Columns holds all SQL columns for step fields.
var Columns = []string{
	FieldID,
	FieldStageIndex,
	FieldStepIndex,
	FieldStageTitle,
	FieldTitle,
	FieldDescription,
	FieldResourceType,
	FieldStudyLink,
	FieldIsUnlocked,
	FieldIsCompleted,
	FieldTestScore,
	FieldCompletedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "steps"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"roadmap_steps",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// StageIndexValidator is a validator for the "stage_index" field. It is called by the builders before save.
	StageIndexValidator func(int) error
	// StepIndexValidator is a validator for the "step_index" field. It is called by the builders before save.
	StepIndexValidator func(int) error
	// StageTitleValidator is a validator for the "stage_title" field. It is called by the builders before save.
	StageTitleValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultIsUnlocked holds the default value on creation for the "is_unlocked" field.
	DefaultIsUnlocked bool
	// DefaultIsCompleted holds the default value on creation for the "is_completed" field.
	DefaultIsCompleted bool
	// TestScoreValidator is a validator for the "test_score" field. It is called by the builders before save.
	TestScoreValidator func(int) error
)

// OrderOption defines the ordering options for the Step queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStageIndex orders the results by the stage_index field.
func ByStageIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageIndex, opts...).ToFunc()
}

// ByStepIndex orders the results by the step_index field.
func ByStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepIndex, opts...).ToFunc()
}

// ByStageTitle orders the results by the stage_title field.
func ByStageTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageTitle, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByResourceType orders the results by the resource_type field.
func ByResourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceType, opts...).ToFunc()
}

// ByStudyLink orders the results by the study_link field.
func ByStudyLink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyLink, opts...).ToFunc()
}

// ByIsUnlocked orders the results by the is_unlocked field.
func ByIsUnlocked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsUnlocked, opts...).ToFunc()
}

// ByIsCompleted orders the results by the is_completed field.
func ByIsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCompleted, opts...).ToFunc()
}

// ByTestScore orders the results by the test_score field.
func ByTestScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestScore, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByRoadmapField orders the results by roadmap field.
func ByRoadmapField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoadmapStep(), sql.OrderByField(field, opts...))
	}
}
func newRoadmapStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoadmapInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RoadmapTable, RoadmapColumn),
	)
}

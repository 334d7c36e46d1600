// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FeedbackEventsColumns holds the columns for the "feedback_events" table.
	FeedbackEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "rating", Type: field.TypeInt},
		{Name: "comment", Type: field.TypeString, Nullable: true},
	}
	// FeedbackEventsTable holds the schema information for the "feedback_events" table.
	FeedbackEventsTable = &schema.Table{
		Name:       "feedback_events",
		Columns:    FeedbackEventsColumns,
		PrimaryKey: []*schema.Column{FeedbackEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feedbackevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[1]},
			},
			{
				Name:    "feedbackevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[2]},
			},
		},
	}
	// GeneratedQuizsColumns holds the columns for the "generated_quizs" table.
	GeneratedQuizsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "identifier", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime},
	}
	// GeneratedQuizsTable holds the schema information for the "generated_quizs" table.
	GeneratedQuizsTable = &schema.Table{
		Name:       "generated_quizs",
		Columns:    GeneratedQuizsColumns,
		PrimaryKey: []*schema.Column{GeneratedQuizsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generatedquiz_identifier_generated_at",
				Unique:  false,
				Columns: []*schema.Column{GeneratedQuizsColumns[1], GeneratedQuizsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "request_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
		},
	}
	// PracticeAttemptsColumns holds the columns for the "practice_attempts" table.
	PracticeAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "skill", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "code", Type: field.TypeString, Size: 2147483647},
		{Name: "overall_status", Type: field.TypeString},
		{Name: "summary_feedback", Type: field.TypeString, Size: 2147483647},
		{Name: "scores", Type: field.TypeJSON},
	}
	// PracticeAttemptsTable holds the schema information for the "practice_attempts" table.
	PracticeAttemptsTable = &schema.Table{
		Name:       "practice_attempts",
		Columns:    PracticeAttemptsColumns,
		PrimaryKey: []*schema.Column{PracticeAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practiceattempt_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeAttemptsColumns[1]},
			},
			{
				Name:    "practiceattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeAttemptsColumns[2]},
			},
			{
				Name:    "practiceattempt_user_id_skill",
				Unique:  false,
				Columns: []*schema.Column{PracticeAttemptsColumns[2], PracticeAttemptsColumns[3]},
			},
		},
	}
	// PracticeQuestionsColumns holds the columns for the "practice_questions" table.
	PracticeQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "identifier", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "examples", Type: field.TypeJSON},
		{Name: "constraints", Type: field.TypeString, Nullable: true},
		{Name: "default_stdin", Type: field.TypeString, Nullable: true},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime},
	}
	// PracticeQuestionsTable holds the schema information for the "practice_questions" table.
	PracticeQuestionsTable = &schema.Table{
		Name:       "practice_questions",
		Columns:    PracticeQuestionsColumns,
		PrimaryKey: []*schema.Column{PracticeQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicequestion_identifier_generated_at",
				Unique:  false,
				Columns: []*schema.Column{PracticeQuestionsColumns[1], PracticeQuestionsColumns[7]},
			},
		},
	}
	// QuizResultsColumns holds the columns for the "quiz_results" table.
	QuizResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "roadmap_id", Type: field.TypeUUID},
		{Name: "stage_index", Type: field.TypeInt},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "quiz_title", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "detail", Type: field.TypeJSON},
	}
	// QuizResultsTable holds the schema information for the "quiz_results" table.
	QuizResultsTable = &schema.Table{
		Name:       "quiz_results",
		Columns:    QuizResultsColumns,
		PrimaryKey: []*schema.Column{QuizResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizresult_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[1]},
			},
			{
				Name:    "quizresult_user_id",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[2]},
			},
			{
				Name:    "quizresult_roadmap_id_stage_index_step_index",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[3], QuizResultsColumns[4], QuizResultsColumns[5]},
			},
		},
	}
	// RoadmapsColumns holds the columns for the "roadmaps" table.
	RoadmapsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "domain", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RoadmapsTable holds the schema information for the "roadmaps" table.
	RoadmapsTable = &schema.Table{
		Name:       "roadmaps",
		Columns:    RoadmapsColumns,
		PrimaryKey: []*schema.Column{RoadmapsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "roadmap_user_id_domain",
				Unique:  true,
				Columns: []*schema.Column{RoadmapsColumns[1], RoadmapsColumns[2]},
			},
			{
				Name:    "roadmap_user_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{RoadmapsColumns[1], RoadmapsColumns[5]},
			},
		},
	}
	// SkillGapAnalysesColumns holds the columns for the "skill_gap_analyses" table.
	SkillGapAnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "domain", Type: field.TypeString},
		{Name: "acquired_skills", Type: field.TypeJSON},
		{Name: "missing_skills", Type: field.TypeJSON},
		{Name: "recommendations", Type: field.TypeJSON},
	}
	// SkillGapAnalysesTable holds the schema information for the "skill_gap_analyses" table.
	SkillGapAnalysesTable = &schema.Table{
		Name:       "skill_gap_analyses",
		Columns:    SkillGapAnalysesColumns,
		PrimaryKey: []*schema.Column{SkillGapAnalysesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skillgapanalysis_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SkillGapAnalysesColumns[1]},
			},
			{
				Name:    "skillgapanalysis_user_id_domain",
				Unique:  false,
				Columns: []*schema.Column{SkillGapAnalysesColumns[2], SkillGapAnalysesColumns[3]},
			},
		},
	}
	// StepsColumns holds the columns for the "steps" table.
	StepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stage_index", Type: field.TypeInt},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "stage_title", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "study_link", Type: field.TypeString},
		{Name: "is_unlocked", Type: field.TypeBool, Default: false},
		{Name: "is_completed", Type: field.TypeBool, Default: false},
		{Name: "test_score", Type: field.TypeInt, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "roadmap_steps", Type: field.TypeUUID},
	}
	// StepsTable holds the schema information for the "steps" table.
	StepsTable = &schema.Table{
		Name:       "steps",
		Columns:    StepsColumns,
		PrimaryKey: []*schema.Column{StepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "steps_roadmaps_steps",
				Columns:    []*schema.Column{StepsColumns[12]},
				RefColumns: []*schema.Column{RoadmapsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "step_stage_index_step_index_roadmap_steps",
				Unique:  true,
				Columns: []*schema.Column{StepsColumns[1], StepsColumns[2], StepsColumns[12]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "skills", Type: field.TypeJSON, Nullable: true},
		{Name: "domains", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FeedbackEventsTable,
		GeneratedQuizsTable,
		LlmRequestEventsTable,
		PracticeAttemptsTable,
		PracticeQuestionsTable,
		QuizResultsTable,
		RoadmapsTable,
		SkillGapAnalysesTable,
		StepsTable,
		UsersTable,
	}
)

func init() {
	StepsTable.ForeignKeys[0].RefTable = RoadmapsTable
}

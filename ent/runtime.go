// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/pathwise/ent/feedbackevent"
	"github.com/abhisek/pathwise/ent/generatedquiz"
	"github.com/abhisek/pathwise/ent/llmrequestevent"
	"github.com/abhisek/pathwise/ent/practiceattempt"
	"github.com/abhisek/pathwise/ent/practicequestion"
	"github.com/abhisek/pathwise/ent/quizresult"
	"github.com/abhisek/pathwise/ent/roadmap"
	"github.com/abhisek/pathwise/ent/schema"
	"github.com/abhisek/pathwise/ent/skillgapanalysis"
	"github.com/abhisek/pathwise/ent/step"
	"github.com/abhisek/pathwise/ent/user"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	feedbackeventMixin := schema.FeedbackEvent{}.Mixin()
	feedbackeventMixinFields0 := feedbackeventMixin[0].Fields()
	_ = feedbackeventMixinFields0
	feedbackeventFields := schema.FeedbackEvent{}.Fields()
	_ = feedbackeventFields
	// feedbackeventDescTimestamp is the schema descriptor for timestamp field.
	feedbackeventDescTimestamp := feedbackeventMixinFields0[0].Descriptor()
	// feedbackevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	feedbackevent.DefaultTimestamp = feedbackeventDescTimestamp.Default.(func() time.Time)
	// feedbackeventDescKind is the schema descriptor for kind field.
	feedbackeventDescKind := feedbackeventFields[2].Descriptor()
	// feedbackevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	feedbackevent.KindValidator = feedbackeventDescKind.Validators[0].(func(string) error)
	// feedbackeventDescItemID is the schema descriptor for item_id field.
	feedbackeventDescItemID := feedbackeventFields[3].Descriptor()
	// feedbackevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	feedbackevent.ItemIDValidator = feedbackeventDescItemID.Validators[0].(func(string) error)
	// feedbackeventDescRating is the schema descriptor for rating field.
	feedbackeventDescRating := feedbackeventFields[4].Descriptor()
	// feedbackevent.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	feedbackevent.RatingValidator = feedbackeventDescRating.Validators[0].(func(int) error)
	// feedbackeventDescID is the schema descriptor for id field.
	feedbackeventDescID := feedbackeventFields[0].Descriptor()
	// feedbackevent.DefaultID holds the default value on creation for the id field.
	feedbackevent.DefaultID = feedbackeventDescID.Default.(func() uuid.UUID)
	generatedquizFields := schema.GeneratedQuiz{}.Fields()
	_ = generatedquizFields
	// generatedquizDescIdentifier is the schema descriptor for identifier field.
	generatedquizDescIdentifier := generatedquizFields[1].Descriptor()
	// generatedquiz.IdentifierValidator is a validator for the "identifier" field. It is called by the builders before save.
	generatedquiz.IdentifierValidator = generatedquizDescIdentifier.Validators[0].(func(string) error)
	// generatedquizDescTitle is the schema descriptor for title field.
	generatedquizDescTitle := generatedquizFields[2].Descriptor()
	// generatedquiz.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	generatedquiz.TitleValidator = generatedquizDescTitle.Validators[0].(func(string) error)
	// generatedquizDescGeneratedAt is the schema descriptor for generated_at field.
	generatedquizDescGeneratedAt := generatedquizFields[4].Descriptor()
	// generatedquiz.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	generatedquiz.DefaultGeneratedAt = generatedquizDescGeneratedAt.Default.(func() time.Time)
	// generatedquizDescLastUsedAt is the schema descriptor for last_used_at field.
	generatedquizDescLastUsedAt := generatedquizFields[5].Descriptor()
	// generatedquiz.DefaultLastUsedAt holds the default value on creation for the last_used_at field.
	generatedquiz.DefaultLastUsedAt = generatedquizDescLastUsedAt.Default.(func() time.Time)
	// generatedquizDescID is the schema descriptor for id field.
	generatedquizDescID := generatedquizFields[0].Descriptor()
	// generatedquiz.DefaultID holds the default value on creation for the id field.
	generatedquiz.DefaultID = generatedquizDescID.Default.(func() uuid.UUID)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	practiceattemptMixin := schema.PracticeAttempt{}.Mixin()
	practiceattemptMixinFields0 := practiceattemptMixin[0].Fields()
	_ = practiceattemptMixinFields0
	practiceattemptFields := schema.PracticeAttempt{}.Fields()
	_ = practiceattemptFields
	// practiceattemptDescTimestamp is the schema descriptor for timestamp field.
	practiceattemptDescTimestamp := practiceattemptMixinFields0[0].Descriptor()
	// practiceattempt.DefaultTimestamp holds the default value on creation for the timestamp field.
	practiceattempt.DefaultTimestamp = practiceattemptDescTimestamp.Default.(func() time.Time)
	// practiceattemptDescSkill is the schema descriptor for skill field.
	practiceattemptDescSkill := practiceattemptFields[2].Descriptor()
	// practiceattempt.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	practiceattempt.SkillValidator = practiceattemptDescSkill.Validators[0].(func(string) error)
	// practiceattemptDescDifficulty is the schema descriptor for difficulty field.
	practiceattemptDescDifficulty := practiceattemptFields[3].Descriptor()
	// practiceattempt.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	practiceattempt.DifficultyValidator = practiceattemptDescDifficulty.Validators[0].(func(string) error)
	// practiceattemptDescLanguage is the schema descriptor for language field.
	practiceattemptDescLanguage := practiceattemptFields[4].Descriptor()
	// practiceattempt.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	practiceattempt.LanguageValidator = practiceattemptDescLanguage.Validators[0].(func(string) error)
	// practiceattemptDescOverallStatus is the schema descriptor for overall_status field.
	practiceattemptDescOverallStatus := practiceattemptFields[6].Descriptor()
	// practiceattempt.OverallStatusValidator is a validator for the "overall_status" field. It is called by the builders before save.
	practiceattempt.OverallStatusValidator = practiceattemptDescOverallStatus.Validators[0].(func(string) error)
	// practiceattemptDescID is the schema descriptor for id field.
	practiceattemptDescID := practiceattemptFields[0].Descriptor()
	// practiceattempt.DefaultID holds the default value on creation for the id field.
	practiceattempt.DefaultID = practiceattemptDescID.Default.(func() uuid.UUID)
	practicequestionFields := schema.PracticeQuestion{}.Fields()
	_ = practicequestionFields
	// practicequestionDescIdentifier is the schema descriptor for identifier field.
	practicequestionDescIdentifier := practicequestionFields[1].Descriptor()
	// practicequestion.IdentifierValidator is a validator for the "identifier" field. It is called by the builders before save.
	practicequestion.IdentifierValidator = practicequestionDescIdentifier.Validators[0].(func(string) error)
	// practicequestionDescTitle is the schema descriptor for title field.
	practicequestionDescTitle := practicequestionFields[2].Descriptor()
	// practicequestion.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	practicequestion.TitleValidator = practicequestionDescTitle.Validators[0].(func(string) error)
	// practicequestionDescDescription is the schema descriptor for description field.
	practicequestionDescDescription := practicequestionFields[3].Descriptor()
	// practicequestion.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	practicequestion.DescriptionValidator = practicequestionDescDescription.Validators[0].(func(string) error)
	// practicequestionDescGeneratedAt is the schema descriptor for generated_at field.
	practicequestionDescGeneratedAt := practicequestionFields[7].Descriptor()
	// practicequestion.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	practicequestion.DefaultGeneratedAt = practicequestionDescGeneratedAt.Default.(func() time.Time)
	// practicequestionDescLastUsedAt is the schema descriptor for last_used_at field.
	practicequestionDescLastUsedAt := practicequestionFields[8].Descriptor()
	// practicequestion.DefaultLastUsedAt holds the default value on creation for the last_used_at field.
	practicequestion.DefaultLastUsedAt = practicequestionDescLastUsedAt.Default.(func() time.Time)
	// practicequestionDescID is the schema descriptor for id field.
	practicequestionDescID := practicequestionFields[0].Descriptor()
	// practicequestion.DefaultID holds the default value on creation for the id field.
	practicequestion.DefaultID = practicequestionDescID.Default.(func() uuid.UUID)
	quizresultMixin := schema.QuizResult{}.Mixin()
	quizresultMixinFields0 := quizresultMixin[0].Fields()
	_ = quizresultMixinFields0
	quizresultFields := schema.QuizResult{}.Fields()
	_ = quizresultFields
	// quizresultDescTimestamp is the schema descriptor for timestamp field.
	quizresultDescTimestamp := quizresultMixinFields0[0].Descriptor()
	// quizresult.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizresult.DefaultTimestamp = quizresultDescTimestamp.Default.(func() time.Time)
	// quizresultDescStageIndex is the schema descriptor for stage_index field.
	quizresultDescStageIndex := quizresultFields[3].Descriptor()
	// quizresult.StageIndexValidator is a validator for the "stage_index" field. It is called by the builders before save.
	quizresult.StageIndexValidator = quizresultDescStageIndex.Validators[0].(func(int) error)
	// quizresultDescStepIndex is the schema descriptor for step_index field.
	quizresultDescStepIndex := quizresultFields[4].Descriptor()
	// quizresult.StepIndexValidator is a validator for the "step_index" field. It is called by the builders before save.
	quizresult.StepIndexValidator = quizresultDescStepIndex.Validators[0].(func(int) error)
	// quizresultDescQuizTitle is the schema descriptor for quiz_title field.
	quizresultDescQuizTitle := quizresultFields[5].Descriptor()
	// quizresult.QuizTitleValidator is a validator for the "quiz_title" field. It is called by the builders before save.
	quizresult.QuizTitleValidator = quizresultDescQuizTitle.Validators[0].(func(string) error)
	// quizresultDescScore is the schema descriptor for score field.
	quizresultDescScore := quizresultFields[6].Descriptor()
	// quizresult.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	quizresult.ScoreValidator = quizresultDescScore.Validators[0].(func(int) error)
	// quizresultDescID is the schema descriptor for id field.
	quizresultDescID := quizresultFields[0].Descriptor()
	// quizresult.DefaultID holds the default value on creation for the id field.
	quizresult.DefaultID = quizresultDescID.Default.(func() uuid.UUID)
	roadmapFields := schema.Roadmap{}.Fields()
	_ = roadmapFields
	// roadmapDescDomain is the schema descriptor for domain field.
	roadmapDescDomain := roadmapFields[2].Descriptor()
	// roadmap.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	roadmap.DomainValidator = roadmapDescDomain.Validators[0].(func(string) error)
	// roadmapDescVersion is the schema descriptor for version field.
	roadmapDescVersion := roadmapFields[3].Descriptor()
	// roadmap.DefaultVersion holds the default value on creation for the version field.
	roadmap.DefaultVersion = roadmapDescVersion.Default.(int)
	// roadmapDescCreatedAt is the schema descriptor for created_at field.
	roadmapDescCreatedAt := roadmapFields[4].Descriptor()
	// roadmap.DefaultCreatedAt holds the default value on creation for the created_at field.
	roadmap.DefaultCreatedAt = roadmapDescCreatedAt.Default.(func() time.Time)
	// roadmapDescUpdatedAt is the schema descriptor for updated_at field.
	roadmapDescUpdatedAt := roadmapFields[5].Descriptor()
	// roadmap.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	roadmap.DefaultUpdatedAt = roadmapDescUpdatedAt.Default.(func() time.Time)
	// roadmapDescID is the schema descriptor for id field.
	roadmapDescID := roadmapFields[0].Descriptor()
	// roadmap.DefaultID holds the default value on creation for the id field.
	roadmap.DefaultID = roadmapDescID.Default.(func() uuid.UUID)
	skillgapanalysisMixin := schema.SkillGapAnalysis{}.Mixin()
	skillgapanalysisMixinFields0 := skillgapanalysisMixin[0].Fields()
	_ = skillgapanalysisMixinFields0
	skillgapanalysisFields := schema.SkillGapAnalysis{}.Fields()
	_ = skillgapanalysisFields
	// skillgapanalysisDescTimestamp is the schema descriptor for timestamp field.
	skillgapanalysisDescTimestamp := skillgapanalysisMixinFields0[0].Descriptor()
	// skillgapanalysis.DefaultTimestamp holds the default value on creation for the timestamp field.
	skillgapanalysis.DefaultTimestamp = skillgapanalysisDescTimestamp.Default.(func() time.Time)
	// skillgapanalysisDescDomain is the schema descriptor for domain field.
	skillgapanalysisDescDomain := skillgapanalysisFields[2].Descriptor()
	// skillgapanalysis.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	skillgapanalysis.DomainValidator = skillgapanalysisDescDomain.Validators[0].(func(string) error)
	// skillgapanalysisDescID is the schema descriptor for id field.
	skillgapanalysisDescID := skillgapanalysisFields[0].Descriptor()
	// skillgapanalysis.DefaultID holds the default value on creation for the id field.
	skillgapanalysis.DefaultID = skillgapanalysisDescID.Default.(func() uuid.UUID)
	stepFields := schema.Step{}.Fields()
	_ = stepFields
	// stepDescStageIndex is the schema descriptor for stage_index field.
	stepDescStageIndex := stepFields[0].Descriptor()
	// step.StageIndexValidator is a validator for the "stage_index" field. It is called by the builders before save.
	step.StageIndexValidator = stepDescStageIndex.Validators[0].(func(int) error)
	// stepDescStepIndex is the schema descriptor for step_index field.
	stepDescStepIndex := stepFields[1].Descriptor()
	// step.StepIndexValidator is a validator for the "step_index" field. It is called by the builders before save.
	step.StepIndexValidator = stepDescStepIndex.Validators[0].(func(int) error)
	// stepDescStageTitle is the schema descriptor for stage_title field.
	stepDescStageTitle := stepFields[2].Descriptor()
	// step.StageTitleValidator is a validator for the "stage_title" field. It is called by the builders before save.
	step.StageTitleValidator = stepDescStageTitle.Validators[0].(func(string) error)
	// stepDescTitle is the schema descriptor for title field.
	stepDescTitle := stepFields[3].Descriptor()
	// step.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	step.TitleValidator = stepDescTitle.Validators[0].(func(string) error)
	// stepDescIsUnlocked is the schema descriptor for is_unlocked field.
	stepDescIsUnlocked := stepFields[7].Descriptor()
	// step.DefaultIsUnlocked holds the default value on creation for the is_unlocked field.
	step.DefaultIsUnlocked = stepDescIsUnlocked.Default.(bool)
	// stepDescIsCompleted is the schema descriptor for is_completed field.
	stepDescIsCompleted := stepFields[8].Descriptor()
	// step.DefaultIsCompleted holds the default value on creation for the is_completed field.
	step.DefaultIsCompleted = stepDescIsCompleted.Default.(bool)
	// stepDescTestScore is the schema descriptor for test_score field.
	stepDescTestScore := stepFields[9].Descriptor()
	// step.TestScoreValidator is a validator for the "test_score" field. It is called by the builders before save.
	step.TestScoreValidator = stepDescTestScore.Validators[0].(func(int) error)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}

package generator

// SkeletonStep is one generated learning step before it gains any
// progression state.
type SkeletonStep struct {
	Title        string
	Description  string
	ResourceType string
	StudyLink    string
}

// SkeletonStage is an ordered group of generated steps.
type SkeletonStage struct {
	Title string
	Steps []SkeletonStep
}

// Skeleton is the generated structure of a roadmap: stages and steps
// only, no unlock or completion state.
type Skeleton struct {
	Stages []SkeletonStage
}

// Question types.
const (
	QuestionMultipleChoice = "multiple-choice"
	QuestionShortAnswer    = "short-answer"
	QuestionCoding         = "coding"
)

// QuizQuestion is one generated question with its correct answer.
type QuizQuestion struct {
	Text          string
	Type          string
	Options       []string
	CorrectAnswer string
}

// Quiz is a generated assessment for a roadmap step.
type Quiz struct {
	Title     string
	Questions []QuizQuestion
}

// SkillComparison is the result of comparing a user's skills against
// what a target domain requires.
type SkillComparison struct {
	AcquiredSkills  []string
	MissingSkills   []string
	Recommendations []string
}

// Judgment is the verdict on a freeform answer.
type Judgment struct {
	Correct     bool
	Explanation string
}

// PracticeExample is a sample input/output pair for a practice problem.
type PracticeExample struct {
	Input  string
	Output string
}

// PracticeSpec is a generated coding practice problem.
type PracticeSpec struct {
	Title        string
	Description  string
	Examples     []PracticeExample
	Constraints  string
	DefaultStdin string
}

// Review score dimensions, each rated 1-10.
var ReviewDimensions = []string{"correctness", "efficiency", "readability", "robustness"}

// PracticeReview is the AI assessment of a submitted solution.
type PracticeReview struct {
	OverallStatus   string
	SummaryFeedback string
	Scores          map[string]int
}

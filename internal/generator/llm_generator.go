package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// skeletonOutput is the raw LLM response before validation.
type skeletonOutput struct {
	Stages []struct {
		Title string `json:"title"`
		Steps []struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ResourceType string `json:"resource_type"`
			StudyLink    string `json:"study_link"`
		} `json:"steps"`
	} `json:"stages"`
}

func (g *LLMGenerator) RoadmapSkeleton(ctx context.Context, domain string, skills []string) (*Skeleton, error) {
	ctx = llm.WithPurpose(ctx, "roadmap-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: skeletonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSkeletonMessage(domain, skills)},
		},
		Schema:      SkeletonSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, apperr.GenerationFailed(err)
	}

	var raw skeletonOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, apperr.GenerationFailed(fmt.Errorf("parse roadmap response: %w", err))
	}

	if len(raw.Stages) == 0 {
		return nil, apperr.GenerationFailed(fmt.Errorf("roadmap has no stages"))
	}
	sk := &Skeleton{}
	for i, st := range raw.Stages {
		if st.Title == "" {
			return nil, apperr.GenerationFailed(fmt.Errorf("stage %d has no title", i))
		}
		if len(st.Steps) == 0 {
			return nil, apperr.GenerationFailed(fmt.Errorf("stage %q has no steps", st.Title))
		}
		stage := SkeletonStage{Title: st.Title}
		for j, sp := range st.Steps {
			if sp.Title == "" {
				return nil, apperr.GenerationFailed(fmt.Errorf("stage %q step %d has no title", st.Title, j))
			}
			stage.Steps = append(stage.Steps, SkeletonStep{
				Title:        sp.Title,
				Description:  sp.Description,
				ResourceType: sp.ResourceType,
				StudyLink:    sp.StudyLink,
			})
		}
		sk.Stages = append(sk.Stages, stage)
	}
	return sk, nil
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Title     string `json:"title"`
	Questions []struct {
		Text          string   `json:"text"`
		Type          string   `json:"type"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
	} `json:"questions"`
}

func (g *LLMGenerator) Quiz(ctx context.Context, title, description string) (*Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizMessage(title, description, g.config.QuizQuestionMin, g.config.QuizQuestionMax)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, apperr.GenerationFailed(err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, apperr.GenerationFailed(fmt.Errorf("parse quiz response: %w", err))
	}

	if len(raw.Questions) == 0 {
		return nil, apperr.GenerationFailed(fmt.Errorf("quiz has no questions"))
	}
	quiz := &Quiz{Title: raw.Title}
	if quiz.Title == "" {
		quiz.Title = title
	}
	for i, q := range raw.Questions {
		if q.Text == "" || q.CorrectAnswer == "" {
			return nil, apperr.GenerationFailed(fmt.Errorf("question %d is incomplete", i))
		}
		switch q.Type {
		case QuestionMultipleChoice:
			if len(q.Options) != 4 {
				return nil, apperr.GenerationFailed(fmt.Errorf("question %d has %d options, want 4", i, len(q.Options)))
			}
			if !containsString(q.Options, q.CorrectAnswer) {
				return nil, apperr.GenerationFailed(fmt.Errorf("question %d answer is not among its options", i))
			}
		case QuestionShortAnswer, QuestionCoding:
			// No options.
		default:
			return nil, apperr.GenerationFailed(fmt.Errorf("question %d has unknown type %q", i, q.Type))
		}
		quiz.Questions = append(quiz.Questions, QuizQuestion{
			Text:          q.Text,
			Type:          q.Type,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return quiz, nil
}

// comparisonOutput is the raw LLM response before validation.
type comparisonOutput struct {
	AcquiredSkills  []string `json:"acquired_skills"`
	MissingSkills   []string `json:"missing_skills"`
	Recommendations []string `json:"recommendations"`
}

func (g *LLMGenerator) CompareSkills(ctx context.Context, domain string, skills []string) (*SkillComparison, error) {
	ctx = llm.WithPurpose(ctx, "skill-compare")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: comparisonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildComparisonMessage(domain, skills)},
		},
		Schema:      ComparisonSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, apperr.GenerationFailed(err)
	}

	var raw comparisonOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, apperr.GenerationFailed(fmt.Errorf("parse comparison response: %w", err))
	}

	// All three arrays must be present. An empty array is valid data
	// (a user can have every skill); a missing one means the model did
	// not follow the schema.
	if raw.AcquiredSkills == nil || raw.MissingSkills == nil || raw.Recommendations == nil {
		return nil, apperr.GenerationFailed(fmt.Errorf("comparison response is missing required fields"))
	}
	return &SkillComparison{
		AcquiredSkills:  raw.AcquiredSkills,
		MissingSkills:   raw.MissingSkills,
		Recommendations: raw.Recommendations,
	}, nil
}

// judgmentOutput is the raw LLM response.
type judgmentOutput struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

func (g *LLMGenerator) JudgeAnswer(ctx context.Context, question, correctAnswer, userAnswer string) (*Judgment, error) {
	ctx = llm.WithPurpose(ctx, "answer-judge")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: judgmentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildJudgmentMessage(question, correctAnswer, userAnswer)},
		},
		Schema:    JudgmentSchema,
		MaxTokens: 512,
		// Grading wants determinism, not creativity.
		Temperature: 0,
	})
	if err != nil {
		return nil, apperr.GenerationFailed(err)
	}

	var raw judgmentOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, apperr.GenerationFailed(fmt.Errorf("parse judgment response: %w", err))
	}
	return &Judgment{Correct: raw.Correct, Explanation: raw.Explanation}, nil
}

// practiceOutput is the raw LLM response before validation.
type practiceOutput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Examples    []struct {
		Input  string `json:"input"`
		Output string `json:"output"`
	} `json:"examples"`
	Constraints  string `json:"constraints"`
	DefaultStdin string `json:"default_stdin"`
}

func (g *LLMGenerator) PracticeQuestion(ctx context.Context, skill, difficulty string) (*PracticeSpec, error) {
	ctx = llm.WithPurpose(ctx, "practice-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: practiceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPracticeMessage(skill, difficulty)},
		},
		Schema:      PracticeSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, apperr.GenerationFailed(err)
	}

	var raw practiceOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, apperr.GenerationFailed(fmt.Errorf("parse practice response: %w", err))
	}

	if raw.Title == "" || raw.Description == "" {
		return nil, apperr.GenerationFailed(fmt.Errorf("practice question is incomplete"))
	}
	if len(raw.Examples) == 0 {
		return nil, apperr.GenerationFailed(fmt.Errorf("practice question has no examples"))
	}
	spec := &PracticeSpec{
		Title:        raw.Title,
		Description:  raw.Description,
		Constraints:  raw.Constraints,
		DefaultStdin: raw.DefaultStdin,
	}
	for _, ex := range raw.Examples {
		spec.Examples = append(spec.Examples, PracticeExample{Input: ex.Input, Output: ex.Output})
	}
	return spec, nil
}

// reviewOutput is the raw LLM response before validation.
type reviewOutput struct {
	OverallStatus   string         `json:"overall_status"`
	SummaryFeedback string         `json:"summary_feedback"`
	Scores          map[string]int `json:"scores"`
}

func (g *LLMGenerator) AnalyzePractice(ctx context.Context, spec *PracticeSpec, language, code string) (*PracticeReview, error) {
	ctx = llm.WithPurpose(ctx, "practice-review")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: reviewSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildReviewMessage(spec, language, code)},
		},
		Schema:      ReviewSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: 0,
	})
	if err != nil {
		return nil, apperr.GenerationFailed(err)
	}

	var raw reviewOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, apperr.GenerationFailed(fmt.Errorf("parse review response: %w", err))
	}

	switch raw.OverallStatus {
	case "pass", "partial", "fail":
	default:
		return nil, apperr.GenerationFailed(fmt.Errorf("review has unknown status %q", raw.OverallStatus))
	}
	for _, dim := range ReviewDimensions {
		score, ok := raw.Scores[dim]
		if !ok {
			return nil, apperr.GenerationFailed(fmt.Errorf("review is missing the %s score", dim))
		}
		if score < 1 || score > 10 {
			return nil, apperr.GenerationFailed(fmt.Errorf("review %s score %d is out of range", dim, score))
		}
	}
	return &PracticeReview{
		OverallStatus:   raw.OverallStatus,
		SummaryFeedback: raw.SummaryFeedback,
		Scores:          raw.Scores,
	}, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

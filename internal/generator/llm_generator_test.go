package generator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/llm"
)

func validSkeletonJSON() json.RawMessage {
	return json.RawMessage(`{
		"stages": [
			{
				"title": "Foundations",
				"steps": [
					{"title": "HTML & CSS", "description": "Structure and style web pages.", "resource_type": "course", "study_link": "https://developer.mozilla.org/en-US/docs/Learn"},
					{"title": "JavaScript Basics", "description": "Core language features and the DOM.", "resource_type": "course", "study_link": ""}
				]
			},
			{
				"title": "Frameworks",
				"steps": [
					{"title": "React", "description": "Component-based UI development.", "resource_type": "documentation", "study_link": "https://react.dev"}
				]
			}
		]
	}`)
}

func validQuizJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "JavaScript Basics",
		"questions": [
			{
				"text": "Which keyword declares a block-scoped variable?",
				"type": "multiple-choice",
				"options": ["var", "let", "def", "dim"],
				"correct_answer": "let"
			},
			{
				"text": "What method converts a JSON string into an object?",
				"type": "short-answer",
				"options": [],
				"correct_answer": "JSON.parse"
			}
		]
	}`)
}

func TestRoadmapSkeleton(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSkeletonJSON()})
	gen := New(mock, DefaultConfig())

	sk, err := gen.RoadmapSkeleton(context.Background(), "frontend developer", []string{"html"})
	if err != nil {
		t.Fatalf("RoadmapSkeleton: %v", err)
	}
	if len(sk.Stages) != 2 {
		t.Fatalf("got %d stages, want 2", len(sk.Stages))
	}
	if sk.Stages[0].Title != "Foundations" {
		t.Errorf("stage title = %q", sk.Stages[0].Title)
	}
	if len(sk.Stages[0].Steps) != 2 {
		t.Errorf("got %d steps in stage 0, want 2", len(sk.Stages[0].Steps))
	}
	if got := sk.Stages[1].Steps[0].ResourceType; got != "documentation" {
		t.Errorf("resource type = %q", got)
	}
}

func TestRoadmapSkeleton_EmptyStages(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"stages": []}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.RoadmapSkeleton(context.Background(), "data science", nil)
	if !apperr.IsGenerationFailed(err) {
		t.Fatalf("got %v, want generation failure", err)
	}
}

func TestRoadmapSkeleton_StageWithoutSteps(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"stages": [{"title": "Foundations", "steps": []}]}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.RoadmapSkeleton(context.Background(), "data science", nil)
	if !apperr.IsGenerationFailed(err) {
		t.Fatalf("got %v, want generation failure", err)
	}
}

func TestRoadmapSkeleton_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	gen := New(mock, DefaultConfig())

	_, err := gen.RoadmapSkeleton(context.Background(), "devops", nil)
	if !apperr.IsGenerationFailed(err) {
		t.Fatalf("got %v, want generation failure", err)
	}
}

func TestQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Quiz(context.Background(), "JavaScript Basics", "Core language features")
	if err != nil {
		t.Fatalf("Quiz: %v", err)
	}
	if quiz.Title != "JavaScript Basics" {
		t.Errorf("title = %q", quiz.Title)
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(quiz.Questions))
	}
	if quiz.Questions[0].Type != QuestionMultipleChoice {
		t.Errorf("question 0 type = %q", quiz.Questions[0].Type)
	}
	if quiz.Questions[1].CorrectAnswer != "JSON.parse" {
		t.Errorf("question 1 answer = %q", quiz.Questions[1].CorrectAnswer)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "between 15 and 25") {
		t.Errorf("prompt does not ask for 15-25 questions: %q", prompt)
	}
}

func TestQuiz_CodingQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"title": "SQL Practice",
			"questions": [{
				"text": "Write a query returning all rows of t ordered by id.",
				"type": "coding",
				"options": [],
				"correct_answer": "SELECT * FROM t ORDER BY id"
			}]
		}`),
	})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Quiz(context.Background(), "SQL Practice", "")
	if err != nil {
		t.Fatalf("Quiz: %v", err)
	}
	if quiz.Questions[0].Type != QuestionCoding {
		t.Errorf("question type = %q", quiz.Questions[0].Type)
	}
}

func TestQuiz_NoQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title": "Empty", "questions": []}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Quiz(context.Background(), "Empty", "")
	if !apperr.IsGenerationFailed(err) {
		t.Fatalf("got %v, want generation failure", err)
	}
}

func TestQuiz_AnswerNotInOptions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"title": "Bad",
			"questions": [{
				"text": "Pick one",
				"type": "multiple-choice",
				"options": ["a", "b", "c", "d"],
				"correct_answer": "e"
			}]
		}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Quiz(context.Background(), "Bad", "")
	if !apperr.IsGenerationFailed(err) {
		t.Fatalf("got %v, want generation failure", err)
	}
}

func TestCompareSkills(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"acquired_skills": ["python"],
			"missing_skills": ["sql", "statistics"],
			"recommendations": ["Work through a SQL course", "Review descriptive statistics"]
		}`),
	})
	gen := New(mock, DefaultConfig())

	cmp, err := gen.CompareSkills(context.Background(), "data analyst", []string{"python"})
	if err != nil {
		t.Fatalf("CompareSkills: %v", err)
	}
	if len(cmp.MissingSkills) != 2 {
		t.Errorf("got %d missing skills, want 2", len(cmp.MissingSkills))
	}
	if len(cmp.Recommendations) != 2 {
		t.Errorf("got %d recommendations, want 2", len(cmp.Recommendations))
	}
}

func TestCompareSkills_MissingField(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"acquired_skills": ["python"], "missing_skills": ["sql"]}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.CompareSkills(context.Background(), "data analyst", []string{"python"})
	if !apperr.IsGenerationFailed(err) {
		t.Fatalf("got %v, want generation failure", err)
	}
}

func TestCompareSkills_EmptyArraysAreValid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"acquired_skills": [], "missing_skills": [], "recommendations": []}`),
	})
	gen := New(mock, DefaultConfig())

	cmp, err := gen.CompareSkills(context.Background(), "data analyst", nil)
	if err != nil {
		t.Fatalf("CompareSkills: %v", err)
	}
	if len(cmp.MissingSkills) != 0 {
		t.Errorf("got %d missing skills, want 0", len(cmp.MissingSkills))
	}
}

func TestJudgeAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"correct": true, "explanation": "Same method, different casing."}`),
	})
	gen := New(mock, DefaultConfig())

	j, err := gen.JudgeAnswer(context.Background(), "What parses JSON?", "JSON.parse", "json.parse")
	if err != nil {
		t.Fatalf("JudgeAnswer: %v", err)
	}
	if !j.Correct {
		t.Error("expected a correct verdict")
	}
	if mock.Calls[0].Temperature != 0 {
		t.Errorf("judge temperature = %v, want 0", mock.Calls[0].Temperature)
	}
}

func TestAnalyzePractice_ScoreOutOfRange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"overall_status": "pass",
			"summary_feedback": "Looks fine.",
			"scores": {"correctness": 11, "efficiency": 8, "readability": 8, "robustness": 7}
		}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.AnalyzePractice(context.Background(), &PracticeSpec{Title: "t", Description: "d"}, "go", "package main")
	if !apperr.IsGenerationFailed(err) {
		t.Fatalf("got %v, want generation failure", err)
	}
}

func TestAnalyzePractice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"overall_status": "partial",
			"summary_feedback": "Handles the happy path but ignores empty input.",
			"scores": {"correctness": 6, "efficiency": 7, "readability": 8, "robustness": 4}
		}`),
	})
	gen := New(mock, DefaultConfig())

	rev, err := gen.AnalyzePractice(context.Background(), &PracticeSpec{
		Title:       "Reverse a string",
		Description: "Read a line and print it reversed.",
		Examples:    []PracticeExample{{Input: "abc", Output: "cba"}},
	}, "python", "print(input()[::-1])")
	if err != nil {
		t.Fatalf("AnalyzePractice: %v", err)
	}
	if rev.OverallStatus != "partial" {
		t.Errorf("status = %q", rev.OverallStatus)
	}
	if rev.Scores["robustness"] != 4 {
		t.Errorf("robustness = %d", rev.Scores["robustness"])
	}
}

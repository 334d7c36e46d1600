package generator

import "github.com/abhisek/pathwise/internal/llm"

// SkeletonSchema defines the JSON schema for roadmap generation responses.
var SkeletonSchema = &llm.Schema{
	Name:        "roadmap-skeleton",
	Description: "A staged learning roadmap for a career domain",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"stages": map[string]any{
				"type":        "array",
				"description": "Ordered stages from fundamentals to advanced topics",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Short stage name, e.g. \"Foundations\"",
						},
						"steps": map[string]any{
							"type":        "array",
							"description": "Ordered learning steps within the stage",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"title": map[string]any{
										"type":        "string",
										"description": "Topic name of the step",
									},
									"description": map[string]any{
										"type":        "string",
										"description": "One or two sentences on what the step covers and why it matters",
									},
									"resource_type": map[string]any{
										"type":        "string",
										"enum":        []any{"article", "video", "course", "documentation", "book"},
										"description": "The kind of study resource suggested for the step",
									},
									"study_link": map[string]any{
										"type":        "string",
										"description": "URL of a well-known free resource for the topic, or empty if none is certain",
									},
								},
								"required":             []any{"title", "description", "resource_type", "study_link"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"title", "steps"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"stages"},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "step-quiz",
	Description: "An assessment quiz for a single roadmap step",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Quiz title, normally the step topic",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The question shown to the learner",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple-choice", "short-answer", "coding"},
							"description": "How the learner answers: pick an option or type a short free-text answer",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for multiple-choice. Empty array otherwise.",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct answer. For multiple-choice: the exact text of the correct option.",
						},
					},
					"required":             []any{"text", "type", "options", "correct_answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}

// ComparisonSchema defines the JSON schema for skill comparison responses.
var ComparisonSchema = &llm.Schema{
	Name:        "skill-comparison",
	Description: "A comparison of a user's skills against a target domain",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"acquired_skills": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "The user's listed skills that are relevant to the domain",
			},
			"missing_skills": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Skills the domain requires that the user has not listed",
			},
			"recommendations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Short, actionable suggestions for closing the gap",
			},
		},
		"required":             []any{"acquired_skills", "missing_skills", "recommendations"},
		"additionalProperties": false,
	},
}

// JudgmentSchema defines the JSON schema for answer judgment responses.
var JudgmentSchema = &llm.Schema{
	Name:        "answer-judgment",
	Description: "A verdict on whether a freeform answer is correct",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"correct": map[string]any{
				"type":        "boolean",
				"description": "True if the answer matches the expected one in meaning",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "One sentence on why the answer is or is not correct",
			},
		},
		"required":             []any{"correct", "explanation"},
		"additionalProperties": false,
	},
}

// PracticeSchema defines the JSON schema for practice question responses.
var PracticeSchema = &llm.Schema{
	Name:        "practice-question",
	Description: "A coding practice problem for a specific skill and difficulty",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short problem name",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "Full problem statement in plain text",
			},
			"examples": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"input": map[string]any{
							"type": "string",
						},
						"output": map[string]any{
							"type": "string",
						},
					},
					"required":             []any{"input", "output"},
					"additionalProperties": false,
				},
				"description": "At least 2 sample input/output pairs",
			},
			"constraints": map[string]any{
				"type":        "string",
				"description": "Input size and value constraints",
			},
			"default_stdin": map[string]any{
				"type":        "string",
				"description": "A stdin payload matching the first example, for running the solution",
			},
		},
		"required":             []any{"title", "description", "examples", "constraints", "default_stdin"},
		"additionalProperties": false,
	},
}

// ReviewSchema defines the JSON schema for practice review responses.
var ReviewSchema = &llm.Schema{
	Name:        "practice-review",
	Description: "An assessment of a submitted practice solution",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overall_status": map[string]any{
				"type":        "string",
				"enum":        []any{"pass", "partial", "fail"},
				"description": "Overall verdict on the solution",
			},
			"summary_feedback": map[string]any{
				"type":        "string",
				"description": "Two or three sentences of concrete feedback",
			},
			"scores": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"correctness": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": 10,
					},
					"efficiency": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": 10,
					},
					"readability": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": 10,
					},
					"robustness": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": 10,
					},
				},
				"required":             []any{"correctness", "efficiency", "readability", "robustness"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"overall_status", "summary_feedback", "scores"},
		"additionalProperties": false,
	},
}

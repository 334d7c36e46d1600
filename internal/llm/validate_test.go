package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func skillSchema() *Schema {
	return &Schema{
		Name:        "skill-assessment",
		Description: "A single assessed skill",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"skill": map[string]any{"type": "string"},
				"score": map[string]any{"type": "integer", "minimum": 0},
				"level": map[string]any{
					"type": "string",
					"enum": []any{"beginner", "intermediate", "advanced"},
				},
			},
			"required": []any{"skill", "score"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"skill":"SQL","score":80,"level":"intermediate"}`)
	if err := validateResponse(skillSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_OptionalFieldOmitted(t *testing.T) {
	raw := json.RawMessage(`{"skill":"Docker","score":45}`)
	if err := validateResponse(skillSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"skill":"Kubernetes"}`)
	err := validateResponse(skillSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var bad *ErrInvalidResponse
	if !errors.As(err, &bad) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"skill":"Git","score":"eighty"}`)
	err := validateResponse(skillSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var bad *ErrInvalidResponse
	if !errors.As(err, &bad) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EnumViolated(t *testing.T) {
	raw := json.RawMessage(`{"skill":"Git","score":90,"level":"wizard"}`)
	err := validateResponse(skillSchema(), raw)
	if err == nil {
		t.Fatal("expected error for value outside enum")
	}
	var bad *ErrInvalidResponse
	if !errors.As(err, &bad) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	for _, raw := range []json.RawMessage{
		json.RawMessage(`I'd be happy to assess those skills!`),
		json.RawMessage(``),
	} {
		err := validateResponse(skillSchema(), raw)
		if err == nil {
			t.Fatalf("expected error for %q", raw)
		}
		var bad *ErrInvalidResponse
		if !errors.As(err, &bad) {
			t.Fatalf("expected ErrInvalidResponse, got: %T", err)
		}
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedRoadmapStage(t *testing.T) {
	schema := &Schema{
		Name:        "roadmap-stage",
		Description: "One stage of a learning roadmap",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"stage": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
					},
					"required": []any{"title"},
				},
				"steps": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"stage", "steps"},
		},
	}

	valid := json.RawMessage(`{"stage":{"title":"Foundations"},"steps":["HTML","CSS","JavaScript"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"stage":{"title":"Foundations"},"steps":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}

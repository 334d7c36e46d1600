package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeminiSchemaTranslation(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skill": map[string]any{"type": "string"},
			"score": map[string]any{"type": "integer"},
			"level": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
			"recommendations": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"skill", "score"},
	}

	s := geminiSchema(def)

	if s.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", s.Type)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(s.Properties))
	}
	if s.Properties["skill"].Type != "STRING" {
		t.Errorf("skill type = %s, want STRING", s.Properties["skill"].Type)
	}
	if s.Properties["score"].Type != "INTEGER" {
		t.Errorf("score type = %s, want INTEGER", s.Properties["score"].Type)
	}
	if len(s.Properties["level"].Enum) != 3 {
		t.Errorf("level enum = %d values, want 3", len(s.Properties["level"].Enum))
	}
	if s.Properties["recommendations"].Type != "ARRAY" {
		t.Errorf("recommendations type = %s, want ARRAY", s.Properties["recommendations"].Type)
	}
	if s.Properties["recommendations"].Items.Type != "STRING" {
		t.Errorf("recommendations item type = %s, want STRING", s.Properties["recommendations"].Items.Type)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %d fields, want 2", len(s.Required))
	}
}

package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestGenerationFailedWrapsCause(t *testing.T) {
	cause := errors.New("upstream timeout")
	err := GenerationFailed(cause)

	if !IsGenerationFailed(err) {
		t.Error("IsGenerationFailed = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
}

func TestGenerationFailedThroughWrapping(t *testing.T) {
	err := fmt.Errorf("generate roadmap: %w", GenerationFailed(errors.New("boom")))
	if !IsGenerationFailed(err) {
		t.Error("IsGenerationFailed should see through fmt.Errorf wrapping")
	}
}

func TestInvalidTransitionReason(t *testing.T) {
	err := InvalidTransition("step %d is locked", 3)
	if !IsInvalidTransition(err) {
		t.Error("IsInvalidTransition = false, want true")
	}
	want := "invalid transition: step 3 is locked"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationField(t *testing.T) {
	err := Validation("score", "must be between 0 and 100")
	if !IsValidation(err) {
		t.Error("IsValidation = false, want true")
	}
	if IsInvalidTransition(err) || IsGenerationFailed(err) {
		t.Error("validation error matched an unrelated kind")
	}
}

func TestKindsAreDisjoint(t *testing.T) {
	if IsGenerationFailed(ErrNotFound) || IsInvalidTransition(ErrNotFound) || IsValidation(ErrNotFound) {
		t.Error("ErrNotFound matched a typed kind")
	}
	if errors.Is(GenerationFailed(nil), ErrNotFound) {
		t.Error("GenerationFailed matched ErrNotFound")
	}
}

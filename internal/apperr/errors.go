// Package apperr defines the error taxonomy shared by the engine's
// services. All four kinds are terminal to the triggering request and
// are ordinary control-flow outcomes, never process-fatal. The HTTP
// layer maps each kind to a distinct status so clients can tell
// "nothing to show" from "something went wrong" from "you're out of
// sync, re-fetch".
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the requested roadmap, analysis or domain has no
// record. Distinct from an empty-but-existing collection.
var ErrNotFound = errors.New("not found")

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ErrGenerationFailed indicates the content-generation capability
// errored, timed out or returned structurally invalid data. Any partial
// write is discarded; the caller may retry.
type ErrGenerationFailed struct {
	Err error
}

func (e *ErrGenerationFailed) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content generation failed: %v", e.Err)
	}
	return "content generation failed"
}

func (e *ErrGenerationFailed) Unwrap() error { return e.Err }

// GenerationFailed wraps err as an ErrGenerationFailed.
func GenerationFailed(err error) error {
	return &ErrGenerationFailed{Err: err}
}

// IsGenerationFailed reports whether err is an ErrGenerationFailed.
func IsGenerationFailed(err error) bool {
	var gf *ErrGenerationFailed
	return errors.As(err, &gf)
}

// ErrInvalidTransition indicates an attempt to complete an
// already-completed or still-locked step, or a stage/step reference
// outside the roadmap's current shape. Always rejected, never coerced.
type ErrInvalidTransition struct {
	Reason string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid transition: %s", e.Reason)
}

// InvalidTransition creates an ErrInvalidTransition with the given reason.
func InvalidTransition(format string, args ...any) error {
	return &ErrInvalidTransition{Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidTransition reports whether err is an ErrInvalidTransition.
func IsInvalidTransition(err error) bool {
	var it *ErrInvalidTransition
	return errors.As(err, &it)
}

// ErrValidation indicates malformed caller input: a score out of range,
// an empty domain, an empty skill list where one is required.
type ErrValidation struct {
	Field  string
	Reason string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validation creates an ErrValidation for the given field.
func Validation(field, reason string) error {
	return &ErrValidation{Field: field, Reason: reason}
}

// IsValidation reports whether err is an ErrValidation.
func IsValidation(err error) bool {
	var v *ErrValidation
	return errors.As(err, &v)
}

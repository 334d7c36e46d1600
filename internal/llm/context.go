package llm

import "context"

type ctxKey int

const ctxKeyPurpose ctxKey = iota

// WithPurpose labels the context with what this request is for, e.g.
// "roadmap-gen" or "quiz-gen". The logging decorator records the label
// on the event row.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, ctxKeyPurpose, purpose)
}

// PurposeFrom returns the purpose label, or "unknown" when the context
// carries none.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(ctxKeyPurpose).(string); ok {
		return p
	}
	return "unknown"
}

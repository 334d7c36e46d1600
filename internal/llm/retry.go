package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryProvider re-issues failed requests with exponential backoff.
// Schema-validation failures get a single retry; everything transient
// gets up to MaxAttempts.
type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p so transient failures are retried per cfg.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) ModelID() string { return r.inner.ModelID() }

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	badOutputSeen := false

	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &badOutputSeen) || attempt == r.cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.waitFor(attempt, err)):
		}
	}

	return nil, lastErr
}

// retryable reports whether err is worth another attempt. badOutputSeen
// tracks the one-retry allowance for schema failures across attempts.
func retryable(err error, badOutputSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		// The budget is wrong, not the weather. Retrying won't help.
		return false
	}

	var bad *ErrInvalidResponse
	if errors.As(err, &bad) {
		if *badOutputSeen {
			return false
		}
		*badOutputSeen = true
		return true
	}

	// Rate limits, 5xx, network errors: all transient.
	return true
}

// waitFor picks the sleep before the next attempt. attempt is 1-based.
func (r *retryProvider) waitFor(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	w := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt-1))
	w = min(w, float64(r.cfg.MaxWait))

	// Spread concurrent retries out with up to 20% jitter either way.
	w += w * 0.2 * (2*rand.Float64() - 1)
	if w < 0 {
		w = 0
	}
	return time.Duration(w)
}

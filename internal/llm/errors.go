package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// The error types below sort transport failures into the categories the
// retry decorator switches on. Each one implements Unwrap so callers can
// still reach the SDK error underneath.

// ErrRateLimit reports a 429 from the provider. RetryAfter carries the
// delay the provider asked for; zero means the backoff schedule decides.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("provider rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("provider rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports model output that failed schema validation.
// Content keeps the offending payload for logging.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("model response failed validation: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable reports that the provider could not be reached
// or answered with a server error.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "provider unavailable"
	}
	return fmt.Sprintf("provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports a response cut off at the MaxTokens
// limit. The truncated payload is kept so callers can see how far the
// model got; retrying without raising the limit cannot succeed.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "response truncated at the max token limit"
}

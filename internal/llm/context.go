package llm

import "context"

type contextKey string

const (
	purposeKey     contextKey = "llm_purpose"
	defaultPurpose            = "unknown"
)

// WithPurpose tags the context with a label describing what the request
// is for, so log lines from the decorators can name it.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label back. Contexts without one report
// the default "unknown".
func PurposeFrom(ctx context.Context) string {
	v, ok := ctx.Value(purposeKey).(string)
	if !ok {
		return defaultPurpose
	}
	return v
}

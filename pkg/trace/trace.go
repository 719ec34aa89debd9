package trace

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

var traceIDKey contextKey

// GenerateTraceID returns a fresh trace id.
func GenerateTraceID() string {
	return uuid.NewString()
}

// FromContext returns the trace_id stored in the context, or "".
func FromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// WithContext stores the trace_id in the context.
func WithContext(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// HeaderName is the HTTP header carrying the trace id.
func HeaderName() string {
	return "X-Trace-ID"
}

package log

import "context"

type requestIDKey struct{}

// WithRequestID attaches a request id that every log line emitted with ctx will carry.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

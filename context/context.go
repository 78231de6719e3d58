package context

import "context"

type contextKey string

func (c contextKey) String() string {
	return "app context key " + string(c)
}

const (
	requestIDKey = contextKey("request_id")
)

// GetRequestID reads the request ID from the context.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithRequestID adds the request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

package middleware

import (
	"context"
	"net/http"
)

type idsKey struct{}

// requestIDs are the ids a page request carries into the services. The todo
// API client sends them on every call so one browser action can be followed
// from this service's logs into the todo API's.
type requestIDs struct {
	request     string
	correlation string
}

func idsFrom(ctx context.Context) requestIDs {
	if ctx == nil {
		return requestIDs{}
	}

	ids, _ := ctx.Value(idsKey{}).(requestIDs)

	return ids
}

// RequestIDFromContext returns the request id, or "" when none is set.
func RequestIDFromContext(ctx context.Context) string {
	return idsFrom(ctx).request
}

// CorrelationIDFromContext returns the correlation id, or "" when none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	return idsFrom(ctx).correlation
}

// ContextWithRequestID sets the request id, keeping any correlation id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	ids := idsFrom(ctx)
	ids.request = id

	return context.WithValue(ctx, idsKey{}, ids)
}

// ContextWithCorrelationID sets the correlation id, keeping any request id.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	ids := idsFrom(ctx)
	ids.correlation = id

	return context.WithValue(ctx, idsKey{}, ids)
}

// ForwardIDs copies the ids in ctx onto an outbound request's headers.
// Unset ids are left off.
func ForwardIDs(ctx context.Context, h http.Header) {
	ids := idsFrom(ctx)

	if ids.request != "" {
		h.Set(HeaderRequestID, ids.request)
	}

	if ids.correlation != "" {
		h.Set(HeaderCorrelationID, ids.correlation)
	}
}

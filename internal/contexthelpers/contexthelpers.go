// Package contexthelpers stores request-scoped values in a context.
package contexthelpers

import (
	"context"
	"net/http"
)

type contextKey string

const (
	AthleteIDContextKey = contextKey("athleteID")
	TraceIDContextKey   = contextKey("traceID")
)

// AthleteID returns the authenticated athlete id, or "" when the request carries none.
func AthleteID(ctx context.Context) string {
	id, ok := ctx.Value(AthleteIDContextKey).(string)
	if !ok {
		return ""
	}
	return id
}

// TraceID returns the request trace id, or "".
func TraceID(ctx context.Context) string {
	id, ok := ctx.Value(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return id
}

func SetAthleteID(r *http.Request, athleteID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), AthleteIDContextKey, athleteID))
}

func SetTraceID(r *http.Request, traceID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), TraceIDContextKey, traceID))
}

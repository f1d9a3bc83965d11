package main

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/trace"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/myrjola/hexcoach/internal/contexthelpers"
	"github.com/myrjola/hexcoach/internal/e2etest"
	"github.com/myrjola/hexcoach/internal/errors"
	"github.com/myrjola/hexcoach/internal/logging"
)

type statusResponseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
}

func newStatusResponseWriter(w http.ResponseWriter) *statusResponseWriter {
	return &statusResponseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
		headerWritten:  false,
	}
}

func (mw *statusResponseWriter) WriteHeader(statusCode int) {
	mw.ResponseWriter.WriteHeader(statusCode)

	if !mw.headerWritten {
		mw.statusCode = statusCode
		mw.headerWritten = true
	}
}

func (mw *statusResponseWriter) Write(b []byte) (int, error) {
	mw.headerWritten = true
	written, err := mw.ResponseWriter.Write(b)
	if err != nil {
		return written, fmt.Errorf("write response: %w", err)
	}
	return written, nil
}

func (mw *statusResponseWriter) Unwrap() http.ResponseWriter {
	return mw.ResponseWriter
}

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "deny")
		w.Header().Set("Cache-Control", "no-store")

		next.ServeHTTP(w, r)
	})
}

func (app *application) logAndTraceRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			proto  = r.Proto
			method = r.Method
			uri    = r.URL.RequestURI()
		)

		ctx := r.Context()
		traceID := uuid.NewString()
		ctx = logging.WithAttrs(
			ctx,
			slog.String("trace_id", traceID),
			slog.String("proto", proto),
			slog.String("method", method),
			slog.String("uri", uri),
		)
		r = contexthelpers.SetTraceID(r.WithContext(ctx), traceID)
		w.Header().Set("X-Trace-ID", traceID)

		start := time.Now()
		app.logger.LogAttrs(ctx, slog.LevelDebug, "received request")

		sw := newStatusResponseWriter(w)

		if !trace.IsEnabled() {
			next.ServeHTTP(sw, r)
		} else {
			path := r.URL.Path
			traceCtx, task := trace.NewTask(r.Context(), fmt.Sprintf("HTTP %s %s", method, path))
			trace.Log(traceCtx, "request", fmt.Sprintf("method=%s path=%s proto=%s", method, path, proto))
			trace.Log(traceCtx, "trace_id", traceID)

			defer func() {
				trace.Log(traceCtx, "response", fmt.Sprintf("status=%d duration=%v", sw.statusCode, time.Since(start)))
				task.End()
			}()

			r = r.WithContext(traceCtx)
			next.ServeHTTP(sw, r)
		}

		level := slog.LevelInfo
		if sw.statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		app.logger.LogAttrs(r.Context(), level, "request completed",
			slog.Int("status_code", sw.statusCode), slog.Duration("duration", time.Since(start)))
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if excp := recover(); excp != nil {
				if excp == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value, never wrapped.
					panic(excp)
				}
				app.serverError(w, r, errors.DecoratePanic(excp))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requireAPIKey rejects requests without the configured API key. It is a no-op when no key is configured.
func (app *application) requireAPIKey(next http.Handler) http.Handler {
	if app.apiKey == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(e2etest.APIKeyHeader)
		if key == "" {
			writeError(w, http.StatusUnauthorized, "missing API key")
			return
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(app.apiKey)) != 1 {
			writeError(w, http.StatusForbidden, "invalid API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAthlete resolves the athlete from the X-User-ID header.
func (app *application) requireAthlete(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		athleteID := strings.TrimSpace(r.Header.Get(e2etest.AthleteHeader))
		if athleteID == "" {
			writeError(w, http.StatusUnauthorized, "missing "+e2etest.AthleteHeader+" header")
			return
		}
		r = r.WithContext(logging.WithAttrs(r.Context(), slog.String("athlete_id", athleteID)))
		next.ServeHTTP(w, contexthelpers.SetAthleteID(r, athleteID))
	})
}

// timeout times out the request and cancels the context using http.TimeoutHandler. A timed out request captures a
// flight recorder trace when the recorder is enabled.
func (app *application) timeout(next http.Handler) http.Handler {
	timeout := app.requestTimeout - (200 * time.Millisecond) //nolint:mnd // writing the response takes time.
	th := http.TimeoutHandler(next, timeout, `{"error":"timed out"}`)
	if app.flightRecorder == nil {
		return th
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := newStatusResponseWriter(w)
		th.ServeHTTP(sw, r)
		if sw.statusCode == http.StatusServiceUnavailable {
			if _, err := app.flightRecorder.Capture(r.Context(), "timeout"); err != nil {
				app.logger.LogAttrs(r.Context(), slog.LevelError, "failed to capture trace", errors.SlogError(err))
			}
		}
	})
}

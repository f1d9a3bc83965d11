package main

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/coach"
	"github.com/myrjola/hexcoach/internal/contexthelpers"
	"github.com/myrjola/hexcoach/internal/errors"
	"github.com/myrjola/hexcoach/internal/routine"
	"github.com/myrjola/hexcoach/internal/stage"
)

const maxRequestBody = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func (app *application) notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

func (app *application) methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}

// serviceError maps coaching errors to responses. Unrecognised errors are server errors.
func (app *application) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, coach.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, coach.ErrInvalidInput),
		errors.Is(err, axis.ErrInvalidDelta),
		errors.Is(err, axis.ErrUnknownAxis),
		errors.Is(err, routine.ErrInvalidDay),
		errors.Is(err, stage.ErrUnknownStage):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		app.serverError(w, r, err)
	}
}

// decodeJSON decodes the request body into dst, writing a 400 response on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func athleteID(r *http.Request) string {
	return contexthelpers.AthleteID(r.Context())
}

// parseDay reads the day query parameter, 0 for Sunday. It defaults to today.
func parseDay(r *http.Request, now time.Time) (time.Weekday, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("day"))
	if raw == "" {
		return now.Weekday(), nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrap(coach.ErrInvalidInput, "day must be an integer", slog.String("day", raw))
	}
	return time.Weekday(n), nil
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrap(coach.ErrInvalidInput, key+" must be an integer", slog.String(key, raw))
	}
	return n, nil
}

func queryFloat(r *http.Request, key string) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Wrap(coach.ErrInvalidInput, key+" must be a finite number", slog.String(key, raw))
	}
	return f, nil
}

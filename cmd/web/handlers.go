package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/myrjola/hexcoach/internal/assessment"
	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/coach"
	"github.com/myrjola/hexcoach/internal/errors"
	"github.com/myrjola/hexcoach/internal/mission"
	"github.com/myrjola/hexcoach/internal/routine"
	"github.com/myrjola/hexcoach/internal/skillgate"
)

// healthy responds with a JSON object indicating that the server and its database are healthy.
func (app *application) healthy(w http.ResponseWriter, r *http.Request) {
	if err := app.db.Ping(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// testTimeout sleeps for the sleep_ms query parameter so that the request timeout can be exercised.
func (app *application) testTimeout(w http.ResponseWriter, r *http.Request) {
	sleepMs, err := queryInt(r, "sleep_ms")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sleep_ms parameter")
		return
	}
	if sleepMs > 0 {
		time.Sleep(time.Duration(sleepMs) * time.Millisecond)
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "completed", "slept_ms": strconv.Itoa(sleepMs)})
}

// assessmentRequest sets the starting XP either directly or by scoring the athlete's test results.
type assessmentRequest struct {
	InitialXP   map[axis.Axis]int64 `json:"initialXP"`
	Performance *assessment.Input   `json:"performance,omitempty"`
}

func (app *application) assessmentPOST(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Performance != nil {
		if req.InitialXP != nil {
			writeError(w, http.StatusBadRequest, "initialXP and performance are mutually exclusive")
			return
		}
		a, err := app.coach.AssessPerformance(r.Context(), athleteID(r), *req.Performance)
		if err != nil {
			app.serviceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, a)
		return
	}
	p, err := app.coach.Assess(r.Context(), athleteID(r), req.InitialXP)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	p, err := app.coach.Profile(r.Context(), athleteID(r))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (app *application) routineGET(w http.ResponseWriter, r *http.Request) {
	day, err := parseDay(r, time.Now())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	rt, err := app.coach.Routine(r.Context(), athleteID(r), day)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

type weeklyPlanResponse struct {
	Days []routine.Routine `json:"days"`
}

func (app *application) weeklyPlanGET(w http.ResponseWriter, r *http.Request) {
	week, err := app.coach.WeeklyPlan(r.Context(), athleteID(r))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, weeklyPlanResponse{Days: week})
}

type completeSessionRequest struct {
	DayOfWeek *int `json:"dayOfWeek"`
}

// sessionCompletePOST awards a session. Completing the same session again answers 200 with the earlier reward and
// alreadyCompleted set, without awarding twice.
func (app *application) sessionCompletePOST(w http.ResponseWriter, r *http.Request) {
	var req completeSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.DayOfWeek == nil {
		writeError(w, http.StatusBadRequest, "dayOfWeek is required")
		return
	}
	c, err := app.coach.CompleteSession(
		r.Context(), athleteID(r), chi.URLParam(r, "sessionID"), time.Weekday(*req.DayOfWeek))
	if err != nil && !errors.Is(err, coach.ErrSessionAlreadyCompleted) {
		app.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (app *application) exerciseLogPOST(w http.ResponseWriter, r *http.Request) {
	var req coach.LogRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	logged, err := app.coach.LogExercise(r.Context(), athleteID(r), req)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, logged)
}

func (app *application) skillReadinessGET(w http.ResponseWriter, r *http.Request) {
	var (
		stats skillgate.Stats
		err   error
	)
	if stats.PullUps, err = queryInt(r, "pullUps"); err != nil {
		app.serviceError(w, r, err)
		return
	}
	if stats.Dips, err = queryInt(r, "dips"); err != nil {
		app.serviceError(w, r, err)
		return
	}
	if stats.WeightedPullUpsPercent, err = queryFloat(r, "weightedPullUpsPercent"); err != nil {
		app.serviceError(w, r, err)
		return
	}
	if stats.WeightedDipsPercent, err = queryFloat(r, "weightedDipsPercent"); err != nil {
		app.serviceError(w, r, err)
		return
	}
	rd, err := app.coach.SkillReadiness(r.Context(), athleteID(r), chi.URLParam(r, "skill"), stats)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rd)
}

type missionsResponse struct {
	Date     string            `json:"date"`
	Missions []mission.Mission `json:"missions"`
}

func (app *application) missionsGET(w http.ResponseWriter, r *http.Request) {
	ms, err := app.coach.DailyMissions(r.Context(), athleteID(r))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, missionsResponse{Date: time.Now().Format(time.DateOnly), Missions: ms})
}

package main

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/hexcoach/internal/assessment"
	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/coach"
	"github.com/myrjola/hexcoach/internal/config"
	"github.com/myrjola/hexcoach/internal/routine"
	"github.com/myrjola/hexcoach/internal/stage"
)

func Test_application_healthy(t *testing.T) {
	server := startServer(t, testLookupEnv)
	var body map[string]string
	status, err := server.Client().GetJSON(t.Context(), "/api/healthy", &body)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if status != http.StatusOK || body["status"] != "ok" {
		t.Errorf("got %d %v", status, body)
	}
}

func Test_application_requiresAthleteHeader(t *testing.T) {
	server := startServer(t, testLookupEnv)
	var body errorResponse
	status, err := server.Client().GetJSON(t.Context(), "/api/v1/profile", &body)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if status != http.StatusUnauthorized || body.Error == "" {
		t.Errorf("got %d %+v", status, body)
	}
}

func Test_application_apiKey(t *testing.T) {
	server := startServer(t, func(key string) (string, bool) {
		if key == "HEXCOACH_API_KEY" {
			return "s3cret", true
		}
		return testLookupEnv(key)
	})
	ctx := t.Context()
	client := server.Client().AsAthlete("a1")

	status, err := client.PostJSON(ctx, "/api/v1/assessment", assessmentRequest{InitialXP: nil, Performance: nil}, nil)
	if err != nil {
		t.Fatalf("PostJSON: %v", err)
	}
	if status != http.StatusUnauthorized {
		t.Errorf("without key: status = %d", status)
	}
	if status, err = client.WithAPIKey("s3cret").PostJSON(ctx, "/api/v1/assessment",
		assessmentRequest{InitialXP: nil, Performance: nil}, nil); err != nil || status != http.StatusCreated {
		t.Errorf("with key: status = %d, err = %v", status, err)
	}
	if status, err = server.Client().GetJSON(ctx, "/api/healthy", nil); err != nil || status != http.StatusOK {
		t.Errorf("healthy must not need a key: status = %d, err = %v", status, err)
	}
}

func Test_application_assessmentAndProfile(t *testing.T) {
	server := startServer(t, testLookupEnv)
	ctx := t.Context()
	client := server.Client().AsAthlete("athlete-1")

	var notFound errorResponse
	status, err := client.GetJSON(ctx, "/api/v1/profile", &notFound)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if status != http.StatusNotFound {
		t.Errorf("profile before assessment: status = %d", status)
	}

	var created coach.Profile
	req := assessmentRequest{
		InitialXP:   map[axis.Axis]int64{axis.Strength: 50_000, axis.Core: 156_000},
		Performance: nil,
	}
	if status, err = client.PostJSON(ctx, "/api/v1/assessment", req, &created); err != nil {
		t.Fatalf("PostJSON: %v", err)
	}
	if status != http.StatusCreated {
		t.Fatalf("assessment status = %d", status)
	}
	if created.AthleteID != "athlete-1" || created.Stage != stage.Stage2 || created.Axes.Core.Level != axis.Advanced {
		t.Errorf("assessment = %+v", created)
	}

	var got coach.Profile
	if status, err = client.GetJSON(ctx, "/api/v1/profile", &got); err != nil || status != http.StatusOK {
		t.Fatalf("GetJSON profile: %d %v", status, err)
	}
	if diff := cmp.Diff(created.Axes, got.Axes); diff != "" {
		t.Errorf("profile mismatch (-assessed +fetched):\n%s", diff)
	}

	var bad errorResponse
	status, err = client.PostJSON(ctx, "/api/v1/assessment",
		assessmentRequest{InitialXP: map[axis.Axis]int64{axis.Core: -5}, Performance: nil}, &bad)
	if err != nil {
		t.Fatalf("PostJSON: %v", err)
	}
	if status != http.StatusBadRequest || bad.Error == "" {
		t.Errorf("negative XP: %d %+v", status, bad)
	}

	status, err = client.PostJSON(ctx, "/api/v1/assessment", map[string]int{"surprise": 1}, &bad)
	if err != nil {
		t.Fatalf("PostJSON: %v", err)
	}
	if status != http.StatusBadRequest {
		t.Errorf("unknown field: status = %d", status)
	}
}

func Test_application_performanceAssessment(t *testing.T) {
	server := startServer(t, testLookupEnv)
	ctx := t.Context()
	client := server.Client().AsAthlete("athlete-1")

	perf := &assessment.Input{
		Equipment:    assessment.Equipment{PullUpBar: true},
		Fundamentals: assessment.Fundamentals{PushUps: 6, PullUps: 1, PlankSeconds: 30, HollowHoldSeconds: 10},
	}
	var created coach.Assessment
	status, err := client.PostJSON(ctx, "/api/v1/assessment", assessmentRequest{InitialXP: nil, Performance: perf},
		&created)
	if err != nil || status != http.StatusCreated {
		t.Fatalf("assessment: %d %v", status, err)
	}
	if created.Evaluation.Rank != assessment.RankC || created.AthleteID != "athlete-1" {
		t.Errorf("assessment = %+v", created)
	}
	if diff := cmp.Diff(created.Evaluation.XP, created.Axes.XP()); diff != "" {
		t.Errorf("profile XP mismatch (-scored +profile):\n%s", diff)
	}

	var bad errorResponse
	both := assessmentRequest{InitialXP: map[axis.Axis]int64{axis.Core: 1}, Performance: perf}
	if status, err = client.PostJSON(ctx, "/api/v1/assessment", both, &bad); err != nil ||
		status != http.StatusBadRequest {
		t.Errorf("both initialXP and performance: %d %v", status, err)
	}
	perf.Fundamentals.Bridge = "sideways"
	if status, err = client.PostJSON(ctx, "/api/v1/assessment",
		assessmentRequest{InitialXP: nil, Performance: perf}, &bad); err != nil || status != http.StatusBadRequest {
		t.Errorf("unknown answer: %d %v", status, err)
	}
}

func Test_application_routines(t *testing.T) {
	server := startServer(t, testLookupEnv)
	ctx := t.Context()
	client := server.Client().AsAthlete("a1")
	empty := assessmentRequest{InitialXP: nil, Performance: nil}
	if status, err := client.PostJSON(ctx, "/api/v1/assessment", empty, nil); err != nil ||
		status != http.StatusCreated {
		t.Fatalf("assessment: %d %v", status, err)
	}

	var sunday routine.Routine
	status, err := client.GetJSON(ctx, "/api/v1/routine?day=0", &sunday)
	if err != nil || status != http.StatusOK {
		t.Fatalf("routine: %d %v", status, err)
	}
	if sunday.Template != "STAGE_1_PUSH" || sunday.Stage != stage.Stage1 || sunday.Rewards.XP <= 0 {
		t.Errorf("sunday = %s %s %+v", sunday.Template, sunday.Stage, sunday.Rewards)
	}

	var week weeklyPlanResponse
	if status, err = client.GetJSON(ctx, "/api/v1/routine/week", &week); err != nil || status != http.StatusOK {
		t.Fatalf("week: %d %v", status, err)
	}
	if len(week.Days) != 7 {
		t.Fatalf("week has %d days", len(week.Days))
	}
	if week.Days[3].Rewards.XP != 50 || week.Days[3].Rewards.Coins != 5 {
		t.Errorf("wednesday rest rewards = %+v", week.Days[3].Rewards)
	}

	for _, day := range []string{"7", "-1", "monday"} {
		if status, err = client.GetJSON(ctx, "/api/v1/routine?day="+day, nil); err != nil ||
			status != http.StatusBadRequest {
			t.Errorf("day=%s: %d %v", day, status, err)
		}
	}
}

func Test_application_sessionComplete(t *testing.T) {
	server := startServer(t, testLookupEnv)
	ctx := t.Context()
	client := server.Client().AsAthlete("a1")
	empty := assessmentRequest{InitialXP: nil, Performance: nil}
	if status, err := client.PostJSON(ctx, "/api/v1/assessment", empty, nil); err != nil ||
		status != http.StatusCreated {
		t.Fatalf("assessment: %d %v", status, err)
	}
	var sunday routine.Routine
	if status, err := client.GetJSON(ctx, "/api/v1/routine?day=0", &sunday); err != nil || status != http.StatusOK {
		t.Fatalf("routine: %d %v", status, err)
	}

	var first coach.Completion
	status, err := client.CompleteSession(ctx, "s-1", time.Sunday, &first)
	if err != nil || status != http.StatusOK {
		t.Fatalf("complete: %d %v", status, err)
	}
	if first.AlreadyCompleted {
		t.Error("first completion flagged as replay")
	}
	if diff := cmp.Diff(sunday.Rewards, first.Rewards); diff != "" {
		t.Errorf("rewards mismatch (-routine +completion):\n%s", diff)
	}
	if first.Profile.Coins != sunday.Rewards.Coins {
		t.Errorf("coins = %d, want %d", first.Profile.Coins, sunday.Rewards.Coins)
	}

	var replay coach.Completion
	status, err = client.CompleteSession(ctx, "s-1", time.Sunday, &replay)
	if err != nil || status != http.StatusOK {
		t.Fatalf("replay: %d %v", status, err)
	}
	if !replay.AlreadyCompleted || replay.Profile.Coins != first.Profile.Coins {
		t.Errorf("replay = %+v", replay)
	}

	if status, err = client.PostJSON(ctx, "/api/v1/sessions/s-2/complete", map[string]any{}, nil); err != nil ||
		status != http.StatusBadRequest {
		t.Errorf("missing day: %d %v", status, err)
	}
}

func Test_application_exerciseLog(t *testing.T) {
	server := startServer(t, testLookupEnv)
	ctx := t.Context()
	client := server.Client().AsAthlete("a1")
	empty := assessmentRequest{InitialXP: nil, Performance: nil}
	if status, err := client.PostJSON(ctx, "/api/v1/assessment", empty, nil); err != nil ||
		status != http.StatusCreated {
		t.Fatalf("assessment: %d %v", status, err)
	}

	var logged coach.LoggedExercise
	status, err := client.PostJSON(ctx, "/api/v1/exercises/log", coach.LogRequest{Name: "Weighted Pull-ups"}, &logged)
	if err != nil || status != http.StatusCreated {
		t.Fatalf("log: %d %v", status, err)
	}
	if logged.Reward.XP != 1400 || logged.Reward.Coins != 140 || logged.Profile.Axes.Strength.XP != 1000 {
		t.Errorf("logged = %+v", logged)
	}

	var bad errorResponse
	if status, err = client.PostJSON(ctx, "/api/v1/exercises/log",
		coach.LogRequest{Name: "Dips", Category: "JUGGLING"}, &bad); err != nil || status != http.StatusBadRequest {
		t.Errorf("unknown category: %d %v", status, err)
	}
}

func Test_application_skillReadiness(t *testing.T) {
	server := startServer(t, testLookupEnv)
	ctx := t.Context()
	client := server.Client().AsAthlete("a1")
	req := assessmentRequest{InitialXP: map[axis.Axis]int64{axis.Strength: 48_000}, Performance: nil}
	if status, err := client.PostJSON(ctx, "/api/v1/assessment", req, nil); err != nil ||
		status != http.StatusCreated {
		t.Fatalf("assessment: %d %v", status, err)
	}

	path := "/api/v1/skills/" + url.PathEscape("Tuck Front Lever") + "/readiness?pullUps=10"
	var got coach.Readiness
	status, err := client.GetJSON(ctx, path, &got)
	if err != nil || status != http.StatusOK {
		t.Fatalf("readiness: %d %v", status, err)
	}
	if got.Skill != "Tuck Front Lever" || got.Stage != stage.Stage2 || !got.Decision.Ready {
		t.Errorf("readiness = %+v", got)
	}

	if status, err = client.GetJSON(ctx, path+"&dips=many", nil); err != nil || status != http.StatusBadRequest {
		t.Errorf("bad dips: %d %v", status, err)
	}
	for _, pct := range []string{"NaN", "Inf", "-1"} {
		status, err = client.GetJSON(ctx, path+"&weightedPullUpsPercent="+pct, nil)
		if err != nil || status != http.StatusBadRequest {
			t.Errorf("weightedPullUpsPercent=%s: %d %v", pct, status, err)
		}
	}
}

func Test_application_missions(t *testing.T) {
	server := startServer(t, testLookupEnv)
	ctx := t.Context()
	client := server.Client().AsAthlete("a1")
	empty := assessmentRequest{InitialXP: nil, Performance: nil}
	if status, err := client.PostJSON(ctx, "/api/v1/assessment", empty, nil); err != nil ||
		status != http.StatusCreated {
		t.Fatalf("assessment: %d %v", status, err)
	}

	var first, second missionsResponse
	status, err := client.GetJSON(ctx, "/api/v1/missions", &first)
	if err != nil || status != http.StatusOK {
		t.Fatalf("missions: %d %v", status, err)
	}
	if len(first.Missions) != config.Default().DailyMissionCount || first.Date == "" {
		t.Errorf("missions = %+v", first)
	}
	if status, err = client.GetJSON(ctx, "/api/v1/missions", &second); err != nil || status != http.StatusOK {
		t.Fatalf("missions: %d %v", status, err)
	}
	if diff := cmp.Diff(first.Missions, second.Missions); diff != "" {
		t.Errorf("missions changed within the day (-first +second):\n%s", diff)
	}
}

func Test_application_notFound(t *testing.T) {
	server := startServer(t, testLookupEnv)
	var body errorResponse
	status, err := server.Client().GetJSON(t.Context(), "/nope", &body)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if status != http.StatusNotFound || body.Error == "" {
		t.Errorf("got %d %+v", status, body)
	}
}

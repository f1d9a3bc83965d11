package coach_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/hexcoach/internal/assessment"
	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/coach"
	"github.com/myrjola/hexcoach/internal/config"
	"github.com/myrjola/hexcoach/internal/errors"
	"github.com/myrjola/hexcoach/internal/ptr"
	"github.com/myrjola/hexcoach/internal/reward"
	"github.com/myrjola/hexcoach/internal/routinetemplate"
	"github.com/myrjola/hexcoach/internal/skillgate"
	"github.com/myrjola/hexcoach/internal/sqlite"
	"github.com/myrjola/hexcoach/internal/stage"
	"github.com/myrjola/hexcoach/internal/testhelpers"
)

func newService(t *testing.T) *coach.Service {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err = db.Close(); err != nil {
			t.Errorf("Failed to close database: %v", err)
		}
	})
	return coach.NewService(db, logger, config.Default(), nil)
}

func assess(t *testing.T, svc *coach.Service, athleteID string, xp map[axis.Axis]int64) coach.Profile {
	t.Helper()
	p, err := svc.Assess(t.Context(), athleteID, xp)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	return p
}

func TestAssess_CreatesAndSupersedesProfile(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	p := assess(t, svc, "athlete-1", map[axis.Axis]int64{axis.Strength: 50_000, axis.Core: 156_000})
	if p.Stage != stage.Stage2 {
		t.Errorf("Stage = %s, want STAGE_2", p.Stage)
	}
	if p.OverallLevel != axis.Beginner {
		t.Errorf("OverallLevel = %s, want BEGINNER", p.OverallLevel)
	}
	if len(p.Progress) != len(axis.All()) {
		t.Fatalf("got %d axes in progress", len(p.Progress))
	}
	core := p.Progress[3]
	want := coach.AxisProgress{
		Axis:          axis.Core,
		Name:          "Core & Conditioning",
		XP:            156_000,
		Level:         axis.Advanced,
		VisualValue:   core.VisualValue,
		XPToNextLevel: 228_000,
		LevelProgress: 5,
	}
	if diff := cmp.Diff(want, core); diff != "" {
		t.Errorf("core progress mismatch (-want +got):\n%s", diff)
	}
	if core.VisualValue <= 5 || core.VisualValue >= 7.5 {
		t.Errorf("core VisualValue = %v, want within the ADVANCED band", core.VisualValue)
	}

	p = assess(t, svc, "athlete-1", nil)
	if p.Axes.Strength.XP != 0 || p.Axes.Core.XP != 0 || p.Stage != stage.Stage1 {
		t.Errorf("re-assessment did not supersede: %+v", p.Axes)
	}
}

func TestAssess_InvalidInput(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	tests := map[string]struct {
		athleteID string
		xp        map[axis.Axis]int64
	}{
		"empty athlete": {athleteID: " ", xp: nil},
		"negative xp":   {athleteID: "a1", xp: map[axis.Axis]int64{axis.Core: -1}},
		"unknown axis":  {athleteID: "a1", xp: map[axis.Axis]int64{"speed": 10}},
		"xp beyond cap": {athleteID: "a1", xp: map[axis.Axis]int64{axis.Core: math.MaxInt64 - 10}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Assess(t.Context(), tt.athleteID, tt.xp); !errors.Is(err, coach.ErrInvalidInput) {
				t.Errorf("Assess() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestAssessPerformance(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	in := assessment.Input{
		Fundamentals: assessment.Fundamentals{PushUps: 20, PullUps: 8, PlankSeconds: 60, HollowHoldSeconds: 10},
		Skills:       &assessment.Skills{Planche: "adv_tuck_5-10s"},
	}

	got, err := svc.AssessPerformance(t.Context(), "a1", in)
	if err != nil {
		t.Fatalf("AssessPerformance: %v", err)
	}
	if got.Evaluation.Rank != assessment.RankB {
		t.Errorf("Rank = %s, want B", got.Evaluation.Rank)
	}
	if diff := cmp.Diff(got.Evaluation.XP, got.Axes.XP()); diff != "" {
		t.Errorf("profile XP differs from the scored XP (-want +got):\n%s", diff)
	}
	stored, err := svc.Profile(t.Context(), "a1")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if diff := cmp.Diff(got.Profile, stored); diff != "" {
		t.Errorf("stored profile mismatch (-want +got):\n%s", diff)
	}

	in.Fundamentals.PistolSquat = "10+"
	if _, err = svc.AssessPerformance(t.Context(), "a1", in); !errors.Is(err, coach.ErrInvalidInput) ||
		!errors.Is(err, assessment.ErrInvalidAnswer) {
		t.Errorf("AssessPerformance() error = %v, want ErrInvalidInput and ErrInvalidAnswer", err)
	}
}

func TestLogExercise_RejectsXPBeyondCap(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := t.Context()
	before := assess(t, svc, "a1", map[axis.Axis]int64{axis.Strength: axis.MaxXP})

	if _, err := svc.LogExercise(ctx, "a1", coach.LogRequest{Name: "Weighted Pull-ups"}); !errors.Is(err,
		axis.ErrInvalidDelta) {
		t.Fatalf("LogExercise() error = %v, want ErrInvalidDelta", err)
	}
	after, err := svc.Profile(ctx, "a1")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("profile changed (-want +got):\n%s", diff)
	}
	if n, err := svc.ExerciseLogCount(ctx, "a1"); err != nil || n != 0 {
		t.Errorf("ExerciseLogCount() = %d, %v, want 0", n, err)
	}
}

func TestProfile_NotFound(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := t.Context()
	if _, err := svc.Profile(ctx, "ghost"); !errors.Is(err, coach.ErrProfileNotFound) {
		t.Errorf("Profile() error = %v, want ErrProfileNotFound", err)
	}
	if _, err := svc.Routine(ctx, "ghost", time.Monday); !errors.Is(err, coach.ErrProfileNotFound) {
		t.Errorf("Routine() error = %v, want ErrProfileNotFound", err)
	}
	if _, err := svc.LogExercise(ctx, "ghost", coach.LogRequest{Name: "Dips"}); !errors.Is(err, coach.ErrProfileNotFound) {
		t.Errorf("LogExercise() error = %v, want ErrProfileNotFound", err)
	}
}

func TestRoutine(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	assess(t, svc, "a1", nil)

	r, err := svc.Routine(t.Context(), "a1", time.Sunday)
	if err != nil {
		t.Fatalf("Routine: %v", err)
	}
	if r.Template != "STAGE_1_PUSH" || r.Fallback || r.AthleteID != "a1" {
		t.Errorf("got template %s fallback %v athlete %s", r.Template, r.Fallback, r.AthleteID)
	}
	if r.Date.Weekday() != time.Sunday {
		t.Errorf("Date %v is not a Sunday", r.Date)
	}

	if _, err = svc.Routine(t.Context(), "a1", 7); !errors.Is(err, coach.ErrInvalidInput) {
		t.Errorf("Routine(7) error = %v, want ErrInvalidInput", err)
	}
}

func TestWeeklyPlan(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	assess(t, svc, "a1", map[axis.Axis]int64{axis.Strength: 400_000})

	week, err := svc.WeeklyPlan(t.Context(), "a1")
	if err != nil {
		t.Fatalf("WeeklyPlan: %v", err)
	}
	if len(week) != routinetemplate.DaysPerWeek {
		t.Fatalf("got %d routines", len(week))
	}
	var got []routinetemplate.SessionType
	for i, r := range week {
		if r.Day != time.Weekday(i) {
			t.Errorf("routine %d is for day %d", i, r.Day)
		}
		if r.Stage != stage.Stage4 {
			t.Errorf("routine %d stage = %s", i, r.Stage)
		}
		got = append(got, r.Session)
	}
	want := []routinetemplate.SessionType{
		routinetemplate.SessionSkillsPushWeighted, routinetemplate.SessionLegs,
		routinetemplate.SessionSkillsPullWeighted, routinetemplate.SessionRest,
		routinetemplate.SessionSkillsPushWeighted, routinetemplate.SessionSkillsPullWeighted,
		routinetemplate.SessionRest,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sessions mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleteSession_AwardsAtMostOnce(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := t.Context()
	assess(t, svc, "a1", nil)

	wantRewards := reward.Bundle{
		XP:        2662,
		Coins:     266,
		XPPerAxis: map[axis.Axis]int64{axis.Mobility: 1526, axis.Strength: 470, axis.Core: 666},
	}
	c, err := svc.CompleteSession(ctx, "a1", "session-1", time.Sunday)
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if c.AlreadyCompleted {
		t.Error("first completion reported as replay")
	}
	if diff := cmp.Diff(wantRewards, c.Rewards); diff != "" {
		t.Errorf("rewards mismatch (-want +got):\n%s", diff)
	}
	if c.Profile.Axes.Mobility.XP != 1526 || c.Profile.Axes.Core.XP != 666 || c.Profile.Coins != 266 {
		t.Errorf("profile after completion = %+v coins %d", c.Profile.Axes, c.Profile.Coins)
	}

	replay, err := svc.CompleteSession(ctx, "a1", "session-1", time.Sunday)
	if !errors.Is(err, coach.ErrSessionAlreadyCompleted) {
		t.Fatalf("replay error = %v, want ErrSessionAlreadyCompleted", err)
	}
	if !replay.AlreadyCompleted {
		t.Error("replay not flagged")
	}
	if diff := cmp.Diff(wantRewards, replay.Rewards); diff != "" {
		t.Errorf("replay rewards mismatch (-want +got):\n%s", diff)
	}
	if replay.Profile.Axes.Mobility.XP != 1526 || replay.Profile.Coins != 266 {
		t.Errorf("replay awarded again: %+v coins %d", replay.Profile.Axes, replay.Profile.Coins)
	}

	rest, err := svc.CompleteSession(ctx, "a1", "session-2", time.Wednesday)
	if err != nil {
		t.Fatalf("CompleteSession(rest): %v", err)
	}
	if rest.Profile.Axes.Mobility.XP != 1576 || rest.Profile.Coins != 271 {
		t.Errorf("after rest day = %+v coins %d", rest.Profile.Axes, rest.Profile.Coins)
	}
}

func TestCompleteSession_SessionIDsArePerAthlete(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := t.Context()
	assess(t, svc, "a1", nil)
	assess(t, svc, "a2", nil)

	if _, err := svc.CompleteSession(ctx, "a1", "shared", time.Wednesday); err != nil {
		t.Fatalf("a1: %v", err)
	}
	c, err := svc.CompleteSession(ctx, "a2", "shared", time.Wednesday)
	if err != nil {
		t.Fatalf("a2: %v", err)
	}
	if c.AlreadyCompleted || c.Profile.Axes.Mobility.XP != 50 {
		t.Errorf("a2 completion = %+v", c)
	}
}

func TestCompleteSession_InvalidInput(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	assess(t, svc, "a1", nil)
	if _, err := svc.CompleteSession(t.Context(), "a1", "", time.Sunday); !errors.Is(err, coach.ErrInvalidInput) {
		t.Errorf("empty session id error = %v", err)
	}
	if _, err := svc.CompleteSession(t.Context(), "a1", "s", -1); !errors.Is(err, coach.ErrInvalidInput) {
		t.Errorf("invalid day error = %v", err)
	}
}

func TestLogExercise(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := t.Context()
	assess(t, svc, "a1", nil)

	tests := []struct {
		name       string
		req        coach.LogRequest
		wantXP     int64
		wantCoins  int64
		wantPerAxs map[axis.Axis]int64
	}{
		{
			name:       "inferred from name",
			req:        coach.LogRequest{Name: "Weighted Pull-ups"},
			wantXP:     1400,
			wantCoins:  140,
			wantPerAxs: map[axis.Axis]int64{axis.Strength: 1000, axis.StaticHolds: 400},
		},
		{
			name:       "explicit multiplier is clamped",
			req:        coach.LogRequest{Name: "Weighted Pull-ups", Multiplier: ptr.Ref(5.0)},
			wantXP:     2800,
			wantCoins:  280,
			wantPerAxs: map[axis.Axis]int64{axis.Strength: 2000, axis.StaticHolds: 800},
		},
		{
			name: "performance against expectation",
			req: coach.LogRequest{
				Name: "Plank", Category: "CORE", Difficulty: "intermediate", Actual: 45, Expected: 30,
			},
			wantXP:     1050,
			wantCoins:  105,
			wantPerAxs: map[axis.Axis]int64{axis.Core: 750, axis.Balance: 300},
		},
	}
	for _, tt := range tests {
		got, err := svc.LogExercise(ctx, "a1", tt.req)
		if err != nil {
			t.Fatalf("%s: LogExercise: %v", tt.name, err)
		}
		if got.ID == "" || got.LoggedAt.IsZero() {
			t.Errorf("%s: missing id or timestamp: %+v", tt.name, got)
		}
		want := reward.Bundle{XP: tt.wantXP, Coins: tt.wantCoins, XPPerAxis: tt.wantPerAxs}
		if diff := cmp.Diff(want, got.Reward.Bundle); diff != "" {
			t.Errorf("%s: reward mismatch (-want +got):\n%s", tt.name, diff)
		}
	}

	p, err := svc.Profile(ctx, "a1")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if p.Axes.Strength.XP != 3000 || p.Axes.StaticHolds.XP != 1200 || p.Axes.Core.XP != 750 || p.Coins != 525 {
		t.Errorf("profile after logs = %+v coins %d", p.Axes, p.Coins)
	}
	n, err := svc.ExerciseLogCount(ctx, "a1")
	if err != nil || n != len(tests) {
		t.Errorf("ExerciseLogCount() = %d, %v", n, err)
	}
}

func TestLogExercise_InvalidInput(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	assess(t, svc, "a1", nil)
	for name, req := range map[string]coach.LogRequest{
		"empty name":       {Name: "  "},
		"unknown category": {Name: "Dips", Category: "JUGGLING"},
		"unknown level":    {Name: "Dips", Difficulty: "GODLIKE"},
		"negative actual":  {Name: "Dips", Actual: -3, Expected: 10},
	} {
		if _, err := svc.LogExercise(t.Context(), "a1", req); !errors.Is(err, coach.ErrInvalidInput) {
			t.Errorf("%s: error = %v, want ErrInvalidInput", name, err)
		}
	}
}

func TestSkillReadiness(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := t.Context()
	assess(t, svc, "a1", nil)
	stats := skillgate.Stats{PullUps: 10}

	got, err := svc.SkillReadiness(ctx, "a1", "Tuck Front Lever", stats)
	if err != nil {
		t.Fatalf("SkillReadiness: %v", err)
	}
	if got.Decision.Ready || got.Stage != stage.Stage1 || got.Decision.Unmet.Requirement != skillgate.RequirementStage {
		t.Errorf("STAGE_1 readiness = %+v", got)
	}

	assess(t, svc, "a1", map[axis.Axis]int64{axis.Strength: 48_000})
	if got, err = svc.SkillReadiness(ctx, "a1", "Tuck Front Lever", stats); err != nil {
		t.Fatalf("SkillReadiness: %v", err)
	}
	if !got.Decision.Ready || got.Stage != stage.Stage2 {
		t.Errorf("STAGE_2 readiness = %+v", got)
	}

	if _, err = svc.SkillReadiness(ctx, "a1", "Tuck Front Lever", skillgate.Stats{Dips: -1}); !errors.Is(err,
		coach.ErrInvalidInput) {
		t.Errorf("negative stats error = %v", err)
	}
	for _, pct := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		stats = skillgate.Stats{PullUps: 12, WeightedPullUpsPercent: pct}
		_, err = svc.SkillReadiness(ctx, "a1", "Full Front Lever", stats)
		if !errors.Is(err, coach.ErrInvalidInput) {
			t.Errorf("weighted percentage %v error = %v, want ErrInvalidInput", pct, err)
		}
	}
}

func TestDailyMissions_StableWithinDayAndRefreshable(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := t.Context()
	assess(t, svc, "a1", map[axis.Axis]int64{axis.Strength: 500_000, axis.Balance: 60_000})

	first, err := svc.DailyMissions(ctx, "a1")
	if err != nil {
		t.Fatalf("DailyMissions: %v", err)
	}
	if len(first) != config.Default().DailyMissionCount {
		t.Fatalf("got %d missions", len(first))
	}
	for _, m := range first {
		if m.Axis == axis.Strength {
			t.Errorf("mission %s targets the ELITE strength axis", m.ID)
		}
		if m.Level != axis.Beginner {
			t.Errorf("mission %s level = %s, want weakest axes first", m.ID, m.Level)
		}
	}

	second, err := svc.DailyMissions(ctx, "a1")
	if err != nil {
		t.Fatalf("DailyMissions: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("missions changed within the day (-first +second):\n%s", diff)
	}

	n, err := svc.RefreshDailyMissions(ctx)
	if err != nil || n != 1 {
		t.Fatalf("RefreshDailyMissions() = %d, %v", n, err)
	}
	third, err := svc.DailyMissions(ctx, "a1")
	if err != nil {
		t.Fatalf("DailyMissions: %v", err)
	}
	if diff := cmp.Diff(first, third); diff != "" {
		t.Errorf("refresh with the same seed changed missions (-first +third):\n%s", diff)
	}
}

func TestExport(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := t.Context()
	assess(t, svc, "a1", nil)
	if _, err := svc.CompleteSession(ctx, "a1", "s1", time.Wednesday); err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	path, err := svc.Export(ctx, "a1", t.TempDir())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if path == "" {
		t.Error("empty export path")
	}
	if _, err = svc.Export(ctx, "ghost", t.TempDir()); !errors.Is(err, coach.ErrProfileNotFound) {
		t.Errorf("Export(ghost) error = %v", err)
	}
}

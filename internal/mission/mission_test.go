package mission_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/mission"
)

func TestPool_OneToThreeMissionsPerAxisAndLevelBelowElite(t *testing.T) {
	ids := make(map[string]bool)
	for _, m := range mission.All() {
		if ids[m.ID] {
			t.Errorf("duplicate mission id %s", m.ID)
		}
		ids[m.ID] = true
		if !m.Axis.Valid() || !m.Level.Valid() || !m.Category.Valid() {
			t.Errorf("mission %s has invalid axis, level or category", m.ID)
		}
		if m.Target <= 0 || m.RewardXP <= 0 || m.RewardCoins <= 0 {
			t.Errorf("mission %s has non-positive target or reward", m.ID)
		}
	}
	for _, a := range axis.All() {
		for _, l := range []axis.Level{axis.Beginner, axis.Intermediate, axis.Advanced} {
			if len(mission.For(a, l)) == 0 {
				t.Errorf("no missions for %s at %s", a, l)
			}
		}
		if got := mission.For(a, axis.Elite); len(got) != 0 {
			t.Errorf("%s has %d elite missions, want none", a, len(got))
		}
	}
}

func TestDaily_TargetsWeakestAxes(t *testing.T) {
	p, err := axis.NewProfile(map[axis.Axis]int64{
		axis.Balance:     400_000,
		axis.Strength:    50_000,
		axis.StaticHolds: 150_000,
		axis.Core:        0,
		axis.Endurance:   200_000,
		axis.Mobility:    60_000,
	})
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}
	got := mission.Daily(p, mission.DefaultCount, 42)
	var gotAxes []axis.Axis
	for _, m := range got {
		gotAxes = append(gotAxes, m.Axis)
		if m.Level != p.Get(m.Axis).Level {
			t.Errorf("mission %s at %s, axis is %s", m.ID, m.Level, p.Get(m.Axis).Level)
		}
	}
	want := []axis.Axis{axis.Core, axis.Strength, axis.Mobility}
	if diff := cmp.Diff(want, gotAxes); diff != "" {
		t.Errorf("axes mismatch (-want +got):\n%s", diff)
	}
}

func TestDaily_SkipsEliteAxes(t *testing.T) {
	xp := make(map[axis.Axis]int64)
	for _, a := range axis.All() {
		xp[a] = 500_000
	}
	xp[axis.Core] = 100
	p, err := axis.NewProfile(xp)
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}
	got := mission.Daily(p, 3, 1)
	if len(got) != 1 || got[0].Axis != axis.Core {
		t.Errorf("Daily() = %+v, want one core mission", got)
	}
}

func TestDaily_DeterministicForSeed(t *testing.T) {
	p := axis.Profile{}
	seed := mission.Seed("athlete-1", time.Date(2026, time.May, 1, 23, 59, 0, 0, time.UTC))
	first := mission.Daily(p, 6, seed)
	second := mission.Daily(p, 6, seed)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed gave different missions (-first +second):\n%s", diff)
	}
	if len(first) != 6 {
		t.Errorf("got %d missions for a fresh profile, want 6", len(first))
	}
}

func TestSeed_StableWithinDay(t *testing.T) {
	morning := mission.Seed("a", time.Date(2026, time.May, 1, 6, 0, 0, 0, time.UTC))
	evening := mission.Seed("a", time.Date(2026, time.May, 1, 22, 0, 0, 0, time.UTC))
	nextDay := mission.Seed("a", time.Date(2026, time.May, 2, 6, 0, 0, 0, time.UTC))
	other := mission.Seed("b", time.Date(2026, time.May, 1, 6, 0, 0, 0, time.UTC))
	if morning != evening {
		t.Error("seed changed within a day")
	}
	if morning == nextDay || morning == other {
		t.Error("seed did not change with day or athlete")
	}
}

func TestFind(t *testing.T) {
	m, ok := mission.Find("core-beginner-plank")
	if !ok || m.Target != 90 || m.Unit != mission.UnitSeconds {
		t.Errorf("Find() = %+v, %v", m, ok)
	}
	if _, ok = mission.Find("nope"); ok {
		t.Error("Find(nope) matched")
	}
}

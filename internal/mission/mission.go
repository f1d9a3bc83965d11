// Package mission picks small daily challenges aimed at the athlete's weakest axes.
package mission

import (
	"hash/fnv"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/exercisemap"
)

// DefaultCount is how many missions are handed out per day.
const DefaultCount = 3

// Unit is what a mission target counts.
type Unit string

const (
	UnitReps    Unit = "reps"
	UnitSeconds Unit = "seconds"
	UnitCount   Unit = "count"
)

// Mission is a single challenge for an axis at a level.
type Mission struct {
	ID          string               `json:"id"`
	Axis        axis.Axis            `json:"targetAxis"`
	Level       axis.Level           `json:"requiredLevel"`
	Description string               `json:"description"`
	Category    exercisemap.Category `json:"exerciseCategory"`
	Target      int                  `json:"target"`
	Unit        Unit                 `json:"targetUnit"`
	RewardXP    int                  `json:"rewardXP"`
	RewardCoins int                  `json:"rewardCoins"`
}

// For returns the missions authored for axis a at level l. ELITE has none.
func For(a axis.Axis, l axis.Level) []Mission {
	var out []Mission
	for _, m := range pool {
		if m.Axis == a && m.Level == l {
			out = append(out, m)
		}
	}
	return out
}

// Find returns the mission with id.
func Find(id string) (Mission, bool) {
	i := slices.IndexFunc(pool, func(m Mission) bool { return m.ID == id })
	if i < 0 {
		return Mission{}, false
	}
	return pool[i], true
}

// All returns a copy of the whole mission pool.
func All() []Mission {
	return slices.Clone(pool)
}

// Daily picks up to count missions, one per axis, visiting axes from the lowest level up. Axes on the same level keep
// the axis.All order. Axes without missions for their level are skipped. The choice within an axis is driven by seed
// so the same seed always yields the same missions.
func Daily(p axis.Profile, count int, seed uint64) []Mission {
	axes := axis.All()
	slices.SortStableFunc(axes, func(a, b axis.Axis) int {
		return levelOf(p, a).Rank() - levelOf(p, b).Rank()
	})

	rng := rand.New(rand.NewPCG(seed, seed>>1|1)) //nolint:gosec // not used for security
	var out []Mission
	for _, a := range axes {
		if len(out) >= count {
			break
		}
		candidates := For(a, levelOf(p, a))
		if len(candidates) == 0 {
			continue
		}
		out = append(out, candidates[rng.IntN(len(candidates))])
	}
	return out
}

// levelOf treats a missing level as BEGINNER.
func levelOf(p axis.Profile, a axis.Axis) axis.Level {
	if l := p.Get(a).Level; l.Valid() {
		return l
	}
	return axis.Beginner
}

// Seed derives a stable seed for an athlete's missions on date, so every request on the same day agrees.
func Seed(athleteID string, date time.Time) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(athleteID))
	_, _ = h.Write([]byte(date.Format(time.DateOnly)))
	return h.Sum64()
}

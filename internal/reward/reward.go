// Package reward turns completed training into XP and coins.
//
// There are two entry points. ForExercise prices a single manually logged exercise from its category and difficulty.
// ForRoutine prices a whole generated routine from the volume of every exercise in it. Both report the XP split per
// axis, which is what gets awarded to the athlete's profile.
package reward

import (
	"math"

	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/exercisemap"
)

const (
	// MinMultiplier and MaxMultiplier bound the performance multiplier.
	MinMultiplier = 0.5
	MaxMultiplier = 2.0

	// XPPerCoin is how much XP earns one coin for a logged exercise.
	XPPerCoin = 10
)

// Bundle is a reward ready to be credited.
type Bundle struct {
	XP        int64               `json:"totalXP"`
	Coins     int64               `json:"coins"`
	XPPerAxis map[axis.Axis]int64 `json:"xpPerAxis"`
}

// Apply awards the per-axis XP of b to p.
func (b Bundle) Apply(r axis.Rules, p axis.Profile) (axis.Profile, error) {
	return r.AwardAll(p, b.XPPerAxis)
}

type baseXP struct {
	primary   int64
	secondary int64
}

var xpByDifficulty = map[axis.Level]baseXP{
	axis.Beginner:     {primary: 250, secondary: 100},
	axis.Intermediate: {primary: 500, secondary: 200},
	axis.Advanced:     {primary: 1000, secondary: 400},
	axis.Elite:        {primary: 2000, secondary: 800},
}

// ExerciseReward is the reward for one logged exercise.
type ExerciseReward struct {
	Bundle
	PrimaryAxis axis.Axis            `json:"primaryAxis"`
	Category    exercisemap.Category `json:"category"`
	Difficulty  axis.Level           `json:"difficulty"`
	Multiplier  float64              `json:"multiplier"`
}

// ClampMultiplier limits m to [MinMultiplier, MaxMultiplier]. NaN counts as 1.
func ClampMultiplier(m float64) float64 {
	if math.IsNaN(m) {
		return 1
	}
	return max(MinMultiplier, min(MaxMultiplier, m))
}

// BaseXP returns the unmultiplied XP per axis for an exercise of category c at difficulty d. Unknown difficulties are
// priced as BEGINNER.
func BaseXP(c exercisemap.Category, d axis.Level) map[axis.Axis]int64 {
	values, ok := xpByDifficulty[d]
	if !ok {
		values = xpByDifficulty[axis.Beginner]
	}
	out := map[axis.Axis]int64{exercisemap.PrimaryAxis(c): values.primary}
	for _, a := range exercisemap.SecondaryAxes(c) {
		out[a] += values.secondary
	}
	return out
}

// ForExercise prices one exercise. The multiplier is clamped first and each axis is rounded after multiplying.
func ForExercise(c exercisemap.Category, d axis.Level, multiplier float64) ExerciseReward {
	m := ClampMultiplier(multiplier)
	perAxis := BaseXP(c, d)
	var total int64
	for a, xp := range perAxis {
		perAxis[a] = int64(math.Round(float64(xp) * m))
		total += perAxis[a]
	}
	if !d.Valid() {
		d = axis.Beginner
	}
	return ExerciseReward{
		Bundle: Bundle{
			XP:        total,
			Coins:     int64(math.Round(float64(total) / XPPerCoin)),
			XPPerAxis: perAxis,
		},
		PrimaryAxis: exercisemap.PrimaryAxis(c),
		Category:    c,
		Difficulty:  d,
		Multiplier:  m,
	}
}

// ForExerciseName prices an exercise known only by name, inferring its category and difficulty.
func ForExerciseName(name string, multiplier float64) ExerciseReward {
	return ForExercise(exercisemap.InferCategory(name), exercisemap.InferDifficulty(name), multiplier)
}

// PerformanceMultiplier compares actual reps or seconds against the expected amount. Hitting the target is 1.0, half
// of it 0.5 and double it 2.0. A non-positive expectation yields 1.0.
func PerformanceMultiplier(actual, expected float64) float64 {
	if expected <= 0 || math.IsNaN(expected) {
		return 1
	}
	return ClampMultiplier(actual / expected)
}

// Package exercisemap decides which ability axis an exercise trains.
//
// Mapping never fails. Every lookup returns exactly one primary axis together with the Source that produced it, so
// callers can tell an authored mapping apart from a best guess.
package exercisemap

import (
	"strings"

	"github.com/myrjola/hexcoach/internal/axis"
)

// Source tells how a Mapping was resolved.
type Source string

const (
	// SourceExact means the name was found in the curated name table.
	SourceExact Source = "exact"
	// SourceKeyword means an axis-indicative keyword was found in the lowercased name.
	SourceKeyword Source = "keyword"
	// SourceCategory means the axis came from the category table.
	SourceCategory Source = "category"
	// SourceDefault means nothing matched and the default axis was used.
	SourceDefault Source = "default"
)

// DefaultAxis is returned when neither the name nor the category identifies an axis.
const DefaultAxis = axis.Strength

// Mapping is the result of mapping an exercise to its primary axis. Keyword is the matched keyword when Source is
// SourceKeyword.
type Mapping struct {
	Axis    axis.Axis `json:"axis"`
	Source  Source    `json:"source"`
	Keyword string    `json:"keyword,omitempty"`
}

// Exact reports whether the mapping came from authored data rather than a guess.
func (m Mapping) Exact() bool {
	return m.Source == SourceExact || m.Source == SourceCategory
}

var nameToAxis = map[string]axis.Axis{
	// Balance.
	"Handstand Hold":      axis.Balance,
	"Wall Handstand Hold": axis.Balance,
	"Frog Stand":          axis.Balance,
	"Crow Pose":           axis.Balance,
	"Tuck Planche":        axis.Balance,
	"Straddle Planche":    axis.Balance,
	"Full Planche":        axis.Balance,
	"Planche Leans":       axis.Balance,
	"Handstand Push-ups":  axis.Balance,

	// Pushing strength.
	"Push-ups":                         axis.Strength,
	"Incline Push-ups":                 axis.Strength,
	"Decline Push-ups":                 axis.Strength,
	"Diamond Push-ups":                 axis.Strength,
	"Archer Push-ups":                  axis.Strength,
	"Pseudo Planche Push-ups":          axis.Strength,
	"Pike Push-ups":                    axis.Strength,
	"Pike Push-ups (elevated)":         axis.Strength,
	"Dips":                             axis.Strength,
	"Negative Dips":                    axis.Strength,
	"Weighted Dips":                    axis.Strength,
	"Weighted Push-ups":                axis.Strength,
	"Weighted Push-ups (vest or band)": axis.Strength,

	// Pulling strength.
	"Pull-ups":           axis.Strength,
	"Chin-ups":           axis.Strength,
	"Negative Pull-ups":  axis.Strength,
	"Assisted Pull-ups":  axis.Strength,
	"Weighted Pull-ups":  axis.Strength,
	"Archer Pull-ups":    axis.Strength,
	"L-Sit Pull-ups":     axis.Strength,
	"Explosive Pull-ups": axis.Strength,

	// Static holds.
	"Tuck Front Lever Hold": axis.StaticHolds,
	"Front Lever Hold":      axis.StaticHolds,
	"Back Lever Hold":       axis.StaticHolds,
	"L-Sit Hold":            axis.StaticHolds,
	"Tuck L-Sit":            axis.StaticHolds,
	"V-Sit Hold":            axis.StaticHolds,
	"Human Flag":            axis.StaticHolds,
	"Planche Hold":          axis.StaticHolds,
	"Dead Hang":             axis.StaticHolds,
	"German Hang":           axis.StaticHolds,
	"Skin the Cat":          axis.StaticHolds,

	// Core and body tension.
	"Plank Hold":            axis.Core,
	"Side Plank":            axis.Core,
	"Hollow Body Hold":      axis.Core,
	"Arch Hold":             axis.Core,
	"Dragon Flag":           axis.Core,
	"Dragon Flag Negatives": axis.Core,
	"Leg Raises":            axis.Core,
	"Hanging Leg Raises":    axis.Core,
	"Windshield Wipers":     axis.Core,
	"Ab Wheel Rollout":      axis.Core,

	// Endurance.
	"Burpees":           axis.Endurance,
	"Mountain Climbers": axis.Endurance,
	"Jump Squats":       axis.Endurance,
	"High Knees":        axis.Endurance,
	"Jumping Jacks":     axis.Endurance,

	// Mobility and warm-ups.
	"Wrist Circles":                axis.Mobility,
	"Wrist Flexion Tilts":          axis.Mobility,
	"Palm Push-ups":                axis.Mobility,
	"Finger Push-ups":              axis.Mobility,
	"Shoulder Rotations":           axis.Mobility,
	"Arm Circles":                  axis.Mobility,
	"Arm Circles with Band":        axis.Mobility,
	"Scapula Pull-ups":             axis.Mobility,
	"Scapula Push-ups":             axis.Mobility,
	"Scapular Pulls":               axis.Mobility,
	"Scapula Activation":           axis.Mobility,
	"Shoulder Mobility Complex":    axis.Mobility,
	"Cat-Cow Stretch":              axis.Mobility,
	"Wrist and Shoulder Stretches": axis.Mobility,
	"Lat and Shoulder Stretches":   axis.Mobility,
	"Hip Flexor Stretch":           axis.Mobility,
	"Hamstring Stretch":            axis.Mobility,
	"Quad Stretch":                 axis.Mobility,

	// Legs count towards endurance.
	"Squats":                 axis.Endurance,
	"Pistol Squats":          axis.Endurance,
	"Bulgarian Split Squats": axis.Endurance,
	"Nordic Curls":           axis.Endurance,
	"Calf Raises":            axis.Endurance,
}

type keywordRule struct {
	axis     axis.Axis
	keywords []string
}

// keywordRules are scanned in order and the first rule with a matching keyword wins.
var keywordRules = []keywordRule{
	{axis.Balance, []string{"handstand", "planche", "frog stand", "crow"}},
	{axis.Strength, []string{"push-up", "pushup", "dip", "bench"}},
	{axis.Strength, []string{"pull-up", "pullup", "chin-up", "chinup", "row"}},
	{axis.StaticHolds, []string{"lever", "l-sit", "hang", "hold"}},
	{axis.Core, []string{"plank", "hollow", "dragon flag", "leg raise", "core", "abs"}},
	{axis.Endurance, []string{"burpee", "jump", "squat", "run", "cardio"}},
	{axis.Mobility, []string{"stretch", "mobility", "wrist", "shoulder rotation", "scapula"}},
}

// ByName maps an exercise display name to its primary axis: exact table lookup, then keyword scan, then
// DefaultAxis.
func ByName(name string) Mapping {
	if a, ok := nameToAxis[name]; ok {
		return Mapping{Axis: a, Source: SourceExact, Keyword: ""}
	}

	lower := strings.ToLower(name)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return Mapping{Axis: rule.axis, Source: SourceKeyword, Keyword: kw}
			}
		}
	}

	return Mapping{Axis: DefaultAxis, Source: SourceDefault, Keyword: ""}
}

// ByCategory maps a category to its primary axis. Unknown categories map to DefaultAxis.
func ByCategory(c Category) Mapping {
	if p, ok := categoryAxes[c]; ok {
		return Mapping{Axis: p.primary, Source: SourceCategory, Keyword: ""}
	}
	return Mapping{Axis: DefaultAxis, Source: SourceDefault, Keyword: ""}
}

// Map prefers the category when it is known, since it is unambiguous, and falls back to the name.
func Map(name string, c Category) Mapping {
	if c.Valid() {
		return ByCategory(c)
	}
	return ByName(name)
}

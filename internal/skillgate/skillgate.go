// Package skillgate decides whether an athlete may attempt an advanced skill.
//
// An unmet requirement is a normal negative Decision, not an error. Checks short-circuit so the caller always learns
// the single most relevant blocking reason.
package skillgate

import (
	"fmt"
	"math"
	"strings"

	"github.com/myrjola/hexcoach/internal/stage"
)

// Weighted is a weighted-movement threshold: Reps repetitions with PercentBodyweight added.
type Weighted struct {
	Reps              int     `json:"reps"`
	PercentBodyweight float64 `json:"percentBodyweight"`
}

// Requirements are the numeric thresholds of a gate. Zero values mean no threshold.
type Requirements struct {
	PullUps         int       `json:"pullUps,omitempty"`
	Dips            int       `json:"dips,omitempty"`
	WeightedPullUps *Weighted `json:"weightedPullUps,omitempty"`
	WeightedDips    *Weighted `json:"weightedDips,omitempty"`
}

// Gate declares what a skill requires.
type Gate struct {
	Skill        string       `json:"skill"`
	MinStage     stage.Stage  `json:"minStage"`
	Requirements Requirements `json:"requirements"`
	Reason       string       `json:"reason"`
}

// Stats are the athlete's raw performance numbers. Weighted percentages are the most bodyweight percentage added at
// the gate's target rep count.
type Stats struct {
	PullUps                int     `json:"pullUps"`
	Dips                   int     `json:"dips"`
	WeightedPullUpsPercent float64 `json:"weightedPullUpsPercent"`
	WeightedDipsPercent    float64 `json:"weightedDipsPercent"`
}

// Requirement names the check that blocked a skill.
type Requirement string

const (
	RequirementNone            Requirement = ""
	RequirementStage           Requirement = "stage"
	RequirementPullUps         Requirement = "pullUps"
	RequirementDips            Requirement = "dips"
	RequirementWeightedPullUps Requirement = "weightedPullUps"
	RequirementWeightedDips    Requirement = "weightedDips"
)

// Unmet describes the specific shortfall that blocked a skill. RequiredStage is set only when Requirement is
// RequirementStage.
type Unmet struct {
	Requirement   Requirement `json:"requirement"`
	Required      float64     `json:"required"`
	Actual        float64     `json:"actual"`
	RequiredStage stage.Stage `json:"requiredStage,omitempty"`
}

// Decision is the outcome of a readiness check. Gate is the matched gate, nil when the skill is not gated.
type Decision struct {
	Ready  bool   `json:"ready"`
	Reason string `json:"reason"`
	Gate   *Gate  `json:"gate,omitempty"`
	Unmet  *Unmet `json:"unmet,omitempty"`
}

// Find returns the first gate whose skill name is contained in skill, compared case-insensitively.
func Find(skill string) (Gate, bool) {
	lower := strings.ToLower(skill)
	for _, g := range gates {
		if strings.Contains(lower, strings.ToLower(g.Skill)) {
			return g, true
		}
	}
	return Gate{}, false
}

// Check evaluates whether an athlete at stage s with stats may attempt skill.
//
// The order is fixed: the gate lookup, then the stage, then pull-ups, dips, weighted pull-ups and weighted dips. The
// first unmet check denies.
func Check(skill string, s stage.Stage, stats Stats) Decision {
	g, ok := Find(skill)
	if !ok {
		return Decision{Ready: true, Reason: "No restrictions", Gate: nil, Unmet: nil}
	}

	deny := func(reason string, unmet Unmet) Decision {
		return Decision{Ready: false, Reason: reason, Gate: &g, Unmet: &unmet}
	}

	if !s.AtLeast(g.MinStage) {
		return deny(fmt.Sprintf("Requires %s. %s", g.MinStage, g.Reason), Unmet{
			Requirement:   RequirementStage,
			Required:      float64(g.MinStage.Rank() + 1),
			Actual:        float64(s.Rank() + 1),
			RequiredStage: g.MinStage,
		})
	}

	req := g.Requirements
	if req.PullUps > 0 && stats.PullUps < req.PullUps {
		return deny(fmt.Sprintf("Requires %d+ pull-ups. Currently: %d", req.PullUps, max(stats.PullUps, 0)), Unmet{
			Requirement:   RequirementPullUps,
			Required:      float64(req.PullUps),
			Actual:        float64(stats.PullUps),
			RequiredStage: "",
		})
	}
	if req.Dips > 0 && stats.Dips < req.Dips {
		return deny(fmt.Sprintf("Requires %d+ dips. Currently: %d", req.Dips, max(stats.Dips, 0)), Unmet{
			Requirement:   RequirementDips,
			Required:      float64(req.Dips),
			Actual:        float64(stats.Dips),
			RequiredStage: "",
		})
	}
	if w := req.WeightedPullUps; w != nil && !reaches(stats.WeightedPullUpsPercent, w.PercentBodyweight) {
		return deny(fmt.Sprintf("Requires %d pull-ups @ +%g%% BW", w.Reps, w.PercentBodyweight), Unmet{
			Requirement:   RequirementWeightedPullUps,
			Required:      w.PercentBodyweight,
			Actual:        stats.WeightedPullUpsPercent,
			RequiredStage: "",
		})
	}
	if w := req.WeightedDips; w != nil && !reaches(stats.WeightedDipsPercent, w.PercentBodyweight) {
		return deny(fmt.Sprintf("Requires %d dips @ +%g%% BW", w.Reps, w.PercentBodyweight), Unmet{
			Requirement:   RequirementWeightedDips,
			Required:      w.PercentBodyweight,
			Actual:        stats.WeightedDipsPercent,
			RequiredStage: "",
		})
	}

	return Decision{Ready: true, Reason: "All requirements met", Gate: &g, Unmet: nil}
}

// reaches reports whether a finite added-weight percentage meets required. NaN and infinities never do.
func reaches(actual, required float64) bool {
	return !math.IsInf(actual, 0) && actual >= required
}

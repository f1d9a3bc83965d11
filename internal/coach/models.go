package coach

import (
	"time"

	"github.com/myrjola/hexcoach/internal/assessment"
	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/reward"
	"github.com/myrjola/hexcoach/internal/skillgate"
	"github.com/myrjola/hexcoach/internal/stage"
)

// AxisProgress is the derived state of one axis, ready for display.
type AxisProgress struct {
	Axis          axis.Axis  `json:"axis"`
	Name          string     `json:"name"`
	XP            int64      `json:"xp"`
	Level         axis.Level `json:"level"`
	VisualValue   float64    `json:"visualValue"`
	XPToNextLevel int64      `json:"xpToNextLevel"`
	LevelProgress int        `json:"levelProgress"`
}

// Profile is an athlete's hexagon with everything derived from the stored XP.
type Profile struct {
	AthleteID    string         `json:"userId"`
	Axes         axis.Profile   `json:"axes"`
	Progress     []AxisProgress `json:"progress"`
	OverallLevel axis.Level     `json:"overallLevel"`
	Stage        stage.Stage    `json:"stage"`
	Coins        int64          `json:"coins"`
	AssessedAt   time.Time      `json:"assessedAt"`
}

// Assessment is the profile created from a scored performance assessment.
type Assessment struct {
	Profile

	Evaluation assessment.Result `json:"evaluation"`
}

// Completion is the outcome of completing a routine session.
type Completion struct {
	SessionID        string        `json:"sessionId"`
	Rewards          reward.Bundle `json:"rewards"`
	AlreadyCompleted bool          `json:"alreadyCompleted"`
	CompletedAt      time.Time     `json:"completedAt"`
	Profile          Profile       `json:"profile"`
}

// LogRequest describes a manually logged exercise.
//
// Category and Difficulty are inferred from Name when empty. The multiplier is Multiplier when set, else the ratio
// Actual/Expected when Expected is positive, else 1.
type LogRequest struct {
	Name       string   `json:"exerciseName"`
	Category   string   `json:"category,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Multiplier *float64 `json:"multiplier,omitempty"`
	Actual     float64  `json:"actual,omitempty"`
	Expected   float64  `json:"expected,omitempty"`
}

// LoggedExercise is a stored exercise log entry.
type LoggedExercise struct {
	ID       string                `json:"id"`
	Name     string                `json:"exerciseName"`
	Reward   reward.ExerciseReward `json:"reward"`
	LoggedAt time.Time             `json:"loggedAt"`
	Profile  Profile               `json:"profile"`
}

// Readiness is a skill gating decision for the athlete's current stage.
type Readiness struct {
	Skill    string             `json:"skill"`
	Stage    stage.Stage        `json:"stage"`
	Decision skillgate.Decision `json:"decision"`
}

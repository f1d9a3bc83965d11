package skillgate

import (
	"slices"

	"github.com/myrjola/hexcoach/internal/stage"
)

// gates are matched in order, so more specific names must come before names they contain.
//
//nolint:mnd // thresholds are the gate definitions
var gates = []Gate{
	{
		Skill:    "Full Planche",
		MinStage: stage.Stage3,
		Requirements: Requirements{
			PullUps:         0,
			Dips:            15,
			WeightedPullUps: nil,
			WeightedDips:    &Weighted{Reps: 10, PercentBodyweight: 40},
		},
		Reason: "Planche requires massive pushing strength. Risk of shoulder/wrist injury without proper foundation.",
	},
	{
		Skill:    "Tuck Planche",
		MinStage: stage.Stage2,
		Requirements: Requirements{
			PullUps:         0,
			Dips:            10,
			WeightedPullUps: nil,
			WeightedDips:    nil,
		},
		Reason: "Even tuck planche requires significant pushing strength.",
	},
	{
		Skill:    "Full Front Lever",
		MinStage: stage.Stage3,
		Requirements: Requirements{
			PullUps:         12,
			Dips:            0,
			WeightedPullUps: &Weighted{Reps: 8, PercentBodyweight: 25},
			WeightedDips:    nil,
		},
		Reason: "Front lever requires elite pulling strength. Risk of bicep tendon injury without foundation.",
	},
	{
		Skill:    "Tuck Front Lever",
		MinStage: stage.Stage2,
		Requirements: Requirements{
			PullUps:         8,
			Dips:            0,
			WeightedPullUps: nil,
			WeightedDips:    nil,
		},
		Reason: "Tuck front lever requires good scapular control and pulling strength.",
	},
	{
		Skill:    "One-Arm Pull-up",
		MinStage: stage.Stage3,
		Requirements: Requirements{
			PullUps:         15,
			Dips:            0,
			WeightedPullUps: &Weighted{Reps: 10, PercentBodyweight: 50},
			WeightedDips:    nil,
		},
		Reason: "OAP requires massive pulling strength. Can achieve with either high reps OR weighted pull-ups.",
	},
	{
		Skill:    "Muscle-up",
		MinStage: stage.Stage3,
		Requirements: Requirements{
			PullUps:         10,
			Dips:            10,
			WeightedPullUps: &Weighted{Reps: 10, PercentBodyweight: 25},
			WeightedDips:    &Weighted{Reps: 10, PercentBodyweight: 40},
		},
		Reason: "Muscle-up requires explosive pulling and strong transition. Risk of shoulder injury without strength.",
	},
	{
		Skill:    "Freestanding Handstand Push-up",
		MinStage: stage.Stage3,
		Requirements: Requirements{
			PullUps:         0,
			Dips:            15,
			WeightedPullUps: nil,
			WeightedDips:    nil,
		},
		Reason: "HSPU requires excellent overhead pressing strength and balance.",
	},
}

// Gates returns a copy of every declared gate in match order.
func Gates() []Gate {
	return slices.Clone(gates)
}

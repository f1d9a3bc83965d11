package assessment

import (
	"fmt"
	"maps"
	"slices"

	"github.com/myrjola/hexcoach/internal/axis"
)

// bonus is XP added per axis.
type bonus map[axis.Axis]int64

// question is a multiple choice test. Every valid answer is a key of choices, answers without a bonus map to nil.
type question[T any] struct {
	name    string
	answer  func(*T) string
	choices map[string]bonus
}

func (q question[T]) check(answer string) error {
	if answer == "" {
		return nil
	}
	if _, ok := q.choices[answer]; !ok {
		return fmt.Errorf("%w: %s %q, want one of %v", ErrInvalidAnswer, q.name, answer,
			slices.Sorted(maps.Keys(q.choices)))
	}
	return nil
}

type tier struct {
	min   int
	bonus bonus
}

// countTier awards the bonus of the first tier, highest first, that the count reaches.
type countTier struct {
	count func(*Fundamentals) int
	tiers []tier
}

func (c countTier) award(n int) bonus {
	for _, t := range c.tiers {
		if n >= t.min {
			return t.bonus
		}
	}
	return nil
}

// hexagon lists XP in axis order: balance, strength, static holds, core, endurance, mobility.
func hexagon(balance, strength, staticHolds, core, endurance, mobility int64) bonus {
	return bonus{
		axis.Balance:     balance,
		axis.Strength:    strength,
		axis.StaticHolds: staticHolds,
		axis.Core:        core,
		axis.Endurance:   endurance,
		axis.Mobility:    mobility,
	}
}

//nolint:mnd // base XP tables
var baseXP = map[Rank]bonus{
	RankD: hexagon(5_000, 8_000, 2_000, 6_000, 7_000, 4_000),
	RankC: hexagon(55_000, 65_000, 50_000, 60_000, 70_000, 52_000),
	RankB: hexagon(180_000, 200_000, 170_000, 185_000, 195_000, 175_000),
	RankA: hexagon(420_000, 450_000, 400_000, 430_000, 440_000, 410_000),
	RankS: hexagon(650_000, 700_000, 680_000, 660_000, 670_000, 640_000),
}

//nolint:mnd // scoring tables
var countTiers = []countTier{
	{
		count: func(f *Fundamentals) int { return f.PullUps },
		tiers: []tier{{20, bonus{axis.Strength: 50_000}}, {10, bonus{axis.Strength: 25_000}}},
	},
	{
		count: func(f *Fundamentals) int { return f.PushUps },
		tiers: []tier{{40, bonus{axis.Strength: 40_000}}, {25, bonus{axis.Strength: 20_000}}},
	},
	{
		count: func(f *Fundamentals) int { return f.PlankSeconds },
		tiers: []tier{{120, bonus{axis.Core: 40_000}}, {90, bonus{axis.Core: 20_000}}},
	},
	{
		count: func(f *Fundamentals) int { return f.HollowHoldSeconds },
		tiers: []tier{{30, bonus{axis.Core: 30_000}}},
	},
	{
		count: func(f *Fundamentals) int { return f.MaxPushUpsIn60s },
		tiers: []tier{
			{40, bonus{axis.Endurance: 50_000}},
			{30, bonus{axis.Endurance: 35_000}},
			{20, bonus{axis.Endurance: 20_000}},
			{10, bonus{axis.Endurance: 10_000}},
		},
	},
}

//nolint:mnd // scoring tables
var fundamentalQuestions = []question[Fundamentals]{
	{
		name:   "pistolSquat",
		answer: func(f *Fundamentals) string { return f.PistolSquat },
		choices: map[string]bonus{
			"no":       nil,
			"assisted": nil,
			"1-3":      nil,
			"4-8":      {axis.Strength: 15_000, axis.Balance: 10_000},
			"9+":       {axis.Strength: 30_000, axis.Balance: 20_000},
		},
	},
	{
		name:   "lSitAttempt",
		answer: func(f *Fundamentals) string { return f.LSitAttempt },
		choices: map[string]bonus{
			"no":      nil,
			"tuck":    {axis.Core: 8_000},
			"one_leg": {axis.Core: 15_000},
			"full":    {axis.Core: 25_000},
		},
	},
	{
		name:   "shoulderMobility",
		answer: func(f *Fundamentals) string { return f.ShoulderMobility },
		choices: map[string]bonus{
			"poor":      nil,
			"average":   {axis.Mobility: 10_000},
			"good":      {axis.Mobility: 25_000},
			"excellent": {axis.Mobility: 40_000},
		},
	},
	{
		name:   "bridge",
		answer: func(f *Fundamentals) string { return f.Bridge },
		choices: map[string]bonus{
			"no":      nil,
			"partial": {axis.Mobility: 15_000},
			"full":    {axis.Mobility: 35_000},
		},
	},
	{
		name:   "circuitEndurance",
		answer: func(f *Fundamentals) string { return f.CircuitEndurance },
		choices: map[string]bonus{
			"cannot_complete": nil,
			"long_breaks":     {axis.Endurance: 10_000},
			"short_breaks":    {axis.Endurance: 25_000},
			"no_breaks":       {axis.Endurance: 40_000},
		},
	},
}

//nolint:mnd // scoring tables
var skillQuestions = []question[Skills]{
	{
		name:   "handstand",
		answer: func(s *Skills) string { return s.Handstand },
		choices: map[string]bonus{
			"no":                 nil,
			"wall_5-15s":         nil,
			"wall_15-60s":        {axis.Balance: 20_000, axis.Core: 10_000},
			"freestanding_5-15s": {axis.Balance: 50_000, axis.Core: 20_000},
			"freestanding_15s+":  {axis.Balance: 80_000, axis.Core: 30_000},
		},
	},
	{
		name:   "handstandPushUp",
		answer: func(s *Skills) string { return s.HandstandPushUp },
		choices: map[string]bonus{
			"no":            nil,
			"partial_wall":  nil,
			"full_wall_1-5": nil,
			"full_wall_6+":  {axis.Strength: 60_000, axis.Balance: 30_000},
			"freestanding":  {axis.Strength: 100_000, axis.Balance: 60_000},
		},
	},
	{
		name:   "frontLever",
		answer: func(s *Skills) string { return s.FrontLever },
		choices: map[string]bonus{
			"no":             nil,
			"tuck_5-10s":     {axis.StaticHolds: 20_000, axis.Strength: 10_000},
			"adv_tuck_5-10s": {axis.StaticHolds: 40_000, axis.Strength: 20_000},
			"straddle_3-8s":  {axis.StaticHolds: 80_000, axis.Strength: 40_000},
			"one_leg_3-8s":   {axis.StaticHolds: 80_000, axis.Strength: 40_000},
			"full_3s+":       {axis.StaticHolds: 150_000, axis.Strength: 80_000},
		},
	},
	{
		name:   "planche",
		answer: func(s *Skills) string { return s.Planche },
		choices: map[string]bonus{
			"no":              nil,
			"frog_tuck_5-10s": {axis.StaticHolds: 15_000, axis.Balance: 10_000},
			"adv_tuck_5-10s":  {axis.StaticHolds: 45_000, axis.Strength: 25_000},
			"straddle_3-8s":   {axis.StaticHolds: 90_000, axis.Strength: 50_000},
			"full_3s+":        {axis.StaticHolds: 180_000, axis.Strength: 90_000},
		},
	},
	{
		name:   "lSit",
		answer: func(s *Skills) string { return s.LSit },
		choices: map[string]bonus{
			"no":                nil,
			"tuck_10-20s":       {axis.Core: 10_000},
			"bent_legs_10-20s":  {axis.Core: 20_000},
			"full_10-20s":       {axis.Core: 40_000},
			"full_20s+_or_vsit": {axis.Core: 80_000},
		},
	},
	{
		name:   "muscleUp",
		answer: func(s *Skills) string { return s.MuscleUp },
		choices: map[string]bonus{
			"no":         nil,
			"kipping":    {axis.Strength: 40_000, axis.StaticHolds: 15_000},
			"strict_1-3": {axis.Strength: 70_000, axis.StaticHolds: 35_000},
			"strict_4+":  {axis.Strength: 100_000, axis.StaticHolds: 50_000},
		},
	},
	{
		name:   "archerPullUp",
		answer: func(s *Skills) string { return s.ArcherPullUp },
		choices: map[string]bonus{
			"no":            nil,
			"assisted":      nil,
			"full_3-5_each": {axis.Strength: 35_000},
			"full_6+_each":  {axis.Strength: 60_000},
		},
	},
	{
		name:   "oneArmPullUp",
		answer: func(s *Skills) string { return s.OneArmPullUp },
		choices: map[string]bonus{
			"no":            nil,
			"band_assisted": {axis.Strength: 50_000},
			"1_rep_clean":   {axis.Strength: 100_000},
			"2+_reps":       {axis.Strength: 150_000},
		},
	},
	{
		name:   "crowPose",
		answer: func(s *Skills) string { return s.CrowPose },
		choices: map[string]bonus{
			"no":            nil,
			"less_than_10s": {axis.Balance: 8_000},
			"10-30s":        {axis.Balance: 15_000},
			"30s+":          {axis.Balance: 25_000},
		},
	},
	{
		name:   "backLever",
		answer: func(s *Skills) string { return s.BackLever },
		choices: map[string]bonus{
			"no":       nil,
			"tuck":     {axis.StaticHolds: 20_000, axis.Strength: 10_000},
			"adv_tuck": {axis.StaticHolds: 40_000, axis.Strength: 20_000},
			"straddle": {axis.StaticHolds: 70_000, axis.Strength: 35_000},
			"full":     {axis.StaticHolds: 120_000, axis.Strength: 60_000},
		},
	},
	{
		name:   "ringSupport",
		answer: func(s *Skills) string { return s.RingSupport },
		choices: map[string]bonus{
			"no":              nil,
			"shaky":           {axis.Balance: 15_000, axis.StaticHolds: 10_000},
			"stable_30s":      {axis.Balance: 40_000, axis.StaticHolds: 30_000},
			"stable_60s+_RTO": {axis.Balance: 80_000, axis.StaticHolds: 60_000},
		},
	},
	{
		name:   "weightedPullUps",
		answer: func(s *Skills) string { return s.WeightedPullUps },
		choices: map[string]bonus{
			"no":        nil,
			"+10-20lbs": {axis.Strength: 45_000},
			"+25-40lbs": {axis.Strength: 80_000},
			"+45lbs+":   {axis.Strength: 120_000},
		},
	},
	{
		name:   "weightedDips",
		answer: func(s *Skills) string { return s.WeightedDips },
		choices: map[string]bonus{
			"no":        nil,
			"+10-20lbs": {axis.Strength: 40_000},
			"+25-40lbs": {axis.Strength: 70_000},
			"+45lbs+":   {axis.Strength: 110_000},
		},
	},
	{
		name:   "humanFlag",
		answer: func(s *Skills) string { return s.HumanFlag },
		choices: map[string]bonus{
			"no":       nil,
			"tuck":     {axis.StaticHolds: 30_000, axis.Core: 15_000},
			"adv_tuck": {axis.StaticHolds: 60_000, axis.Core: 30_000},
			"straddle": {axis.StaticHolds: 100_000, axis.Core: 50_000},
			"full":     {axis.StaticHolds: 180_000, axis.Core: 90_000},
		},
	},
	{
		name:   "abWheel",
		answer: func(s *Skills) string { return s.AbWheel },
		choices: map[string]bonus{
			"no":            nil,
			"knees_partial": {axis.Core: 20_000},
			"knees_full":    {axis.Core: 50_000},
			"standing":      {axis.Core: 100_000},
		},
	},
}

var trainingAges = map[Rank]string{
	RankD: "0-6 months",
	RankC: "6-18 months",
	RankB: "1.5-3 years",
	RankA: "3-5 years",
	RankS: "5+ years",
}

func recommendedExercises(rank Rank, eq Equipment) []string {
	pick := func(has bool, with, without string) string {
		if has {
			return with
		}
		return without
	}
	switch rank {
	case RankC:
		return []string{
			"Regular Push-ups", "Pull-ups (assisted or regular)", "Tuck L-Sit", "Lunges",
			pick(eq.ParallelBars, "Dips (assisted)", "Diamond Push-ups"),
		}
	case RankB:
		return []string{
			"Diamond Push-ups", "Pull-ups (10+ reps)", "Tuck Front Lever", "Pistol Squats",
			pick(eq.Rings, "Ring Dips", "Archer Push-ups"),
		}
	case RankA:
		return []string{
			"Archer Pull-ups", "L-Sit Pull-ups", "Straddle Front Lever", "Advanced Tuck Planche",
			"Muscle-up progressions",
		}
	case RankS:
		return []string{
			"Full Front Lever", "Full Planche", "One-Arm Pull-up", "Handstand Push-ups", "Muscle-ups (strict)",
		}
	case RankD:
	}
	return []string{
		"Wall Push-ups", "Dead Hang", "Plank Hold", "Bodyweight Squats",
		pick(eq.PullUpBar, "Scapular Pulls", "Australian Rows (low bar)"),
	}
}

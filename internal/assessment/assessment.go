// Package assessment turns an athlete's onboarding test results into a starting hexagon.
//
// Fundamental tests (push-ups, pull-ups, plank, ...) set a base rank from D to S. Optional skill answers can raise
// the rank but never lower it. The rank selects base XP per axis, and every test result on top of that adds a bonus
// to the axes it shows ability in.
package assessment

import (
	"fmt"
	"math"

	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/errors"
)

// ErrInvalidAnswer is returned for negative counts and answers outside a question's choices.
var ErrInvalidAnswer = errors.NewSentinel("invalid assessment answer")

// Rank is the D to S grade of an assessment.
type Rank string

const (
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

var rankOrder = []Rank{RankD, RankC, RankB, RankA, RankS}

func (r Rank) index() int {
	for i, o := range rankOrder {
		if o == r {
			return i
		}
	}
	return 0
}

// Level maps the rank onto the axis levels. A and S are both ELITE.
func (r Rank) Level() axis.Level {
	switch r {
	case RankC:
		return axis.Intermediate
	case RankB:
		return axis.Advanced
	case RankA, RankS:
		return axis.Elite
	case RankD:
		return axis.Beginner
	}
	return axis.Beginner
}

// Equipment is what the athlete has access to. It only changes the recommended exercises.
type Equipment struct {
	Floor           bool `json:"floor"           yaml:"floor"`
	PullUpBar       bool `json:"pullUpBar"       yaml:"pull_up_bar"`
	Rings           bool `json:"rings"           yaml:"rings"`
	ParallelBars    bool `json:"parallelBars"    yaml:"parallel_bars"`
	ResistanceBands bool `json:"resistanceBands" yaml:"resistance_bands"`
}

// Fundamentals are the tests every athlete takes. Counts are repetitions, durations are seconds. Empty answers
// count as not attempted.
type Fundamentals struct {
	PushUps           int    `json:"pushUps"                    yaml:"push_ups"`
	Dips              int    `json:"dips"                       yaml:"dips"`
	PullUps           int    `json:"pullUps"                    yaml:"pull_ups"`
	DeadHangSeconds   int    `json:"deadHangTime"               yaml:"dead_hang_seconds"`
	PlankSeconds      int    `json:"plankTime"                  yaml:"plank_seconds"`
	HollowHoldSeconds int    `json:"hollowBodyHold"             yaml:"hollow_hold_seconds"`
	Squats            int    `json:"squats"                     yaml:"squats"`
	PistolSquat       string `json:"pistolSquat"                yaml:"pistol_squat"`
	LSitAttempt       string `json:"lSitAttempt,omitempty"      yaml:"l_sit_attempt"`
	ShoulderMobility  string `json:"shoulderMobility,omitempty" yaml:"shoulder_mobility"`
	Bridge            string `json:"bridge,omitempty"           yaml:"bridge"`
	MaxPushUpsIn60s   int    `json:"maxPushUpsIn60s,omitempty"  yaml:"max_push_ups_in_60s"`
	CircuitEndurance  string `json:"circuitEndurance,omitempty" yaml:"circuit_endurance"`
}

// Skills are the advanced skill answers, asked only when AskSkills holds for the fundamentals.
type Skills struct {
	Handstand       string `json:"handstand"                 yaml:"handstand"`
	HandstandPushUp string `json:"handstandPushUp"           yaml:"handstand_push_up"`
	CrowPose        string `json:"crowPose,omitempty"        yaml:"crow_pose"`
	FrontLever      string `json:"frontLever"                yaml:"front_lever"`
	BackLever       string `json:"backLever,omitempty"       yaml:"back_lever"`
	Planche         string `json:"planche"                   yaml:"planche"`
	LSit            string `json:"lSit"                      yaml:"l_sit"`
	RingSupport     string `json:"ringSupport,omitempty"     yaml:"ring_support"`
	MuscleUp        string `json:"muscleUp"                  yaml:"muscle_up"`
	ArcherPullUp    string `json:"archerPullUp"              yaml:"archer_pull_up"`
	OneArmPullUp    string `json:"oneArmPullUp"              yaml:"one_arm_pull_up"`
	WeightedPullUps string `json:"weightedPullUps,omitempty" yaml:"weighted_pull_ups"`
	WeightedDips    string `json:"weightedDips,omitempty"    yaml:"weighted_dips"`
	HumanFlag       string `json:"humanFlag,omitempty"       yaml:"human_flag"`
	AbWheel         string `json:"abWheel,omitempty"         yaml:"ab_wheel"`
}

// Input is a complete assessment. Skills is nil when the athlete skipped the skill questions.
type Input struct {
	Equipment    Equipment    `json:"equipment"        yaml:"equipment"`
	Fundamentals Fundamentals `json:"fundamentals"     yaml:"fundamentals"`
	Skills       *Skills      `json:"skills,omitempty" yaml:"skills"`
}

// Result is the scored assessment.
type Result struct {
	Rank                 Rank                `json:"rank"`
	Level                axis.Level          `json:"level"`
	XP                   map[axis.Axis]int64 `json:"xp"`
	VisualValue          float64             `json:"visualValue"`
	VisualRank           string              `json:"visualRank"`
	AskSkills            bool                `json:"askSkills"`
	RecommendedExercises []string            `json:"recommendedExercises"`
	TrainingAge          string              `json:"estimatedTrainingAge"`
}

// AskSkills reports whether the fundamentals are strong enough for the skill questions to be worth asking.
func AskSkills(f Fundamentals) bool {
	return f.PullUps >= 5 && f.PushUps >= 10 && f.PlankSeconds >= 30 //nolint:mnd // skill question gate
}

// Evaluate validates in and scores it with the visual scale of rules.
func Evaluate(rules axis.Rules, in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	rank := BaseRank(in.Fundamentals)
	if in.Skills != nil {
		rank = UpgradeRank(rank, *in.Skills)
	}
	xp := XP(rank, in.Fundamentals, in.Skills)

	var sum int64
	for _, v := range xp {
		sum += v
	}
	avg := int64(math.Round(float64(sum) / float64(len(xp))))
	visual := rules.VisualValue(avg, rank.Level())

	return Result{
		Rank:                 rank,
		Level:                rank.Level(),
		XP:                   xp,
		VisualValue:          visual,
		VisualRank:           VisualRank(visual),
		AskSkills:            AskSkills(in.Fundamentals),
		RecommendedExercises: recommendedExercises(rank, in.Equipment),
		TrainingAge:          trainingAges[rank],
	}, nil
}

// Validate rejects negative counts and answers that are not one of a question's choices.
func (in Input) Validate() error {
	f := in.Fundamentals
	counts := []struct {
		name  string
		value int
	}{
		{"pushUps", f.PushUps},
		{"dips", f.Dips},
		{"pullUps", f.PullUps},
		{"deadHangTime", f.DeadHangSeconds},
		{"plankTime", f.PlankSeconds},
		{"hollowBodyHold", f.HollowHoldSeconds},
		{"squats", f.Squats},
		{"maxPushUpsIn60s", f.MaxPushUpsIn60s},
	}
	for _, c := range counts {
		if c.value < 0 {
			return fmt.Errorf("%w: %s is %d", ErrInvalidAnswer, c.name, c.value)
		}
	}
	for _, q := range fundamentalQuestions {
		if err := q.check(q.answer(&f)); err != nil {
			return err
		}
	}
	if in.Skills == nil {
		return nil
	}
	for _, q := range skillQuestions {
		if err := q.check(q.answer(in.Skills)); err != nil {
			return err
		}
	}
	return nil
}

// BaseRank grades the fundamentals alone. Every threshold of a rank must be met.
func BaseRank(f Fundamentals) Rank {
	switch {
	case f.PushUps >= 50 && f.PullUps >= 30 && f.PlankSeconds >= 180 && f.Dips >= 20:
		return RankS
	case f.PushUps >= 31 && f.PullUps >= 16 && f.PlankSeconds >= 90 && f.Dips >= 12 && f.HollowHoldSeconds >= 30:
		return RankA
	case f.PushUps >= 16 && f.PullUps >= 6 && f.PlankSeconds >= 60 &&
		(f.Dips >= 5 || f.PistolSquat == "1-3" || f.PistolSquat == "4-8"):
		return RankB
	case f.PushUps >= 6 && f.PullUps >= 1 && f.PlankSeconds >= 30 && f.HollowHoldSeconds >= 10:
		return RankC
	default:
		return RankD
	}
}

// SkillRank grades the highest tier any skill answer reaches.
func SkillRank(s Skills) Rank {
	switch {
	case s.FrontLever == "full_3s+" || s.Planche == "full_3s+" || s.OneArmPullUp == "2+_reps" ||
		(s.HandstandPushUp == "freestanding" && s.MuscleUp == "strict_4+"):
		return RankS
	case s.FrontLever == "one_leg_3-8s" || s.FrontLever == "straddle_3-8s" || s.Planche == "straddle_3-8s" ||
		s.MuscleUp == "strict_1-3" || s.MuscleUp == "strict_4+" || s.OneArmPullUp == "1_rep_clean" ||
		s.LSit == "full_20s+_or_vsit" || (s.HandstandPushUp == "full_wall_6+" && s.Handstand == "freestanding_15s+"):
		return RankA
	case s.FrontLever == "tuck_5-10s" || s.FrontLever == "adv_tuck_5-10s" || s.Planche == "adv_tuck_5-10s" ||
		s.LSit == "full_10-20s" || s.ArcherPullUp == "full_3-5_each" || s.ArcherPullUp == "full_6+_each" ||
		s.MuscleUp == "kipping" || s.HandstandPushUp == "full_wall_1-5":
		return RankB
	case s.Planche == "frog_tuck_5-10s" || s.LSit == "tuck_10-20s" || s.Handstand == "wall_15-60s":
		return RankC
	default:
		return RankD
	}
}

// UpgradeRank raises base to the skill rank when that is higher.
func UpgradeRank(base Rank, s Skills) Rank {
	if sr := SkillRank(s); sr.index() > base.index() {
		return sr
	}
	return base
}

// XP returns the starting XP of every axis: the base XP of rank plus the bonus of every answer. skills may be nil.
func XP(rank Rank, f Fundamentals, skills *Skills) map[axis.Axis]int64 {
	xp := make(map[axis.Axis]int64, len(axis.All()))
	for a, v := range baseXP[rank] {
		xp[a] = v
	}
	add := func(b bonus) {
		for a, v := range b {
			xp[a] += v
		}
	}

	for _, t := range countTiers {
		add(t.award(t.count(&f)))
	}
	for _, q := range fundamentalQuestions {
		add(q.choices[q.answer(&f)])
	}
	if skills != nil {
		for _, q := range skillQuestions {
			add(q.choices[q.answer(skills)])
		}
	}
	return xp
}

var visualRanks = []struct {
	min  float64
	rank string
}{
	{9.5, "S+"}, {9.0, "S"}, {8.5, "S-"},
	{8.0, "A+"}, {7.0, "A"}, {6.0, "A-"},
	{5.5, "B+"}, {5.0, "B"}, {4.0, "B-"},
	{3.5, "C+"}, {2.5, "C"}, {2.0, "C-"},
	{1.5, "D+"}, {1.0, "D"},
}

// VisualRank converts a 0-10 visual value into a letter grade with a plus or minus, D- being the lowest.
func VisualRank(v float64) string {
	for _, r := range visualRanks {
		if v >= r.min {
			return r.rank
		}
	}
	return "D-"
}

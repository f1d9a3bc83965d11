// Package stage classifies an athlete into one of four training stages from the strength axis.
//
// Stage is never stored. It is recomputed from the current profile on every read so it cannot go stale after an XP
// award.
package stage

import (
	"fmt"
	"slices"

	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/errors"
)

// ErrUnknownStage is returned by Parse for anything other than STAGE_1..STAGE_4.
var ErrUnknownStage = errors.NewSentinel("unknown training stage")

// Stage is the discrete training stage of an athlete.
type Stage string

const (
	Stage1 Stage = "STAGE_1"
	Stage2 Stage = "STAGE_2"
	Stage3 Stage = "STAGE_3"
	Stage4 Stage = "STAGE_4"
)

var order = []Stage{Stage1, Stage2, Stage3, Stage4}

// All returns the stages from least to most demanding.
func All() []Stage {
	return slices.Clone(order)
}

// Rank returns the position of s in the stage order, or -1 for an unknown stage.
func (s Stage) Rank() int {
	return slices.Index(order, s)
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	return s.Rank() >= 0
}

// AtLeast reports whether s is the same as or more demanding than minimum.
func (s Stage) AtLeast(minimum Stage) bool {
	return s.Rank() >= minimum.Rank()
}

// Parse parses a stage name. It also accepts the bare stage number "1".."4".
func Parse(s string) (Stage, error) {
	st := Stage(s)
	if st.Valid() {
		return st, nil
	}
	st = Stage("STAGE_" + s)
	if st.Valid() {
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStage, s)
}

// Classify derives the stage from the strength axis level and XP. Other axes do not affect the stage.
//
// Unknown levels fall back to Stage1, the least demanding stage.
func Classify(strengthLevel axis.Level, strengthXP int64) Stage {
	switch strengthLevel {
	case axis.Beginner:
		return Stage1
	case axis.Intermediate:
		if strengthXP < axis.AdvancedMinXP {
			return Stage2
		}
		return Stage3
	case axis.Advanced:
		if strengthXP < axis.EliteMinXP {
			return Stage3
		}
		return Stage4
	case axis.Elite:
		return Stage4
	default:
		return Stage1
	}
}

// FromProfile classifies the athlete owning profile p.
func FromProfile(p axis.Profile) Stage {
	return Classify(p.Strength.Level, p.Strength.XP)
}

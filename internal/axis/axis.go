// Package axis models the six ability axes of an athlete and how accumulated XP translates into levels and the
// 0-10 visual scale.
package axis

import (
	"fmt"
	"slices"
	"strings"
)

// Axis identifies one of the six abilities an athlete progresses in.
type Axis string

const (
	Balance     Axis = "balance"
	Strength    Axis = "strength"
	StaticHolds Axis = "staticHolds"
	Core        Axis = "core"
	Endurance   Axis = "endurance"
	Mobility    Axis = "mobility"
)

var allAxes = []Axis{Balance, Strength, StaticHolds, Core, Endurance, Mobility}

// All returns the axes in their canonical order.
func All() []Axis {
	return slices.Clone(allAxes)
}

// Valid reports whether a is one of the six axes.
func (a Axis) Valid() bool {
	return slices.Contains(allAxes, a)
}

// DisplayName returns the human-readable axis name.
func (a Axis) DisplayName() string {
	switch a {
	case Balance:
		return "Balance & Handstands"
	case Strength:
		return "Strength & Power"
	case StaticHolds:
		return "Static Holds"
	case Core:
		return "Core & Conditioning"
	case Endurance:
		return "Muscular Endurance"
	case Mobility:
		return "Joint Mobility"
	default:
		return string(a)
	}
}

// ParseAxis parses an axis identifier such as "staticHolds".
func ParseAxis(s string) (Axis, error) {
	a := Axis(s)
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAxis, s)
	}
	return a, nil
}

// Level is the progression level of a single axis or of the athlete overall.
type Level string

const (
	Beginner     Level = "BEGINNER"
	Intermediate Level = "INTERMEDIATE"
	Advanced     Level = "ADVANCED"
	Elite        Level = "ELITE"
)

var levelOrder = []Level{Beginner, Intermediate, Advanced, Elite}

// Levels returns the levels from lowest to highest.
func Levels() []Level {
	return slices.Clone(levelOrder)
}

// Rank returns the position of l in the level order, or -1 for an unknown level.
func (l Level) Rank() int {
	return slices.Index(levelOrder, l)
}

// Valid reports whether l is one of the four levels.
func (l Level) Valid() bool {
	return l.Rank() >= 0
}

// ParseLevel parses a level name such as "ADVANCED", ignoring case.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
	return l, nil
}

// Band is the XP range [Min, Max) occupied by a level. Max is zero for the open ended ELITE band.
type Band struct {
	Min int64
	Max int64
}

// XP thresholds shared by every axis.
const (
	IntermediateMinXP int64 = 48_000
	AdvancedMinXP     int64 = 144_000
	EliteMinXP        int64 = 384_000

	// DefaultEliteCeilingXP caps the open ended ELITE band when interpolating the visual value.
	DefaultEliteCeilingXP int64 = 1_000_000
)

// MaxXP bounds the XP of a single axis. Every value up to it converts to float64 exactly.
const MaxXP int64 = 1 << 53

// Visual scale constants.
const (
	MaxVisualValue   = 10.0
	visualBandWidth  = 2.5
	percentageFactor = 100
)

var bands = map[Level]Band{
	Beginner:     {Min: 0, Max: IntermediateMinXP},
	Intermediate: {Min: IntermediateMinXP, Max: AdvancedMinXP},
	Advanced:     {Min: AdvancedMinXP, Max: EliteMinXP},
	Elite:        {Min: EliteMinXP, Max: 0},
}

// BandOf returns the XP band of level l. Unknown levels get the BEGINNER band.
func BandOf(l Level) Band {
	b, ok := bands[l]
	if !ok {
		return bands[Beginner]
	}
	return b
}

// LevelFromXP returns the level whose band contains xp.
func LevelFromXP(xp int64) Level {
	switch {
	case xp >= EliteMinXP:
		return Elite
	case xp >= AdvancedMinXP:
		return Advanced
	case xp >= IntermediateMinXP:
		return Intermediate
	default:
		return Beginner
	}
}

// XPToNextLevel returns how much XP is missing to reach the next level. It is zero at ELITE.
func XPToNextLevel(xp int64) int64 {
	level := LevelFromXP(xp)
	if level == Elite {
		return 0
	}
	next := levelOrder[level.Rank()+1]
	return bands[next].Min - xp
}

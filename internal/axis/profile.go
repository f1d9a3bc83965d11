package axis

import (
	"fmt"
	"math"

	"github.com/myrjola/hexcoach/internal/errors"
)

var (
	// ErrInvalidDelta is returned when an XP award is negative or not a finite number.
	ErrInvalidDelta = errors.NewSentinel("invalid XP delta")
	// ErrInvalidXP is returned when a profile is built from XP outside 0..MaxXP.
	ErrInvalidXP    = errors.NewSentinel("invalid XP")
	ErrUnknownAxis  = errors.NewSentinel("unknown axis")
	ErrUnknownLevel = errors.NewSentinel("unknown level")
)

// State is the derived state of a single axis. Level and VisualValue are always recomputed from XP.
type State struct {
	XP          int64   `json:"xp"`
	Level       Level   `json:"level"`
	VisualValue float64 `json:"visualValue"`
}

// Profile holds the state of all six axes for one athlete. It is a value: operations return a new Profile.
type Profile struct {
	Balance     State `json:"balance"`
	Strength    State `json:"strength"`
	StaticHolds State `json:"staticHolds"`
	Core        State `json:"core"`
	Endurance   State `json:"endurance"`
	Mobility    State `json:"mobility"`
}

func (p *Profile) field(a Axis) *State {
	switch a {
	case Balance:
		return &p.Balance
	case Strength:
		return &p.Strength
	case StaticHolds:
		return &p.StaticHolds
	case Core:
		return &p.Core
	case Endurance:
		return &p.Endurance
	case Mobility:
		return &p.Mobility
	default:
		return nil
	}
}

// Get returns the state of axis a. Unknown axes return the zero state.
func (p Profile) Get(a Axis) State {
	if s := p.field(a); s != nil {
		return *s
	}
	return State{XP: 0, Level: Beginner, VisualValue: 0}
}

// XP returns the XP of every axis.
func (p Profile) XP() map[Axis]int64 {
	xp := make(map[Axis]int64, len(allAxes))
	for _, a := range allAxes {
		xp[a] = p.Get(a).XP
	}
	return xp
}

// Levels returns the level of every axis in canonical axis order.
func (p Profile) Levels() []Level {
	levels := make([]Level, 0, len(allAxes))
	for _, a := range allAxes {
		levels = append(levels, p.Get(a).Level)
	}
	return levels
}

// NewProfile builds a profile from initial XP per axis. Axes missing from initial start at zero.
func (r Rules) NewProfile(initial map[Axis]int64) (Profile, error) {
	var p Profile
	for a, xp := range initial {
		if !a.Valid() {
			return Profile{}, fmt.Errorf("%w: %q", ErrUnknownAxis, a)
		}
		if xp < 0 || xp > MaxXP {
			return Profile{}, fmt.Errorf("%w: %s has %d, want 0..%d", ErrInvalidXP, a, xp, MaxXP)
		}
	}
	for _, a := range allAxes {
		*p.field(a) = r.State(initial[a])
	}
	return p, nil
}

// Recompute rederives levels and visual values from the stored XP.
func (r Rules) Recompute(p Profile) Profile {
	for _, a := range allAxes {
		s := p.field(a)
		*s = r.State(s.XP)
	}
	return p
}

// AwardXP returns a copy of p where axis a gained delta XP. Fractional deltas are rounded to the nearest integer.
// No other axis is touched. An award that would take the axis past MaxXP is rejected.
func (r Rules) AwardXP(p Profile, a Axis, delta float64) (Profile, error) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 || delta > float64(MaxXP) {
		return p, fmt.Errorf("%w: %v", ErrInvalidDelta, delta)
	}
	s := p.field(a)
	if s == nil {
		return p, fmt.Errorf("%w: %q", ErrUnknownAxis, a)
	}
	d := int64(math.Round(delta))
	if s.XP > MaxXP-d {
		return p, fmt.Errorf("%w: %s at %d cannot gain %d", ErrInvalidDelta, a, s.XP, d)
	}
	*s = r.State(s.XP + d)
	return p, nil
}

// AwardAll applies every delta in xpPerAxis. Either all awards are applied or none.
func (r Rules) AwardAll(p Profile, xpPerAxis map[Axis]int64) (Profile, error) {
	for a := range xpPerAxis {
		if !a.Valid() {
			return p, fmt.Errorf("%w: %q", ErrUnknownAxis, a)
		}
	}
	next := p
	var err error
	for _, a := range allAxes {
		delta, ok := xpPerAxis[a]
		if !ok {
			continue
		}
		if next, err = r.AwardXP(next, a, float64(delta)); err != nil {
			return p, err
		}
	}
	return next, nil
}

// OverallLevel returns the most common level across the six axes, breaking ties by r.TieBreak.
func (r Rules) OverallLevel(p Profile) Level {
	counts := make(map[Level]int, len(levelOrder))
	for _, l := range p.Levels() {
		if !l.Valid() {
			l = Beginner
		}
		counts[l]++
	}

	best := Beginner
	bestCount := 0
	for _, l := range levelOrder {
		c := counts[l]
		switch {
		case c > bestCount:
			best, bestCount = l, c
		case c == bestCount && c > 0 && r.TieBreak == TieBreakHighest:
			best = l
		}
	}
	return best
}

// NewProfile uses DefaultRules.
func NewProfile(initial map[Axis]int64) (Profile, error) {
	return DefaultRules().NewProfile(initial)
}

// AwardXP uses DefaultRules.
func AwardXP(p Profile, a Axis, delta float64) (Profile, error) {
	return DefaultRules().AwardXP(p, a, delta)
}

// OverallLevel uses DefaultRules.
func OverallLevel(p Profile) Level {
	return DefaultRules().OverallLevel(p)
}

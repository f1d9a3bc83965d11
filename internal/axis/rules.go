package axis

import (
	"fmt"
	"math"
)

// TieBreak decides which level wins when several levels share the highest count in OverallLevel.
type TieBreak string

const (
	TieBreakHighest TieBreak = "highest"
	TieBreakLowest  TieBreak = "lowest"
)

// Valid reports whether t is a known tie-break policy.
func (t TieBreak) Valid() bool {
	return t == TieBreakHighest || t == TieBreakLowest
}

// Rules holds the tunable parts of the axis model.
type Rules struct {
	// TieBreak is applied by OverallLevel when the mode is ambiguous.
	TieBreak TieBreak
	// EliteCeilingXP is the XP at which the ELITE visual value reaches the top of the scale.
	EliteCeilingXP int64
}

// DefaultRules returns the rules used when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		TieBreak:       TieBreakHighest,
		EliteCeilingXP: DefaultEliteCeilingXP,
	}
}

// Validate checks that the rules are usable.
func (r Rules) Validate() error {
	if !r.TieBreak.Valid() {
		return fmt.Errorf("unknown tie-break policy %q", r.TieBreak)
	}
	if r.EliteCeilingXP <= EliteMinXP {
		return fmt.Errorf("elite ceiling %d must exceed %d", r.EliteCeilingXP, EliteMinXP)
	}
	return nil
}

func (r Rules) bandEnd(l Level) int64 {
	b := BandOf(l)
	if b.Max == 0 {
		return r.EliteCeilingXP
	}
	return b.Max
}

func (r Rules) progress(xp int64, l Level) float64 {
	b := BandOf(l)
	p := float64(xp-b.Min) / float64(r.bandEnd(l)-b.Min)
	return math.Max(0, math.Min(1, p))
}

// VisualValue interpolates xp linearly across the 2.5 unit band that level occupies on the 0-10 scale.
func (r Rules) VisualValue(xp int64, level Level) float64 {
	rank := level.Rank()
	if rank < 0 {
		rank = 0
		level = Beginner
	}
	v := float64(rank)*visualBandWidth + r.progress(xp, level)*visualBandWidth
	return math.Max(0, math.Min(MaxVisualValue, v))
}

// LevelProgress returns the percentage of the current level's band that xp has covered, rounded to 0..100.
func (r Rules) LevelProgress(xp int64) int {
	level := LevelFromXP(xp)
	return int(math.Round(r.progress(xp, level) * percentageFactor))
}

// State derives the full axis state from xp.
func (r Rules) State(xp int64) State {
	level := LevelFromXP(xp)
	return State{
		XP:          xp,
		Level:       level,
		VisualValue: r.VisualValue(xp, level),
	}
}

// VisualValue uses DefaultRules.
func VisualValue(xp int64, level Level) float64 {
	return DefaultRules().VisualValue(xp, level)
}

// LevelProgress uses DefaultRules.
func LevelProgress(xp int64) int {
	return DefaultRules().LevelProgress(xp)
}

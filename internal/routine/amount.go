package routine

import (
	"regexp"
	"strconv"
	"strings"
)

// Unit tells whether an amount counts repetitions or seconds.
type Unit string

const (
	UnitReps Unit = "reps"
	UnitTime Unit = "time"
)

// Amount is a parsed reps-or-time prescription.
type Amount struct {
	Value int  `json:"value"`
	Unit  Unit `json:"unit"`
}

// DefaultAmount is used for open-ended prescriptions such as "To failure" and for text without a number.
const DefaultAmount = 10

var (
	numberPattern  = regexp.MustCompile(`\d+`)
	rangePattern   = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
	secondsPattern = regexp.MustCompile(`\d\s*(?:s|secs?|seconds?)\b`)
)

// ParseAmount reads a free-form prescription.
//
//	"To failure (8-15)" -> 10 reps
//	"5 min total"       -> 300 seconds
//	"30-45s"            -> 37 seconds
//	"45s each side"     -> 45 seconds
//	"8-12 reps"         -> 10 reps
//	"10 each direction" -> 20 reps
//	"5 slow"            -> 5 reps
//
// Ranges resolve to the floor of their midpoint and "each" doubles a single count. Timed prescriptions are never
// doubled.
func ParseAmount(expr string) Amount {
	s := strings.ToLower(strings.TrimSpace(expr))

	switch {
	case strings.Contains(s, "failure"):
		return Amount{Value: DefaultAmount, Unit: UnitReps}
	case strings.Contains(s, "min"):
		if n, ok := firstNumber(s); ok {
			return Amount{Value: n * 60, Unit: UnitTime} //nolint:mnd // seconds per minute
		}
		return Amount{Value: DefaultAmount, Unit: UnitTime}
	case secondsPattern.MatchString(s):
		if n, ok := midpoint(s); ok {
			return Amount{Value: n, Unit: UnitTime}
		}
		n, _ := firstNumber(s)
		return Amount{Value: n, Unit: UnitTime}
	}

	if n, ok := midpoint(s); ok {
		return Amount{Value: n, Unit: UnitReps}
	}
	n, ok := firstNumber(s)
	if !ok {
		return Amount{Value: DefaultAmount, Unit: UnitReps}
	}
	if strings.Contains(s, "each") {
		n *= 2
	}
	return Amount{Value: n, Unit: UnitReps}
}

// ParseRepsOrTime returns only the numeric value of ParseAmount.
func ParseRepsOrTime(expr string) int {
	return ParseAmount(expr).Value
}

func firstNumber(s string) (int, bool) {
	m := numberPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

func midpoint(s string) (int, bool) {
	m := rangePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	hi, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	return (lo + hi) / 2, true //nolint:mnd // midpoint
}

package stage

import (
	"fmt"
	"slices"
	"strings"
)

// Mode tells how close to failure an exercise is trained.
type Mode string

const (
	// ModeBuffer stops 2-3 repetitions or seconds short of failure. It is used for skill acquisition.
	ModeBuffer Mode = "BUFFER"
	// ModeFailure trains to or near muscular failure. It is used for strength building.
	ModeFailure Mode = "FAILURE"
)

// Valid reports whether m is BUFFER or FAILURE.
func (m Mode) Valid() bool {
	return m == ModeBuffer || m == ModeFailure
}

// ParseMode parses a training mode case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToUpper(s))
	if !m.Valid() {
		return "", fmt.Errorf("unknown training mode %q", s)
	}
	return m, nil
}

// Prescription is the default set, rest and reps-in-reserve scheme for an exercise.
type Prescription struct {
	Mode          Mode   `json:"mode"`
	Sets          int    `json:"sets"`
	RepsInReserve int    `json:"repsInReserve"`
	RestSeconds   int    `json:"restSeconds"`
	Notes         string `json:"notes"`
}

var skillCategories = []string{"SKILL_STATIC", "BALANCE"}

// Prescribe returns the recommended training scheme for an exercise category at stage s.
//
// Only Stage4 practises skills in buffer mode. Everything else is trained to failure.
func Prescribe(s Stage, category string) Prescription {
	if s == Stage4 && slices.Contains(skillCategories, strings.ToUpper(category)) {
		return Prescription{
			Mode:          ModeBuffer,
			Sets:          6,   //nolint:mnd // quality practice volume
			RepsInReserve: 3,   //nolint:mnd // stay fresh
			RestSeconds:   210, //nolint:mnd // 3.5 minutes
			Notes:         "Quality practice - stay fresh, focus on perfect form. Never train to failure.",
		}
	}

	p := Prescription{
		Mode:          ModeFailure,
		Sets:          4,  //nolint:mnd // foundation volume
		RepsInReserve: 1,  //nolint:mnd // near failure
		RestSeconds:   75, //nolint:mnd // 1.25 minutes
		Notes:         "Push hard - build strength and muscle. Train to or near failure.",
	}
	if s.AtLeast(Stage3) {
		p.Sets = 5          //nolint:mnd // weighted volume
		p.RestSeconds = 105 //nolint:mnd // 1.75 minutes
	}
	return p
}

// RepsInReserve returns the default reps in reserve for exercises trained in mode m.
func RepsInReserve(m Mode) int {
	if m == ModeBuffer {
		return 3 //nolint:mnd // buffer keeps 2-3 reps in the tank
	}
	return 0
}

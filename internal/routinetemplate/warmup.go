package routinetemplate

import "github.com/myrjola/hexcoach/internal/stage"

// ProtocolMove is a single movement of a joint preparation protocol.
type ProtocolMove struct {
	Name       string `json:"name"`
	RepsOrTime string `json:"repsOrTime"`
	Notes      string `json:"notes"`
}

// Protocol is a mandatory joint-specific warm-up.
type Protocol struct {
	Name    string         `json:"name"`
	Minutes int            `json:"duration"`
	Purpose string         `json:"purpose"`
	Moves   []ProtocolMove `json:"exercises"`
}

// WristProtocol is performed before any push training.
var WristProtocol = Protocol{
	Name:    "Wrist preparation",
	Minutes: 5, //nolint:mnd // five minutes
	Purpose: "Prevent wrist injuries in Planche/Handstand training",
	Moves: []ProtocolMove{
		{
			Name:       "Wrist Circles",
			RepsOrTime: "10 each direction",
			Notes:      "Mandatory before any push training - wrists are most injury-prone",
		},
		{Name: "Wrist Flexion Tilts", RepsOrTime: "10 reps", Notes: "Palm down, fingers back, lean back"},
		{Name: "Palm Push-ups", RepsOrTime: "8 reps", Notes: "Lift palm leaving fingers on floor - strengthening"},
		{Name: "Finger Push-ups", RepsOrTime: "8 reps", Notes: "Lift fingers leaving palm on floor"},
	},
}

// ShoulderProtocol is performed before any pull training and partly before push training.
var ShoulderProtocol = Protocol{
	Name:    "Shoulder preparation",
	Minutes: 5, //nolint:mnd // five minutes
	Purpose: "Scapular control is neurological command center for upper body",
	Moves: []ProtocolMove{
		{Name: "Shoulder Rotations", RepsOrTime: "10 each direction", Notes: "Full range of motion"},
		{Name: "Arm Circles with Band", RepsOrTime: "10 each direction", Notes: "Use resistance band or stick"},
		{Name: "Scapula Pull-ups", RepsOrTime: "8 reps", Notes: "Activation: Depression and retraction practice"},
		{Name: "Scapula Push-ups", RepsOrTime: "8 reps", Notes: "Activation: Protraction practice"},
	},
}

// Exercises expands the protocol moves into buffer-mode exercises with the given sets and rest.
func (p Protocol) Exercises(sets, restSeconds int) []Exercise {
	out := make([]Exercise, 0, len(p.Moves))
	for _, m := range p.Moves {
		out = append(out, Exercise{
			Name:        m.Name,
			Sets:        sets,
			RepsOrTime:  m.RepsOrTime,
			RestSeconds: restSeconds,
			Mode:        stage.ModeBuffer,
			Notes:       m.Notes,
		})
	}
	return out
}

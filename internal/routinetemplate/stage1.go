package routinetemplate

import "github.com/myrjola/hexcoach/internal/stage"

func failure(name string, sets int, repsOrTime string, rest int, notes string) Exercise {
	return Exercise{
		Name: name, Sets: sets, RepsOrTime: repsOrTime, RestSeconds: rest, Mode: stage.ModeFailure, Notes: notes,
	}
}

func buffer(name string, sets int, repsOrTime string, rest int, notes string) Exercise {
	return Exercise{
		Name: name, Sets: sets, RepsOrTime: repsOrTime, RestSeconds: rest, Mode: stage.ModeBuffer, Notes: notes,
	}
}

const stage1Philosophy = "100% Mode 2 (Failure) - Building the motor. NO skills yet."

var stage1Push = Template{
	Stage:        stage.Stage1,
	Session:      SessionPush,
	TotalMinutes: 45,
	Philosophy:   stage1Philosophy,
	Sections: []Section{
		{
			Kind:      SectionWarmup,
			Minutes:   10,
			Purpose:   "Joint preparation and injury prevention",
			Exercises: append(WristProtocol.Exercises(2, 30), ShoulderProtocol.Exercises(2, 30)[:2]...),
		},
		{
			Kind:    SectionFundamentalStrength,
			Minutes: 30,
			Purpose: "Build push strength capacity (Mode 2 - to failure)",
			Exercises: []Exercise{
				failure("Incline Push-ups", 3, "To failure", 90,
					"Use high bar/surface. Go until you cannot do one more rep with good form."),
				failure("Negative Dips", 3, "5 slow", 120,
					"5 second descent. Use assistance to get to top, then control the descent."),
				failure("Plank Hold", 3, "30-45s", 60, "Hollow body position. Hold until form breaks."),
				failure("Scapula Push-ups", 3, "12 reps", 60, "Learn protraction - essential for future Planche"),
			},
		},
		{
			Kind:    SectionCooldown,
			Minutes: 5,
			Purpose: "Recovery and flexibility",
			Exercises: []Exercise{
				buffer("Chest Doorway Stretch", 2, "45s each side", 30, "Static stretching. Breathe deeply."),
				buffer("Shoulder Circles", 2, "10 each direction", 0, "Gentle mobility to finish"),
			},
		},
	},
}

var stage1Pull = Template{
	Stage:        stage.Stage1,
	Session:      SessionPull,
	TotalMinutes: 45,
	Philosophy:   stage1Philosophy,
	Sections: []Section{
		{
			Kind:      SectionWarmup,
			Minutes:   10,
			Purpose:   "Joint preparation and injury prevention",
			Exercises: ShoulderProtocol.Exercises(2, 30),
		},
		{
			Kind:    SectionFundamentalStrength,
			Minutes: 30,
			Purpose: "Build pull strength capacity (Mode 2 - to failure)",
			Exercises: []Exercise{
				failure("Negative Pull-ups", 3, "5 slow", 120,
					"5-8 second descent. Use box to get to top, then control the descent. "+
						"Most important exercise for beginners."),
				failure("Assisted Pull-ups (Band)", 3, "To failure", 120,
					"Use band assistance. Go until you cannot do one more rep."),
				failure("Dead Hang", 3, "20-30s", 90,
					"Build grip and tendon strength. Shoulders active (depressed)."),
				failure("Scapula Pulls", 3, "10 reps", 60,
					"Learn depression and retraction. Foundation for all pulling."),
			},
		},
		{
			Kind:    SectionCooldown,
			Minutes: 5,
			Purpose: "Recovery and flexibility",
			Exercises: []Exercise{
				buffer("Hanging Shoulder Stretch", 2, "30s", 30, "Gentle hang, let shoulders relax"),
				buffer("Lat Stretch", 2, "45s each side", 0, "Reach overhead and lean to side"),
			},
		},
	},
}

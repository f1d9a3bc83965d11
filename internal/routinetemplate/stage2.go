package routinetemplate

import "github.com/myrjola/hexcoach/internal/stage"

var stage2Push = Template{
	Stage:        stage.Stage2,
	Session:      SessionPush,
	TotalMinutes: 50,
	Philosophy:   "Mode 2 (Failure) with higher volume. Introduce wall handstand for balance.",
	Sections: []Section{
		{
			Kind:    SectionWarmup,
			Minutes: 10,
			Purpose: "Joint preparation",
			Exercises: []Exercise{
				buffer("Wrist Mobility", 2, "5 min total", 0, "Full wrist warmup protocol - mandatory"),
				buffer("Shoulder Activation", 2, "8 reps each", 30, "Scapula push-ups and circles"),
			},
		},
		{
			Kind:    SectionFundamentalStrength,
			Minutes: 35,
			Purpose: "Increase volume on push fundamentals (Mode 2)",
			Exercises: []Exercise{
				failure("Regular Push-ups", 4, "To failure (8-15)", 90,
					"Full range, hollow body form. Train to failure."),
				failure("Parallel Bar Dips", 4, "To failure (4-12)", 120,
					"Full range. Shoulders depressed. If need band assist, use it."),
				failure("Diamond Push-ups", 3, "8-12 reps", 90, "Tricep emphasis"),
				buffer("Wall Handstand Hold (chest to wall)", 3, "30-45s", 120,
					"Introduction to inversion. Teaches correct hollow body line and shoulder alignment."),
				failure("Plank to Failure", 3, "45-60s", 60, "Core endurance"),
			},
		},
		{
			Kind:    SectionCooldown,
			Minutes: 5,
			Purpose: "Recovery",
			Exercises: []Exercise{
				buffer("Chest and Shoulder Stretches", 2, "60s", 0, "Static stretching"),
			},
		},
	},
}

var stage2Pull = Template{
	Stage:        stage.Stage2,
	Session:      SessionPull,
	TotalMinutes: 50,
	Philosophy:   "Mode 2 (Failure) with higher volume. Master clean pull-ups.",
	Sections: []Section{
		{
			Kind:    SectionWarmup,
			Minutes: 10,
			Purpose: "Joint preparation",
			Exercises: []Exercise{
				buffer("Shoulder Mobility and Activation", 2, "5 min total", 0,
					"Scapula pulls, circles, activation"),
			},
		},
		{
			Kind:    SectionFundamentalStrength,
			Minutes: 35,
			Purpose: "Increase volume on pull fundamentals (Mode 2)",
			Exercises: []Exercise{
				failure("Pull-ups (Clean Form)", 4, "To failure (5-12)", 150,
					"Supinated or pronated grip. Full range. Train to failure."),
				failure("Chin-ups", 3, "To failure (5-10)", 120, "Bicep emphasis variant"),
				failure("Aussie Pull-ups (Horizontal Rows)", 4, "12-15 reps", 90,
					"Pull to chest. Scapular retraction at top."),
				failure("L-Hang (bent legs)", 3, "15-30s", 90, "Introduction to L-sit path. Bent legs for now."),
				failure("Dead Hang", 2, "45-60s", 90, "Build grip endurance"),
			},
		},
		{
			Kind:    SectionCooldown,
			Minutes: 5,
			Purpose: "Recovery",
			Exercises: []Exercise{
				buffer("Lat and Shoulder Stretches", 2, "60s", 0, "Static stretching"),
			},
		},
	},
}

var stage2Legs = Template{
	Stage:        stage.Stage2,
	Session:      SessionLegs,
	TotalMinutes: 40,
	Philosophy:   "Mode 2 (Failure). Build unilateral leg strength.",
	Sections: []Section{
		{
			Kind:    SectionWarmup,
			Minutes: 8,
			Purpose: "Lower body preparation",
			Exercises: []Exercise{
				buffer("Leg Swings and Hip Circles", 2, "10 each", 0, "Dynamic mobility"),
				buffer("Bodyweight Squats", 2, "15 reps", 30, "Warmup sets"),
			},
		},
		{
			Kind:    SectionFundamentalStrength,
			Minutes: 27,
			Purpose: "Build leg strength (Mode 2)",
			Exercises: []Exercise{
				failure("Bodyweight Squats", 4, "20-40 reps", 90, "High volume to build capacity"),
				failure("Bulgarian Split Squats", 3, "12-15 each leg", 90,
					"Unilateral strength - progression to pistol squat"),
				failure("Lunges", 3, "12 each leg", 60, "Walking or stationary"),
				failure("Glute Bridges", 3, "15-20 reps", 60, "Posterior chain activation"),
			},
		},
		{
			Kind:    SectionCooldown,
			Minutes: 5,
			Purpose: "Recovery",
			Exercises: []Exercise{
				buffer("Quad and Hamstring Stretches", 2, "60s each", 0, "Static stretching"),
			},
		},
	},
}

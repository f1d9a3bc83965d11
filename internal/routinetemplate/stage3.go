package routinetemplate

import "github.com/myrjola/hexcoach/internal/stage"

var stage3WeightedPush = Template{
	Stage:        stage.Stage3,
	Session:      SessionWeightedPush,
	TotalMinutes: 60,
	Philosophy:   "Weighted strength (Mode 2) is the secret. Start introducing skill practice (Mode 1).",
	Sections: []Section{
		{
			Kind:    SectionWarmup,
			Minutes: 12,
			Purpose: "Thorough joint prep for weighted work",
			Exercises: []Exercise{
				buffer("Wrist Prep Protocol", 1, "5 min", 0, "Full protocol - critical for upcoming planche work"),
				buffer("Shoulder Mobility and Activation", 3, "10 reps", 30,
					"Scapula push-ups, circles, band dislocations"),
			},
		},
		{
			Kind:    SectionSkillPractice,
			Minutes: 15,
			Purpose: "Introduction to skills (Mode 1 - buffer)",
			Exercises: []Exercise{
				buffer("Planche Leans", 5, "15s", 120,
					"MODE 1: Foundation of planche. Focus on protraction and forward lean. Stay fresh."),
				buffer("Frog Stand Practice", 4, "20-30s", 90, "MODE 1: Balance on hands skill. Quality practice."),
			},
		},
		{
			Kind:    SectionFundamentalStrength,
			Minutes: 28,
			Purpose: "Weighted strength - THE KEY to elite skills (Mode 2)",
			Exercises: []Exercise{
				failure("Weighted Dips", 4, "8-12 reps", 180,
					"MODE 2: Start with +10-15% bodyweight. THIS is your motor. Work up to +40% for elite skills."),
				failure("Weighted Push-ups (vest or band)", 3, "10-15 reps", 120, "Adding external load to push-ups"),
				failure("Pike Push-ups (elevated)", 3, "10-12 reps", 90, "Vertical pushing strength for HSPU path"),
				failure("Tuck L-Sit", 3, "20-30s", 90, "Core compression strength"),
			},
		},
		{
			Kind:    SectionCooldown,
			Minutes: 5,
			Purpose: "Recovery",
			Exercises: []Exercise{
				buffer("Wrist and Shoulder Stretches", 2, "60s", 0, "MANDATORY wrist cooldown after planche work"),
			},
		},
	},
}

var stage3WeightedPull = Template{
	Stage:        stage.Stage3,
	Session:      SessionWeightedPull,
	TotalMinutes: 60,
	Philosophy:   "Weighted pull strength is foundation for OAP and levers. Introduce skill practice.",
	Sections: []Section{
		{
			Kind:    SectionWarmup,
			Minutes: 10,
			Purpose: "Joint prep for weighted pulling",
			Exercises: []Exercise{
				buffer("Shoulder Mobility Complex", 1, "5 min", 0, "Full shoulder warmup"),
				buffer("Scapula Activation", 3, "10 reps", 30, "Scapula pulls - create active shoulder position"),
			},
		},
		{
			Kind:    SectionSkillPractice,
			Minutes: 15,
			Purpose: "Introduction to lever skills (Mode 1)",
			Exercises: []Exercise{
				buffer("Tuck Front Lever Hold", 5, "10-15s", 150,
					"MODE 1: First static lever position. Focus on hollow body and lat engagement."),
				buffer("Skin the Cat", 4, "5 reps", 90, "Shoulder mobility and lever prep"),
			},
		},
		{
			Kind:    SectionFundamentalStrength,
			Minutes: 30,
			Purpose: "Weighted pull strength - Foundation for OAP (Mode 2)",
			Exercises: []Exercise{
				failure("Weighted Pull-ups", 4, "8-12 reps", 180,
					"MODE 2: Start +10-15% BW. Goal: 10+ reps with +25% BW for one-arm pull-up."),
				failure("Archer Pull-ups", 3, "6-8 each side", 120, "Unilateral strength progression"),
				failure("L-Sit Pull-ups", 3, "5-8 reps", 120, "Combined skill - pull + core tension"),
				failure("Dragon Flag Negatives", 3, "5 slow reps", 90, "Core anti-extension for front lever"),
			},
		},
		{
			Kind:    SectionCooldown,
			Minutes: 5,
			Purpose: "Recovery",
			Exercises: []Exercise{
				buffer("Lat and Shoulder Stretches", 2, "60s", 0, "Deep stretching"),
			},
		},
	},
}

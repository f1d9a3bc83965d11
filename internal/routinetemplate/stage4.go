package routinetemplate

import "github.com/myrjola/hexcoach/internal/stage"

const stage4Philosophy = "Bifurcated: Skills (Mode 1 buffer) + Weighted Strength (Mode 2 failure)"

var stage4SkillsPushWeighted = Template{
	Stage:        stage.Stage4,
	Session:      SessionSkillsPushWeighted,
	TotalMinutes: 70,
	Philosophy:   stage4Philosophy,
	Sections: []Section{
		{
			Kind:    SectionWarmup,
			Minutes: 10,
			Purpose: "MANDATORY joint-specific prep for Planche work",
			Exercises: []Exercise{
				buffer("Wrist Mobility Complex", 1, "5 min", 0,
					"MANDATORY: Circles, tilts, palm/finger push-ups. Wrists are most injury-prone joint."),
				buffer("Scapula Protraction Activation", 3, "10 reps", 30,
					"Scapula push-ups. Essential for Planche - activate serratus anterior."),
				buffer("Planche Leans (warmup)", 2, "15s", 60,
					"Light leans to prepare nervous system for skill work"),
			},
		},
		{
			Kind:    SectionSkillPractice,
			Minutes: 25,
			Purpose: "Motor learning (neurological) - Mode 1 with BUFFER",
			Exercises: []Exercise{
				buffer("Straddle Planche Hold Practice", 6, "5-10s", 180,
					"MODE 1: Stay 2-3 reps from failure. Fresh nervous system = better learning. "+
						"Focus on perfect protraction and body line."),
				buffer("Handstand Balance Practice", 5, "30s", 180,
					"MODE 1: Quality over quantity. Stop when balance degrades. Accumulate perfect reps."),
			},
		},
		{
			Kind:    SectionSkillSupport,
			Minutes: 15,
			Purpose: "Specific skill strength (Mode 2 - near failure)",
			Exercises: []Exercise{
				failure("Pseudo Planche Push-ups", 3, "8-12 reps", 120,
					"MODE 2: Most specific Planche builder. Lean forward maximally, train hard."),
				failure("Pike Push-ups (elevated)", 3, "10-12 reps", 90, "Building shoulder strength for HSPU path"),
			},
		},
		{
			Kind:    SectionFundamentalStrength,
			Minutes: 15,
			Purpose: "Maintain/build brute strength - Mode 2 (to failure)",
			Exercises: []Exercise{
				failure("Weighted Dips", 3, "8-10 reps", 180,
					"MODE 2: +40% bodyweight. This is your motor. Push to near failure."),
				failure("Dumbbell Bench Press", 2, "8-10 reps", 120,
					"Optional hybrid exercise for maximum hypertrophy"),
			},
		},
		{
			Kind:    SectionCooldown,
			Minutes: 5,
			Purpose: "Recovery and flexibility",
			Exercises: []Exercise{
				buffer("Wrist Stretches", 2, "60s", 0, "MANDATORY after Planche work. Prevent chronic injury."),
				buffer("Chest and Shoulder Stretches", 2, "45s each", 30, "Static stretching, deep breathing"),
			},
		},
	},
}

var stage4SkillsPullWeighted = Template{
	Stage:        stage.Stage4,
	Session:      SessionSkillsPullWeighted,
	TotalMinutes: 70,
	Philosophy:   stage4Philosophy,
	Sections: []Section{
		{
			Kind:    SectionWarmup,
			Minutes: 10,
			Purpose: "Joint-specific prep for Front Lever work",
			Exercises: []Exercise{
				buffer("Shoulder Mobility Complex", 1, "5 min", 0,
					"Rotations, arm circles, doorway stretch. Prepare shoulders for lever stress."),
				buffer("Scapula Depression Activation", 3, "10 reps", 30,
					`Scapula pull-ups. Create "active shoulders" position - critical for levers.`),
				buffer("German Hang", 2, "15s", 60, "Prep shoulder extension ROM for front lever"),
			},
		},
		{
			Kind:    SectionSkillPractice,
			Minutes: 25,
			Purpose: "Motor learning (neurological) - Mode 1 with BUFFER",
			Exercises: []Exercise{
				buffer("Straddle Front Lever Hold Practice", 6, "8-12s", 180,
					"MODE 1: Stay fresh. 6 sets of quality practice beats 3 sets to failure. Lats + core tension."),
				buffer("One-Arm Pull-up Progressions", 5, "3-5 reps each", 180,
					"MODE 1: Archer pull-ups or assisted OAP. Perfect form, no failure."),
			},
		},
		{
			Kind:    SectionSkillSupport,
			Minutes: 15,
			Purpose: "Specific skill strength (Mode 2)",
			Exercises: []Exercise{
				failure("Front Lever Raises (Tuck)", 3, "8-10 reps", 120,
					"Dynamic lever work - builds specific pulling strength"),
				failure("Dragon Flags", 3, "5 reps", 90, "Core anti-extension - necessary for front lever"),
			},
		},
		{
			Kind:    SectionFundamentalStrength,
			Minutes: 15,
			Purpose: "Maintain/build brute strength - Mode 2 (to failure)",
			Exercises: []Exercise{
				failure("Weighted Pull-ups", 3, "8-10 reps", 180,
					"MODE 2: +25-30% bodyweight. Your strength foundation. Push hard."),
				failure("Barbell Rows (optional)", 2, "8-10 reps", 120,
					"Hybrid exercise for maximum back thickness"),
			},
		},
		{
			Kind:    SectionCooldown,
			Minutes: 5,
			Purpose: "Recovery and flexibility",
			Exercises: []Exercise{
				buffer("Hanging Decompression", 1, "60s", 0, "Let spine decompress, shoulders relax"),
				buffer("Lat and Shoulder Stretches", 2, "45s each", 30, "Static stretching, deep breathing"),
			},
		},
	},
}

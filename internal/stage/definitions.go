package stage

// Definition describes what a stage means for training.
type Definition struct {
	Stage            Stage    `json:"stage"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	EntryRequirement string   `json:"entryRequirement"`
	TrainingFocus    []string `json:"trainingFocus"`
	PrimaryMode      Mode     `json:"primaryMode"`
	UsesWeights      bool     `json:"usesWeights"`
	UsesSkills       bool     `json:"usesSkills"`
	RecommendedSplit []string `json:"recommendedSplit"`
}

var definitions = map[Stage]Definition{
	Stage1: {
		Stage:            Stage1,
		Name:             "Foundation",
		Description:      "Building fundamental strength - cannot perform basic exercises",
		EntryRequirement: "Cannot do 1 pull-up or 1 dip",
		TrainingFocus:    []string{"Push fundamentals", "Pull fundamentals", "Core basics"},
		PrimaryMode:      ModeFailure,
		UsesWeights:      false,
		UsesSkills:       false,
		RecommendedSplit: []string{"Push", "Pull", "Push", "Rest", "Pull", "Push", "Rest"},
	},
	Stage2: {
		Stage:            Stage2,
		Name:             "Consolidation",
		Description:      "Developing work capacity and introducing basic skills",
		EntryRequirement: "1-12 pull-ups, 1-15 dips",
		TrainingFocus:    []string{"Push/Pull volume", "Legs", "Core", "Intro Handstand"},
		PrimaryMode:      ModeFailure,
		UsesWeights:      false,
		UsesSkills:       true,
		RecommendedSplit: []string{"Push", "Legs", "Pull", "Rest", "Push", "Pull", "Rest"},
	},
	Stage3: {
		Stage:            Stage3,
		Name:             "Weighted Strength",
		Description:      "Building elite strength foundation with weighted calisthenics",
		EntryRequirement: "12+ pull-ups, 15+ dips",
		TrainingFocus:    []string{"Weighted pull-ups/dips", "Legs", "Skill support strength"},
		PrimaryMode:      ModeFailure,
		UsesWeights:      true,
		UsesSkills:       true,
		RecommendedSplit: []string{
			"Weighted Push", "Legs", "Weighted Pull", "Rest", "Weighted Push", "Weighted Pull", "Rest",
		},
	},
	Stage4: {
		Stage:            Stage4,
		Name:             "Elite Specialization",
		Description:      "Skill mastery with dual-mode training (skills + weighted strength)",
		EntryRequirement: "10+ pull-ups +25% BW, 10+ dips +40% BW",
		TrainingFocus:    []string{"Skill specialization", "Weighted maintenance", "Advanced skills"},
		PrimaryMode:      ModeBuffer,
		UsesWeights:      true,
		UsesSkills:       true,
		RecommendedSplit: []string{
			"Skills + Weighted", "Legs", "Skills + Weighted", "Rest", "Skills Only", "Skills Only", "Rest",
		},
	},
}

// Describe returns the definition of s. Unknown stages describe Stage1.
func Describe(s Stage) Definition {
	d, ok := definitions[s]
	if !ok {
		return definitions[Stage1]
	}
	return d
}

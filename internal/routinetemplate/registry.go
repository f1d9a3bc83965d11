package routinetemplate

import "github.com/myrjola/hexcoach/internal/stage"

// registry maps every authored key to its template. Leg days after Stage2 reuse the Stage2 leg session instead of
// falling back to DefaultKey, which would schedule a push day on a legs day.
var registry = map[Key]Template{
	KeyFor(stage.Stage1, SessionPush): stage1Push,
	KeyFor(stage.Stage1, SessionPull): stage1Pull,

	KeyFor(stage.Stage2, SessionPush): stage2Push,
	KeyFor(stage.Stage2, SessionPull): stage2Pull,
	KeyFor(stage.Stage2, SessionLegs): stage2Legs,

	KeyFor(stage.Stage3, SessionWeightedPush): stage3WeightedPush,
	KeyFor(stage.Stage3, SessionWeightedPull): stage3WeightedPull,
	KeyFor(stage.Stage3, SessionLegs):         stage2Legs,

	KeyFor(stage.Stage4, SessionSkillsPushWeighted): stage4SkillsPushWeighted,
	KeyFor(stage.Stage4, SessionSkillsPullWeighted): stage4SkillsPullWeighted,
	KeyFor(stage.Stage4, SessionLegs):               stage2Legs,
}

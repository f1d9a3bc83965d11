package routinetemplate

import (
	"fmt"
	"time"

	"github.com/myrjola/hexcoach/internal/stage"
)

// DaysPerWeek is the length of a weekly split.
const DaysPerWeek = 7

// Split assigns a session type to each weekday, indexed from time.Sunday.
type Split [DaysPerWeek]SessionType

var splits = map[stage.Stage]Split{
	stage.Stage1: {SessionPush, SessionPull, SessionPush, SessionRest, SessionPull, SessionPush, SessionRest},
	stage.Stage2: {SessionPush, SessionLegs, SessionPull, SessionRest, SessionPush, SessionPull, SessionRest},
	stage.Stage3: {
		SessionWeightedPush, SessionLegs, SessionWeightedPull, SessionRest,
		SessionWeightedPush, SessionWeightedPull, SessionRest,
	},
	stage.Stage4: {
		SessionSkillsPushWeighted, SessionLegs, SessionSkillsPullWeighted, SessionRest,
		SessionSkillsPushOnly, SessionSkillsPullOnly, SessionRest,
	},
}

// skills-only days have no authored template yet.
var sessionAliases = map[SessionType]SessionType{
	SessionSkillsPushOnly: SessionSkillsPushWeighted,
	SessionSkillsPullOnly: SessionSkillsPullWeighted,
}

// WeeklySplit returns the raw split of s. Unknown stages use the Stage1 split.
func WeeklySplit(s stage.Stage) Split {
	sp, ok := splits[s]
	if !ok {
		return splits[stage.Stage1]
	}
	return sp
}

// ValidDay reports whether day is a weekday index between Sunday and Saturday.
func ValidDay(day time.Weekday) bool {
	return day >= time.Sunday && day <= time.Saturday
}

// SessionFor returns the session type scheduled for day at stage s, with unauthored session types replaced by their
// closest authored equivalent.
func SessionFor(s stage.Stage, day time.Weekday) (SessionType, error) {
	if !ValidDay(day) {
		return "", fmt.Errorf("day of week %d out of range", day)
	}
	t := WeeklySplit(s)[day]
	if alias, ok := sessionAliases[t]; ok {
		return alias, nil
	}
	return t, nil
}

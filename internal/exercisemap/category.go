package exercisemap

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/errors"
)

// ErrUnknownCategory is returned by ParseCategory for names outside the category table.
var ErrUnknownCategory = errors.NewSentinel("unknown exercise category")

// Category is the coarse movement family of an exercise.
type Category string

const (
	Push        Category = "PUSH"
	Pull        Category = "PULL"
	Core        Category = "CORE"
	Balance     Category = "BALANCE"
	LowerBody   Category = "LOWER_BODY"
	Statics     Category = "STATICS"
	WarmUp      Category = "WARM_UP"
	Legs        Category = "LEGS"
	Cardio      Category = "CARDIO"
	Flexibility Category = "FLEXIBILITY"
)

type categoryAxis struct {
	primary   axis.Axis
	secondary []axis.Axis
}

var categoryAxes = map[Category]categoryAxis{
	Push:        {primary: axis.Strength, secondary: []axis.Axis{axis.StaticHolds}},
	Pull:        {primary: axis.Strength, secondary: []axis.Axis{axis.StaticHolds}},
	Core:        {primary: axis.Core, secondary: []axis.Axis{axis.Balance}},
	Balance:     {primary: axis.Balance, secondary: []axis.Axis{axis.StaticHolds, axis.Core}},
	LowerBody:   {primary: axis.Endurance, secondary: nil},
	Legs:        {primary: axis.Endurance, secondary: nil},
	Statics:     {primary: axis.StaticHolds, secondary: []axis.Axis{axis.Balance, axis.Core}},
	WarmUp:      {primary: axis.Mobility, secondary: nil},
	Cardio:      {primary: axis.Endurance, secondary: nil},
	Flexibility: {primary: axis.Mobility, secondary: nil},
}

// Categories returns every known category in declaration order.
func Categories() []Category {
	return []Category{Push, Pull, Core, Balance, LowerBody, Statics, WarmUp, Legs, Cardio, Flexibility}
}

// Valid reports whether c is in the category table.
func (c Category) Valid() bool {
	_, ok := categoryAxes[c]
	return ok
}

// ParseCategory parses a category name case-insensitively. Hyphens and spaces are accepted in place of underscores.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(strings.TrimSpace(s))))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// PrimaryAxis returns the axis category c mainly trains. Unknown categories train DefaultAxis.
func PrimaryAxis(c Category) axis.Axis {
	return ByCategory(c).Axis
}

// SecondaryAxes returns the lower-weight axes credited for category c.
func SecondaryAxes(c Category) []axis.Axis {
	return slices.Clone(categoryAxes[c].secondary)
}

type categoryPattern struct {
	category Category
	pattern  *regexp.Regexp
}

var categoryPatterns = []categoryPattern{
	{Push, regexp.MustCompile(`push.*up|dip|press`)},
	{Pull, regexp.MustCompile(`pull.*up|row|chin.*up`)},
	{Core, regexp.MustCompile(`plank|l-sit|hollow|crunch|sit.*up|leg.*raise|dragon`)},
	{Balance, regexp.MustCompile(`handstand|balance|crow|arabesque`)},
	{Statics, regexp.MustCompile(`lever|planche|flag|iron.*cross`)},
	{LowerBody, regexp.MustCompile(`squat|lunge|pistol|step.*up`)},
	{WarmUp, regexp.MustCompile(`stretch|mobility|warm|dynamic|foam.*roll`)},
	{Cardio, regexp.MustCompile(`burpee|jumping|run|jog|sprint|mountain.*climber`)},
}

// InferCategory guesses the category of a free-text exercise name. It defaults to Push.
func InferCategory(name string) Category {
	lower := strings.ToLower(name)
	for _, p := range categoryPatterns {
		if p.pattern.MatchString(lower) {
			return p.category
		}
	}
	return Push
}

var difficultyPatterns = []struct {
	level   axis.Level
	pattern *regexp.Regexp
}{
	{axis.Elite, regexp.MustCompile(`one.*arm|full.*planche|full.*front.*lever|freestanding|strict.*muscle.*up`)},
	{axis.Advanced, regexp.MustCompile(`straddle|tuck.*planche|adv.*tuck|archer|explosive|weighted`)},
	{axis.Intermediate, regexp.MustCompile(`diamond|wide|close.*grip|l-sit|tuck.*lever|pike`)},
}

// InferDifficulty guesses the difficulty of a free-text exercise name. It defaults to BEGINNER.
func InferDifficulty(name string) axis.Level {
	lower := strings.ToLower(name)
	for _, p := range difficultyPatterns {
		if p.pattern.MatchString(lower) {
			return p.level
		}
	}
	return axis.Beginner
}

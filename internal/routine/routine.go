// Package routine generates the athlete's workout for a given day from the authored templates.
//
// Generation is a pure function of the profile, the day and the exercise catalog, apart from the routine id and
// timestamp. It never fails on missing reference data: an unauthored session falls back to the default template and
// the routine says so.
package routine

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/errors"
	"github.com/myrjola/hexcoach/internal/exercisemap"
	"github.com/myrjola/hexcoach/internal/reward"
	"github.com/myrjola/hexcoach/internal/routinetemplate"
	"github.com/myrjola/hexcoach/internal/stage"
)

// ErrInvalidDay is returned when the requested weekday is outside Sunday..Saturday.
var ErrInvalidDay = errors.NewSentinel("invalid day of week")

// Shape and reward of a rest day.
const (
	RestDayMinutes = 15
	RestDayXP      = 50
	RestDayCoins   = 5
	restDaySeconds = RestDayMinutes * 60
)

// BaseReward is the per-unit reward of an exercise before volume scaling.
type BaseReward struct {
	XP    int `json:"xp"    yaml:"xp"`
	Coins int `json:"coins" yaml:"coins"`
}

// GenericRewards price exercises that are not in the catalog. Failure work is worth more than buffer work.
type GenericRewards struct {
	Failure BaseReward `json:"failure" yaml:"failure"`
	Buffer  BaseReward `json:"buffer"  yaml:"buffer"`
}

// DefaultGenericRewards returns 60 XP and 6 coins for failure work and 50 XP and 5 coins for buffer work.
func DefaultGenericRewards() GenericRewards {
	return GenericRewards{
		Failure: BaseReward{XP: 60, Coins: 6}, //nolint:mnd // failure bonus
		Buffer:  BaseReward{XP: 50, Coins: 5}, //nolint:mnd // base
	}
}

// For returns the generic reward of mode m.
func (g GenericRewards) For(m stage.Mode) BaseReward {
	if m == stage.ModeFailure {
		return g.Failure
	}
	return g.Buffer
}

// Validate checks that no generic reward is negative.
func (g GenericRewards) Validate() error {
	if g.Failure.XP < 0 || g.Failure.Coins < 0 || g.Buffer.XP < 0 || g.Buffer.Coins < 0 {
		return fmt.Errorf("generic rewards must not be negative: %+v", g)
	}
	return nil
}

// RoutineExercise is a resolved template line.
type RoutineExercise struct {
	Exercise Exercise `json:"exercise"`
	Sets     int      `json:"sets"`
	// RepsOrTime is repetitions or seconds depending on Exercise.Unit.
	RepsOrTime    int        `json:"repsOrTime"`
	Prescription  string     `json:"prescription"`
	RestSeconds   int        `json:"restBetweenSets"`
	Mode          stage.Mode `json:"trainingMode"`
	RepsInReserve int        `json:"repsInReserve,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	Axis          axis.Axis  `json:"hexagonCategory"`
}

// Phase is a resolved template section.
type Phase struct {
	Phase     routinetemplate.Phase       `json:"phase"`
	Section   routinetemplate.SectionKind `json:"section"`
	Minutes   int                         `json:"duration"`
	Purpose   string                      `json:"purpose,omitempty"`
	Exercises []RoutineExercise           `json:"exercises"`
}

// Routine is the workout generated for one athlete and day.
type Routine struct {
	ID           string                      `json:"id"`
	AthleteID    string                      `json:"userId"`
	Date         time.Time                   `json:"date"`
	Day          time.Weekday                `json:"dayOfWeek"`
	Stage        stage.Stage                 `json:"stage"`
	Session      routinetemplate.SessionType `json:"sessionType"`
	Template     routinetemplate.Key         `json:"template,omitempty"`
	Fallback     bool                        `json:"fallback"`
	Philosophy   string                      `json:"philosophy,omitempty"`
	TotalMinutes int                         `json:"totalDuration"`
	Phases       []Phase                     `json:"phases"`
	Focus        []axis.Axis                 `json:"focusAreas"`
	Difficulty   axis.Level                  `json:"difficulty"`
	Rewards      reward.Bundle               `json:"rewards"`
}

// Exercises returns every resolved exercise in performance order.
func (r Routine) Exercises() []RoutineExercise {
	var out []RoutineExercise
	for _, p := range r.Phases {
		out = append(out, p.Exercises...)
	}
	return out
}

// Request describes the routine to generate.
type Request struct {
	AthleteID string
	Profile   axis.Profile
	Day       time.Weekday
	// Date stamps the routine. The zero value means now.
	Date time.Time
}

// Generator builds routines. The zero value is not usable, use NewGenerator.
type Generator struct {
	catalog *Catalog
	generic GenericRewards
	newID   func() string
	now     func() time.Time
}

// NewGenerator creates a Generator resolving template exercises against catalog, which may be nil.
func NewGenerator(catalog *Catalog, generic GenericRewards) *Generator {
	return &Generator{
		catalog: catalog,
		generic: generic,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// Generate builds the routine for req.Day at the athlete's current stage.
func (g *Generator) Generate(req Request) (Routine, error) {
	if !routinetemplate.ValidDay(req.Day) {
		return Routine{}, fmt.Errorf("%w: %d", ErrInvalidDay, req.Day)
	}
	st := stage.FromProfile(req.Profile)
	session, err := routinetemplate.SessionFor(st, req.Day)
	if err != nil {
		return Routine{}, errors.Wrap(err, "session for day")
	}

	date := req.Date
	if date.IsZero() {
		date = g.now()
	}
	r := Routine{
		ID:           g.newID(),
		AthleteID:    req.AthleteID,
		Date:         date,
		Day:          req.Day,
		Stage:        st,
		Session:      session,
		Template:     "",
		Fallback:     false,
		Philosophy:   "",
		TotalMinutes: 0,
		Phases:       nil,
		Focus:        nil,
		Difficulty:   "",
		Rewards:      reward.Bundle{XP: 0, Coins: 0, XPPerAxis: nil},
	}

	if session == routinetemplate.SessionRest {
		g.fillRestDay(&r)
		return r, nil
	}

	res := routinetemplate.Lookup(routinetemplate.KeyFor(st, session))
	tmpl := res.Template
	r.Template = res.Resolved
	r.Fallback = !res.Exact
	r.Philosophy = tmpl.Philosophy
	r.TotalMinutes = tmpl.TotalMinutes

	var items []reward.Item
	r.Phases = make([]Phase, 0, len(tmpl.Sections))
	for _, sec := range tmpl.Sections {
		p := Phase{
			Phase:     sec.Kind.Phase(),
			Section:   sec.Kind,
			Minutes:   sec.Minutes,
			Purpose:   sec.Purpose,
			Exercises: make([]RoutineExercise, 0, len(sec.Exercises)),
		}
		for _, te := range sec.Exercises {
			re := g.resolve(te)
			p.Exercises = append(p.Exercises, re)
			items = append(items, reward.Item{
				Axis:       re.Axis,
				Sets:       re.Sets,
				RepsOrTime: re.RepsOrTime,
				BaseXP:     re.Exercise.XPReward,
				BaseCoins:  re.Exercise.CoinsReward,
			})
		}
		r.Phases = append(r.Phases, p)
	}

	r.Focus = FocusAxes(tmpl, 3) //nolint:mnd // top three
	r.Rewards = reward.ForRoutine(items)
	if r.Fallback {
		r.Difficulty = axis.Beginner
	} else {
		r.Difficulty = DifficultyVote(req.Profile.Levels())
	}
	return r, nil
}

func (g *Generator) resolve(te routinetemplate.Exercise) RoutineExercise {
	mapped := exercisemap.ByName(te.Name).Axis
	amount := ParseAmount(te.RepsOrTime)
	ex, ok := g.catalog.Find(te.Name)
	if !ok {
		ex = g.generate(te.Name, amount.Unit, te.Mode, mapped)
	}
	return RoutineExercise{
		Exercise:      ex,
		Sets:          te.Sets,
		RepsOrTime:    amount.Value,
		Prescription:  te.RepsOrTime,
		RestSeconds:   te.RestSeconds,
		Mode:          te.Mode,
		RepsInReserve: stage.RepsInReserve(te.Mode),
		Notes:         te.Notes,
		Axis:          mapped,
	}
}

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

func (g *Generator) generate(name string, unit Unit, m stage.Mode, a axis.Axis) Exercise {
	base := g.generic.For(m)
	slug := strings.Trim(slugSeparators.ReplaceAllString(strings.ToLower(name), "-"), "-")
	return Exercise{
		ID:          "template-" + slug,
		Name:        name,
		Description: "Template exercise: " + name,
		Category:    strings.ToUpper(string(a)),
		Difficulty:  axis.Intermediate,
		Unit:        unit,
		Equipment:   []string{"NONE"},
		XPReward:    base.XP,
		CoinsReward: base.Coins,
		Generated:   true,
	}
}

func (g *Generator) fillRestDay(r *Routine) {
	ex := Exercise{
		ID:          "template-rest-day-mobility",
		Name:        "Rest Day Mobility",
		Description: "Template exercise: Rest Day Mobility",
		Category:    strings.ToUpper(string(axis.Mobility)),
		Difficulty:  axis.Intermediate,
		Unit:        UnitTime,
		Equipment:   []string{"NONE"},
		XPReward:    RestDayXP,
		CoinsReward: RestDayCoins,
		Generated:   true,
	}
	r.TotalMinutes = RestDayMinutes
	r.Phases = []Phase{{
		Phase:   routinetemplate.PhaseWarmup,
		Section: routinetemplate.SectionWarmup,
		Minutes: RestDayMinutes,
		Purpose: "Active recovery",
		Exercises: []RoutineExercise{{
			Exercise:      ex,
			Sets:          1,
			RepsOrTime:    restDaySeconds,
			Prescription:  "15 min",
			RestSeconds:   0,
			Mode:          stage.ModeBuffer,
			RepsInReserve: stage.RepsInReserve(stage.ModeBuffer),
			Notes:         "Light mobility work, stretching, or active recovery",
			Axis:          axis.Mobility,
		}},
	}}
	r.Focus = []axis.Axis{axis.Mobility}
	r.Difficulty = axis.Beginner
	r.Rewards = reward.Bundle{
		XP:        RestDayXP,
		Coins:     RestDayCoins,
		XPPerAxis: map[axis.Axis]int64{axis.Mobility: RestDayXP},
	}
}

// FocusAxes returns up to n distinct axes trained by tmpl, in the order they first appear.
func FocusAxes(tmpl routinetemplate.Template, n int) []axis.Axis {
	var out []axis.Axis
	seen := make(map[axis.Axis]bool)
	for _, name := range tmpl.ExerciseNames() {
		a := exercisemap.ByName(name).Axis
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
		if len(out) == n {
			break
		}
	}
	return out
}

// DifficultyVote labels a routine from the athlete's axis levels. A level wins with at least three votes, checked
// from ELITE down. Without a winner the label is BEGINNER.
func DifficultyVote(levels []axis.Level) axis.Level {
	counts := make(map[axis.Level]int)
	for _, l := range levels {
		counts[l]++
	}
	for _, l := range []axis.Level{axis.Elite, axis.Advanced, axis.Intermediate} {
		if counts[l] >= 3 { //nolint:mnd // half of the six axes
			return l
		}
	}
	return axis.Beginner
}

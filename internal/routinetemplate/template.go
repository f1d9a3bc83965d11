// Package routinetemplate holds the pre-authored training sessions and the weekly split that picks one per day.
//
// Templates are read-only reference data built at package initialisation. Lookup never fails: a missing key resolves
// to the default template and the Resolution records that it did.
package routinetemplate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/myrjola/hexcoach/internal/errors"
	"github.com/myrjola/hexcoach/internal/stage"
)

// ErrUnknownSessionType is returned by ParseSessionType.
var ErrUnknownSessionType = errors.NewSentinel("unknown session type")

// SessionType is the kind of workout scheduled on a day.
type SessionType string

const (
	SessionPush               SessionType = "PUSH"
	SessionPull               SessionType = "PULL"
	SessionLegs               SessionType = "LEGS"
	SessionWeightedPush       SessionType = "WEIGHTED_PUSH"
	SessionWeightedPull       SessionType = "WEIGHTED_PULL"
	SessionSkillsPushWeighted SessionType = "SKILLS_PUSH_WEIGHTED"
	SessionSkillsPullWeighted SessionType = "SKILLS_PULL_WEIGHTED"
	SessionSkillsPushOnly     SessionType = "SKILLS_PUSH_ONLY"
	SessionSkillsPullOnly     SessionType = "SKILLS_PULL_ONLY"
	SessionRest               SessionType = "REST"
)

var sessionTypes = []SessionType{
	SessionPush, SessionPull, SessionLegs, SessionWeightedPush, SessionWeightedPull,
	SessionSkillsPushWeighted, SessionSkillsPullWeighted, SessionSkillsPushOnly, SessionSkillsPullOnly, SessionRest,
}

// Valid reports whether t is a known session type.
func (t SessionType) Valid() bool {
	return slices.Contains(sessionTypes, t)
}

// ParseSessionType parses a session type case-insensitively.
func ParseSessionType(s string) (SessionType, error) {
	t := SessionType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSessionType, s)
	}
	return t, nil
}

// SectionKind is one of the five parts of a session, in the order they are performed.
type SectionKind string

const (
	SectionWarmup              SectionKind = "WARMUP"
	SectionSkillPractice       SectionKind = "SKILL_PRACTICE"
	SectionSkillSupport        SectionKind = "SKILL_SUPPORT"
	SectionFundamentalStrength SectionKind = "FUNDAMENTAL_STRENGTH"
	SectionCooldown            SectionKind = "COOLDOWN"
)

// Phase is the coarser grouping shown to the athlete. Both strength sections collapse into PhaseStrength.
type Phase string

const (
	PhaseWarmup        Phase = "WARMUP"
	PhaseSkillPractice Phase = "SKILL_PRACTICE"
	PhaseStrength      Phase = "STRENGTH"
	PhaseCooldown      Phase = "COOLDOWN"
)

// Phase returns the display phase of k. Unknown kinds count as strength work.
func (k SectionKind) Phase() Phase {
	switch k {
	case SectionWarmup:
		return PhaseWarmup
	case SectionSkillPractice:
		return PhaseSkillPractice
	case SectionCooldown:
		return PhaseCooldown
	case SectionSkillSupport, SectionFundamentalStrength:
		return PhaseStrength
	default:
		return PhaseStrength
	}
}

// Exercise is one authored exercise line. RepsOrTime is the free-form prescription, e.g. "8-12 reps" or "30s".
type Exercise struct {
	Name        string     `json:"name"`
	Sets        int        `json:"sets"`
	RepsOrTime  string     `json:"repsOrTime"`
	RestSeconds int        `json:"restSeconds"`
	Mode        stage.Mode `json:"mode"`
	Notes       string     `json:"notes"`
}

// Section is an ordered group of exercises with a time budget in minutes.
type Section struct {
	Kind      SectionKind `json:"section"`
	Minutes   int         `json:"duration"`
	Purpose   string      `json:"purpose"`
	Exercises []Exercise  `json:"exercises"`
}

// Template is a complete authored session.
type Template struct {
	Stage        stage.Stage `json:"stage"`
	Session      SessionType `json:"sessionType"`
	TotalMinutes int         `json:"totalDuration"`
	Philosophy   string      `json:"philosophy"`
	Sections     []Section   `json:"sections"`
}

// Clone returns a deep copy of t.
func (t Template) Clone() Template {
	out := t
	out.Sections = make([]Section, len(t.Sections))
	for i, s := range t.Sections {
		s.Exercises = slices.Clone(s.Exercises)
		out.Sections[i] = s
	}
	return out
}

// ExerciseNames returns every exercise name in performance order, duplicates included.
func (t Template) ExerciseNames() []string {
	var names []string
	for _, s := range t.Sections {
		for _, e := range s.Exercises {
			names = append(names, e.Name)
		}
	}
	return names
}

// Key identifies a template by stage and session type, e.g. "STAGE_3_WEIGHTED_PULL".
type Key string

// KeyFor builds the registry key of a stage and session type.
func KeyFor(s stage.Stage, t SessionType) Key {
	return Key(string(s) + "_" + string(t))
}

// DefaultKey is resolved whenever a requested key has no authored template.
const DefaultKey Key = "STAGE_1_PUSH"

// Resolution is the outcome of a template lookup.
type Resolution struct {
	Template Template `json:"template"`
	// Requested is the key that was asked for.
	Requested Key `json:"requested"`
	// Resolved is the key of the returned template. It differs from Requested only on fallback.
	Resolved Key  `json:"resolved"`
	Exact    bool `json:"exact"`
}

// Lookup returns the template for key, falling back to DefaultKey when none is authored.
func Lookup(key Key) Resolution {
	if t, ok := registry[key]; ok {
		return Resolution{Template: t.Clone(), Requested: key, Resolved: key, Exact: true}
	}
	return Resolution{Template: registry[DefaultKey].Clone(), Requested: key, Resolved: DefaultKey, Exact: false}
}

// Keys returns every authored key in sorted order.
func Keys() []Key {
	keys := make([]Key, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

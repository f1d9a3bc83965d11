package routinetemplate_test

import (
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/hexcoach/internal/routinetemplate"
	"github.com/myrjola/hexcoach/internal/stage"
)

func TestSessionFor_EveryScheduledSessionIsAuthored(t *testing.T) {
	for _, s := range stage.All() {
		for day := time.Sunday; day <= time.Saturday; day++ {
			session, err := routinetemplate.SessionFor(s, day)
			if err != nil {
				t.Fatalf("SessionFor(%s, %s): %v", s, day, err)
			}
			if session == routinetemplate.SessionRest {
				continue
			}
			key := routinetemplate.KeyFor(s, session)
			if res := routinetemplate.Lookup(key); !res.Exact {
				t.Errorf("%s on %s schedules %s which has no template", s, day, key)
			}
		}
	}
}

func TestSessionFor_RestDays(t *testing.T) {
	for _, s := range stage.All() {
		for _, day := range []time.Weekday{time.Wednesday, time.Saturday} {
			got, err := routinetemplate.SessionFor(s, day)
			if err != nil {
				t.Fatalf("SessionFor(%s, %s): %v", s, day, err)
			}
			if got != routinetemplate.SessionRest {
				t.Errorf("SessionFor(%s, %s) = %s, want REST", s, day, got)
			}
		}
	}
}

func TestSessionFor(t *testing.T) {
	tests := []struct {
		name  string
		stage stage.Stage
		day   time.Weekday
		want  routinetemplate.SessionType
	}{
		{"stage 1 sunday", stage.Stage1, time.Sunday, routinetemplate.SessionPush},
		{"stage 1 has no legs day", stage.Stage1, time.Monday, routinetemplate.SessionPull},
		{"stage 2 monday legs", stage.Stage2, time.Monday, routinetemplate.SessionLegs},
		{"stage 3 friday", stage.Stage3, time.Friday, routinetemplate.SessionWeightedPull},
		{"stage 4 thursday skills only alias", stage.Stage4, time.Thursday, routinetemplate.SessionSkillsPushWeighted},
		{"stage 4 friday skills only alias", stage.Stage4, time.Friday, routinetemplate.SessionSkillsPullWeighted},
		{"unknown stage uses stage 1 split", stage.Stage("STAGE_9"), time.Monday, routinetemplate.SessionPull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := routinetemplate.SessionFor(tt.stage, tt.day)
			if err != nil {
				t.Fatalf("SessionFor: %v", err)
			}
			if got != tt.want {
				t.Errorf("SessionFor(%s, %s) = %s, want %s", tt.stage, tt.day, got, tt.want)
			}
		})
	}

	if _, err := routinetemplate.SessionFor(stage.Stage1, time.Weekday(7)); err == nil {
		t.Error("SessionFor(day 7) succeeded, want error")
	}
	if _, err := routinetemplate.SessionFor(stage.Stage1, time.Weekday(-1)); err == nil {
		t.Error("SessionFor(day -1) succeeded, want error")
	}
}

func TestLookup_Fallback(t *testing.T) {
	res := routinetemplate.Lookup(routinetemplate.KeyFor(stage.Stage1, routinetemplate.SessionLegs))
	want := routinetemplate.Lookup(routinetemplate.DefaultKey)
	if res.Exact {
		t.Error("Exact = true for an unauthored key")
	}
	if res.Resolved != routinetemplate.DefaultKey || res.Requested != "STAGE_1_LEGS" {
		t.Errorf("Requested/Resolved = %s/%s, want STAGE_1_LEGS/%s", res.Requested, res.Resolved,
			routinetemplate.DefaultKey)
	}
	if diff := cmp.Diff(want.Template, res.Template); diff != "" {
		t.Errorf("fallback template mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	first := routinetemplate.Lookup("STAGE_2_PUSH")
	first.Template.Sections[0].Exercises[0].Name = "mutated"
	first.Template.Sections = first.Template.Sections[:1]

	second := routinetemplate.Lookup("STAGE_2_PUSH")
	if got := second.Template.Sections[0].Exercises[0].Name; got != "Wrist Mobility" {
		t.Errorf("first exercise = %q after mutating a previous lookup", got)
	}
	if len(second.Template.Sections) != 3 {
		t.Errorf("got %d sections, want 3", len(second.Template.Sections))
	}
}

func TestLookup_SharedLegsTemplate(t *testing.T) {
	s2 := routinetemplate.Lookup(routinetemplate.KeyFor(stage.Stage2, routinetemplate.SessionLegs))
	for _, st := range []stage.Stage{stage.Stage3, stage.Stage4} {
		res := routinetemplate.Lookup(routinetemplate.KeyFor(st, routinetemplate.SessionLegs))
		if !res.Exact || res.Resolved == routinetemplate.DefaultKey {
			t.Errorf("%s legs resolved to %s, want an authored legs session", st, res.Resolved)
		}
		if diff := cmp.Diff(s2.Template, res.Template); diff != "" {
			t.Errorf("%s legs differ from stage 2 legs (-want +got):\n%s", st, diff)
		}
	}
}

func TestTemplates_WellFormed(t *testing.T) {
	order := []routinetemplate.SectionKind{
		routinetemplate.SectionWarmup,
		routinetemplate.SectionSkillPractice,
		routinetemplate.SectionSkillSupport,
		routinetemplate.SectionFundamentalStrength,
		routinetemplate.SectionCooldown,
	}
	for _, key := range routinetemplate.Keys() {
		tmpl := routinetemplate.Lookup(key).Template
		t.Run(string(key), func(t *testing.T) {
			minutes := 0
			last := -1
			for _, sec := range tmpl.Sections {
				minutes += sec.Minutes
				idx := slices.Index(order, sec.Kind)
				if idx < 0 {
					t.Fatalf("unknown section kind %q", sec.Kind)
				}
				if idx <= last {
					t.Errorf("section %s out of order", sec.Kind)
				}
				last = idx
				if len(sec.Exercises) == 0 {
					t.Errorf("section %s has no exercises", sec.Kind)
				}
				for _, ex := range sec.Exercises {
					if ex.Name == "" || ex.Sets <= 0 || ex.RestSeconds < 0 || ex.RepsOrTime == "" {
						t.Errorf("malformed exercise %+v", ex)
					}
					if !ex.Mode.Valid() {
						t.Errorf("exercise %s has invalid mode %q", ex.Name, ex.Mode)
					}
					if sec.Kind == routinetemplate.SectionSkillPractice && ex.Mode != stage.ModeBuffer {
						t.Errorf("skill practice exercise %s is not trained with buffer", ex.Name)
					}
				}
			}
			if minutes != tmpl.TotalMinutes {
				t.Errorf("sections add up to %d minutes, total is %d", minutes, tmpl.TotalMinutes)
			}
			if tmpl.Sections[0].Kind != routinetemplate.SectionWarmup {
				t.Errorf("first section is %s, want WARMUP", tmpl.Sections[0].Kind)
			}
		})
	}
}

func TestTemplates_EarlyStagesHaveNoSkillWork(t *testing.T) {
	for _, key := range routinetemplate.Keys() {
		tmpl := routinetemplate.Lookup(key).Template
		if tmpl.Stage.AtLeast(stage.Stage3) {
			continue
		}
		for _, sec := range tmpl.Sections {
			if sec.Kind == routinetemplate.SectionSkillPractice || sec.Kind == routinetemplate.SectionSkillSupport {
				t.Errorf("%s contains %s", key, sec.Kind)
			}
		}
	}
}

func TestStage1Push_UsesWarmupProtocols(t *testing.T) {
	warmup := routinetemplate.Lookup("STAGE_1_PUSH").Template.Sections[0]
	var names []string
	for _, ex := range warmup.Exercises {
		names = append(names, ex.Name)
		if ex.Sets != 2 || ex.RestSeconds != 30 || ex.Mode != stage.ModeBuffer {
			t.Errorf("warmup exercise %+v, want 2 sets, 30s rest, BUFFER", ex)
		}
	}
	want := []string{
		"Wrist Circles", "Wrist Flexion Tilts", "Palm Push-ups", "Finger Push-ups",
		"Shoulder Rotations", "Arm Circles with Band",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("warmup mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionKind_Phase(t *testing.T) {
	tests := map[routinetemplate.SectionKind]routinetemplate.Phase{
		routinetemplate.SectionWarmup:              routinetemplate.PhaseWarmup,
		routinetemplate.SectionSkillPractice:       routinetemplate.PhaseSkillPractice,
		routinetemplate.SectionSkillSupport:        routinetemplate.PhaseStrength,
		routinetemplate.SectionFundamentalStrength: routinetemplate.PhaseStrength,
		routinetemplate.SectionCooldown:            routinetemplate.PhaseCooldown,
		routinetemplate.SectionKind("OTHER"):       routinetemplate.PhaseStrength,
	}
	for kind, want := range tests {
		if got := kind.Phase(); got != want {
			t.Errorf("%s.Phase() = %s, want %s", kind, got, want)
		}
	}
}

func TestParseSessionType(t *testing.T) {
	got, err := routinetemplate.ParseSessionType(" weighted_pull ")
	if err != nil || got != routinetemplate.SessionWeightedPull {
		t.Errorf("ParseSessionType() = %s, %v", got, err)
	}
	if _, err = routinetemplate.ParseSessionType("CARDIO"); err == nil {
		t.Error("ParseSessionType(CARDIO) succeeded, want error")
	}
}

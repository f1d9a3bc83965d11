package stage_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/errors"
	"github.com/myrjola/hexcoach/internal/stage"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		level axis.Level
		xp    int64
		want  stage.Stage
	}{
		{"beginner", axis.Beginner, 10_000, stage.Stage1},
		{"intermediate low", axis.Intermediate, 60_000, stage.Stage2},
		{"intermediate just below advanced", axis.Intermediate, 143_999, stage.Stage2},
		{"intermediate with advanced XP", axis.Intermediate, 144_000, stage.Stage3},
		{"advanced", axis.Advanced, 150_000, stage.Stage3},
		{"advanced just below elite", axis.Advanced, 383_999, stage.Stage3},
		{"advanced with elite XP", axis.Advanced, 400_000, stage.Stage4},
		{"elite", axis.Elite, 384_000, stage.Stage4},
		{"unknown level", axis.Level("LEGENDARY"), 900_000, stage.Stage1},
		{"missing level", axis.Level(""), 0, stage.Stage1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := stage.Classify(tt.level, tt.xp)
			if first != tt.want {
				t.Errorf("Classify(%s, %d) = %s, want %s", tt.level, tt.xp, first, tt.want)
			}
			if second := stage.Classify(tt.level, tt.xp); second != first {
				t.Errorf("Classify not pure: %s then %s", first, second)
			}
		})
	}
}

func TestFromProfile_IgnoresOtherAxes(t *testing.T) {
	p, err := axis.NewProfile(map[axis.Axis]int64{
		axis.Strength: 50_000,
		axis.Balance:  900_000,
		axis.Core:     900_000,
	})
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}
	if got := stage.FromProfile(p); got != stage.Stage2 {
		t.Errorf("FromProfile() = %s, want %s", got, stage.Stage2)
	}

	p, err = axis.AwardXP(p, axis.Strength, 100_000)
	if err != nil {
		t.Fatalf("AwardXP: %v", err)
	}
	if got := stage.FromProfile(p); got != stage.Stage3 {
		t.Errorf("FromProfile() after award = %s, want %s", got, stage.Stage3)
	}
}

func TestAtLeast(t *testing.T) {
	if !stage.Stage3.AtLeast(stage.Stage2) || !stage.Stage3.AtLeast(stage.Stage3) {
		t.Error("Stage3 should be at least Stage2 and Stage3")
	}
	if stage.Stage2.AtLeast(stage.Stage3) {
		t.Error("Stage2 should not be at least Stage3")
	}
}

func TestParse(t *testing.T) {
	for in, want := range map[string]stage.Stage{"STAGE_2": stage.Stage2, "4": stage.Stage4} {
		got, err := stage.Parse(in)
		if err != nil || got != want {
			t.Errorf("Parse(%q) = %s, %v, want %s", in, got, err, want)
		}
	}
	if _, err := stage.Parse("STAGE_5"); !errors.Is(err, stage.ErrUnknownStage) {
		t.Errorf("Parse(STAGE_5) error = %v, want ErrUnknownStage", err)
	}
}

func TestPrescribe(t *testing.T) {
	tests := []struct {
		name     string
		stage    stage.Stage
		category string
		want     stage.Prescription
	}{
		{
			name:     "stage 4 skill",
			stage:    stage.Stage4,
			category: "SKILL_STATIC",
			want: stage.Prescription{
				Mode: stage.ModeBuffer, Sets: 6, RepsInReserve: 3, RestSeconds: 210,
				Notes: "Quality practice - stay fresh, focus on perfect form. Never train to failure.",
			},
		},
		{
			name:     "stage 4 strength",
			stage:    stage.Stage4,
			category: "PUSH",
			want: stage.Prescription{
				Mode: stage.ModeFailure, Sets: 5, RepsInReserve: 1, RestSeconds: 105,
				Notes: "Push hard - build strength and muscle. Train to or near failure.",
			},
		},
		{
			name:     "stage 3 balance is still failure",
			stage:    stage.Stage3,
			category: "BALANCE",
			want: stage.Prescription{
				Mode: stage.ModeFailure, Sets: 5, RepsInReserve: 1, RestSeconds: 105,
				Notes: "Push hard - build strength and muscle. Train to or near failure.",
			},
		},
		{
			name:     "stage 1",
			stage:    stage.Stage1,
			category: "PULL",
			want: stage.Prescription{
				Mode: stage.ModeFailure, Sets: 4, RepsInReserve: 1, RestSeconds: 75,
				Notes: "Push hard - build strength and muscle. Train to or near failure.",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, stage.Prescribe(tt.stage, tt.category)); diff != "" {
				t.Errorf("Prescribe() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	for _, s := range stage.All() {
		d := stage.Describe(s)
		if d.Stage != s {
			t.Errorf("Describe(%s).Stage = %s", s, d.Stage)
		}
		if len(d.RecommendedSplit) != 7 {
			t.Errorf("Describe(%s) split has %d days, want 7", s, len(d.RecommendedSplit))
		}
	}
	if got := stage.Describe("bogus").Stage; got != stage.Stage1 {
		t.Errorf("Describe(bogus).Stage = %s, want %s", got, stage.Stage1)
	}
}

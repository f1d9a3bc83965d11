package exercisemap_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/errors"
	"github.com/myrjola/hexcoach/internal/exercisemap"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want exercisemap.Mapping
	}{
		{"Wall Handstand Hold", exercisemap.Mapping{Axis: axis.Balance, Source: exercisemap.SourceExact}},
		{"Dead Hang", exercisemap.Mapping{Axis: axis.StaticHolds, Source: exercisemap.SourceExact}},
		{"Scapula Push-ups", exercisemap.Mapping{Axis: axis.Mobility, Source: exercisemap.SourceExact}},
		{"Pistol Squats", exercisemap.Mapping{Axis: axis.Endurance, Source: exercisemap.SourceExact}},
		{
			"Wall Handstand Hold (chest to wall)",
			exercisemap.Mapping{Axis: axis.Balance, Source: exercisemap.SourceKeyword, Keyword: "handstand"},
		},
		{
			"Pull-ups (Clean Form)",
			exercisemap.Mapping{Axis: axis.Strength, Source: exercisemap.SourceKeyword, Keyword: "pull-up"},
		},
		{
			"Straddle Front Lever Hold Practice",
			exercisemap.Mapping{Axis: axis.StaticHolds, Source: exercisemap.SourceKeyword, Keyword: "lever"},
		},
		{
			"Plank to Failure",
			exercisemap.Mapping{Axis: axis.Core, Source: exercisemap.SourceKeyword, Keyword: "plank"},
		},
		{
			"Box Jumps",
			exercisemap.Mapping{Axis: axis.Endurance, Source: exercisemap.SourceKeyword, Keyword: "jump"},
		},
		{
			"Chest Doorway Stretch",
			exercisemap.Mapping{Axis: axis.Mobility, Source: exercisemap.SourceKeyword, Keyword: "stretch"},
		},
		{
			// "planche" is checked before "push-up".
			"Pseudo Planche Push-ups Variation",
			exercisemap.Mapping{Axis: axis.Balance, Source: exercisemap.SourceKeyword, Keyword: "planche"},
		},
		{"Kettlebell Swing", exercisemap.Mapping{Axis: axis.Strength, Source: exercisemap.SourceDefault}},
		{"", exercisemap.Mapping{Axis: axis.Strength, Source: exercisemap.SourceDefault}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, exercisemap.ByName(tt.name)); diff != "" {
				t.Errorf("ByName() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestByName_ExactIsCaseSensitive(t *testing.T) {
	got := exercisemap.ByName("dead hang")
	if got.Source != exercisemap.SourceKeyword || got.Axis != axis.StaticHolds {
		t.Errorf("ByName(\"dead hang\") = %+v, want keyword match on staticHolds", got)
	}
}

func TestByName_TotalAndDeterministic(t *testing.T) {
	inputs := []string{"x", "Handstand", "ROW", "burpee box", "🤸", "Unknown Thing 42", "Ab Wheel Rollout"}
	for _, in := range inputs {
		first := exercisemap.ByName(in)
		if !first.Axis.Valid() {
			t.Errorf("ByName(%q) returned invalid axis %q", in, first.Axis)
		}
		if second := exercisemap.ByName(in); first != second {
			t.Errorf("ByName(%q) not deterministic: %+v != %+v", in, first, second)
		}
	}
}

func TestCategoryTableIsExhaustive(t *testing.T) {
	for _, c := range exercisemap.Categories() {
		if !c.Valid() {
			t.Errorf("category %s missing from table", c)
		}
		m := exercisemap.ByCategory(c)
		if m.Source != exercisemap.SourceCategory || !m.Axis.Valid() {
			t.Errorf("ByCategory(%s) = %+v", c, m)
		}
		for _, a := range exercisemap.SecondaryAxes(c) {
			if a == m.Axis {
				t.Errorf("category %s lists primary axis %s as secondary", c, a)
			}
		}
	}
}

func TestPrimaryAndSecondaryAxes(t *testing.T) {
	tests := []struct {
		category      exercisemap.Category
		wantPrimary   axis.Axis
		wantSecondary []axis.Axis
	}{
		{exercisemap.Push, axis.Strength, []axis.Axis{axis.StaticHolds}},
		{exercisemap.Pull, axis.Strength, []axis.Axis{axis.StaticHolds}},
		{exercisemap.Balance, axis.Balance, []axis.Axis{axis.StaticHolds, axis.Core}},
		{exercisemap.Statics, axis.StaticHolds, []axis.Axis{axis.Balance, axis.Core}},
		{exercisemap.Core, axis.Core, []axis.Axis{axis.Balance}},
		{exercisemap.LowerBody, axis.Endurance, nil},
		{exercisemap.Cardio, axis.Endurance, nil},
		{exercisemap.Flexibility, axis.Mobility, nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if got := exercisemap.PrimaryAxis(tt.category); got != tt.wantPrimary {
				t.Errorf("PrimaryAxis() = %s, want %s", got, tt.wantPrimary)
			}
			if diff := cmp.Diff(tt.wantSecondary, exercisemap.SecondaryAxes(tt.category)); diff != "" {
				t.Errorf("SecondaryAxes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMap_PrefersCategory(t *testing.T) {
	got := exercisemap.Map("Handstand Hold", exercisemap.Cardio)
	want := exercisemap.Mapping{Axis: axis.Endurance, Source: exercisemap.SourceCategory}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}
	if got = exercisemap.Map("Handstand Hold", ""); got.Axis != axis.Balance || got.Source != exercisemap.SourceExact {
		t.Errorf("Map() without category = %+v, want exact balance", got)
	}
}

func TestParseCategory(t *testing.T) {
	got, err := exercisemap.ParseCategory("lower-body")
	if err != nil || got != exercisemap.LowerBody {
		t.Errorf("ParseCategory(lower-body) = %s, %v", got, err)
	}
	if _, err = exercisemap.ParseCategory("SKILL_STATIC"); !errors.Is(err, exercisemap.ErrUnknownCategory) {
		t.Errorf("ParseCategory(SKILL_STATIC) error = %v, want ErrUnknownCategory", err)
	}
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name string
		want exercisemap.Category
	}{
		{"Diamond Push-ups", exercisemap.Push},
		{"Bench Press", exercisemap.Push},
		{"Australian Rows", exercisemap.Pull},
		{"Hanging Leg Raises", exercisemap.Core},
		{"Handstand Hold", exercisemap.Balance},
		{"Tuck Front Lever", exercisemap.Statics},
		{"Walking Lunges", exercisemap.LowerBody},
		{"Hip Flexor Stretch", exercisemap.WarmUp},
		{"Burpees", exercisemap.Cardio},
		{"Mystery Move", exercisemap.Push},
	}
	for _, tt := range tests {
		if got := exercisemap.InferCategory(tt.name); got != tt.want {
			t.Errorf("InferCategory(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestInferDifficulty(t *testing.T) {
	tests := []struct {
		name string
		want axis.Level
	}{
		{"One-Arm Pull-up", axis.Elite},
		{"Full Planche", axis.Elite},
		{"Freestanding Handstand Push-up", axis.Elite},
		{"Straddle Planche", axis.Advanced},
		{"Weighted Dips", axis.Advanced},
		{"Archer Pull-ups", axis.Advanced},
		{"Pike Push-ups", axis.Intermediate},
		{"Tuck Front Lever Hold", axis.Intermediate},
		{"Push-ups", axis.Beginner},
	}
	for _, tt := range tests {
		if got := exercisemap.InferDifficulty(tt.name); got != tt.want {
			t.Errorf("InferDifficulty(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/routine"
	"github.com/myrjola/hexcoach/internal/routinetemplate"
	"github.com/myrjola/hexcoach/internal/stage"
	"github.com/spf13/cobra"
)

// stageStrengthXP is the smallest strength XP classified into each stage.
var stageStrengthXP = map[stage.Stage]int64{
	stage.Stage1: 0,
	stage.Stage2: axis.IntermediateMinXP,
	stage.Stage3: axis.AdvancedMinXP,
	stage.Stage4: axis.EliteMinXP,
}

func loadCatalog(path string) (*routine.Catalog, error) {
	if path == "" {
		return routine.BuiltinCatalog()
	}
	return routine.LoadCatalog(path)
}

func newRoutineCmd() *cobra.Command {
	var (
		st          string
		day         int
		catalogPath string
		asJSON      bool
	)
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Generate the routine of a stage and weekday (0 is Sunday)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := stage.Parse(st)
			if err != nil {
				return err
			}
			p, err := axis.NewProfile(map[axis.Axis]int64{axis.Strength: stageStrengthXP[s]})
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			r, err := routine.NewGenerator(catalog, routine.DefaultGenericRewards()).Generate(routine.Request{
				AthleteID: "",
				Profile:   p,
				Day:       time.Weekday(day),
				Date:      time.Time{},
			})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			return printRoutine(cmd, r)
		},
	}
	cmd.Flags().StringVar(&st, "stage", string(stage.Stage1), "training stage")
	cmd.Flags().IntVar(&day, "day", int(time.Sunday), "weekday, 0 is Sunday")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML exercise catalog; built-in when empty")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func printRoutine(cmd *cobra.Command, r routine.Routine) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s), %d min, difficulty %s\n", r.Day, r.Session, r.Stage, r.TotalMinutes, r.Difficulty)
	if r.Template != "" {
		fmt.Fprintf(&b, "template %s", r.Template)
		if r.Fallback {
			b.WriteString(" (fallback)")
		}
		b.WriteString("\n")
	}
	for _, ph := range r.Phases {
		fmt.Fprintf(&b, "\n[%s] %d min\n", ph.Phase, ph.Minutes)
		for _, e := range ph.Exercises {
			fmt.Fprintf(&b, "  - %s: %d x %s, rest %ds (%s)\n",
				e.Exercise.Name, e.Sets, e.Prescription, e.RestSeconds, e.Axis)
		}
	}
	fmt.Fprintf(&b, "\nreward: %d XP, %d coins\n", r.Rewards.XP, r.Rewards.Coins)
	_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
	return err
}

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the authored routine templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, key := range routinetemplate.Keys() {
				t := routinetemplate.Lookup(key).Template
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-28s %3d min  %d exercises\n",
					key, t.TotalMinutes, len(t.ExerciseNames())); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

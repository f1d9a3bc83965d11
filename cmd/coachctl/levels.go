package main

import (
	"fmt"

	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/stage"
	"github.com/spf13/cobra"
)

func newStageCmd() *cobra.Command {
	var (
		level    string
		xp       int64
		describe bool
	)
	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Classify a strength level and XP into a training stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if xp < 0 {
				return fmt.Errorf("xp must not be negative: %d", xp)
			}
			l := axis.LevelFromXP(xp)
			if level != "" {
				var err error
				if l, err = axis.ParseLevel(level); err != nil {
					return err
				}
			}
			st := stage.Classify(l, xp)
			if describe {
				return writeJSON(cmd.OutOrStdout(), stage.Describe(st))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), st)
			return err
		},
	}
	cmd.Flags().StringVar(&level, "level", "", "strength level; derived from --xp when empty")
	cmd.Flags().BoolVar(&describe, "describe", false, "print the stage definition as JSON")
	cmd.Flags().Int64Var(&xp, "xp", 0, "strength XP")
	return cmd
}

func newPrescribeCmd() *cobra.Command {
	var (
		st       string
		category string
	)
	cmd := &cobra.Command{
		Use:   "prescribe",
		Short: "Show the sets, rest and reps in reserve for an exercise category at a stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := stage.Parse(st)
			if err != nil {
				return err
			}
			p := stage.Prescribe(s, category)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d sets, %d RIR, %ds rest\n%s\n",
				p.Mode, p.Sets, p.RepsInReserve, p.RestSeconds, p.Notes)
			return err
		},
	}
	cmd.Flags().StringVar(&st, "stage", string(stage.Stage1), "training stage")
	cmd.Flags().StringVar(&category, "category", "", "exercise category, e.g. SKILL_STATIC")
	return cmd
}

func newAxisCmd() *cobra.Command {
	var (
		xp      int64
		asJSON  bool
		ceiling int64
	)
	cmd := &cobra.Command{
		Use:   "axis",
		Short: "Show the level, visual value and progress of an axis XP total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if xp < 0 {
				return fmt.Errorf("xp must not be negative: %d", xp)
			}
			rules := axis.DefaultRules()
			if ceiling > 0 {
				rules.EliteCeilingXP = ceiling
			}
			if err := rules.Validate(); err != nil {
				return err
			}
			st := rules.State(xp)
			out := struct {
				axis.State
				XPToNextLevel int64 `json:"xpToNextLevel"`
				LevelProgress int   `json:"levelProgress"`
			}{
				State:         st,
				XPToNextLevel: axis.XPToNextLevel(xp),
				LevelProgress: rules.LevelProgress(xp),
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "level %s, visual %.2f, %d XP to next level (%d%%)\n",
				st.Level, st.VisualValue, out.XPToNextLevel, out.LevelProgress)
			return err
		},
	}
	cmd.Flags().Int64Var(&xp, "xp", 0, "axis XP")
	cmd.Flags().Int64Var(&ceiling, "elite-ceiling", 0, "ELITE interpolation ceiling; default rules when 0")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

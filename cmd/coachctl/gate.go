package main

import (
	"fmt"

	"github.com/myrjola/hexcoach/internal/skillgate"
	"github.com/myrjola/hexcoach/internal/stage"
	"github.com/spf13/cobra"
)

func newGateCmd() *cobra.Command {
	var (
		st     string
		stats  skillgate.Stats
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "gate SKILL",
		Short: "Check whether a skill is unlocked for a stage and performance numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := stage.Parse(st)
			if err != nil {
				return err
			}
			d := skillgate.Check(args[0], s, stats)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), d)
			}
			verdict := "READY"
			if !d.Ready {
				verdict = "BLOCKED"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", verdict, d.Reason)
			return err
		},
	}
	cmd.Flags().StringVar(&st, "stage", string(stage.Stage1), "training stage")
	cmd.Flags().IntVar(&stats.PullUps, "pullups", 0, "max strict pull-ups")
	cmd.Flags().IntVar(&stats.Dips, "dips", 0, "max strict dips")
	cmd.Flags().Float64Var(&stats.WeightedPullUpsPercent, "weighted-pullups", 0,
		"added weight for weighted pull-ups, percent of bodyweight")
	cmd.Flags().Float64Var(&stats.WeightedDipsPercent, "weighted-dips", 0,
		"added weight for weighted dips, percent of bodyweight")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

package main

import (
	"fmt"
	"slices"

	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/exercisemap"
	"github.com/myrjola/hexcoach/internal/reward"
	"github.com/spf13/cobra"
)

func newRewardCmd() *cobra.Command {
	var (
		name       string
		category   string
		difficulty string
		multiplier float64
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "reward",
		Short: "Price an exercise by category and difficulty, or by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name != "" && category == "" && difficulty == "" {
				return printReward(cmd, reward.ForExerciseName(name, multiplier), asJSON)
			}
			c := exercisemap.InferCategory(name)
			if category != "" {
				var err error
				if c, err = exercisemap.ParseCategory(category); err != nil {
					return err
				}
			}
			d := exercisemap.InferDifficulty(name)
			if difficulty != "" {
				var err error
				if d, err = axis.ParseLevel(difficulty); err != nil {
					return err
				}
			}
			return printReward(cmd, reward.ForExercise(c, d, multiplier), asJSON)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "exercise name used to infer category and difficulty")
	cmd.Flags().StringVar(&category, "category", "", "exercise category, e.g. PULL")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "difficulty level, e.g. ADVANCED")
	cmd.Flags().Float64Var(&multiplier, "multiplier", 1, "performance multiplier, clamped to 0.5..2")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func printReward(cmd *cobra.Command, er reward.ExerciseReward, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), er)
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%s %s x%.2f: %d XP, %d coins\n",
		er.Category, er.Difficulty, er.Multiplier, er.XP, er.Coins); err != nil {
		return err
	}
	axes := make([]axis.Axis, 0, len(er.XPPerAxis))
	for a := range er.XPPerAxis {
		axes = append(axes, a)
	}
	slices.Sort(axes)
	for _, a := range axes {
		if _, err := fmt.Fprintf(out, "  %s: %d\n", a, er.XPPerAxis[a]); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/myrjola/hexcoach/internal/assessment"
	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func readAssessment(path string) (assessment.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return assessment.Input{}, errors.Wrap(err, "open answers")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var in assessment.Input
	if err = dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return assessment.Input{}, errors.Wrap(err, "decode answers")
	}
	return in, nil
}

func newAssessCmd() *cobra.Command {
	var (
		file   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score an assessment answers file into a rank and starting XP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := readAssessment(file)
			if err != nil {
				return err
			}
			res, err := assessment.Evaluate(axis.DefaultRules(), in)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			out := cmd.OutOrStdout()
			if _, err = fmt.Fprintf(out, "Rank %s (%s, visual %s %.1f), training age %s\n",
				res.Rank, res.Level, res.VisualRank, res.VisualValue, res.TrainingAge); err != nil {
				return err
			}
			for _, a := range axis.All() {
				if _, err = fmt.Fprintf(out, "  %-22s %d\n", a.DisplayName(), res.XP[a]); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(out, "Start with: %s\n", strings.Join(res.RecommendedExercises, ", "))
			return err
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML answers file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

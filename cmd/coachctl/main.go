// Command coachctl inspects the coaching rules offline: stages, skill gates, routines, rewards and templates.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "coachctl",
		Short:         "Inspect the hexagon coaching rules",
		Long:          "coachctl answers coaching questions offline: which stage an XP total maps to, whether a skill is unlocked, what a day's routine looks like.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	root.AddCommand(
		newStageCmd(),
		newAssessCmd(),
		newPrescribeCmd(),
		newAxisCmd(),
		newGateCmd(),
		newRoutineCmd(),
		newRewardCmd(),
		newTemplatesCmd(),
		newExportCmd(),
	)
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error: "+err.Error())
		os.Exit(1)
	}
}

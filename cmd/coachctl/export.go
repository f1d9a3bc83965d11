package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/myrjola/hexcoach/internal/logging"
	"github.com/myrjola/hexcoach/internal/sqlite"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		dbURL     string
		athleteID string
		outDir    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy one athlete's data into a standalone SQLite file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if athleteID == "" {
				return errors.New("--athlete is required")
			}
			ctx := cmd.Context()
			logger := logging.New(cmd.ErrOrStderr(), slog.LevelWarn)
			db, err := sqlite.NewDatabase(ctx, dbURL, logger)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() {
				_ = db.Close()
			}()
			path, err := db.ExportAthlete(ctx, athleteID, outDir)
			if err != nil {
				return fmt.Errorf("export athlete: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	cmd.Flags().StringVar(&dbURL, "db", "./hexcoach.sqlite3", "SQLite database URL")
	cmd.Flags().StringVar(&athleteID, "athlete", "", "athlete id")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	return cmd
}

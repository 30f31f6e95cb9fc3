package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/emrpipe/internal/db"
	"github.com/gyeh/emrpipe/internal/exitcode"
	"github.com/gyeh/emrpipe/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: extract, transform, load",
	RunE:  runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&cfg.WorkbookPath, "workbook", "", "Path to the EMR export workbook (or set in --config)")
	f.BoolVar(&cfg.Force, "force", false, "Re-load even if the staged dataset was already loaded")
	f.StringSliceVar(&cfg.Entities, "entities", nil, "Entities to transform (default all)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	log := setupLogger()
	ctx := context.Background()

	if err := loadConfig(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	if err := db.ApplyMigrations(ctx, pool, log); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(exitcode.LoadError)
	}

	summary, err := pipeline.Run(ctx, pool, log, &cfg)
	if err != nil {
		exitPipelineError(log, err)
	}

	if summary.LoadSkipped {
		fmt.Printf("Run complete: dataset already loaded (run %s), nothing to do (%.1fs)\n",
			summary.RunID, summary.DurationTotal.Seconds())
		return nil
	}
	fmt.Printf("Run complete: %d rows staged, %d rows loaded (run %s, %.1fs)\n",
		totalOf(summary.RowsStaged), totalOf(summary.RowsLoaded),
		summary.RunID, summary.DurationTotal.Seconds())
	return nil
}

// exitPipelineError exits with the code matching the failed stage.
func exitPipelineError(log zerolog.Logger, err error) {
	if pe, ok := err.(*pipeline.PipelineError); ok {
		log.Error().Err(pe.Err).Str("stage", pe.Stage).Msg("pipeline failed")
		switch pe.Stage {
		case "extract":
			os.Exit(exitcode.ExtractError)
		case "transform":
			os.Exit(exitcode.TransformError)
		default:
			os.Exit(exitcode.LoadError)
		}
	}
	log.Error().Err(err).Msg("pipeline failed")
	os.Exit(exitcode.LoadError)
}

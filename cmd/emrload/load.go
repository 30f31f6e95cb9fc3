package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/emrpipe/internal/db"
	"github.com/gyeh/emrpipe/internal/exitcode"
	"github.com/gyeh/emrpipe/internal/pipeline"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Append staged CSVs to the database",
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().BoolVar(&cfg.Force, "force", false, "Re-load even if the staged dataset was already loaded")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := setupLogger()
	ctx := context.Background()

	if err := loadConfig(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if cfg.DSN == "" {
		log.Error().Msg("--dsn or DATABASE_URL is required")
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

	res, err := pipeline.Load(ctx, pool, log, &cfg)
	if err != nil {
		log.Error().Err(err).Msg("load failed")
		os.Exit(exitcode.LoadError)
	}

	if res.Skipped {
		fmt.Printf("Load skipped: dataset already loaded (run %s), use --force to re-load\n", res.RunID)
		return nil
	}
	fmt.Printf("Load complete: %d rows appended (run %s)\n", totalOf(res.RowsLoaded), res.RunID)
	return nil
}

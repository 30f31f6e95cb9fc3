package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/emrpipe/internal/config"
	"github.com/gyeh/emrpipe/internal/exitcode"
	"github.com/gyeh/emrpipe/internal/logging"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "emrload",
	Short: "EMR workbook → Postgres batch loader",
	Long:  "Extracts EMR export workbooks to per-sheet CSVs, normalizes the dirty cells, and appends the cleaned rows to Postgres via the COPY protocol.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string (or set DATABASE_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogFile, "log-file", "", "Also append JSON log records to this file")
	pf.StringVar(&cfg.ConfigFile, "config", "", "YAML file describing the dataset (workbook, data_dir, entities)")
	pf.StringVar(&cfg.DataDir, "data-dir", "", "Directory for raw/ and staged/ outputs (default \"data\")")
}

// setupLogger builds the process logger, teeing to --log-file when set.
func setupLogger() zerolog.Logger {
	if cfg.LogFile == "" {
		return logging.Setup(cfg.LogFormat)
	}
	log, err := logging.SetupWithFile(cfg.LogFormat, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open log file: %v\n", err)
		os.Exit(exitcode.UsageError)
	}
	return log
}

// loadConfig merges the YAML config file when given and resolves the
// entity list. Flag values win over file values.
func loadConfig() error {
	if cfg.ConfigFile != "" {
		return cfg.LoadFromFile(cfg.ConfigFile)
	}
	return cfg.ValidateEntities()
}

func totalOf(counts map[string]int64) int64 {
	var total int64
	for _, n := range counts {
		total += n
	}
	return total
}

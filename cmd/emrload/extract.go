package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/emrpipe/internal/exitcode"
	"github.com/gyeh/emrpipe/internal/pipeline"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Export workbook sheets to raw CSVs (no database)",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&cfg.WorkbookPath, "workbook", "", "Path to the EMR export workbook (or set in --config)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := setupLogger()

	if err := loadConfig(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	counts, err := pipeline.Extract(log, cfg.WorkbookPath, cfg.RawDir())
	if err != nil {
		log.Error().Err(err).Msg("extract failed")
		os.Exit(exitcode.ExtractError)
	}

	fmt.Printf("Extract complete: %d sheets, %d rows → %s\n",
		len(counts), totalOf(counts), cfg.RawDir())
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/emrpipe/internal/exitcode"
	"github.com/gyeh/emrpipe/internal/pipeline"
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Normalize raw CSVs into staged CSVs (no database)",
	RunE:  runTransform,
}

func init() {
	transformCmd.Flags().StringSliceVar(&cfg.Entities, "entities", nil, "Entities to transform (default all)")
	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	log := setupLogger()

	if err := loadConfig(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	results, err := pipeline.TransformAll(log, &cfg)
	if err != nil {
		log.Error().Err(err).Msg("transform failed")
		os.Exit(exitcode.TransformError)
	}

	fmt.Printf("Transform complete → %s\n", cfg.StagedDir())
	for _, res := range results {
		fmt.Printf("  %-14s %6d rows  (%d rejected, %d repaired, %d missing)\n",
			res.Entity, res.Rows, res.Rejected, res.Repaired, res.Missing)
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/emrpipe/internal/clean"
	"github.com/gyeh/emrpipe/internal/exitcode"
	"github.com/gyeh/emrpipe/internal/model"
	"github.com/gyeh/emrpipe/internal/normalize"
	"github.com/gyeh/emrpipe/internal/table"
	"github.com/gyeh/emrpipe/internal/workbook"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.WorkbookPath, "workbook", "", "Path to the EMR export workbook (or set in --config)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := setupLogger()

	if err := loadConfig(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, err := normalize.FileHash(cfg.WorkbookPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash workbook")
		os.Exit(exitcode.ExtractError)
	}
	stat, err := os.Stat(cfg.WorkbookPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat workbook")
		os.Exit(exitcode.ExtractError)
	}

	wb, err := workbook.Open(cfg.WorkbookPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open workbook")
		os.Exit(exitcode.ExtractError)
	}
	defer wb.Close()

	sheets := wb.SheetNames()
	if err := workbook.ValidateSheets(sheets); err != nil {
		log.Error().Err(err).Msg("sheet validation failed")
		os.Exit(exitcode.ExtractError)
	}

	fmt.Println("=== emrload plan ===")
	fmt.Printf("Workbook:   %s\n", cfg.WorkbookPath)
	fmt.Printf("SHA-256:    %s\n", sha)
	fmt.Printf("Size:       %d bytes\n", stat.Size())
	fmt.Printf("Sheets:     %d\n", len(sheets))
	fmt.Println()
	fmt.Println("Entity normalization (dry run):")

	for _, ent := range model.AllEntities {
		rows, err := wb.Rows(ent.Sheet)
		if err != nil {
			log.Error().Err(err).Str("entity", ent.Name).Msg("failed to read sheet")
			os.Exit(exitcode.ExtractError)
		}
		if len(rows) == 0 {
			fmt.Printf("  %-14s empty sheet\n", ent.Name)
			continue
		}

		// Mirror the transform read path, which trims header whitespace.
		header := make([]string, len(rows[0]))
		for i, h := range rows[0] {
			header[i] = strings.TrimSpace(h)
		}
		t := table.New(header...)
		for _, row := range rows[1:] {
			t.AppendRow(row...)
		}
		if err := t.Require(ent.Columns...); err != nil {
			log.Error().Err(err).Str("entity", ent.Name).Msg("column check failed")
			os.Exit(exitcode.TransformError)
		}

		fn, _ := clean.ByName(ent.Name)
		// Nop logger: the report below replaces per-cell warnings.
		rec := clean.NewRecorder(ent.Name, zerolog.Nop())
		if err := fn(t, rec); err != nil {
			log.Error().Err(err).Str("entity", ent.Name).Msg("normalization failed")
			os.Exit(exitcode.TransformError)
		}

		fmt.Printf("  %-14s %6d rows  (%d rejected, %d repaired, %d missing)\n",
			ent.Name, len(t.Rows),
			rec.CountKind(clean.KindRejected),
			rec.CountKind(clean.KindRepaired),
			rec.CountKind(clean.KindMissing))
	}

	fmt.Println()
	fmt.Println("Sheet validation: OK")
	return nil
}

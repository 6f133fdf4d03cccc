package main

import (
	"fmt"
	"os"

	"boltjoint/internal/analysis"
	"boltjoint/internal/config"
	"boltjoint/pkg/logger"
	"boltjoint/pkg/report"
	"boltjoint/pkg/serrors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func document(cfg *config.Config, run *analysis.Run) report.Document {
	return report.Document{
		Title:  cfg.Report.Title,
		RunID:  run.ID.String(),
		Units:  run.Units,
		Input:  run.Input,
		Result: run.Result,
	}
}

// runAnalysis analyses the configured joint and logs rejected input with the
// offending field.
func runAnalysis(cmd *cobra.Command, cfg *config.Config, analyzer analysis.Analyzer) (*analysis.Run, error) {
	ctx := cmd.Context()

	run, err := analyzer.Analyze(ctx, cfg.Input())
	if err != nil {
		logger.Error(ctx, "joint analysis failed",
			zap.String("field", serrors.FieldOf(err)),
			zap.Error(err))

		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	return run, nil
}

func analyzeCommand(cfg *config.Config, analyzer analysis.Analyzer) *cobra.Command {
	var withSeries bool
	var indent int

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyses the configured joint and prints the results as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := runAnalysis(cmd, cfg, analyzer)
			if err != nil {
				return err
			}

			return report.WriteJSON(os.Stdout, document(cfg, run), report.JSONOptions{
				Series: withSeries,
				Indent: indent,
			})
		},
	}
	cmd.Flags().BoolVar(&withSeries, "series", false, "Include diagram and preload sweep points")
	cmd.Flags().IntVar(&indent, "indent", 2, "JSON indentation, 0 for compact output")

	return cmd
}

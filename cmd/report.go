package main

import (
	"fmt"
	"io"
	"os"

	"boltjoint/internal/analysis"
	"boltjoint/internal/config"
	"boltjoint/pkg/logger"
	"boltjoint/pkg/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()

		return fmt.Errorf("could not write %s: %w", path, err)
	}

	return f.Close()
}

func reportCommand(cfg *config.Config, analyzer analysis.Analyzer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Analyses the configured joint and writes the workbook and PDF summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			run, err := runAnalysis(cmd, cfg, analyzer)
			if err != nil {
				return err
			}
			doc := document(cfg, run)

			if cfg.Report.Workbook != "" {
				if err := writeFile(cfg.Report.Workbook, func(w io.Writer) error {
					return report.WriteWorkbook(w, doc)
				}); err != nil {
					return err
				}
				logger.Info(ctx, "workbook written", zap.String("path", cfg.Report.Workbook))
			}
			if cfg.Report.PDF != "" {
				if err := writeFile(cfg.Report.PDF, func(w io.Writer) error {
					return report.WritePDF(w, doc)
				}); err != nil {
					return err
				}
				logger.Info(ctx, "pdf summary written", zap.String("path", cfg.Report.PDF))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.Report.Workbook, "workbook", cfg.Report.Workbook, "Workbook output path, empty to skip")
	cmd.Flags().StringVar(&cfg.Report.PDF, "pdf", cfg.Report.PDF, "PDF summary output path, empty to skip")

	return cmd
}

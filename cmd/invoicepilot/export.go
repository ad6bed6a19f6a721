package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/invoicepilot/invoicepilot/internal/common"
	"github.com/invoicepilot/invoicepilot/internal/repository"
	"github.com/invoicepilot/invoicepilot/internal/utils"
)

var (
	exportFrom string
	exportTo   string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export invoices to an Excel workbook",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "start of the issue-date window (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "end of the issue-date window (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportOut, "out", "invoices.xlsx", "output file path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	logger := slog.Default()
	cfg := common.LoadConfig()
	if sqlitePath == "" && cfg.Database.DSN == "" {
		return fmt.Errorf("DB_URL or --sqlite is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, pool, err := openClient(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repository.Close(client, pool, logger)

	repo := repository.NewInvoiceRepository(client, logger)
	exporter := buildExporter(repo, logger)

	from, err := parseDateFlag(exportFrom)
	if err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	to, err := parseDateFlag(exportTo)
	if err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}

	data, err := exporter.ExportInvoicesXLSX(ctx, from, to)
	if err != nil {
		return err
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	logger.Info("export written", "path", exportOut, "bytes", len(data))
	return nil
}

func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := utils.ParseYMD(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

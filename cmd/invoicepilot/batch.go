package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/invoicepilot/invoicepilot/constants"
	"github.com/invoicepilot/invoicepilot/internal/async"
	"github.com/invoicepilot/invoicepilot/internal/common"
	"github.com/invoicepilot/invoicepilot/internal/repository"
)

var batchNote string

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Process every invoice file in a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchNote, "note", "", "note attached to every processed invoice")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	logger := slog.Default()
	cfg := common.LoadConfig()
	if sqlitePath == "" {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, pool, err := openClient(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repository.Close(client, pool, logger)

	repo := repository.NewInvoiceRepository(client, logger)
	proc := buildPipeline(cfg, repo, logger)
	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
	)

	root := args[0]
	var queued int
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			logger.Debug("skipping file", "path", path, "ext", ext)
			return nil
		}
		queued++
		return queue.Enqueue(ctx, async.Job{
			Path:        path,
			Note:        batchNote,
			SubmittedAt: time.Now(),
		})
	})

	// Drain whatever made it into the queue even when the walk was cut short.
	drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	queue.Shutdown(drainCtx)

	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}
	logger.Info("batch complete", "queued", queued)
	return nil
}

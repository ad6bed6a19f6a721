package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/invoicepilot/invoicepilot/internal/common"
	"github.com/invoicepilot/invoicepilot/internal/repository"
	"github.com/invoicepilot/invoicepilot/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
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
	handler := server.NewInvoicesHandler(repo, proc, buildExporter(repo, logger), logger, cfg.Server.MaxUploadBytes)
	router := server.NewRouter(handler, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	logger.Info("stopped")
	return nil
}

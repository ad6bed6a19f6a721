package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invoicepilot/invoicepilot/gen/ent"
	"github.com/invoicepilot/invoicepilot/internal/common"
	"github.com/invoicepilot/invoicepilot/internal/export"
	"github.com/invoicepilot/invoicepilot/internal/llm/openai"
	"github.com/invoicepilot/invoicepilot/internal/pipeline"
	"github.com/invoicepilot/invoicepilot/internal/repository"
	"github.com/invoicepilot/invoicepilot/internal/validation"
)

var sqlitePath string

func init() {
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite", "",
		"use an embedded SQLite database at this path instead of DB_URL")
}

// openClient connects to Postgres via DB_URL, or to embedded SQLite when
// --sqlite is given. The pool is nil in SQLite mode.
func openClient(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if sqlitePath != "" {
		client, err := repository.OpenSQLite("file:" + sqlitePath + "?cache=shared")
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		// embedded mode owns its schema
		if err := client.Schema.Create(ctx); err != nil {
			return nil, nil, fmt.Errorf("create schema: %w", err)
		}
		return client, nil, nil
	}

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		repository.Close(client, pool, logger)
		return nil, nil, fmt.Errorf("database health check: %w", err)
	}
	return client, pool, nil
}

// buildPipeline assembles the extractor, gate and orchestrator around a repository.
func buildPipeline(cfg *common.Config, repo repository.InvoiceRepository, logger *slog.Logger) *pipeline.Processor {
	extractor := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	gate := validation.NewGate(logger)
	return pipeline.NewProcessor(logger, extractor, gate, repo,
		pipeline.WithExtractTimeout(cfg.Pipeline.ExtractTimeout))
}

func buildExporter(repo repository.InvoiceRepository, logger *slog.Logger) *export.Service {
	return export.NewService(repo, logger)
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:     "invoicepilot",
	Short:   "Invoice Pilot - chat-based invoice extraction backend",
	Version: version,
	Long: `Invoice Pilot accepts uploaded invoice documents (PDF or image),
sends them to an LLM provider for extraction and validation, and persists
accepted invoices with their line items to a relational store.`,
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

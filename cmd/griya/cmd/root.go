// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

// Package cmd defines the griya CLI commands.
package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "griya",
	Short: "Portfolio site for Studio Griya",
	Long: `griya serves the Studio Griya portfolio site, validates the
embedded portfolio dataset, and exports the site to static files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is a development convenience; absence is fine.
		_ = godotenv.Load()
		setupLogger()
	},
}

// Execute runs the CLI. Errors are logged here so main stays trivial.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		slog.Error("command failed", "error", err)
	}
	return err
}

// setupLogger configures slog: JSON in production, text elsewhere.
func setupLogger() {
	level := slog.LevelInfo
	if os.Getenv("APP_ENV") != "production" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if os.Getenv("APP_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

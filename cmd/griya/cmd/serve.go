// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"griya/internal/cache"
	"griya/internal/catalog"
	"griya/internal/config"
	"griya/internal/handlers"
	"griya/internal/render"
	"griya/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio site over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	// Load the embedded dataset and refuse to serve a broken one:
	// a malformed tour or dangling category reference belongs in the
	// build log, not in a visitor's browser.
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("catalog validation: %w", err)
	}
	slog.Info("catalog loaded",
		"categories", len(cat.Categories.All()),
		"projects", len(cat.Projects.All()),
	)

	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("initialize renderer: %w", err)
	}

	// The page cache is optional; without a Valkey host every request
	// renders, which this dataset easily sustains.
	var pageCache *cache.PageCache
	if cfg.CacheEnabled() {
		client, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return fmt.Errorf("connect valkey: %w", err)
		}
		defer client.Close()
		pageCache = cache.NewPageCache(client, cache.DefaultPageTTL)
	} else {
		slog.Info("page cache disabled (no VALKEY_HOST)")
	}

	public := handlers.NewPublic(cat, renderer, pageCache)
	r := router.New(public)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

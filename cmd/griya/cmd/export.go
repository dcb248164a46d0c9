// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"griya/internal/catalog"
	"griya/internal/config"
	"griya/internal/export"
	"griya/internal/handlers"
	"griya/internal/render"
	"griya/internal/router"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the site to static files",
	Long: `export pre-renders every page through the production router and
writes an index.html tree plus static assets to the output directory.
The result can be hosted on any static file server or CDN.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		cat, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		if err := cat.Validate(); err != nil {
			return fmt.Errorf("catalog validation: %w", err)
		}

		renderer, err := render.New()
		if err != nil {
			return fmt.Errorf("initialize renderer: %w", err)
		}

		// No page cache during export; every page renders exactly once.
		public := handlers.NewPublic(cat, renderer, nil)
		r := router.New(public)

		out := exportOut
		if out == "" {
			out = cfg.ExportDir
		}
		return export.New(cat, r, out).Run(cmd.Context())
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output directory (default $EXPORT_DIR or ./dist)")
	rootCmd.AddCommand(exportCmd)
}

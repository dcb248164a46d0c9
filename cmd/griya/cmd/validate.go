// Copyright (c) 2026 Studio Griya Nusantara <halo@griya.studio>
// All rights reserved. See LICENSE for details.

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"griya/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the embedded portfolio dataset",
	Long: `validate runs the whole-store integrity pass: id and slug
uniqueness, project-to-category references, hotspot coordinate bounds,
and tour graph construction for every project. It reports every defect
it finds and exits non-zero on failure, so it can gate deploys.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		if err := cat.Validate(); err != nil {
			return fmt.Errorf("dataset has defects:\n%w", err)
		}
		slog.Info("dataset valid",
			"categories", len(cat.Categories.All()),
			"projects", len(cat.Projects.All()),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

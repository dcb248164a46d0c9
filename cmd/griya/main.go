// Package main is the entry point for the griya binary: the portfolio
// site server, dataset validator, and static exporter.
package main

import (
	"os"

	"griya/cmd/griya/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

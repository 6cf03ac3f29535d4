package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"roadwatch/internal/config"
	"roadwatch/internal/parse"
	"roadwatch/internal/store"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, store, and PDF font",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			home, _ := os.UserHomeDir()
			cfgPath := filepath.Join(home, ".config", "roadwatch", "config.toml")
			if _, err := os.Stat(cfgPath); err == nil {
				fmt.Printf("  File: %s (OK)\n", cfgPath)
			} else {
				fmt.Printf("  File: %s (absent, using defaults)\n", cfgPath)
			}
			marker := cfg.ReportMarker
			if marker == "" {
				marker = parse.DefaultMarker
			}
			fmt.Printf("  Report marker: %s\n", marker)
			fmt.Printf("  Sort order:    %s\n", cfg.SortOrder)

			fmt.Println("\n=== Store ===")
			fmt.Printf("  Path: %s\n", cfg.StorePath)
			if _, err := os.Stat(cfg.StorePath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (run 'roadwatch process' first)")
			} else {
				st, err := store.Load(cfg.StorePath, logger)
				if err != nil {
					fmt.Printf("  Status: UNREADABLE (%v)\n", err)
				} else {
					dates, sightings := st.Stats()
					fmt.Printf("  Dates:     %d\n", dates)
					fmt.Printf("  Sightings: %d\n", sightings)
					fmt.Println("  Status: OK")
				}
			}

			fmt.Println("\n=== PDF Font ===")
			if cfg.FontPath == "" {
				fmt.Println("  Not configured: PDF output falls back to Helvetica (Latin only)")
			} else if info, err := os.Stat(cfg.FontPath); err != nil {
				fmt.Printf("  %s (NOT FOUND)\n", cfg.FontPath)
			} else {
				fmt.Printf("  %s (%.1f KB, OK)\n", cfg.FontPath, float64(info.Size())/1024)
			}

			return nil
		},
	}
}

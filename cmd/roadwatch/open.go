package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"roadwatch/internal/config"
	"roadwatch/internal/open"
)

func openCmd() *cobra.Command {
	var storePath string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open the store file in $EDITOR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if storePath == "" {
				storePath = cfg.StorePath
			}
			return open.InEditor(storePath)
		},
	}

	cmd.Flags().StringVar(&storePath, "store", "", "Store file path (default from config)")

	return cmd
}

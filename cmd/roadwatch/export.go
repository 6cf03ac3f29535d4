package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roadwatch/internal/config"
	"roadwatch/internal/render"
	"roadwatch/internal/store"
)

func exportCmd() *cobra.Command {
	var date, storePath, fontPath, outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the cumulative tables stored for a date to a PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if storePath == "" {
				storePath = cfg.StorePath
			}
			if fontPath == "" {
				fontPath = cfg.FontPath
			}

			st, err := store.Load(storePath, logger)
			if err != nil {
				return fmt.Errorf("load store: %w", err)
			}

			day := st.Day(date)
			if day == nil {
				return fmt.Errorf("no data stored for %s", date)
			}

			err = render.PDF(outPath, date, day.Chronological, summaryFromDay(day),
				fontPath, render.Options{Visual: !cfg.LegacyRTL})
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "PDF written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to export, D.M.YYYY (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output PDF path (required)")
	cmd.Flags().StringVar(&storePath, "store", "", "Store file path (default from config)")
	cmd.Flags().StringVar(&fontPath, "font", "", "TTF font for PDF output (default from config)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

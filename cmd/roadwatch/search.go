package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"roadwatch/internal/config"
	"roadwatch/internal/render"
	"roadwatch/internal/store"
)

const (
	sColorReset = "\033[0m"
	sColorDim   = "\033[2m"
	sColorCar   = "\033[1;32m"
)

func searchCmd() *cobra.Command {
	var date, storePath string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Find stored car descriptions by substring",
		Long: `Case-insensitive substring search over car descriptions across all
stored dates. Each match prints the date, the car and its sightings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if storePath == "" {
				storePath = cfg.StorePath
			}

			st, err := store.Load(storePath, logger)
			if err != nil {
				return fmt.Errorf("load store: %w", err)
			}

			results := st.Search(args[0], date, limit)
			if len(results) == 0 {
				fmt.Fprintln(os.Stderr, "No results found.")
				return nil
			}

			color := term.IsTerminal(int(os.Stdout.Fd()))
			dim, carC, reset := sColorDim, sColorCar, sColorReset
			if !color {
				dim, carC, reset = "", "", ""
			}
			visual := func(s string) string {
				if cfg.LegacyRTL {
					return s
				}
				return render.Visual(s)
			}

			for _, r := range results {
				fmt.Printf("%s%s%s  %s%s%s  (%d sightings)\n",
					dim, r.Date, reset, carC, visual(r.Car), reset, len(r.Entries))
				for _, e := range r.Entries {
					fmt.Printf("  - %s | %s | %s\n",
						e.Time, visual(e.Reporter), visual(e.Direction))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Restrict to one date, D.M.YYYY")
	cmd.Flags().StringVar(&storePath, "store", "", "Store file path (default from config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results (0 = no limit)")

	return cmd
}

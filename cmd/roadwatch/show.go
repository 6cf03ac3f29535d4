package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"roadwatch/internal/aggregate"
	"roadwatch/internal/config"
	"roadwatch/internal/render"
	"roadwatch/internal/store"
)

func showCmd() *cobra.Command {
	var date, storePath string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the cumulative tables stored for a date",
		Args:  cobra.NoArgs,
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

			day := st.Day(date)
			if day == nil {
				return fmt.Errorf("no data stored for %s", date)
			}

			render.Console(os.Stdout, date, day.Chronological, summaryFromDay(day), render.Options{
				Color:  !noColor && term.IsTerminal(int(os.Stdout.Fd())),
				Visual: !cfg.LegacyRTL,
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to show, D.M.YYYY (required)")
	cmd.Flags().StringVar(&storePath, "store", "", "Store file path (default from config)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

// summaryFromDay rebuilds a summary view from a stored day bucket. The
// JSON map loses first-seen order, so cars come back sorted.
func summaryFromDay(day *store.DayRecord) *aggregate.Summary {
	cars := make([]string, 0, len(day.CarSummary))
	for car := range day.CarSummary {
		cars = append(cars, car)
	}
	sort.Strings(cars)

	sum := aggregate.NewSummary()
	for _, car := range cars {
		for _, e := range day.CarSummary[car] {
			sum.Add(car, e)
		}
	}
	return sum
}

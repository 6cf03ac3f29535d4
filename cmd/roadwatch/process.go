package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"roadwatch/internal/aggregate"
	"roadwatch/internal/config"
	"roadwatch/internal/parse"
	"roadwatch/internal/prompt"
	"roadwatch/internal/render"
	"roadwatch/internal/scan"
	"roadwatch/internal/store"
)

func processCmd() *cobra.Command {
	var date, storePath, pdfPath, fontPath, sortOrder string
	var autoSkip, legacyRTL, shortTime, noColor bool

	cmd := &cobra.Command{
		Use:   "process <chat-file-or-dir>",
		Short: "Parse a chat export and fold one day's sightings into the store",
		Long: `Parses an exported chat text file (or every .txt file under a
directory), keeps the car-sighting reports for --date, merges them
append-only into the cumulative store and prints the chronological and
per-car tables.

Unrecognized lines get a single interactive correction prompt; pass
--auto-skip (or pipe stdin) to drop them instead.`,
		Args: cobra.ExactArgs(1),
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
			if !cmd.Flags().Changed("sort") && cfg.SortOrder != "" {
				sortOrder = cfg.SortOrder
			}
			if !cmd.Flags().Changed("legacy-rtl") {
				legacyRTL = cfg.LegacyRTL
			}
			if !cmd.Flags().Changed("short-time") {
				shortTime = cfg.ShortTime
			}

			order, err := aggregate.ParseOrder(sortOrder)
			if err != nil {
				return err
			}

			var resolver parse.Resolver = parse.AutoSkip{}
			if !autoSkip && term.IsTerminal(int(os.Stdin.Fd())) {
				resolver = prompt.Corrector{}
			}

			parser := parse.New(parse.Options{
				Marker:        cfg.ReportMarker,
				ShortTime:     shortTime,
				LegacyReverse: legacyRTL,
			}, resolver, logger)

			paths := []string{args[0]}
			if info, statErr := os.Stat(args[0]); statErr == nil && info.IsDir() {
				paths, err = scan.ChatFiles(args[0])
				if err != nil {
					return fmt.Errorf("scan %s: %w", args[0], err)
				}
				if len(paths) == 0 {
					return fmt.Errorf("no .txt chat exports under %s", args[0])
				}
			}

			var reports []parse.Report
			for _, p := range paths {
				rs, err := parser.ParseFile(p)
				if err != nil {
					return fmt.Errorf("parse %s: %w", p, err)
				}
				reports = append(reports, rs...)
			}

			matched := parse.FilterDate(reports, date)
			logger.Info("parsed chat export",
				zap.Int("recognized", len(reports)),
				zap.Int("for_date", len(matched)),
				zap.String("date", date))

			rows := aggregate.Chronological(matched, order)
			sum := aggregate.GroupByCar(matched)

			st, err := store.Load(storePath, logger)
			if err != nil {
				return fmt.Errorf("load store: %w", err)
			}
			st.Merge(date, rows, sum)
			if err := st.Save(); err != nil {
				return fmt.Errorf("save store: %w", err)
			}

			render.Console(os.Stdout, date, rows, sum, render.Options{
				Color: !noColor && term.IsTerminal(int(os.Stdout.Fd())),
				// legacy parse-time reversal already stored visual order
				Visual: !legacyRTL,
			})

			if pdfPath != "" {
				err := render.PDF(pdfPath, date, rows, sum, fontPath,
					render.Options{Visual: !legacyRTL})
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "PDF written to %s\n", pdfPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Target date, D.M.YYYY (required)")
	cmd.Flags().StringVar(&storePath, "store", "", "Store file path (default from config)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Also write a PDF report to this path")
	cmd.Flags().StringVar(&fontPath, "font", "", "TTF font for PDF output (default from config)")
	cmd.Flags().StringVar(&sortOrder, "sort", "lexical", "Time ordering: lexical or clock")
	cmd.Flags().BoolVar(&autoSkip, "auto-skip", false, "Drop unrecognized lines without prompting")
	cmd.Flags().BoolVar(&legacyRTL, "legacy-rtl", false, "Reverse RTL fields at parse time (legacy store compatibility)")
	cmd.Flags().BoolVar(&shortTime, "short-time", false, "Truncate times to H:M")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

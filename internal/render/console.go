package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"roadwatch/internal/aggregate"
)

const (
	colorReset = "\033[0m"
	colorDim   = "\033[2m"
	colorHead  = "\033[1;34m" // bold blue section headers
	colorCar   = "\033[1;32m" // bold green car descriptions
)

type Options struct {
	Color bool
	// Visual applies the right-to-left display transform to text
	// fields. Leave it off for legacy stores that were reversed at
	// parse time.
	Visual bool
}

func (o Options) text(s string) string {
	if o.Visual {
		return Visual(s)
	}
	return s
}

func (o Options) paint(code, s string) string {
	if !o.Color {
		return s
	}
	return code + s + colorReset
}

// Console writes the chronological table and per-car breakdown for one
// date. Columns are padded by display width so Hebrew and Latin cells
// line up.
func Console(w io.Writer, date string, rows []aggregate.Row, sum *aggregate.Summary, opts Options) {
	fmt.Fprintln(w, opts.paint(colorHead, "=== Chronological Table ("+date+") ==="))

	type visRow struct{ time, reporter, direction, car string }
	vis := make([]visRow, 0, len(rows))
	timeW, repW, dirW := 0, 0, 0
	for _, r := range rows {
		v := visRow{r.Time, opts.text(r.Reporter), opts.text(r.Direction), opts.text(r.Car)}
		vis = append(vis, v)
		timeW = max(timeW, runewidth.StringWidth(v.time))
		repW = max(repW, runewidth.StringWidth(v.reporter))
		dirW = max(dirW, runewidth.StringWidth(v.direction))
	}
	for _, v := range vis {
		fmt.Fprintf(w, "%s | %s | %s | %s\n",
			pad(v.time, timeW), pad(v.reporter, repW), pad(v.direction, dirW), v.car)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, opts.paint(colorHead, "=== Car Summary Table ==="))
	for _, car := range sum.Cars() {
		fmt.Fprintf(w, "%s:\n", opts.paint(colorCar, opts.text(car)))
		for _, e := range sum.Entries(car) {
			fmt.Fprintf(w, "  - %s | %s | %s\n",
				e.Time, opts.text(e.Reporter), opts.text(e.Direction))
		}
	}
}

func pad(s string, w int) string {
	gap := w - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

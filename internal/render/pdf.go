package render

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"roadwatch/internal/aggregate"
)

const pdfMargin = 15.0

// PDF lays out a title, the target date, the chronological table and
// the per-car breakdown as paginated text blocks and writes the
// document to path. fontPath names a UTF-8 TTF able to render the
// report script; when empty the built-in Helvetica is used, which
// covers Latin content only.
func PDF(path, date string, rows []aggregate.Row, sum *aggregate.Summary, fontPath string, opts Options) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	family := "Helvetica"
	if fontPath != "" {
		family = "report"
		doc.AddUTF8Font(family, "", fontPath)
	}
	doc.SetAutoPageBreak(true, pdfMargin)
	doc.AddPage()

	doc.SetFont(family, "", 18)
	doc.CellFormat(0, 10, "Road Watch Report", "", 1, "C", false, 0, "")
	doc.SetFont(family, "", 12)
	doc.CellFormat(0, 8, date, "", 1, "C", false, 0, "")
	doc.Ln(4)

	block := func(s string) {
		doc.MultiCell(0, 6, s, "", "L", false)
	}

	doc.SetFont(family, "", 13)
	block("Chronological Table")
	doc.SetFont(family, "", 11)
	for _, r := range rows {
		block(fmt.Sprintf("%s | %s | %s | %s",
			r.Time, opts.text(r.Reporter), opts.text(r.Direction), opts.text(r.Car)))
	}
	doc.Ln(4)

	doc.SetFont(family, "", 13)
	block("Car Summary")
	doc.SetFont(family, "", 11)
	for _, car := range sum.Cars() {
		block(opts.text(car) + ":")
		for _, e := range sum.Entries(car) {
			block(fmt.Sprintf("    %s | %s | %s",
				e.Time, opts.text(e.Reporter), opts.text(e.Direction)))
		}
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

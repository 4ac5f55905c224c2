package document

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// WritePDF renders the table data as a PDF and saves it to the given path.
func WritePDF(data TableData, path string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	if data.Title != "" {
		m.AddRow(14,
			text.NewCol(12, data.Title, props.Text{
				Style: fontstyle.Bold,
				Size:  16,
				Color: &pdfHeaderColor,
			}),
		)
		m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
		m.AddRow(4) // spacer
	}

	widths := columnWidths(len(data.Header))

	// Header row
	headerCols := make([]core.Col, len(data.Header))
	for i, label := range data.Header {
		headerCols[i] = text.NewCol(widths[i], label, props.Text{
			Style: fontstyle.Bold,
			Size:  10,
			Color: &pdfHeaderColor,
		})
	}
	m.AddRow(8, headerCols...)
	m.AddRow(2, line.NewCol(12, props.Line{Color: &pdfLineColor}))

	// Data rows
	for _, row := range data.Rows {
		cols := make([]core.Col, len(row))
		for i, cell := range row {
			cols[i] = text.NewCol(widths[i], cell, props.Text{Size: 9})
		}
		m.AddRow(6, cols...)
	}

	// Row count footer
	m.AddRow(2, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%d dates", len(data.Rows)), props.Text{
			Size:  9,
			Align: align.Right,
			Color: &pdfMutedColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(path)
}

// columnWidths spreads maroto's 12-unit grid across the columns, giving any
// remainder to the first (date) column.
func columnWidths(n int) []int {
	if n <= 0 {
		return nil
	}
	base := 12 / n
	if base < 1 {
		base = 1
	}
	widths := make([]int, n)
	total := 0
	for i := range widths {
		widths[i] = base
		total += base
	}
	if rem := 12 - total; rem > 0 {
		widths[0] += rem
	}
	return widths
}

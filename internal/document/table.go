package document

import (
	"time"

	"github.com/megabyte6/WordDateGenerator/internal/daterange"
)

// TableData is the rendered form of an enumerated date range, ready to be
// written as a document table.
type TableData struct {
	Title  string
	Header []string
	Rows   [][]string
}

// BuildTableData formats the enumerated dates into one row per date. The
// first column holds the formatted date; each extra column adds an empty
// cell so the table can be filled in by hand afterwards.
func BuildTableData(dates []time.Time, opts daterange.Options, extraCols []string) TableData {
	format := opts.Format
	if format == "" {
		format = daterange.DefaultFormat
	}

	header := append([]string{"Date"}, extraCols...)
	rows := make([][]string, len(dates))
	for i, d := range dates {
		row := make([]string, len(header))
		row[0] = daterange.FormatDate(d, format)
		rows[i] = row
	}

	return TableData{Header: header, Rows: rows}
}

// Cells returns just the formatted date column, used for template fill.
func (d TableData) Cells() []string {
	cells := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		cells[i] = row[0]
	}
	return cells
}

package document

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fumiama/go-docx"
)

// WriteDocx writes a fresh .docx containing the table data: an optional
// heading paragraph followed by a table with a bold header row.
func WriteDocx(data TableData, path string) error {
	w := docx.New().WithDefaultTheme()

	if data.Title != "" {
		w.AddParagraph().AddText(data.Title).Size("32").Bold()
	}

	cols := len(data.Header)
	tbl := w.AddTable(len(data.Rows)+1, cols, 0, nil)

	headerRow := tbl.TableRows[0]
	for c, label := range data.Header {
		headerRow.TableCells[c].AddParagraph().AddText(label).Bold()
	}

	for r, row := range data.Rows {
		cells := tbl.TableRows[r+1].TableCells
		for c, text := range row {
			if text == "" {
				continue
			}
			cells[c].AddParagraph().AddText(text)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := w.WriteTo(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// FillTemplate opens an existing .docx, writes cells into the given table's
// column (both 0-based), one per existing row, and saves the result to
// outPath. Writing stops at the shorter of the table's rows and cells;
// remaining rows are left untouched.
func FillTemplate(templatePath string, tableIndex, column int, cells []string, outPath string) error {
	doc, err := openDocx(templatePath)
	if err != nil {
		return err
	}

	tables := docTables(doc)
	if tableIndex < 0 || tableIndex >= len(tables) {
		return fmt.Errorf("template has %d table(s), table %d does not exist", len(tables), tableIndex+1)
	}
	tbl := tables[tableIndex]

	for r, row := range tbl.TableRows {
		if r >= len(cells) {
			break
		}
		if column < 0 || column >= len(row.TableCells) {
			return fmt.Errorf("table %d has %d column(s), column %d does not exist", tableIndex+1, len(row.TableCells), column+1)
		}
		cell := row.TableCells[column]
		cell.Paragraphs = cell.Paragraphs[:0]
		cell.AddParagraph().AddText(cells[r])
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

// TableCount returns the number of tables in a .docx file.
func TableCount(path string) (int, error) {
	doc, err := openDocx(path)
	if err != nil {
		return 0, err
	}
	return len(docTables(doc)), nil
}

// ColumnCount returns the number of columns in the first row of the given
// table (0-based) of a .docx file.
func ColumnCount(path string, tableIndex int) (int, error) {
	doc, err := openDocx(path)
	if err != nil {
		return 0, err
	}
	tables := docTables(doc)
	if tableIndex < 0 || tableIndex >= len(tables) {
		return 0, fmt.Errorf("template has %d table(s), table %d does not exist", len(tables), tableIndex+1)
	}
	if len(tables[tableIndex].TableRows) == 0 {
		return 0, nil
	}
	return len(tables[tableIndex].TableRows[0].TableCells), nil
}

func openDocx(path string) (*docx.Docx, error) {
	// Parse from an in-memory copy: the parsed Docx reads from the
	// underlying reader again when it is written out, which would fail
	// against a file handle closed when this function returns.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

func docTables(doc *docx.Docx) []*docx.Table {
	var tables []*docx.Table
	for _, it := range doc.Document.Body.Items {
		if tbl, ok := it.(*docx.Table); ok {
			tables = append(tables, tbl)
		}
	}
	return tables
}

package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePDF_CreatesFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "dates.pdf")

	err := WritePDF(testTableData(), outPath)
	require.NoError(t, err)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestWritePDF_NoTitle(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "plain.pdf")

	data := testTableData()
	data.Title = ""

	require.NoError(t, WritePDF(data, outPath))
}

func TestWritePDF_UnwritablePath(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "missing", "dates.pdf")

	assert.Error(t, WritePDF(testTableData(), outPath))
}

func TestWritePDF_ManyColumns(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "wide.pdf")

	data := TableData{
		Header: []string{"Date", "A", "B", "C", "D"},
		Rows:   [][]string{{"Mon. Mar. 10", "", "", "", ""}},
	}
	require.NoError(t, WritePDF(data, outPath))
}

func TestColumnWidths(t *testing.T) {
	assert.Equal(t, []int{12}, columnWidths(1))
	assert.Equal(t, []int{6, 6}, columnWidths(2))
	assert.Equal(t, []int{4, 4, 4}, columnWidths(3))
	// Remainder goes to the date column.
	assert.Equal(t, []int{4, 2, 2, 2, 2}, columnWidths(5))
	assert.Nil(t, columnWidths(0))
}

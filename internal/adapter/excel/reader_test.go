package excel_test

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/bencana-dashboard/internal/adapter/excel"
	"github.com/couchcryptid/bencana-dashboard/internal/domain"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	path := filepath.Join(t.TempDir(), "recap.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadSheet(t *testing.T) {
	logger := slog.Default()

	t.Run("reads rows from the first sheet by default", func(t *testing.T) {
		path := writeWorkbook(t, "Sheet1", [][]any{
			{"Provinsi", "Jumlah Kejadian"},
			{"Aceh", 3},
		})

		rows, err := excel.NewReader(logger).ReadSheet(path, "")

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Provinsi", rows[0][0])
		assert.Equal(t, "3", rows[1][1])
	})

	t.Run("reads a named sheet", func(t *testing.T) {
		path := writeWorkbook(t, "Rekap", [][]any{{"Provinsi"}, {"Bali"}})

		rows, err := excel.NewReader(logger).ReadSheet(path, "Rekap")

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Bali", rows[1][0])
	})

	t.Run("missing file is a ReadError", func(t *testing.T) {
		_, err := excel.NewReader(logger).ReadSheet(filepath.Join(t.TempDir(), "nope.xlsx"), "")

		var readErr *domain.ReadError
		require.ErrorAs(t, err, &readErr)
		assert.Contains(t, readErr.Path, "nope.xlsx")
	})

	t.Run("missing sheet is a ReadError", func(t *testing.T) {
		path := writeWorkbook(t, "Sheet1", [][]any{{"Provinsi"}})

		_, err := excel.NewReader(logger).ReadSheet(path, "TidakAda")

		var readErr *domain.ReadError
		require.ErrorAs(t, err, &readErr)
	})
}

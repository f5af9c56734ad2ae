// Package excel reads BNPB recap workbooks into raw cell grids.
package excel

import (
	"errors"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/bencana-dashboard/internal/domain"
)

// Reader opens xlsx workbooks and returns their cell grid as text.
// All cell values come back as strings; coercion is the Cleaner's job.
type Reader struct {
	logger *slog.Logger
}

// NewReader creates a workbook reader.
func NewReader(logger *slog.Logger) *Reader {
	return &Reader{logger: logger}
}

// ReadSheet returns the rows of the named sheet, or of the first sheet
// when name is empty. Failures to open or read surface as a ReadError so
// callers can distinguish them from schema problems.
func (r *Reader) ReadSheet(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &domain.ReadError{Path: path, Err: err}
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &domain.ReadError{Path: path, Err: errors.New("workbook has no sheets")}
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &domain.ReadError{Path: path, Err: err}
	}

	r.logger.Debug("workbook read", "path", path, "sheet", sheet, "rows", len(rows))
	return rows, nil
}

package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/goldrock/minelines/internal/sheet"
)

// Workbook reads the grid from a local Excel workbook, for offline builds
// from an exported copy of the production spreadsheet.
type Workbook struct {
	path      string
	sheetName string
}

// NewWorkbook creates a workbook source. An empty sheetName selects the
// first worksheet in the file.
func NewWorkbook(path, sheetName string) *Workbook {
	return &Workbook{
		path:      path,
		sheetName: sheetName,
	}
}

func (w *Workbook) Rows(ctx context.Context) (sheet.Grid, error) {
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	name := w.sheetName
	if name == "" {
		name = f.GetSheetName(0)
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", name, err)
	}

	return sheet.Grid(rows), nil
}

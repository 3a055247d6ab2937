// Package source supplies the raw worksheet grid for a dashboard build,
// either from a Google Sheets range or from a local Excel workbook.
package source

import (
	"context"

	"github.com/goldrock/minelines/internal/sheet"
)

// Source yields the header row plus data rows for one build.
type Source interface {
	Rows(ctx context.Context) (sheet.Grid, error)
}

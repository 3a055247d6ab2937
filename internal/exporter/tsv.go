package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goldrock/minelines/internal/dashboard"
	"github.com/goldrock/minelines/internal/sheet"
)

// WriteTSV writes records as tab-separated values, one line per record, with
// the first record's field set as the header row. All records from a single
// materialized grid share the same field set, so the header is
// representative. Numeric fields are formatted with a fixed precision
// (3 decimals for the grade, 2 for the money fields).
func WriteTSV(f io.Writer, records []*sheet.Record) error {
	if len(records) == 0 {
		return nil
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	header := records[0].Keys()
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := make([]string, len(header))
		for i, key := range header {
			row[i] = formatField(r, key)
		}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

// WriteTSVFile writes records to a TSV file via a temporary file, as
// WriteJSONFile does.
func WriteTSVFile(path string, records []*sheet.Record) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "records")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := WriteTSV(tmp, records); err != nil {
		return fmt.Errorf("error creating TSV file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func formatField(r *sheet.Record, key string) string {
	if v, ok := r.Get(key); ok {
		return v
	}

	if n, ok := r.Number(key); ok {
		if key == dashboard.FieldAvgGrade {
			return fmt.Sprintf("%.3f", n)
		}

		return fmt.Sprintf("%.2f", n)
	}

	return ""
}

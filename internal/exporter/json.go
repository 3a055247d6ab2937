// Package exporter writes the build results to local files.
package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goldrock/minelines/internal/dashboard"
)

// WriteJSONFile writes the dashboard document to path, creating intermediate
// directories as required. The document is written to a temporary file and
// renamed into place so a failed build never leaves a truncated data file
// for the dashboard to pick up.
func WriteJSONFile(path string, doc *dashboard.Document) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "dashboard")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	encoder := json.NewEncoder(tmp)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("error encoding dashboard JSON: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

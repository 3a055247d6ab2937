package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goldrock/minelines/internal/config"
	"github.com/goldrock/minelines/internal/dashboard"
	"github.com/goldrock/minelines/internal/exporter"
	"github.com/goldrock/minelines/internal/sheet"
	"github.com/goldrock/minelines/internal/source"
)

var (
	flagURL       string
	flagSheetID   string
	flagRange     string
	flagFile      string
	flagWorksheet string
	flagOut       string
	flagTSV       string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Fetches the production worksheet and writes the dashboard JSON",
	Long: `Fetches the production rows from the configured spreadsheet (or reads them
from a local workbook given with --file), derives the per-row economics,
groups the rows by line and writes the dashboard data file.`,
	Example: `  minelines build --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" --out data.json
  minelines build --file production.xlsx --worksheet Lines`,
	RunE: runBuild,
}

func init() {
	addSheetFlags(buildCmd)

	buildCmd.Flags().StringVar(&flagFile, "file", "", "Local .xlsx workbook to read instead of Google Sheets")
	buildCmd.Flags().StringVar(&flagWorksheet, "worksheet", "", "Worksheet name within the --file workbook (defaults to the first sheet)")
	buildCmd.Flags().StringVar(&flagOut, "out", "", "Output JSON file (overrides OUTPUT_FILE)")
	buildCmd.Flags().StringVar(&flagTSV, "tsv", "", "Also writes the enriched records as a flat TSV file")
}

// addSheetFlags registers the spreadsheet selection flags shared by the
// commands that read from Google Sheets.
func addSheetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagURL, "url", "", "Spreadsheet URL (alternative to --sheet-id)")
	cmd.Flags().StringVar(&flagSheetID, "sheet-id", "", "Spreadsheet ID (overrides SHEET_ID)")
	cmd.Flags().StringVar(&flagRange, "range", "", "Worksheet range e.g. 'Lines!A1:Z999' (overrides SHEET_RANGE)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := configure()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return err
	}

	src, err := buildSource(ctx, cfg)
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return err
	}

	grid, err := src.Rows(ctx)
	if err != nil {
		slog.Error("fetch failed", slog.String("error", err.Error()))
		return err
	}

	records := sheet.Materialize(grid)
	dashboard.EnrichAll(records)
	doc := dashboard.Group(records)

	if err := exporter.WriteJSONFile(cfg.Output, doc); err != nil {
		slog.Error("write failed", slog.String("file", cfg.Output), slog.String("error", err.Error()))
		return err
	}

	slog.Info("dashboard data written",
		slog.String("file", cfg.Output),
		slog.Int("rows", len(records)),
		slog.Int("lines", len(doc.Lines)))

	if flagTSV != "" {
		if err := exporter.WriteTSVFile(flagTSV, records); err != nil {
			slog.Error("write failed", slog.String("file", flagTSV), slog.String("error", err.Error()))
			return err
		}

		slog.Info("flat export written", slog.String("file", flagTSV))
	}

	return nil
}

// configure loads the environment configuration and applies any command line
// overrides.
func configure() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	if flagURL != "" {
		id, err := source.SpreadsheetID(flagURL)
		if err != nil {
			return config.Config{}, err
		}

		cfg.SheetID = id
	}

	if flagSheetID != "" {
		cfg.SheetID = flagSheetID
	}

	if flagRange != "" {
		cfg.Range = flagRange
	}

	if flagOut != "" {
		cfg.Output = flagOut
	}

	return cfg, nil
}

func buildSource(ctx context.Context, cfg config.Config) (source.Source, error) {
	if flagFile != "" {
		return source.NewWorkbook(flagFile, flagWorksheet), nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	credentials, err := source.Credentials(ctx, cfg.ServiceAccountJSON, cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}

	return source.NewSheets(cfg.SheetID, cfg.Range, credentials), nil
}

package commands

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/goldrock/minelines/internal/exporter"
	"github.com/goldrock/minelines/internal/sheet"
)

var getFile string

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Downloads the production worksheet to a local TSV file",
	Long: `Downloads the configured worksheet range and stores the raw rows as a
tab-separated file, without deriving any fields. Rows shorter than the header
are padded so the file is rectangular.`,
	Example: `  minelines get --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" --tsv-file lines.tsv`,
	RunE:    runGet,
}

func init() {
	addSheetFlags(getCmd)

	getCmd.Flags().StringVar(&getFile, "tsv-file", time.Now().Format("2006-01-02T150405.tsv"), "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")
}

func runGet(cmd *cobra.Command, args []string) error {
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

	if err := exporter.WriteTSVFile(getFile, records); err != nil {
		slog.Error("write failed", slog.String("file", getFile), slog.String("error", err.Error()))
		return err
	}

	slog.Info("worksheet retrieved", slog.String("file", getFile), slog.Int("rows", len(records)))

	return nil
}

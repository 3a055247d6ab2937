// Package commands implements the minelines CLI.
package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const APP = "minelines"

var debug bool

var rootCmd = &cobra.Command{
	Use:   APP,
	Short: "Builds mining line dashboard data from a production spreadsheet",
	Long: `minelines pulls per-shift production rows for a set of mining lines from a
Google Sheets worksheet (or a local Excel workbook), derives the per-row
economics (average grade, revenue, total cost, profit), groups the rows by
line and writes the data.json document consumed by the dashboard.`,
}

// Execute runs the CLI. Any error has already been logged by the failing
// command; the exit code is all that is left to communicate.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initialise)

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enables debug logging")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(versionCmd)
}

func initialise() {
	// Local runs keep their settings in a .env file; in CI the variables are
	// set directly and the file is simply absent.
	godotenv.Load()

	level := parseLevel(os.Getenv("LOG_LEVEL"))
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With(slog.String("run_id", uuid.NewString()))

	slog.SetDefault(logger)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

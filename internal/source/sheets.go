package source

import (
	"context"
	"fmt"
	"regexp"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/goldrock/minelines/internal/config"
	"github.com/goldrock/minelines/internal/sheet"
)

var spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)

// SpreadsheetID extracts the spreadsheet ID from a docs.google.com URL.
func SpreadsheetID(url string) (string, error) {
	match := spreadsheetURL.FindStringSubmatch(url)
	if len(match) < 2 {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

// Credentials builds the Sheets client credentials, preferring inline
// service account JSON (the usual form in CI) over a credentials file.
func Credentials(ctx context.Context, serviceAccountJSON, credentialsFile string) (option.ClientOption, error) {
	if serviceAccountJSON != "" {
		creds, err := google.CredentialsFromJSON(ctx, []byte(serviceAccountJSON), sheets.SpreadsheetsReadonlyScope)
		if err != nil {
			return nil, fmt.Errorf("invalid service account credentials: %w", err)
		}

		return option.WithCredentials(creds), nil
	}

	if credentialsFile != "" {
		return option.WithCredentialsFile(credentialsFile), nil
	}

	return nil, config.ErrNoCredentials
}

// Sheets reads a rectangular range from a Google Sheets worksheet.
type Sheets struct {
	spreadsheetID string
	readRange     string
	credentials   option.ClientOption
}

func NewSheets(spreadsheetID, readRange string, credentials option.ClientOption) *Sheets {
	return &Sheets{
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		credentials:   credentials,
	}
}

func (s *Sheets) Rows(ctx context.Context) (sheet.Grid, error) {
	service, err := sheets.NewService(ctx, s.credentials)
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets client: %w", err)
	}

	response, err := service.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet: %w", err)
	}

	grid := make(sheet.Grid, 0, len(response.Values))
	for _, row := range response.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%v", cell)
		}

		grid = append(grid, cells)
	}

	return grid, nil
}

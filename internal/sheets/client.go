// Package sheets is the boundary to the Google Sheets read API: a thin
// client over the v4 values endpoint plus the versioned column schemas that
// map raw rows onto domain types.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// RowSet is an ordered grid of raw cell strings: outer rows, inner columns.
// Rows may be ragged; missing trailing cells read as empty.
type RowSet [][]string

// Source supplies raw rows keyed by tab name. Client is the real Sheets
// implementation; tests substitute fakes. "No data" is an empty result, not
// an error.
type Source interface {
	ListTabs(ctx context.Context) ([]string, error)
	FetchRows(ctx context.Context, tab, cellRange string) (RowSet, error)
}

// Client reads a single public spreadsheet through the Sheets REST API.
type Client struct {
	service       *sheetsv4.Service
	spreadsheetID string
}

// NewClient builds a read-only Sheets client authenticated by API key.
func NewClient(ctx context.Context, spreadsheetID, apiKey string) (*Client, error) {
	service, err := sheetsv4.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets service: %w", err)
	}
	return &Client{service: service, spreadsheetID: spreadsheetID}, nil
}

// ListTabs returns every tab title in the spreadsheet.
func (c *Client) ListTabs(ctx context.Context) ([]string, error) {
	spreadsheet, err := c.service.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tabs: %w", err)
	}

	tabs := make([]string, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			tabs = append(tabs, sheet.Properties.Title)
		}
	}
	return tabs, nil
}

// FetchRows reads tab!cellRange and flattens every cell to a string. A
// missing tab or out-of-bounds range comes back as an empty RowSet.
func (c *Client) FetchRows(ctx context.Context, tab, cellRange string) (RowSet, error) {
	readRange := fmt.Sprintf("%s!%s", tab, cellRange)
	values, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, readRange).
		Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == 400 || apiErr.Code == 404) {
			log.Printf("no data for range %s: %v", readRange, err)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch %s: %w", readRange, err)
	}

	rows := make(RowSet, 0, len(values.Values))
	for _, raw := range values.Values {
		row := make([]string, len(raw))
		for i, cellValue := range raw {
			row[i] = fmt.Sprint(cellValue)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// weekTabMarker identifies mileage tabs among all spreadsheet tabs.
const weekTabMarker = "Week"

// WeekTabs filters discovered tab names down to the mileage week tabs, in
// spreadsheet order.
func WeekTabs(tabs []string) []string {
	var weeks []string
	for _, tab := range tabs {
		if strings.Contains(tab, weekTabMarker) {
			weeks = append(weeks, tab)
		}
	}
	return weeks
}

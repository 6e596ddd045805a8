package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Config defines Google Sheets client credentials
type Config struct {
	CredentialsPath string
	CredentialsJSON []byte
}

// Client appends and updates rows in Google Sheets
type Client struct {
	service *sheets.Service
}

// NewClient builds a Sheets client from a credentials file or inline JSON
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption

	switch {
	case cfg.CredentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	case len(cfg.CredentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	default:
		return nil, fmt.Errorf("sheets: credentials path or JSON is required")
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}

	return &Client{service: service}, nil
}

// AppendValues appends rows after the last row of the given range
func (c *Client) AppendValues(ctx context.Context, spreadsheetID, a1Range string, values [][]interface{}) error {
	if c == nil || c.service == nil {
		return fmt.Errorf("sheets: service is nil")
	}

	valueRange := &sheets.ValueRange{Values: values}

	_, err := c.service.Spreadsheets.Values.Append(spreadsheetID, a1Range, valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()

	return err
}

// ClearValues empties the given range
func (c *Client) ClearValues(ctx context.Context, spreadsheetID, a1Range string) error {
	if c == nil || c.service == nil {
		return fmt.Errorf("sheets: service is nil")
	}

	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, a1Range, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	return err
}

package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/talentgraph/jobsbridge/pkg/logging"
)

// SheetsAppender is the subset of the Sheets client the export tool needs
type SheetsAppender interface {
	AppendValues(ctx context.Context, spreadsheetID, a1Range string, values [][]interface{}) error
	ClearValues(ctx context.Context, spreadsheetID, a1Range string) error
}

// JobRow is one job listing row to export, shaped like the Jobs API
// job fields.
type JobRow struct {
	ID          string `json:"id,omitempty" jsonschema:"Job identifier"`
	Title       string `json:"title,omitempty" jsonschema:"Job title text"`
	Location    string `json:"location,omitempty" jsonschema:"Location text"`
	Salary      int    `json:"salary,omitempty" jsonschema:"Annual salary"`
	Description string `json:"description,omitempty" jsonschema:"Job description"`
}

// SheetsExportParams defines the arguments for the sheets_export tool
type SheetsExportParams struct {
	Jobs     []JobRow `json:"jobs" jsonschema:"Job rows to append, typically lifted from a graphql_query result"`
	ClearTab bool     `json:"clear_tab,omitempty" jsonschema:"If true, clears the tab before writing"`
	Sheet    struct {
		SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
		Tab           string `json:"tab,omitempty" jsonschema:"Tab name to append to (default Jobs)"`
	} `json:"sheet" jsonschema:"Destination sheet information"`
}

// SheetsExportResult describes the summary returned after export
type SheetsExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id" jsonschema:"Target spreadsheet ID"`
	Tab           string    `json:"tab" jsonschema:"Target tab name"`
	WrittenRows   int       `json:"written_rows" jsonschema:"How many rows were written"`
	CompletedAt   time.Time `json:"completed_at" jsonschema:"Timestamp when export finished"`
}

type sheetsExportTool struct {
	client SheetsAppender
	logger *logging.Logger
}

// WithSheetsExport registers the sheets_export tool
func WithSheetsExport(client SheetsAppender, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := sheetsExportTool{client: client, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "sheets_export",
			Description: "Append job listings from a query result to a Google Sheet",
		}, handler.handle)
	}
}

func (t sheetsExportTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
	if t.client == nil {
		return nil, nil, fmt.Errorf("sheets_export: Google Sheets client not configured (set GOOGLE_SHEETS_CREDENTIALS_PATH)")
	}

	if params == nil || len(params.Jobs) == 0 {
		return nil, nil, fmt.Errorf("sheets_export: no jobs provided")
	}
	if params.Sheet.SpreadsheetID == "" {
		return nil, nil, fmt.Errorf("sheets_export: spreadsheet_id is required")
	}

	tab := params.Sheet.Tab
	if tab == "" {
		tab = "Jobs"
	}

	if params.ClearTab {
		if err := t.client.ClearValues(ctx, params.Sheet.SpreadsheetID, tab); err != nil {
			if t.logger != nil {
				t.logger.Error("sheets_export clear failed", "err", err, "tab", tab)
			}
			return nil, nil, fmt.Errorf("sheets_export: clear tab: %w", err)
		}
	}

	values := make([][]interface{}, 0, len(params.Jobs))
	for _, job := range params.Jobs {
		values = append(values, []interface{}{
			job.ID, job.Title, job.Location, job.Salary, job.Description,
		})
	}

	if err := t.client.AppendValues(ctx, params.Sheet.SpreadsheetID, tab, values); err != nil {
		if t.logger != nil {
			t.logger.Error("sheets_export failed", "err", err, "spreadsheet_id", params.Sheet.SpreadsheetID)
		}
		return nil, nil, fmt.Errorf("sheets_export: %w", err)
	}

	result := SheetsExportResult{
		SpreadsheetID: params.Sheet.SpreadsheetID,
		Tab:           tab,
		WrittenRows:   len(values),
		CompletedAt:   time.Now().UTC(),
	}

	if t.logger != nil {
		t.logger.Info("sheets_export completed", "rows", result.WrittenRows, "tab", tab)
	}

	return jsonResult(result), result, nil
}

package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/talentgraph/jobsbridge/internal/repository"
	"github.com/talentgraph/jobsbridge/pkg/logging"
)

const defaultHistoryLimit = 10

// RecentQueriesParams defines the arguments for the recent_queries tool
type RecentQueriesParams struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum number of executions to return (default 10)"`
}

// ExecutionView is the response-friendly execution record
type ExecutionView struct {
	ID         string `json:"id"`
	Query      string `json:"query"`
	Status     string `json:"status"`
	Detail     string `json:"detail,omitempty"`
	DurationMS int64  `json:"duration_ms"`
	ExecutedAt string `json:"executed_at"`
}

// RecentQueriesResult lists recent executions newest first
type RecentQueriesResult struct {
	Executions []ExecutionView `json:"executions"`
}

type recentQueriesTool struct {
	repo   repository.ExecutionRepository
	logger *logging.Logger
}

// WithRecentQueries registers the recent_queries tool
func WithRecentQueries(repo repository.ExecutionRepository, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := recentQueriesTool{repo: repo, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "recent_queries",
			Description: "List recently executed GraphQL queries with their outcomes",
		}, handler.handle)
	}
}

func (t recentQueriesTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *RecentQueriesParams) (*sdkmcp.CallToolResult, any, error) {
	if t.repo == nil {
		return nil, nil, fmt.Errorf("recent_queries: history store not configured (set NEO4J_URI, NEO4J_USERNAME, NEO4J_PASSWORD)")
	}

	limit := defaultHistoryLimit
	if params != nil && params.Limit > 0 {
		limit = params.Limit
	}

	executions, err := t.repo.RecentExecutions(ctx, limit)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("recent_queries failed", "err", err)
		}
		return nil, nil, fmt.Errorf("recent_queries: %w", err)
	}

	result := RecentQueriesResult{Executions: make([]ExecutionView, 0, len(executions))}
	for _, exec := range executions {
		result.Executions = append(result.Executions, ExecutionView{
			ID:         exec.ID.String(),
			Query:      exec.Query,
			Status:     string(exec.Status),
			Detail:     exec.Detail,
			DurationMS: exec.DurationMS,
			ExecutedAt: exec.ExecutedAt.Format(time.RFC3339),
		})
	}

	return jsonResult(result), result, nil
}

package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/talentgraph/jobsbridge/internal/domain/query"
	"github.com/talentgraph/jobsbridge/pkg/logging"
)

// GraphQLQueryParams defines the arguments for the graphql_query tool
type GraphQLQueryParams struct {
	Query string `json:"query" jsonschema:"GraphQL query string to run against the Jobs API"`
}

type graphqlQueryTool struct {
	queries query.Service
	logger  *logging.Logger
}

// WithGraphQLQuery registers the graphql_query tool, the direct
// validate-and-execute surface for agents that write their own queries.
func WithGraphQLQuery(queries query.Service, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := graphqlQueryTool{queries: queries, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "graphql_query",
			Description: "Execute a GraphQL query against the Jobs API and return the raw JSON response. The query is validated locally before any network call.",
		}, handler.handle)
	}
}

func (t graphqlQueryTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *GraphQLQueryParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.Query == "" {
		return nil, nil, fmt.Errorf("graphql_query: query is required")
	}

	if t.queries == nil {
		return nil, nil, fmt.Errorf("graphql_query: query service not configured")
	}

	if t.logger != nil {
		t.logger.Info("graphql_query request", "query", params.Query)
	}

	result, err := t.queries.Execute(ctx, params.Query)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("graphql_query failed", "err", err)
		}
		return nil, nil, err
	}

	if t.logger != nil {
		t.logger.Info("graphql_query completed")
	}

	return jsonResult(result), result, nil
}

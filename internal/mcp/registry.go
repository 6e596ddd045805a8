package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/talentgraph/jobsbridge/internal/agent"
	"github.com/talentgraph/jobsbridge/internal/domain/query"
	"github.com/talentgraph/jobsbridge/internal/mcp/tools"
	"github.com/talentgraph/jobsbridge/internal/repository"
	"github.com/talentgraph/jobsbridge/pkg/logging"
	pkgneo4j "github.com/talentgraph/jobsbridge/pkg/neo4j"
)

// Resources holds everything the tools need at runtime. Optional
// integrations are nil when unconfigured; the tools report that per call.
type Resources struct {
	Queries     query.Service
	ExecRepo    repository.ExecutionRepository
	Agent       *agent.Agent
	Sheets      tools.SheetsAppender
	Neo4jClient *pkgneo4j.Client
}

// Close releases held connections
func (r *Resources) Close(ctx context.Context) error {
	if r.Neo4jClient != nil {
		return r.Neo4jClient.Close(ctx)
	}
	return nil
}

// ToolRegistry installs tools into an MCP server
type ToolRegistry struct {
	logger *logging.Logger
}

// NewToolRegistry creates a ToolRegistry
func NewToolRegistry(logger *logging.Logger) *ToolRegistry {
	return &ToolRegistry{logger: logger}
}

// RegisterAll wires every tool against the given resources
func (r *ToolRegistry) RegisterAll(server *sdkmcp.Server, res *Resources) {
	tools.Register(server,
		tools.WithGraphQLQuery(res.Queries, r.logger),
		tools.WithAskJobs(res.Agent, r.logger),
		tools.WithRecentQueries(res.ExecRepo, r.logger),
		tools.WithSheetsExport(res.Sheets, r.logger),
	)
}

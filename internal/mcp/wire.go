//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/talentgraph/jobsbridge/internal/agent"
	"github.com/talentgraph/jobsbridge/internal/config"
	"github.com/talentgraph/jobsbridge/internal/domain/query"
	"github.com/talentgraph/jobsbridge/internal/llm"
	"github.com/talentgraph/jobsbridge/internal/mcp/tools"
	"github.com/talentgraph/jobsbridge/internal/repository"
	storage "github.com/talentgraph/jobsbridge/internal/storage/neo4j"
	"github.com/talentgraph/jobsbridge/pkg/graphql"
	"github.com/talentgraph/jobsbridge/pkg/logging"
	pkgneo4j "github.com/talentgraph/jobsbridge/pkg/neo4j"
	"github.com/talentgraph/jobsbridge/pkg/sheets"
)

// InitializeResources creates Resources with every integration wired up.
// BuildResources remains the manual path that degrades when optional
// integrations are not configured.
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Infrastructure - Neo4j
		provideNeo4jConfig,
		pkgneo4j.NewClient,

		// Infrastructure - GraphQL endpoint
		provideGraphQLClient,

		// Infrastructure - Google Sheets
		provideSheetsConfig,
		sheets.NewClient,
		wire.Bind(new(tools.SheetsAppender), new(*sheets.Client)),

		// Repositories
		storage.NewExecutionRepository,
		wire.Bind(new(repository.ExecutionRepository), new(*storage.ExecutionRepository)),

		// Services
		provideQueryService,

		// Agent
		provideAzureConfig,
		llm.NewAzureClient,
		wire.Bind(new(llm.ChatModel), new(*llm.AzureClient)),
		provideAgent,

		newResources,
	)

	return &Resources{}, nil
}

// provideNeo4jConfig extracts Neo4j config from main config
func provideNeo4jConfig(cfg config.Config) pkgneo4j.Config {
	return pkgneo4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	}
}

// provideGraphQLClient creates the Jobs API client
func provideGraphQLClient(cfg config.Config, logger *logging.Logger) (*graphql.Client, error) {
	return graphql.NewClient(graphql.Config{
		Endpoint: cfg.GraphQLAPIURL,
		Logger:   logger.With("component", "graphql"),
	})
}

// provideSheetsConfig extracts Sheets credentials from main config
func provideSheetsConfig(cfg config.Config) sheets.Config {
	return sheets.Config{CredentialsPath: cfg.SheetsCredentialsPath}
}

// provideQueryService builds the validating query service
func provideQueryService(client *graphql.Client, repo repository.ExecutionRepository, logger *logging.Logger) (query.Service, error) {
	return query.NewService(
		query.WithExecutor(client),
		query.WithRepository(repo),
		query.WithLogger(logger.With("component", "query")),
	)
}

// provideAzureConfig extracts Azure OpenAI config from main config
func provideAzureConfig(cfg config.Config) llm.AzureConfig {
	return llm.AzureConfig{
		Endpoint:   cfg.OpenAI.Endpoint,
		APIVersion: cfg.OpenAI.APIVersion,
		Credential: cfg.OpenAI.Credential,
		Deployment: cfg.OpenAI.Deployment,
	}
}

// provideAgent builds the natural-language agent
func provideAgent(model llm.ChatModel, queries query.Service, logger *logging.Logger) (*agent.Agent, error) {
	return agent.New(model, queries, logger.With("component", "agent"))
}

// newResources creates the Resources struct
func newResources(
	queries query.Service,
	execRepo repository.ExecutionRepository,
	a *agent.Agent,
	sheetsClient tools.SheetsAppender,
	neo4jClient *pkgneo4j.Client,
) *Resources {
	return &Resources{
		Queries:     queries,
		ExecRepo:    execRepo,
		Agent:       a,
		Sheets:      sheetsClient,
		Neo4jClient: neo4jClient,
	}
}

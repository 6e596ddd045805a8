package mcp

import (
	"context"

	"github.com/talentgraph/jobsbridge/internal/agent"
	"github.com/talentgraph/jobsbridge/internal/config"
	"github.com/talentgraph/jobsbridge/internal/domain/query"
	"github.com/talentgraph/jobsbridge/internal/llm"
	storage "github.com/talentgraph/jobsbridge/internal/storage/neo4j"
	"github.com/talentgraph/jobsbridge/pkg/graphql"
	"github.com/talentgraph/jobsbridge/pkg/logging"
	pkgneo4j "github.com/talentgraph/jobsbridge/pkg/neo4j"
	"github.com/talentgraph/jobsbridge/pkg/sheets"
)

// BuildResources wires the resource graph by hand, degrading gracefully:
// the GraphQL client and query service are mandatory, everything else is
// enabled only when its configuration is present.
func BuildResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	res := &Resources{}

	gqlClient, err := graphql.NewClient(graphql.Config{
		Endpoint: cfg.GraphQLAPIURL,
		Logger:   logger.With("component", "graphql"),
	})
	if err != nil {
		return nil, err
	}

	opts := []query.Option{
		query.WithExecutor(gqlClient),
		query.WithLogger(logger.With("component", "query")),
	}

	if cfg.HistoryConfigured() {
		n4jClient, err := pkgneo4j.NewClient(pkgneo4j.Config{
			URI:      cfg.Neo4j.URI,
			Username: cfg.Neo4j.Username,
			Password: cfg.Neo4j.Password,
		})
		if err != nil {
			logger.Warn("failed to initialize Neo4j, history disabled", "err", err)
		} else {
			res.Neo4jClient = n4jClient
			res.ExecRepo = storage.NewExecutionRepository(n4jClient)
			opts = append(opts, query.WithRepository(res.ExecRepo))
			logger.Info("Neo4j history store initialized", "uri", cfg.Neo4j.URI)
		}
	}

	res.Queries, err = query.NewService(opts...)
	if err != nil {
		return nil, err
	}

	if cfg.AgentConfigured() {
		model, err := llm.NewAzureClient(llm.AzureConfig{
			Endpoint:   cfg.OpenAI.Endpoint,
			APIVersion: cfg.OpenAI.APIVersion,
			Credential: cfg.OpenAI.Credential,
			Deployment: cfg.OpenAI.Deployment,
		})
		if err != nil {
			logger.Warn("failed to initialize LLM client, ask_jobs disabled", "err", err)
		} else {
			res.Agent, err = agent.New(model, res.Queries, logger.With("component", "agent"))
			if err != nil {
				logger.Warn("failed to initialize agent, ask_jobs disabled", "err", err)
			} else {
				logger.Info("LLM agent initialized", "deployment", cfg.OpenAI.Deployment)
			}
		}
	}

	if cfg.SheetsCredentialsPath != "" {
		sheetsClient, err := sheets.NewClient(ctx, sheets.Config{
			CredentialsPath: cfg.SheetsCredentialsPath,
		})
		if err != nil {
			logger.Warn("failed to initialize Sheets client, sheets_export disabled", "err", err)
		} else {
			res.Sheets = sheetsClient
			logger.Info("Google Sheets client initialized")
		}
	}

	return res, nil
}

package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/talentgraph/jobsbridge/internal/agent"
	"github.com/talentgraph/jobsbridge/pkg/logging"
)

// AskJobsParams defines the arguments for the ask_jobs tool
type AskJobsParams struct {
	Question string `json:"question" jsonschema:"Natural language question about job listings"`
}

// AskJobsResult wraps the agent's answer
type AskJobsResult struct {
	Answer string `json:"answer" jsonschema:"Human-readable answer derived from the Jobs API"`
}

type askJobsTool struct {
	agent  *agent.Agent
	logger *logging.Logger
}

// WithAskJobs registers the ask_jobs tool. A nil agent keeps the tool
// registered but returns a configuration error on every call so clients
// get a clear message instead of an unknown-tool failure.
func WithAskJobs(a *agent.Agent, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := askJobsTool{agent: a, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "ask_jobs",
			Description: "Answer a natural language question about job listings by generating and executing a GraphQL query",
		}, handler.handle)
	}
}

func (t askJobsTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *AskJobsParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.Question == "" {
		return nil, nil, fmt.Errorf("ask_jobs: question is required")
	}

	if t.agent == nil {
		return nil, nil, fmt.Errorf("ask_jobs: LLM agent not configured (set OPENAI_API_ENDPOINT, OPENAI_API_CREDENTIAL, OPENAI_DEPLOYMENT)")
	}

	if t.logger != nil {
		t.logger.Info("ask_jobs request", "question", params.Question)
	}

	answer, err := t.agent.Answer(ctx, params.Question)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("ask_jobs failed", "err", err)
		}
		return nil, nil, err
	}

	result := AskJobsResult{Answer: answer}
	return textResult(answer), result, nil
}

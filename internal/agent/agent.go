// Package agent runs the natural-language pipeline: question in, GraphQL
// query generated, validated and executed, answer out. One regeneration
// pass is allowed when the local validation gate rejects the model's query;
// transport and decoding failures are never retried here.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/talentgraph/jobsbridge/internal/domain/query"
	"github.com/talentgraph/jobsbridge/internal/llm"
	"github.com/talentgraph/jobsbridge/pkg/graphql"
	"github.com/talentgraph/jobsbridge/pkg/logging"
)

// Agent answers job questions through the Jobs GraphQL API
type Agent struct {
	model   llm.ChatModel
	queries query.Service
	logger  *logging.Logger
}

// New constructs an Agent
func New(model llm.ChatModel, queries query.Service, logger *logging.Logger) (*Agent, error) {
	if model == nil {
		return nil, fmt.Errorf("agent: chat model is required")
	}
	if queries == nil {
		return nil, fmt.Errorf("agent: query service is required")
	}
	if logger == nil {
		logger = logging.Nop()
	}

	return &Agent{
		model:   model,
		queries: queries,
		logger:  logger,
	}, nil
}

// Answer resolves a natural-language question into a human-readable reply
func (a *Agent) Answer(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("agent: question is empty")
	}

	generated, err := a.model.Complete(ctx, generateSystemPrompt, question)
	if err != nil {
		return "", fmt.Errorf("agent: generate query: %w", err)
	}

	gqlQuery := stripFences(generated)
	a.logger.Debug("agent generated query", "query", gqlQuery)

	result, err := a.queries.Execute(ctx, gqlQuery)

	var verr *graphql.ValidationError
	if errors.As(err, &verr) {
		// One correction round; the reason tells the model what to fix.
		a.logger.Info("regenerating rejected query", "reason", verr.Reason)

		regenerated, rerr := a.model.Complete(ctx, generateSystemPrompt,
			fmt.Sprintf(regenerateUserPrompt, question, gqlQuery, verr.Error()))
		if rerr != nil {
			return "", fmt.Errorf("agent: regenerate query: %w", rerr)
		}

		gqlQuery = stripFences(regenerated)
		result, err = a.queries.Execute(ctx, gqlQuery)
	}

	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("agent: encode result: %w", err)
	}

	answer, err := a.model.Complete(ctx, summarizeSystemPrompt,
		fmt.Sprintf(summarizeUserPrompt, question, payload))
	if err != nil {
		return "", fmt.Errorf("agent: summarize result: %w", err)
	}

	return strings.TrimSpace(answer), nil
}

// stripFences removes markdown code fences models tend to wrap queries in
func stripFences(s string) string {
	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop the language tag line, e.g. ```graphql
		if lang := strings.TrimSpace(s[:idx]); lang == "" || isLangTag(lang) {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}

func isLangTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxErrorBodyBytes = 4096

// NewClient instantiates a GraphQL API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("graphql: endpoint is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		httpClient: httpClient,
		logger:     cfg.Logger,
	}, nil
}

// Execute POSTs the query to the configured endpoint and returns the decoded
// JSON body verbatim. The query is sent exactly as given; run Validate first
// if it came from an untrusted generator. One shot — no retries, no caching.
func (c *Client) Execute(ctx context.Context, query string) (Result, error) {
	if c == nil {
		return nil, fmt.Errorf("graphql: client is nil")
	}

	if c.logger != nil {
		c.logger.Info("executing GraphQL query", "query", query)
	}

	body, err := json.Marshal(queryRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("graphql: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("graphql: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("GraphQL request failed", "err", err)
		}
		return nil, &TransportError{cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		terr := &TransportError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(snippet)),
		}
		if c.logger != nil {
			c.logger.Error("GraphQL API error", "status", resp.StatusCode, "body", terr.Body)
		}
		return nil, terr
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if c.logger != nil {
			c.logger.Error("GraphQL response is not valid JSON", "err", err)
		}
		return nil, &MalformedResponseError{cause: err}
	}

	if c.logger != nil {
		c.logger.Info("GraphQL response received", "response", result)
	}

	return result, nil
}

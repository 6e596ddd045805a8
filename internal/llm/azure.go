package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// AzureConfig defines Azure OpenAI connection settings
type AzureConfig struct {
	Endpoint   string // https://<resource>.openai.azure.com
	APIVersion string
	Credential string
	Deployment string
	HTTPClient *http.Client
}

// AzureClient implements ChatModel against the Azure OpenAI chat
// completions API. Temperature is pinned to 0 so query generation is as
// deterministic as the provider allows.
type AzureClient struct {
	endpoint   string
	apiVersion string
	credential string
	deployment string
	httpClient *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewAzureClient creates an AzureClient with a 60s default timeout
func NewAzureClient(cfg AzureConfig) (*AzureClient, error) {
	if cfg.Endpoint == "" || cfg.Credential == "" || cfg.Deployment == "" {
		return nil, fmt.Errorf("llm: endpoint, credential, and deployment are required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = "2024-02-01"
	}

	return &AzureClient{
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		apiVersion: apiVersion,
		credential: cfg.Credential,
		deployment: cfg.Deployment,
		httpClient: httpClient,
	}, nil
}

// Complete performs a non-streaming chat completion
func (c *AzureClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("llm: encode request: %w", err)
	}

	u := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, url.PathEscape(c.deployment), url.QueryEscape(c.apiVersion))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.credential)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("llm: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("llm: decode response: %w", err)
	}

	if completion.Error != nil {
		return "", fmt.Errorf("llm: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("llm: response contained no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

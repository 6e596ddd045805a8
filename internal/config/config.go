package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for the bridge server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080

	// GraphQLAPIURL is the Jobs API endpoint. Read once at startup; the
	// executor never re-reads the environment.
	GraphQLAPIURL string

	OpenAI struct {
		Endpoint   string
		APIVersion string
		Credential string
		Deployment string
	} // Azure OpenAI settings for the agent; optional

	Neo4j struct {
		URI      string
		Username string
		Password string
	} // execution history store; optional

	SheetsCredentialsPath string // Google Sheets export; optional
}

// AgentConfigured reports whether the LLM agent can be enabled
func (c Config) AgentConfigured() bool {
	return c.OpenAI.Endpoint != "" && c.OpenAI.Credential != "" && c.OpenAI.Deployment != ""
}

// HistoryConfigured reports whether the Neo4j history store can be enabled
func (c Config) HistoryConfigured() bool {
	return c.Neo4j.URI != "" && c.Neo4j.Username != "" && c.Neo4j.Password != ""
}

// Load populates config from the environment. A .env file in the working
// directory is merged in first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "8080",
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.GraphQLAPIURL = os.Getenv("GRAPHQL_API_URL")
	if cfg.GraphQLAPIURL == "" {
		return cfg, fmt.Errorf("missing required environment variable: GRAPHQL_API_URL")
	}

	cfg.OpenAI.Endpoint = os.Getenv("OPENAI_API_ENDPOINT")
	cfg.OpenAI.Credential = os.Getenv("OPENAI_API_CREDENTIAL")
	cfg.OpenAI.Deployment = os.Getenv("OPENAI_DEPLOYMENT")
	if v := os.Getenv("OPENAI_API_VERSION"); v != "" {
		cfg.OpenAI.APIVersion = v
	} else {
		cfg.OpenAI.APIVersion = "2024-02-01"
	}

	cfg.Neo4j.URI = os.Getenv("NEO4J_URI")
	cfg.Neo4j.Username = os.Getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")

	cfg.SheetsCredentialsPath = os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")

	return cfg, nil
}

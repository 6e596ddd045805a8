package config

import "testing"

func TestLoadRequiresGraphQLAPIURL(t *testing.T) {
	t.Setenv("GRAPHQL_API_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when GRAPHQL_API_URL is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GRAPHQL_API_URL", "http://localhost:4000/graphql")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("MCP_HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_API_VERSION", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "info" || cfg.Host != "0.0.0.0" || cfg.Port != "8080" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.OpenAI.APIVersion != "2024-02-01" {
		t.Errorf("OpenAI.APIVersion = %q", cfg.OpenAI.APIVersion)
	}
	if cfg.AgentConfigured() {
		t.Error("agent should not be configured without credentials")
	}
	if cfg.HistoryConfigured() {
		t.Error("history should not be configured without Neo4j settings")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GRAPHQL_API_URL", "http://jobs.internal/graphql")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_API_ENDPOINT", "https://example.openai.azure.com")
	t.Setenv("OPENAI_API_CREDENTIAL", "secret")
	t.Setenv("OPENAI_DEPLOYMENT", "gpt-4o")
	t.Setenv("NEO4J_URI", "bolt://localhost:7687")
	t.Setenv("NEO4J_USERNAME", "neo4j")
	t.Setenv("NEO4J_PASSWORD", "pass")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.GraphQLAPIURL != "http://jobs.internal/graphql" {
		t.Errorf("GraphQLAPIURL = %q", cfg.GraphQLAPIURL)
	}
	if cfg.LogLevel != "debug" || cfg.Port != "9090" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if !cfg.AgentConfigured() {
		t.Error("agent should be configured")
	}
	if !cfg.HistoryConfigured() {
		t.Error("history should be configured")
	}
}

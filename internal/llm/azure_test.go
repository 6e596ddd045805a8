package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCompleteSendsMessagesAndReturnsContent(t *testing.T) {
	var gotPath string
	var gotReq chatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Header.Get("api-key") != "secret" {
			t.Errorf("api-key header = %q", r.Header.Get("api-key"))
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "{ jobs { title } }"}},
			},
		})
	}))
	defer srv.Close()

	client, err := NewAzureClient(AzureConfig{
		Endpoint:   srv.URL,
		Credential: "secret",
		Deployment: "gpt-4o",
	})
	if err != nil {
		t.Fatalf("NewAzureClient: %v", err)
	}

	out, err := client.Complete(context.Background(), "system text", "user text")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if out != "{ jobs { title } }" {
		t.Errorf("content = %q", out)
	}
	if !strings.Contains(gotPath, "/openai/deployments/gpt-4o/chat/completions") {
		t.Errorf("path = %q", gotPath)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
	if gotReq.Temperature != 0 {
		t.Errorf("temperature = %v, want 0", gotReq.Temperature)
	}
}

func TestCompleteSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewAzureClient(AzureConfig{Endpoint: srv.URL, Credential: "k", Deployment: "d"})
	if err != nil {
		t.Fatalf("NewAzureClient: %v", err)
	}

	if _, err := client.Complete(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestCompleteRejectsEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client, err := NewAzureClient(AzureConfig{Endpoint: srv.URL, Credential: "k", Deployment: "d"})
	if err != nil {
		t.Fatalf("NewAzureClient: %v", err)
	}

	if _, err := client.Complete(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestNewAzureClientRequiresSettings(t *testing.T) {
	if _, err := NewAzureClient(AzureConfig{}); err == nil {
		t.Fatal("expected error for missing settings")
	}
}

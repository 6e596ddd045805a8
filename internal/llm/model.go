// Package llm abstracts the chat model behind a minimal interface so the
// agent never depends on a concrete provider.
package llm

import "context"

// ChatModel is the single capability the agent needs from a provider.
type ChatModel interface {
	// Complete sends one system+user exchange and returns the assistant text.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

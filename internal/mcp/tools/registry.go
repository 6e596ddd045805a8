// Package tools holds the MCP tools exposed by the bridge. Each tool is a
// WithX option carrying its own dependencies, so callers register exactly
// the set their resources support.
package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Option installs one tool into an MCP server
type Option func(*registry)

type registry struct {
	server *sdkmcp.Server
}

// Register applies the given tool options to the server; nil options are
// skipped so conditional wiring stays simple at the call site.
func Register(server *sdkmcp.Server, opts ...Option) {
	reg := &registry{server: server}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(reg)
	}
}

package tools

import (
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// jsonResult renders v as JSON text for clients that only read content
func jsonResult(v any) *sdkmcp.CallToolResult {
	raw, err := json.Marshal(v)
	if err != nil {
		return textResult("{}")
	}
	return textResult(string(raw))
}

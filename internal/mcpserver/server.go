// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes respgen capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/valkum/respgen"
)

const serverInstructions = `respgen MCP server — inspects command-set documents and generates typed Go argument declarations plus RESP serialization code from them.

Tools:
- inspect — parse a command-set document and return a structural summary (commands, argument counts, warnings)
- generate — generate Go source (types.go, commands.go) into an output directory

Inputs accept a file path to a commands.json-style document in JSON or YAML.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "respgen", Version: respgen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Parse a command-set document and return a structural summary: command count, argument counts per command, and decode warnings. Use before generate to sanity-check a document.",
	}, handleInspect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate typed Go declarations and RESP serialization code from a command-set document. Writes types.go and commands.go to the output directory and returns generation statistics.",
	}, handleGenerate)
}

// pathPattern matches absolute file paths in error messages so they can be
// redacted before leaving the process boundary.
var pathPattern = regexp.MustCompile(`(/[^\s:]+)+`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

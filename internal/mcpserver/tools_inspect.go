package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/valkum/respgen/cmdspec"
)

type inspectInput struct {
	Path string `json:"path" jsonschema:"File path of the command-set document (JSON or YAML)"`
}

type commandInfo struct {
	Name      string `json:"name"`
	Summary   string `json:"summary,omitempty"`
	Since     string `json:"since,omitempty"`
	Arguments int    `json:"arguments"`
}

type inspectOutput struct {
	SourceFormat  string        `json:"source_format"`
	CommandCount  int           `json:"command_count"`
	ArgumentCount int           `json:"argument_count"`
	Commands      []commandInfo `json:"commands"`
	Warnings      []string      `json:"warnings,omitempty"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	if input.Path == "" {
		return errResult(fmt.Errorf("path is required")), inspectOutput{}, nil
	}

	set, err := cmdspec.ParseWithOptions(cmdspec.WithFilePath(input.Path))
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	output := inspectOutput{
		SourceFormat:  string(set.SourceFormat),
		CommandCount:  len(set.Commands),
		ArgumentCount: set.ArgumentCount(),
		Warnings:      set.Warnings,
	}
	output.Commands = makeSlice[commandInfo](len(set.Commands))
	for _, cmd := range set.Commands {
		output.Commands = append(output.Commands, commandInfo{
			Name:      cmd.Name,
			Summary:   cmd.Summary,
			Since:     cmd.Since,
			Arguments: len(cmd.Arguments),
		})
	}

	return nil, output, nil
}

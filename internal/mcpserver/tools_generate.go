package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/valkum/respgen/generator"
)

type generateInput struct {
	Path        string `json:"path"                    jsonschema:"File path of the command-set document (JSON or YAML)"`
	PackageName string `json:"package_name,omitempty"  jsonschema:"Go package name for generated code (default: rescmd)"`
	Types       bool   `json:"types,omitempty"         jsonschema:"Generate argument type declarations (default: true unless commands is set)"`
	Commands    bool   `json:"commands,omitempty"      jsonschema:"Generate command builder functions (default: true unless types is set)"`
	Strict      bool   `json:"strict,omitempty"        jsonschema:"Fail on any generation issue, even warnings"`
	OutputDir   string `json:"output_dir"              jsonschema:"Directory to write generated files to"`
}

type generatedFileInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type generateOutput struct {
	Success           bool                `json:"success"`
	OutputDir         string              `json:"output_dir"`
	PackageName       string              `json:"package_name"`
	FileCount         int                 `json:"file_count"`
	Files             []generatedFileInfo `json:"files"`
	Commands          int                 `json:"commands"`
	GeneratedTypes    int                 `json:"generated_types"`
	DedupedTypes      int                 `json:"deduped_types"`
	GeneratedCommands int                 `json:"generated_commands"`
	WarningCount      int                 `json:"warning_count"`
	CriticalCount     int                 `json:"critical_count"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.Path == "" {
		return errResult(fmt.Errorf("path is required")), generateOutput{}, nil
	}
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateOutput{}, nil
	}

	opts := []generator.Option{
		generator.WithFilePath(input.Path),
	}
	if input.PackageName != "" {
		opts = append(opts, generator.WithPackageName(input.PackageName))
	}
	// When only one of types/commands is requested, disable the other.
	if input.Types && !input.Commands {
		opts = append(opts, generator.WithCommands(false))
	}
	if input.Commands && !input.Types {
		opts = append(opts, generator.WithTypes(false))
	}
	if input.Strict {
		opts = append(opts, generator.WithStrictMode(true))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if err := result.WriteFiles(input.OutputDir); err != nil {
		return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
	}

	output := generateOutput{
		Success:           result.Success,
		OutputDir:         input.OutputDir,
		PackageName:       result.PackageName,
		FileCount:         len(result.Files),
		Commands:          result.Commands,
		GeneratedTypes:    result.GeneratedTypes,
		DedupedTypes:      result.DedupedTypes,
		GeneratedCommands: result.GeneratedCommands,
		WarningCount:      result.WarningCount,
		CriticalCount:     result.CriticalCount,
	}

	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, generatedFileInfo{
			Name: f.Name,
			Size: len(f.Content),
		})
	}

	return nil, output, nil
}

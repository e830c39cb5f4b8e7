package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/valkum/respgen"
	"github.com/valkum/respgen/cmdspec"
	"github.com/valkum/respgen/generator"
	"github.com/valkum/respgen/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("respgen v%s\n", respgen.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := handleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "inspect":
		if err := handleInspect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// generateFlags contains flags for the generate command
type generateFlags struct {
	packageName string
	outputDir   string
	typesOnly   bool
	strict      bool
	verbose     bool
}

func setupGenerateFlags() (*flag.FlagSet, *generateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &generateFlags{}

	fs.StringVar(&flags.packageName, "package", "rescmd", "Go package name for generated code")
	fs.StringVar(&flags.outputDir, "output", ".", "output directory for generated files")
	fs.BoolVar(&flags.typesOnly, "types-only", false, "generate argument types without command builders")
	fs.BoolVar(&flags.strict, "strict", false, "fail on any generation issue, even warnings")
	fs.BoolVar(&flags.verbose, "verbose", false, "enable debug logging to stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: respgen generate [flags] <commands-file>\n\n")
		_, _ = fmt.Fprintf(output, "Generate typed Go declarations and RESP serialization code\nfrom a command-set document.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

func handleGenerate(args []string) error {
	fs, flags := setupGenerateFlags()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate requires exactly one command-set file")
	}

	opts := []generator.Option{
		generator.WithFilePath(fs.Arg(0)),
		generator.WithPackageName(flags.packageName),
	}
	if flags.typesOnly {
		opts = append(opts, generator.WithCommands(false))
	}
	if flags.strict {
		opts = append(opts, generator.WithStrictMode(true))
	}
	if flags.verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, generator.WithLogger(cmdspec.NewSlogAdapter(slog.New(handler))))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		if result != nil {
			printIssues(result)
		}
		return err
	}

	if err := result.WriteFiles(flags.outputDir); err != nil {
		return err
	}

	printIssues(result)
	fmt.Printf("Generated %d files in %s (%d commands, %d types, %d duplicates folded)\n",
		len(result.Files), flags.outputDir, result.Commands, result.GeneratedTypes, result.DedupedTypes)
	return nil
}

func printIssues(result *generator.GenerateResult) {
	for _, issue := range result.Issues {
		fmt.Fprintln(os.Stderr, issue.String())
	}
}

// inspectFlags contains flags for the inspect command
type inspectFlags struct {
	asJSON bool
}

func setupInspectFlags() (*flag.FlagSet, *inspectFlags) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	flags := &inspectFlags{}

	fs.BoolVar(&flags.asJSON, "json", false, "print the summary as JSON")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: respgen inspect [flags] <commands-file>\n\n")
		_, _ = fmt.Fprintf(output, "Parse a command-set document and print a structural summary.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

func handleInspect(args []string) error {
	fs, flags := setupInspectFlags()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect requires exactly one command-set file")
	}

	set, err := cmdspec.ParseWithOptions(cmdspec.WithFilePath(fs.Arg(0)))
	if err != nil {
		return err
	}

	if flags.asJSON {
		type summary struct {
			SourcePath    string   `json:"source_path"`
			SourceFormat  string   `json:"source_format"`
			CommandCount  int      `json:"command_count"`
			ArgumentCount int      `json:"argument_count"`
			Warnings      []string `json:"warnings,omitempty"`
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary{
			SourcePath:    set.SourcePath,
			SourceFormat:  string(set.SourceFormat),
			CommandCount:  len(set.Commands),
			ArgumentCount: set.ArgumentCount(),
			Warnings:      set.Warnings,
		})
	}

	fmt.Printf("Source:    %s (%s)\n", set.SourcePath, set.SourceFormat)
	fmt.Printf("Commands:  %d\n", len(set.Commands))
	fmt.Printf("Arguments: %d\n", set.ArgumentCount())
	for _, cmd := range set.Commands {
		fmt.Printf("  %-24s %d argument(s)\n", cmd.Name, len(cmd.Arguments))
	}
	for _, warning := range set.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	return nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	fmt.Println(`respgen - typed command code generator for RESP-style protocols

Usage:
  respgen <command> [flags] [arguments]

Commands:
  generate    Generate Go types and command builders from a command-set file
  inspect     Print a structural summary of a command-set file
  mcp         Run the MCP server over stdio
  version     Print version information
  help        Show this help message

Examples:
  respgen generate -package rescmd -output ./rescmd commands.json
  respgen inspect -json commands.json
  respgen mcp`)
}

package generator

import (
	"fmt"
	"time"

	"github.com/valkum/respgen/cmdspec"
	"github.com/valkum/respgen/internal/codewriter"
	"github.com/valkum/respgen/internal/issues"
	"github.com/valkum/respgen/internal/severity"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates features that may not generate perfectly
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates validation errors
	SeverityError = severity.SeverityError
	// SeverityCritical indicates features that cannot be generated
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "types.go", "commands.go")
	Name string
	// Content is the generated Go source code
	Content []byte
}

// GenerateResult contains the results of generating code from a command set
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// SourceFormat is the format of the source document (JSON or YAML)
	SourceFormat cmdspec.SourceFormat
	// PackageName is the Go package name used in generation
	PackageName string
	// Issues contains all generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without critical issues
	Success bool
	// LoadTime is the time taken to load and parse the source document
	LoadTime time.Duration
	// GenerateTime is the time taken to generate code
	GenerateTime time.Duration
	// Commands is the number of commands processed
	Commands int
	// GeneratedTypes is the count of distinct argument types generated
	// after deduplication
	GeneratedTypes int
	// DedupedTypes is the count of synthesized descriptors discarded as
	// structural duplicates
	DedupedTypes int
	// GeneratedCommands is the count of command builder functions generated
	GeneratedCommands int
	// Registry is the populated type registry, enabling further passes
	// that need to resolve the deduplicated types
	Registry *Registry
}

// HasCriticalIssues returns true if there are any critical issues
func (r *GenerateResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator handles code generation from command-set documents
type Generator struct {
	// PackageName is the Go package name for generated code
	// If empty, defaults to "rescmd"
	PackageName string

	// GenerateTypes enables argument type generation.
	// Default: true
	GenerateTypes bool

	// GenerateCommands enables command builder function generation.
	// Default: true
	GenerateCommands bool

	// StrictMode causes generation to fail on any issues (even warnings)
	StrictMode bool

	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool

	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger cmdspec.Logger
}

// New creates a new Generator with default settings
func New() *Generator {
	return &Generator{
		PackageName:      "rescmd",
		GenerateTypes:    true,
		GenerateCommands: true,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (g *Generator) log() cmdspec.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return cmdspec.NopLogger{}
}

// Generate runs the full pipeline against a parsed command set.
//
// The pipeline order is fixed: every command is flattened and its
// descriptors registered before the namespace tree is built and anything is
// emitted. Reference resolution requires a complete registry; interleaving
// emission with registration would produce inconsistent namespace
// references.
func (g *Generator) Generate(set *cmdspec.CommandSet) (*GenerateResult, error) {
	if set == nil {
		return nil, fmt.Errorf("generator: command set cannot be nil")
	}
	packageName := g.PackageName
	if packageName == "" {
		packageName = "rescmd"
	}

	start := time.Now()
	result := &GenerateResult{
		SourceFormat: set.SourceFormat,
		PackageName:  packageName,
		Commands:     len(set.Commands),
	}

	// Phase one: flatten and register everything.
	reg := NewRegistry()
	fl := newFlattener(g.log())
	deduped := 0
	for _, cmd := range set.Commands {
		for _, tok := range fl.flattenCommand(cmd) {
			if _, registered := reg.Insert(tok); !registered {
				deduped++
			}
		}
	}
	result.Issues = append(result.Issues, fl.issues...)
	result.Registry = reg
	result.GeneratedTypes = reg.Len()
	result.DedupedTypes = deduped

	g.log().Debug("registered argument types",
		"commands", len(set.Commands),
		"types", reg.Len(),
		"deduplicated", deduped)

	// Phase two: group, resolve, and emit.
	tree := buildNamespaceTree(reg)

	if g.GenerateTypes {
		var w codewriter.Writer
		newEmitter(reg, &w).emitTree(tree)
		content, err := renderFile("types.go", packageName, set.SourcePath, w.Bytes())
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, GeneratedFile{Name: "types.go", Content: content})
	}

	if g.GenerateCommands {
		var w codewriter.Writer
		b := newBuilderEmitter(reg, &w)
		for _, cmd := range set.Commands {
			b.emitCommand(cmd)
		}
		result.Issues = append(result.Issues, b.issues...)
		result.GeneratedCommands = b.generated
		content, err := renderFile("commands.go", packageName, set.SourcePath, w.Bytes())
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, GeneratedFile{Name: "commands.go", Content: content})
	}

	if g.IncludeInfo {
		result.Issues = append(result.Issues, GenerateIssue{
			Message:  fmt.Sprintf("generated %d types (%d duplicates folded) for %d commands", reg.Len(), deduped, len(set.Commands)),
			Severity: SeverityInfo,
		})
	}

	info, warnings, _, critical := issues.CountBySeverity(result.Issues)
	result.InfoCount = info
	result.WarningCount = warnings
	result.CriticalCount = critical
	result.Success = critical == 0
	result.GenerateTime = time.Since(start)

	if g.StrictMode && (warnings > 0 || critical > 0) {
		return result, fmt.Errorf("generator: strict mode: %d issues reported", warnings+critical)
	}
	if critical > 0 {
		return result, fmt.Errorf("generator: %d critical issues reported", critical)
	}
	return result, nil
}

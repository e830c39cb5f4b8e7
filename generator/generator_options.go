package generator

import (
	"fmt"
	"io"
	"time"

	"github.com/valkum/respgen/cmdspec"
	"github.com/valkum/respgen/internal/options"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte
	parsed   *cmdspec.CommandSet

	// Configuration options
	packageName      string
	generateTypes    bool
	generateCommands bool
	strictMode       bool
	includeInfo      bool
	logger           cmdspec.Logger
}

// GenerateWithOptions generates code from a command-set document using
// functional options.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("commands.json"),
//	    generator.WithPackageName("rescmd"),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	loadStart := time.Now()
	var set *cmdspec.CommandSet
	switch {
	case cfg.parsed != nil:
		set = cfg.parsed
	case cfg.filePath != nil:
		set, err = cmdspec.ParseWithOptions(
			cmdspec.WithFilePath(*cfg.filePath),
			cmdspec.WithLogger(cfg.logger),
		)
	case cfg.reader != nil:
		set, err = cmdspec.ParseWithOptions(
			cmdspec.WithReader(cfg.reader),
			cmdspec.WithLogger(cfg.logger),
		)
	case cfg.bytes != nil:
		set, err = cmdspec.ParseWithOptions(
			cmdspec.WithBytes(cfg.bytes),
			cmdspec.WithLogger(cfg.logger),
		)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("generator: no input source specified")
	}
	if err != nil {
		return nil, fmt.Errorf("generator: failed to load command set: %w", err)
	}
	loadTime := time.Since(loadStart)

	g := &Generator{
		PackageName:      cfg.packageName,
		GenerateTypes:    cfg.generateTypes,
		GenerateCommands: cfg.generateCommands,
		StrictMode:       cfg.strictMode,
		IncludeInfo:      cfg.includeInfo,
		Logger:           cfg.logger,
	}

	result, genErr := g.Generate(set)
	if result != nil {
		result.LoadTime = loadTime
	}
	return result, genErr
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		packageName:      "rescmd",
		generateTypes:    true,
		generateCommands: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"generator: must specify an input source (use WithFilePath, WithReader, WithBytes, or WithParsed)",
		"generator: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *generateConfig) error {
		if r == nil {
			return fmt.Errorf("reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *generateConfig) error {
		if data == nil {
			return fmt.Errorf("bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithParsed specifies an already-parsed command set as the input source
func WithParsed(set cmdspec.CommandSet) Option {
	return func(cfg *generateConfig) error {
		cfg.parsed = &set
		return nil
	}
}

// WithPackageName specifies the Go package name for generated code
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("package name cannot be empty")
		}
		cfg.packageName = name
		return nil
	}
}

// WithTypes enables or disables argument type generation
func WithTypes(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.generateTypes = enabled
		return nil
	}
}

// WithCommands enables or disables command builder generation
func WithCommands(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.generateCommands = enabled
		return nil
	}
}

// WithStrictMode causes generation to fail on any issues (even warnings)
func WithStrictMode(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo includes informational messages in the result
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithLogger specifies a structured logger for debug output
func WithLogger(logger cmdspec.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = logger
		return nil
	}
}

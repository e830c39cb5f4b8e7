package cmdspec

import (
	"fmt"
	"io"

	"github.com/valkum/respgen/internal/options"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	// Configuration options
	validateStructure bool
	logger            Logger

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ParseWithOptions parses a command-set document using functional options.
// This combines input source selection and configuration in a single call.
//
// Example:
//
//	set, err := cmdspec.ParseWithOptions(
//	    cmdspec.WithFilePath("commands.json"),
//	    cmdspec.WithValidateStructure(false),
//	)
func ParseWithOptions(opts ...Option) (*CommandSet, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("cmdspec: invalid options: %w", err)
	}

	p := &Parser{
		ValidateStructure: cfg.validateStructure,
		Logger:            cfg.logger,
	}

	var set *CommandSet
	var parseErr error
	switch {
	case cfg.filePath != nil:
		set, parseErr = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		set, parseErr = p.ParseReader(cfg.reader)
	case cfg.bytes != nil:
		set, parseErr = p.ParseBytes(cfg.bytes)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("cmdspec: no input source specified")
	}

	if parseErr != nil {
		return set, parseErr
	}

	if set != nil && cfg.sourceName != nil {
		set.SourcePath = *cfg.sourceName
	}

	return set, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		validateStructure: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"cmdspec: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"cmdspec: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithValidateStructure enables or disables structure validation warnings
func WithValidateStructure(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.validateStructure = enabled
		return nil
	}
}

// WithLogger specifies a structured logger for debug output
func WithLogger(logger Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithSourceName overrides the SourcePath recorded on the result
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}

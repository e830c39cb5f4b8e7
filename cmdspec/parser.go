package cmdspec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// Parser handles command-set document parsing
type Parser struct {
	// ValidateStructure determines whether to perform basic structure
	// validation (non-empty names, sub-arguments on oneof/block nodes).
	// Violations are reported as warnings on the result, not errors.
	ValidateStructure bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		ValidateStructure: true,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source command-set document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// detectFormatFromContent sniffs the document format from its first
// non-whitespace byte. JSON objects/arrays start with { or [; everything
// else is treated as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// Parse reads and parses a command-set document from a file path.
func (p *Parser) Parse(path string) (*CommandSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cmdspec: failed to read %s: %w", path, err)
	}

	set, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	set.SourcePath = path
	return set, nil
}

// ParseReader reads and parses a command-set document from an io.Reader.
func (p *Parser) ParseReader(r io.Reader) (*CommandSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cmdspec: failed to read input: %w", err)
	}
	set, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	if set.SourceFormat == SourceFormatJSON {
		set.SourcePath = "ParseReader.json"
	} else {
		set.SourcePath = "ParseReader.yaml"
	}
	return set, nil
}

// ParseBytes parses a command-set document from a byte slice.
//
// Two document shapes are accepted:
//
//   - a mapping of command name to command definition (the commands.json
//     shape), and
//   - a sequence of command definitions each carrying a "name" field.
//
// Parsing goes through yaml.Node rather than map decoding so that document
// order of commands and arguments is preserved. The generator assigns
// canonical type locations on a first-seen basis, so order matters.
func (p *Parser) ParseBytes(data []byte) (*CommandSet, error) {
	format := detectFormatFromContent(data)
	if format == SourceFormatUnknown {
		return nil, fmt.Errorf("cmdspec: empty document")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("cmdspec: failed to parse document: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("cmdspec: document has no content")
	}

	set := &CommandSet{SourceFormat: format}
	if format == SourceFormatJSON {
		set.SourcePath = "ParseBytes.json"
	} else {
		set.SourcePath = "ParseBytes.yaml"
	}

	top := root.Content[0]
	switch top.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(top.Content); i += 2 {
			name := top.Content[i].Value
			cmd, err := p.decodeCommand(name, top.Content[i+1], set)
			if err != nil {
				return nil, err
			}
			set.Commands = append(set.Commands, cmd)
		}
	case yaml.SequenceNode:
		for _, entry := range top.Content {
			cmd, err := p.decodeCommand("", entry, set)
			if err != nil {
				return nil, err
			}
			if cmd.Name == "" {
				set.Warnings = append(set.Warnings, "skipped command definition without a name")
				continue
			}
			set.Commands = append(set.Commands, cmd)
		}
	default:
		return nil, fmt.Errorf("cmdspec: expected a mapping or sequence of commands at the document root")
	}

	p.log().Debug("parsed command set",
		"commands", len(set.Commands),
		"arguments", set.ArgumentCount(),
		"format", string(set.SourceFormat))

	if p.ValidateStructure {
		p.validate(set)
	}

	return set, nil
}

// decodeCommand decodes one command definition node. name is the mapping key
// when the document uses the name-to-definition shape; definitions may also
// carry their own "name" field, which takes precedence when the key is empty.
func (p *Parser) decodeCommand(name string, node *yaml.Node, set *CommandSet) (Command, error) {
	cmd := Command{Name: name}
	if node.Kind != yaml.MappingNode {
		return cmd, fmt.Errorf("cmdspec: command %q: expected a mapping, got %s", name, kindName(node.Kind))
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		switch key {
		case "name":
			if cmd.Name == "" {
				cmd.Name = val.Value
			}
		case "summary":
			cmd.Summary = val.Value
		case "since":
			cmd.Since = val.Value
		case "arity":
			n, err := strconv.Atoi(val.Value)
			if err != nil {
				set.Warnings = append(set.Warnings,
					fmt.Sprintf("command %q: invalid arity %q", cmd.Name, val.Value))
				continue
			}
			cmd.Arity = n
		case "arguments":
			args, err := p.decodeArguments(cmd.Name, val, set)
			if err != nil {
				return cmd, err
			}
			cmd.Arguments = args
		}
	}

	return cmd, nil
}

func (p *Parser) decodeArguments(owner string, node *yaml.Node, set *CommandSet) ([]Argument, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("cmdspec: command %q: arguments must be a sequence, got %s", owner, kindName(node.Kind))
	}

	args := make([]Argument, 0, len(node.Content))
	for _, entry := range node.Content {
		arg, err := p.decodeArgument(owner, entry, set)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func (p *Parser) decodeArgument(owner string, node *yaml.Node, set *CommandSet) (Argument, error) {
	var arg Argument
	if node.Kind != yaml.MappingNode {
		return arg, fmt.Errorf("cmdspec: command %q: expected an argument mapping, got %s", owner, kindName(node.Kind))
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		switch key {
		case "name":
			arg.Name = val.Value
		case "type":
			arg.Type = ArgType(val.Value)
		case "token":
			arg.Token = val.Value
		case "optional":
			arg.Optional = val.Value == "true"
		case "multiple":
			arg.Multiple = val.Value == "true"
		case "arguments":
			sub, err := p.decodeArguments(owner, val, set)
			if err != nil {
				return arg, err
			}
			arg.Arguments = sub
		}
	}

	return arg, nil
}

// validate appends structural warnings to the set. Problems here never fail
// the parse; the generator silently skips what it cannot use.
func (p *Parser) validate(set *CommandSet) {
	for _, cmd := range set.Commands {
		if cmd.Name == "" {
			set.Warnings = append(set.Warnings, "command with empty name")
			continue
		}
		p.validateArguments(cmd.Name, cmd.Arguments, set)
	}
}

func (p *Parser) validateArguments(path string, args []Argument, set *CommandSet) {
	for _, arg := range args {
		argPath := path + "." + arg.Name
		if arg.Name == "" {
			set.Warnings = append(set.Warnings,
				fmt.Sprintf("%s: argument with empty name", path))
			argPath = path
		}
		switch arg.Type {
		case ArgTypeOneof, ArgTypeBlock:
			if len(arg.Arguments) == 0 {
				set.Warnings = append(set.Warnings,
					fmt.Sprintf("%s: %s argument has no sub-arguments", argPath, arg.Type))
			}
		case ArgTypePureToken:
			if arg.Token == "" {
				set.Warnings = append(set.Warnings,
					fmt.Sprintf("%s: pure-token argument has no token", argPath))
			}
		}
		p.validateArguments(argPath, arg.Arguments, set)
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

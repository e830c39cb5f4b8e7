package cmdspec

// ArgType is the type tag of an argument in a command-set document.
type ArgType string

const (
	// ArgTypeString is a free-form text value.
	ArgTypeString ArgType = "string"
	// ArgTypeInteger is a signed integer value.
	ArgTypeInteger ArgType = "integer"
	// ArgTypeDouble is a floating-point value.
	ArgTypeDouble ArgType = "double"
	// ArgTypeKey is a key name; treated as text on the wire.
	ArgTypeKey ArgType = "key"
	// ArgTypePureToken is an argument whose entire wire representation
	// is its literal token, with no accompanying value.
	ArgTypePureToken ArgType = "pure-token"
	// ArgTypeOneof is a tagged choice between alternative arguments.
	ArgTypeOneof ArgType = "oneof"
	// ArgTypeBlock is a composite of sub-arguments serialized in order.
	ArgTypeBlock ArgType = "block"
)

// IsScalar reports whether the type is a plain value kind (string, integer,
// double, or key).
func (t ArgType) IsScalar() bool {
	switch t {
	case ArgTypeString, ArgTypeInteger, ArgTypeDouble, ArgTypeKey:
		return true
	default:
		return false
	}
}

// Argument is one node of a command's argument tree.
//
// Callers should treat Argument values as read-only after parsing; the
// generator shares them across passes without copying.
type Argument struct {
	// Name is the argument's name as written in the document.
	Name string
	// Type is the argument's type tag. Unknown tags are preserved verbatim
	// so downstream consumers can decide how to handle them.
	Type ArgType
	// Token is the literal wire keyword written before the value
	// (e.g. "EX"), empty if none.
	Token string
	// Optional marks the argument as omissible.
	Optional bool
	// Multiple marks the argument as repeatable.
	Multiple bool
	// Arguments holds sub-arguments for Oneof and Block types.
	Arguments []Argument
}

// HasToken reports whether the argument carries a literal wire token.
func (a Argument) HasToken() bool {
	return a.Token != ""
}

// Command is one command definition: a name plus its argument tree.
type Command struct {
	// Name is the command name (e.g. "SET"). Container commands use a
	// space-separated form (e.g. "CLIENT KILL").
	Name string
	// Summary is the one-line description from the document, if present.
	Summary string
	// Since is the version the command was introduced in, if present.
	Since string
	// Arity is the declared arity, 0 if absent. Negative values mean
	// "at least" in the Redis convention.
	Arity int
	// Arguments is the command's top-level argument list in document order.
	Arguments []Argument
}

// CommandSet is a parsed command-set document. Commands appear in document
// order.
type CommandSet struct {
	// SourcePath is the document's input source path.
	// If the source was not a file path, this is a synthesized name ending
	// in ".yaml" or ".json" based on the detected format.
	SourcePath string
	// SourceFormat is the format of the source document (JSON or YAML).
	SourceFormat SourceFormat
	// Commands holds all parsed commands in document order.
	Commands []Command
	// Warnings contains non-fatal issues found while decoding, such as
	// arguments with missing names.
	Warnings []string
}

// ArgumentCount returns the total number of argument nodes across all
// commands, counting nested Oneof/Block sub-arguments.
func (s *CommandSet) ArgumentCount() int {
	total := 0
	for _, cmd := range s.Commands {
		total += countArguments(cmd.Arguments)
	}
	return total
}

func countArguments(args []Argument) int {
	total := len(args)
	for _, a := range args {
		total += countArguments(a.Arguments)
	}
	return total
}

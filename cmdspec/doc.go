// Package cmdspec parses declarative command-set descriptions into an
// argument-tree model.
//
// A command-set document describes a request/response protocol's commands:
// each command has a name and a tree of arguments, where an argument carries
// a type tag (scalar kinds, pure-token flags, oneof alternatives, blocks of
// sub-arguments) and an optional literal wire token. The canonical example
// is Redis's commands.json.
//
// # Quick Start
//
// Parse a document using functional options:
//
//	set, err := cmdspec.ParseWithOptions(
//		cmdspec.WithFilePath("commands.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, cmd := range set.Commands {
//		fmt.Println(cmd.Name, len(cmd.Arguments))
//	}
//
// Both JSON and YAML inputs are accepted. Document order of commands and
// arguments is preserved: downstream code generation assigns canonical
// locations on a first-seen basis, so ordering is semantically relevant.
package cmdspec

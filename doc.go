// Package respgen generates strongly-typed Go declarations and RESP
// argument-serialization code from a declarative command-set description.
//
// respgen consumes a command-set document (JSON or YAML, such as a subset of
// Redis's commands.json) describing each command's name and argument tree,
// and emits Go source for a protocol client library: one declaration per
// distinct argument shape plus a builder function per command.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - cmdspec: Parse command-set documents into an argument-tree model
//   - generator: Synthesize, deduplicate, and emit typed declarations
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/valkum/respgen
//
// # Quick Start
//
// Generate code from a command-set document:
//
//	import "github.com/valkum/respgen/generator"
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("commands.json"),
//		generator.WithPackageName("rescmd"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./rescmd"); err != nil {
//		log.Fatal(err)
//	}
//
// Or parse a command set without generating:
//
//	import "github.com/valkum/respgen/cmdspec"
//
//	set, err := cmdspec.ParseWithOptions(cmdspec.WithFilePath("commands.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Commands: %d\n", len(set.Commands))
//
// The respgen CLI wraps both:
//
//	respgen generate -package rescmd -output ./rescmd commands.json
//	respgen inspect commands.json
package respgen

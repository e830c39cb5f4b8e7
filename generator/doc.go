// Package generator synthesizes strongly-typed Go declarations and RESP
// argument-serialization code from a parsed command set.
//
// The pipeline flattens each command's argument tree into synthesized type
// descriptors ("tokens"), deduplicates structurally identical shapes in a
// registry regardless of where they occur, groups the surviving entries into
// a deterministic namespace tree, and emits one declaration plus one
// AppendArgs serialization method per entry. A second pass emits a builder
// function per command that assembles the full wire argument slice using the
// deduplicated types.
//
// # Quick Start
//
// Generate code using functional options:
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
// The pipeline is strictly two-phase: every command is flattened and
// registered before any type reference is resolved or any line is emitted.
// Resolution against a partially built registry would produce inconsistent
// namespace references.
package generator

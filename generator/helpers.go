package generator

import (
	"golang.org/x/tools/imports"
)

// formatAndFixImports formats Go source code and automatically fixes imports.
// It adds missing imports and removes unused ones using goimports-equivalent
// processing, so generated code compiles without a manual goimports run.
func formatAndFixImports(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

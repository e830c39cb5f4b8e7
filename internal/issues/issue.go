// Package issues provides a unified issue type for parsing and generation problems.
package issues

import (
	"fmt"

	"github.com/valkum/respgen/internal/severity"
)

// Issue represents a single problem found during parsing or code generation.
type Issue struct {
	// Path identifies the command or argument the issue relates to
	// (e.g., "set.expiration.ex")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Value is the problematic value (optional)
	Value any
	// Context provides additional information about the issue (optional)
	Context string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// CountBySeverity tallies issues per severity level.
func CountBySeverity(list []Issue) (info, warning, errors, critical int) {
	for _, issue := range list {
		switch issue.Severity {
		case severity.SeverityInfo:
			info++
		case severity.SeverityWarning:
			warning++
		case severity.SeverityError:
			errors++
		case severity.SeverityCritical:
			critical++
		}
	}
	return info, warning, errors, critical
}

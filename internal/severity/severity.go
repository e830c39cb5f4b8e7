// Package severity provides severity level constants and utilities
// for issues reported by the cmdspec and generator packages.
//
// All severity levels are exported by each public package that uses them:
//   - SeverityInfo: Informational messages about choices made
//   - SeverityWarning: Skipped features or recommendations
//   - SeverityError: Input violations that make a command set invalid
//   - SeverityCritical: Features that cannot be generated (data loss)
package severity

// Severity indicates the severity level of an issue found during parsing
// or code generation.
type Severity int

const (
	// SeverityError indicates an input violation that makes the command set invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates skipped features, lossy choices, or
	// recommendations that don't prevent generation but should be addressed.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo

	// SeverityCritical indicates features that cannot be generated without data loss.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

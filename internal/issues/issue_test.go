package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valkum/respgen/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name:  "warning",
			issue: Issue{Path: "SET.expiration", Message: "skipped", Severity: severity.SeverityWarning},
			want:  "⚠ SET.expiration: skipped",
		},
		{
			name:  "critical",
			issue: Issue{Path: "FAILOVER.target", Message: "no registered type", Severity: severity.SeverityCritical},
			want:  "✗ FAILOVER.target: no registered type",
		},
		{
			name:  "info with context",
			issue: Issue{Path: "SET", Message: "folded duplicate", Severity: severity.SeverityInfo, Context: "first seen under SET"},
			want:  "ℹ SET: folded duplicate\n    Context: first seen under SET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.issue.String())
		})
	}
}

func TestCountBySeverity(t *testing.T) {
	list := []Issue{
		{Severity: severity.SeverityInfo},
		{Severity: severity.SeverityWarning},
		{Severity: severity.SeverityWarning},
		{Severity: severity.SeverityError},
		{Severity: severity.SeverityCritical},
	}

	info, warning, errors, critical := CountBySeverity(list)
	assert.Equal(t, 1, info)
	assert.Equal(t, 2, warning)
	assert.Equal(t, 1, errors)
	assert.Equal(t, 1, critical)
}

func TestCountBySeverityEmpty(t *testing.T) {
	info, warning, errors, critical := CountBySeverity(nil)
	assert.Zero(t, info)
	assert.Zero(t, warning)
	assert.Zero(t, errors)
	assert.Zero(t, critical)
}

package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expirationToken(fqtn ...string) *Token {
	return &Token{
		Kind:        TokenChoice,
		DisplayName: "Expiration",
		FQTN:        fqtn,
		Variants: []Variant{
			{Kind: VariantWrapper, Name: "Ex", Token: "EX", TypeRef: "int64"},
			{Kind: VariantWrapper, Name: "Px", Token: "PX", TypeRef: "int64"},
			{Kind: VariantMarker, Name: "Persist", Token: "PERSIST"},
		},
	}
}

func TestRegistryDedupFirstSeenWins(t *testing.T) {
	reg := NewRegistry()

	first, registered := reg.Insert(expirationToken("SET", "expiration"))
	require.True(t, registered)
	assert.Equal(t, []string{"SET"}, first.Path)

	second, registered := reg.Insert(expirationToken("GETEX", "expiration"))
	assert.False(t, registered, "structurally equal shapes must be discarded")
	assert.Same(t, first, second, "the canonical entry is the first insertion")
	assert.Equal(t, 1, reg.Len())

	// Idempotent under repeated insertion.
	_, registered = reg.Insert(expirationToken("PEXPIRE", "expiration"))
	assert.False(t, registered)
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, []string{"SET"}, reg.Entries()[0].Path, "canonical path is stable")
}

func TestRegistryDistinctShapesCoexist(t *testing.T) {
	reg := NewRegistry()

	_, registered := reg.Insert(expirationToken("SET", "expiration"))
	require.True(t, registered)

	other := expirationToken("ZADD", "expiration")
	other.Variants = other.Variants[:2] // drop PERSIST: different shape
	_, registered = reg.Insert(other)
	assert.True(t, registered)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryResolveExactContext(t *testing.T) {
	reg := NewRegistry()
	reg.Insert(&Token{
		Kind: TokenChoice, DisplayName: "Condition", FQTN: []string{"SET", "condition"},
		Variants: []Variant{{Kind: VariantMarker, Name: "Nx", Token: "NX"}},
	})
	reg.Insert(&Token{
		Kind: TokenChoice, DisplayName: "Condition", FQTN: []string{"ZADD", "condition"},
		Variants: []Variant{{Kind: VariantMarker, Name: "Gt", Token: "GT"}},
	})

	name, ok := reg.Resolve([]string{"ZADD"}, "Condition")
	require.True(t, ok)
	assert.Equal(t, "ZaddCondition", name, "exact context match takes priority over registration order")

	name, ok = reg.Resolve([]string{"SET"}, "Condition")
	require.True(t, ok)
	assert.Equal(t, "SetCondition", name)
}

func TestRegistryResolveRelocatedShape(t *testing.T) {
	reg := NewRegistry()
	reg.Insert(expirationToken("SET", "expiration"))
	reg.Insert(expirationToken("GETEX", "expiration")) // discarded

	// GETEX's reference finds the shape under SET's earlier path.
	name, ok := reg.Resolve([]string{"GETEX"}, "Expiration")
	require.True(t, ok)
	assert.Equal(t, "SetExpiration", name)
}

func TestRegistryResolveQualifiedReference(t *testing.T) {
	reg := NewRegistry()
	reg.Insert(&Token{
		Kind: TokenRecord, DisplayName: "To", WireToken: "TO",
		FQTN: []string{"FAILOVER", "target", "to"},
		Fields: []Field{
			{Name: "Host", SourceName: "host", TypeRef: "string"},
		},
	})

	// A choice at FAILOVER::target references its child as "target::To".
	name, ok := reg.Resolve([]string{"FAILOVER"}, "target::To")
	require.True(t, ok)
	assert.Equal(t, "FailoverTargetTo", name)
}

func TestRegistryResolvePrimitivePassthrough(t *testing.T) {
	reg := NewRegistry()
	reg.Insert(expirationToken("SET", "expiration"))

	for _, primitive := range []string{"string", "int64", "float64"} {
		name, ok := reg.Resolve([]string{"SET"}, primitive)
		assert.False(t, ok)
		assert.Equal(t, primitive, name, "unresolved references pass through unchanged")
	}
}

func TestEntryGoName(t *testing.T) {
	tests := []struct {
		name string
		path []string
		want string
	}{
		{"single segment", []string{"SET"}, "SetExpiration"},
		{"nested path", []string{"CLIENT KILL", "filter"}, "ClientKillFilterExpiration"},
		{"empty path", nil, "Expiration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Entry{Token: &Token{DisplayName: "Expiration"}, Path: tt.path}
			assert.Equal(t, tt.want, e.GoName())
		})
	}
}

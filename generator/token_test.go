package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenContentKeyIgnoresFQTN(t *testing.T) {
	a := &Token{
		Kind:        TokenChoice,
		DisplayName: "Expiration",
		FQTN:        []string{"SET", "expiration"},
		Variants: []Variant{
			{Kind: VariantWrapper, Name: "Ex", Token: "EX", TypeRef: "int64"},
			{Kind: VariantWrapper, Name: "Px", Token: "PX", TypeRef: "int64"},
			{Kind: VariantMarker, Name: "Persist", Token: "PERSIST"},
		},
	}
	b := &Token{
		Kind:        TokenChoice,
		DisplayName: "Expiration",
		FQTN:        []string{"GETEX", "expiration"},
		Variants: []Variant{
			{Kind: VariantWrapper, Name: "Ex", Token: "EX", TypeRef: "int64"},
			{Kind: VariantWrapper, Name: "Px", Token: "PX", TypeRef: "int64"},
			{Kind: VariantMarker, Name: "Persist", Token: "PERSIST"},
		},
	}

	assert.True(t, a.Equal(b), "identity of occurrence must never affect identity of shape")
	assert.Equal(t, a.ContentKey(), b.ContentKey())
}

func TestTokenContentKeyDiscriminates(t *testing.T) {
	base := func() *Token {
		return &Token{
			Kind:        TokenRecord,
			DisplayName: "Limit",
			WireToken:   "LIMIT",
			FQTN:        []string{"SORT", "limit"},
			Fields: []Field{
				{Name: "Offset", SourceName: "offset", TypeRef: "int64"},
				{Name: "Count", SourceName: "count", TypeRef: "int64"},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Token)
	}{
		{"display name", func(tok *Token) { tok.DisplayName = "Bound" }},
		{"wire token", func(tok *Token) { tok.WireToken = "BOUND" }},
		{"kind", func(tok *Token) { tok.Kind = TokenChoice; tok.Fields = nil }},
		{"field name", func(tok *Token) { tok.Fields[0].Name = "Start" }},
		{"field type", func(tok *Token) { tok.Fields[0].TypeRef = "string" }},
		{"field order", func(tok *Token) { tok.Fields[0], tok.Fields[1] = tok.Fields[1], tok.Fields[0] }},
		{"flag token", func(tok *Token) { tok.Fields[1] = Field{Name: "Count", FlagToken: "COUNT"} }},
		{"multiple", func(tok *Token) { tok.Fields[1].Multiple = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := base(), base()
			tt.mutate(b)
			assert.False(t, a.Equal(b))
		})
	}
}

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "alias", TokenAlias.String())
	assert.Equal(t, "record", TokenRecord.String())
	assert.Equal(t, "choice", TokenChoice.String())
	assert.Equal(t, "unknown", TokenKind(42).String())
}

func TestFieldIsFlag(t *testing.T) {
	assert.True(t, Field{Name: "Abc", FlagToken: "ABC"}.IsFlag())
	assert.False(t, Field{Name: "Count", TypeRef: "int64"}.IsFlag())
}

package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valkum/respgen/internal/codewriter"
)

func TestFormatPrimitive(t *testing.T) {
	assert.Equal(t, "strconv.FormatInt(n, 10)", formatPrimitive("n", "int64"))
	assert.Equal(t, "strconv.FormatFloat(f, 'f', -1, 64)", formatPrimitive("f", "float64"))
	assert.Equal(t, "s", formatPrimitive("s", "string"))
}

func TestEmitAlias(t *testing.T) {
	reg := NewRegistry()
	entry, _ := reg.Insert(&Token{
		Kind:        TokenAlias,
		DisplayName: "Ex",
		WireToken:   "EX",
		FQTN:        []string{"SET", "expiration", "ex"},
		Alias:       "int64",
	})

	var w codewriter.Writer
	newEmitter(reg, &w).emitEntry(entry)

	out := w.String()
	assert.Contains(t, out, "type SetExpirationEx int64")
	assert.Contains(t, out, "func (v SetExpirationEx) AppendArgs(dst []string) []string {")
	assert.Contains(t, out, `dst = append(dst, "EX")`)
	assert.Contains(t, out, "return append(dst, strconv.FormatInt(int64(v), 10))")
}

func TestEmitRecordEmpty(t *testing.T) {
	reg := NewRegistry()
	entry, _ := reg.Insert(&Token{
		Kind:        TokenRecord,
		DisplayName: "Keepttl",
		WireToken:   "KEEPTTL",
		FQTN:        []string{"SET", "keepttl"},
	})

	var w codewriter.Writer
	newEmitter(reg, &w).emitEntry(entry)

	out := w.String()
	assert.Contains(t, out, "type SetKeepttl struct{}")
	assert.Contains(t, out, `dst = append(dst, "KEEPTTL")`)
}

func TestEmitChoiceNestedTypeWritesOwnToken(t *testing.T) {
	reg := NewRegistry()
	reg.Insert(&Token{
		Kind:        TokenAlias,
		DisplayName: "To",
		WireToken:   "TO",
		FQTN:        []string{"FAILOVER", "target", "to"},
		Alias:       "string",
	})
	entry, _ := reg.Insert(&Token{
		Kind:        TokenChoice,
		DisplayName: "Target",
		FQTN:        []string{"FAILOVER", "target"},
		Variants: []Variant{
			{Kind: VariantWrapper, Name: "To", SourceName: "to", Token: "TO", TypeRef: "target::To"},
			{Kind: VariantMarker, Name: "Abort", SourceName: "abort", Token: "ABORT"},
		},
	})

	var w codewriter.Writer
	newEmitter(reg, &w).emitEntry(entry)

	out := w.String()
	assert.Contains(t, out, "To *FailoverTargetTo")
	assert.Contains(t, out, "dst = v.To.AppendArgs(dst)")
	// The nested alias serializes its own "TO" token; the dispatch arm must
	// not write it a second time.
	assert.NotContains(t, out, "case v.To != nil:\n\t\tdst = append(dst, \"TO\")")
	assert.Contains(t, out, "case v.Abort:")
	assert.Contains(t, out, `dst = append(dst, "ABORT")`)
}

func TestVariantDoc(t *testing.T) {
	assert.Equal(t, "TO", variantDoc(Variant{Token: "TO"}))
	assert.Equal(t, "Unknown", variantDoc(Variant{}))
}

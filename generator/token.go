package generator

import (
	"fmt"
	"strings"
)

// Primitive type names used for scalar references. References that resolve
// to none of the registry's entries are assumed to be one of these.
const (
	primitiveString  = "string"
	primitiveInteger = "int64"
	primitiveDouble  = "float64"
)

// refSeparator separates qualifier segments in local type references and
// namespace path strings (e.g. "expiration::Ex").
const refSeparator = "::"

// TokenKind discriminates the three shapes a synthesized type can take.
type TokenKind int

const (
	// TokenAlias wraps a single scalar type.
	TokenAlias TokenKind = iota
	// TokenRecord is an ordered list of named fields.
	TokenRecord
	// TokenChoice is an ordered list of tagged variants.
	TokenChoice
)

// String returns the string representation of the kind.
func (k TokenKind) String() string {
	switch k {
	case TokenAlias:
		return "alias"
	case TokenRecord:
		return "record"
	case TokenChoice:
		return "choice"
	default:
		return "unknown"
	}
}

// Field is one named field of a record shape.
//
// A field is either a value field carrying a type reference, or a boolean
// flag bound to a literal wire token: an optional pure-token argument nested
// in a block is folded into a flag on the enclosing record instead of
// getting its own declaration.
type Field struct {
	// Name is the Go field name.
	Name string
	// SourceName is the originating argument name, used for doc comments.
	SourceName string
	// TypeRef is the local type reference: a primitive name, or a
	// qualified reference like "expiration::Ex" resolved against the
	// registry at emission time. Empty for flag fields.
	TypeRef string
	// FlagToken, when non-empty, marks this as a boolean flag field that
	// writes the token onto the wire when true.
	FlagToken string
	// Multiple marks the field as repeatable; it is emitted as a slice
	// and serialized element by element.
	Multiple bool
}

// IsFlag reports whether the field is a boolean flag bound to a wire token.
func (f Field) IsFlag() bool {
	return f.FlagToken != ""
}

// VariantKind discriminates the three forms a choice variant can take.
type VariantKind int

const (
	// VariantMarker emits only its literal token.
	VariantMarker VariantKind = iota
	// VariantWrapper wraps one inner type reference.
	VariantWrapper
	// VariantInline carries an inline record of named fields.
	VariantInline
)

// Variant is one alternative of a choice shape.
type Variant struct {
	// Kind is the variant form.
	Kind VariantKind
	// Name is the Go field name for the variant.
	Name string
	// SourceName is the originating argument name.
	SourceName string
	// Token is the literal wire token written when the variant is present,
	// empty if none.
	Token string
	// TypeRef is the wrapped type reference for VariantWrapper.
	TypeRef string
	// Fields are the inline record fields for VariantInline.
	Fields []Field
}

// Token is a synthesized type descriptor: one declaration unit representing
// a distinct argument shape.
//
// Equality is structural: two Tokens are equal iff DisplayName, WireToken,
// and shape-with-contents are equal. FQTN is excluded — identity of
// occurrence never affects identity of shape. Use ContentKey for comparison.
type Token struct {
	// Kind is the shape discriminator.
	Kind TokenKind
	// DisplayName is the type name, derived from the wire token if present,
	// else from the source argument name.
	DisplayName string
	// WireToken is the literal token written before the payload, if any.
	WireToken string
	// FQTN is the ordered list of ancestor names plus own name, used only
	// for namespace placement.
	FQTN []string

	// Alias is the wrapped primitive name for TokenAlias.
	Alias string
	// Fields are the record fields for TokenRecord.
	Fields []Field
	// Variants are the choice variants for TokenChoice.
	Variants []Variant
}

// ContentKey returns a canonical string identifying the token's structural
// content, excluding FQTN. Tokens with equal content keys are deduplicated
// by the registry.
func (t *Token) ContentKey() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s|%s", t.Kind, t.DisplayName, t.WireToken)
	switch t.Kind {
	case TokenAlias:
		fmt.Fprintf(&b, "|=%s", t.Alias)
	case TokenRecord:
		writeFieldsKey(&b, t.Fields)
	case TokenChoice:
		for _, v := range t.Variants {
			fmt.Fprintf(&b, "|v(%d,%s,%s,%s", v.Kind, v.Name, v.Token, v.TypeRef)
			writeFieldsKey(&b, v.Fields)
			b.WriteString(")")
		}
	}
	return b.String()
}

func writeFieldsKey(b *strings.Builder, fields []Field) {
	for _, f := range fields {
		fmt.Fprintf(b, "|f(%s,%s,%s,%t)", f.Name, f.TypeRef, f.FlagToken, f.Multiple)
	}
}

// Equal reports structural equality per ContentKey.
func (t *Token) Equal(other *Token) bool {
	return t.ContentKey() == other.ContentKey()
}

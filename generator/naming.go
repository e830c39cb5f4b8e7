// This file implements name derivation for synthesized types: wire tokens and
// raw argument names are normalized into valid Go identifiers.

package generator

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/valkum/respgen/cmdspec"
	"github.com/valkum/respgen/internal/naming"
)

// titleCaser folds wire tokens like "KEEPTTL" to "Keepttl".
// strings.Title is deprecated; golang.org/x/text/cases is the replacement.
var titleCaser = cases.Title(language.English)

// displayName derives a type descriptor's display name from its literal wire
// token if present, else from its source argument name.
// Example: token "EX" -> "Ex"; name "expire_time" -> "ExpireTime".
func displayName(arg cmdspec.Argument) string {
	if arg.Token != "" {
		return tokenTypeName(arg.Token)
	}
	return naming.SanitizeIdentifier(naming.ToPascalCase(arg.Name))
}

// tokenTypeName normalizes a literal wire token into a type name.
// Tokens are conventionally SHOUTING and may contain separators or
// punctuation: "LIMIT" -> "Limit", "GET-MASTERADDR" -> "GetMasteraddr",
// "!" -> "T" (sanitized placeholder).
func tokenTypeName(token string) string {
	parts := strings.FieldsFunc(token, func(r rune) bool {
		return r == '-' || r == '_' || r == ':' || r == '/' || r == ' '
	})
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(titleCaser.String(strings.ToLower(part)))
	}
	return naming.SanitizeIdentifier(b.String())
}

// fieldName converts an argument name to a Go struct field name.
func fieldName(s string) string {
	return naming.SanitizeIdentifier(naming.ToPascalCase(s))
}

// paramName converts an argument name to a Go parameter name.
func paramName(s string) string {
	return naming.EscapeReservedWord(naming.ToCamelCase(s))
}

// qualifiedTypeName joins a namespace path and a display name into the
// emitted Go type name. Go has no nested namespaces, so the hierarchical
// path maps to a deterministic PascalCase prefix.
// Example: path ["SET"], name "Expiration" -> "SetExpiration".
func qualifiedTypeName(path []string, name string) string {
	var b strings.Builder
	for _, seg := range path {
		b.WriteString(naming.ToPascalCase(strings.ToLower(seg)))
	}
	b.WriteString(name)
	return naming.SanitizeIdentifier(b.String())
}

// primitiveFor maps a scalar argument type to its Go primitive name.
// Unknown types map to the empty string.
func primitiveFor(t cmdspec.ArgType) string {
	switch t {
	case cmdspec.ArgTypeString, cmdspec.ArgTypeKey:
		return primitiveString
	case cmdspec.ArgTypeInteger:
		return primitiveInteger
	case cmdspec.ArgTypeDouble:
		return primitiveDouble
	default:
		return ""
	}
}

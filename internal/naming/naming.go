// Package naming provides shared string case conversion utilities for
// turning raw command-set identifiers into Go identifiers.
package naming

import (
	"strings"
	"unicode"
)

// goReservedWords contains Go reserved keywords that cannot be used as identifiers.
// Predeclared identifiers like "error" are excluded because they can be shadowed
// and are commonly wanted as type names.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// EscapeReservedWord checks if a name is a Go reserved keyword and escapes it
// by appending an underscore. The check is case-insensitive because PascalCase
// names like "Range" or "Type" should still be escaped.
func EscapeReservedWord(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, colon, slash, space) trigger
// capitalization of the next letter.
// Example: "expire_time" -> "ExpireTime"
// Example: "get-ex" -> "GetEx"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == ':' || r == '/' || r == ' ' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "expire_time" -> "expireTime"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ToSnakeCase converts a string to snake_case.
// Uppercase letters are prefixed with underscore and lowercased.
// Existing separators (hyphen, dot, colon, slash, space) become underscores.
// Example: "ExpireTime" -> "expire_time"
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else if r == '-' || r == '.' || r == ':' || r == '/' || r == ' ' {
			result.WriteRune('_')
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// SanitizeIdentifier strips characters that are not valid in a Go identifier
// and escapes reserved words. Names that start with a digit get a "T" prefix.
// Casing policy is the caller's concern.
// Example: "any-type" -> "anytype"
// Example: "2nd" -> "T2nd"
func SanitizeIdentifier(s string) string {
	if s == "" {
		return "T"
	}

	var result strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		}
	}

	name := result.String()
	if name == "" {
		return "T"
	}
	if !unicode.IsLetter(rune(name[0])) {
		name = "T" + name
	}
	return EscapeReservedWord(name)
}

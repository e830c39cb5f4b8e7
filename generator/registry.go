package generator

import "strings"

// Entry is a registered type descriptor plus its canonical namespace
// location: all but the last segment of the first FQTN under which the
// shape was seen.
type Entry struct {
	// Token is the registered descriptor.
	Token *Token
	// Path is the canonical namespace path.
	Path []string
}

// GoName returns the emitted Go type name for the entry: the PascalCase
// namespace prefix followed by the display name.
func (e *Entry) GoName() string {
	return qualifiedTypeName(e.Path, e.Token.DisplayName)
}

// PathKey returns the canonical namespace path joined for grouping.
func (e *Entry) PathKey() string {
	return strings.Join(e.Path, refSeparator)
}

// Registry deduplicates type descriptors by structural content.
//
// Registration is idempotent under repeated insertion of structurally equal
// shapes; the canonical path is stable and equals the path of the first
// insertion in processing order. Resolution queries must not run until all
// commands have been folded: a reference may point at a shape whose
// canonical location is claimed by a later-processed command otherwise.
type Registry struct {
	entries []*Entry
	byKey   map[string]*Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]*Entry)}
}

// Insert registers the descriptor unless a structurally equal shape already
// exists. It returns the canonical entry for the shape and whether the
// descriptor was newly registered. A discarded descriptor's FQTN is dropped.
func (r *Registry) Insert(tok *Token) (*Entry, bool) {
	key := tok.ContentKey()
	if existing, ok := r.byKey[key]; ok {
		return existing, false
	}

	path := tok.FQTN[:len(tok.FQTN)-1]
	entry := &Entry{Token: tok, Path: path}
	r.entries = append(r.entries, entry)
	r.byKey[key] = entry
	return entry, true
}

// Entries returns all registered entries in registration order.
func (r *Registry) Entries() []*Entry {
	return r.entries
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Resolve maps a local type reference to a rendering-ready Go type name.
//
// ctx is the namespace path the reference appears in (the referencing
// entry's canonical path). local is either a primitive name or a qualified
// reference like "expiration::Ex" written by the flattener.
//
// An entry matches when its display name equals the reference's trailing
// segment and its path is consistent with the searching context: the exact
// location ctx plus the reference's qualifiers is preferred; failing that,
// the first registered entry with a matching trailing name is used, which
// covers shapes relocated by deduplication under an earlier command's path.
// If nothing matches, local is returned unchanged and assumed primitive.
//
// Resolve is a pure lookup; it must only be called once the registry is
// fully populated.
func (r *Registry) Resolve(ctx []string, local string) (string, bool) {
	parts := strings.Split(local, refSeparator)
	name := parts[len(parts)-1]
	qualifiers := parts[:len(parts)-1]

	want := make([]string, 0, len(ctx)+len(qualifiers))
	want = append(want, ctx...)
	want = append(want, qualifiers...)

	for _, e := range r.entries {
		if e.Token.DisplayName == name && samePath(e.Path, want) {
			return e.GoName(), true
		}
	}
	for _, e := range r.entries {
		if e.Token.DisplayName == name {
			return e.GoName(), true
		}
	}
	return local, false
}

func samePath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

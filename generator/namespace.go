package generator

import (
	"fmt"
	"sort"
	"strings"
)

// NamespaceNode is one compartment of the namespace tree: a name, the
// entries directly owned by the compartment, and named child compartments.
type NamespaceNode struct {
	// Name is the compartment's own path segment; empty for the root.
	Name string
	// Entries are the registry entries owned directly by this node, in
	// grouped registration order.
	Entries []*Entry
	// Children maps child segment name to node.
	Children map[string]*NamespaceNode
}

func newNamespaceNode(name string) *NamespaceNode {
	return &NamespaceNode{
		Name:     name,
		Children: make(map[string]*NamespaceNode),
	}
}

// ChildNames returns the child segment names in sorted order. Children is a
// map, so emission must go through here to stay deterministic.
func (n *NamespaceNode) ChildNames() []string {
	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildNamespaceTree groups the registry's entries by canonical namespace
// path into a tree. Entries with an empty path attach at the root.
//
// Groups are sorted by path string before building, so the tree shape and
// the order entries appear in are a pure function of the path strings,
// independent of registry iteration order. This determinism is required for
// reproducible generated output across runs.
//
// An empty segment inside a non-empty path indicates a flattener or registry
// bug, not bad input, and panics rather than emitting malformed output.
func buildNamespaceTree(reg *Registry) *NamespaceNode {
	groups := make(map[string][]*Entry)
	for _, e := range reg.Entries() {
		groups[e.PathKey()] = append(groups[e.PathKey()], e)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	root := newNamespaceNode("")
	for _, key := range keys {
		node := root
		if key != "" {
			for _, seg := range strings.Split(key, refSeparator) {
				if seg == "" {
					panic(fmt.Sprintf("generator: empty segment in namespace path %q", key))
				}
				child, ok := node.Children[seg]
				if !ok {
					child = newNamespaceNode(seg)
					node.Children[seg] = child
				}
				node = child
			}
		}
		node.Entries = append(node.Entries, groups[key]...)
	}

	return root
}

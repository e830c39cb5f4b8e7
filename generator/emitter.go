package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valkum/respgen/internal/codewriter"
)

// emitter renders declarations and serialization routines for the namespace
// tree. It writes exclusively through the codewriter sink and resolves
// inter-type references through the fully populated registry.
type emitter struct {
	reg *Registry
	w   *codewriter.Writer
}

func newEmitter(reg *Registry, w *codewriter.Writer) *emitter {
	return &emitter{reg: reg, w: w}
}

// emitTree walks the namespace tree, emitting every node's directly owned
// entries first and then each child compartment in sorted order.
func (e *emitter) emitTree(root *NamespaceNode) {
	e.emitNode(root, nil)
}

func (e *emitter) emitNode(node *NamespaceNode, path []string) {
	for _, entry := range node.Entries {
		e.emitEntry(entry)
	}
	for _, name := range node.ChildNames() {
		childPath := append(append([]string{}, path...), name)
		e.w.Linef("// Types synthesized under %s.", strings.Join(childPath, "."))
		e.w.Blank()
		e.emitNode(node.Children[name], childPath)
	}
}

func (e *emitter) emitEntry(entry *Entry) {
	switch entry.Token.Kind {
	case TokenAlias:
		e.emitAlias(entry)
	case TokenRecord:
		e.emitRecord(entry)
	case TokenChoice:
		e.emitChoice(entry)
	}
}

// resolveRef resolves a local type reference in the context of the given
// entry, returning the Go type name and whether it names a registered entry
// (as opposed to an assumed primitive).
func (e *emitter) resolveRef(entry *Entry, ref string) (string, bool) {
	return e.reg.Resolve(entry.Path, ref)
}

// emitAlias emits a defined type over a primitive whose serialization writes
// the wire token before the wrapped value.
func (e *emitter) emitAlias(entry *Entry) {
	name := entry.GoName()
	doc := entry.Token.WireToken
	if doc == "" {
		doc = entry.Token.DisplayName
	}

	e.w.Linef("// %s is the %s argument.", name, doc)
	e.w.Linef("type %s %s", name, entry.Token.Alias)
	e.w.Blank()
	e.w.Linef("// AppendArgs appends the argument's wire form to dst.")
	e.w.Linef("func (v %s) AppendArgs(dst []string) []string {", name)
	e.w.Indent()
	if entry.Token.WireToken != "" {
		e.w.Linef("dst = append(dst, %s)", strconv.Quote(entry.Token.WireToken))
	}
	e.w.Linef("return append(dst, %s)", formatPrimitive(fmt.Sprintf("%s(v)", entry.Token.Alias), entry.Token.Alias))
	e.w.Outdent()
	e.w.Line("}")
	e.w.Blank()
}

// emitRecord emits a struct with one field per field definition and a
// serialization method writing the wire token and then each field in
// declared order. Boolean flag fields write their token only when true.
func (e *emitter) emitRecord(entry *Entry) {
	name := entry.GoName()
	tok := entry.Token

	if tok.WireToken != "" {
		e.w.Linef("// %s is the %q block.", name, tok.WireToken)
	} else {
		e.w.Linef("// %s is the %s block.", name, tok.DisplayName)
	}
	if len(tok.Fields) == 0 {
		e.w.Linef("type %s struct{}", name)
	} else {
		e.w.Linef("type %s struct {", name)
		e.w.Indent()
		for _, f := range tok.Fields {
			e.w.Linef("// %s", f.SourceName)
			e.w.Linef("%s %s", f.Name, e.fieldGoType(entry, f))
		}
		e.w.Outdent()
		e.w.Line("}")
	}
	e.w.Blank()

	e.w.Linef("// AppendArgs appends the block's wire form to dst.")
	e.w.Linef("func (v %s) AppendArgs(dst []string) []string {", name)
	e.w.Indent()
	if tok.WireToken != "" {
		e.w.Linef("dst = append(dst, %s)", strconv.Quote(tok.WireToken))
	}
	for _, f := range tok.Fields {
		e.emitFieldSerialization(entry, f)
	}
	e.w.Line("return dst")
	e.w.Outdent()
	e.w.Line("}")
	e.w.Blank()
}

// emitChoice emits a struct with one field per variant and a serialization
// method dispatching on the first set variant in declared order. Inline
// record variants get an auxiliary struct emitted first.
func (e *emitter) emitChoice(entry *Entry) {
	name := entry.GoName()
	tok := entry.Token

	for _, v := range tok.Variants {
		if v.Kind == VariantInline {
			e.emitInlineVariantStruct(entry, name, v)
		}
	}

	e.w.Linef("// %s selects exactly one of its variants; the first set", name)
	e.w.Line("// variant in declared order is serialized.")
	e.w.Linef("type %s struct {", name)
	e.w.Indent()
	for _, v := range tok.Variants {
		e.w.Linef("// %s", variantDoc(v))
		switch v.Kind {
		case VariantMarker:
			e.w.Linef("%s bool", v.Name)
		case VariantWrapper:
			inner, _ := e.resolveRef(entry, v.TypeRef)
			e.w.Linef("%s *%s", v.Name, inner)
		case VariantInline:
			e.w.Linef("%s *%s%s", v.Name, name, v.Name)
		}
	}
	e.w.Outdent()
	e.w.Line("}")
	e.w.Blank()

	e.w.Linef("// AppendArgs appends the set variant's wire form to dst.")
	e.w.Linef("func (v %s) AppendArgs(dst []string) []string {", name)
	e.w.Indent()
	if tok.WireToken != "" {
		e.w.Linef("dst = append(dst, %s)", strconv.Quote(tok.WireToken))
	}
	e.w.Line("switch {")
	for _, v := range tok.Variants {
		e.emitVariantCase(entry, name, v)
	}
	e.w.Line("}")
	e.w.Line("return dst")
	e.w.Outdent()
	e.w.Line("}")
	e.w.Blank()
}

func (e *emitter) emitInlineVariantStruct(entry *Entry, choiceName string, v Variant) {
	auxName := choiceName + v.Name
	e.w.Linef("// %s is the inline %s variant of %s.", auxName, variantDoc(v), choiceName)
	e.w.Linef("type %s struct {", auxName)
	e.w.Indent()
	for _, f := range v.Fields {
		e.w.Linef("// %s", f.SourceName)
		e.w.Linef("%s %s", f.Name, e.fieldGoType(entry, f))
	}
	e.w.Outdent()
	e.w.Line("}")
	e.w.Blank()
}

// emitVariantCase emits one dispatch arm. A bare marker writes only its own
// token and is skipped entirely when it has none; a wrapper writes its token
// then the inner value, unless the inner type is a registered entry that
// writes its own token; an inline record writes its token then each field.
func (e *emitter) emitVariantCase(entry *Entry, choiceName string, v Variant) {
	switch v.Kind {
	case VariantMarker:
		if v.Token == "" {
			return
		}
		e.w.Linef("case v.%s:", v.Name)
		e.w.Indent()
		e.w.Linef("dst = append(dst, %s)", strconv.Quote(v.Token))
		e.w.Outdent()
	case VariantWrapper:
		inner, registered := e.resolveRef(entry, v.TypeRef)
		e.w.Linef("case v.%s != nil:", v.Name)
		e.w.Indent()
		if registered {
			// The registered type writes its own wire token.
			e.w.Linef("dst = v.%s.AppendArgs(dst)", v.Name)
		} else {
			if v.Token != "" {
				e.w.Linef("dst = append(dst, %s)", strconv.Quote(v.Token))
			}
			e.w.Linef("dst = append(dst, %s)", formatPrimitive(fmt.Sprintf("*v.%s", v.Name), inner))
		}
		e.w.Outdent()
	case VariantInline:
		e.w.Linef("case v.%s != nil:", v.Name)
		e.w.Indent()
		if v.Token != "" {
			e.w.Linef("dst = append(dst, %s)", strconv.Quote(v.Token))
		}
		for _, f := range v.Fields {
			e.emitInlineFieldSerialization(entry, v.Name, f)
		}
		e.w.Outdent()
	}
}

// fieldGoType returns the Go type for a record field: bool for flags, a
// slice for repeatable fields, else the resolved reference type.
func (e *emitter) fieldGoType(entry *Entry, f Field) string {
	if f.IsFlag() {
		return "bool"
	}
	resolved, _ := e.resolveRef(entry, f.TypeRef)
	if f.Multiple {
		return "[]" + resolved
	}
	return resolved
}

func (e *emitter) emitFieldSerialization(entry *Entry, f Field) {
	if f.IsFlag() {
		e.w.Linef("if v.%s {", f.Name)
		e.w.Indent()
		e.w.Linef("dst = append(dst, %s)", strconv.Quote(f.FlagToken))
		e.w.Outdent()
		e.w.Line("}")
		return
	}

	resolved, registered := e.resolveRef(entry, f.TypeRef)
	expr := "v." + f.Name
	if f.Multiple {
		e.w.Linef("for _, item := range v.%s {", f.Name)
		e.w.Indent()
		e.emitValueAppend("item", resolved, registered)
		e.w.Outdent()
		e.w.Line("}")
		return
	}
	e.emitValueAppend(expr, resolved, registered)
}

func (e *emitter) emitInlineFieldSerialization(entry *Entry, variantName string, f Field) {
	if f.IsFlag() {
		e.w.Linef("if v.%s.%s {", variantName, f.Name)
		e.w.Indent()
		e.w.Linef("dst = append(dst, %s)", strconv.Quote(f.FlagToken))
		e.w.Outdent()
		e.w.Line("}")
		return
	}
	resolved, registered := e.resolveRef(entry, f.TypeRef)
	e.emitValueAppend(fmt.Sprintf("v.%s.%s", variantName, f.Name), resolved, registered)
}

// emitValueAppend writes the serialization statement for one value
// expression: registered types append through their own AppendArgs,
// primitives are formatted inline.
func (e *emitter) emitValueAppend(expr, goType string, registered bool) {
	if registered {
		e.w.Linef("dst = %s.AppendArgs(dst)", expr)
		return
	}
	e.w.Linef("dst = append(dst, %s)", formatPrimitive(expr, goType))
}

// formatPrimitive returns the expression converting a primitive value to its
// wire string.
func formatPrimitive(expr, goType string) string {
	switch goType {
	case primitiveInteger:
		return fmt.Sprintf("strconv.FormatInt(%s, 10)", expr)
	case primitiveDouble:
		return fmt.Sprintf("strconv.FormatFloat(%s, 'f', -1, 64)", expr)
	default:
		return expr
	}
}

// variantDoc returns the doc-comment annotation for a variant: its literal
// wire token, or "Unknown" when it has none.
func variantDoc(v Variant) string {
	if v.Token != "" {
		return v.Token
	}
	return "Unknown"
}

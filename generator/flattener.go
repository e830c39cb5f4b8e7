package generator

import (
	"fmt"
	"strings"

	"github.com/valkum/respgen/cmdspec"
	"github.com/valkum/respgen/internal/issues"
	"github.com/valkum/respgen/internal/severity"
)

// workItem is one pending node of the argument tree: the path of names that
// led to it (command name first, excluding the argument's own name) plus the
// argument itself.
type workItem struct {
	path []string
	arg  cmdspec.Argument
}

// flattener converts argument trees into synthesized type descriptors.
//
// It walks each command's arguments with an explicit LIFO worklist rather
// than call-stack recursion, so arbitrarily deep oneof/block nesting cannot
// overflow the stack. The worklist order decides which occurrence's path is
// attached to a descriptor when structurally equal shapes race for
// first-seen registration; for a fixed input order the output is identical
// across runs.
type flattener struct {
	log    cmdspec.Logger
	issues []issues.Issue
}

func newFlattener(log cmdspec.Logger) *flattener {
	if log == nil {
		log = cmdspec.NopLogger{}
	}
	return &flattener{log: log}
}

// flattenCommand produces the unregistered type descriptors for one command,
// in worklist order.
func (f *flattener) flattenCommand(cmd cmdspec.Command) []*Token {
	worklist := make([]workItem, 0, len(cmd.Arguments))
	for _, arg := range cmd.Arguments {
		worklist = append(worklist, workItem{path: []string{cmd.Name}, arg: arg})
	}

	var out []*Token
	for len(worklist) > 0 {
		item := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		tok, children := f.flattenNode(item)
		if tok != nil {
			out = append(out, tok)
		}
		worklist = append(worklist, children...)
	}

	f.log.Debug("flattened command", "name", cmd.Name, "descriptors", len(out))
	return out
}

// flattenNode handles one popped worklist item, returning the synthesized
// descriptor (nil if the node needs no declaration) and any child items to
// push back.
func (f *flattener) flattenNode(item workItem) (*Token, []workItem) {
	arg := item.arg
	fqtn := append(append([]string{}, item.path...), arg.Name)

	switch {
	case arg.Type == cmdspec.ArgTypeOneof:
		return f.flattenOneof(item, fqtn)
	case arg.Type == cmdspec.ArgTypeBlock:
		return f.flattenBlock(item, fqtn)
	case arg.Type.IsScalar() && arg.HasToken():
		// A scalar with its own wire token needs a declaration: a defined
		// type over the primitive whose serialization writes the token
		// before the value.
		return &Token{
			Kind:        TokenAlias,
			DisplayName: displayName(arg),
			WireToken:   arg.Token,
			FQTN:        fqtn,
			Alias:       primitiveFor(arg.Type),
		}, nil
	case arg.Type == cmdspec.ArgTypePureToken:
		// A freestanding pure token becomes a marker type: a record with no
		// fields whose only effect is emitting its literal token.
		return &Token{
			Kind:        TokenRecord,
			DisplayName: displayName(arg),
			WireToken:   arg.Token,
			FQTN:        fqtn,
		}, nil
	case arg.Type.IsScalar():
		// Plain scalars need no declaration of their own.
		return nil, nil
	default:
		// Unsupported kinds are skipped, not failed: the command set may
		// describe argument forms this generator does not model.
		f.issues = append(f.issues, issues.Issue{
			Path:     joinPath(fqtn),
			Message:  fmt.Sprintf("skipped argument of unsupported type %q", arg.Type),
			Severity: severity.SeverityWarning,
			Value:    string(arg.Type),
		})
		f.log.Debug("skipped unsupported argument", "path", joinPath(fqtn), "type", string(arg.Type))
		return nil, nil
	}
}

// flattenOneof builds a choice descriptor. Scalar alternatives become
// wrapper variants inline; pure tokens become markers; nested oneof/block
// alternatives become wrappers referencing a child type that is pushed back
// onto the worklist.
func (f *flattener) flattenOneof(item workItem, fqtn []string) (*Token, []workItem) {
	arg := item.arg
	tok := &Token{
		Kind:        TokenChoice,
		DisplayName: displayName(arg),
		WireToken:   arg.Token,
		FQTN:        fqtn,
	}

	var children []workItem
	for _, alt := range arg.Arguments {
		switch {
		case alt.Type == cmdspec.ArgTypePureToken:
			tok.Variants = append(tok.Variants, Variant{
				Kind:       VariantMarker,
				Name:       displayName(alt),
				SourceName: alt.Name,
				Token:      alt.Token,
			})
		case alt.Type.IsScalar():
			tok.Variants = append(tok.Variants, Variant{
				Kind:       VariantWrapper,
				Name:       displayName(alt),
				SourceName: alt.Name,
				Token:      alt.Token,
				TypeRef:    primitiveFor(alt.Type),
			})
		case alt.Type == cmdspec.ArgTypeOneof || alt.Type == cmdspec.ArgTypeBlock:
			tok.Variants = append(tok.Variants, Variant{
				Kind:       VariantWrapper,
				Name:       displayName(alt),
				SourceName: alt.Name,
				Token:      alt.Token,
				TypeRef:    arg.Name + refSeparator + displayName(alt),
			})
			children = append(children, workItem{path: fqtn, arg: alt})
		default:
			f.issues = append(f.issues, issues.Issue{
				Path:     joinPath(fqtn) + "." + alt.Name,
				Message:  fmt.Sprintf("skipped oneof alternative of unsupported type %q", alt.Type),
				Severity: severity.SeverityWarning,
				Value:    string(alt.Type),
			})
		}
	}

	return tok, children
}

// flattenBlock builds a record descriptor. Sub-arguments with their own wire
// token get their own nested declaration and a reference field, except that
// an optional pure token folds directly into a boolean flag field on this
// record. Tokenless scalars contribute plain value fields; tokenless
// oneof/block sub-arguments contribute reference fields and still push to
// the worklist since they always need a declaration of their own.
func (f *flattener) flattenBlock(item workItem, fqtn []string) (*Token, []workItem) {
	arg := item.arg
	tok := &Token{
		Kind:        TokenRecord,
		DisplayName: displayName(arg),
		WireToken:   arg.Token,
		FQTN:        fqtn,
	}

	var children []workItem
	for _, sub := range arg.Arguments {
		switch {
		case sub.Type == cmdspec.ArgTypePureToken && sub.Optional && sub.HasToken():
			// Presence is modeled as a boolean that, when true, emits the
			// literal token. No separate declaration, no worklist push.
			tok.Fields = append(tok.Fields, Field{
				Name:       fieldName(sub.Name),
				SourceName: sub.Name,
				FlagToken:  sub.Token,
			})
		case sub.HasToken():
			tok.Fields = append(tok.Fields, Field{
				Name:       fieldName(sub.Name),
				SourceName: sub.Name,
				TypeRef:    arg.Name + refSeparator + displayName(sub),
				Multiple:   sub.Multiple,
			})
			children = append(children, workItem{path: fqtn, arg: sub})
		case sub.Type.IsScalar():
			tok.Fields = append(tok.Fields, Field{
				Name:       fieldName(sub.Name),
				SourceName: sub.Name,
				TypeRef:    primitiveFor(sub.Type),
				Multiple:   sub.Multiple,
			})
		case sub.Type == cmdspec.ArgTypeOneof || sub.Type == cmdspec.ArgTypeBlock:
			tok.Fields = append(tok.Fields, Field{
				Name:       fieldName(sub.Name),
				SourceName: sub.Name,
				TypeRef:    arg.Name + refSeparator + displayName(sub),
				Multiple:   sub.Multiple,
			})
			children = append(children, workItem{path: fqtn, arg: sub})
		default:
			f.issues = append(f.issues, issues.Issue{
				Path:     joinPath(fqtn) + "." + sub.Name,
				Message:  fmt.Sprintf("skipped block sub-argument of unsupported type %q", sub.Type),
				Severity: severity.SeverityWarning,
				Value:    string(sub.Type),
			})
		}
	}

	return tok, children
}

func joinPath(path []string) string {
	return strings.Join(path, ".")
}

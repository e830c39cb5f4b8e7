package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valkum/respgen/cmdspec"
	"github.com/valkum/respgen/internal/codewriter"
	"github.com/valkum/respgen/internal/issues"
	"github.com/valkum/respgen/internal/naming"
	"github.com/valkum/respgen/internal/severity"
)

// builderEmitter renders one builder function per command: a mechanical
// one-argument-per-parameter function assembling the full wire argument
// slice. It is an independent consumer of the populated registry — builder
// parameters reference the deduplicated argument types by their canonical
// locations.
type builderEmitter struct {
	reg       *Registry
	w         *codewriter.Writer
	issues    []issues.Issue
	generated int
}

func newBuilderEmitter(reg *Registry, w *codewriter.Writer) *builderEmitter {
	return &builderEmitter{reg: reg, w: w}
}

// builderParam is one resolved parameter of a builder function.
type builderParam struct {
	name       string
	goType     string
	arg        cmdspec.Argument
	registered bool
	primitive  string
}

func (b *builderEmitter) emitCommand(cmd cmdspec.Command) {
	params := make([]builderParam, 0, len(cmd.Arguments))
	for _, arg := range cmd.Arguments {
		p, ok := b.paramFor(cmd, arg)
		if !ok {
			continue
		}
		params = append(params, p)
	}

	funcName := naming.SanitizeIdentifier(naming.ToPascalCase(strings.ToLower(cmd.Name)))

	if cmd.Summary != "" {
		b.w.Linef("// %s builds the wire arguments for the %s command: %s.", funcName, cmd.Name, strings.TrimSuffix(cmd.Summary, "."))
	} else {
		b.w.Linef("// %s builds the wire arguments for the %s command.", funcName, cmd.Name)
	}
	if cmd.Since != "" {
		b.w.Linef("// Available since %s.", cmd.Since)
	}

	sig := make([]string, 0, len(params))
	for _, p := range params {
		sig = append(sig, p.name+" "+p.goType)
	}
	b.w.Linef("func %s(%s) []string {", funcName, strings.Join(sig, ", "))
	b.w.Indent()

	words := strings.Fields(cmd.Name)
	quoted := make([]string, 0, len(words))
	for _, word := range words {
		quoted = append(quoted, strconv.Quote(word))
	}
	b.w.Linef("args := []string{%s}", strings.Join(quoted, ", "))

	for _, p := range params {
		b.emitParamSerialization(p)
	}

	b.w.Line("return args")
	b.w.Outdent()
	b.w.Line("}")
	b.w.Blank()
	b.generated++
}

// paramFor maps one top-level argument to a builder parameter. Arguments of
// unsupported kinds are skipped with a warning, mirroring the flattener.
func (b *builderEmitter) paramFor(cmd cmdspec.Command, arg cmdspec.Argument) (builderParam, bool) {
	p := builderParam{name: paramName(arg.Name), arg: arg}

	switch {
	case arg.Type == cmdspec.ArgTypePureToken:
		// Presence flag; the literal token is appended when true.
		p.goType = "bool"
		return p, true
	case arg.Type.IsScalar() && !arg.HasToken():
		p.primitive = primitiveFor(arg.Type)
		p.goType = optionalized(p.primitive, arg)
		return p, true
	case arg.Type.IsScalar() || arg.Type == cmdspec.ArgTypeOneof || arg.Type == cmdspec.ArgTypeBlock:
		// The argument has its own synthesized type; resolve it through
		// the registry to its deduplicated location.
		resolved, registered := b.reg.Resolve([]string{cmd.Name}, displayName(arg))
		if !registered {
			b.issues = append(b.issues, issues.Issue{
				Path:     cmd.Name + "." + arg.Name,
				Message:  fmt.Sprintf("no registered type for argument %q; skipped builder parameter", arg.Name),
				Severity: severity.SeverityCritical,
			})
			return p, false
		}
		p.goType = optionalized(resolved, arg)
		p.registered = true
		return p, true
	default:
		b.issues = append(b.issues, issues.Issue{
			Path:     cmd.Name + "." + arg.Name,
			Message:  fmt.Sprintf("skipped builder parameter of unsupported type %q", arg.Type),
			Severity: severity.SeverityWarning,
			Value:    string(arg.Type),
		})
		return p, false
	}
}

// optionalized wraps a parameter type for optional or repeatable arguments:
// optional arguments become pointers, repeatable ones become slices (an
// empty slice already expresses absence, so optional repeatables stay flat).
func optionalized(goType string, arg cmdspec.Argument) string {
	if arg.Multiple {
		return "[]" + goType
	}
	if arg.Optional {
		return "*" + goType
	}
	return goType
}

func (b *builderEmitter) emitParamSerialization(p builderParam) {
	arg := p.arg

	if arg.Type == cmdspec.ArgTypePureToken {
		b.w.Linef("if %s {", p.name)
		b.w.Indent()
		b.w.Linef("args = append(args, %s)", strconv.Quote(arg.Token))
		b.w.Outdent()
		b.w.Line("}")
		return
	}

	appendOne := func(expr string) {
		if p.registered {
			b.w.Linef("args = %s.AppendArgs(args)", expr)
		} else {
			b.w.Linef("args = append(args, %s)", formatPrimitive(expr, p.primitive))
		}
	}

	switch {
	case arg.Multiple:
		b.w.Linef("for _, item := range %s {", p.name)
		b.w.Indent()
		appendOne("item")
		b.w.Outdent()
		b.w.Line("}")
	case arg.Optional:
		b.w.Linef("if %s != nil {", p.name)
		b.w.Indent()
		if p.registered {
			appendOne(p.name)
		} else {
			appendOne("*" + p.name)
		}
		b.w.Outdent()
		b.w.Line("}")
	default:
		appendOne(p.name)
	}
}

package generator

import (
	"bytes"
	"embed"
	"strconv"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates *template.Template

func init() {
	var err error
	templates, err = template.New("").
		Funcs(templateFuncs).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}
}

// templateFuncs provides custom functions for templates
var templateFuncs = template.FuncMap{
	"quote": strconv.Quote,
	"join":  strings.Join,
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
}

// HeaderData contains data for the generated file header template
type HeaderData struct {
	PackageName string
	Source      string
}

// renderFile assembles one generated file: the header template followed by
// the emitted body, then formatted with goimports-equivalent processing so
// unused imports are dropped and the result is immediately compilable.
func renderFile(filename, packageName, source string, body []byte) ([]byte, error) {
	var buf bytes.Buffer
	data := HeaderData{PackageName: packageName, Source: source}
	if err := templates.ExecuteTemplate(&buf, "header.go.tmpl", data); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	buf.Write(body)

	formatted, err := formatAndFixImports(filename, buf.Bytes())
	if err != nil {
		// If formatting fails, return unformatted but don't fail the generation
		// nolint:nilerr // intentional: formatting is optional, unformatted code is acceptable
		return buf.Bytes(), nil
	}
	return formatted, nil
}

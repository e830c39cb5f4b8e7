// Package codewriter provides an indentation-aware line buffer used by the
// generator's emitter. The emitter writes exclusively through Line, Indent,
// and Outdent, so the emission logic has no file-system or console dependency.
package codewriter

import (
	"fmt"
	"strings"
)

// indentUnit is a single indentation step. Generated Go source uses tabs;
// gofmt would rewrite anything else.
const indentUnit = "\t"

// Writer accumulates generated source one line at a time, tracking the
// current indentation level. The zero value is ready to use.
type Writer struct {
	buf   strings.Builder
	level int
}

// Line appends one line at the current indentation level.
// An empty string appends a blank line with no indentation.
func (w *Writer) Line(text string) {
	if text != "" {
		for i := 0; i < w.level; i++ {
			w.buf.WriteString(indentUnit)
		}
		w.buf.WriteString(text)
	}
	w.buf.WriteByte('\n')
}

// Linef appends one formatted line at the current indentation level.
func (w *Writer) Linef(format string, args ...any) {
	w.Line(fmt.Sprintf(format, args...))
}

// Blank appends an empty line.
func (w *Writer) Blank() {
	w.Line("")
}

// Indent increases the indentation level by one step.
func (w *Writer) Indent() {
	w.level++
}

// Outdent decreases the indentation level by one step.
// Outdenting below zero indicates unbalanced emission and panics.
func (w *Writer) Outdent() {
	if w.level == 0 {
		panic("codewriter: unbalanced Outdent")
	}
	w.level--
}

// Level returns the current indentation level.
func (w *Writer) Level() int {
	return w.level
}

// String returns everything written so far.
func (w *Writer) String() string {
	return w.buf.String()
}

// Bytes returns everything written so far as a byte slice.
func (w *Writer) Bytes() []byte {
	return []byte(w.buf.String())
}

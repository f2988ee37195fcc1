// Package diag holds position-tagged diagnostics and their rendering.
package diag

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Position locates the start of a token in source text.
type Position struct {
	Offset int // Byte offset from the start of the source.
	Line   int // 1-based line.
	Column int // 1-based byte column.
}

// Start is the position of the first byte of any source.
var Start = Position{Offset: 0, Line: 1, Column: 1}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// Compare orders positions by byte offset.
func (pos Position) Compare(other Position) int {
	return cmp.Compare(pos.Offset, other.Offset)
}

// Diagnostic is a reported error at a source position.
type Diagnostic struct {
	Pos Position
	Err error
}

// New creates a diagnostic for err at pos.
func New(pos Position, err error) Diagnostic {
	return Diagnostic{Pos: pos, Err: err}
}

// Message returns the human readable text of the diagnostic.
func (d Diagnostic) Message() string {
	if d.Err == nil {
		return ""
	}
	return d.Err.Error()
}

func (d Diagnostic) Error() string {
	return d.Message()
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Render formats the diagnostic against the source it was reported for.
// The reported column is a byte column; the caret is aligned by
// characters.
//
//	error: <message>
//	  -> <filename>:<line>:<column>
//	    |
//	<line>|<source line text>
//	    |<column-1 spaces>^ <message>
func (d Diagnostic) Render(source, filename string) string {
	msg := d.Message()
	line := SourceLine(source, d.Pos.Offset)

	pad := max(d.Pos.Column-1, 0)
	if pad <= len(line) {
		pad = utf8.RuneCountInString(line[:pad])
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s\n", msg)
	fmt.Fprintf(&sb, "  -> %s:%d:%d\n", filename, d.Pos.Line, d.Pos.Column)
	sb.WriteString("    |\n")
	fmt.Fprintf(&sb, "%4d|%s\n", d.Pos.Line, line)
	fmt.Fprintf(&sb, "    |%s^ %s\n", strings.Repeat(" ", pad), msg)

	return sb.String()
}

// SourceLine returns the text of the line containing the byte at offset,
// without its line terminator.
func SourceLine(source string, offset int) string {
	offset = min(max(offset, 0), len(source))

	start := strings.LastIndexByte(source[:offset], '\n') + 1
	end := len(source)
	if n := strings.IndexByte(source[offset:], '\n'); n >= 0 {
		end = offset + n
	}

	return strings.TrimSuffix(source[start:end], "\r")
}

// List is an ordered collection of diagnostics.
type List []Diagnostic

// Add appends a diagnostic for err at pos.
func (l *List) Add(pos Position, err error) {
	*l = append(*l, New(pos, err))
}

// Sort orders the list by position, keeping the relative order of
// diagnostics at the same position.
func (l List) Sort() {
	slices.SortStableFunc(l, func(a, b Diagnostic) int {
		return a.Pos.Compare(b.Pos)
	})
}

// Render formats every diagnostic of the list.
func (l List) Render(source, filename string) string {
	var sb strings.Builder
	for _, d := range l {
		sb.WriteString(d.Render(source, filename))
	}
	return sb.String()
}

// Err returns nil for an empty list, otherwise an error summarizing it.
func (l List) Err() error {
	switch len(l) {
	case 0:
		return nil
	case 1:
		return l[0]
	}
	return l
}

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return fmt.Sprintf("%v: %v", l[0].Pos, l[0].Message())
	}
	return fmt.Sprintf("%v: %v (and %d more errors)", l[0].Pos, l[0].Message(), len(l)-1)
}

// Unwrap exposes every diagnostic to errors.Is and errors.As.
func (l List) Unwrap() []error {
	errs := make([]error, len(l))
	for n, d := range l {
		errs[n] = d
	}
	return errs
}

// Package diagnostics collects the recoverable, user-facing errors reported by
// the lexer, parser and binder. Diagnostics are never returned as Go errors; each
// stage appends to a Bag and keeps producing a best-effort result.
package diagnostics

import (
	"fmt"
	"strings"

	"mini/interpreter-go/pkg/text"
)

// Diagnostic is a message attached to a source span.
type Diagnostic struct {
	Message string
	Span    text.Span
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Span, d.Message)
}

// Bag accumulates diagnostics in discovery order.
type Bag struct {
	items []Diagnostic
}

func (b *Bag) Report(span text.Span, message string) {
	b.items = append(b.items, Diagnostic{Message: message, Span: span})
}

// Extend appends diagnostics produced elsewhere, preserving their order.
func (b *Bag) Extend(items []Diagnostic) {
	b.items = append(b.items, items...)
}

func (b *Bag) Len() int { return len(b.items) }

// Items returns a copy of the collected diagnostics.
func (b *Bag) Items() []Diagnostic {
	if len(b.items) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// ReportBadCharacter reports character at span, which covers the bytes the
// lexer consumed for it.
func (b *Bag) ReportBadCharacter(span text.Span, character rune) {
	b.Report(span, fmt.Sprintf("Bad character input: '%c'.", character))
}

func (b *Bag) ReportInvalidNumber(span text.Span, literal string, typeName string) {
	b.Report(span, fmt.Sprintf("The number %s isn't a valid %s.", literal, typeName))
}

func (b *Bag) ReportUnexpectedToken(span text.Span, actual, expected fmt.Stringer) {
	b.Report(span, fmt.Sprintf("Unexpected token <%s>, expected <%s>.", actual, expected))
}

func (b *Bag) ReportUndefinedName(span text.Span, name string) {
	b.Report(span, fmt.Sprintf("Undefined name '%s'.", name))
}

func (b *Bag) ReportVariableAlreadyDeclared(span text.Span, name string) {
	b.Report(span, fmt.Sprintf("Variable '%s' is already declared.", name))
}

func (b *Bag) ReportCannotAssign(span text.Span, name string) {
	b.Report(span, fmt.Sprintf("Cannot assign to read-only variable '%s'.", name))
}

func (b *Bag) ReportCannotConvert(span text.Span, from, to fmt.Stringer) {
	b.Report(span, fmt.Sprintf("Cannot convert type '%s' to '%s'.", from, to))
}

func (b *Bag) ReportUndefinedUnaryOperator(span text.Span, operator string, operand fmt.Stringer) {
	b.Report(span, fmt.Sprintf("Unary operator '%s' is not defined for type '%s'.", operator, operand))
}

func (b *Bag) ReportUndefinedBinaryOperator(span text.Span, operator string, left, right fmt.Stringer) {
	b.Report(span, fmt.Sprintf("Binary operator '%s' is not defined for types '%s' and '%s'.", operator, left, right))
}

// Format renders a diagnostic as `name:line:col: message` followed by the
// offending source line and a caret marker under the span. name may be empty.
func Format(name string, src *text.SourceText, d Diagnostic) string {
	if src == nil {
		if name == "" {
			return d.Message
		}
		return fmt.Sprintf("%s: %s", name, d.Message)
	}
	loc := src.Location(d.Span.Start)
	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s:", name)
	}
	fmt.Fprintf(&b, "%d:%d: %s", loc.Line, loc.Column, d.Message)

	line := src.LineText(loc.Line - 1)
	if line == "" {
		return b.String()
	}
	width := d.Span.Length
	if rest := len([]rune(line)) - (loc.Column - 1); width > rest {
		width = rest
	}
	if width < 1 {
		width = 1
	}
	gutter := fmt.Sprintf("%d | ", loc.Line)
	fmt.Fprintf(&b, "\n  %s%s\n  %s%s%s",
		gutter, line,
		strings.Repeat(" ", len(gutter)), strings.Repeat(" ", loc.Column-1), strings.Repeat("^", width))
	return b.String()
}

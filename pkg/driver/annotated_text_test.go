package driver

import (
	"strings"
	"testing"

	"mini/interpreter-go/pkg/text"
)

// annotatedText is source with diagnostic spans marked by [ and ].
type annotatedText struct {
	Text  string
	Spans []text.Span
}

func parseAnnotatedText(t *testing.T, input string) annotatedText {
	t.Helper()
	var b strings.Builder
	var spans []text.Span
	var starts []int
	for _, r := range unindent(input) {
		switch r {
		case '[':
			starts = append(starts, b.Len())
		case ']':
			if len(starts) == 0 {
				t.Fatalf("unbalanced ] in %q", input)
			}
			start := starts[len(starts)-1]
			starts = starts[:len(starts)-1]
			spans = append(spans, text.SpanFromBounds(start, b.Len()))
		default:
			b.WriteRune(r)
		}
	}
	if len(starts) != 0 {
		t.Fatalf("unbalanced [ in %q", input)
	}
	return annotatedText{Text: b.String(), Spans: spans}
}

// unindent drops leading and trailing blank lines and the common indentation.
func unindent(input string) string {
	lines := strings.Split(input, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	for i, line := range lines {
		if len(line) >= indent && indent > 0 {
			lines[i] = line[indent:]
		}
	}
	return strings.Join(lines, "\n")
}

func assertDiagnostics(t *testing.T, source string, want ...string) {
	t.Helper()
	annotated := parseAnnotatedText(t, source)
	if len(annotated.Spans) != len(want) {
		t.Fatalf("marked %d spans for %d expected diagnostics", len(annotated.Spans), len(want))
	}
	result, _ := NewSession().Submit(annotated.Text)
	if len(result.Diagnostics) != len(want) {
		t.Fatalf("diagnostics for %q = %v, want %q", annotated.Text, result.Diagnostics, want)
	}
	for i, d := range result.Diagnostics {
		if d.Message != want[i] {
			t.Fatalf("diagnostic %d = %q, want %q", i, d.Message, want[i])
		}
		if d.Span != annotated.Spans[i] {
			t.Fatalf("diagnostic %d span = %v, want %v", i, d.Span, annotated.Spans[i])
		}
	}
}

func TestParseAnnotatedText(t *testing.T) {
	annotated := parseAnnotatedText(t, `
		var [x] = 1
		[]
	`)
	if annotated.Text != "var x = 1\n" {
		t.Fatalf("text = %q", annotated.Text)
	}
	want := []text.Span{{Start: 4, Length: 1}, {Start: 10, Length: 0}}
	if len(annotated.Spans) != 2 || annotated.Spans[0] != want[0] || annotated.Spans[1] != want[1] {
		t.Fatalf("spans = %v", annotated.Spans)
	}
}

func TestDiagnosticSpans(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   []string
	}{
		{"bad character", "1 [$] 2", []string{"Bad character input: '$'."}},
		{"invalid number", "[99999999999]", []string{"The number 99999999999 isn't a valid Int."}},
		{"missing close parenthesis", "(1[]", []string{"Unexpected token <EndOfFileToken>, expected <CloseParenthesisToken>."}},
		{
			"undefined operand",
			"[x] [*] 10",
			[]string{"Undefined name 'x'.", "Binary operator '*' is not defined for types '?' and 'int'."},
		},
		{"redeclaration", "var a = 1 var [a] = 2", []string{"Variable 'a' is already declared."}},
		{"read-only", "let a = 1 [a] = 2", []string{"Cannot assign to read-only variable 'a'."}},
		{"conversion", "var a = 1 a = [true]", []string{"Cannot convert type 'bool' to 'int'."}},
		{"unary operator", "[-]true", []string{"Unary operator '-' is not defined for type 'bool'."}},
		{"binary operator", "1 [&&] true", []string{"Binary operator '&&' is not defined for types 'int' and 'bool'."}},
		{"if condition", "if [1 + 2] { }", []string{"Cannot convert type 'int' to 'bool'."}},
		{"loop variable scope", "for i = 1 to 3 { } [i]", []string{"Undefined name 'i'."}},
		{
			"block scope",
			`
			{
			    var y = 1
			}
			[y]
			`,
			[]string{"Undefined name 'y'."},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertDiagnostics(t, tc.source, tc.want...)
		})
	}
}

package driver

import (
	"errors"
	"testing"

	"mini/interpreter-go/pkg/runtime"
)

func TestSessionChainsSubmissions(t *testing.T) {
	session := NewSession()
	result, tree := session.Submit("var a = 5  a = a + 1  a")
	if result.Err != nil || len(result.Diagnostics) != 0 || result.Value != (runtime.IntegerValue{Val: 6}) {
		t.Fatalf("first = %+v", result)
	}
	if tree == nil || tree.Source.String() != "var a = 5  a = a + 1  a" {
		t.Fatalf("tree = %#v", tree)
	}
	first := session.Current()
	if first == nil || first.Tree != tree {
		t.Fatalf("current compilation should hold the first tree")
	}
	result, _ = session.Submit("a * 2")
	if result.Value != (runtime.IntegerValue{Val: 12}) {
		t.Fatalf("second = %+v", result)
	}
	if session.Current().Previous != first {
		t.Fatalf("second compilation should continue the first")
	}
}

func TestSessionReadOnlyAssignment(t *testing.T) {
	session := NewSession()
	session.Submit("let a = 5")
	result, _ := session.Submit("a = a + 1")
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Message != "Cannot assign to read-only variable 'a'." {
		t.Fatalf("diagnostics = %v", result.Diagnostics)
	}
	if got, _ := session.Variables().Get("a"); got != (runtime.IntegerValue{Val: 5}) {
		t.Fatalf("a = %#v", got)
	}
}

func TestSessionSkipsFailedSubmissions(t *testing.T) {
	session := NewSession()
	session.Submit("var a = 1")

	result, _ := session.Submit("var b = 2 b + true")
	if len(result.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %v", result.Diagnostics)
	}
	if result, _ = session.Submit("b"); len(result.Diagnostics) != 1 || result.Diagnostics[0].Message != "Undefined name 'b'." {
		t.Fatalf("declarations from a rejected submission leaked: %v", result.Diagnostics)
	}

	// a runtime failure leaves the store exactly as it was
	result, _ = session.Submit("a = 7 var c = true a / 0")
	if !errors.Is(result.Err, runtime.ErrDivisionByZero) {
		t.Fatalf("err = %v", result.Err)
	}
	if got, _ := session.Variables().Get("a"); got != (runtime.IntegerValue{Val: 1}) {
		t.Fatalf("a = %#v after failed submission", got)
	}
	if _, ok := session.Variables().Get("c"); ok {
		t.Fatalf("c stored by failed submission")
	}
	if result, _ = session.Submit("a + 1"); result.Value != (runtime.IntegerValue{Val: 2}) {
		t.Fatalf("after failure = %+v", result)
	}
}

func TestSessionReset(t *testing.T) {
	session := NewSession()
	session.Submit("var a = 1")
	session.Reset()
	if session.Variables().Len() != 0 {
		t.Fatalf("store not cleared: %v", session.Variables().Names())
	}
	if result, _ := session.Submit("a"); len(result.Diagnostics) != 1 {
		t.Fatalf("a should be undefined after reset: %+v", result)
	}
}

func TestCompilationDiagnosticsOrder(t *testing.T) {
	session := NewSession()
	result, _ := session.Submit("x + (1")
	want := []string{
		"Unexpected token <EndOfFileToken>, expected <CloseParenthesisToken>.",
		"Undefined name 'x'.",
		"Binary operator '+' is not defined for types '?' and 'int'.",
	}
	if len(result.Diagnostics) != len(want) {
		t.Fatalf("diagnostics = %v", result.Diagnostics)
	}
	for i, d := range result.Diagnostics {
		if d.Message != want[i] {
			t.Fatalf("diagnostic %d = %q, want %q", i, d.Message, want[i])
		}
	}
}

package interpreter

import (
	"errors"
	"testing"

	"mini/interpreter-go/pkg/binder"
	"mini/interpreter-go/pkg/parser"
	"mini/interpreter-go/pkg/runtime"
	"mini/interpreter-go/pkg/text"
)

func bindSource(t *testing.T, previous *binder.GlobalScope, input string) *binder.GlobalScope {
	t.Helper()
	unit, diags := parser.Parse(input)
	if len(diags) != 0 {
		t.Fatalf("Parse(%q) diagnostics: %v", input, diags)
	}
	global := binder.BindGlobalScope(previous, unit)
	if len(global.Diagnostics) != 0 {
		t.Fatalf("bind %q diagnostics: %v", input, global.Diagnostics)
	}
	return global
}

func run(t *testing.T, input string) (runtime.Value, *runtime.Variables) {
	t.Helper()
	vars := runtime.NewVariables()
	value, err := Evaluate(bindSource(t, nil, input).Statement, vars)
	if err != nil {
		t.Fatalf("Evaluate(%q): %v", input, err)
	}
	return value, vars
}

func TestEvaluateValues(t *testing.T) {
	cases := []struct {
		input string
		want  runtime.Value
	}{
		{"1+2*3", runtime.IntegerValue{Val: 7}},
		{"(1+2)*3", runtime.IntegerValue{Val: 9}},
		{"-5 + +2", runtime.IntegerValue{Val: -3}},
		{"10 - 2 - 3", runtime.IntegerValue{Val: 5}},
		{"7 / 2", runtime.IntegerValue{Val: 3}},
		{"-7 / 2", runtime.IntegerValue{Val: -3}},
		{"2147483647 + 1", runtime.IntegerValue{Val: -2147483648}},
		{"6 & 3", runtime.IntegerValue{Val: 2}},
		{"6 | 3", runtime.IntegerValue{Val: 7}},
		{"!true", runtime.BoolValue{Val: false}},
		{"1 < 2 && 2 <= 2", runtime.BoolValue{Val: true}},
		{"3 > 4 || 4 >= 4", runtime.BoolValue{Val: true}},
		{"1 == 1", runtime.BoolValue{Val: true}},
		{"1 != 1", runtime.BoolValue{Val: false}},
		{"true != false", runtime.BoolValue{Val: true}},
		{"true & false", runtime.BoolValue{Val: false}},
		{"false | true", runtime.BoolValue{Val: true}},
		{"var a = 10 a = a * 2", runtime.IntegerValue{Val: 20}},
		{"var a = 1 var b = a = 5 a + b", runtime.IntegerValue{Val: 10}},
		{"var x = 0\nif x == 0\n  x = 1\nelse\n  x = 2\nx", runtime.IntegerValue{Val: 1}},
		{"var x = 3 if x == 0 x = 1 else x = 2", runtime.IntegerValue{Val: 2}},
		{"var i = 0 var s = 0 while i < 5 { i = i + 1 s = s + i } s", runtime.IntegerValue{Val: 15}},
		{"var s = 0 for i = 1 to 4 s = s + i s", runtime.IntegerValue{Val: 10}},
		{"var n = 0 for i = 1 to 3 { i = 10 n = n + 1 } n", runtime.IntegerValue{Val: 3}},
		{"var n = 0 for i = 2147483646 to 2147483647 n = n + 1 n", runtime.IntegerValue{Val: 2}},
		{"var a = 0 false && (a = 1) == 1 a", runtime.IntegerValue{Val: 0}},
		{"var a = 0 true || (a = 1) == 1 a", runtime.IntegerValue{Val: 0}},
		{"var a = 0 false & (a = 1) == 1 a", runtime.IntegerValue{Val: 1}},
		{"var a = 1 { var a = true } a", runtime.IntegerValue{Val: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, _ := run(t, tc.input)
			if got != tc.want {
				t.Fatalf("Evaluate(%q) = %#v, want %#v", tc.input, got, tc.want)
			}
		})
	}
}

func TestEvaluateWithoutValue(t *testing.T) {
	for _, input := range []string{"", "{ }", "for i = 3 to 1 { }", "if false 1", "while false 1"} {
		if got, _ := run(t, input); got != nil {
			t.Fatalf("Evaluate(%q) = %#v, want nil", input, got)
		}
	}
	// a statement without a value keeps the previous one
	if got, _ := run(t, "1 { }"); got != (runtime.IntegerValue{Val: 1}) {
		t.Fatalf("value after empty block = %#v", got)
	}
}

func TestSessionSubmissions(t *testing.T) {
	vars := runtime.NewVariables()
	first := bindSource(t, nil, "var a = 5  a = a + 1  a")
	value, err := Evaluate(first.Statement, vars)
	if err != nil || value != (runtime.IntegerValue{Val: 6}) {
		t.Fatalf("first = %#v, %v", value, err)
	}
	second := bindSource(t, first, "a * 2")
	value, err = Evaluate(second.Statement, vars)
	if err != nil || value != (runtime.IntegerValue{Val: 12}) {
		t.Fatalf("second = %#v, %v", value, err)
	}
}

func TestForLoopDoesNotLeak(t *testing.T) {
	_, vars := run(t, "for i = 1 to 3 { }")
	if _, ok := vars.Get("i"); ok {
		t.Fatalf("loop variable left in store: %v", vars.Names())
	}

	// a loop variable shadowing a session variable restores it afterwards
	store := runtime.NewVariables()
	first := bindSource(t, nil, "var i = true")
	if _, err := Evaluate(first.Statement, store); err != nil {
		t.Fatal(err)
	}
	second := bindSource(t, first, "var n = 0 for i = 1 to 3 n = n + i i")
	value, err := Evaluate(second.Statement, store)
	if err != nil || value != (runtime.BoolValue{Val: true}) {
		t.Fatalf("after loop i = %#v, %v", value, err)
	}
	if n, _ := store.Get("n"); n != (runtime.IntegerValue{Val: 6}) {
		t.Fatalf("n = %#v", n)
	}
}

func TestBlockLocalsAreReleased(t *testing.T) {
	_, vars := run(t, "var outer = 1 { var inner = 2 outer = inner }")
	if _, ok := vars.Get("inner"); ok {
		t.Fatalf("block local left in store: %v", vars.Names())
	}
	if got, _ := vars.Get("outer"); got != (runtime.IntegerValue{Val: 2}) {
		t.Fatalf("assignment to outer variable lost: %#v", got)
	}

	cases := []struct {
		input string
		want  runtime.Value
	}{
		{"var x = 1 { x = 5 var x = 2 } x", runtime.IntegerValue{Val: 5}},
		{"var x = 1 { var x = true x = false } x", runtime.IntegerValue{Val: 1}},
		{"var x = 1 { x = 3 { x = 4 var x = 9 } x = x + 1 var x = 0 } x", runtime.IntegerValue{Val: 5}},
		{"var n = 0 var x = 7 { var i = 0 while i < 3 { i = i + 1 } var x = i n = x } x + n", runtime.IntegerValue{Val: 10}},
	}
	for _, tc := range cases {
		got, vars := run(t, tc.input)
		if got != tc.want {
			t.Fatalf("Evaluate(%q) = %#v, want %#v", tc.input, got, tc.want)
		}
		if _, ok := vars.Get("i"); ok {
			t.Fatalf("Evaluate(%q) left a block local behind: %v", tc.input, vars.Names())
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	vars := runtime.NewVariables()
	global := bindSource(t, nil, "var a = 1 a = 2 a / 0")
	value, err := Evaluate(global.Statement, vars)
	if !errors.Is(err, runtime.ErrDivisionByZero) || value != nil {
		t.Fatalf("Evaluate = %#v, %v", value, err)
	}
	var runtimeErr *runtime.RuntimeError
	if !errors.As(err, &runtimeErr) || runtimeErr.Span != (text.Span{Start: 16, Length: 5}) {
		t.Fatalf("runtime error = %#v", err)
	}
	if got, _ := vars.Get("a"); got != (runtime.IntegerValue{Val: 2}) {
		t.Fatalf("store should keep earlier mutations, a = %#v", got)
	}

	if _, err := Evaluate(bindSource(t, nil, "10 / 0").Statement, runtime.NewVariables()); !errors.Is(err, runtime.ErrDivisionByZero) {
		t.Fatalf("10 / 0 = %v", err)
	}
}

func TestInternalInconsistencyPanics(t *testing.T) {
	expectPanic := func(name string, stmt binder.BoundStatement) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected panic", name)
			}
		}()
		_, _ = Evaluate(stmt, runtime.NewVariables())
	}
	expectPanic("error expression", &binder.ExpressionStatement{
		Expression: &binder.ErrorExpression{ResultType: binder.TypeInt},
	})
	expectPanic("unset variable", &binder.ExpressionStatement{
		Expression: &binder.VariableExpression{Variable: binder.NewVariableSymbol("ghost", false, binder.TypeInt)},
	})
}

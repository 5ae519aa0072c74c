package driver

import (
	"mini/interpreter-go/pkg/binder"
	"mini/interpreter-go/pkg/diagnostics"
	"mini/interpreter-go/pkg/interpreter"
	"mini/interpreter-go/pkg/parser"
	"mini/interpreter-go/pkg/runtime"
)

// Compilation pairs a syntax tree with the compilation it continues. Binding
// happens once, on first use, on top of the previous compilation's globals.
type Compilation struct {
	Previous *Compilation
	Tree     *parser.SyntaxTree

	globalScope *binder.GlobalScope
}

// EvaluationResult reports either diagnostics (evaluation skipped), a runtime
// failure, or the value of the last evaluated statement.
type EvaluationResult struct {
	Diagnostics []diagnostics.Diagnostic
	Value       runtime.Value
	Err         error
}

func NewCompilation(tree *parser.SyntaxTree) *Compilation {
	return &Compilation{Tree: tree}
}

// ContinueWith starts a compilation that sees every variable declared by c
// and its predecessors.
func (c *Compilation) ContinueWith(tree *parser.SyntaxTree) *Compilation {
	return &Compilation{Previous: c, Tree: tree}
}

func (c *Compilation) GlobalScope() *binder.GlobalScope {
	if c.globalScope == nil {
		var previous *binder.GlobalScope
		if c.Previous != nil {
			previous = c.Previous.GlobalScope()
		}
		c.globalScope = binder.BindGlobalScope(previous, c.Tree.Root)
	}
	return c.globalScope
}

// Diagnostics returns parse diagnostics followed by binding diagnostics.
func (c *Compilation) Diagnostics() []diagnostics.Diagnostic {
	global := c.GlobalScope()
	out := make([]diagnostics.Diagnostic, 0, len(c.Tree.Diagnostics)+len(global.Diagnostics))
	out = append(out, c.Tree.Diagnostics...)
	return append(out, global.Diagnostics...)
}

// Evaluate runs the compilation against vars unless it has diagnostics.
func (c *Compilation) Evaluate(vars *runtime.Variables) EvaluationResult {
	if diags := c.Diagnostics(); len(diags) > 0 {
		return EvaluationResult{Diagnostics: diags}
	}
	value, err := interpreter.Evaluate(c.GlobalScope().Statement, vars)
	return EvaluationResult{Value: value, Err: err}
}

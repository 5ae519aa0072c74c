package binder

import (
	"mini/interpreter-go/pkg/ast"
	"mini/interpreter-go/pkg/diagnostics"
)

// GlobalScope is the result of binding one submission. Previous links to the
// global scope of the submission before it, forming the session's chain.
type GlobalScope struct {
	Previous    *GlobalScope
	Diagnostics []diagnostics.Diagnostic
	Variables   []*VariableSymbol
	Statement   *BlockStatement
}

// BindGlobalScope binds unit on top of previous (nil for the first
// submission). Every earlier submission's variables are visible and may be
// shadowed. Diagnostics of previous come before the new ones.
func BindGlobalScope(previous *GlobalScope, unit *ast.CompilationUnit) *GlobalScope {
	scope := NewScope(createParentScope(previous))
	b := New()
	statements := make([]BoundStatement, 0, len(unit.Statements))
	for _, stmt := range unit.Statements {
		statements = append(statements, b.BindStatement(scope, stmt))
	}

	var diags []diagnostics.Diagnostic
	if previous != nil {
		diags = append(diags, previous.Diagnostics...)
	}
	diags = append(diags, b.Diagnostics()...)

	return &GlobalScope{
		Previous:    previous,
		Diagnostics: diags,
		Variables:   scope.DeclaredVariables(),
		Statement:   &BlockStatement{Statements: statements},
	}
}

// createParentScope replays the chain as nested scopes, oldest outermost.
func createParentScope(previous *GlobalScope) *Scope {
	var chain []*GlobalScope
	for g := previous; g != nil; g = g.Previous {
		chain = append(chain, g)
	}
	var parent *Scope
	for i := len(chain) - 1; i >= 0; i-- {
		scope := NewScope(parent)
		for _, variable := range chain[i].Variables {
			scope.TryDeclare(variable)
		}
		parent = scope
	}
	return parent
}

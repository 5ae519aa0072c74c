package binder

import (
	"fmt"

	"mini/interpreter-go/pkg/ast"
	"mini/interpreter-go/pkg/diagnostics"
)

// Binder type-checks syntax trees. The scope to bind in is passed explicitly
// to every bind function; the binder itself only accumulates diagnostics.
type Binder struct {
	diagnostics diagnostics.Bag
}

func New() *Binder {
	return &Binder{}
}

func (b *Binder) Diagnostics() []diagnostics.Diagnostic {
	return b.diagnostics.Items()
}

// BindStatement binds a single statement in scope.
func (b *Binder) BindStatement(scope *Scope, syntax ast.Statement) BoundStatement {
	switch s := syntax.(type) {
	case *ast.BlockStatement:
		return b.bindBlockStatement(scope, s)
	case *ast.ExpressionStatement:
		return &ExpressionStatement{Expression: b.BindExpression(scope, s.Expression)}
	case *ast.VariableDeclaration:
		return b.bindVariableDeclaration(scope, s)
	case *ast.IfStatement:
		return b.bindIfStatement(scope, s)
	case *ast.WhileStatement:
		return b.bindWhileStatement(scope, s)
	case *ast.ForStatement:
		return b.bindForStatement(scope, s)
	default:
		panic(fmt.Sprintf("binder: unexpected statement %T", syntax))
	}
}

// BindExpression binds a single expression in scope.
func (b *Binder) BindExpression(scope *Scope, syntax ast.Expression) BoundExpression {
	switch e := syntax.(type) {
	case *ast.ParenthesizedExpression:
		return b.BindExpression(scope, e.Expression)
	case *ast.LiteralExpression:
		return b.bindLiteralExpression(e)
	case *ast.NameExpression:
		return b.bindNameExpression(scope, e)
	case *ast.AssignmentExpression:
		return b.bindAssignmentExpression(scope, e)
	case *ast.UnaryExpression:
		return b.bindUnaryExpression(scope, e)
	case *ast.BinaryExpression:
		return b.bindBinaryExpression(scope, e)
	default:
		panic(fmt.Sprintf("binder: unexpected expression %T", syntax))
	}
}

// bindExpressionOfType binds syntax and requires the result to have type
// want. A mismatch is reported and replaced by an error placeholder of type
// want.
func (b *Binder) bindExpressionOfType(scope *Scope, syntax ast.Expression, want Type) BoundExpression {
	bound := b.BindExpression(scope, syntax)
	if bound.Type() != want {
		b.diagnostics.ReportCannotConvert(syntax.Span(), bound.Type(), want)
		return &ErrorExpression{ResultType: want}
	}
	return bound
}

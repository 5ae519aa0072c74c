package binder

import (
	"fmt"

	"mini/interpreter-go/pkg/ast"
	"mini/interpreter-go/pkg/runtime"
)

func (b *Binder) bindLiteralExpression(syntax *ast.LiteralExpression) BoundExpression {
	value, err := runtime.FromLiteral(syntax.Value)
	if err != nil {
		panic(fmt.Sprintf("binder: literal %q: %v", syntax.LiteralToken.Text, err))
	}
	return &LiteralExpression{Value: value}
}

func (b *Binder) bindNameExpression(scope *Scope, syntax *ast.NameExpression) BoundExpression {
	name := syntax.Identifier.Text
	variable, ok := scope.TryLookup(name)
	if !ok {
		b.diagnostics.ReportUndefinedName(syntax.Identifier.Span(), name)
		return &ErrorExpression{ResultType: TypeError}
	}
	return &VariableExpression{Variable: variable}
}

// bindAssignmentExpression binds the right-hand side first. Whenever the
// assignment itself is invalid the right-hand side is returned in its place,
// so the enclosing expression still has a value to work with.
func (b *Binder) bindAssignmentExpression(scope *Scope, syntax *ast.AssignmentExpression) BoundExpression {
	name := syntax.Identifier.Text
	bound := b.BindExpression(scope, syntax.Expression)

	variable, ok := scope.TryLookup(name)
	if !ok {
		b.diagnostics.ReportUndefinedName(syntax.Identifier.Span(), name)
		return bound
	}
	if variable.ReadOnly {
		b.diagnostics.ReportCannotAssign(syntax.Identifier.Span(), name)
		return bound
	}
	if bound.Type() != variable.Type {
		b.diagnostics.ReportCannotConvert(syntax.Expression.Span(), bound.Type(), variable.Type)
		return bound
	}
	return &AssignmentExpression{Variable: variable, Expression: bound}
}

func (b *Binder) bindUnaryExpression(scope *Scope, syntax *ast.UnaryExpression) BoundExpression {
	operand := b.BindExpression(scope, syntax.Operand)
	op, ok := BindUnaryOperator(syntax.Operator.Kind, operand.Type())
	if !ok {
		b.diagnostics.ReportUndefinedUnaryOperator(syntax.Operator.Span(), syntax.Operator.Text, operand.Type())
		return &ErrorExpression{ResultType: unaryResultType(syntax.Operator.Kind)}
	}
	return &UnaryExpression{Operator: op, Operand: operand}
}

func (b *Binder) bindBinaryExpression(scope *Scope, syntax *ast.BinaryExpression) BoundExpression {
	left := b.BindExpression(scope, syntax.Left)
	right := b.BindExpression(scope, syntax.Right)
	op, ok := BindBinaryOperator(syntax.Operator.Kind, left.Type(), right.Type())
	if !ok {
		b.diagnostics.ReportUndefinedBinaryOperator(syntax.Operator.Span(), syntax.Operator.Text, left.Type(), right.Type())
		return &ErrorExpression{ResultType: binaryResultType(syntax.Operator.Kind, left.Type(), right.Type())}
	}
	return &BinaryExpression{Left: left, Operator: op, Right: right, Span: syntax.Span()}
}

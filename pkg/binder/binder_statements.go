package binder

import "mini/interpreter-go/pkg/ast"

func (b *Binder) bindBlockStatement(scope *Scope, syntax *ast.BlockStatement) BoundStatement {
	inner := NewScope(scope)
	statements := make([]BoundStatement, 0, len(syntax.Statements))
	for _, stmt := range syntax.Statements {
		statements = append(statements, b.BindStatement(inner, stmt))
	}
	return &BlockStatement{Statements: statements, Locals: inner.DeclaredVariables()}
}

func (b *Binder) bindVariableDeclaration(scope *Scope, syntax *ast.VariableDeclaration) BoundStatement {
	name := syntax.Identifier.Text
	initializer := b.BindExpression(scope, syntax.Initializer)
	variable := NewVariableSymbol(name, syntax.IsReadOnly(), initializer.Type())
	if !syntax.Identifier.IsMissing() && !scope.TryDeclare(variable) {
		b.diagnostics.ReportVariableAlreadyDeclared(syntax.Identifier.Span(), name)
	}
	return &VariableDeclaration{Variable: variable, Initializer: initializer}
}

func (b *Binder) bindIfStatement(scope *Scope, syntax *ast.IfStatement) BoundStatement {
	condition := b.bindExpressionOfType(scope, syntax.Condition, TypeBool)
	then := b.BindStatement(scope, syntax.ThenStatement)
	var otherwise BoundStatement
	if syntax.ElseClause != nil {
		otherwise = b.BindStatement(scope, syntax.ElseClause.Statement)
	}
	return &IfStatement{Condition: condition, ThenStatement: then, ElseStatement: otherwise}
}

func (b *Binder) bindWhileStatement(scope *Scope, syntax *ast.WhileStatement) BoundStatement {
	condition := b.bindExpressionOfType(scope, syntax.Condition, TypeBool)
	body := b.BindStatement(scope, syntax.Body)
	return &WhileStatement{Condition: condition, Body: body}
}

// bindForStatement binds the bounds in the enclosing scope and the body in a
// scope that holds only the loop variable.
func (b *Binder) bindForStatement(scope *Scope, syntax *ast.ForStatement) BoundStatement {
	lower := b.bindExpressionOfType(scope, syntax.LowerBound, TypeInt)
	upper := b.bindExpressionOfType(scope, syntax.UpperBound, TypeInt)

	loopScope := NewScope(scope)
	variable := NewVariableSymbol(syntax.Identifier.Text, false, TypeInt)
	loopScope.TryDeclare(variable)
	body := b.BindStatement(loopScope, syntax.Body)
	return &ForStatement{Variable: variable, LowerBound: lower, UpperBound: upper, Body: body}
}

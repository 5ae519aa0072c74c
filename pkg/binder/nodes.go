package binder

import (
	"mini/interpreter-go/pkg/runtime"
	"mini/interpreter-go/pkg/text"
)

type BoundNodeKind string

const (
	KindLiteralExpression    BoundNodeKind = "LiteralExpression"
	KindVariableExpression   BoundNodeKind = "VariableExpression"
	KindAssignmentExpression BoundNodeKind = "AssignmentExpression"
	KindUnaryExpression      BoundNodeKind = "UnaryExpression"
	KindBinaryExpression     BoundNodeKind = "BinaryExpression"
	KindErrorExpression      BoundNodeKind = "ErrorExpression"
	KindBlockStatement       BoundNodeKind = "BlockStatement"
	KindExpressionStatement  BoundNodeKind = "ExpressionStatement"
	KindVariableDeclaration  BoundNodeKind = "VariableDeclaration"
	KindIfStatement          BoundNodeKind = "IfStatement"
	KindWhileStatement       BoundNodeKind = "WhileStatement"
	KindForStatement         BoundNodeKind = "ForStatement"
)

// BoundNode is the type-checked counterpart of an ast.Node.
type BoundNode interface {
	Kind() BoundNodeKind
	Children() []BoundNode
}

type BoundExpression interface {
	BoundNode
	Type() Type
	boundExpression()
}

type expressionMarker struct{}

func (expressionMarker) boundExpression() {}

type BoundStatement interface {
	BoundNode
	boundStatement()
}

type statementMarker struct{}

func (statementMarker) boundStatement() {}

// Expressions

type LiteralExpression struct {
	expressionMarker
	Value runtime.Value
}

func (*LiteralExpression) Kind() BoundNodeKind   { return KindLiteralExpression }
func (*LiteralExpression) Children() []BoundNode { return nil }
func (n *LiteralExpression) Type() Type          { return TypeOf(n.Value) }

type VariableExpression struct {
	expressionMarker
	Variable *VariableSymbol
}

func (*VariableExpression) Kind() BoundNodeKind   { return KindVariableExpression }
func (*VariableExpression) Children() []BoundNode { return nil }
func (n *VariableExpression) Type() Type          { return n.Variable.Type }

type AssignmentExpression struct {
	expressionMarker
	Variable   *VariableSymbol
	Expression BoundExpression
}

func (*AssignmentExpression) Kind() BoundNodeKind     { return KindAssignmentExpression }
func (n *AssignmentExpression) Children() []BoundNode { return []BoundNode{n.Expression} }
func (n *AssignmentExpression) Type() Type            { return n.Expression.Type() }

type UnaryExpression struct {
	expressionMarker
	Operator *UnaryOperator
	Operand  BoundExpression
}

func (*UnaryExpression) Kind() BoundNodeKind     { return KindUnaryExpression }
func (n *UnaryExpression) Children() []BoundNode { return []BoundNode{n.Operand} }
func (n *UnaryExpression) Type() Type            { return n.Operator.Type }

// BinaryExpression keeps the span of its syntax so runtime failures can be
// located.
type BinaryExpression struct {
	expressionMarker
	Left     BoundExpression
	Operator *BinaryOperator
	Right    BoundExpression
	Span     text.Span
}

func (*BinaryExpression) Kind() BoundNodeKind     { return KindBinaryExpression }
func (n *BinaryExpression) Children() []BoundNode { return []BoundNode{n.Left, n.Right} }
func (n *BinaryExpression) Type() Type            { return n.Operator.Type }

// ErrorExpression stands in for an expression that failed to bind. ResultType
// is the type the expression would have had, so enclosing expressions keep
// binding without reporting the same problem twice.
type ErrorExpression struct {
	expressionMarker
	ResultType Type
}

func (*ErrorExpression) Kind() BoundNodeKind   { return KindErrorExpression }
func (*ErrorExpression) Children() []BoundNode { return nil }
func (n *ErrorExpression) Type() Type          { return n.ResultType }

// Statements

// BlockStatement runs its statements in order. Locals lists the variables
// declared directly in the block's scope; the top-level block of a
// submission has none because its declarations belong to the global scope.
type BlockStatement struct {
	statementMarker
	Statements []BoundStatement
	Locals     []*VariableSymbol
}

func (*BlockStatement) Kind() BoundNodeKind { return KindBlockStatement }
func (n *BlockStatement) Children() []BoundNode {
	children := make([]BoundNode, len(n.Statements))
	for i, stmt := range n.Statements {
		children[i] = stmt
	}
	return children
}

type ExpressionStatement struct {
	statementMarker
	Expression BoundExpression
}

func (*ExpressionStatement) Kind() BoundNodeKind     { return KindExpressionStatement }
func (n *ExpressionStatement) Children() []BoundNode { return []BoundNode{n.Expression} }

type VariableDeclaration struct {
	statementMarker
	Variable    *VariableSymbol
	Initializer BoundExpression
}

func (*VariableDeclaration) Kind() BoundNodeKind     { return KindVariableDeclaration }
func (n *VariableDeclaration) Children() []BoundNode { return []BoundNode{n.Initializer} }

type IfStatement struct {
	statementMarker
	Condition     BoundExpression
	ThenStatement BoundStatement
	ElseStatement BoundStatement // nil without an else clause
}

func (*IfStatement) Kind() BoundNodeKind { return KindIfStatement }
func (n *IfStatement) Children() []BoundNode {
	children := []BoundNode{n.Condition, n.ThenStatement}
	if n.ElseStatement != nil {
		children = append(children, n.ElseStatement)
	}
	return children
}

type WhileStatement struct {
	statementMarker
	Condition BoundExpression
	Body      BoundStatement
}

func (*WhileStatement) Kind() BoundNodeKind     { return KindWhileStatement }
func (n *WhileStatement) Children() []BoundNode { return []BoundNode{n.Condition, n.Body} }

type ForStatement struct {
	statementMarker
	Variable   *VariableSymbol
	LowerBound BoundExpression
	UpperBound BoundExpression
	Body       BoundStatement
}

func (*ForStatement) Kind() BoundNodeKind { return KindForStatement }
func (n *ForStatement) Children() []BoundNode {
	return []BoundNode{n.LowerBound, n.UpperBound, n.Body}
}

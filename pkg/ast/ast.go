package ast

import "mini/interpreter-go/pkg/text"

type NodeType string

const (
	NodeToken                   NodeType = "Token"
	NodeLiteralExpression       NodeType = "LiteralExpression"
	NodeNameExpression          NodeType = "NameExpression"
	NodeUnaryExpression         NodeType = "UnaryExpression"
	NodeBinaryExpression        NodeType = "BinaryExpression"
	NodeParenthesizedExpression NodeType = "ParenthesizedExpression"
	NodeAssignmentExpression    NodeType = "AssignmentExpression"
	NodeBlockStatement          NodeType = "BlockStatement"
	NodeExpressionStatement     NodeType = "ExpressionStatement"
	NodeVariableDeclaration     NodeType = "VariableDeclaration"
	NodeIfStatement             NodeType = "IfStatement"
	NodeElseClause              NodeType = "ElseClause"
	NodeWhileStatement          NodeType = "WhileStatement"
	NodeForStatement            NodeType = "ForStatement"
	NodeCompilationUnit         NodeType = "CompilationUnit"
)

// Node is implemented by tokens and by every syntax node. Children lists the
// direct children in source order; a node's span runs from the start of its
// first child to the end of its last child.
type Node interface {
	NodeType() NodeType
	Span() text.Span
	Children() []Node
	isNode()
}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}
func (expressionMarker) isNode()         {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}
func (statementMarker) isNode()        {}

func spanOf(children []Node) text.Span {
	if len(children) == 0 {
		return text.Span{}
	}
	first := children[0].Span()
	last := children[len(children)-1].Span()
	return text.SpanFromBounds(first.Start, last.End())
}

// Expressions

// LiteralExpression is a number or boolean literal. Value is int32 or bool.
type LiteralExpression struct {
	expressionMarker

	LiteralToken Token
	Value        any
}

func NewLiteralExpression(token Token, value any) *LiteralExpression {
	return &LiteralExpression{LiteralToken: token, Value: value}
}

func (*LiteralExpression) NodeType() NodeType { return NodeLiteralExpression }
func (n *LiteralExpression) Children() []Node { return []Node{n.LiteralToken} }
func (n *LiteralExpression) Span() text.Span  { return n.LiteralToken.Span() }

type NameExpression struct {
	expressionMarker

	Identifier Token
}

func NewNameExpression(identifier Token) *NameExpression {
	return &NameExpression{Identifier: identifier}
}

func (*NameExpression) NodeType() NodeType { return NodeNameExpression }
func (n *NameExpression) Children() []Node { return []Node{n.Identifier} }
func (n *NameExpression) Span() text.Span  { return n.Identifier.Span() }

type UnaryExpression struct {
	expressionMarker

	Operator Token
	Operand  Expression
}

func NewUnaryExpression(operator Token, operand Expression) *UnaryExpression {
	return &UnaryExpression{Operator: operator, Operand: operand}
}

func (*UnaryExpression) NodeType() NodeType { return NodeUnaryExpression }
func (n *UnaryExpression) Children() []Node { return []Node{n.Operator, n.Operand} }
func (n *UnaryExpression) Span() text.Span  { return spanOf(n.Children()) }

type BinaryExpression struct {
	expressionMarker

	Left     Expression
	Operator Token
	Right    Expression
}

func NewBinaryExpression(left Expression, operator Token, right Expression) *BinaryExpression {
	return &BinaryExpression{Left: left, Operator: operator, Right: right}
}

func (*BinaryExpression) NodeType() NodeType { return NodeBinaryExpression }
func (n *BinaryExpression) Children() []Node { return []Node{n.Left, n.Operator, n.Right} }
func (n *BinaryExpression) Span() text.Span  { return spanOf(n.Children()) }

type ParenthesizedExpression struct {
	expressionMarker

	OpenParenthesis  Token
	Expression       Expression
	CloseParenthesis Token
}

func NewParenthesizedExpression(open Token, expression Expression, close Token) *ParenthesizedExpression {
	return &ParenthesizedExpression{OpenParenthesis: open, Expression: expression, CloseParenthesis: close}
}

func (*ParenthesizedExpression) NodeType() NodeType { return NodeParenthesizedExpression }
func (n *ParenthesizedExpression) Children() []Node {
	return []Node{n.OpenParenthesis, n.Expression, n.CloseParenthesis}
}
func (n *ParenthesizedExpression) Span() text.Span { return spanOf(n.Children()) }

type AssignmentExpression struct {
	expressionMarker

	Identifier  Token
	EqualsToken Token
	Expression  Expression
}

func NewAssignmentExpression(identifier, equals Token, expression Expression) *AssignmentExpression {
	return &AssignmentExpression{Identifier: identifier, EqualsToken: equals, Expression: expression}
}

func (*AssignmentExpression) NodeType() NodeType { return NodeAssignmentExpression }
func (n *AssignmentExpression) Children() []Node {
	return []Node{n.Identifier, n.EqualsToken, n.Expression}
}
func (n *AssignmentExpression) Span() text.Span { return spanOf(n.Children()) }

// Statements

type BlockStatement struct {
	statementMarker

	OpenBrace  Token
	Statements []Statement
	CloseBrace Token
}

func NewBlockStatement(open Token, statements []Statement, close Token) *BlockStatement {
	return &BlockStatement{OpenBrace: open, Statements: statements, CloseBrace: close}
}

func (*BlockStatement) NodeType() NodeType { return NodeBlockStatement }
func (n *BlockStatement) Children() []Node {
	children := make([]Node, 0, len(n.Statements)+2)
	children = append(children, n.OpenBrace)
	for _, stmt := range n.Statements {
		children = append(children, stmt)
	}
	return append(children, n.CloseBrace)
}
func (n *BlockStatement) Span() text.Span { return spanOf(n.Children()) }

type ExpressionStatement struct {
	statementMarker

	Expression Expression
}

func NewExpressionStatement(expression Expression) *ExpressionStatement {
	return &ExpressionStatement{Expression: expression}
}

func (*ExpressionStatement) NodeType() NodeType { return NodeExpressionStatement }
func (n *ExpressionStatement) Children() []Node { return []Node{n.Expression} }
func (n *ExpressionStatement) Span() text.Span  { return n.Expression.Span() }

// VariableDeclaration is `var x = e` or `let x = e`; `let` makes x read-only.
type VariableDeclaration struct {
	statementMarker

	Keyword     Token
	Identifier  Token
	EqualsToken Token
	Initializer Expression
}

func NewVariableDeclaration(keyword, identifier, equals Token, initializer Expression) *VariableDeclaration {
	return &VariableDeclaration{Keyword: keyword, Identifier: identifier, EqualsToken: equals, Initializer: initializer}
}

func (*VariableDeclaration) NodeType() NodeType { return NodeVariableDeclaration }
func (n *VariableDeclaration) Children() []Node {
	return []Node{n.Keyword, n.Identifier, n.EqualsToken, n.Initializer}
}
func (n *VariableDeclaration) Span() text.Span { return spanOf(n.Children()) }

// IsReadOnly reports whether the declaration used `let`.
func (n *VariableDeclaration) IsReadOnly() bool {
	return n.Keyword.Kind == TokenLetKeyword
}

type ElseClause struct {
	ElseKeyword Token
	Statement   Statement
}

func NewElseClause(keyword Token, statement Statement) *ElseClause {
	return &ElseClause{ElseKeyword: keyword, Statement: statement}
}

func (*ElseClause) NodeType() NodeType { return NodeElseClause }
func (n *ElseClause) Children() []Node { return []Node{n.ElseKeyword, n.Statement} }
func (n *ElseClause) Span() text.Span  { return spanOf(n.Children()) }
func (*ElseClause) isNode()            {}

type IfStatement struct {
	statementMarker

	IfKeyword     Token
	Condition     Expression
	ThenStatement Statement
	ElseClause    *ElseClause
}

func NewIfStatement(keyword Token, condition Expression, then Statement, elseClause *ElseClause) *IfStatement {
	return &IfStatement{IfKeyword: keyword, Condition: condition, ThenStatement: then, ElseClause: elseClause}
}

func (*IfStatement) NodeType() NodeType { return NodeIfStatement }
func (n *IfStatement) Children() []Node {
	children := []Node{n.IfKeyword, n.Condition, n.ThenStatement}
	if n.ElseClause != nil {
		children = append(children, n.ElseClause)
	}
	return children
}
func (n *IfStatement) Span() text.Span { return spanOf(n.Children()) }

type WhileStatement struct {
	statementMarker

	WhileKeyword Token
	Condition    Expression
	Body         Statement
}

func NewWhileStatement(keyword Token, condition Expression, body Statement) *WhileStatement {
	return &WhileStatement{WhileKeyword: keyword, Condition: condition, Body: body}
}

func (*WhileStatement) NodeType() NodeType { return NodeWhileStatement }
func (n *WhileStatement) Children() []Node {
	return []Node{n.WhileKeyword, n.Condition, n.Body}
}
func (n *WhileStatement) Span() text.Span { return spanOf(n.Children()) }

// ForStatement is `for i = lower to upper body`, iterating inclusively.
type ForStatement struct {
	statementMarker

	ForKeyword  Token
	Identifier  Token
	EqualsToken Token
	LowerBound  Expression
	ToKeyword   Token
	UpperBound  Expression
	Body        Statement
}

func NewForStatement(keyword, identifier, equals Token, lower Expression, to Token, upper Expression, body Statement) *ForStatement {
	return &ForStatement{
		ForKeyword:  keyword,
		Identifier:  identifier,
		EqualsToken: equals,
		LowerBound:  lower,
		ToKeyword:   to,
		UpperBound:  upper,
		Body:        body,
	}
}

func (*ForStatement) NodeType() NodeType { return NodeForStatement }
func (n *ForStatement) Children() []Node {
	return []Node{n.ForKeyword, n.Identifier, n.EqualsToken, n.LowerBound, n.ToKeyword, n.UpperBound, n.Body}
}
func (n *ForStatement) Span() text.Span { return spanOf(n.Children()) }

// CompilationUnit is the root of a parse: the top-level statements of one
// submission followed by the end-of-file token.
type CompilationUnit struct {
	Statements     []Statement
	EndOfFileToken Token
}

func NewCompilationUnit(statements []Statement, eof Token) *CompilationUnit {
	return &CompilationUnit{Statements: statements, EndOfFileToken: eof}
}

func (*CompilationUnit) NodeType() NodeType { return NodeCompilationUnit }
func (n *CompilationUnit) Children() []Node {
	children := make([]Node, 0, len(n.Statements)+1)
	for _, stmt := range n.Statements {
		children = append(children, stmt)
	}
	return append(children, n.EndOfFileToken)
}
func (n *CompilationUnit) Span() text.Span { return spanOf(n.Children()) }
func (*CompilationUnit) isNode()           {}

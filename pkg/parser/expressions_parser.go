package parser

import "mini/interpreter-go/pkg/ast"

func (p *Parser) parseExpression() ast.Expression {
	return p.parseBinaryExpression(0)
}

// parseBinaryExpression is a precedence climber. Operators at or below
// parentPrecedence are left for the caller, which makes every binary level
// left-associative. An identifier followed by `=` starts an assignment at any
// level.
func (p *Parser) parseBinaryExpression(parentPrecedence int) ast.Expression {
	if p.current().Kind == ast.TokenIdentifier && p.peek(1).Kind == ast.TokenEquals {
		return p.parseAssignmentExpression()
	}

	var left ast.Expression
	if precedence := ast.UnaryOperatorPrecedence(p.current().Kind); precedence != 0 && precedence >= parentPrecedence {
		operator := p.nextToken()
		operand := p.parseBinaryExpression(precedence)
		left = ast.NewUnaryExpression(operator, operand)
	} else {
		left = p.parsePrimaryExpression()
	}

	for {
		precedence := ast.BinaryOperatorPrecedence(p.current().Kind)
		if precedence == 0 || precedence <= parentPrecedence {
			break
		}
		operator := p.nextToken()
		p.skipNewLines()
		right := p.parseBinaryExpression(precedence)
		left = ast.NewBinaryExpression(left, operator, right)
	}
	return left
}

// parseAssignmentExpression parses the right-hand side as a full expression,
// so `a = b = 1` nests to the right.
func (p *Parser) parseAssignmentExpression() ast.Expression {
	identifier := p.nextToken()
	equals := p.nextToken()
	p.skipNewLines()
	return ast.NewAssignmentExpression(identifier, equals, p.parseExpression())
}

func (p *Parser) parsePrimaryExpression() ast.Expression {
	switch p.current().Kind {
	case ast.TokenOpenParenthesis:
		open := p.nextToken()
		p.skipNewLines()
		expression := p.parseExpression()
		p.skipNewLines()
		close := p.match(ast.TokenCloseParenthesis)
		return ast.NewParenthesizedExpression(open, expression, close)
	case ast.TokenTrueKeyword, ast.TokenFalseKeyword:
		keyword := p.nextToken()
		return ast.NewLiteralExpression(keyword, keyword.Kind == ast.TokenTrueKeyword)
	case ast.TokenIdentifier:
		return ast.NewNameExpression(p.nextToken())
	default:
		number := p.match(ast.TokenNumber)
		// invalid or synthesized numbers carry no value and read as zero
		value, _ := number.Value.(int32)
		return ast.NewLiteralExpression(number, value)
	}
}

package parser

import "mini/interpreter-go/pkg/ast"

func (p *Parser) parseStatement() ast.Statement {
	p.skipNewLines()
	switch p.current().Kind {
	case ast.TokenOpenBrace:
		return p.parseBlockStatement()
	case ast.TokenLetKeyword, ast.TokenVarKeyword:
		return p.parseVariableDeclaration()
	case ast.TokenIfKeyword:
		return p.parseIfStatement()
	case ast.TokenWhileKeyword:
		return p.parseWhileStatement()
	case ast.TokenForKeyword:
		return p.parseForStatement()
	default:
		return ast.NewExpressionStatement(p.parseExpression())
	}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	open := p.match(ast.TokenOpenBrace)
	statements := p.parseStatementList(ast.TokenCloseBrace)
	close := p.match(ast.TokenCloseBrace)
	return ast.NewBlockStatement(open, statements, close)
}

func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	keyword := p.nextToken()
	identifier := p.match(ast.TokenIdentifier)
	equals := p.match(ast.TokenEquals)
	p.skipNewLines()
	initializer := p.parseExpression()
	return ast.NewVariableDeclaration(keyword, identifier, equals, initializer)
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	keyword := p.match(ast.TokenIfKeyword)
	condition := p.parseExpression()
	then := p.parseStatement()
	return ast.NewIfStatement(keyword, condition, then, p.parseElseClause())
}

// parseElseClause looks past line breaks so an else on the following line
// still belongs to the preceding if. The line breaks are left alone when no
// else follows.
func (p *Parser) parseElseClause() *ast.ElseClause {
	offset := 0
	for p.peek(offset).Kind == ast.TokenNewLine {
		offset++
	}
	if p.peek(offset).Kind != ast.TokenElseKeyword {
		return nil
	}
	p.skipNewLines()
	keyword := p.nextToken()
	return ast.NewElseClause(keyword, p.parseStatement())
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	keyword := p.match(ast.TokenWhileKeyword)
	condition := p.parseExpression()
	body := p.parseStatement()
	return ast.NewWhileStatement(keyword, condition, body)
}

func (p *Parser) parseForStatement() *ast.ForStatement {
	keyword := p.match(ast.TokenForKeyword)
	identifier := p.match(ast.TokenIdentifier)
	equals := p.match(ast.TokenEquals)
	lower := p.parseExpression()
	to := p.match(ast.TokenToKeyword)
	upper := p.parseExpression()
	body := p.parseStatement()
	return ast.NewForStatement(keyword, identifier, equals, lower, to, upper, body)
}

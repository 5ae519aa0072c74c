package parser

import (
	"mini/interpreter-go/pkg/ast"
	"mini/interpreter-go/pkg/diagnostics"
	"mini/interpreter-go/pkg/text"
)

// Parser is a recursive-descent parser over the significant tokens of one
// source text. It never fails: missing tokens are synthesized with empty text
// and reported as diagnostics.
type Parser struct {
	source      *text.SourceText
	tokens      []ast.Token
	position    int
	diagnostics diagnostics.Bag
}

// NewParser lexes the whole source up front. Whitespace and bad tokens are
// dropped; the token list always ends with exactly one end-of-file token.
func NewParser(source *text.SourceText) *Parser {
	lexer := NewLexer(source)
	var tokens []ast.Token
	for {
		token := lexer.Lex()
		if token.Kind == ast.TokenWhitespace || token.Kind == ast.TokenBad {
			continue
		}
		tokens = append(tokens, token)
		if token.Kind == ast.TokenEndOfFile {
			break
		}
	}
	p := &Parser{source: source, tokens: tokens}
	p.diagnostics.Extend(lexer.Diagnostics())
	return p
}

func (p *Parser) Diagnostics() []diagnostics.Diagnostic {
	return p.diagnostics.Items()
}

func (p *Parser) peek(offset int) ast.Token {
	index := p.position + offset
	if index >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[index]
}

func (p *Parser) current() ast.Token {
	return p.peek(0)
}

func (p *Parser) nextToken() ast.Token {
	token := p.current()
	if p.position < len(p.tokens)-1 {
		p.position++
	}
	return token
}

// match consumes the current token when it has the wanted kind. Otherwise it
// reports the mismatch and returns a zero-length stand-in without consuming.
func (p *Parser) match(kind ast.TokenKind) ast.Token {
	if p.current().Kind == kind {
		return p.nextToken()
	}
	current := p.current()
	p.diagnostics.ReportUnexpectedToken(current.Span(), current.Kind, kind)
	return ast.Token{Kind: kind, Position: current.Position}
}

func (p *Parser) skipNewLines() {
	for p.current().Kind == ast.TokenNewLine {
		p.nextToken()
	}
}

func (p *Parser) skipSeparators() {
	for kind := p.current().Kind; kind == ast.TokenNewLine || kind == ast.TokenSemicolon; kind = p.current().Kind {
		p.nextToken()
	}
}

func (p *Parser) atEnd() bool {
	return p.current().Kind == ast.TokenEndOfFile
}

// ParseCompilationUnit parses every top-level statement up to end of file.
func (p *Parser) ParseCompilationUnit() *ast.CompilationUnit {
	statements := p.parseStatementList(ast.TokenEndOfFile)
	eof := p.match(ast.TokenEndOfFile)
	return ast.NewCompilationUnit(statements, eof)
}

// parseStatementList parses statements until the closing kind or end of file.
// A statement that consumes nothing has its first token skipped so the loop
// always advances.
func (p *Parser) parseStatementList(closing ast.TokenKind) []ast.Statement {
	var statements []ast.Statement
	p.skipSeparators()
	for !p.atEnd() && p.current().Kind != closing {
		start := p.position
		statements = append(statements, p.parseStatement())
		if p.position == start {
			p.nextToken()
		}
		p.skipSeparators()
	}
	return statements
}

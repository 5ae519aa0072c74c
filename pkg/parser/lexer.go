package parser

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"mini/interpreter-go/pkg/ast"
	"mini/interpreter-go/pkg/diagnostics"
	"mini/interpreter-go/pkg/text"
)

// Lexer turns source text into tokens, one per Lex call. Malformed input never
// stops it: problems are reported as diagnostics alongside a best-effort token.
type Lexer struct {
	source      *text.SourceText
	input       string
	position    int
	diagnostics diagnostics.Bag
}

func NewLexer(source *text.SourceText) *Lexer {
	return &Lexer{source: source, input: source.String()}
}

func (l *Lexer) Diagnostics() []diagnostics.Diagnostic {
	return l.diagnostics.Items()
}

func (l *Lexer) current() rune {
	return l.peek(0)
}

// peek decodes the rune starting offset bytes past the cursor, or 0 at the end.
func (l *Lexer) peek(offset int) rune {
	index := l.position + offset
	if index >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[index:])
	return r
}

func (l *Lexer) advance() {
	_, width := utf8.DecodeRuneInString(l.input[l.position:])
	l.position += width
}

// Lex returns the next token. Once the input is exhausted it keeps returning
// an end-of-file token positioned at the end of the text.
func (l *Lexer) Lex() ast.Token {
	if l.position >= len(l.input) {
		return ast.Token{Kind: ast.TokenEndOfFile, Position: len(l.input)}
	}

	start := l.position
	c := l.current()
	switch {
	case isDigit(c):
		return l.lexNumber()
	case c == ' ' || c == '\t':
		for c := l.current(); c == ' ' || c == '\t'; c = l.current() {
			l.advance()
		}
		return l.token(ast.TokenWhitespace, start, nil)
	case c == '\r':
		l.advance()
		if l.current() == '\n' {
			l.advance()
		}
		return l.token(ast.TokenNewLine, start, nil)
	case c == '\n':
		l.advance()
		return l.token(ast.TokenNewLine, start, nil)
	case unicode.IsLetter(c):
		return l.lexIdentifierOrKeyword()
	}

	if kind, width := l.operator(c); width > 0 {
		l.position += width
		return l.token(kind, start, nil)
	}

	l.advance()
	l.diagnostics.ReportBadCharacter(text.SpanFromBounds(start, l.position), c)
	return l.token(ast.TokenBad, start, nil)
}

func (l *Lexer) lexNumber() ast.Token {
	start := l.position
	for isDigit(l.current()) {
		l.advance()
	}
	literal := l.input[start:l.position]
	parsed, err := strconv.ParseInt(literal, 10, 32)
	if err != nil {
		l.diagnostics.ReportInvalidNumber(text.SpanFromBounds(start, l.position), literal, "Int")
		return l.token(ast.TokenNumber, start, nil)
	}
	return l.token(ast.TokenNumber, start, int32(parsed))
}

func (l *Lexer) lexIdentifierOrKeyword() ast.Token {
	start := l.position
	for c := l.current(); unicode.IsLetter(c) || unicode.IsDigit(c); c = l.current() {
		l.advance()
	}
	word := l.input[start:l.position]
	kind := ast.KeywordKind(word)
	var value any
	switch kind {
	case ast.TokenTrueKeyword:
		value = true
	case ast.TokenFalseKeyword:
		value = false
	}
	return l.token(kind, start, value)
}

// operator matches punctuation greedily: two-character operators win over
// their one-character prefixes.
func (l *Lexer) operator(c rune) (ast.TokenKind, int) {
	next := l.peek(1)
	switch c {
	case '+':
		return ast.TokenPlus, 1
	case '-':
		return ast.TokenMinus, 1
	case '*':
		return ast.TokenStar, 1
	case '/':
		return ast.TokenSlash, 1
	case '(':
		return ast.TokenOpenParenthesis, 1
	case ')':
		return ast.TokenCloseParenthesis, 1
	case '{':
		return ast.TokenOpenBrace, 1
	case '}':
		return ast.TokenCloseBrace, 1
	case ';':
		return ast.TokenSemicolon, 1
	case '=':
		if next == '=' {
			return ast.TokenEqualsEquals, 2
		}
		return ast.TokenEquals, 1
	case '!':
		if next == '=' {
			return ast.TokenBangEquals, 2
		}
		return ast.TokenBang, 1
	case '&':
		if next == '&' {
			return ast.TokenAmpersandAmpersand, 2
		}
		return ast.TokenAmpersand, 1
	case '|':
		if next == '|' {
			return ast.TokenPipePipe, 2
		}
		return ast.TokenPipe, 1
	case '<':
		if next == '=' {
			return ast.TokenLessEquals, 2
		}
		return ast.TokenLess, 1
	case '>':
		if next == '=' {
			return ast.TokenGreaterEquals, 2
		}
		return ast.TokenGreater, 1
	}
	return ast.TokenBad, 0
}

func (l *Lexer) token(kind ast.TokenKind, start int, value any) ast.Token {
	return ast.Token{Kind: kind, Position: start, Text: l.input[start:l.position], Value: value}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

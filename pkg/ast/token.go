package ast

import (
	"fmt"

	"mini/interpreter-go/pkg/text"
)

// TokenKind tags a lexical token.
type TokenKind int

const (
	TokenBad TokenKind = iota
	TokenEndOfFile
	TokenWhitespace
	TokenNewLine
	TokenNumber
	TokenIdentifier

	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenBang
	TokenEquals
	TokenEqualsEquals
	TokenBangEquals
	TokenLess
	TokenLessEquals
	TokenGreater
	TokenGreaterEquals
	TokenAmpersand
	TokenAmpersandAmpersand
	TokenPipe
	TokenPipePipe
	TokenOpenParenthesis
	TokenCloseParenthesis
	TokenOpenBrace
	TokenCloseBrace
	TokenSemicolon

	TokenTrueKeyword
	TokenFalseKeyword
	TokenNullKeyword
	TokenIfKeyword
	TokenElseKeyword
	TokenWhileKeyword
	TokenForKeyword
	TokenToKeyword
	TokenVarKeyword
	TokenLetKeyword
	TokenReturnKeyword
)

var tokenKindNames = [...]string{
	TokenBad:                "BadToken",
	TokenEndOfFile:          "EndOfFileToken",
	TokenWhitespace:         "WhitespaceToken",
	TokenNewLine:            "NewLineToken",
	TokenNumber:             "NumberToken",
	TokenIdentifier:         "IdentifierToken",
	TokenPlus:               "PlusToken",
	TokenMinus:              "MinusToken",
	TokenStar:               "StarToken",
	TokenSlash:              "SlashToken",
	TokenBang:               "BangToken",
	TokenEquals:             "EqualsToken",
	TokenEqualsEquals:       "EqualsEqualsToken",
	TokenBangEquals:         "BangEqualsToken",
	TokenLess:               "LessToken",
	TokenLessEquals:         "LessEqualsToken",
	TokenGreater:            "GreaterToken",
	TokenGreaterEquals:      "GreaterEqualsToken",
	TokenAmpersand:          "AmpersandToken",
	TokenAmpersandAmpersand: "AmpersandAmpersandToken",
	TokenPipe:               "PipeToken",
	TokenPipePipe:           "PipePipeToken",
	TokenOpenParenthesis:    "OpenParenthesisToken",
	TokenCloseParenthesis:   "CloseParenthesisToken",
	TokenOpenBrace:          "OpenBraceToken",
	TokenCloseBrace:         "CloseBraceToken",
	TokenSemicolon:          "SemicolonToken",
	TokenTrueKeyword:        "TrueKeyword",
	TokenFalseKeyword:       "FalseKeyword",
	TokenNullKeyword:        "NullKeyword",
	TokenIfKeyword:          "IfKeyword",
	TokenElseKeyword:        "ElseKeyword",
	TokenWhileKeyword:       "WhileKeyword",
	TokenForKeyword:         "ForKeyword",
	TokenToKeyword:          "ToKeyword",
	TokenVarKeyword:         "VarKeyword",
	TokenLetKeyword:         "LetKeyword",
	TokenReturnKeyword:      "ReturnKeyword",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) && tokenKindNames[k] != "" {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsKeyword reports whether k belongs to the fixed keyword table.
func (k TokenKind) IsKeyword() bool {
	return k >= TokenTrueKeyword && k <= TokenReturnKeyword
}

// TokenKinds lists every token kind in declaration order.
func TokenKinds() []TokenKind {
	kinds := make([]TokenKind, 0, len(tokenKindNames))
	for k := range tokenKindNames {
		kinds = append(kinds, TokenKind(k))
	}
	return kinds
}

// Token is an immutable lexical unit. Value holds the literal payload: int32
// for numbers, bool for true/false, nil otherwise. Tokens synthesized by the
// parser to recover from errors have empty Text.
type Token struct {
	Kind     TokenKind
	Position int
	Text     string
	Value    any
}

func (t Token) NodeType() NodeType { return NodeToken }

func (t Token) Span() text.Span {
	return text.Span{Start: t.Position, Length: len(t.Text)}
}

func (Token) Children() []Node { return nil }

func (Token) isNode() {}

// IsMissing reports whether the parser synthesized this token.
func (t Token) IsMissing() bool {
	return t.Text == "" && t.Kind != TokenEndOfFile
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q @%d", t.Kind, t.Text, t.Position)
}

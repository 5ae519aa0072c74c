package ast

var keywords = map[string]TokenKind{
	"true":   TokenTrueKeyword,
	"false":  TokenFalseKeyword,
	"null":   TokenNullKeyword,
	"if":     TokenIfKeyword,
	"else":   TokenElseKeyword,
	"while":  TokenWhileKeyword,
	"for":    TokenForKeyword,
	"to":     TokenToKeyword,
	"var":    TokenVarKeyword,
	"let":    TokenLetKeyword,
	"return": TokenReturnKeyword,
}

// KeywordKind resolves an identifier-shaped word against the keyword table.
func KeywordKind(word string) TokenKind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return TokenIdentifier
}

// FixedText returns the spelling of tokens whose text never varies, or "".
func FixedText(kind TokenKind) string {
	switch kind {
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenBang:
		return "!"
	case TokenEquals:
		return "="
	case TokenEqualsEquals:
		return "=="
	case TokenBangEquals:
		return "!="
	case TokenLess:
		return "<"
	case TokenLessEquals:
		return "<="
	case TokenGreater:
		return ">"
	case TokenGreaterEquals:
		return ">="
	case TokenAmpersand:
		return "&"
	case TokenAmpersandAmpersand:
		return "&&"
	case TokenPipe:
		return "|"
	case TokenPipePipe:
		return "||"
	case TokenOpenParenthesis:
		return "("
	case TokenCloseParenthesis:
		return ")"
	case TokenOpenBrace:
		return "{"
	case TokenCloseBrace:
		return "}"
	case TokenSemicolon:
		return ";"
	}
	for word, k := range keywords {
		if k == kind {
			return word
		}
	}
	return ""
}

// UnaryOperatorPrecedence is non-zero for prefix operators. Prefix operators
// bind tighter than every binary operator.
func UnaryOperatorPrecedence(kind TokenKind) int {
	switch kind {
	case TokenPlus, TokenMinus, TokenBang:
		return 7
	default:
		return 0
	}
}

// BinaryOperatorPrecedence is non-zero for infix operators; higher binds tighter.
func BinaryOperatorPrecedence(kind TokenKind) int {
	switch kind {
	case TokenStar, TokenSlash:
		return 6
	case TokenPlus, TokenMinus:
		return 5
	case TokenLess, TokenLessEquals, TokenGreater, TokenGreaterEquals:
		return 4
	case TokenEqualsEquals, TokenBangEquals:
		return 3
	case TokenAmpersand, TokenAmpersandAmpersand:
		return 2
	case TokenPipe, TokenPipePipe:
		return 1
	default:
		return 0
	}
}

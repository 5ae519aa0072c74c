package parser

import (
	"iter"

	"mini/interpreter-go/pkg/ast"
	"mini/interpreter-go/pkg/diagnostics"
	"mini/interpreter-go/pkg/text"
)

// SyntaxTree is the result of parsing one source text.
type SyntaxTree struct {
	Source      *text.SourceText
	Root        *ast.CompilationUnit
	Diagnostics []diagnostics.Diagnostic
}

// ParseTree parses source. Lexer diagnostics come first, in source order,
// followed by parser diagnostics.
func ParseTree(source *text.SourceText) *SyntaxTree {
	p := NewParser(source)
	root := p.ParseCompilationUnit()
	return &SyntaxTree{Source: source, Root: root, Diagnostics: p.Diagnostics()}
}

// Parse is ParseTree for a plain string.
func Parse(input string) (*ast.CompilationUnit, []diagnostics.Diagnostic) {
	tree := ParseTree(text.NewSourceText(input))
	return tree.Root, tree.Diagnostics
}

// ParseTokens lexes input lazily. Every token is yielded, whitespace, line
// breaks and bad characters included; the end-of-file token is not. Each
// iteration starts a fresh lexer, and lexer diagnostics are discarded.
func ParseTokens(input string) iter.Seq[ast.Token] {
	return func(yield func(ast.Token) bool) {
		lexer := NewLexer(text.NewSourceText(input))
		for {
			token := lexer.Lex()
			if token.Kind == ast.TokenEndOfFile || !yield(token) {
				return
			}
		}
	}
}

package driver

import (
	"mini/interpreter-go/pkg/parser"
	"mini/interpreter-go/pkg/runtime"
	"mini/interpreter-go/pkg/text"
)

// Session evaluates a series of submissions that share variables. Only
// submissions that evaluate cleanly extend the chain; a failed submission
// leaves both the chain and the store as they were.
type Session struct {
	vars     *runtime.Variables
	previous *Compilation
}

func NewSession() *Session {
	return &Session{vars: runtime.NewVariables()}
}

func (s *Session) Submit(input string) (EvaluationResult, *parser.SyntaxTree) {
	tree := parser.ParseTree(text.NewSourceText(input))
	compilation := NewCompilation(tree)
	if s.previous != nil {
		compilation = s.previous.ContinueWith(tree)
	}

	snapshot := s.vars.Snapshot()
	result := compilation.Evaluate(s.vars)
	if len(result.Diagnostics) == 0 {
		if result.Err != nil {
			s.vars.Restore(snapshot)
		} else {
			s.previous = compilation
		}
	}
	return result, tree
}

// Reset forgets every submission and variable.
func (s *Session) Reset() {
	s.previous = nil
	s.vars = runtime.NewVariables()
}

// Current returns the compilation of the last submission that evaluated
// cleanly, or nil.
func (s *Session) Current() *Compilation {
	return s.previous
}

func (s *Session) Variables() *runtime.Variables {
	return s.vars
}

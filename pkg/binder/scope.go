package binder

// Scope is one level of name bindings linked to its enclosing scope.
type Scope struct {
	parent    *Scope
	variables map[string]*VariableSymbol
	declared  []*VariableSymbol
}

// NewScope creates a scope nested under parent (nil for an outermost scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, variables: make(map[string]*VariableSymbol)}
}

// Parent exposes the enclosing scope (nil when outermost).
func (s *Scope) Parent() *Scope {
	return s.parent
}

// TryDeclare adds variable unless this scope already declares the name.
// Names in enclosing scopes may be shadowed.
func (s *Scope) TryDeclare(variable *VariableSymbol) bool {
	if _, exists := s.variables[variable.Name]; exists {
		return false
	}
	s.variables[variable.Name] = variable
	s.declared = append(s.declared, variable)
	return true
}

// TryLookup resolves name, searching outward through the scope chain.
func (s *Scope) TryLookup(name string) (*VariableSymbol, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if variable, ok := scope.variables[name]; ok {
			return variable, true
		}
	}
	return nil, false
}

// DeclaredVariables returns the variables of this scope in declaration order.
func (s *Scope) DeclaredVariables() []*VariableSymbol {
	out := make([]*VariableSymbol, len(s.declared))
	copy(out, s.declared)
	return out
}

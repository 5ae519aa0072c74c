package binder

import "fmt"

// VariableSymbol identifies one declared variable. Its type is fixed at
// declaration.
type VariableSymbol struct {
	Name     string
	ReadOnly bool
	Type     Type
}

func NewVariableSymbol(name string, readOnly bool, typ Type) *VariableSymbol {
	return &VariableSymbol{Name: name, ReadOnly: readOnly, Type: typ}
}

func (v *VariableSymbol) String() string {
	keyword := "var"
	if v.ReadOnly {
		keyword = "let"
	}
	return fmt.Sprintf("%s %s: %s", keyword, v.Name, v.Type)
}

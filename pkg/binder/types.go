package binder

import (
	"fmt"

	"mini/interpreter-go/pkg/runtime"
)

// Type is the static type of a bound expression.
type Type string

const (
	TypeInt  Type = "int"
	TypeBool Type = "bool"
	// TypeError marks expressions that failed to bind. It only appears in
	// trees that also carry diagnostics.
	TypeError Type = "?"
)

func (t Type) String() string { return string(t) }

// TypeOf returns the static type matching a runtime value.
func TypeOf(value runtime.Value) Type {
	switch value.Kind() {
	case runtime.KindInteger:
		return TypeInt
	case runtime.KindBool:
		return TypeBool
	default:
		panic(fmt.Sprintf("binder: no static type for %s", value.Kind()))
	}
}

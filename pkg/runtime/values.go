package runtime

import (
	"fmt"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "int"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
	String() string
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

// IntegerValue is a 32-bit signed integer. Arithmetic on it wraps.
type IntegerValue struct {
	Val int32
}

func (v IntegerValue) Kind() Kind { return KindInteger }

func (v IntegerValue) String() string { return strconv.FormatInt(int64(v.Val), 10) }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

func (v BoolValue) String() string { return strconv.FormatBool(v.Val) }

// FromLiteral converts a literal payload produced by the parser.
func FromLiteral(literal any) (Value, error) {
	switch v := literal.(type) {
	case int32:
		return IntegerValue{Val: v}, nil
	case bool:
		return BoolValue{Val: v}, nil
	default:
		return nil, fmt.Errorf("runtime: unsupported literal %T", literal)
	}
}

// Format renders a value for display; a nil value prints as "nil".
func Format(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}

// ValuesEqual compares two values of the same kind. Values of different kinds
// are never equal.
func ValuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case IntegerValue:
		bv, ok := b.(IntegerValue)
		return ok && av.Val == bv.Val
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av.Val == bv.Val
	default:
		return false
	}
}

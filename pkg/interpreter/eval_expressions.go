package interpreter

import (
	"fmt"

	"mini/interpreter-go/pkg/binder"
	"mini/interpreter-go/pkg/runtime"
)

func (e *evaluator) evaluateExpression(node binder.BoundExpression) (runtime.Value, error) {
	switch n := node.(type) {
	case *binder.LiteralExpression:
		return n.Value, nil
	case *binder.VariableExpression:
		value, ok := e.vars.Get(n.Variable.Name)
		if !ok {
			panic(fmt.Sprintf("interpreter: variable %q has no value", n.Variable.Name))
		}
		return value, nil
	case *binder.AssignmentExpression:
		value, err := e.evaluateExpression(n.Expression)
		if err != nil {
			return nil, err
		}
		e.vars.Set(n.Variable.Name, value)
		return value, nil
	case *binder.UnaryExpression:
		return e.evaluateUnaryExpression(n)
	case *binder.BinaryExpression:
		return e.evaluateBinaryExpression(n)
	default:
		panic(fmt.Sprintf("interpreter: unexpected expression %T", node))
	}
}

func (e *evaluator) evaluateCondition(node binder.BoundExpression) (bool, error) {
	value, err := e.evaluateExpression(node)
	if err != nil {
		return false, err
	}
	return asBool(value), nil
}

func (e *evaluator) evaluateInteger(node binder.BoundExpression) (int32, error) {
	value, err := e.evaluateExpression(node)
	if err != nil {
		return 0, err
	}
	return asInt(value), nil
}

func (e *evaluator) evaluateUnaryExpression(n *binder.UnaryExpression) (runtime.Value, error) {
	operand, err := e.evaluateExpression(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Operator.Kind {
	case binder.UnaryIdentity:
		return runtime.IntegerValue{Val: asInt(operand)}, nil
	case binder.UnaryNegation:
		return runtime.IntegerValue{Val: -asInt(operand)}, nil
	case binder.UnaryLogicalNegation:
		return runtime.BoolValue{Val: !asBool(operand)}, nil
	default:
		panic(fmt.Sprintf("interpreter: unexpected unary operator %s", n.Operator.Kind))
	}
}

func (e *evaluator) evaluateBinaryExpression(n *binder.BinaryExpression) (runtime.Value, error) {
	left, err := e.evaluateExpression(n.Left)
	if err != nil {
		return nil, err
	}
	switch n.Operator.Kind {
	case binder.BinaryLogicalAnd:
		if !asBool(left) {
			return runtime.BoolValue{Val: false}, nil
		}
		return e.evaluateExpression(n.Right)
	case binder.BinaryLogicalOr:
		if asBool(left) {
			return runtime.BoolValue{Val: true}, nil
		}
		return e.evaluateExpression(n.Right)
	}

	right, err := e.evaluateExpression(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Operator.Kind {
	case binder.BinaryEquals:
		return runtime.BoolValue{Val: runtime.ValuesEqual(left, right)}, nil
	case binder.BinaryNotEquals:
		return runtime.BoolValue{Val: !runtime.ValuesEqual(left, right)}, nil
	}
	if n.Operator.Type == binder.TypeBool && n.Operator.LeftType == binder.TypeBool {
		return evaluateBooleanOperation(n.Operator.Kind, asBool(left), asBool(right)), nil
	}
	return evaluateIntegerOperation(n, asInt(left), asInt(right))
}

func evaluateBooleanOperation(kind binder.BinaryOperatorKind, l, r bool) runtime.Value {
	switch kind {
	case binder.BinaryBitwiseAnd:
		return runtime.BoolValue{Val: l && r}
	case binder.BinaryBitwiseOr:
		return runtime.BoolValue{Val: l || r}
	default:
		panic(fmt.Sprintf("interpreter: unexpected boolean operator %s", kind))
	}
}

// evaluateIntegerOperation applies 32-bit two's-complement arithmetic.
func evaluateIntegerOperation(n *binder.BinaryExpression, l, r int32) (runtime.Value, error) {
	switch n.Operator.Kind {
	case binder.BinaryAddition:
		return runtime.IntegerValue{Val: l + r}, nil
	case binder.BinarySubtraction:
		return runtime.IntegerValue{Val: l - r}, nil
	case binder.BinaryMultiplication:
		return runtime.IntegerValue{Val: l * r}, nil
	case binder.BinaryDivision:
		if r == 0 {
			return nil, runtime.NewDivisionByZeroError(n.Span)
		}
		return runtime.IntegerValue{Val: l / r}, nil
	case binder.BinaryBitwiseAnd:
		return runtime.IntegerValue{Val: l & r}, nil
	case binder.BinaryBitwiseOr:
		return runtime.IntegerValue{Val: l | r}, nil
	case binder.BinaryLess:
		return runtime.BoolValue{Val: l < r}, nil
	case binder.BinaryLessOrEquals:
		return runtime.BoolValue{Val: l <= r}, nil
	case binder.BinaryGreater:
		return runtime.BoolValue{Val: l > r}, nil
	case binder.BinaryGreaterOrEquals:
		return runtime.BoolValue{Val: l >= r}, nil
	default:
		panic(fmt.Sprintf("interpreter: unexpected integer operator %s", n.Operator.Kind))
	}
}

func asInt(value runtime.Value) int32 {
	v, ok := value.(runtime.IntegerValue)
	if !ok {
		panic(fmt.Sprintf("interpreter: expected int, got %s", runtime.Format(value)))
	}
	return v.Val
}

func asBool(value runtime.Value) bool {
	v, ok := value.(runtime.BoolValue)
	if !ok {
		panic(fmt.Sprintf("interpreter: expected bool, got %s", runtime.Format(value)))
	}
	return v.Val
}

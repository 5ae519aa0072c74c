package binder

import (
	"fmt"

	"mini/interpreter-go/pkg/ast"
)

type UnaryOperatorKind int

const (
	UnaryIdentity UnaryOperatorKind = iota
	UnaryNegation
	UnaryLogicalNegation
)

func (k UnaryOperatorKind) String() string {
	switch k {
	case UnaryIdentity:
		return "Identity"
	case UnaryNegation:
		return "Negation"
	case UnaryLogicalNegation:
		return "LogicalNegation"
	default:
		return fmt.Sprintf("UnaryOperatorKind(%d)", int(k))
	}
}

type BinaryOperatorKind int

const (
	BinaryAddition BinaryOperatorKind = iota
	BinarySubtraction
	BinaryMultiplication
	BinaryDivision
	// BinaryBitwiseAnd and BinaryBitwiseOr are bitwise on ints and eager
	// logical operators on bools.
	BinaryBitwiseAnd
	BinaryBitwiseOr
	BinaryLogicalAnd
	BinaryLogicalOr
	BinaryEquals
	BinaryNotEquals
	BinaryLess
	BinaryLessOrEquals
	BinaryGreater
	BinaryGreaterOrEquals
)

var binaryOperatorKindNames = [...]string{
	BinaryAddition:        "Addition",
	BinarySubtraction:     "Subtraction",
	BinaryMultiplication:  "Multiplication",
	BinaryDivision:        "Division",
	BinaryBitwiseAnd:      "BitwiseAnd",
	BinaryBitwiseOr:       "BitwiseOr",
	BinaryLogicalAnd:      "LogicalAnd",
	BinaryLogicalOr:       "LogicalOr",
	BinaryEquals:          "Equals",
	BinaryNotEquals:       "NotEquals",
	BinaryLess:            "Less",
	BinaryLessOrEquals:    "LessOrEquals",
	BinaryGreater:         "Greater",
	BinaryGreaterOrEquals: "GreaterOrEquals",
}

func (k BinaryOperatorKind) String() string {
	if k >= 0 && int(k) < len(binaryOperatorKindNames) {
		return binaryOperatorKindNames[k]
	}
	return fmt.Sprintf("BinaryOperatorKind(%d)", int(k))
}

// UnaryOperator is one row of the unary operator table.
type UnaryOperator struct {
	SyntaxKind  ast.TokenKind
	Kind        UnaryOperatorKind
	OperandType Type
	Type        Type
}

// BinaryOperator is one row of the binary operator table.
type BinaryOperator struct {
	SyntaxKind ast.TokenKind
	Kind       BinaryOperatorKind
	LeftType   Type
	RightType  Type
	Type       Type
}

var unaryOperators = []*UnaryOperator{
	{ast.TokenPlus, UnaryIdentity, TypeInt, TypeInt},
	{ast.TokenMinus, UnaryNegation, TypeInt, TypeInt},
	{ast.TokenBang, UnaryLogicalNegation, TypeBool, TypeBool},
}

var binaryOperators = []*BinaryOperator{
	{ast.TokenPlus, BinaryAddition, TypeInt, TypeInt, TypeInt},
	{ast.TokenMinus, BinarySubtraction, TypeInt, TypeInt, TypeInt},
	{ast.TokenStar, BinaryMultiplication, TypeInt, TypeInt, TypeInt},
	{ast.TokenSlash, BinaryDivision, TypeInt, TypeInt, TypeInt},
	{ast.TokenAmpersand, BinaryBitwiseAnd, TypeInt, TypeInt, TypeInt},
	{ast.TokenPipe, BinaryBitwiseOr, TypeInt, TypeInt, TypeInt},
	{ast.TokenEqualsEquals, BinaryEquals, TypeInt, TypeInt, TypeBool},
	{ast.TokenBangEquals, BinaryNotEquals, TypeInt, TypeInt, TypeBool},
	{ast.TokenLess, BinaryLess, TypeInt, TypeInt, TypeBool},
	{ast.TokenLessEquals, BinaryLessOrEquals, TypeInt, TypeInt, TypeBool},
	{ast.TokenGreater, BinaryGreater, TypeInt, TypeInt, TypeBool},
	{ast.TokenGreaterEquals, BinaryGreaterOrEquals, TypeInt, TypeInt, TypeBool},

	{ast.TokenAmpersandAmpersand, BinaryLogicalAnd, TypeBool, TypeBool, TypeBool},
	{ast.TokenPipePipe, BinaryLogicalOr, TypeBool, TypeBool, TypeBool},
	{ast.TokenAmpersand, BinaryBitwiseAnd, TypeBool, TypeBool, TypeBool},
	{ast.TokenPipe, BinaryBitwiseOr, TypeBool, TypeBool, TypeBool},
	{ast.TokenEqualsEquals, BinaryEquals, TypeBool, TypeBool, TypeBool},
	{ast.TokenBangEquals, BinaryNotEquals, TypeBool, TypeBool, TypeBool},
}

// BindUnaryOperator looks up the operator for a token kind and operand type.
func BindUnaryOperator(kind ast.TokenKind, operand Type) (*UnaryOperator, bool) {
	for _, op := range unaryOperators {
		if op.SyntaxKind == kind && op.OperandType == operand {
			return op, true
		}
	}
	return nil, false
}

// BindBinaryOperator looks up the operator for a token kind and operand types.
func BindBinaryOperator(kind ast.TokenKind, left, right Type) (*BinaryOperator, bool) {
	for _, op := range binaryOperators {
		if op.SyntaxKind == kind && op.LeftType == left && op.RightType == right {
			return op, true
		}
	}
	return nil, false
}

// unaryResultType is the type an operator would have produced had its
// operand been valid.
func unaryResultType(kind ast.TokenKind) Type {
	if kind == ast.TokenBang {
		return TypeBool
	}
	return TypeInt
}

// binaryResultType is the type an operator would have produced had its
// operands been valid. `&` and `|` follow whichever operand is a bool.
func binaryResultType(kind ast.TokenKind, left, right Type) Type {
	switch kind {
	case ast.TokenPlus, ast.TokenMinus, ast.TokenStar, ast.TokenSlash:
		return TypeInt
	case ast.TokenAmpersand, ast.TokenPipe:
		if left == TypeBool || right == TypeBool {
			return TypeBool
		}
		return TypeInt
	default:
		return TypeBool
	}
}

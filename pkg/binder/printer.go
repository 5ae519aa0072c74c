package binder

import (
	"fmt"
	"io"

	"mini/interpreter-go/pkg/runtime"
)

// Print writes a bound tree with resolved operators, variables and types.
func Print(w io.Writer, node BoundNode) error {
	return printNode(w, node, "", true)
}

func printNode(w io.Writer, node BoundNode, indent string, isLast bool) error {
	marker := "├──"
	if isLast {
		marker = "└──"
	}
	if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, marker, describe(node)); err != nil {
		return err
	}
	if isLast {
		indent += "    "
	} else {
		indent += "│   "
	}
	children := node.Children()
	for i, child := range children {
		if err := printNode(w, child, indent, i == len(children)-1); err != nil {
			return err
		}
	}
	return nil
}

func describe(node BoundNode) string {
	label := string(node.Kind())
	switch n := node.(type) {
	case *LiteralExpression:
		return fmt.Sprintf("%s %s %s", label, runtime.Format(n.Value), n.Type())
	case *VariableExpression:
		return fmt.Sprintf("%s %s %s", label, n.Variable.Name, n.Type())
	case *AssignmentExpression:
		return fmt.Sprintf("%s %s %s", label, n.Variable.Name, n.Type())
	case *UnaryExpression:
		return fmt.Sprintf("%s %s %s", label, n.Operator.Kind, n.Type())
	case *BinaryExpression:
		return fmt.Sprintf("%s %s %s", label, n.Operator.Kind, n.Type())
	case *ErrorExpression:
		return fmt.Sprintf("%s %s", label, n.Type())
	case *VariableDeclaration:
		return fmt.Sprintf("%s %s", label, n.Variable)
	case *ForStatement:
		return fmt.Sprintf("%s %s", label, n.Variable)
	default:
		return label
	}
}

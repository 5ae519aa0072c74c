package ast

import (
	"fmt"
	"io"
)

// Print writes node and its descendants as an indented tree. Tokens show their
// kind and, when present, their literal value.
func Print(w io.Writer, node Node) error {
	return printNode(w, node, "", true)
}

func printNode(w io.Writer, node Node, indent string, isLast bool) error {
	marker := "├──"
	if isLast {
		marker = "└──"
	}
	label := string(node.NodeType())
	if token, ok := node.(Token); ok {
		label = token.Kind.String()
		if token.Value != nil {
			label = fmt.Sprintf("%s %v", label, token.Value)
		}
	}
	if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, marker, label); err != nil {
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

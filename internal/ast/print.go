package ast

import (
	"fmt"
	"io"
	"strings"
)

// Label returns a short, human-readable tag for a node's variant,
// suitable for the print-mode CLI output and log messages. Variants that
// carry a payload show it in parentheses (identifier name, literal value,
// operator); every other variant prints as its bare name.
func Label(n Node) string {
	switch v := n.(type) {
	case *Composite:
		return "Composite"
	case *Null:
		return "Null"
	case *Unknown:
		return "Unknown"
	case *Identifier:
		return fmt.Sprintf("Identifier(%s)", v.Name)
	case *Literal:
		return fmt.Sprintf("Literal(%s)", v.Value)
	case *Assignment:
		return "Assignment"
	case *Return:
		return "Return"
	case *Unary:
		return fmt.Sprintf("Unary(%s)", v.Op)
	case *Binary:
		return fmt.Sprintf("Binary(%s)", v.Op)
	case *CompoundAssign:
		return fmt.Sprintf("CompoundAssign(%s=)", v.Op)
	case *CStyleLoop:
		return "CStyleLoop"
	case *If:
		return "If"
	case *While:
		return "While"
	case *Break:
		return "Break"
	case *Continue:
		return "Continue"
	default:
		return "?"
	}
}

// Print pretty-prints the tree rooted at n to w, one node per line,
// indented by depth with tabs.
func Print(w io.Writer, n Node) {
	printNode(w, n, 0)
}

func printNode(w io.Writer, n Node, depth int) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("\t", depth), Label(n))
	for _, child := range n.Children() {
		printNode(w, child, depth+1)
	}
}

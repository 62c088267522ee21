package frontend

import (
	"fmt"
	"strings"
)

// StringifyAST produces a deterministic, human-readable rendering of an AST
// with nested nodes indented two spaces per level
func StringifyAST(node Node) string {
	return stringifyNode(node, 0)
}

func stringifyNode(generic Node, indent int) string {
	pad := strings.Repeat(" ", indent)

	switch node := generic.(type) {
	case *DeclarationNode:
		out := fmt.Sprintf("%sDeclaration: %s %s", pad, node.TypeName(), node.Assignee.Name)

		// An absent initializer renders nothing beyond the declaration line
		if node.Init != nil {
			out += "\n" + stringifyNode(node.Init, indent+2)
		}

		return out
	case *IdentNode:
		return fmt.Sprintf("%sIdentifier: %s", pad, node.Name)
	case *NumberNode:
		return fmt.Sprintf("%sNumber: %d", pad, node.Value)
	default:
		return fmt.Sprintf("%s<Unknown %T>", pad, node)
	}
}

package frontend

import (
	"fmt"

	"github.com/Y-yahya/Compiler-Front-end/feedback"
	"github.com/Y-yahya/Compiler-Front-end/source"
)

// Check walks a parsed AST and records every declaration it contains in a
// symbol table. Any messages emitted while crawling the tree are returned
// alongside the populated table
func Check(file *source.File, ast Node) (table *SymbolTable, msgs []feedback.Message) {
	table = NewSymbolTable()
	msgs = checkNode(table, ast)
	return table, msgs
}

// checkNode dispatches over the closed set of AST variants. Literal and
// identifier nodes declare nothing on their own; only declarations feed the
// symbol table
func checkNode(table *SymbolTable, generic Node) (msgs []feedback.Message) {
	switch node := generic.(type) {
	case *DeclarationNode:
		msgs = checkDeclaration(table, node)
	case *IdentNode:
	case *NumberNode:
	default:
		panic(fmt.Sprintf("unknown AST node: %T", node))
	}

	return msgs
}

// checkDeclaration binds the declared name to its declared type. A name that
// was already bound is overwritten without a diagnostic
func checkDeclaration(table *SymbolTable, decl *DeclarationNode) (msgs []feedback.Message) {
	table.Declare(decl.Assignee.Name, decl.TypeName())

	if decl.Init != nil {
		msgs = checkNode(table, decl.Init)
	}

	return msgs
}

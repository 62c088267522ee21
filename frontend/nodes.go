package frontend

import (
	"github.com/Y-yahya/Compiler-Front-end/source"
)

// Node is a generic node in the abstract syntax tree (AST). The set of
// variants is closed: every implementation lives in this file and consumers
// are expected to type-switch over the concrete pointer types. Nodes carry no
// mutation methods and are immutable once constructed
type Node interface {
	Pos() source.Pos
	End() source.Pos
	nodeVariant()
}

// NumberNode represents an instance of an integer literal in the AST. The
// original lexeme is retained alongside the converted value so diagnostics
// and tests can refer back to the exact source text
type NumberNode struct {
	Lexeme string
	Value  int32
	Start  source.Pos
}

// Pos returns the starting source code position of this node
func (n NumberNode) Pos() source.Pos {
	return n.Start
}

// End returns the terminal source code position of this node
func (n NumberNode) End() source.Pos {
	return source.Pos{
		Line: n.Start.Line,
		Col:  n.Start.Col + (len(n.Lexeme) - 1),
	}
}

func (n NumberNode) nodeVariant() {}

// IdentNode represents a single identifier in the AST
type IdentNode struct {
	Name    string
	NamePos source.Pos
}

// Pos returns the starting source code position of this node
func (i IdentNode) Pos() source.Pos {
	return i.NamePos
}

// End returns the terminal source code position of this node
func (i IdentNode) End() source.Pos {
	return source.Pos{
		Line: i.NamePos.Line,
		Col:  i.NamePos.Col + (len(i.Name) - 1),
	}
}

func (i IdentNode) nodeVariant() {}

// DeclarationNode represents a typed variable declaration. The node
// exclusively owns its initializer subtree; Init is nil when the declaration
// carries no initializer
type DeclarationNode struct {
	Keyword  Token // the type keyword that opened the declaration
	Assignee *IdentNode
	Init     Node
}

// TypeName returns the declared type as written in the source
func (d DeclarationNode) TypeName() string {
	return d.Keyword.Lexeme
}

// Pos returns the starting source code position of this node
func (d DeclarationNode) Pos() source.Pos {
	return d.Keyword.Span.Start
}

// End returns the terminal source code position of this node
func (d DeclarationNode) End() source.Pos {
	if d.Init == nil {
		return d.Assignee.End()
	}

	return d.Init.End()
}

func (d DeclarationNode) nodeVariant() {}

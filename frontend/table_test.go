package frontend_test

import (
	"testing"

	"github.com/Y-yahya/Compiler-Front-end/frontend"
)

func TestSymbolTableBindings(t *testing.T) {
	table := frontend.NewSymbolTable()

	if table.Exists("x") {
		t.Error("expected empty table to report no bindings")
	}
	if got := table.TypeOf("x"); got != "" {
		t.Errorf("expected empty type for unbound name, got %q", got)
	}

	table.Declare("x", "int")

	if !table.Exists("x") {
		t.Error("expected 'x' to exist after declaration")
	}
	if got := table.TypeOf("x"); got != "int" {
		t.Errorf("expected 'x' bound to 'int', got %q", got)
	}
}

func TestSymbolTableRedeclarationOverwrites(t *testing.T) {
	table := frontend.NewSymbolTable()

	table.Declare("x", "int")
	table.Declare("x", "bool")

	if got := table.TypeOf("x"); got != "bool" {
		t.Errorf("expected redeclaration to overwrite binding, got %q", got)
	}
}

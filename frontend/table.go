package frontend

// SymbolTable maps declared variable names to their declared type names.
// Within one parse the table is append-only: bindings are added but never
// removed. Redeclaring a name silently overwrites the previous binding
type SymbolTable struct {
	bindings map[string]string
}

// NewSymbolTable returns an empty symbol table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		bindings: make(map[string]string),
	}
}

// Declare inserts or overwrites the binding for a name unconditionally
func (t *SymbolTable) Declare(name string, typeName string) {
	t.bindings[name] = typeName
}

// Exists returns whether a binding is present for a name
func (t *SymbolTable) Exists(name string) bool {
	_, ok := t.bindings[name]
	return ok
}

// TypeOf returns the declared type bound to a name, or the empty string when
// the name is unbound
func (t *SymbolTable) TypeOf(name string) string {
	return t.bindings[name]
}

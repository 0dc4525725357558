package syntax

// SymbolTable tracks the symbols bound by one grammar: parameter names,
// tail names and group identifiers share a single namespace.
type SymbolTable struct {
	symbols map[string]struct{}
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]struct{})}
}

// Register records a symbol, returning DuplicateSymbolError if the grammar
// already bound it.
func (t *SymbolTable) Register(name string) error {
	if _, ok := t.symbols[name]; ok {
		return duplicateSymbolError(name)
	}
	t.symbols[name] = struct{}{}
	return nil
}

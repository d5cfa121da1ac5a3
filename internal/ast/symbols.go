package ast

import "github.com/cwbudde/go-cc/internal/types"

// SymbolKind discriminates the two Symbol variants.
type SymbolKind int

const (
	VariableSymbol SymbolKind = iota
	FunctionSymbol
)

// Param is one function parameter: a Variable-kind Symbol in its own
// right (it gets a frame offset like any local), linked in declaration
// order via the enclosing Function's Locals list.
type Param struct {
	Next *Param
	Sym  *Symbol
}

// Symbol is a tagged-union symbol-table entry: either a Variable (global
// or local) or a Function. Symbols form a singly-linked list in
// declaration order so the code generator can walk globals without a
// map.
type Symbol struct {
	Next *Symbol
	Kind SymbolKind
	Name string
	Type *types.Type

	// Variable
	Offset   int  // RBP-relative frame offset (locals only); negative
	IsGlobal bool
	InitStr  string // decoded initial bytes, for string-literal globals
	HasInit  bool

	// Function
	Params    *Param
	Locals    *Symbol // head of this function's locals list, in declaration order
	localsTl  *Symbol // tail, for O(1) append
	Body      *Node
	StackSize int
	Declared  bool // true once a body has been parsed (vs. forward decl)
}

// AddLocal appends a local variable symbol to the function's locals list,
// preserving declaration order.
func (f *Symbol) AddLocal(local *Symbol) {
	if f.Locals == nil {
		f.Locals = local
	} else {
		f.localsTl.Next = local
	}
	f.localsTl = local
}

// Program is the root of a compiled translation unit: every global
// Variable and Function, in declaration order.
type Program struct {
	Globals    *Symbol
	globalsTl  *Symbol
	StringLits []*Symbol // anonymous .LC<N> globals, in creation order
}

// AddGlobal appends g to the program's global list.
func (p *Program) AddGlobal(g *Symbol) {
	if p.Globals == nil {
		p.Globals = g
	} else {
		p.globalsTl.Next = g
	}
	p.globalsTl = g
}

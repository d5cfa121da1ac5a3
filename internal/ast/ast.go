// Package ast defines the single tagged AST node record the parser builds
// and the type checker decorates, plus the symbol-table entry variants.
package ast

import (
	"github.com/cwbudde/go-cc/internal/lexer"
	"github.com/cwbudde/go-cc/internal/types"
)

// NodeKind discriminates the AST node variants.
type NodeKind int

const (
	Addition NodeKind = iota
	Subtraction
	Multiplication
	Division
	Equality
	Inequality
	LessThan
	LessThanOrEqual
	Negation
	AddressOf
	Dereference
	Assignment
	Comma
	DotAccess
	Variable
	Number
	FunctionCall
	ExpressionStatement
	Block
	If
	For
	Return
)

func (k NodeKind) String() string {
	names := [...]string{
		"Addition", "Subtraction", "Multiplication", "Division",
		"Equality", "Inequality", "LessThan", "LessThanOrEqual",
		"Negation", "AddressOf", "Dereference", "Assignment", "Comma",
		"DotAccess", "Variable", "Number", "FunctionCall",
		"ExpressionStatement", "Block", "If", "For", "Return",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Node is the single tagged AST record for every expression and
// statement variant. Only the fields relevant to Kind are populated;
// everything else is nil/zero.
type Node struct {
	Kind NodeKind
	Tok  *lexer.Token
	Type *types.Type // filled in by the type checker before codegen sees it

	// binary/unary operands
	Left  *Node
	Right *Node

	// If
	Cond *Node
	Then *Node
	Else *Node

	// For: Init ; Cond ; Inc { Body }  (While desugars to Init=nil, Inc=nil)
	Init *Node
	Inc  *Node
	Body *Node

	// Block
	Stmts []*Node

	// FunctionCall
	Callee *Symbol
	Args   []*Node

	// DotAccess
	Member *types.Member

	// Variable
	Var *Symbol

	// Number
	NumVal int64

	// Num is a monotonically increasing node number, used as the
	// synthetic temporary name (N<num>) in the quadruple listing.
	Num int
}

// numberSeq hands out Node.Num values in construction order, scoped to one
// compilation via Reset.
type numberSeq struct{ next int }

func (s *numberSeq) take() int {
	n := s.next
	s.next++
	return n
}

// NodeNumberer is carried on the parser's CompileContext so that node
// numbers are unique within one compilation and reset between compilations.
type NodeNumberer struct {
	seq numberSeq
}

// Next returns the next node number.
func (n *NodeNumberer) Next() int { return n.seq.take() }

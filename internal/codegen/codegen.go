// Package codegen lowers a typed AST (internal/ast, internal/types) into
// GNU-assembler text for the System V AMD64 ABI.
package codegen

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-cc/internal/ast"
	"github.com/cwbudde/go-cc/internal/cerrors"
	"github.com/cwbudde/go-cc/internal/lexer"
)

// argRegisters holds the first six integer argument-passing registers,
// indexed by parameter position, one row per operand size.
var argRegisters = map[int][6]string{
	8: {"rdi", "rsi", "rdx", "rcx", "r8", "r9"},
	4: {"edi", "esi", "edx", "ecx", "r8d", "r9d"},
	2: {"di", "si", "dx", "cx", "r8w", "r9w"},
	1: {"dil", "sil", "dl", "cl", "r8b", "r9b"},
}

// generator holds the mutable state threaded through one Generate call:
// the output buffer, a per-function label counter, the push/pop depth
// (asserted to return to zero at function end), and the function whose
// body is currently being lowered (for its `.L.return.<name>` label).
type generator struct {
	out        strings.Builder
	source     string
	file       string
	labelSeq   int
	pushDepth  int
	currentFun string
}

// Generate runs the two-pass driver over prog's globals: offset
// assignment, then `.data` for variables and `.text` for function
// bodies, in declaration order.
func Generate(prog *ast.Program, source, file string) (string, error) {
	g := &generator{source: source, file: file}

	var err *cerrors.CompilerError
	func() {
		defer func() {
			if r := recover(); r != nil {
				if ce, ok := r.(*cerrors.CompilerError); ok {
					err = ce
					return
				}
				panic(r)
			}
		}()
		for sym := prog.Globals; sym != nil; sym = sym.Next {
			if sym.Kind == ast.FunctionSymbol {
				assignOffsets(sym)
			}
		}

		for sym := prog.Globals; sym != nil; sym = sym.Next {
			if sym.Kind == ast.VariableSymbol {
				g.emitData(sym)
			}
		}

		g.out.WriteString(".text\n")
		for sym := prog.Globals; sym != nil; sym = sym.Next {
			if sym.Kind == ast.FunctionSymbol && sym.Declared {
				g.emitFunction(sym)
			}
		}
	}()
	if err != nil {
		return "", err
	}
	return g.out.String(), nil
}

// assignOffsets walks fn's locals in declaration order, accumulating each
// one's size then aligning the running total to the local's alignment,
// assigning `local.Offset = -runningTotal`. The function's StackSize is
// rounded up to a multiple of 16 to keep the stack aligned at call sites.
func assignOffsets(fn *ast.Symbol) {
	total := 0
	for local := fn.Locals; local != nil; local = local.Next {
		total += local.Type.Size
		if rem := total % local.Type.Align; rem != 0 {
			total += local.Type.Align - rem
		}
		local.Offset = -total
	}
	if rem := total % 16; rem != 0 {
		total += 16 - rem
	}
	fn.StackSize = total
}

func (g *generator) emitData(v *ast.Symbol) {
	fmt.Fprintf(&g.out, ".data\n.globl %s\n%s:\n", v.Name, v.Name)
	if v.HasInit {
		for i := 0; i < len(v.InitStr); i++ {
			fmt.Fprintf(&g.out, "  .byte %d\n", v.InitStr[i])
		}
		return
	}
	fmt.Fprintf(&g.out, "  .zero %d\n", v.Type.Size)
}

func (g *generator) nextLabel() int {
	g.labelSeq++
	return g.labelSeq
}

func (g *generator) push() {
	g.out.WriteString("  push %rax\n")
	g.pushDepth++
}

func (g *generator) pop(reg string) {
	fmt.Fprintf(&g.out, "  pop %%%s\n", reg)
	g.pushDepth--
}

func (g *generator) fail(kind cerrors.Kind, tok *lexer.Token, msg string) {
	var pos lexer.Position
	if tok != nil {
		pos = tok.Pos
	}
	panic(cerrors.New(kind, pos, msg, g.source, g.file))
}

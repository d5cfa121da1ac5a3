package codegen

import (
	"fmt"

	"github.com/cwbudde/go-cc/internal/ast"
	"github.com/cwbudde/go-cc/internal/cerrors"
)

// paramCount reports how many entries in fn.Type.Params exist; parameters
// are always the first paramCount entries of fn.Locals, because
// parseFunctionDefinition appends them before any body-declared local.
func paramCount(fn *ast.Symbol) int {
	n := 0
	for p := fn.Type.Params; p != nil; p = p.Next {
		n++
	}
	return n
}

// emitFunction emits the prologue, parameter register moves, body, and
// epilogue for a defined function. Forward declarations never reach
// here (Generate only calls this for sym.Declared).
func (g *generator) emitFunction(fn *ast.Symbol) {
	g.currentFun = fn.Name
	g.labelSeq = 0
	g.pushDepth = 0

	fmt.Fprintf(&g.out, ".globl %s\n%s:\n", fn.Name, fn.Name)
	g.out.WriteString("  push %rbp\n")
	g.out.WriteString("  mov %rsp, %rbp\n")
	fmt.Fprintf(&g.out, "  sub $%d, %%rsp\n", fn.StackSize)

	if n := paramCount(fn); n > 6 {
		g.fail(cerrors.KindCodegen, nil, fmt.Sprintf("%s: declares %d parameters, more than the 6 supported in registers", fn.Name, n))
	}

	i := 0
	for local := fn.Locals; local != nil && i < paramCount(fn); local, i = local.Next, i+1 {
		regs, ok := argRegisters[local.Type.Size]
		if !ok {
			g.fail(cerrors.KindCodegen, nil, fmt.Sprintf("%s: parameter %q has unsupported size %d for register passing", fn.Name, local.Name, local.Type.Size))
		}
		fmt.Fprintf(&g.out, "  mov %%%s, %d(%%rbp)\n", regs[i], local.Offset)
	}

	if fn.Body == nil {
		g.fail(cerrors.KindCodegen, nil, fmt.Sprintf("function %q has no body", fn.Name))
	}
	g.emitStatement(fn.Body)

	fmt.Fprintf(&g.out, ".L.return.%s:\n", fn.Name)
	g.out.WriteString("  mov %rbp, %rsp\n")
	g.out.WriteString("  pop %rbp\n")
	g.out.WriteString("  ret\n")

	if g.pushDepth != 0 {
		g.fail(cerrors.KindCodegen, nil, fmt.Sprintf("%s: push/pop depth did not return to zero", fn.Name))
	}
}

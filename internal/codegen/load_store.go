package codegen

import (
	"fmt"

	"github.com/cwbudde/go-cc/internal/types"
)

// load reads through the address currently in %rax, sign-extending to
// 64 bits by size. Array, Struct, and Union types are left as addresses
// rather than loaded through: the value of an aggregate is its address.
func (g *generator) load(t *types.Type) {
	if t.Kind == types.Array || t.Kind == types.Struct || t.Kind == types.Union {
		return
	}
	switch t.Size {
	case 1:
		g.out.WriteString("  movsbq (%rax), %rax\n")
	case 2:
		g.out.WriteString("  movswq (%rax), %rax\n")
	case 4:
		g.out.WriteString("  movsxd (%rax), %rax\n")
	default:
		g.out.WriteString("  mov (%rax), %rax\n")
	}
}

// store pops a destination address into %rdi and writes %rax there. A
// Struct copies byte-for-byte through %r8 in a simple unrolled loop; other
// types write by size.
func (g *generator) store(t *types.Type) {
	g.pop("rdi")
	if t.Kind == types.Struct || t.Kind == types.Union {
		for i := 0; i < t.Size; i++ {
			fmt.Fprintf(&g.out, "  mov %d(%%rax), %%r8b\n", i)
			fmt.Fprintf(&g.out, "  mov %%r8b, %d(%%rdi)\n", i)
		}
		return
	}
	switch t.Size {
	case 1:
		g.out.WriteString("  mov %al, (%rdi)\n")
	case 2:
		g.out.WriteString("  mov %ax, (%rdi)\n")
	case 4:
		g.out.WriteString("  mov %eax, (%rdi)\n")
	default:
		g.out.WriteString("  mov %rax, (%rdi)\n")
	}
}

package codegen

import (
	"fmt"

	"github.com/cwbudde/go-cc/internal/ast"
	"github.com/cwbudde/go-cc/internal/cerrors"
)

// generateAddress computes n's address into %rax. Only lvalues reach
// here: Variable, Dereference, Comma, and DotAccess.
func (g *generator) generateAddress(n *ast.Node) {
	switch n.Kind {
	case ast.Variable:
		if n.Var.IsGlobal {
			fmt.Fprintf(&g.out, "  lea %s(%%rip), %%rax\n", n.Var.Name)
		} else {
			fmt.Fprintf(&g.out, "  lea %d(%%rbp), %%rax\n", n.Var.Offset)
		}
	case ast.Dereference:
		g.emitExpression(n.Left)
	case ast.Comma:
		g.emitExpression(n.Left)
		g.generateAddress(n.Right)
	case ast.DotAccess:
		g.generateAddress(n.Left)
		fmt.Fprintf(&g.out, "  add $%d, %%rax\n", n.Member.Offset)
	default:
		g.fail(cerrors.KindCodegen, n.Tok, "not an lvalue")
	}
}

package codegen

import (
	"fmt"

	"github.com/cwbudde/go-cc/internal/ast"
	"github.com/cwbudde/go-cc/internal/cerrors"
)

// emitStatement lowers a statement node, discarding any value left in
// %rax by an expression statement.
func (g *generator) emitStatement(n *ast.Node) {
	switch n.Kind {
	case ast.Return:
		g.emitExpression(n.Left)
		fmt.Fprintf(&g.out, "  jmp .L.return.%s\n", g.currentFun)
	case ast.ExpressionStatement:
		g.emitExpression(n.Left)
	case ast.Block:
		for _, stmt := range n.Stmts {
			g.emitStatement(stmt)
		}
	case ast.If:
		g.emitIf(n)
	case ast.For:
		g.emitFor(n)
	default:
		g.fail(cerrors.KindCodegen, n.Tok, fmt.Sprintf("invalid statement %s", n.Kind))
	}
}

func (g *generator) emitIf(n *ast.Node) {
	label := g.nextLabel()
	g.emitExpression(n.Cond)
	g.out.WriteString("  cmp $0, %rax\n")
	fmt.Fprintf(&g.out, "  je .L.else.%d\n", label)
	g.emitStatement(n.Then)
	fmt.Fprintf(&g.out, "  jmp .L.end.%d\n", label)
	fmt.Fprintf(&g.out, ".L.else.%d:\n", label)
	if n.Else != nil {
		g.emitStatement(n.Else)
	}
	fmt.Fprintf(&g.out, ".L.end.%d:\n", label)
}

// emitFor lowers both For and the While-desugared-to-For node: optional
// init, label .L.begin, optional condition test, body, optional
// increment, jump back, label .L.end.
func (g *generator) emitFor(n *ast.Node) {
	label := g.nextLabel()
	if n.Init != nil {
		g.emitStatement(n.Init)
	}
	fmt.Fprintf(&g.out, ".L.begin.%d:\n", label)
	if n.Cond != nil {
		g.emitExpression(n.Cond)
		g.out.WriteString("  cmp $0, %rax\n")
		fmt.Fprintf(&g.out, "  je .L.end.%d\n", label)
	}
	g.emitStatement(n.Body)
	if n.Inc != nil {
		g.emitExpression(n.Inc)
	}
	fmt.Fprintf(&g.out, "  jmp .L.begin.%d\n", label)
	fmt.Fprintf(&g.out, ".L.end.%d:\n", label)
}

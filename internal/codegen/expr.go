package codegen

import (
	"fmt"

	"github.com/cwbudde/go-cc/internal/ast"
	"github.com/cwbudde/go-cc/internal/cerrors"
)

// emitExpression computes n's value into %rax.
func (g *generator) emitExpression(n *ast.Node) {
	switch n.Kind {
	case ast.Number:
		fmt.Fprintf(&g.out, "  mov $%d, %%rax\n", n.NumVal)
	case ast.Negation:
		g.emitExpression(n.Left)
		g.out.WriteString("  neg %rax\n")
	case ast.AddressOf:
		g.generateAddress(n.Left)
	case ast.Dereference:
		g.emitExpression(n.Left)
		g.load(n.Type)
	case ast.Variable:
		g.generateAddress(n)
		g.load(n.Type)
	case ast.Assignment:
		g.generateAddress(n.Left)
		g.push()
		g.emitExpression(n.Right)
		g.store(n.Left.Type)
	case ast.FunctionCall:
		g.emitCall(n)
	case ast.Comma:
		g.emitExpression(n.Left)
		g.emitExpression(n.Right)
	case ast.DotAccess:
		g.generateAddress(n)
		g.load(n.Type)
	case ast.Addition, ast.Subtraction, ast.Multiplication, ast.Division,
		ast.Equality, ast.Inequality, ast.LessThan, ast.LessThanOrEqual:
		g.emitBinary(n)
	default:
		g.fail(cerrors.KindCodegen, n.Tok, fmt.Sprintf("invalid binary expression %s", n.Kind))
	}
}

// emitCall evaluates each argument left-to-right, pushing after each,
// then pops into argument registers in reverse before the call — this
// preserves left-to-right side effects even though register population
// happens in reverse order.
func (g *generator) emitCall(n *ast.Node) {
	if len(n.Args) > 6 {
		g.fail(cerrors.KindCodegen, n.Tok, fmt.Sprintf("call to %q passes %d arguments, more than the 6 supported in registers", n.Callee.Name, len(n.Args)))
	}
	for _, arg := range n.Args {
		g.emitExpression(arg)
		g.push()
	}
	for i := len(n.Args) - 1; i >= 0; i-- {
		g.pop(argRegisters[8][i])
	}
	g.out.WriteString("  mov $0, %rax\n")
	fmt.Fprintf(&g.out, "  call %s\n", n.Callee.Name)
}

func (g *generator) emitBinary(n *ast.Node) {
	g.emitExpression(n.Right)
	g.push()
	g.emitExpression(n.Left)
	g.pop("rdi")

	switch n.Kind {
	case ast.Addition:
		g.out.WriteString("  add %rdi, %rax\n")
	case ast.Subtraction:
		g.out.WriteString("  sub %rdi, %rax\n")
	case ast.Multiplication:
		g.out.WriteString("  imul %rdi, %rax\n")
	case ast.Division:
		g.out.WriteString("  cqo\n")
		g.out.WriteString("  idiv %rdi\n")
	case ast.Equality:
		g.out.WriteString("  cmp %rdi, %rax\n  sete %al\n  movzb %al, %rax\n")
	case ast.Inequality:
		g.out.WriteString("  cmp %rdi, %rax\n  setne %al\n  movzb %al, %rax\n")
	case ast.LessThan:
		g.out.WriteString("  cmp %rdi, %rax\n  setl %al\n  movzb %al, %rax\n")
	case ast.LessThanOrEqual:
		g.out.WriteString("  cmp %rdi, %rax\n  setle %al\n  movzb %al, %rax\n")
	}
}

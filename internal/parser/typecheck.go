package parser

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/go-cc/internal/ast"
	"github.com/cwbudde/go-cc/internal/cerrors"
	"github.com/cwbudde/go-cc/internal/lexer"
	"github.com/cwbudde/go-cc/internal/types"
)

// Node construction is where type decoration and three-address-code
// emission happen: every node built here gets its Type set before the
// parser moves on, and a quad that computes its value into the node's
// synthetic temporary (tempName).

func (p *Parser) newNumber(tok *lexer.Token, val int64) *ast.Node {
	n := p.newNode(ast.Number, tok)
	n.NumVal = val
	n.Type = types.NewInt64()
	p.ir.Emit("const", strconv.FormatInt(val, 10), "", tempName(n))
	return n
}

func (p *Parser) newSizeofNumber(tok *lexer.Token, size int) *ast.Node {
	n := p.newNode(ast.Number, tok)
	n.NumVal = int64(size)
	n.Type = types.NewInt64()
	p.ir.Emit("sizeof", strconv.Itoa(size), "", tempName(n))
	return n
}

func (p *Parser) newVariable(tok *lexer.Token, sym *ast.Symbol) *ast.Node {
	n := p.newNode(ast.Variable, tok)
	n.Var = sym
	n.Type = sym.Type
	p.ir.Emit("load", sym.Name, "", tempName(n))
	return n
}

// scaleFactor returns the pointee/element size used to scale the integer
// operand of pointer arithmetic; 1 for char-sized pointees leaves the
// operand effectively unscaled.
func scaleFactor(t *types.Type) int {
	if base := t.Base(); base != nil {
		return base.Size
	}
	return 1
}

// scaleNode multiplies count by scale, emitting a multiply quad. scale==1
// is a no-op pass-through (no quad needed).
func (p *Parser) scaleNode(tok *lexer.Token, count *ast.Node, scale int) *ast.Node {
	if scale == 1 {
		return count
	}
	lit := p.newNumber(tok, int64(scale))
	n := p.newNode(ast.Multiplication, tok)
	n.Left, n.Right = count, lit
	n.Type = count.Type
	p.ir.Emit("*", tempName(count), tempName(lit), tempName(n))
	return n
}

// decayed returns the pointer type an array operand decays to in pointer
// arithmetic; any other type is returned unchanged.
func decayed(t *types.Type) *types.Type {
	if t.Kind == types.Array {
		return types.NewPointer(t.Pointee)
	}
	return t
}

func (p *Parser) newAdd(tok *lexer.Token, left, right *ast.Node) *ast.Node {
	lt, rt := decayed(left.Type), decayed(right.Type)
	switch {
	case lt.IsInteger() && rt.IsInteger():
		n := p.newNode(ast.Addition, tok)
		n.Left, n.Right = left, right
		n.Type = lt
		p.ir.Emit("+", tempName(left), tempName(right), tempName(n))
		return n
	case lt.IsPointer() && rt.IsPointer():
		p.fail(cerrors.KindType, tok, "invalid pointer operands to +")
		return nil
	case lt.IsPointer() && rt.IsInteger():
		return p.newPointerAdd(tok, left, lt, right)
	case lt.IsInteger() && rt.IsPointer():
		return p.newPointerAdd(tok, right, rt, left)
	default:
		p.fail(cerrors.KindType, tok, "invalid operands to +")
		return nil
	}
}

func (p *Parser) newPointerAdd(tok *lexer.Token, ptr *ast.Node, ptrType *types.Type, count *ast.Node) *ast.Node {
	scaled := p.scaleNode(tok, count, scaleFactor(ptrType))
	n := p.newNode(ast.Addition, tok)
	n.Left, n.Right = ptr, scaled
	n.Type = ptrType
	p.ir.Emit("+", tempName(ptr), tempName(scaled), tempName(n))
	return n
}

func (p *Parser) newSub(tok *lexer.Token, left, right *ast.Node) *ast.Node {
	lt, rt := decayed(left.Type), decayed(right.Type)
	switch {
	case lt.IsInteger() && rt.IsInteger():
		n := p.newNode(ast.Subtraction, tok)
		n.Left, n.Right = left, right
		n.Type = lt
		p.ir.Emit("-", tempName(left), tempName(right), tempName(n))
		return n
	case lt.IsPointer() && rt.IsInteger():
		scaled := p.scaleNode(tok, right, scaleFactor(lt))
		n := p.newNode(ast.Subtraction, tok)
		n.Left, n.Right = left, scaled
		n.Type = lt
		p.ir.Emit("-", tempName(left), tempName(scaled), tempName(n))
		return n
	case lt.IsPointer() && rt.IsPointer():
		n := p.newNode(ast.Subtraction, tok)
		n.Left, n.Right = left, right
		diff := tempName(n)
		p.ir.Emit("-", tempName(left), tempName(right), diff)

		scale := scaleFactor(lt)
		if scale == 1 {
			n.Type = types.NewInt()
			return n
		}
		scaleLit := p.newNumber(tok, int64(scale))
		div := p.newNode(ast.Division, tok)
		div.Left, div.Right = n, scaleLit
		div.Type = types.NewInt()
		p.ir.Emit("/", diff, tempName(scaleLit), tempName(div))
		return div
	default:
		p.fail(cerrors.KindType, tok, "invalid operands to -")
		return nil
	}
}

func (p *Parser) newMulDiv(kind ast.NodeKind, op string, tok *lexer.Token, left, right *ast.Node) *ast.Node {
	n := p.newNode(kind, tok)
	n.Left, n.Right = left, right
	n.Type = left.Type
	p.ir.Emit(op, tempName(left), tempName(right), tempName(n))
	return n
}

func (p *Parser) newCompare(kind ast.NodeKind, op string, tok *lexer.Token, left, right *ast.Node) *ast.Node {
	n := p.newNode(kind, tok)
	n.Left, n.Right = left, right
	n.Type = types.NewInt64()
	p.ir.Emit(op, tempName(left), tempName(right), tempName(n))
	return n
}

func (p *Parser) newNegation(tok *lexer.Token, operand *ast.Node) *ast.Node {
	n := p.newNode(ast.Negation, tok)
	n.Left = operand
	n.Type = operand.Type
	p.ir.Emit("neg", tempName(operand), "", tempName(n))
	return n
}

func (p *Parser) newAddressOf(tok *lexer.Token, operand *ast.Node) *ast.Node {
	n := p.newNode(ast.AddressOf, tok)
	n.Left = operand
	if operand.Type.Kind == types.Array {
		n.Type = types.NewPointer(operand.Type.Pointee)
	} else {
		n.Type = types.NewPointer(operand.Type)
	}
	p.ir.Emit("&", tempName(operand), "", tempName(n))
	return n
}

func (p *Parser) newDereference(tok *lexer.Token, operand *ast.Node) *ast.Node {
	if !operand.Type.IsPointer() && operand.Type.Kind != types.Array {
		p.fail(cerrors.KindType, tok, "cannot dereference a non-pointer")
	}
	if operand.Type.Pointee.Kind == types.Void {
		p.fail(cerrors.KindType, tok, "cannot dereference a pointer to void")
	}
	n := p.newNode(ast.Dereference, tok)
	n.Left = operand
	n.Type = operand.Type.Pointee
	p.ir.Emit("*", tempName(operand), "", tempName(n))
	return n
}

// isLvalue reports whether n designates a storage location, mirroring the
// kinds generate_address accepts in codegen.
func isLvalue(n *ast.Node) bool {
	switch n.Kind {
	case ast.Variable, ast.Dereference, ast.DotAccess:
		return true
	case ast.Comma:
		return isLvalue(n.Right)
	default:
		return false
	}
}

func (p *Parser) newAssignment(tok *lexer.Token, left, right *ast.Node) *ast.Node {
	if !isLvalue(left) {
		p.fail(cerrors.KindType, tok, "left side of assignment is not an lvalue")
	}
	if left.Type.Kind == types.Array {
		p.fail(cerrors.KindType, tok, "cannot assign to an array")
	}
	n := p.newNode(ast.Assignment, tok)
	n.Left, n.Right = left, right
	n.Type = left.Type
	p.ir.Emit("=", tempName(right), "", tempName(left))
	return n
}

func (p *Parser) newComma(tok *lexer.Token, left, right *ast.Node) *ast.Node {
	n := p.newNode(ast.Comma, tok)
	n.Left, n.Right = left, right
	n.Type = right.Type
	p.ir.Emit(",", tempName(left), tempName(right), tempName(n))
	return n
}

func (p *Parser) newDotAccess(tok *lexer.Token, left *ast.Node, memberName string) *ast.Node {
	base := left.Type
	if base.Kind != types.Struct && base.Kind != types.Union {
		p.fail(cerrors.KindType, tok, "member access on a non-aggregate type")
	}
	m := base.FindMember(memberName)
	if m == nil {
		p.fail(cerrors.KindType, tok, fmt.Sprintf("member %q not found", memberName))
	}
	n := p.newNode(ast.DotAccess, tok)
	n.Left = left
	n.Member = m
	n.Type = m.Type
	p.ir.Emit(".", tempName(left), strconv.Itoa(m.Offset), tempName(n))
	return n
}

func (p *Parser) newFunctionCall(tok *lexer.Token, callee *ast.Symbol, args []*ast.Node) *ast.Node {
	n := p.newNode(ast.FunctionCall, tok)
	n.Callee = callee
	n.Args = args
	n.Type = types.NewInt64()
	for _, a := range args {
		p.ir.Emit("arg", tempName(a), "", "")
	}
	p.ir.Emit("call", callee.Name, strconv.Itoa(len(args)), tempName(n))
	return n
}

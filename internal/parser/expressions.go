package parser

import (
	"fmt"

	"github.com/cwbudde/go-cc/internal/ast"
	"github.com/cwbudde/go-cc/internal/cerrors"
	"github.com/cwbudde/go-cc/internal/lexer"
	"github.com/cwbudde/go-cc/internal/types"
)

// parseExpression implements `expression := assign (',' expression)?`.
func (p *Parser) parseExpression() *ast.Node {
	left := p.parseAssignExpr()
	if lexer.IsEqual(p.cur, ",") {
		tok := p.cur
		p.advance()
		return p.newComma(tok, left, p.parseExpression())
	}
	return left
}

// parseAssignExpr implements `assign := equality ('=' assign)?`, which
// makes assignment right-associative.
func (p *Parser) parseAssignExpr() *ast.Node {
	left := p.parseEquality()
	if lexer.IsEqual(p.cur, "=") {
		tok := p.cur
		p.advance()
		return p.newAssignment(tok, left, p.parseAssignExpr())
	}
	return left
}

func (p *Parser) parseEquality() *ast.Node {
	n := p.parseRelational()
	for {
		switch {
		case lexer.IsEqual(p.cur, "=="):
			tok := p.cur
			p.advance()
			n = p.newCompare(ast.Equality, "==", tok, n, p.parseRelational())
		case lexer.IsEqual(p.cur, "!="):
			tok := p.cur
			p.advance()
			n = p.newCompare(ast.Inequality, "!=", tok, n, p.parseRelational())
		default:
			return n
		}
	}
}

// parseRelational desugars `>`/`>=` to `<`/`<=` with swapped operands, so
// only two comparison node kinds ever reach the type checker/codegen.
func (p *Parser) parseRelational() *ast.Node {
	n := p.parseAdd()
	for {
		switch {
		case lexer.IsEqual(p.cur, "<"):
			tok := p.cur
			p.advance()
			n = p.newCompare(ast.LessThan, "<", tok, n, p.parseAdd())
		case lexer.IsEqual(p.cur, "<="):
			tok := p.cur
			p.advance()
			n = p.newCompare(ast.LessThanOrEqual, "<=", tok, n, p.parseAdd())
		case lexer.IsEqual(p.cur, ">"):
			tok := p.cur
			p.advance()
			rhs := p.parseAdd()
			n = p.newCompare(ast.LessThan, "<", tok, rhs, n)
		case lexer.IsEqual(p.cur, ">="):
			tok := p.cur
			p.advance()
			rhs := p.parseAdd()
			n = p.newCompare(ast.LessThanOrEqual, "<=", tok, rhs, n)
		default:
			return n
		}
	}
}

func (p *Parser) parseAdd() *ast.Node {
	n := p.parseMul()
	for {
		switch {
		case lexer.IsEqual(p.cur, "+"):
			tok := p.cur
			p.advance()
			n = p.newAdd(tok, n, p.parseMul())
		case lexer.IsEqual(p.cur, "-"):
			tok := p.cur
			p.advance()
			n = p.newSub(tok, n, p.parseMul())
		default:
			return n
		}
	}
}

func (p *Parser) parseMul() *ast.Node {
	n := p.parseUnary()
	for {
		switch {
		case lexer.IsEqual(p.cur, "*"):
			tok := p.cur
			p.advance()
			n = p.newMulDiv(ast.Multiplication, "*", tok, n, p.parseUnary())
		case lexer.IsEqual(p.cur, "/"):
			tok := p.cur
			p.advance()
			n = p.newMulDiv(ast.Division, "/", tok, n, p.parseUnary())
		default:
			return n
		}
	}
}

// parseUnary implements `('+'|'-'|'&'|'*') unary | postfix | 'sizeof'
// (unary | '(' type abstract-decl ')')`.
func (p *Parser) parseUnary() *ast.Node {
	switch {
	case lexer.IsEqual(p.cur, "+"):
		p.advance()
		return p.parseUnary()
	case lexer.IsEqual(p.cur, "-"):
		tok := p.cur
		p.advance()
		return p.newNegation(tok, p.parseUnary())
	case lexer.IsEqual(p.cur, "&"):
		tok := p.cur
		p.advance()
		return p.newAddressOf(tok, p.parseUnary())
	case lexer.IsEqual(p.cur, "*"):
		tok := p.cur
		p.advance()
		return p.newDereference(tok, p.parseUnary())
	case lexer.IsTokenKeyword(p.cur, "sizeof"):
		return p.parseSizeof()
	default:
		return p.parsePostfix()
	}
}

func (p *Parser) parseSizeof() *ast.Node {
	tok := p.cur
	p.advance()

	if lexer.IsEqual(p.cur, "(") && lexer.IsTokenTypeKeyword(p.cur.Next) {
		p.skip("(")
		base := p.parseType()
		full := p.parseAbstractType(base)
		p.skip(")")
		return p.newSizeofNumber(tok, full.Size)
	}

	operand := p.parseUnary()
	return p.newSizeofNumber(tok, operand.Type.Size)
}

// parseAbstractType parses the pointer-star and array-suffix parts of an
// abstract declarator (a declarator with no identifier), as used after
// `sizeof (type`.
func (p *Parser) parseAbstractType(base *types.Type) *types.Type {
	for p.consume("*") {
		base = types.NewPointer(base)
	}
	return p.parseTypeSuffix(base)
}

// parsePostfix implements `primary ( '[' expression ']' | '.' identifier |
// '->' identifier )*`. Subscripting lowers to `*(a + b)`, sharing the
// pointer-arithmetic and dereference rules exactly.
func (p *Parser) parsePostfix() *ast.Node {
	n := p.parsePrimary()
	for {
		switch {
		case lexer.IsEqual(p.cur, "["):
			tok := p.cur
			p.advance()
			idx := p.parseExpression()
			p.skip("]")
			n = p.newDereference(tok, p.newAdd(tok, n, idx))
		case lexer.IsEqual(p.cur, "."):
			tok := p.cur
			p.advance()
			n = p.newDotAccess(tok, n, p.expectIdentifierName())
		case lexer.IsEqual(p.cur, "->"):
			tok := p.cur
			p.advance()
			name := p.expectIdentifierName()
			n = p.newDotAccess(tok, p.newDereference(tok, n), name)
		default:
			return n
		}
	}
}

func (p *Parser) expectIdentifierName() string {
	if p.cur.Kind != lexer.Identifier {
		p.fail(cerrors.KindParse, p.cur, "expected a member name")
	}
	name := p.cur.Literal
	p.advance()
	return name
}

// parsePrimary implements `'(' expression ')' | identifier | identifier
// '(' arg-list? ')' | number | string`.
func (p *Parser) parsePrimary() *ast.Node {
	switch {
	case lexer.IsEqual(p.cur, "("):
		p.advance()
		n := p.parseExpression()
		p.skip(")")
		return n
	case p.cur.Kind == lexer.NumericLiteral:
		tok := p.cur
		p.advance()
		return p.newNumber(tok, tok.NumVal)
	case p.cur.Kind == lexer.StringLiteral:
		return p.parseStringLiteral()
	case p.cur.Kind == lexer.Identifier:
		return p.parseIdentifierPrimary()
	default:
		p.fail(cerrors.KindParse, p.cur, "expected an expression")
		return nil
	}
}

func (p *Parser) parseIdentifierPrimary() *ast.Node {
	tok := p.cur
	p.advance()
	if lexer.IsEqual(p.cur, "(") {
		return p.parseCall(tok)
	}

	sym, ok := p.scopes.FindEntry(tok.Literal).(*ast.Symbol)
	if !ok || sym == nil {
		p.fail(cerrors.KindScope, tok, fmt.Sprintf("variable %q not defined", tok.Literal))
	}
	return p.newVariable(tok, sym)
}

func (p *Parser) parseCall(tok *lexer.Token) *ast.Node {
	sym, ok := p.scopes.FindEntry(tok.Literal).(*ast.Symbol)
	if !ok || sym == nil || sym.Kind != ast.FunctionSymbol {
		p.fail(cerrors.KindScope, tok, fmt.Sprintf("function %q not defined", tok.Literal))
	}

	p.skip("(")
	var args []*ast.Node
	if !lexer.IsEqual(p.cur, ")") {
		for {
			args = append(args, p.parseAssignExpr())
			if !p.consume(",") {
				break
			}
		}
	}
	p.skip(")")
	return p.newFunctionCall(tok, sym, args)
}

// parseStringLiteral registers the decoded string as an anonymous global
// (`.LC<N>`, array of char) and returns a Variable node referencing it.
func (p *Parser) parseStringLiteral() *ast.Node {
	tok := p.cur
	p.advance()

	name := fmt.Sprintf(".LC%d", p.stringLits)
	p.stringLits++
	sym := &ast.Symbol{
		Kind:     ast.VariableSymbol,
		Name:     name,
		Type:     types.NewArray(types.NewChar(), len(tok.StrVal)),
		IsGlobal: true,
		InitStr:  tok.StrVal,
		HasInit:  true,
	}
	p.program.AddGlobal(sym)
	p.program.StringLits = append(p.program.StringLits, sym)
	return p.newVariable(tok, sym)
}

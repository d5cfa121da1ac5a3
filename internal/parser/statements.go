package parser

import (
	"strconv"

	"github.com/cwbudde/go-cc/internal/ast"
	"github.com/cwbudde/go-cc/internal/lexer"
)

// parseBlock parses `'{' ( type declaration | statement )* '}'` in a fresh
// scope (a scope is pushed on every `{` and popped on the matching `}`).
func (p *Parser) parseBlock(tok *lexer.Token) *ast.Node {
	p.scopes.Enter()
	defer p.scopes.Leave()

	n := p.newNode(ast.Block, tok)
	for !lexer.IsEqual(p.cur, "}") {
		if p.atTypeStart() {
			n.Stmts = append(n.Stmts, p.parseLocalDeclarations()...)
		} else {
			n.Stmts = append(n.Stmts, p.parseStatement())
		}
	}
	p.skip("}")
	return n
}

func (p *Parser) parseStatement() *ast.Node {
	switch {
	case lexer.IsTokenKeyword(p.cur, "return"):
		return p.parseReturn()
	case lexer.IsTokenKeyword(p.cur, "if"):
		return p.parseIf()
	case lexer.IsTokenKeyword(p.cur, "for"):
		return p.parseFor()
	case lexer.IsTokenKeyword(p.cur, "while"):
		return p.parseWhile()
	case lexer.IsEqual(p.cur, "{"):
		tok := p.cur
		p.advance()
		return p.parseBlock(tok)
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseReturn() *ast.Node {
	tok := p.cur
	p.advance()
	n := p.newNode(ast.Return, tok)
	n.Left = p.parseExpression()
	p.skip(";")
	p.ir.Emit("return", tempName(n.Left), "", "")
	return n
}

func (p *Parser) parseExpressionStatement() *ast.Node {
	tok := p.cur
	n := p.newNode(ast.ExpressionStatement, tok)
	n.Left = p.parseExpression()
	p.skip(";")
	return n
}

// parseIf parses `'if' '(' expression ')' statement ('else' statement)?`,
// emitting a conditional jump over the then-branch and, when an else is
// present, an unconditional jump over it — both backpatched once their
// targets are known.
func (p *Parser) parseIf() *ast.Node {
	tok := p.cur
	p.advance()
	n := p.newNode(ast.If, tok)

	p.skip("(")
	n.Cond = p.parseExpression()
	p.skip(")")

	falseJump := p.ir.Emit("j=", tempName(n.Cond), "0", "")
	n.Then = p.parseStatement()

	if lexer.IsTokenKeyword(p.cur, "else") {
		p.advance()
		endJump := p.ir.Emit("j", "", "", "")
		p.ir.Backpatch(falseJump, strconv.Itoa(p.ir.NextAddress()))
		n.Else = p.parseStatement()
		p.ir.Backpatch(endJump, strconv.Itoa(p.ir.NextAddress()))
	} else {
		p.ir.Backpatch(falseJump, strconv.Itoa(p.ir.NextAddress()))
	}
	return n
}

// parseFor parses `'for' '(' expression-statement expression? ';'
// expression? ')' statement`. The three-address-code condition jump
// targets the loop's exit; this is a display artifact only — codegen
// lowers Init/Cond/Inc/Body directly from the node in the correct runtime
// order, so Inc's quads appearing before Body's in this buffer does not
// affect emitted assembly.
func (p *Parser) parseFor() *ast.Node {
	tok := p.cur
	p.advance()
	n := p.newNode(ast.For, tok)
	p.skip("(")

	p.scopes.Enter()
	defer p.scopes.Leave()

	if lexer.IsEqual(p.cur, ";") {
		p.skip(";")
	} else {
		n.Init = p.parseExpressionStatement()
	}

	beginAddr := p.ir.NextAddress()
	condJump := -1
	if !lexer.IsEqual(p.cur, ";") {
		n.Cond = p.parseExpression()
		condJump = p.ir.Emit("j=", tempName(n.Cond), "0", "")
	}
	p.skip(";")

	if !lexer.IsEqual(p.cur, ")") {
		n.Inc = p.parseExpression()
	}
	p.skip(")")

	n.Body = p.parseStatement()
	p.ir.Emit("j", "", "", strconv.Itoa(beginAddr))
	if condJump >= 0 {
		p.ir.Backpatch(condJump, strconv.Itoa(p.ir.NextAddress()))
	}
	return n
}

// parseWhile desugars to a For node with no Init/Inc, sharing For's
// lowering in codegen.
func (p *Parser) parseWhile() *ast.Node {
	tok := p.cur
	p.advance()
	n := p.newNode(ast.For, tok)

	p.skip("(")
	beginAddr := p.ir.NextAddress()
	n.Cond = p.parseExpression()
	condJump := p.ir.Emit("j=", tempName(n.Cond), "0", "")
	p.skip(")")

	n.Body = p.parseStatement()
	p.ir.Emit("j", "", "", strconv.Itoa(beginAddr))
	p.ir.Backpatch(condJump, strconv.Itoa(p.ir.NextAddress()))
	return n
}

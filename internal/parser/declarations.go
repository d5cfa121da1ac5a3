package parser

import (
	"fmt"

	"github.com/cwbudde/go-cc/internal/ast"
	"github.com/cwbudde/go-cc/internal/cerrors"
	"github.com/cwbudde/go-cc/internal/lexer"
	"github.com/cwbudde/go-cc/internal/types"
)

// parseProgram parses a whole translation unit: a sequence of top-level
// declarations, each either a function (definition or forward
// declaration) or a comma-separated list of global variables.
func (p *Parser) parseProgram() {
	p.scopes.Enter()
	for p.cur.Kind != lexer.EOF {
		p.parseTopLevelDeclaration()
	}
	p.scopes.Leave()
}

func (p *Parser) parseTopLevelDeclaration() {
	base := p.parseType()
	if p.consume(";") {
		// a bare struct/union declaration: the tag is already registered
		return
	}
	nameTok, full := p.parseDeclarator(base)

	if full.Kind == types.Function {
		if lexer.IsEqual(p.cur, ";") {
			p.declareFunction(nameTok, full, false)
			p.skip(";")
			return
		}
		p.parseFunctionDefinition(nameTok, full)
		return
	}

	p.declareGlobal(nameTok, full)
	for p.consume(",") {
		nameTok, full := p.parseDeclarator(base)
		p.declareGlobal(nameTok, full)
	}
	p.skip(";")
}

func (p *Parser) declareGlobal(tok *lexer.Token, t *types.Type) {
	if t.Kind == types.Void {
		p.fail(cerrors.KindType, tok, "variable cannot be of type void")
	}
	sym := &ast.Symbol{Kind: ast.VariableSymbol, Name: tok.Literal, Type: t, IsGlobal: true}
	if err := p.scopes.DeclareEntry(tok.Literal, sym); err != nil {
		p.fail(cerrors.KindScope, tok, err.Error())
	}
	p.program.AddGlobal(sym)
}

// declareFunction registers a function symbol, reusing a prior forward
// declaration of the same name rather than shadowing it.
func (p *Parser) declareFunction(tok *lexer.Token, t *types.Type, declared bool) *ast.Symbol {
	if existing, ok := p.scopes.FindEntry(tok.Literal).(*ast.Symbol); ok && existing != nil && existing.Kind == ast.FunctionSymbol {
		if declared {
			existing.Declared = true
		}
		return existing
	}
	sym := &ast.Symbol{Kind: ast.FunctionSymbol, Name: tok.Literal, Type: t, Declared: declared}
	if err := p.scopes.DeclareEntry(tok.Literal, sym); err != nil {
		p.fail(cerrors.KindScope, tok, err.Error())
	}
	p.program.AddGlobal(sym)
	return sym
}

// parseFunctionDefinition enters a new scope, creates a local-variable
// symbol per parameter in declaration order, parses the body block, then
// leaves the scope.
func (p *Parser) parseFunctionDefinition(tok *lexer.Token, t *types.Type) {
	sym := p.declareFunction(tok, t, true)
	prevFunc := p.curFunc
	p.curFunc = sym
	p.ir.Emit("begin", sym.Name, "", "")

	p.scopes.Enter()
	for param := t.Params; param != nil; param = param.Next {
		if param.Type.Token == nil {
			continue
		}
		local := &ast.Symbol{Kind: ast.VariableSymbol, Name: param.Type.Token.Literal, Type: param.Type}
		if err := p.scopes.DeclareEntry(local.Name, local); err != nil {
			p.fail(cerrors.KindScope, param.Type.Token, err.Error())
		}
		sym.AddLocal(local)
		p.ir.Emit("param", local.Name, "", "")
	}

	bodyTok := p.cur
	p.skip("{")
	sym.Body = p.parseBlock(bodyTok)

	p.scopes.Leave()
	p.curFunc = prevFunc
}

// parseLocalDeclarations parses one `type declarator ('=' expr)? (','
// declarator ('=' expr)?)* ';'` group, registering each name as a local of
// the enclosing function and returning an ExpressionStatement for every
// initializer.
func (p *Parser) parseLocalDeclarations() []*ast.Node {
	base := p.parseType()
	var stmts []*ast.Node

	for {
		nameTok, full := p.parseDeclarator(base)
		if full.Kind == types.Void {
			p.fail(cerrors.KindType, nameTok, "variable cannot be of type void")
		}
		local := &ast.Symbol{Kind: ast.VariableSymbol, Name: nameTok.Literal, Type: full}
		if err := p.scopes.DeclareEntry(nameTok.Literal, local); err != nil {
			p.fail(cerrors.KindScope, nameTok, err.Error())
		}
		if p.curFunc != nil {
			p.curFunc.AddLocal(local)
		}
		p.ir.Emit("declare", local.Name, fmt.Sprintf("%d", full.Size), "")

		if p.consume("=") {
			varNode := p.newVariable(nameTok, local)
			rhs := p.parseAssignExpr()
			assign := p.newAssignment(nameTok, varNode, rhs)
			stmt := p.newNode(ast.ExpressionStatement, nameTok)
			stmt.Left = assign
			stmts = append(stmts, stmt)
		}

		if !p.consume(",") {
			break
		}
	}
	p.skip(";")
	return stmts
}

// Package parser implements a recursive-descent parser over the lexer's
// token stream. Each non-terminal function advances the Parser's token
// cursor and returns an *ast.Node; type-checking and three-address-code
// emission happen as side effects of building each node.
package parser

import (
	"fmt"

	"github.com/cwbudde/go-cc/internal/ast"
	"github.com/cwbudde/go-cc/internal/cerrors"
	"github.com/cwbudde/go-cc/internal/ir"
	"github.com/cwbudde/go-cc/internal/lexer"
	"github.com/cwbudde/go-cc/internal/scope"
)

// Parser holds the compile-session context: the token cursor, the
// lexical scope stack, the three-address-code buffer, and the node
// numberer. A Parser is built fresh per compilation, so there is no
// hidden state to reset between calls.
type Parser struct {
	cur    *lexer.Token
	scopes *scope.Stack
	ir     *ir.Buffer
	nodes  ast.NodeNumberer
	source string
	file   string

	program    *ast.Program
	stringLits int

	curFunc *ast.Symbol // function currently being parsed, for labels/locals
}

// New creates a Parser positioned at the head of the token chain.
func New(head *lexer.Token, source, file string) *Parser {
	p := &Parser{
		cur:    head,
		scopes: scope.New(),
		ir:     ir.New(),
		source: source,
		file:   file,
		program: &ast.Program{},
	}
	return p
}

// IR returns the three-address-code buffer accumulated while parsing.
func (p *Parser) IR() *ir.Buffer { return p.ir }

// advance moves the cursor to the next token.
func (p *Parser) advance() {
	if p.cur.Kind != lexer.EOF {
		p.cur = p.cur.Next
	}
}

// skip requires the current token to read text, advances past it, and
// raises a fatal error otherwise.
func (p *Parser) skip(text string) *lexer.Token {
	tok := p.cur
	if !lexer.IsEqual(tok, text) {
		p.fail(cerrors.KindParse, tok, fmt.Sprintf("unexpected token %q, expected %q", tok.Literal, text))
	}
	p.advance()
	return tok
}

// consume advances past the current token and returns true if it reads
// text; otherwise it leaves the cursor untouched and returns false.
func (p *Parser) consume(text string) bool {
	if lexer.IsEqual(p.cur, text) {
		p.advance()
		return true
	}
	return false
}

// fail raises a typed, positioned compiler error and aborts compilation
// via panic/recover unwound at Parse's boundary: the first error aborts,
// there is no multi-error recovery.
func (p *Parser) fail(kind cerrors.Kind, tok *lexer.Token, msg string) {
	panic(cerrors.New(kind, tok.Pos, msg, p.source, p.file))
}

// Parse runs the full parser over the token stream, returning the
// program's symbol list or the first raised *cerrors.CompilerError.
func Parse(source, file string) (prog *ast.Program, ir *ir.Buffer, err error) {
	head, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		le := lexErr.(*lexer.Error)
		return nil, nil, cerrors.New(cerrors.KindLex, le.Pos, le.Message, source, file)
	}

	p := New(head, source, file)
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*cerrors.CompilerError); ok {
				err = ce
				return
			}
			panic(r)
		}
	}()

	p.parseProgram()
	return p.program, p.ir, nil
}

func (p *Parser) freshNumber() int { return p.nodes.Next() }

func (p *Parser) newNode(kind ast.NodeKind, tok *lexer.Token) *ast.Node {
	return &ast.Node{Kind: kind, Tok: tok, Num: p.freshNumber()}
}

// tempName returns the synthetic temporary name used for n in the TAC
// listing.
func tempName(n *ast.Node) string {
	return fmt.Sprintf("N%d", n.Num)
}

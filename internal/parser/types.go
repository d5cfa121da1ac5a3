package parser

import (
	"fmt"

	"github.com/cwbudde/go-cc/internal/cerrors"
	"github.com/cwbudde/go-cc/internal/lexer"
	"github.com/cwbudde/go-cc/internal/types"
)

// atTypeStart reports whether the current token begins a type production.
func (p *Parser) atTypeStart() bool {
	return lexer.IsTokenTypeKeyword(p.cur)
}

// parseType parses the `type` production: a scalar keyword or a
// struct/union (with optional tag and optional body).
func (p *Parser) parseType() *types.Type {
	switch p.cur.Literal {
	case "int":
		p.advance()
		return types.NewInt()
	case "short":
		p.advance()
		return types.NewShort()
	case "char":
		p.advance()
		return types.NewChar()
	case "i64":
		p.advance()
		return types.NewInt64()
	case "void":
		p.advance()
		return types.NewVoid()
	case "struct":
		return p.parseStructOrUnion(types.NewStructType)
	case "union":
		return p.parseStructOrUnion(types.NewUnionType)
	default:
		p.fail(cerrors.KindParse, p.cur, fmt.Sprintf("expected a type, got %q", p.cur.Literal))
		return nil
	}
}

func (p *Parser) parseStructOrUnion(build func(tag string, members *types.Member) *types.Type) *types.Type {
	p.advance() // 'struct' | 'union'

	tag := ""
	if p.cur.Kind == lexer.Identifier {
		tag = p.cur.Literal
		p.advance()
	}

	if !p.consume("{") {
		if tag == "" {
			p.fail(cerrors.KindParse, p.cur, "expected '{' or a tag after struct/union")
		}
		t := p.scopes.FindTag(tag)
		if t == nil {
			p.fail(cerrors.KindScope, p.cur, fmt.Sprintf("tag %q not found", tag))
		}
		return t
	}

	var head, tail *types.Member
	for !lexer.IsEqual(p.cur, "}") {
		memberType := p.parseType()
		for {
			name, full := p.parseDeclarator(memberType)
			m := &types.Member{Name: name.Literal, Type: full}
			if head == nil {
				head = m
			} else {
				tail.Next = m
			}
			tail = m
			if !p.consume(",") {
				break
			}
		}
		p.skip(";")
	}
	p.skip("}")

	t := build(tag, head)
	if tag != "" {
		_ = p.scopes.DeclareTag(tag, t)
	}
	return t
}

// parseDeclarator parses `'*'* (identifier | '(' declarator ')') type-suffix`
// and returns the declared identifier token plus its fully composed type,
// built around base. Parenthesized declarators are resolved with a
// placeholder type that is filled in once the outer suffix is known,
// mirroring how `T (*x)[N]` nests against `T *x[N]`.
func (p *Parser) parseDeclarator(base *types.Type) (*lexer.Token, *types.Type) {
	for p.consume("*") {
		base = types.NewPointer(base)
	}

	if p.consume("(") {
		placeholder := &types.Type{}
		name, inner := p.parseDeclarator(placeholder)
		p.skip(")")
		filled := p.parseTypeSuffix(base)
		filled.Token = name
		*placeholder = *filled
		return name, inner
	}

	if p.cur.Kind != lexer.Identifier {
		p.fail(cerrors.KindParse, p.cur, "expected an identifier in declarator")
	}
	name := p.cur
	p.advance()
	ty := p.parseTypeSuffix(base)
	ty.Token = name
	return name, ty
}

// parseTypeSuffix parses `( '(' param-list ')' | '[' number ']' )*`,
// applying array suffixes innermost-first so that `a[3][4]` means
// "array of 3 of array of 4 of base".
func (p *Parser) parseTypeSuffix(base *types.Type) *types.Type {
	if p.consume("(") {
		params := p.parseParamList()
		p.skip(")")
		return types.NewFunction(base, params)
	}
	if p.consume("[") {
		if p.cur.Kind != lexer.NumericLiteral {
			p.fail(cerrors.KindParse, p.cur, "invalid array size")
		}
		n := int(p.cur.NumVal)
		p.advance()
		p.skip("]")
		elem := p.parseTypeSuffix(base)
		return types.NewArray(elem, n)
	}
	return base
}

// parseParamList parses `'void' | (type declarator (',' type declarator)*)?`.
func (p *Parser) parseParamList() *types.Param {
	if lexer.IsEqual(p.cur, ")") {
		return nil
	}
	if lexer.IsTokenKeyword(p.cur, "void") && lexer.IsEqual(p.cur.Next, ")") {
		p.advance()
		return nil
	}

	var head, tail *types.Param
	for {
		pt := p.parseType()
		_, full := p.parseDeclarator(pt)
		param := &types.Param{Type: full}
		if head == nil {
			head = param
		} else {
			tail.Next = param
		}
		tail = param
		if !p.consume(",") {
			break
		}
	}
	return head
}

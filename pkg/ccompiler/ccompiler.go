// Package ccompiler is the public facade tying the lexer, parser, and code
// generator together: Compile(source) → assembly text and a quadruple
// listing, or the first error raised anywhere in the pipeline.
package ccompiler

import (
	"github.com/cwbudde/go-cc/internal/codegen"
	"github.com/cwbudde/go-cc/internal/ir"
	"github.com/cwbudde/go-cc/internal/parser"
)

// Result holds the two artifacts a successful compilation produces:
// GNU-assembler text and the three-address-code listing.
type Result struct {
	Assembly  string
	Quadruple string
}

// Compile runs source through tokenize → parse (which emits the
// three-address-code buffer as a side effect) → generate. file names the
// source for error messages; pass "" if there is none.
func Compile(source, file string) (Result, error) {
	prog, buf, err := parser.Parse(source, file)
	if err != nil {
		return Result{}, err
	}

	asm, err := codegen.Generate(prog, source, file)
	if err != nil {
		return Result{}, err
	}

	return Result{Assembly: asm, Quadruple: ir.Format(buf)}, nil
}

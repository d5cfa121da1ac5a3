// Package cerrors formats compiler errors with source context, line/column
// information, and a caret pointing at the offending token.
package cerrors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-cc/internal/lexer"
)

// Kind names the stable short error category. The message text is
// illustrative; Kind is what callers should switch on.
type Kind string

const (
	KindLex     Kind = "lex"
	KindParse   Kind = "parse"
	KindScope   Kind = "scope"
	KindType    Kind = "type"
	KindCodegen Kind = "codegen"
)

// CompilerError is a single, positioned compilation failure. Compilation
// aborts on the first one raised; there is no multi-error recovery.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     lexer.Position
	Kind    Kind
}

// New creates a CompilerError of the given kind.
func New(kind Kind, pos lexer.Position, message, source, file string) *CompilerError {
	return &CompilerError{Kind: kind, Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the error with a file:line:col header, the offending
// source line, and a caret under the error column. If color is true, ANSI
// codes highlight the caret and message.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(fmt.Sprintf("[%s] %s", e.Kind, e.Message))
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

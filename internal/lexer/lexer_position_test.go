package lexer

import "testing"

func TestTokenizePositionsAcrossLines(t *testing.T) {
	toks := tokens(t, "int a;\nint b;")
	// second "int" is on line 2, column 1
	var secondInt *Token
	count := 0
	for _, tok := range toks {
		if tok.Literal == "int" {
			count++
			if count == 2 {
				secondInt = tok
			}
		}
	}
	if secondInt == nil {
		t.Fatalf("expected two int tokens")
	}
	if secondInt.Pos.Line != 2 || secondInt.Pos.Column != 1 {
		t.Fatalf("expected line 2 column 1, got %+v", secondInt.Pos)
	}
}

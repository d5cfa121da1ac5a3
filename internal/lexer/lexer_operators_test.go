package lexer

import "testing"

func TestTokenizeTwoCharOperatorsPreferred(t *testing.T) {
	cases := []string{"==", "!=", "<=", ">=", "->"}
	for _, op := range cases {
		toks := tokens(t, op)
		if toks[0].Kind != Punctuator || toks[0].Literal != op {
			t.Fatalf("%q: expected single Punctuator token %q, got %+v", op, op, toks[0])
		}
	}
}

func TestTokenizeSingleCharPunctuators(t *testing.T) {
	toks := tokens(t, "+-*/(){}[];,&.")
	want := []string{"+", "-", "*", "/", "(", ")", "{", "}", "[", "]", ";", ",", "&", "."}
	for i, w := range want {
		if toks[i].Literal != w {
			t.Fatalf("token %d: want %q, got %q", i, w, toks[i].Literal)
		}
	}
}

func TestTokenizeUnrecognizedCharacterIsError(t *testing.T) {
	_, err := Tokenize("x = 1; \x01")
	if err == nil {
		t.Fatalf("expected error for unrecognized character")
	}
}

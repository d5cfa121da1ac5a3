package lexer

import "testing"

func TestTokenizeStringLiteralBasic(t *testing.T) {
	toks := tokens(t, `"hello"`)
	if toks[0].Kind != StringLiteral {
		t.Fatalf("expected StringLiteral, got %+v", toks[0])
	}
	want := "hello\x00"
	if toks[0].StrVal != want {
		t.Fatalf("got %q, want %q", toks[0].StrVal, want)
	}
}

func TestTokenizeStringLiteralEscapes(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`"\n"`, "\n\x00"},
		{`"\t"`, "\t\x00"},
		{`"\\"`, "\\\x00"},
		{`"\""`, "\"\x00"},
		{`"\x41"`, "A\x00"},
		{`"\101"`, "A\x00"},
		{`"\q"`, "q\x00"},
	}
	for _, c := range cases {
		toks := tokens(t, c.src)
		if toks[0].StrVal != c.want {
			t.Fatalf("%s: got %q, want %q", c.src, toks[0].StrVal, c.want)
		}
	}
}

func TestTokenizeUnterminatedStringIsError(t *testing.T) {
	_, err := Tokenize(`"hello`)
	if err == nil {
		t.Fatalf("expected error for unterminated string literal")
	}
}

func TestTokenizeUnterminatedBlockCommentIsError(t *testing.T) {
	_, err := Tokenize("/* never closes")
	if err == nil {
		t.Fatalf("expected error for unterminated block comment")
	}
}

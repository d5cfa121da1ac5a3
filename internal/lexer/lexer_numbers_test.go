package lexer

import "testing"

func TestTokenizeNumericLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"1000000", 1000000},
	}
	for _, c := range cases {
		toks := tokens(t, c.src)
		if toks[0].Kind != NumericLiteral {
			t.Fatalf("%q: expected NumericLiteral, got %+v", c.src, toks[0])
		}
		if toks[0].NumVal != c.want {
			t.Fatalf("%q: expected value %d, got %d", c.src, c.want, toks[0].NumVal)
		}
		if toks[0].Len != len(c.src) {
			t.Fatalf("%q: expected length %d, got %d", c.src, len(c.src), toks[0].Len)
		}
	}
}

func TestTokenizeNumberThenIdentifier(t *testing.T) {
	toks := tokens(t, "3x")
	if toks[0].Kind != NumericLiteral || toks[0].NumVal != 3 {
		t.Fatalf("expected NumericLiteral 3 first, got %+v", toks[0])
	}
	if toks[1].Kind != Identifier || toks[1].Literal != "x" {
		t.Fatalf("expected Identifier x second, got %+v", toks[1])
	}
}

package lexer

// keywords is the reserved-word table. The lexer scans every identifier-like
// run first and reclassifies it to Keyword in a final pass if it matches.
var keywords = map[string]bool{
	"return": true,
	"if":     true,
	"else":   true,
	"for":    true,
	"while":  true,
	"int":    true,
	"void":   true,
	"char":   true,
	"i64":    true,
	"short":  true,
	"sizeof": true,
	"struct": true,
	"union":  true,
}

// typeKeywords is the subset of keywords that introduce a type in the grammar.
var typeKeywords = map[string]bool{
	"int":    true,
	"void":   true,
	"char":   true,
	"i64":    true,
	"short":  true,
	"struct": true,
	"union":  true,
}

// IsKeyword reports whether text is a reserved word.
func IsKeyword(text string) bool {
	return keywords[text]
}

// IsTypeKeyword reports whether text begins a type in the grammar.
func IsTypeKeyword(text string) bool {
	return typeKeywords[text]
}

package lexer

// IsEqual reports whether tok's source slice equals text exactly.
func IsEqual(tok *Token, text string) bool {
	return tok != nil && tok.Literal == text
}

// IsTokenKeyword reports whether tok was reclassified to Keyword and reads text.
func IsTokenKeyword(tok *Token, text string) bool {
	return tok != nil && tok.Kind == Keyword && tok.Literal == text
}

// IsTokenTypeKeyword reports whether tok starts a type in the grammar.
func IsTokenTypeKeyword(tok *Token) bool {
	return tok != nil && tok.Kind == Keyword && IsTypeKeyword(tok.Literal)
}

// isIdentStart reports whether r can start an identifier: [A-Za-z_].
func isIdentStart(r byte) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isIdentPart reports whether r can continue an identifier: [A-Za-z0-9_].
func isIdentPart(r byte) bool {
	return isIdentStart(r) || isDigit(r)
}

func isDigit(r byte) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r byte) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isOctalDigit(r byte) bool {
	return r >= '0' && r <= '7'
}

// twoCharPunctuators is tried before the single-character set so that,
// e.g., "==" is never split into two "=" tokens.
var twoCharPunctuators = []string{"==", "!=", "<=", ">=", "->"}

// singleCharPunctuators is the fallback one-character punctuator alphabet.
const singleCharPunctuators = "!\"#$%&'()*+,-./:;<=>?@[]^_`{|}~"

func isSingleCharPunctuator(r byte) bool {
	for i := 0; i < len(singleCharPunctuators); i++ {
		if singleCharPunctuators[i] == r {
			return true
		}
	}
	return false
}

package monkey

import (
	"testing"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		token    Token
		expected string
	}{
		{simpleToken(TokenLet), "Token(LET)"},
		{simpleToken(TokenEqual), "Token(==)"},
		{simpleToken(TokenEOF), "Token(EOF)"},
		{dataToken(TokenIdent, "five"), `Token(IDENT("five"))`},
		{dataToken(TokenInt, "5"), `Token(INT("5"))`},
		{dataToken(TokenIllegal, "@"), `Token(ILLEGAL("@"))`},
	}

	for _, tt := range tests {
		assertEqual(t, tt.token.String(), tt.expected)
	}
}

func TestLookupIdent(t *testing.T) {
	tests := map[string]TokenKind{
		"fn":     TokenFunction,
		"let":    TokenLet,
		"true":   TokenTrue,
		"false":  TokenFalse,
		"if":     TokenIf,
		"else":   TokenElse,
		"return": TokenReturn,
		"lets":   TokenIdent,
		"Let":    TokenIdent,
		"x":      TokenIdent,
	}

	for ident, kind := range tests {
		if got := LookupIdent(ident); got != kind {
			t.Errorf("LookupIdent(%q): expected %s, got %s", ident, kind, got)
		}
	}
}

func TestKeywordLiteralsRoundTrip(t *testing.T) {
	for ident, kind := range keywords {
		if kind.Literal() != ident {
			t.Errorf("%s: canonical literal %q does not match keyword %q", kind, kind.Literal(), ident)
		}
	}
}

func TestPrecedenceOf(t *testing.T) {
	tests := []struct {
		kind       TokenKind
		precedence Precedence
	}{
		{TokenEqual, Equals},
		{TokenNotEqual, Equals},
		{TokenLessThan, LessGreater},
		{TokenGreaterThan, LessGreater},
		{TokenPlus, Sum},
		{TokenMinus, Sum},
		{TokenAsterisk, Product},
		{TokenSlash, Product},
		{TokenAssign, Lowest},
		{TokenBang, Lowest},
		{TokenSemicolon, Lowest},
		{TokenIdent, Lowest},
		{TokenEOF, Lowest},
	}

	for _, tt := range tests {
		if got := PrecedenceOf(tt.kind); got != tt.precedence {
			t.Errorf("PrecedenceOf(%s): expected %s, got %s", tt.kind, tt.precedence, got)
		}
	}
}

func TestPrecedenceLadder(t *testing.T) {
	ladder := []Precedence{Lowest, Equals, LessGreater, Sum, Product, Prefix, Call}

	for i := 1; i < len(ladder); i++ {
		if ladder[i-1] >= ladder[i] {
			t.Errorf("%s should bind looser than %s", ladder[i-1], ladder[i])
		}
	}
}

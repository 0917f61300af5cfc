package monkey

import (
	"strings"
	"unicode"
)

const (
	charsWhitespace = " \t\r\n"
	charsInteger    = "0123456789"
)

// charNone marks the end of input.
const charNone rune = -1

// Tokenizer scans source text into tokens one at a time.
// A Tokenizer must not be shared between goroutines.
type Tokenizer struct {
	input        []rune
	position     int // index of ch
	readPosition int // index of the next character
	ch           rune
}

// NewTokenizer returns a tokenizer positioned on the first character of input.
func NewTokenizer(input string) *Tokenizer {
	var t = &Tokenizer{input: []rune(input)}
	t.advance()
	return t
}

func (t *Tokenizer) advance() {
	if t.readPosition >= len(t.input) {
		t.ch = charNone
	} else {
		t.ch = t.input[t.readPosition]
	}

	t.position = t.readPosition
	t.readPosition++
}

func (t *Tokenizer) peek() rune {
	if t.readPosition >= len(t.input) {
		return charNone
	}
	return t.input[t.readPosition]
}

// NextToken returns the next token. Once the input is exhausted every
// call returns an EOF token with an empty literal.
func (t *Tokenizer) NextToken() Token {
	t.skipWhitespace()

	var token Token

	switch t.ch {
	case charNone:
		return simpleToken(TokenEOF)
	case '=':
		if t.peek() == '=' {
			t.advance()
			token = simpleToken(TokenEqual)
		} else {
			token = simpleToken(TokenAssign)
		}
	case '!':
		if t.peek() == '=' {
			t.advance()
			token = simpleToken(TokenNotEqual)
		} else {
			token = simpleToken(TokenBang)
		}
	case '+':
		token = simpleToken(TokenPlus)
	case '-':
		token = simpleToken(TokenMinus)
	case '*':
		token = simpleToken(TokenAsterisk)
	case '/':
		token = simpleToken(TokenSlash)
	case '<':
		token = simpleToken(TokenLessThan)
	case '>':
		token = simpleToken(TokenGreaterThan)
	case ',':
		token = simpleToken(TokenComma)
	case ';':
		token = simpleToken(TokenSemicolon)
	case '(':
		token = simpleToken(TokenLeftParen)
	case ')':
		token = simpleToken(TokenRightParen)
	case '{':
		token = simpleToken(TokenLeftBrace)
	case '}':
		token = simpleToken(TokenRightBrace)
	default:
		// identifiers and integers stop on the first character that
		// is not part of them, so they return without advancing
		if isLetter(t.ch) {
			var ident = t.readWhile(isLetter)
			return dataToken(LookupIdent(ident), ident)
		}

		if isDigit(t.ch) {
			return dataToken(TokenInt, t.readWhile(isDigit))
		}

		token = dataToken(TokenIllegal, string(t.ch))
	}

	t.advance()
	return token
}

func (t *Tokenizer) skipWhitespace() {
	for t.ch != charNone && strings.ContainsRune(charsWhitespace, t.ch) {
		t.advance()
	}
}

func (t *Tokenizer) readWhile(check func(rune) bool) string {
	var start = t.position
	for t.ch != charNone && check(t.ch) {
		t.advance()
	}
	return string(t.input[start:t.position])
}

func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return strings.ContainsRune(charsInteger, r)
}

// Tokenize scans the whole input. The result always ends with
// exactly one EOF token.
func Tokenize(input string) []Token {
	var tokenizer = NewTokenizer(input)
	var tokens []Token

	for {
		var token = tokenizer.NextToken()
		tokens = append(tokens, token)

		if token.Kind == TokenEOF {
			return tokens
		}
	}
}

package monkey

import (
	"fmt"
	"strconv"
)

// TokenKind classifies a token. The set is closed.
type TokenKind int32

const (
	TokenIllegal TokenKind = iota
	TokenEOF

	TokenIdent
	TokenInt

	// operators
	TokenAssign
	TokenPlus
	TokenMinus
	TokenBang
	TokenAsterisk
	TokenSlash
	TokenLessThan
	TokenGreaterThan
	TokenEqual
	TokenNotEqual

	// delimiters
	TokenComma
	TokenSemicolon
	TokenLeftParen
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace

	// keywords
	TokenFunction
	TokenLet
	TokenTrue
	TokenFalse
	TokenIf
	TokenElse
	TokenReturn
)

// Literal returns the canonical lexeme of a fixed kind.
// Kinds whose text comes from the source (identifiers, integers,
// illegal characters, end of input) have no canonical literal.
func (k TokenKind) Literal() string {
	switch k {
	case TokenAssign:
		return "="
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenBang:
		return "!"
	case TokenAsterisk:
		return "*"
	case TokenSlash:
		return "/"
	case TokenLessThan:
		return "<"
	case TokenGreaterThan:
		return ">"
	case TokenEqual:
		return "=="
	case TokenNotEqual:
		return "!="
	case TokenComma:
		return ","
	case TokenSemicolon:
		return ";"
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenLeftBrace:
		return "{"
	case TokenRightBrace:
		return "}"
	case TokenFunction:
		return "fn"
	case TokenLet:
		return "let"
	case TokenTrue:
		return "true"
	case TokenFalse:
		return "false"
	case TokenIf:
		return "if"
	case TokenElse:
		return "else"
	case TokenReturn:
		return "return"
	default:
		return ""
	}
}

func (k TokenKind) String() string {
	switch k {
	case TokenIllegal:
		return "ILLEGAL"
	case TokenEOF:
		return "EOF"
	case TokenIdent:
		return "IDENT"
	case TokenInt:
		return "INT"
	case TokenFunction:
		return "FUNCTION"
	case TokenLet:
		return "LET"
	case TokenTrue:
		return "TRUE"
	case TokenFalse:
		return "FALSE"
	case TokenIf:
		return "IF"
	case TokenElse:
		return "ELSE"
	case TokenReturn:
		return "RETURN"
	}

	if lit := k.Literal(); lit != "" {
		return lit
	}

	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Token is an immutable lexical unit.
type Token struct {
	Kind    TokenKind
	Literal string
}

func (t Token) String() string {
	switch t.Kind {
	case TokenIdent, TokenInt, TokenIllegal:
		return fmt.Sprintf("Token(%s(%q))", t.Kind, t.Literal)
	default:
		return fmt.Sprintf("Token(%s)", t.Kind)
	}
}

func simpleToken(kind TokenKind) Token {
	return Token{Kind: kind, Literal: kind.Literal()}
}

func dataToken(kind TokenKind, literal string) Token {
	return Token{Kind: kind, Literal: literal}
}

var keywords = map[string]TokenKind{
	"fn":     TokenFunction,
	"let":    TokenLet,
	"true":   TokenTrue,
	"false":  TokenFalse,
	"if":     TokenIf,
	"else":   TokenElse,
	"return": TokenReturn,
}

// LookupIdent returns the keyword kind for ident, or TokenIdent.
func LookupIdent(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}

// Precedence is the binding power of an infix operator.
type Precedence int

const (
	Lowest Precedence = iota
	Equals
	LessGreater
	Sum
	Product
	Prefix
	Call
)

func (p Precedence) String() string {
	switch p {
	case Lowest:
		return "Lowest"
	case Equals:
		return "Equals"
	case LessGreater:
		return "LessGreater"
	case Sum:
		return "Sum"
	case Product:
		return "Product"
	case Prefix:
		return "Prefix"
	case Call:
		return "Call"
	default:
		return "Precedence(" + strconv.Itoa(int(p)) + ")"
	}
}

var precedences = map[TokenKind]Precedence{
	TokenEqual:       Equals,
	TokenNotEqual:    Equals,
	TokenLessThan:    LessGreater,
	TokenGreaterThan: LessGreater,
	TokenPlus:        Sum,
	TokenMinus:       Sum,
	TokenAsterisk:    Product,
	TokenSlash:       Product,
}

// PrecedenceOf returns the infix precedence of kind, or Lowest when
// kind is not an infix operator.
func PrecedenceOf(kind TokenKind) Precedence {
	if p, ok := precedences[kind]; ok {
		return p
	}
	return Lowest
}

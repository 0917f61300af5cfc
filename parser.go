package monkey

import (
	"fmt"
	"strconv"
)

type (
	prefixParseFn func() Expression
	infixParseFn  func(left Expression) Expression
)

// Parser builds a Program from a tokenizer. It keeps two tokens of
// state, the current token and one token of lookahead, and collects
// diagnostics instead of stopping at the first error.
type Parser struct {
	tokenizer *Tokenizer
	errors    []string

	curToken  Token
	peekToken Token

	prefixParseFns map[TokenKind]prefixParseFn
	infixParseFns  map[TokenKind]infixParseFn
}

func NewParser(tokenizer *Tokenizer) *Parser {
	var p = &Parser{tokenizer: tokenizer}

	p.prefixParseFns = map[TokenKind]prefixParseFn{
		TokenIdent: p.parseIdentifier,
		TokenInt:   p.parseIntegerLiteral,
		TokenBang:  p.parsePrefixExpression,
		TokenMinus: p.parsePrefixExpression,
	}

	p.infixParseFns = make(map[TokenKind]infixParseFn, len(precedences))
	for kind := range precedences {
		p.infixParseFns[kind] = p.parseInfixExpression
	}

	// read two tokens so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns the diagnostics recorded so far, in detection order.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.tokenizer.NextToken()
}

// ParseProgram parses statements until the end of input. The returned
// program holds every statement that parsed; check Errors for the rest.
func (p *Parser) ParseProgram() *Program {
	var program = &Program{Statements: []Statement{}}

	for !p.curTokenIs(TokenEOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() Statement {
	switch p.curToken.Kind {
	case TokenLet:
		return p.parseLetStatement()
	case TokenReturn:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() Statement {
	var stmt = &LetStatement{Token: p.curToken}

	if !p.expectPeek(TokenIdent) {
		return nil
	}

	stmt.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(TokenAssign) {
		return nil
	}

	p.nextToken()

	stmt.Value = p.parseExpression(Lowest)
	if stmt.Value == nil {
		return nil
	}

	if p.peekTokenIs(TokenSemicolon) {
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseReturnStatement() Statement {
	var stmt = &ReturnStatement{Token: p.curToken}

	p.nextToken()

	stmt.Value = p.parseExpression(Lowest)
	if stmt.Value == nil {
		return nil
	}

	if p.peekTokenIs(TokenSemicolon) {
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseExpressionStatement() Statement {
	var stmt = &ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(Lowest)
	if stmt.Expression == nil {
		return nil
	}

	// the trailing semicolon is optional
	if p.peekTokenIs(TokenSemicolon) {
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseExpression(precedence Precedence) Expression {
	var prefix = p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Kind)
		return nil
	}

	var left = prefix()
	if left == nil {
		return nil
	}

	for !p.peekTokenIs(TokenSemicolon) && precedence < p.peekPrecedence() {
		var infix = p.infixParseFns[p.peekToken.Kind]
		if infix == nil {
			return left
		}

		p.nextToken()

		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() Expression {
	var value, err = strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf("could not parse %q as integer", p.curToken.Literal))
		return nil
	}

	return &IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parsePrefixExpression() Expression {
	var expression = &PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken()

	expression.Right = p.parseExpression(Prefix)
	if expression.Right == nil {
		return nil
	}

	return expression
}

func (p *Parser) parseInfixExpression(left Expression) Expression {
	var expression = &InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}

	var precedence = p.curPrecedence()
	p.nextToken()

	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}

	return expression
}

func (p *Parser) curTokenIs(kind TokenKind) bool {
	return p.curToken.Kind == kind
}

func (p *Parser) peekTokenIs(kind TokenKind) bool {
	return p.peekToken.Kind == kind
}

// expectPeek advances only when the peek token has the given kind.
func (p *Parser) expectPeek(kind TokenKind) bool {
	if p.peekTokenIs(kind) {
		p.nextToken()
		return true
	}

	p.peekError(kind)
	return false
}

func (p *Parser) peekError(kind TokenKind) {
	var msg = fmt.Sprintf("expected next token to be %s, got %s instead", kind, p.peekToken.Kind)
	p.errors = append(p.errors, msg)
}

func (p *Parser) noPrefixParseFnError(kind TokenKind) {
	var msg = fmt.Sprintf("no prefix parse function for %s found", kind)
	p.errors = append(p.errors, msg)
}

func (p *Parser) peekPrecedence() Precedence {
	return PrecedenceOf(p.peekToken.Kind)
}

func (p *Parser) curPrecedence() Precedence {
	return PrecedenceOf(p.curToken.Kind)
}

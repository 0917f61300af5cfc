package main

import (
	"bytes"
	"strings"
	"testing"
)

func runREPL(t *testing.T, m string, input string) string {
	t.Helper()

	oldMode, oldPrompt := *mode, *prompt
	*mode, *prompt = m, ""
	defer func() { *mode, *prompt = oldMode, oldPrompt }()

	var out bytes.Buffer
	if err := start(strings.NewReader(input), &out); err != nil {
		t.Fatalf("start: %v", err)
	}

	return out.String()
}

func TestTokensMode(t *testing.T) {
	got := runREPL(t, "tokens", "let five = 5;\n")
	expected := `Token(LET)
Token(IDENT("five"))
Token(=)
Token(INT("5"))
Token(;)
`

	if got != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestASTMode(t *testing.T) {
	got := runREPL(t, "ast", "a + b * c\n-a * b\n")
	expected := "(a + (b * c))\n((-a) * b)\n"

	if got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestJSONMode(t *testing.T) {
	got := runREPL(t, "json", "1 < 2\n")

	if !strings.Contains(got, `"operator": "<"`) {
		t.Fatalf("expected unescaped operator in %q", got)
	}
}

func TestBlankLineStops(t *testing.T) {
	got := runREPL(t, "ast", "x\n\ny\n")

	if got != "x\n" {
		t.Fatalf("expected only the first line to be printed, got %q", got)
	}
}

func TestParserErrorsPrinted(t *testing.T) {
	got := runREPL(t, "ast", "let x 5;\n")
	expected := "parser errors:\n\texpected next token to be =, got INT instead\n"

	if got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"monkey"
)

var mode = flag.String("mode", "tokens", "what to print for each line: 'tokens', 'ast' or 'json'")
var prompt = flag.String("prompt", ">> ", "prompt shown before each line")

func main() {
	flag.Parse()

	switch *mode {
	case "tokens", "ast", "json":
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	if err := start(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("read error: %v", err)
	}
}

// start reads lines from in until a blank line or end of input.
func start(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, *prompt)

		if !scanner.Scan() {
			return scanner.Err()
		}

		line := scanner.Text()
		if line == "" {
			return nil
		}

		switch *mode {
		case "tokens":
			printTokens(out, line)
		case "ast":
			printProgram(out, line)
		case "json":
			printJSON(out, line)
		}
	}
}

func printTokens(out io.Writer, line string) {
	for _, tok := range monkey.Tokenize(line) {
		if tok.Kind == monkey.TokenEOF {
			break
		}
		fmt.Fprintln(out, tok)
	}
}

func printProgram(out io.Writer, line string) {
	program, err := monkey.Parse(line)
	if err != nil {
		printParserErrors(out, err)
		return
	}

	io.WriteString(out, program.String())
	io.WriteString(out, "\n")
}

func printJSON(out io.Writer, line string) {
	program, err := monkey.Parse(line)
	if err != nil {
		printParserErrors(out, err)
		return
	}

	data, err := monkey.DumpJSON(program)
	if err != nil {
		fmt.Fprintf(out, "dump error: %s\n", err)
		return
	}

	out.Write(data)
	io.WriteString(out, "\n")
}

func printParserErrors(out io.Writer, err error) {
	io.WriteString(out, "parser errors:\n")

	var parseErr *monkey.ParseError
	if !errors.As(err, &parseErr) {
		io.WriteString(out, "\t"+err.Error()+"\n")
		return
	}

	for _, msg := range parseErr.Messages {
		io.WriteString(out, "\t"+msg+"\n")
	}
}

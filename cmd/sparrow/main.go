/*
File    : sparrow/cmd/sparrow/main.go
*/

// Command sparrow is the interpreter's entry point. By default it runs the
// fixed-path driver: read run/interpret.txt, lex, parse, evaluate, and
// write the resulting bytes to stdout exactly, with a non-zero exit and a
// stderr message on any error. The -repl flag launches an interactive shell
// instead.
package main

import (
	"flag"
	"fmt"
	"os"

	"sparrow/eval"
	"sparrow/lexer"
	"sparrow/parser"
	"sparrow/repl"
)

const (
	version = "v0.1.0"
	author  = "sparrow contributors"
	license = "MIT"
	prompt  = "sparrow >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
   ____
  / ___| _ __   __ _ _ __ _ __ _____      __
  \___ \| '_ \ / _' | '__| '__/ _ \ \ /\ / /
   ___) | |_) | (_| | |  | | | (_) \ V  V /
  |____/| .__/ \__,_|_|  |_|  \___/ \_/\_/
        |_|
`
)

// sourcePath is the fixed relative path the driver reads.
const sourcePath = "run/interpret.txt"

func main() {
	replMode := flag.Bool("repl", false, "start an interactive session instead of running "+sourcePath)
	flag.Parse()

	if *replMode {
		r := repl.NewRepl(banner, version, author, line, license, prompt)
		r.Start(os.Stdin, os.Stdout)
		return
	}

	if err := runDriver(sourcePath, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runDriver implements the fixed-path file driver: read, lex, parse,
// evaluate, and write the exact output bytes, unmodified.
func runDriver(path string, out *os.File) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	tokens, err := lexer.NewLexer(string(source)).Tokenize()
	if err != nil {
		return err
	}

	stmts, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return err
	}

	evaluator := eval.New(os.Stdin, out)
	result, err := evaluator.Run(stmts)
	if err != nil {
		return err
	}
	if result != "" {
		fmt.Fprint(out, result)
	}
	return nil
}

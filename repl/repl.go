/*
File    : sparrow/repl/repl.go
*/

// Package repl implements an interactive Read-Eval-Print Loop over the
// lexer/parser/eval pipeline: readline-backed history and line editing, a
// colored banner and prompt, and panic recovery around each submitted line
// so one bad statement doesn't kill the session.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"sparrow/eval"
	"sparrow/lexer"
	"sparrow/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session; the
// language state itself lives in the *eval.Evaluator created in Start.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to sparrow!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against reader/writer, keeping a single
// *eval.Evaluator alive across lines so definitions accumulate the way a
// single program's top-level statements would.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New(reader, writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evaluator)
	}
}

// executeWithRecovery lexes, parses, and evaluates one line against the
// session's persistent evaluator, recovering from any panic so the loop
// keeps running — unlike the file driver, the REPL never exits on error.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	tokens, err := lexer.NewLexer(line).Tokenize()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	stmts, err := parser.NewParser(tokens).Parse()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	evaluator.ResetOutput()
	result, err := evaluator.Run(stmts)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	if result != "" {
		yellowColor.Fprintf(writer, "%s\n", result)
	}
}

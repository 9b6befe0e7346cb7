/*
File    : sparrow/eval/evaluator.go
*/

// Package eval walks the AST produced by package parser against a
// scope.Scope environment and produces objects.Value results. Dispatch is a
// single Go type switch over the closed parser.Node variants, not a visitor
// interface and not reflection.
package eval

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sparrow/lexer"
	"sparrow/objects"
	"sparrow/parser"
	"sparrow/scope"
)

// Evaluator holds the root environment and the program's accumulated
// output. print(...) has the side effect of appending to that output the
// moment it runs, wherever in the tree it runs — including deep inside
// nested for/while/if bodies — which is what lets a loop body's repeated
// print calls surface as the driver's output even though the driver itself
// only ever looks at top-level statement results (see DESIGN.md for why
// this design was chosen).
type Evaluator struct {
	Root      *scope.Scope
	In        *bufio.Reader
	Out       io.Writer
	emissions []string
}

// New builds an Evaluator with a fresh root environment carrying the
// language's three well-known constants.
func New(in io.Reader, out io.Writer) *Evaluator {
	root := scope.New(nil)
	root.Set("true", objects.NewInt(1))
	root.Set("false", objects.NewInt(0))
	root.Set("null", objects.NewInt(0))
	return &Evaluator{Root: root, In: bufio.NewReader(in), Out: out}
}

// Emit records one line of program output.
func (e *Evaluator) Emit(text string) {
	e.emissions = append(e.emissions, text)
}

// ReadLine reads one line from the evaluator's input stream, satisfying
// std.Runtime for the input/input_int builtins. A final line with no
// trailing newline still counts as a line, matching bufio.Scanner's
// end-of-input behavior rather than discarding the partial read.
func (e *Evaluator) ReadLine() (string, error) {
	line, err := e.In.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

// ResetOutput clears accumulated emissions without touching Root, so a
// long-lived Evaluator (the REPL's session state) can report fresh output
// per submitted line while variable/function/class bindings persist.
func (e *Evaluator) ResetOutput() {
	e.emissions = nil
}

// Output joins every emitted line with a newline, stripped of leading and
// trailing newlines.
func (e *Evaluator) Output() string {
	return strings.Trim(strings.Join(e.emissions, "\n"), "\n")
}

// excludedFromBareOutput is the set of top-level node kinds whose own
// evaluated value is never independently surfaced to the driver output —
// either because their value is consumed by the construct itself
// (assignment), or because any output they produce is already captured via
// nested print() side effects (loops, conditionals, definitions, bare
// calls).
func excludedFromBareOutput(stmt parser.Node) bool {
	switch stmt.(type) {
	case *parser.VarAssign, *parser.FunctionDef, *parser.ObjectDef,
		*parser.ForStmt, *parser.WhileStmt, *parser.IfStmt,
		*parser.ReturnStmt, *parser.BuiltinCall, *parser.FunctionCall:
		return true
	default:
		return false
	}
}

// Run evaluates a top-level statement sequence in the root environment.
// Besides whatever print() calls emit as a side effect, a bare top-level
// statement that is not itself one of the exclusions above contributes its
// string form, whatever Value kind it evaluated to.
func (e *Evaluator) Run(stmts []parser.Node) (string, error) {
	for _, stmt := range stmts {
		val, err := e.Eval(stmt, e.Root)
		if err != nil {
			return "", err
		}
		if sig, ok := val.(*returnSignal); ok {
			val = sig.Value
		}
		if excludedFromBareOutput(stmt) || val == nil {
			continue
		}
		if s, ok := val.(*objects.String); ok {
			e.Emit(s.Value)
			continue
		}
		e.Emit(val.String())
	}
	return e.Output(), nil
}

// returnSignal is the explicit control-flow unwind value a `return`
// statement produces. It is distinct from ordinary value space — callers
// recognize it with a type assertion rather than by inspecting an AST node
// that leaked into value position.
type returnSignal struct {
	Value objects.Value
}

func (r *returnSignal) Kind() objects.Kind { return "return-signal" }
func (r *returnSignal) String() string {
	if r.Value == nil {
		return ""
	}
	return r.Value.String()
}

// Eval dispatches a single node for evaluation in env.
func (e *Evaluator) Eval(node parser.Node, env *scope.Scope) (objects.Value, error) {
	switch n := node.(type) {
	case *parser.NumberLit:
		return objects.NewNumberFromLiteral(n.Tok.Lexeme, n.Tok.Type == lexer.FLOAT)
	case *parser.StringLit:
		return objects.NewString(n.Tok.Lexeme), nil
	case *parser.ListLit:
		return e.evalList(n, env)
	case *parser.VarAccess:
		return e.evalVarAccess(n, env)
	case *parser.VarAssign:
		return e.evalVarAssign(n, env)
	case *parser.BinOp:
		return e.evalBinOp(n, env)
	case *parser.UnaryOp:
		return e.evalUnaryOp(n, env)
	case *parser.IfStmt:
		return e.evalIf(n, env)
	case *parser.WhileStmt:
		return e.evalWhile(n, env)
	case *parser.ForStmt:
		return e.evalFor(n, env)
	case *parser.FunctionDef:
		return e.evalFunctionDef(n, env)
	case *parser.FunctionCall:
		return e.evalFunctionCall(n, env, nil)
	case *parser.ReturnStmt:
		v, err := e.Eval(n.Expr, env)
		if err != nil {
			return nil, err
		}
		return &returnSignal{Value: v}, nil
	case *parser.ObjectDef:
		return e.evalObjectDef(n, env)
	case *parser.AccessNode:
		return e.evalAccess(n, env)
	case *parser.BuiltinCall:
		return e.evalBuiltin(n, env)
	}
	return nil, fmt.Errorf("RuntimeError: no evaluator for node type %T", node)
}

// runBlock executes a statement sequence, stopping and propagating the
// first returnSignal it meets unevaluated further, otherwise yielding the
// value of the last statement (or nil for an empty body).
func (e *Evaluator) runBlock(body []parser.Node, env *scope.Scope) (objects.Value, error) {
	var last objects.Value
	for _, stmt := range body {
		val, err := e.Eval(stmt, env)
		if err != nil {
			return nil, err
		}
		if _, ok := val.(*returnSignal); ok {
			return val, nil
		}
		last = val
	}
	return last, nil
}

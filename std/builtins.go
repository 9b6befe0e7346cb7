/*
File    : sparrow/std/builtins.go
*/

// Package std implements the closed set of built-in functions recognized at
// parse time: print, input, input_int, is_number, is_string, is_list,
// append, pop, extend. Builtins are plain Go functions registered into
// Registry under the builtin's name, kept as a struct-plus-global-registry
// pair so adding one never touches the parser beyond the name list in
// builtinNames.
package std

import "sparrow/objects"

// Runtime is the thin surface a builtin needs from the evaluator: emitting
// one line of program output and reading one line of input. Kept as an
// interface so this package never imports eval.
type Runtime interface {
	Emit(line string)
	ReadLine() (string, error)
}

// Builtin pairs a built-in's name with its implementation.
type Builtin struct {
	Name string
	Call func(rt Runtime, args []objects.Value) (objects.Value, error)
}

// Registry is the closed set of built-ins, keyed by name.
var Registry = map[string]*Builtin{}

func register(b *Builtin) { Registry[b.Name] = b }

func init() {
	register(&Builtin{Name: "print", Call: printFn})
	register(&Builtin{Name: "input", Call: inputFn})
	register(&Builtin{Name: "input_int", Call: inputIntFn})
	register(&Builtin{Name: "is_number", Call: isNumberFn})
	register(&Builtin{Name: "is_string", Call: isStringFn})
	register(&Builtin{Name: "is_list", Call: isListFn})
	register(&Builtin{Name: "append", Call: appendFn})
	register(&Builtin{Name: "pop", Call: popFn})
	register(&Builtin{Name: "extend", Call: extendFn})
}

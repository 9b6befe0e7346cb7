/*
File    : sparrow/std/common.go
*/
package std

import "sparrow/objects"

// printFn emits each argument's string form on its own line, and returns
// a tagged emission record. The record itself carries no further meaning to
// the caller beyond "this was a print call" — the real side effect already
// happened via rt.Emit.
func printFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	for _, a := range args {
		rt.Emit(renderArg(a))
	}
	return &PrintTag{Text: joinedText(args)}, nil
}

// renderArg formats a single argument via its String(): a top-level string
// prints unquoted, while a list prints its string elements single-quoted.
func renderArg(v objects.Value) string {
	return v.String()
}

func joinedText(args []objects.Value) string {
	if len(args) == 0 {
		return ""
	}
	return args[len(args)-1].String()
}

// PrintTag is the tagged emission record a print call produces: a value like
// any other so print(...) remains an ordinary expression. Nothing inspects
// the tag itself; a top-level print call adds no second copy of its output
// because excludedFromBareOutput in package eval skips every top-level
// built-in call statement.
type PrintTag struct {
	Text string
}

func (p *PrintTag) Kind() objects.Kind { return "print" }
func (p *PrintTag) String() string     { return p.Text }

// isNumberFn, isStringFn, isListFn implement the is_* type-predicate
// builtins: Number(1) if the sole argument is of that kind, else Number(0).
func isNumberFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	_, ok := soleArg(args).(*objects.Number)
	return objects.Bool(ok), nil
}

func isStringFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	_, ok := soleArg(args).(*objects.String)
	return objects.Bool(ok), nil
}

func isListFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	_, ok := soleArg(args).(*objects.List)
	return objects.Bool(ok), nil
}

func soleArg(args []objects.Value) objects.Value {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

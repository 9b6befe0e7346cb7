/*
File    : sparrow/eval/eval_builtins.go
*/

// Dispatch to the closed built-in set, routed at parse time
// into BuiltinCall nodes and resolved here against the std.Registry.
package eval

import (
	"fmt"

	"sparrow/objects"
	"sparrow/parser"
	"sparrow/scope"
	"sparrow/std"
)

// evalBuiltin evaluates a builtin call's arguments in env, then dispatches
// to the registered implementation, passing the Evaluator itself as the
// std.Runtime (it implements Emit and ReadLine).
func (e *Evaluator) evalBuiltin(n *parser.BuiltinCall, env *scope.Scope) (objects.Value, error) {
	args := make([]objects.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.Eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	b, ok := std.Registry[n.Name]
	if !ok {
		return nil, fmt.Errorf("NameError: %q is not a built-in function", n.Name)
	}
	return b.Call(e, args)
}

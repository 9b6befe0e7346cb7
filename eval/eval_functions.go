/*
File    : sparrow/eval/eval_functions.go
*/

// Function definition and call dispatch. A method call's receiver binding
// works as follows: the callee's first declared parameter is bound directly
// to the receiving *function.Instance and does not consume an explicit
// call-site argument; every other parameter zips 1:1 against the remaining
// arguments. This applies uniformly to plain method calls, constructor
// calls, and super-dispatched calls, since all three route through
// callMethod.
package eval

import (
	"fmt"

	"sparrow/function"
	"sparrow/objects"
	"sparrow/parser"
	"sparrow/scope"
)

// methodReceiver carries the instance a method call is dispatched against
// and the class whose method table should be searched — the instance's own
// class for a plain call, or the parent class for a super-dispatched one.
type methodReceiver struct {
	Instance *function.Instance
	Class    *function.Class
}

// evalFunctionDef builds the function value, which closes over the
// environment it was defined in and is bound under its own name in that
// same environment.
func (e *Evaluator) evalFunctionDef(n *parser.FunctionDef, env *scope.Scope) (objects.Value, error) {
	fn := &function.Function{Name: n.Name, Params: n.Params, Body: n.Body, Env: env}
	env.Set(n.Name, fn)
	return fn, nil
}

// evalFunctionCall evaluates a call's arguments in the caller's environment,
// then dispatches: to a method on recv.Class when recv is non-nil, otherwise
// to a free function or class constructor bound under n.Name.
func (e *Evaluator) evalFunctionCall(n *parser.FunctionCall, env *scope.Scope, recv *methodReceiver) (objects.Value, error) {
	args := make([]objects.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.Eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if recv != nil {
		var fn *function.Function
		var owner *function.Class
		if n.Name == "init" {
			fn, owner = recv.Class.FindInit()
		} else {
			fn, owner = recv.Class.FindMethod(n.Name)
		}
		if fn == nil {
			return nil, fmt.Errorf("NameError: %q has no method %q", recv.Class.Name, n.Name)
		}
		return e.callMethod(fn, recv.Instance, owner, args)
	}

	callee, ok := env.Get(n.Name)
	if !ok {
		return nil, fmt.Errorf("NameError: %q is not defined", n.Name)
	}
	switch target := callee.(type) {
	case *function.Function:
		return e.callFunction(target, args)
	case *function.Class:
		return e.instantiate(target, args)
	default:
		return nil, fmt.Errorf("TypeError: %q is not callable", n.Name)
	}
}

// callFunction runs a free function's body in a fresh activation frame
// parented at its closure environment. Absent an explicit return, the call
// yields no value when the body never executes a return statement.
func (e *Evaluator) callFunction(fn *function.Function, args []objects.Value) (objects.Value, error) {
	call := scope.New(fn.Env)
	if err := bindParams(call, fn.Params, args); err != nil {
		return nil, err
	}
	result, err := e.runBlock(fn.Body, call)
	if err != nil {
		return nil, err
	}
	if sig, ok := result.(*returnSignal); ok {
		return sig.Value, nil
	}
	return nil, nil
}

// callMethod runs a method's body in a fresh activation frame, binding its
// first declared parameter to inst and, when owner has a parent class,
// binding "super" to a SuperRef over that parent.
func (e *Evaluator) callMethod(fn *function.Function, inst *function.Instance, owner *function.Class, args []objects.Value) (objects.Value, error) {
	call := scope.New(fn.Env)
	if len(fn.Params) == 0 {
		return nil, fmt.Errorf("ParseError: method %q must declare a receiver parameter", fn.Name)
	}
	call.Set(fn.Params[0], inst)
	if owner.Parent != nil {
		call.Set("super", &function.SuperRef{Instance: inst, From: owner.Parent})
	}
	if err := bindParams(call, fn.Params[1:], args); err != nil {
		return nil, err
	}
	result, err := e.runBlock(fn.Body, call)
	if err != nil {
		return nil, err
	}
	if sig, ok := result.(*returnSignal); ok {
		return sig.Value, nil
	}
	return nil, nil
}

// bindParams zips params against args positionally into call, rejecting an
// arity mismatch outright rather than silently truncating or leaving a
// parameter unbound.
func bindParams(call *scope.Scope, params []string, args []objects.Value) error {
	if len(params) != len(args) {
		return fmt.Errorf("TypeError: expected %d argument(s), got %d", len(params), len(args))
	}
	for i, p := range params {
		call.Set(p, args[i])
	}
	return nil
}

/*
File    : sparrow/eval/eval_literals.go
*/
package eval

import (
	"fmt"

	"sparrow/function"
	"sparrow/objects"
	"sparrow/parser"
	"sparrow/scope"
)

func (e *Evaluator) evalList(n *parser.ListLit, env *scope.Scope) (objects.Value, error) {
	elems := make([]objects.Value, len(n.Elements))
	for i, elemNode := range n.Elements {
		v, err := e.Eval(elemNode, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return objects.NewList(elems), nil
}

// evalVarAccess implements the three-layer lookup: local table, then the
// chain of enclosing Parent frames, ending at the root table.
func (e *Evaluator) evalVarAccess(n *parser.VarAccess, env *scope.Scope) (objects.Value, error) {
	if v, ok := env.Get(n.Name); ok {
		return v, nil
	}
	return nil, fmt.Errorf("NameError: %q is not defined", n.Name)
}

// evalVarAssign writes to the current table unless the target is an
// AccessNode, in which case it writes into the accessor's own environment
// (instance attribute write) rather than promoting into an outer scope.
func (e *Evaluator) evalVarAssign(n *parser.VarAssign, env *scope.Scope) (objects.Value, error) {
	value, err := e.Eval(n.Value, env)
	if err != nil {
		return nil, err
	}

	switch target := n.Target.(type) {
	case *parser.VarAccess:
		env.Set(target.Name, value)
		return value, nil

	case *parser.AccessNode:
		accessing, err := e.Eval(target.Accessor, env)
		if err != nil {
			return nil, err
		}
		if lst, ok := accessing.(*objects.List); ok && target.IsIndex {
			idxVal, err := e.Eval(target.Item, env)
			if err != nil {
				return nil, err
			}
			idxNum, ok := idxVal.(*objects.Number)
			if !ok {
				return nil, fmt.Errorf("TypeError: list index must be a number")
			}
			actual := int(idxNum.Int)
			if actual < 0 {
				actual += len(lst.Elements)
			}
			if actual < 0 || actual >= len(lst.Elements) {
				return nil, fmt.Errorf("IndexError: list index %d out of range", int(idxNum.Int))
			}
			lst.Elements[actual] = value
			return value, nil
		}

		accessorEnv, name, err := e.resolveAssignTarget(target, env)
		if err != nil {
			return nil, err
		}
		accessorEnv.Set(name, value)
		return value, nil
	}

	return nil, fmt.Errorf("ParseError: invalid assignment target %T", n.Target)
}

// resolveAssignTarget evaluates the accessor half of `a.b = value`, finding
// the environment `b` should be bound into: an instance's own attribute
// table, or — for `super`-qualified targets — the same instance's table
// (attributes are shared across the inheritance chain, only methods are
// resolved per-class).
func (e *Evaluator) resolveAssignTarget(node *parser.AccessNode, env *scope.Scope) (*scope.Scope, string, error) {
	name, ok := node.Item.(*parser.VarAccess)
	if !ok {
		return nil, "", fmt.Errorf("ParseError: assignment target must be a plain attribute name")
	}

	if va, ok := node.Accessor.(*parser.VarAccess); ok && va.Name == "super" {
		superVal, err := e.Eval(node.Accessor, env)
		if err != nil {
			return nil, "", err
		}
		ref, ok := superVal.(*function.SuperRef)
		if !ok {
			return nil, "", fmt.Errorf("TypeError: super used outside a method with a parent class")
		}
		return ref.Instance.Attrs, name.Name, nil
	}

	accessing, err := e.Eval(node.Accessor, env)
	if err != nil {
		return nil, "", err
	}
	inst, ok := accessing.(*function.Instance)
	if !ok {
		return nil, "", fmt.Errorf("TypeError: cannot assign an attribute on a non-object value")
	}
	return inst.Attrs, name.Name, nil
}

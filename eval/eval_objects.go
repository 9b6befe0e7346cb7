/*
File    : sparrow/eval/eval_objects.go
*/

// Object definitions, instantiation, and attribute/method access. Method
// resolution always walks function.Class.FindMethod's parent chain rather
// than eagerly merging a parent's methods into the instance, so a single
// Instance record stays valid across however many ancestors its class has.
package eval

import (
	"fmt"

	"sparrow/function"
	"sparrow/objects"
	"sparrow/parser"
	"sparrow/scope"
)

// evalObjectDef builds the class descriptor, evaluating each class attribute
// expression once against the definition environment and binds the class
// under its own name.
func (e *Evaluator) evalObjectDef(n *parser.ObjectDef, env *scope.Scope) (objects.Value, error) {
	var parent *function.Class
	if n.Parent != "" {
		pv, ok := env.Get(n.Parent)
		if !ok {
			return nil, fmt.Errorf("NameError: parent class %q is not defined", n.Parent)
		}
		parent, ok = pv.(*function.Class)
		if !ok {
			return nil, fmt.Errorf("TypeError: %q is not a class", n.Parent)
		}
	}

	class := function.NewClass(n.Name, parent)

	for _, attrName := range n.AttrOrder {
		val, err := e.Eval(n.Attrs[attrName], env)
		if err != nil {
			return nil, err
		}
		class.ClassAttrs[attrName] = val
	}

	for methodName, def := range n.Methods {
		class.Methods[methodName] = &function.Function{
			Name: def.Name, Params: def.Params, Body: def.Body, Env: env, Owner: class,
		}
	}
	if init, ok := n.Special["init"]; ok {
		class.Init = &function.Function{
			Name: init.Name, Params: init.Params, Body: init.Body, Env: env, Owner: class,
		}
	}

	env.Set(n.Name, class)
	return class, nil
}

// instantiate creates a fresh instance and, if the class (or an ancestor)
// declares "init", runs it as a method call bound to the new instance.
func (e *Evaluator) instantiate(class *function.Class, args []objects.Value) (objects.Value, error) {
	inst := function.NewInstance(class)
	if init, owner := class.FindInit(); init != nil {
		if _, err := e.callMethod(init, inst, owner, args); err != nil {
			return nil, err
		}
	} else if len(args) != 0 {
		return nil, fmt.Errorf("TypeError: %q takes no constructor arguments", class.Name)
	}
	return inst, nil
}

// receiverFor resolves the value an Access node's accessor evaluated to into
// a methodReceiver: a plain instance dispatches against its own class, a
// SuperRef dispatches against the class it points at.
func receiverFor(accessing objects.Value) (*methodReceiver, error) {
	switch v := accessing.(type) {
	case *function.Instance:
		return &methodReceiver{Instance: v, Class: v.Class}, nil
	case *function.SuperRef:
		return &methodReceiver{Instance: v.Instance, Class: v.From}, nil
	default:
		return nil, fmt.Errorf("TypeError: cannot call a method on a non-object value")
	}
}

// evalAccess resolves an AccessNode: index syntax (a[i]) indexes a List or
// String; otherwise a FunctionCall item re-issues the call against the
// accessor's resolved receiver, and a plain name looks up an attribute —
// instance state first, then the class attribute chain, then the enclosing
// scope.
func (e *Evaluator) evalAccess(n *parser.AccessNode, env *scope.Scope) (objects.Value, error) {
	accessing, err := e.Eval(n.Accessor, env)
	if err != nil {
		return nil, err
	}

	if n.IsIndex {
		idxVal, err := e.Eval(n.Item, env)
		if err != nil {
			return nil, err
		}
		idxNum, ok := idxVal.(*objects.Number)
		if !ok {
			return nil, fmt.Errorf("TypeError: index must be a number")
		}
		switch v := accessing.(type) {
		case *objects.List:
			elem, ok := v.At(int(idxNum.Int))
			if !ok {
				return nil, fmt.Errorf("IndexError: list index %d out of range", int(idxNum.Int))
			}
			return elem, nil
		case *objects.String:
			ch, ok := v.At(int(idxNum.Int))
			if !ok {
				return nil, fmt.Errorf("IndexError: string index %d out of range", int(idxNum.Int))
			}
			return ch, nil
		default:
			return nil, fmt.Errorf("TypeError: cannot index a %s", accessing.Kind())
		}
	}

	switch item := n.Item.(type) {
	case *parser.FunctionCall:
		recv, err := receiverFor(accessing)
		if err != nil {
			return nil, err
		}
		return e.evalFunctionCall(item, env, recv)

	case *parser.VarAccess:
		switch v := accessing.(type) {
		case *function.Instance:
			if val, ok := v.Attrs.Get(item.Name); ok {
				return val, nil
			}
			if val, ok := classAttr(v.Class, item.Name); ok {
				return val, nil
			}
		case *function.SuperRef:
			if val, ok := v.Instance.Attrs.Get(item.Name); ok {
				return val, nil
			}
			if val, ok := classAttr(v.From, item.Name); ok {
				return val, nil
			}
		default:
			return nil, fmt.Errorf("TypeError: cannot access an attribute on a non-object value")
		}
		if val, ok := env.Get(item.Name); ok {
			return val, nil
		}
		return nil, fmt.Errorf("NameError: %q is not defined", item.Name)

	default:
		return nil, fmt.Errorf("ParseError: invalid access target %T", n.Item)
	}
}

// classAttr walks a class's parent chain for a class attribute named name.
func classAttr(class *function.Class, name string) (objects.Value, bool) {
	for cur := class; cur != nil; cur = cur.Parent {
		if val, ok := cur.ClassAttrs[name]; ok {
			return val, true
		}
	}
	return nil, false
}

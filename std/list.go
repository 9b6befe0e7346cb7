/*
File    : sparrow/std/list.go
*/

// List-mutating builtins. The list invariant ("a list's
// indexed view and its position-ordered view always agree... keys 0..n-1
// contiguous") is automatic here: objects.List keeps a single backing
// slice (a deliberate collapse of an index-map-plus-sequence
// duplication), so append/pop/extend only ever need to mutate that slice —
// there is no second representation to keep in sync.
package std

import (
	"fmt"

	"sparrow/objects"
)

func appendFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("RuntimeError: append expects 2 arguments, got %d", len(args))
	}
	lst, ok := args[0].(*objects.List)
	if !ok {
		return nil, fmt.Errorf("TypeError: append's first argument must be a list")
	}
	lst.Elements = append(lst.Elements, args[1])
	return lst, nil
}

func popFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("RuntimeError: pop expects 2 arguments, got %d", len(args))
	}
	lst, ok := args[0].(*objects.List)
	if !ok {
		return nil, fmt.Errorf("TypeError: pop's first argument must be a list")
	}
	idxNum, ok := args[1].(*objects.Number)
	if !ok {
		return nil, fmt.Errorf("TypeError: pop's index argument must be a number")
	}
	idx := int(idxNum.Int)
	if idx < 0 {
		idx += len(lst.Elements)
	}
	if idx < 0 || idx >= len(lst.Elements) {
		return nil, fmt.Errorf("IndexError: pop index %d out of range for list of length %d", int(idxNum.Int), len(lst.Elements))
	}
	lst.Elements = append(lst.Elements[:idx], lst.Elements[idx+1:]...)
	return lst, nil
}

func extendFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("RuntimeError: extend expects 2 arguments, got %d", len(args))
	}
	a, ok := args[0].(*objects.List)
	if !ok {
		return nil, fmt.Errorf("TypeError: extend's first argument must be a list")
	}
	b, ok := args[1].(*objects.List)
	if !ok {
		return nil, fmt.Errorf("TypeError: extend's second argument must be a list")
	}
	a.Elements = append(a.Elements, b.Elements...)
	return a, nil
}

/*
File    : sparrow/objects/value.go
*/

// Package objects defines the runtime value variants the interpreter
// produces and operates on: numbers, strings, and lists. Functions and
// object instances — which additionally carry a symbol-table environment —
// live in package function, to avoid a dependency cycle between the value
// model and the environment that closes over it.
package objects

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which concrete value variant a Value holds.
type Kind string

const (
	NumberKind Kind = "number"
	StringKind Kind = "string"
	ListKind   Kind = "list"
	// FunctionKind and InstanceKind are defined for completeness of the
	// tagged union; the concrete types living in package function report
	// these kinds from their own Kind() methods.
	FunctionKind Kind = "function"
	InstanceKind Kind = "instance"
)

// Value is the tagged union every evaluated expression produces. Concrete
// variants are matched with a Go type switch at the call sites that need to
// distinguish them, per the redesign this project favors over reflection-
// driven dispatch.
type Value interface {
	Kind() Kind
	String() string
}

// Number is the sole numeric value variant. IsInt distinguishes an integer
// literal/result from a floating-point one; division always clears IsInt.
type Number struct {
	Int   int64
	Float float64
	IsInt bool
}

func NewInt(v int64) *Number     { return &Number{Int: v, IsInt: true} }
func NewFloat(v float64) *Number { return &Number{Float: v, IsInt: false} }

// NewNumberFromLiteral builds a Number from the lexer's INT/FLOAT lexeme.
func NewNumberFromLiteral(lexeme string, isFloat bool) (*Number, error) {
	if isFloat {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return nil, fmt.Errorf("LexError: invalid float literal %q", lexeme)
		}
		return NewFloat(f), nil
	}
	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("LexError: invalid int literal %q", lexeme)
	}
	return NewInt(i), nil
}

func (n *Number) Kind() Kind { return NumberKind }

// Float64 returns the value as a float64 regardless of which field is live.
func (n *Number) Float64() float64 {
	if n.IsInt {
		return float64(n.Int)
	}
	return n.Float
}

// Truthy implements the integer-truthiness rule: non-zero is true.
func (n *Number) Truthy() bool {
	return n.Float64() != 0
}

func (n *Number) String() string {
	if n.IsInt {
		return strconv.FormatInt(n.Int, 10)
	}
	return strconv.FormatFloat(n.Float, 'g', -1, 64)
}

// Bool renders the integer-truthiness rule as a canonical Number(0/1).
func Bool(b bool) *Number {
	if b {
		return NewInt(1)
	}
	return NewInt(0)
}

// String is a character-indexed sequence of bytes. Index access works in
// terms of bytes, matching the lexer's byte-oriented scanning and the
// Non-goal that excludes Unicode identifier/text handling.
type String struct {
	Value string
}

func NewString(v string) *String { return &String{Value: v} }

func (s *String) Kind() Kind   { return StringKind }
func (s *String) String() string { return s.Value }

// At returns the byte at idx (supporting negative indices counted from the
// end), and false if idx is out of range.
func (s *String) At(idx int) (*String, bool) {
	actual, ok := normalizeIndex(idx, len(s.Value))
	if !ok {
		return nil, false
	}
	return NewString(string(s.Value[actual])), true
}

// List is an ordered, mutable sequence of values — a single representation
// collapsing the index-map-plus-linear-sequence duplication described in the
// design notes: built-ins mutate Elements directly and the invariant that
// keys run 0..n-1 holds automatically because there is only one backing
// slice.
type List struct {
	Elements []Value
}

func NewList(elems []Value) *List {
	if elems == nil {
		elems = []Value{}
	}
	return &List{Elements: elems}
}

func (l *List) Kind() Kind { return ListKind }

func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		if s, ok := e.(*String); ok {
			parts[i] = "'" + s.Value + "'"
		} else {
			parts[i] = e.String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// At returns the element at idx (supporting negative indices), and false if
// idx is out of range.
func (l *List) At(idx int) (Value, bool) {
	actual, ok := normalizeIndex(idx, len(l.Elements))
	if !ok {
		return nil, false
	}
	return l.Elements[actual], true
}

// Equal implements element-wise list equality.
func (l *List) Equal(other *List) bool {
	if len(l.Elements) != len(other.Elements) {
		return false
	}
	for i, e := range l.Elements {
		if !ValuesEqual(e, other.Elements[i]) {
			return false
		}
	}
	return true
}

// normalizeIndex resolves a possibly-negative index against a length,
// reporting whether the result lands in range.
func normalizeIndex(idx, length int) (int, bool) {
	actual := idx
	if actual < 0 {
		actual += length
	}
	if actual < 0 || actual >= length {
		return 0, false
	}
	return actual, true
}

// ValuesEqual compares two values for the kind of structural equality the
// language's == / != operators need, recursing into lists.
func ValuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Float64() == bv.Float64()
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *List:
		bv, ok := b.(*List)
		return ok && av.Equal(bv)
	default:
		return a == b
	}
}

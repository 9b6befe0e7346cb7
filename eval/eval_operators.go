/*
File    : sparrow/eval/eval_operators.go
*/

// Arithmetic, comparison, and logical operator semantics. Two deliberate
// design choices live here: string subtraction trims the longest trailing
// occurrence rather than attempting a character-wise diff, and a bare
// String/Number comparison falls through to the shared
// "undefined -> Number(0)" branch rather than erroring.
package eval

import (
	"math"
	"strings"

	"sparrow/lexer"
	"sparrow/objects"
	"sparrow/parser"
	"sparrow/scope"
)

func (e *Evaluator) evalBinOp(n *parser.BinOp, env *scope.Scope) (objects.Value, error) {
	left, err := e.Eval(n.Left, env)
	if err != nil {
		return nil, err
	}

	// and/or do not short-circuit: both operands are always evaluated
	// before the connective is applied.
	right, err := e.Eval(n.Right, env)
	if err != nil {
		return nil, err
	}

	op := n.Op

	if op.Type == lexer.KEYWORD {
		switch op.Lexeme {
		case "and":
			return objects.Bool(truthy(left) && truthy(right)), nil
		case "or":
			return objects.Bool(truthy(left) || truthy(right)), nil
		}
	}

	switch l := left.(type) {
	case *objects.Number:
		if r, ok := right.(*objects.Number); ok {
			return numberBinOp(l, op, r)
		}
		// Number * String repeats the string (commutative with String * Number).
		if r, ok := right.(*objects.String); ok && op.Type == lexer.MULT && l.IsInt {
			return objects.NewString(strings.Repeat(r.Value, int(l.Int))), nil
		}

	case *objects.String:
		if r, ok := right.(*objects.String); ok {
			return stringBinOp(l, op, r)
		}
		if r, ok := right.(*objects.Number); ok && op.Type == lexer.MULT && r.IsInt {
			return objects.NewString(strings.Repeat(l.Value, int(r.Int))), nil
		}

	case *objects.List:
		if r, ok := right.(*objects.List); ok {
			switch op.Type {
			case lexer.IS_EQ:
				return objects.Bool(l.Equal(r)), nil
			case lexer.N_EQ:
				return objects.Bool(!l.Equal(r)), nil
			}
		}
	}

	// Mixed numeric/string arithmetic (other than the repeats above), and
	// every other unhandled combination, is undefined and evaluates to
	// Number(0) (this is also where a bare String/Number comparison lands).
	return objects.NewInt(0), nil
}

func numberBinOp(l *objects.Number, op lexer.Token, r *objects.Number) (objects.Value, error) {
	switch op.Type {
	case lexer.PLUS:
		if l.IsInt && r.IsInt {
			return objects.NewInt(l.Int + r.Int), nil
		}
		return objects.NewFloat(l.Float64() + r.Float64()), nil
	case lexer.MINUS:
		if l.IsInt && r.IsInt {
			return objects.NewInt(l.Int - r.Int), nil
		}
		return objects.NewFloat(l.Float64() - r.Float64()), nil
	case lexer.MULT:
		if l.IsInt && r.IsInt {
			return objects.NewInt(l.Int * r.Int), nil
		}
		return objects.NewFloat(l.Float64() * r.Float64()), nil
	case lexer.DIV:
		// Division always produces floating-point, regardless of operand kinds.
		return objects.NewFloat(l.Float64() / r.Float64()), nil
	case lexer.EXP:
		result := pow(l.Float64(), r.Float64())
		if l.IsInt && r.IsInt && r.Int >= 0 {
			return objects.NewInt(int64(result)), nil
		}
		return objects.NewFloat(result), nil
	case lexer.IS_EQ:
		return objects.Bool(l.Float64() == r.Float64()), nil
	case lexer.N_EQ:
		return objects.Bool(l.Float64() != r.Float64()), nil
	case lexer.GT:
		return objects.Bool(l.Float64() > r.Float64()), nil
	case lexer.LT:
		return objects.Bool(l.Float64() < r.Float64()), nil
	case lexer.GTE:
		return objects.Bool(l.Float64() >= r.Float64()), nil
	case lexer.LTE:
		return objects.Bool(l.Float64() <= r.Float64()), nil
	}
	return objects.NewInt(0), nil
}

func pow(base, exp float64) float64 {
	return math.Pow(base, exp)
}

func stringBinOp(l *objects.String, op lexer.Token, r *objects.String) (objects.Value, error) {
	switch op.Type {
	case lexer.PLUS:
		return objects.NewString(l.Value + r.Value), nil
	case lexer.MINUS:
		return objects.NewString(strings.TrimSuffix(l.Value, r.Value)), nil
	case lexer.IS_EQ:
		return objects.Bool(l.Value == r.Value), nil
	case lexer.N_EQ:
		return objects.Bool(l.Value != r.Value), nil
	case lexer.GT:
		return objects.Bool(l.Value > r.Value), nil
	case lexer.LT:
		return objects.Bool(l.Value < r.Value), nil
	case lexer.GTE:
		return objects.Bool(l.Value >= r.Value), nil
	case lexer.LTE:
		return objects.Bool(l.Value <= r.Value), nil
	}
	return objects.NewInt(0), nil
}

func (e *Evaluator) evalUnaryOp(n *parser.UnaryOp, env *scope.Scope) (objects.Value, error) {
	operand, err := e.Eval(n.Operand, env)
	if err != nil {
		return nil, err
	}

	if n.Op.Type == lexer.KEYWORD && n.Op.Lexeme == "not" {
		return objects.Bool(!truthy(operand)), nil
	}

	num, ok := operand.(*objects.Number)
	if !ok {
		return objects.NewInt(0), nil
	}
	if n.Op.Type == lexer.MINUS {
		if num.IsInt {
			return objects.NewInt(-num.Int), nil
		}
		return objects.NewFloat(-num.Float), nil
	}
	return num, nil // unary PLUS is a no-op
}

// truthy implements the integer-truthiness rule (non-zero is true) across
// value kinds; non-numbers are never truthy on their own in this language,
// matching the language's exclusively-Number and/or/not operands.
func truthy(v objects.Value) bool {
	if n, ok := v.(*objects.Number); ok {
		return n.Truthy()
	}
	return false
}

/*
File    : sparrow/eval/eval_controls.go
*/

// If/while/for control-flow evaluation. Each evaluates its condition(s)
// against the *current* environment — none of the three constructs open a
// fresh child scope for its body, so a block's statements run in the same
// table as the construct that introduced them.
package eval

import (
	"fmt"

	"sparrow/lexer"
	"sparrow/objects"
	"sparrow/parser"
	"sparrow/scope"
)

// plusToken is a synthetic PLUS token used to drive numberBinOp when
// advancing a for-loop's variable by its step, outside of any parsed source.
var plusToken = lexer.NewToken(lexer.PLUS, "+", 0, 0)

// evalIf evaluates each case's conjunction of conditions in turn: the first
// evaluated in order; the first case whose every condition equals Number(1)
// runs, and its body's last value is returned. If no case passes and an else
// arm exists, it runs instead. A returnSignal produced by a body propagates
// unevaluated.
func (e *Evaluator) evalIf(n *parser.IfStmt, env *scope.Scope) (objects.Value, error) {
	for _, c := range n.Cases {
		pass, err := e.allConditionsTrue(c.Conds, env)
		if err != nil {
			return nil, err
		}
		if pass {
			return e.runBlock(c.Body, env)
		}
	}
	if n.Else != nil {
		return e.runBlock(n.Else, env)
	}
	return nil, nil
}

// allConditionsTrue reports whether every condition in conds evaluates to
// exactly Number(1) — a case passes only when every one of its conditions'
// numeric value equals 1.
func (e *Evaluator) allConditionsTrue(conds []parser.Node, env *scope.Scope) (bool, error) {
	for _, cond := range conds {
		val, err := e.Eval(cond, env)
		if err != nil {
			return false, err
		}
		num, ok := val.(*objects.Number)
		if !ok || num.Float64() != 1 {
			return false, nil
		}
	}
	return true, nil
}

// evalWhile loops while cond's numeric value is
// non-zero; a returnSignal seen during body execution terminates the loop
// and propagates.
func (e *Evaluator) evalWhile(n *parser.WhileStmt, env *scope.Scope) (objects.Value, error) {
	var result objects.Value
	for {
		condVal, err := e.Eval(n.Cond, env)
		if err != nil {
			return nil, err
		}
		num, ok := condVal.(*objects.Number)
		if !ok || num.Float64() == 0 {
			return result, nil
		}
		val, err := e.runBlock(n.Body, env)
		if err != nil {
			return nil, err
		}
		if _, isReturn := val.(*returnSignal); isReturn {
			return val, nil
		}
		result = val
	}
}

// evalFor initializes the loop variable in the current table from Start.
// End and Step are evaluated once up front, and the loop's direction
// follows the sign of Step (default +1). After each iteration the loop
// variable is advanced by Step in place.
func (e *Evaluator) evalFor(n *parser.ForStmt, env *scope.Scope) (objects.Value, error) {
	start, err := e.Eval(n.Start, env)
	if err != nil {
		return nil, err
	}
	startNum, ok := start.(*objects.Number)
	if !ok {
		return nil, fmt.Errorf("TypeError: for-loop start value must be a number")
	}
	env.Set(n.VarName, startNum)

	end, err := e.Eval(n.End, env)
	if err != nil {
		return nil, err
	}
	endNum, ok := end.(*objects.Number)
	if !ok {
		return nil, fmt.Errorf("TypeError: for-loop end value must be a number")
	}

	var stepNum *objects.Number
	if n.Step != nil {
		stepVal, err := e.Eval(n.Step, env)
		if err != nil {
			return nil, err
		}
		stepNum, ok = stepVal.(*objects.Number)
		if !ok {
			return nil, fmt.Errorf("TypeError: for-loop step value must be a number")
		}
	} else {
		stepNum = objects.NewInt(1)
	}

	ascending := stepNum.Float64() > 0

	var result objects.Value
	for {
		current, _ := env.Get(n.VarName)
		currentNum := current.(*objects.Number)
		if ascending {
			if currentNum.Float64() >= endNum.Float64() {
				break
			}
		} else {
			if currentNum.Float64() <= endNum.Float64() {
				break
			}
		}

		val, err := e.runBlock(n.Body, env)
		if err != nil {
			return nil, err
		}
		if _, isReturn := val.(*returnSignal); isReturn {
			return val, nil
		}
		result = val

		current, _ = env.Get(n.VarName)
		currentNum = current.(*objects.Number)
		advanced, err := numberBinOp(currentNum, plusToken, stepNum)
		if err != nil {
			return nil, err
		}
		env.Set(n.VarName, advanced)
	}
	return result, nil
}

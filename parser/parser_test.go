/*
File    : sparrow/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sparrow/lexer"
)

func mustParse(t *testing.T, src string) []Node {
	t.Helper()
	tokens, err := lexer.NewLexer(src).Tokenize()
	assert.NoError(t, err)
	stmts, err := NewParser(tokens).Parse()
	assert.NoError(t, err)
	return stmts
}

func TestParser_ArithmeticPrecedence(t *testing.T) {
	stmts := mustParse(t, "1 + 2 * 3")
	assert.Len(t, stmts, 1)
	bin, ok := stmts[0].(*BinOp)
	assert.True(t, ok)
	assert.Equal(t, lexer.PLUS, bin.Op.Type)
	assert.IsType(t, &NumberLit{}, bin.Left)
	mult, ok := bin.Right.(*BinOp)
	assert.True(t, ok)
	assert.Equal(t, lexer.MULT, mult.Op.Type)
}

func TestParser_ListLiteral(t *testing.T) {
	stmts := mustParse(t, "lst = [1, 2, 3]")
	assign, ok := stmts[0].(*VarAssign)
	assert.True(t, ok)
	list, ok := assign.Value.(*ListLit)
	assert.True(t, ok)
	assert.Len(t, list.Elements, 3)
}

func TestParser_IndexAccess(t *testing.T) {
	stmts := mustParse(t, "x = lst[0]")
	assign := stmts[0].(*VarAssign)
	access, ok := assign.Value.(*AccessNode)
	assert.True(t, ok)
	assert.True(t, access.IsIndex)
	assert.Equal(t, "lst", access.Accessor.(*VarAccess).Name)
}

func TestParser_DottedMethodCall(t *testing.T) {
	stmts := mustParse(t, "a.get()")
	access, ok := stmts[0].(*AccessNode)
	assert.True(t, ok)
	assert.False(t, access.IsIndex)
	call, ok := access.Item.(*FunctionCall)
	assert.True(t, ok)
	assert.Equal(t, "get", call.Name)
}

func TestParser_FunctionDef(t *testing.T) {
	stmts := mustParse(t, "define f(a, b) { return a + b }")
	fn, ok := stmts[0].(*FunctionDef)
	assert.True(t, ok)
	assert.Equal(t, "f", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	assert.Len(t, fn.Body, 1)
	assert.IsType(t, &ReturnStmt{}, fn.Body[0])
}

func TestParser_IfElifElse(t *testing.T) {
	stmts := mustParse(t, `if x == 1 {
  print(x)
} elif x == 2 {
  print(x)
} else {
  print(x)
}`)
	stmt, ok := stmts[0].(*IfStmt)
	assert.True(t, ok)
	assert.Len(t, stmt.Cases, 2)
	assert.NotNil(t, stmt.Else)
}

func TestParser_ForLoop(t *testing.T) {
	stmts := mustParse(t, "for (i = 0, 3) { print(i) }")
	forStmt, ok := stmts[0].(*ForStmt)
	assert.True(t, ok)
	assert.Equal(t, "i", forStmt.VarName)
	assert.Nil(t, forStmt.Step)
}

func TestParser_ObjectWithParentAndInit(t *testing.T) {
	stmts := mustParse(t, `object B(A) {
  cls shared = 1
  define init(inst, x) {
    super.init(x)
  }
  define get(inst) {
    return inst.x
  }
}`)
	obj, ok := stmts[0].(*ObjectDef)
	assert.True(t, ok)
	assert.Equal(t, "B", obj.Name)
	assert.Equal(t, "A", obj.Parent)
	assert.Contains(t, obj.Special, "init")
	assert.Contains(t, obj.Methods, "get")
	assert.Equal(t, []string{"shared"}, obj.AttrOrder)
}

func TestParser_LogicalExpression(t *testing.T) {
	stmts := mustParse(t, `if 1 == 1 and 2 > 1 {
  print("yes")
}`)
	stmt := stmts[0].(*IfStmt)
	cond := stmt.Cases[0].Conds[0]
	bin, ok := cond.(*BinOp)
	assert.True(t, ok)
	assert.Equal(t, "and", bin.Op.Lexeme)
}

func TestParser_ArithmeticThenComparisonInCondition(t *testing.T) {
	stmts := mustParse(t, `if 1 + 1 == 2 {
  print("ok")
}`)
	stmt := stmts[0].(*IfStmt)
	bin, ok := stmt.Cases[0].Conds[0].(*BinOp)
	assert.True(t, ok)
	assert.Equal(t, lexer.IS_EQ, bin.Op.Type)
}

func TestParser_UnexpectedTokenError(t *testing.T) {
	tokens, err := lexer.NewLexer(") 1").Tokenize()
	assert.NoError(t, err)
	_, err = NewParser(tokens).Parse()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ParseError")
}

/*
File    : sparrow/parser/parser.go
*/
package parser

import (
	"sparrow/errs"
	"sparrow/lexer"
)

// builtinNames is the closed set of names routed to a BuiltinCall node
// instead of an ordinary FunctionCall.
var builtinNames = map[string]bool{
	"print":     true,
	"input":     true,
	"input_int": true,
	"is_number": true,
	"is_string": true,
	"is_list":   true,
	"append":    true,
	"pop":       true,
	"extend":    true,
}

// Parser consumes a flat token slice with a single cursor, advancing
// monotonically except for the one rewind peekKeywordAcrossNewlines makes
// when the keyword it looks for past a run of newlines is not there.
type Parser struct {
	Tokens []lexer.Token
	pos    int
}

// NewParser builds a Parser over a complete token stream (as produced by
// lexer.Lexer.Tokenize, including its trailing EOF token).
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{Tokens: tokens, pos: 0}
}

func (p *Parser) current() lexer.Token {
	if p.pos < len(p.Tokens) {
		return p.Tokens[p.pos]
	}
	return p.Tokens[len(p.Tokens)-1] // EOF
}

func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.pos + offset
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.Tokens) {
		return p.Tokens[len(p.Tokens)-1]
	}
	return p.Tokens[idx]
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.Tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) mark() int { return p.pos }

func (p *Parser) rewindTo(mark int) { p.pos = mark }

func (p *Parser) expect(kind lexer.TokenType) (lexer.Token, error) {
	if p.current().Type != kind {
		return lexer.Token{}, errs.ParseErr(p.current().Line, p.current().Column,
			"expected %s, found %s", kind, p.current().Type)
	}
	return p.advance(), nil
}

// skipNewlines consumes any run of NEWLINE tokens, used between statements
// inside a block and at the top level.
func (p *Parser) skipNewlines() {
	for p.current().Type == lexer.NEWLINE {
		p.advance()
	}
}

// Parse consumes the whole token stream and returns the top-level statement
// sequence.
func (p *Parser) Parse() ([]Node, error) {
	var stmts []Node
	p.skipNewlines()
	for p.current().Type != lexer.EOF {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.current().Type != lexer.EOF {
			if _, err := p.expect(lexer.NEWLINE); err != nil {
				return nil, err
			}
		}
		p.skipNewlines()
	}
	return stmts, nil
}

// statement parses one top-level-or-block-level construct. The grammar does
// not distinguish statements from expressions — everything routes through
// the same expr/term/pow/factor precedence chain — so this is a thin alias
// kept for readability at call sites.
func (p *Parser) statement() (Node, error) {
	return p.expr()
}

// block parses a `{ ... }` sequence of statements separated by newlines.
func (p *Parser) block() ([]Node, error) {
	if _, err := p.expect(lexer.BLOCK_OPEN); err != nil {
		return nil, err
	}
	p.skipNewlines()
	var body []Node
	for p.current().Type != lexer.BLOCK_CLOSE {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
		p.skipNewlines()
	}
	if _, err := p.expect(lexer.BLOCK_CLOSE); err != nil {
		return nil, err
	}
	return body, nil
}

// expr := term ((PLUS|MINUS) term)*
func (p *Parser) expr() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.current().Is(lexer.PLUS, lexer.MINUS) {
		op := p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &BinOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// term := pow ((MULT|DIV) pow)*
func (p *Parser) term() (Node, error) {
	left, err := p.pow()
	if err != nil {
		return nil, err
	}
	for p.current().Is(lexer.MULT, lexer.DIV) {
		op := p.advance()
		right, err := p.pow()
		if err != nil {
			return nil, err
		}
		left = &BinOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// pow := factor (EXP factor)*
func (p *Parser) pow() (Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.current().Is(lexer.EXP) {
		op := p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &BinOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

var comparisonKinds = []lexer.TokenType{lexer.N_EQ, lexer.IS_EQ, lexer.GT, lexer.LT, lexer.GTE, lexer.LTE}

// factor dispatches on the current token per the grammar's lowest-precedence
// atom rule.
func (p *Parser) factor() (Node, error) {
	tok := p.current()

	if tok.Type == lexer.KEYWORD {
		switch tok.Lexeme {
		case "return":
			p.advance()
			expr, err := p.expr()
			if err != nil {
				return nil, err
			}
			return &ReturnStmt{Expr: expr}, nil
		case "object":
			return p.parseObject()
		case "for":
			return p.parseFor()
		case "define":
			return p.parseFunctionDef()
		case "while":
			return p.parseWhile()
		case "if":
			return p.parseIf()
		case "not":
			p.advance()
			operand, err := p.factor()
			if err != nil {
				return nil, err
			}
			return &UnaryOp{Op: tok, Operand: operand}, nil
		}
	}

	switch tok.Type {
	case lexer.LPAREN:
		p.advance()
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil

	case lexer.STRING:
		p.advance()
		return &StringLit{Tok: tok}, nil

	case lexer.LIST:
		return p.parseListLit()

	case lexer.INT, lexer.FLOAT:
		p.advance()
		return &NumberLit{Tok: tok}, nil

	case lexer.PLUS, lexer.MINUS:
		p.advance()
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Op: tok, Operand: operand}, nil

	case lexer.IDENTIFIER:
		return p.parseIdentifierFactor()
	}

	return nil, errs.ParseErr(tok.Line, tok.Column, "unexpected token %s", tok.Type)
}

// parseIdentifierFactor implements the IDENTIFIER dispatch bullet: a plain
// name followed by EQ is an assignment, by LPAREN a call, by ACCESS a dotted
// access (itself possibly assigned to), otherwise a bare variable read.
func (p *Parser) parseIdentifierFactor() (Node, error) {
	name := p.advance()

	switch p.current().Type {
	case lexer.EQ:
		p.advance()
		value, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &VarAssign{Target: &VarAccess{Name: name.Lexeme}, Value: value}, nil

	case lexer.LPAREN:
		return p.parseCall(name.Lexeme)

	case lexer.ACCESS:
		p.advance()
		var item Node
		if p.current().Type == lexer.IDENTIFIER && p.peekAt(1).Type == lexer.EQ {
			// `a.b = value`: b names the attribute being written.
			item = &VarAccess{Name: p.advance().Lexeme}
		} else {
			var err error
			item, err = p.factor()
			if err != nil {
				return nil, err
			}
		}
		access := &AccessNode{Accessor: &VarAccess{Name: name.Lexeme}, Item: item}
		if p.current().Type == lexer.EQ {
			p.advance()
			value, err := p.expr()
			if err != nil {
				return nil, err
			}
			return &VarAssign{Target: access, Value: value}, nil
		}
		return access, nil

	case lexer.LIST:
		p.advance()
		idx, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SLICE); err != nil {
			return nil, err
		}
		access := &AccessNode{Accessor: &VarAccess{Name: name.Lexeme}, Item: idx, IsIndex: true}
		if p.current().Type == lexer.EQ {
			p.advance()
			value, err := p.expr()
			if err != nil {
				return nil, err
			}
			return &VarAssign{Target: access, Value: value}, nil
		}
		return access, nil
	}

	return &VarAccess{Name: name.Lexeme}, nil
}

// parseCall parses the argument list after `name(` and routes to a
// BuiltinCall or a FunctionCall depending on name.
func (p *Parser) parseCall(name string) (Node, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var args []Node
	for p.current().Type != lexer.RPAREN {
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.current().Type == lexer.SEPARATOR {
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	if builtinNames[name] {
		return &BuiltinCall{Name: name, Args: args}, nil
	}
	return &FunctionCall{Name: name, Args: args}, nil
}

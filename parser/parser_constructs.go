/*
File    : sparrow/parser/parser_constructs.go
*/
package parser

import (
	"sparrow/errs"
	"sparrow/lexer"
)

// parseListLit parses `[ e1, e2, ... ]`.
func (p *Parser) parseListLit() (Node, error) {
	if _, err := p.expect(lexer.LIST); err != nil {
		return nil, err
	}
	var elems []Node
	for p.current().Type != lexer.SLICE {
		el, err := p.expr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		if p.current().Type == lexer.SEPARATOR {
			p.advance()
		}
	}
	if _, err := p.expect(lexer.SLICE); err != nil {
		return nil, err
	}
	return &ListLit{Elements: elems}, nil
}

// parseFunctionDef parses `define name(p1, p2, ...) { body }`.
func (p *Parser) parseFunctionDef() (Node, error) {
	p.advance() // "define"
	name, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	params, err := p.paramList()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &FunctionDef{Name: name.Lexeme, Params: params, Body: body}, nil
}

func (p *Parser) paramList() ([]string, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	for p.current().Type != lexer.RPAREN {
		id, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		params = append(params, id.Lexeme)
		if p.current().Type == lexer.SEPARATOR {
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// parseFor parses `for (ident = start, end[, step]) { body }`.
func (p *Parser) parseFor() (Node, error) {
	p.advance() // "for"
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	ident, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EQ); err != nil {
		return nil, err
	}
	start, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEPARATOR); err != nil {
		return nil, err
	}
	end, err := p.expr()
	if err != nil {
		return nil, err
	}
	var step Node
	if p.current().Type == lexer.SEPARATOR {
		p.advance()
		step, err = p.expr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ForStmt{VarName: ident.Lexeme, Start: start, End: end, Step: step, Body: body}, nil
}

// parseWhile parses `while <logical> { body }`.
func (p *Parser) parseWhile() (Node, error) {
	p.advance() // "while"
	cond, err := p.logicalCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

// parseIf parses `if <logical> { body } (elif <logical> { body })* (else { body })?`.
// Each elif arm is parsed in a loop here and appended to the outer cases
// list.
func (p *Parser) parseIf() (Node, error) {
	p.advance() // "if"
	cond, err := p.logicalCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	stmt := &IfStmt{Cases: []IfCase{{Conds: []Node{cond}, Body: body}}}

	for p.peekKeywordAcrossNewlines("elif") {
		p.advance()
		elifCond, err := p.logicalCondition()
		if err != nil {
			return nil, err
		}
		elifBody, err := p.block()
		if err != nil {
			return nil, err
		}
		stmt.Cases = append(stmt.Cases, IfCase{Conds: []Node{elifCond}, Body: elifBody})
	}

	if p.peekKeywordAcrossNewlines("else") {
		p.advance()
		elseBody, err := p.block()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBody
	}

	return stmt, nil
}

// peekKeywordAcrossNewlines looks past any run of NEWLINE tokens for the
// named keyword (used to let elif/else start on their own line), leaving
// the cursor positioned at the keyword if found, or restored to where it
// started — so an ordinary statement separator is never swallowed — if not.
func (p *Parser) peekKeywordAcrossNewlines(keyword string) bool {
	mark := p.mark()
	p.skipNewlines()
	if p.current().Type == lexer.KEYWORD && p.current().Lexeme == keyword {
		return true
	}
	p.rewindTo(mark)
	return false
}

// logicalCondition parses one boolean-producing condition built from
// comparisons and and/or/not, used by if/elif/while headers. Because the
// header always explicitly calls into this routine (rather than falling
// through the generic factor() dispatch), comparisons never need to be
// disambiguated from plain arithmetic by backtracking: the parser already
// knows, from context, that it is looking at a condition. Parenthesized
// subconditions recurse through the same routine, terminated on RPAREN
// instead of BLOCK_OPEN/NEWLINE.
func (p *Parser) logicalCondition() (Node, error) {
	return p.logicalSequence(false)
}

// logicalSequence parses a flat ordered list of condition
// atoms combined with and/or/not, collapsing pairwise into BinOp/UnaryOp
// nodes as each connective is seen, in encounter order (no precedence
// distinction between and and or).
func (p *Parser) logicalSequence(nested bool) (Node, error) {
	var atoms []Node
	pendingNot := false
	var pendingConnective *lexer.Token

	appendAtom := func(atom Node) {
		if pendingNot {
			atom = &UnaryOp{Op: lexer.NewToken(lexer.KEYWORD, "not", 0, 0), Operand: atom}
			pendingNot = false
		}
		if pendingConnective != nil {
			last := atoms[len(atoms)-1]
			atoms[len(atoms)-1] = &BinOp{Left: last, Op: *pendingConnective, Right: atom}
			pendingConnective = nil
			return
		}
		atoms = append(atoms, atom)
	}

	for {
		tok := p.current()
		if tok.Type == lexer.KEYWORD && tok.Lexeme == "not" {
			p.advance()
			pendingNot = true
			continue
		}
		if tok.Type == lexer.LPAREN {
			p.advance()
			inner, err := p.logicalSequence(true)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
			appendAtom(inner)
		} else {
			atom, err := p.comparisonAtom()
			if err != nil {
				return nil, err
			}
			appendAtom(atom)
		}

		tok = p.current()
		if tok.Type == lexer.KEYWORD && (tok.Lexeme == "and" || tok.Lexeme == "or") {
			t := p.advance()
			pendingConnective = &t
			continue
		}
		if nested {
			if tok.Type == lexer.RPAREN {
				break
			}
		} else {
			if tok.Type == lexer.BLOCK_OPEN || tok.Type == lexer.NEWLINE || tok.Type == lexer.EOF {
				break
			}
		}
		if pendingConnective == nil && !pendingNot {
			return nil, errs.ParseErr(tok.Line, tok.Column, "unexpected token %s in condition", tok.Type)
		}
	}

	return andAll(atoms), nil
}

// comparisonAtom parses `a [<op> b]`: a bare arithmetic expression, or a
// full comparison when the next token is one of the comparison kinds.
func (p *Parser) comparisonAtom() (Node, error) {
	left, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.current().Is(comparisonKinds...) {
		op := p.advance()
		right, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &BinOp{Left: left, Op: op, Right: right}, nil
	}
	return left, nil
}

// andAll folds a list of independently-true conditions into a single
// left-associative and-chain ("a case passes when every
// condition's integer value equals 1").
func andAll(atoms []Node) Node {
	if len(atoms) == 0 {
		return nil
	}
	result := atoms[0]
	for _, a := range atoms[1:] {
		result = &BinOp{Left: result, Op: lexer.NewToken(lexer.KEYWORD, "and", 0, 0), Right: a}
	}
	return result
}

// parseObject parses `object Name[(Parent)] { body }`.
func (p *Parser) parseObject() (Node, error) {
	p.advance() // "object"
	name, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	parentName := ""
	if p.current().Type == lexer.LPAREN {
		p.advance()
		parent, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		parentName = parent.Lexeme
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.BLOCK_OPEN); err != nil {
		return nil, err
	}
	p.skipNewlines()

	obj := &ObjectDef{
		Name:    name.Lexeme,
		Parent:  parentName,
		Attrs:   make(map[string]Node),
		Methods: make(map[string]*FunctionDef),
		Special: make(map[string]*FunctionDef),
	}

	for p.current().Type != lexer.BLOCK_CLOSE {
		if p.current().Type == lexer.KEYWORD && p.current().Lexeme == "cls" {
			p.advance()
			attrName, err := p.expect(lexer.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.EQ); err != nil {
				return nil, err
			}
			value, err := p.expr()
			if err != nil {
				return nil, err
			}
			obj.Attrs[attrName.Lexeme] = value
			obj.AttrOrder = append(obj.AttrOrder, attrName.Lexeme)
		} else if p.current().Type == lexer.KEYWORD && p.current().Lexeme == "define" {
			def, err := p.parseFunctionDef()
			if err != nil {
				return nil, err
			}
			fn := def.(*FunctionDef)
			if fn.Name == "init" {
				obj.Special["init"] = fn
			} else {
				obj.Methods[fn.Name] = fn
			}
		} else {
			return nil, errs.ParseErr(p.current().Line, p.current().Column,
				"unexpected token %s in object body", p.current().Type)
		}
		p.skipNewlines()
	}

	if _, err := p.expect(lexer.BLOCK_CLOSE); err != nil {
		return nil, err
	}
	return obj, nil
}

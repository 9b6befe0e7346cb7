/*
File    : sparrow/lexer/lexer_test.go
*/
package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []tokenCase{
		{
			Input: "123 + 2   31 - 12",
			Expected: []Token{
				NewToken(INT, "123", 0, 0),
				NewToken(PLUS, "+", 0, 0),
				NewToken(INT, "2", 0, 0),
				NewToken(INT, "31", 0, 0),
				NewToken(MINUS, "-", 0, 0),
				NewToken(INT, "12", 0, 0),
			},
		},
		{
			Input: "{ } + [1, 2]",
			Expected: []Token{
				NewToken(BLOCK_OPEN, "{", 0, 0),
				NewToken(BLOCK_CLOSE, "}", 0, 0),
				NewToken(PLUS, "+", 0, 0),
				NewToken(LIST, "[", 0, 0),
				NewToken(INT, "1", 0, 0),
				NewToken(SEPARATOR, ",", 0, 0),
				NewToken(INT, "2", 0, 0),
				NewToken(SLICE, "]", 0, 0),
			},
		},
		{
			Input: "<= + 2 {31} - .5 5.",
			Expected: []Token{
				NewToken(LTE, "<=", 0, 0),
				NewToken(PLUS, "+", 0, 0),
				NewToken(INT, "2", 0, 0),
				NewToken(BLOCK_OPEN, "{", 0, 0),
				NewToken(INT, "31", 0, 0),
				NewToken(BLOCK_CLOSE, "}", 0, 0),
				NewToken(MINUS, "-", 0, 0),
				NewToken(FLOAT, "0.5", 0, 0),
				NewToken(FLOAT, "5.0", 0, 0),
			},
		},
		{
			Input: `"hello world" identifier_1 'another'`,
			Expected: []Token{
				NewToken(STRING, "hello world", 0, 0),
				NewToken(IDENTIFIER, "identifier_1", 0, 0),
				NewToken(STRING, "another", 0, 0),
			},
		},
		{
			Input: "define object if elif else and or not for while return cls notakeyword",
			Expected: []Token{
				NewToken(KEYWORD, "define", 0, 0),
				NewToken(KEYWORD, "object", 0, 0),
				NewToken(KEYWORD, "if", 0, 0),
				NewToken(KEYWORD, "elif", 0, 0),
				NewToken(KEYWORD, "else", 0, 0),
				NewToken(KEYWORD, "and", 0, 0),
				NewToken(KEYWORD, "or", 0, 0),
				NewToken(KEYWORD, "not", 0, 0),
				NewToken(KEYWORD, "for", 0, 0),
				NewToken(KEYWORD, "while", 0, 0),
				NewToken(KEYWORD, "return", 0, 0),
				NewToken(KEYWORD, "cls", 0, 0),
				NewToken(IDENTIFIER, "notakeyword", 0, 0),
			},
		},
		{
			Input: "a.b a[0] a == b a != b a >= b",
			Expected: []Token{
				NewToken(IDENTIFIER, "a", 0, 0),
				NewToken(ACCESS, ".", 0, 0),
				NewToken(IDENTIFIER, "b", 0, 0),
				NewToken(IDENTIFIER, "a", 0, 0),
				NewToken(LIST, "[", 0, 0),
				NewToken(INT, "0", 0, 0),
				NewToken(SLICE, "]", 0, 0),
				NewToken(IDENTIFIER, "a", 0, 0),
				NewToken(IS_EQ, "==", 0, 0),
				NewToken(IDENTIFIER, "b", 0, 0),
				NewToken(IDENTIFIER, "a", 0, 0),
				NewToken(N_EQ, "!=", 0, 0),
				NewToken(IDENTIFIER, "b", 0, 0),
				NewToken(IDENTIFIER, "a", 0, 0),
				NewToken(GTE, ">=", 0, 0),
				NewToken(IDENTIFIER, "b", 0, 0),
			},
		},
	}

	for _, tt := range tests {
		got, err := NewLexer(tt.Input).Tokenize()
		assert.NoError(t, err)
		// the trailing EOF token is not part of the fixture
		assert.Equal(t, len(tt.Expected), len(got)-1, "input: %s", tt.Input)
		for i, want := range tt.Expected {
			assert.Equal(t, want.Type, got[i].Type, "token %d of %q", i, tt.Input)
			assert.Equal(t, want.Lexeme, got[i].Lexeme, "token %d of %q", i, tt.Input)
		}
		assert.Equal(t, EOF, got[len(got)-1].Type)
	}
}

// TestLexer_Totality verifies that every NEWLINE emitted corresponds to a
// newline in the (already newline-collapsed) input.
func TestLexer_Totality(t *testing.T) {
	src := "x = 1\ny = 2\n\nz = 3"
	normalized := strings.ReplaceAll(src, "\n\n", "\n")
	wantNewlines := strings.Count(normalized, "\n")

	tokens, err := NewLexer(src).Tokenize()
	assert.NoError(t, err)

	newlines := 0
	for _, tok := range tokens {
		if tok.Type == NEWLINE {
			newlines++
		}
	}
	assert.Equal(t, wantNewlines, newlines)
}

func TestLexer_UnrecognizedCharacter(t *testing.T) {
	_, err := NewLexer("x = 1 @ 2").Tokenize()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "LexError")
}

func TestLexer_UnterminatedString(t *testing.T) {
	_, err := NewLexer(`"unterminated`).Tokenize()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "LexError")
}

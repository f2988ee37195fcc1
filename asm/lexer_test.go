package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vc2asm/diag"
)

type lexed struct {
	Kind TokenKind
	Text string
}

func lexAll(source string) (toks []lexed, lex *Lexer) {
	lex = NewLexer(source)
	for tok := range lex.Tokens() {
		toks = append(toks, lexed{tok.Kind, tok.Text(source)})
	}
	return
}

func TestLexer(t *testing.T) {
	assert := assert.New(t)

	toks, lex := lexAll("mov r1, 0x2A ; comment\n")
	assert.Equal([]lexed{
		{TOKEN_IDENTIFIER, "mov"},
		{TOKEN_IDENTIFIER, "r1"},
		{TOKEN_COMMA, ","},
		{TOKEN_HEX_LITERAL, "0x2A"},
		{TOKEN_NEWLINE, "\n"},
		{TOKEN_EOF, ""},
	}, toks)
	assert.Empty(lex.Diagnostics())
}

func TestLexerPositions(t *testing.T) {
	assert := assert.New(t)

	source := "main:\n\t.loop: jmp [r0]\n"
	lex := NewLexer(source)

	expected := []Token{
		{TOKEN_IDENTIFIER, diag.Position{Offset: 0, Line: 1, Column: 1}, 4},
		{TOKEN_COLON, diag.Position{Offset: 4, Line: 1, Column: 5}, 1},
		{TOKEN_NEWLINE, diag.Position{Offset: 5, Line: 1, Column: 6}, 1},
		{TOKEN_DOT, diag.Position{Offset: 7, Line: 2, Column: 2}, 1},
		{TOKEN_IDENTIFIER, diag.Position{Offset: 8, Line: 2, Column: 3}, 4},
		{TOKEN_COLON, diag.Position{Offset: 12, Line: 2, Column: 7}, 1},
		{TOKEN_IDENTIFIER, diag.Position{Offset: 14, Line: 2, Column: 9}, 3},
		{TOKEN_LBRACKET, diag.Position{Offset: 18, Line: 2, Column: 13}, 1},
		{TOKEN_IDENTIFIER, diag.Position{Offset: 19, Line: 2, Column: 14}, 2},
		{TOKEN_RBRACKET, diag.Position{Offset: 21, Line: 2, Column: 16}, 1},
		{TOKEN_NEWLINE, diag.Position{Offset: 22, Line: 2, Column: 17}, 1},
		{TOKEN_EOF, diag.Position{Offset: 23, Line: 3, Column: 1}, 0},
	}

	for _, want := range expected {
		assert.Equal(want, lex.Next())
	}

	// EOF is sticky.
	assert.Equal(TOKEN_EOF, lex.Next().Kind)
	assert.Equal(TOKEN_EOF, lex.Next().Kind)
}

func TestLexerLiterals(t *testing.T) {
	assert := assert.New(t)

	toks, lex := lexAll("0 7 1234 0x0 0xdeadBEEF 0b1010 007 12ab")
	assert.Equal([]lexed{
		{TOKEN_INT_LITERAL, "0"},
		{TOKEN_INT_LITERAL, "7"},
		{TOKEN_INT_LITERAL, "1234"},
		{TOKEN_HEX_LITERAL, "0x0"},
		{TOKEN_HEX_LITERAL, "0xdeadBEEF"},
		{TOKEN_BINARY_LITERAL, "0b1010"},
		{TOKEN_INT_LITERAL, "0"},
		{TOKEN_INT_LITERAL, "0"},
		{TOKEN_INT_LITERAL, "7"},
		{TOKEN_INT_LITERAL, "12"},
		{TOKEN_IDENTIFIER, "ab"},
		{TOKEN_EOF, ""},
	}, toks)
	assert.Empty(lex.Diagnostics())
}

func TestLexerMalformedLiterals(t *testing.T) {
	assert := assert.New(t)

	toks, lex := lexAll("0x 0bz 0b2\n")
	assert.Equal([]lexed{
		{TOKEN_ERROR, "0x"},
		{TOKEN_ERROR, "0b"},
		{TOKEN_IDENTIFIER, "z"},
		{TOKEN_ERROR, "0b"},
		{TOKEN_INT_LITERAL, "2"},
		{TOKEN_NEWLINE, "\n"},
		{TOKEN_EOF, ""},
	}, toks)

	diags := lex.Diagnostics()
	assert.Equal(3, len(diags))
	assert.Equal(ErrLiteral("0x"), diags[0].Err)
	assert.Equal(diag.Position{Offset: 3, Line: 1, Column: 4}, diags[1].Pos)
	assert.ErrorIs(diags[2], ErrLex)
	assert.Equal("malformed literal '0b'", diags[2].Message())
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	assert := assert.New(t)

	toks, lex := lexAll("xyz $é\nnop")
	assert.Equal([]lexed{
		{TOKEN_IDENTIFIER, "xyz"},
		{TOKEN_ERROR, "$"},
		{TOKEN_ERROR, "é"},
		{TOKEN_NEWLINE, "\n"},
		{TOKEN_IDENTIFIER, "nop"},
		{TOKEN_EOF, ""},
	}, toks)

	diags := lex.Diagnostics()
	assert.Equal(2, len(diags))
	assert.Equal(ErrCharacter('$'), diags[0].Err)
	assert.Equal(diag.Position{Offset: 4, Line: 1, Column: 5}, diags[0].Pos)
	assert.Equal(ErrCharacter('é'), diags[1].Err)
	assert.Equal("unexpected character '$'", diags[0].Message())
}

func TestLexerComments(t *testing.T) {
	assert := assert.New(t)

	toks, _ := lexAll("; only a comment")
	assert.Equal([]lexed{{TOKEN_EOF, ""}}, toks)

	toks, _ = lexAll("nop ; trailing\r\n;\n  \t\r\n")
	assert.Equal([]lexed{
		{TOKEN_IDENTIFIER, "nop"},
		{TOKEN_NEWLINE, "\n"},
		{TOKEN_NEWLINE, "\n"},
		{TOKEN_NEWLINE, "\n"},
		{TOKEN_EOF, ""},
	}, toks)

	toks, _ = lexAll("")
	assert.Equal([]lexed{{TOKEN_EOF, ""}}, toks)
}

package asm

import (
	"iter"
	"unicode/utf8"

	"github.com/ezrec/vc2asm/diag"
)

// Lexer splits source text into tokens. It is a pull-based cursor: each
// call to Next returns the following token, and once the end of the
// source is reached every further call returns TOKEN_EOF.
type Lexer struct {
	source string
	pos    diag.Position

	diags diag.List
}

// NewLexer creates a lexer positioned at the start of source.
func NewLexer(source string) *Lexer {
	return &Lexer{
		source: source,
		pos:    diag.Start,
	}
}

// Source returns the text being tokenized.
func (lex *Lexer) Source() string {
	return lex.source
}

// Diagnostics returns the diagnostics reported so far, in source order.
func (lex *Lexer) Diagnostics() diag.List {
	return lex.diags
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

// peek returns the byte n bytes ahead of the cursor, or 0 past the end.
func (lex *Lexer) peek(n int) byte {
	if lex.pos.Offset+n >= len(lex.source) {
		return 0
	}
	return lex.source[lex.pos.Offset+n]
}

// advance moves the cursor n bytes forward on the current line.
func (lex *Lexer) advance(n int) {
	lex.pos.Offset += n
	lex.pos.Column += n
}

// span consumes bytes matching accept, starting n bytes past the cursor,
// and returns the total length.
func (lex *Lexer) span(n int, accept func(byte) bool) int {
	for lex.pos.Offset+n < len(lex.source) && accept(lex.source[lex.pos.Offset+n]) {
		n++
	}
	return n
}

// skip consumes whitespace and comments.
func (lex *Lexer) skip() {
	for lex.pos.Offset < len(lex.source) {
		switch lex.source[lex.pos.Offset] {
		case ' ', '\t', '\r':
			lex.advance(1)
		case ';':
			lex.advance(lex.span(1, func(c byte) bool { return c != '\n' }))
		default:
			return
		}
	}
}

// emit creates a token of length n at the cursor and moves past it.
func (lex *Lexer) emit(kind TokenKind, n int) (tok Token) {
	tok = Token{Kind: kind, Pos: lex.pos, Length: n}
	lex.advance(n)
	return
}

// prefixed lexes a 0x or 0b literal.
func (lex *Lexer) prefixed(kind TokenKind, accept func(byte) bool) Token {
	n := lex.span(2, accept)
	if n == 2 {
		tok := lex.emit(TOKEN_ERROR, n)
		lex.diags.Add(tok.Pos, ErrLiteral(tok.Text(lex.source)))
		return tok
	}
	return lex.emit(kind, n)
}

// Next returns the next token.
func (lex *Lexer) Next() Token {
	lex.skip()

	if lex.pos.Offset >= len(lex.source) {
		return Token{Kind: TOKEN_EOF, Pos: lex.pos}
	}

	c := lex.peek(0)
	switch {
	case c == '\n':
		tok := Token{Kind: TOKEN_NEWLINE, Pos: lex.pos, Length: 1}
		lex.pos.Offset++
		lex.pos.Line++
		lex.pos.Column = 1
		return tok
	case isIdentStart(c):
		return lex.emit(TOKEN_IDENTIFIER, lex.span(1, isIdent))
	case c == '0' && lex.peek(1) == 'x':
		return lex.prefixed(TOKEN_HEX_LITERAL, isHexDigit)
	case c == '0' && lex.peek(1) == 'b':
		return lex.prefixed(TOKEN_BINARY_LITERAL, isBinaryDigit)
	case c == '0':
		return lex.emit(TOKEN_INT_LITERAL, 1)
	case isDigit(c):
		return lex.emit(TOKEN_INT_LITERAL, lex.span(1, isDigit))
	case c == '[':
		return lex.emit(TOKEN_LBRACKET, 1)
	case c == ']':
		return lex.emit(TOKEN_RBRACKET, 1)
	case c == '.':
		return lex.emit(TOKEN_DOT, 1)
	case c == ',':
		return lex.emit(TOKEN_COMMA, 1)
	case c == ':':
		return lex.emit(TOKEN_COLON, 1)
	}

	r, n := utf8.DecodeRuneInString(lex.source[lex.pos.Offset:])
	tok := lex.emit(TOKEN_ERROR, n)
	lex.diags.Add(tok.Pos, ErrCharacter(r))
	return tok
}

// Tokens returns an iterator over the remaining tokens, ending with (and
// including) TOKEN_EOF. The sequence consumes the lexer and cannot be
// restarted.
func (lex *Lexer) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := lex.Next()
			if !yield(tok) || tok.Kind == TOKEN_EOF {
				return
			}
		}
	}
}

package asm

import (
	"github.com/ezrec/vc2asm/diag"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_EOF            = TokenKind(0)  // end of file
	TOKEN_ERROR          = TokenKind(1)  // invalid input
	TOKEN_NEWLINE        = TokenKind(2)  // newline
	TOKEN_IDENTIFIER     = TokenKind(3)  // identifier
	TOKEN_INT_LITERAL    = TokenKind(4)  // integer literal
	TOKEN_HEX_LITERAL    = TokenKind(5)  // hex literal
	TOKEN_BINARY_LITERAL = TokenKind(6)  // binary literal
	TOKEN_LBRACKET       = TokenKind(7)  // '['
	TOKEN_RBRACKET       = TokenKind(8)  // ']'
	TOKEN_DOT            = TokenKind(9)  // '.'
	TOKEN_COMMA          = TokenKind(10) // ','
	TOKEN_COLON          = TokenKind(11) // ':'
)

// IsLiteral returns true for the numeric literal kinds.
func (kind TokenKind) IsLiteral() bool {
	return kind == TOKEN_INT_LITERAL || kind == TOKEN_HEX_LITERAL || kind == TOKEN_BINARY_LITERAL
}

// Token is a lexical token. It owns no text; Text slices it out of the
// source the token was read from.
type Token struct {
	Kind   TokenKind
	Pos    diag.Position
	Length int // Length in bytes.
}

// Text returns the source text of the token.
func (tok Token) Text(source string) string {
	return source[tok.Pos.Offset : tok.Pos.Offset+tok.Length]
}

// EndOfLine returns true for tokens that terminate a source line.
func (tok Token) EndOfLine() bool {
	return tok.Kind == TOKEN_NEWLINE || tok.Kind == TOKEN_EOF
}

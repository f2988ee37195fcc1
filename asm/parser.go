package asm

import (
	"errors"
	"iter"
	"slices"
	"strconv"

	"github.com/ezrec/vc2asm/diag"
)

// errLexed abandons a line at a TOKEN_ERROR, which the lexer has already
// reported.
var errLexed = errors.New("lexed")

// Parser builds Lines from the tokens of a Lexer. Malformed lines are
// reported, skipped up to the next newline, and produce no Line.
type Parser struct {
	lex    *Lexer
	source string
	ahead  []Token // Lookahead buffer.

	diags diag.List
}

// NewParser creates a parser reading from lex.
func NewParser(lex *Lexer) *Parser {
	return &Parser{
		lex:    lex,
		source: lex.Source(),
	}
}

// Diagnostics returns the parse diagnostics reported so far, in source
// order. Lexer diagnostics are kept by the Lexer.
func (p *Parser) Diagnostics() diag.List {
	return p.diags
}

// peek returns the token n tokens ahead without consuming it.
func (p *Parser) peek(n int) Token {
	for len(p.ahead) <= n {
		p.ahead = append(p.ahead, p.lex.Next())
	}
	return p.ahead[n]
}

// next consumes a token.
func (p *Parser) next() (tok Token) {
	tok = p.peek(0)
	if tok.Kind != TOKEN_EOF {
		p.ahead = p.ahead[1:]
	}
	return
}

// expected reports tok as not matching the grammar.
func (p *Parser) expected(tok Token, want string) error {
	if tok.Kind == TOKEN_ERROR {
		return errLexed
	}
	return diag.New(tok.Pos, ErrExpected{Want: want, Got: tok})
}

// resync discards the rest of the current line, newline included.
func (p *Parser) resync() {
	for !p.peek(0).EndOfLine() {
		p.next()
	}
	if p.peek(0).Kind == TOKEN_NEWLINE {
		p.next()
	}
}

// Parse parses all remaining lines.
func (p *Parser) Parse() []Line {
	return slices.Collect(p.Lines())
}

// Lines returns an iterator over the remaining lines. The sequence
// consumes the parser and cannot be restarted.
func (p *Parser) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for {
			for p.peek(0).Kind == TOKEN_NEWLINE {
				p.next()
			}
			if p.peek(0).Kind == TOKEN_EOF {
				return
			}

			line, err := p.parseLine()
			if err != nil {
				var d diag.Diagnostic
				if errors.As(err, &d) {
					p.diags = append(p.diags, d)
				}
				p.resync()
				continue
			}

			if !yield(line) {
				return
			}
		}
	}
}

// parseLine parses one non-blank line, terminator included.
func (p *Parser) parseLine() (line Line, err error) {
	tok := p.peek(0)

	switch tok.Kind {
	case TOKEN_DOT:
		p.next()
		name := p.peek(0)
		if name.Kind != TOKEN_IDENTIFIER {
			return nil, p.expected(name, f("label name"))
		}
		p.next()
		if colon := p.peek(0); colon.Kind != TOKEN_COLON {
			return nil, p.expected(colon, "':'")
		}
		p.next()
		line = &Label{Pos: tok.Pos, Name: name.Text(p.source), Scope: SCOPE_LOCAL}
	case TOKEN_IDENTIFIER:
		p.next()
		if p.peek(0).Kind == TOKEN_COLON {
			p.next()
			line = &Label{Pos: tok.Pos, Name: tok.Text(p.source), Scope: SCOPE_GLOBAL}
		} else {
			line, err = p.parseInstruction(tok)
			if err != nil {
				return
			}
		}
	default:
		return nil, p.expected(tok, f("label or instruction"))
	}

	end := p.peek(0)
	if !end.EndOfLine() {
		return nil, p.expected(end, f("newline"))
	}
	if end.Kind == TOKEN_NEWLINE {
		p.next()
	}

	return
}

// startsOperand returns true if a token of kind can begin an operand.
func startsOperand(kind TokenKind) bool {
	switch kind {
	case TOKEN_IDENTIFIER, TOKEN_DOT, TOKEN_LBRACKET:
		return true
	}
	return kind.IsLiteral()
}

// parseInstruction parses the attribute and operands following the
// mnemonic op, which has been consumed.
func (p *Parser) parseInstruction(op Token) (inst *Instruction, err error) {
	inst = &Instruction{
		Pos:      op.Pos,
		Operator: op.Text(p.source),
	}

	// An identifier is the attribute only if an operand follows it
	// directly; otherwise it is the first operand.
	if p.peek(0).Kind == TOKEN_IDENTIFIER && startsOperand(p.peek(1).Kind) {
		inst.Attribute = p.next().Text(p.source)
	}

	if p.peek(0).EndOfLine() {
		return
	}

	for {
		var operand Operand
		operand, err = p.parseOperand()
		if err != nil {
			return nil, err
		}
		inst.Operands = append(inst.Operands, operand)

		if p.peek(0).Kind != TOKEN_COMMA {
			break
		}
		p.next()
	}

	return
}

// parseOperand parses a value, or a bracketed value used as an address.
func (p *Parser) parseOperand() (operand Operand, err error) {
	tok := p.peek(0)
	operand.Pos = tok.Pos

	if tok.Kind != TOKEN_LBRACKET {
		operand.Value, err = p.parseValue()
		return
	}

	p.next()
	operand.Address = true
	operand.Value, err = p.parseValue()
	if err != nil {
		return
	}
	if end := p.peek(0); end.Kind != TOKEN_RBRACKET {
		err = p.expected(end, "']'")
		return
	}
	p.next()

	return
}

// parseValue parses an identifier, a local label reference or a literal.
func (p *Parser) parseValue() (value Value, err error) {
	tok := p.peek(0)

	switch {
	case tok.Kind == TOKEN_IDENTIFIER:
		p.next()
		value = Identifier{Name: tok.Text(p.source)}
	case tok.Kind == TOKEN_DOT:
		p.next()
		name := p.peek(0)
		if name.Kind != TOKEN_IDENTIFIER {
			return nil, p.expected(name, f("label name"))
		}
		p.next()
		value = Identifier{Name: name.Text(p.source), Local: true}
	case tok.Kind.IsLiteral():
		p.next()
		value, err = p.parseLiteral(tok)
	default:
		err = p.expected(tok, f("operand"))
	}

	return
}

// parseLiteral converts a literal token to its 32-bit value.
func (p *Parser) parseLiteral(tok Token) (value Value, err error) {
	text := tok.Text(p.source)

	var v uint64
	switch tok.Kind {
	case TOKEN_HEX_LITERAL:
		v, err = strconv.ParseUint(text[2:], 16, 32)
	case TOKEN_BINARY_LITERAL:
		v, err = strconv.ParseUint(text[2:], 2, 32)
	default:
		v, err = strconv.ParseUint(text, 10, 32)
	}
	if err != nil {
		return nil, diag.New(tok.Pos, ErrLiteralRange(text))
	}

	return Immediate(int32(uint32(v))), nil
}

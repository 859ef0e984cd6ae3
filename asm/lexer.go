package asm

import (
	"unicode/utf8"
)

// Lexer splits assembly text into tokens.
type Lexer struct {
	input  string
	pos    int
	base   int // source offset of input[0]
	lineNo int
	peeked *Token
}

// NewLexer returns a lexer positioned at the start of text.
func NewLexer(text string) *Lexer {
	return newLexer(text, 0, 1)
}

func newLexer(text string, base int, lineNo int) *Lexer {
	return &Lexer{
		input:  text,
		base:   base,
		lineNo: lineNo,
	}
}

// Peek returns the next token without consuming it.
func (lex *Lexer) Peek() Token {
	if lex.peeked == nil {
		tok := lex.scan()
		lex.peeked = &tok
	}

	return *lex.peeked
}

// Next consumes and returns the next token.
func (lex *Lexer) Next() (tok Token) {
	tok = lex.Peek()
	lex.peeked = nil
	return
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

// skip advances past whitespace and ';' comments.
func (lex *Lexer) skip() {
	for lex.pos < len(lex.input) {
		switch lex.input[lex.pos] {
		case '\n':
			lex.lineNo++
		case ' ', '\t', '\r':
		case ';':
			for lex.pos < len(lex.input) && lex.input[lex.pos] != '\n' {
				lex.pos++
			}
			continue
		default:
			return
		}
		lex.pos++
	}
}

// scan reads the token at the current position.
func (lex *Lexer) scan() (tok Token) {
	lex.skip()

	tok.Offset = lex.base + lex.pos
	tok.LineNo = lex.lineNo

	if lex.pos >= len(lex.input) {
		tok.Kind = EOF
		return
	}

	start := lex.pos
	c := lex.input[start]

	switch {
	case c == ':':
		lex.pos++
		tok.Kind = COLON
	case isIdentStart(c):
		for lex.pos < len(lex.input) && isIdent(lex.input[lex.pos]) {
			lex.pos++
		}
		tok.Kind = IDENT
		if kind, ok := keywordMap[lex.input[start:lex.pos]]; ok {
			tok.Kind = kind
		}
	case isDigit(c) || (c == '-' && start+1 < len(lex.input) && isDigit(lex.input[start+1])):
		lex.pos++
		for lex.pos < len(lex.input) && isDigit(lex.input[lex.pos]) {
			lex.pos++
		}
		tok.Kind = NUMBER
	case c == '$' && start+1 < len(lex.input) && lex.input[start+1] == '(':
		return lex.scanExpr(tok)
	default:
		_, size := utf8.DecodeRuneInString(lex.input[start:])
		lex.pos += size
		tok.Kind = INVALID
	}

	tok.Text = lex.input[start:lex.pos]

	return
}

// scanExpr reads a `$(...)` expression with balanced parentheses.
func (lex *Lexer) scanExpr(tok Token) Token {
	start := lex.pos
	depth := 0

	for lex.pos++; lex.pos < len(lex.input); lex.pos++ {
		switch c := lex.input[lex.pos]; c {
		case '\n':
			lex.lineNo++
		case '"', '\'':
			lex.skipQuoted(c)
			continue
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			lex.pos++
			tok.Kind = EXPR
			tok.Text = lex.input[start+2 : lex.pos-1]
			return tok
		}
	}

	tok.Kind = INVALID
	tok.Text = lex.input[start:]

	return tok
}

// skipQuoted advances past a quoted string inside an expression. An
// unterminated string runs to the end of the input.
func (lex *Lexer) skipQuoted(quote byte) {
	for lex.pos++; lex.pos < len(lex.input); lex.pos++ {
		switch lex.input[lex.pos] {
		case '\\':
			lex.pos++
		case '\n':
			lex.lineNo++
		case quote:
			return
		}
	}
}

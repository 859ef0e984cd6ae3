package asm

import (
	"fmt"
)

// Kind is the type of a lexical token.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	EOF          = Kind(0)  // end of input
	INVALID      = Kind(1)  // invalid
	IDENT        = Kind(2)  // identifier
	NUMBER       = Kind(3)  // number
	COLON        = Kind(4)  // ':'
	EXPR         = Kind(5)  // expression
	LOAD         = Kind(6)  // load
	JUMP         = Kind(7)  // jump
	NOOP         = Kind(8)  // noop
	ADD          = Kind(9)  // add
	SUBTRACT     = Kind(10) // subtract
	MULTIPLY     = Kind(11) // multiply
	DIVIDE       = Kind(12) // divide
	GREATER_THAN = Kind(13) // greater_than
	LESS_THAN    = Kind(14) // less_than
)

// keywordMap maps reserved words to their token kinds.
var keywordMap = func() map[string]Kind {
	keywords := make(map[string]Kind)
	for kind := EOF; kind <= LESS_THAN; kind++ {
		if kind.Keyword() {
			keywords[kind.String()] = kind
		}
	}
	return keywords
}()

// Keyword returns true if the kind is a reserved mnemonic.
func (kind Kind) Keyword() bool {
	return kind >= LOAD && kind <= LESS_THAN
}

// Arithmetic returns true if the kind is one of the six arithmetic or
// comparison mnemonics.
func (kind Kind) Arithmetic() bool {
	return kind >= ADD && kind <= LESS_THAN
}

// Token is a single lexical token.
type Token struct {
	Kind   Kind   // Kind of token.
	Text   string // Raw text. For EXPR, the text between the parentheses.
	Offset int    // Byte offset in the source text.
	LineNo int    // Line number, starting at 1.
}

// String returns the token in a form suitable for diagnostics.
func (tok Token) String() string {
	switch tok.Kind {
	case EOF:
		return tok.Kind.String()
	case EXPR:
		return fmt.Sprintf("$(%v)", tok.Text)
	}
	return fmt.Sprintf("'%v'", tok.Text)
}

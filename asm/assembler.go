// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"iter"
	"log"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/corevm/internal"
	"github.com/ezrec/corevm/isa"
)

// arithMap maps arithmetic mnemonics to their opcode pairs.
var arithMap = map[Kind]isa.ArithmeticPair{
	ADD:          isa.ADD,
	SUBTRACT:     isa.SUBTRACT,
	MULTIPLY:     isa.MULTIPLY,
	DIVIDE:       isa.DIVIDE,
	GREATER_THAN: isa.GREATER_THAN,
	LESS_THAN:    isa.LESS_THAN,
}

// blockKinds are the tokens that may start a block.
var blockKinds = []Kind{
	IDENT, LOAD, JUMP, NOOP, ADD, SUBTRACT, MULTIPLY, DIVIDE, GREATER_THAN, LESS_THAN,
}

// Assembler is a single pass assembler for the corevm bytecode.
//
// The zero value is ready to use. An Assembler may be driven all at once
// with Assemble or Parse, or incrementally with Feed and Finish; between
// Feed calls, Bytes and Pending expose the partially resolved output.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]int64
	buffer    Buffer
	labels    LabelTable
	listing   []Instruction
	source    int // Source bytes consumed by Feed.
	lineNo    int // Line number at the start of the next Feed.
}

// Predefine binds a name visible to $(...) expressions.
func (asm *Assembler) Predefine(name string, value int32) {
	if asm.predefine == nil {
		asm.predefine = map[string]int64{name: int64(value)}
	} else {
		asm.predefine[name] = int64(value)
	}
}

// Symbols iterates over the predefined names and the labels defined so far.
func (asm *Assembler) Symbols() iter.Seq2[string, int64] {
	return internal.IterSeq2Concat(
		maps.All(asm.predefine),
		internal.IterSeq2Convert(asm.labels.All(), func(offset uint32) int64 { return int64(offset) }),
	)
}

// Reset discards any partial assembly. Predefines are kept.
func (asm *Assembler) Reset() {
	asm.buffer.Reset()
	asm.labels.Reset()
	asm.listing = asm.listing[:0]
	asm.source = 0
	asm.lineNo = 1
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return asm.Assemble(string(text))
}

// Assemble assembles a complete program.
func (asm *Assembler) Assemble(text string) (prog *Program, err error) {
	asm.Reset()

	err = asm.Feed(text)
	if err != nil {
		return
	}

	return asm.Finish()
}

// Feed assembles the blocks of a chunk of source text. Blocks may not span
// chunks. On error, the bytes of every block before the failing one are
// kept and the failing block contributes nothing.
func (asm *Assembler) Feed(text string) (err error) {
	if asm.lineNo == 0 {
		asm.lineNo = 1
	}

	lex := newLexer(text, asm.source, asm.lineNo)
	defer func() {
		asm.source += len(text)
		asm.lineNo += strings.Count(text, "\n")
	}()

	for lex.Peek().Kind != EOF {
		err = asm.parseBlock(lex)
		if err != nil {
			return
		}
	}

	return
}

// Finish checks that every label reference was resolved and returns the
// assembled Program.
func (asm *Assembler) Finish() (prog *Program, err error) {
	err = asm.labels.Unresolved()
	if err != nil {
		ref := asm.labels.pending[0]
		err = &ErrAssemble{
			Offset: ref.Offset,
			LineNo: ref.LineNo,
			Token:  Token{Kind: IDENT, Text: ref.Label, LineNo: ref.LineNo},
			Err:    err,
		}
		return
	}

	prog = &Program{
		Code:    asm.buffer.Bytes(),
		Labels:  maps.Collect(asm.labels.All()),
		Listing: slices.Clone(asm.listing),
	}

	if asm.Verbose {
		log.Printf("asm: %v bytes, %v labels", len(prog.Code), len(prog.Labels))
	}

	return
}

// Bytes returns a copy of the output so far. Forward references not yet
// resolved read as zero.
func (asm *Assembler) Bytes() []byte {
	return asm.buffer.Bytes()
}

// Pending returns the label references not yet resolved.
func (asm *Assembler) Pending() []Reference {
	return asm.labels.Pending()
}

// Position returns the current output offset.
func (asm *Assembler) Position() uint32 {
	return asm.buffer.Position()
}

// operand is a staged instruction operand.
type operand struct {
	size  int    // 1 or 4 bytes.
	value uint32 // Encoded value.
	label string // If set, a 4-byte address of this label.
}

// block is the parse state of a single block.
type block struct {
	lex   *Lexer
	at    Token    // Most recently consumed token.
	words []string // Text of the consumed tokens.
}

func (blk *block) next() Token {
	blk.at = blk.lex.Next()
	word := blk.at.Text
	if blk.at.Kind == EXPR {
		word = blk.at.String()
	}
	blk.words = append(blk.words, word)
	return blk.at
}

// expect consumes a token of one of the given kinds.
func (blk *block) expect(kinds ...Kind) (tok Token, err error) {
	tok = blk.next()
	switch {
	case tok.Kind == INVALID:
		err = ErrCharacter(tok.Text)
	case !slices.Contains(kinds, tok.Kind):
		err = &ErrSyntax{Expected: kinds, Actual: tok}
	}
	return
}

// register consumes a register name.
func (blk *block) register() (reg isa.Register, err error) {
	tok, err := blk.expect(IDENT)
	if err != nil {
		return
	}

	reg, ok := isa.LookupRegister(tok.Text)
	if !ok {
		err = ErrRegisterUndefined(tok.Text)
	}
	return
}

// parseNumber converts a decimal literal to its 32-bit two's complement
// encoding.
func parseNumber(text string) (value uint32, err error) {
	v64, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		err = ErrParseNumber(text)
		return
	}

	value = uint32(v64)
	return
}

// immediate converts a NUMBER or EXPR token to its value.
func (asm *Assembler) immediate(tok Token) (value uint32, err error) {
	if tok.Kind == EXPR {
		return asm.evaluate(tok.Text)
	}
	return parseNumber(tok.Text)
}

// parseBlock parses and commits one label definition or instruction.
func (asm *Assembler) parseBlock(lex *Lexer) (err error) {
	blk := &block{lex: lex}
	start := lex.Peek()

	defer func() {
		if err != nil {
			err = &ErrAssemble{
				Offset: asm.buffer.Position(),
				LineNo: blk.at.LineNo,
				Token:  blk.at,
				Err:    err,
			}
		}
	}()

	var op isa.Opcode
	var operands []operand

	switch kind := start.Kind; {
	case kind == IDENT:
		return asm.parseLabel(blk)
	case kind == NOOP:
		blk.next()
		op = isa.OP_NOOP
	case kind == LOAD:
		blk.next()
		var reg isa.Register
		reg, err = blk.register()
		if err != nil {
			return
		}
		var tok Token
		tok, err = blk.expect(NUMBER, EXPR)
		if err != nil {
			return
		}
		var value uint32
		value, err = asm.immediate(tok)
		if err != nil {
			return
		}
		op = isa.OP_LOAD_IMM
		operands = []operand{{size: 1, value: uint32(reg)}, {size: 4, value: value}}
	case kind == JUMP:
		blk.next()
		var tok Token
		tok, err = blk.expect(IDENT)
		if err != nil {
			return
		}
		op = isa.OP_JUMP_IMM
		operands = []operand{{size: 4, label: tok.Text}}
	case kind.Arithmetic():
		blk.next()
		var dst isa.Register
		dst, err = blk.register()
		if err != nil {
			return
		}
		var tok Token
		tok, err = blk.expect(NUMBER, EXPR, IDENT)
		if err != nil {
			return
		}
		immediate := tok.Kind != IDENT
		op = arithMap[kind].Select(immediate)
		operands = []operand{{size: 1, value: uint32(dst)}}
		if immediate {
			var value uint32
			value, err = asm.immediate(tok)
			if err != nil {
				return
			}
			operands = append(operands, operand{size: 4, value: value})
		} else {
			src, ok := isa.LookupRegister(tok.Text)
			if !ok {
				err = ErrRegisterUndefined(tok.Text)
				return
			}
			operands = append(operands, operand{size: 1, value: uint32(src)})
		}
	case kind == INVALID:
		blk.next()
		err = ErrCharacter(start.Text)
		return
	default:
		blk.next()
		err = &ErrSyntax{Expected: blockKinds, Actual: start}
		return
	}

	asm.commit(blk, start.LineNo, op, operands...)

	return
}

// parseLabel parses `name:` and resolves pending references to it.
func (asm *Assembler) parseLabel(blk *block) (err error) {
	name := blk.next()

	_, err = blk.expect(COLON)
	if err != nil {
		return
	}

	offset := asm.buffer.Position()
	err = asm.labels.Define(name.Text, offset)
	if err != nil {
		blk.at = name
		return
	}

	resolved := asm.labels.Resolve(&asm.buffer)

	if asm.Verbose {
		log.Printf("asm: %04x: %v: (%v resolved, %v pending)", offset, name.Text, resolved, len(asm.labels.pending))
	}

	return
}

// commit appends a fully parsed instruction to the output.
func (asm *Assembler) commit(blk *block, lineNo int, op isa.Opcode, operands ...operand) {
	ins := Instruction{
		Offset: asm.buffer.Position(),
		LineNo: lineNo,
		Words:  blk.words,
		Opcode: op,
	}

	asm.buffer.Append8(uint8(op))
	for _, arg := range operands {
		switch {
		case len(arg.label) != 0:
			ins.Label = arg.label
			if offset, ok := asm.labels.Lookup(arg.label); ok {
				asm.buffer.Append32(offset)
			} else {
				at := asm.buffer.Reserve32()
				asm.labels.Reference(Reference{Offset: at, Label: arg.label, LineNo: lineNo})
			}
		case arg.size == 1:
			asm.buffer.Append8(uint8(arg.value))
		default:
			asm.buffer.Append32(arg.value)
		}
	}

	asm.listing = append(asm.listing, ins)

	if asm.Verbose {
		log.Printf("asm: %04x: %v %v", ins.Offset, op, blk.words)
	}
}

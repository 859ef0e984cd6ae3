package asm

import (
	"encoding/binary"
	"fmt"
	"slices"
)

// Buffer is the append-only bytecode output. Values are little-endian.
//
// Four byte slots allocated with Reserve32 may be filled in later with
// Patch32; no other write may go backwards.
type Buffer struct {
	data     []byte
	reserved map[uint32]struct{}
}

// Position returns the offset of the next byte to be written.
func (buf *Buffer) Position() uint32 {
	return uint32(len(buf.data))
}

// Append8 writes a single byte.
func (buf *Buffer) Append8(value uint8) {
	buf.data = append(buf.data, value)
}

// Append32 writes a 32-bit value.
func (buf *Buffer) Append32(value uint32) {
	buf.data = binary.LittleEndian.AppendUint32(buf.data, value)
}

// Reserve32 writes a zero 32-bit placeholder and returns its offset.
func (buf *Buffer) Reserve32() (at uint32) {
	at = buf.Position()
	if buf.reserved == nil {
		buf.reserved = make(map[uint32]struct{})
	}
	buf.reserved[at] = struct{}{}
	buf.Append32(0)
	return
}

// Patch32 fills a slot previously returned by Reserve32. Each slot may be
// patched once. Patching any other offset panics.
func (buf *Buffer) Patch32(at uint32, value uint32) {
	if _, ok := buf.reserved[at]; !ok {
		panic(fmt.Sprintf("asm: patch of unreserved offset %#x", at))
	}
	delete(buf.reserved, at)
	binary.LittleEndian.PutUint32(buf.data[at:], value)
}

// Reserved returns the number of slots still waiting for a patch.
func (buf *Buffer) Reserved() int {
	return len(buf.reserved)
}

// Bytes returns a copy of the bytes written so far.
func (buf *Buffer) Bytes() []byte {
	return slices.Clone(buf.data)
}

// Reset empties the buffer.
func (buf *Buffer) Reset() {
	buf.data = buf.data[:0]
	clear(buf.reserved)
}

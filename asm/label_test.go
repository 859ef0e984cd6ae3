package asm

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelTable(t *testing.T) {
	assert := assert.New(t)

	lt := &LabelTable{}

	_, ok := lt.Lookup("start")
	assert.False(ok)

	assert.NoError(lt.Define("start", 0))
	offset, ok := lt.Lookup("start")
	assert.True(ok)
	assert.Equal(uint32(0), offset)

	err := lt.Define("start", 4)
	assert.Equal(ErrLabelDuplicate("start"), err)
	offset, _ = lt.Lookup("start")
	assert.Equal(uint32(0), offset)

	assert.Equal(map[string]uint32{"start": 0}, maps.Collect(lt.All()))
}

func TestLabelTableResolve(t *testing.T) {
	assert := assert.New(t)

	lt := &LabelTable{}
	buf := &Buffer{}

	buf.Append8(0x02)
	lt.Reference(Reference{Offset: buf.Reserve32(), Label: "a", LineNo: 1})
	buf.Append8(0x02)
	lt.Reference(Reference{Offset: buf.Reserve32(), Label: "b", LineNo: 2})
	buf.Append8(0x02)
	lt.Reference(Reference{Offset: buf.Reserve32(), Label: "a", LineNo: 3})

	assert.Equal(0, lt.Resolve(buf))
	assert.Len(lt.Pending(), 3)

	assert.NoError(lt.Define("a", 15))
	assert.Equal(2, lt.Resolve(buf))
	assert.Equal([]Reference{{Offset: 6, Label: "b", LineNo: 2}}, lt.Pending())
	assert.Equal([]byte{
		0x02, 0x0f, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00, 0x00,
		0x02, 0x0f, 0x00, 0x00, 0x00,
	}, buf.Bytes())

	var missing *ErrLabelUnresolved
	err := lt.Unresolved()
	assert.True(errors.As(err, &missing))
	assert.Equal("b", missing.Label)
	assert.Equal(1, missing.Uses)

	assert.NoError(lt.Define("b", 20))
	assert.Equal(1, lt.Resolve(buf))
	assert.Empty(lt.Pending())
	assert.NoError(lt.Unresolved())
	assert.Equal(byte(20), buf.Bytes()[6])

	// Nothing left to resolve.
	assert.Equal(0, lt.Resolve(buf))
}

func TestLabelTableUnresolvedUses(t *testing.T) {
	assert := assert.New(t)

	lt := &LabelTable{}
	lt.Reference(Reference{Offset: 1, Label: "x"})
	lt.Reference(Reference{Offset: 6, Label: "y"})
	lt.Reference(Reference{Offset: 11, Label: "x"})

	assert.Equal(&ErrLabelUnresolved{Label: "x", Uses: 2}, lt.Unresolved())

	lt.Reset()
	assert.NoError(lt.Unresolved())
	_, ok := lt.Lookup("x")
	assert.False(ok)
}

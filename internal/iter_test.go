package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1}
	b := map[string]int{"b": 2, "c": 3}

	all := maps.Collect(IterSeq2Concat(maps.All(a), maps.All(b)))
	assert.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, all)

	var keys []string
	for key := range IterSeq2Concat(maps.All(a), maps.All(b)) {
		keys = append(keys, key)
		break
	}
	assert.Equal([]string{"a"}, keys)

	assert.Empty(maps.Collect(IterSeq2Concat[string, int]()))
}

func TestIterSeq2Convert(t *testing.T) {
	assert := assert.New(t)

	labels := map[string]uint32{"start": 0, "end": 0xffffffff}

	converted := maps.Collect(IterSeq2Convert(maps.All(labels), func(v uint32) int64 { return int64(v) }))
	assert.Equal(map[string]int64{"start": 0, "end": 0xffffffff}, converted)

	values := slices.Collect(func(yield func(int64) bool) {
		for _, v := range IterSeq2Convert(maps.All(map[string]uint32{"x": 7}), func(v uint32) int64 { return -int64(v) }) {
			if !yield(v) {
				return
			}
		}
	})
	assert.Equal([]int64{-7}, values)
}

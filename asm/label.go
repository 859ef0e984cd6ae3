package asm

import (
	"iter"
	"maps"
)

// Reference is a use of a label whose address is not yet known.
type Reference struct {
	Offset uint32 // Offset of the reserved 4-byte address slot.
	Label  string // Name of the label.
	LineNo int    // Source line of the use.
}

// LabelTable maps label names to byte offsets and tracks forward references.
type LabelTable struct {
	labels  map[string]uint32
	pending []Reference
}

// Define records the offset of a label. Labels cannot be redefined.
func (lt *LabelTable) Define(name string, offset uint32) (err error) {
	if _, ok := lt.labels[name]; ok {
		err = ErrLabelDuplicate(name)
		return
	}

	if lt.labels == nil {
		lt.labels = make(map[string]uint32, 16)
	}
	lt.labels[name] = offset

	return
}

// Lookup returns the offset of a defined label.
func (lt *LabelTable) Lookup(name string) (offset uint32, ok bool) {
	offset, ok = lt.labels[name]
	return
}

// Reference records a pending use of a label.
func (lt *LabelTable) Reference(ref Reference) {
	lt.pending = append(lt.pending, ref)
}

// Resolve patches every pending reference whose label is now defined, and
// removes it from the pending set. It returns the number of references
// resolved.
func (lt *LabelTable) Resolve(buf *Buffer) (resolved int) {
	keep := lt.pending[:0]
	for _, ref := range lt.pending {
		offset, ok := lt.labels[ref.Label]
		if !ok {
			keep = append(keep, ref)
			continue
		}
		buf.Patch32(ref.Offset, offset)
		resolved++
	}
	clear(lt.pending[len(keep):])
	lt.pending = keep

	return
}

// Pending returns the references not yet resolved, in order of use.
func (lt *LabelTable) Pending() []Reference {
	return append([]Reference(nil), lt.pending...)
}

// Unresolved returns an *ErrLabelUnresolved for the earliest pending
// reference, or nil if every reference has been resolved.
func (lt *LabelTable) Unresolved() error {
	if len(lt.pending) == 0 {
		return nil
	}

	label := lt.pending[0].Label
	uses := 0
	for _, ref := range lt.pending {
		if ref.Label == label {
			uses++
		}
	}

	return &ErrLabelUnresolved{Label: label, Uses: uses}
}

// All iterates over the defined labels.
func (lt *LabelTable) All() iter.Seq2[string, uint32] {
	return maps.All(lt.labels)
}

// Reset forgets all labels and references.
func (lt *LabelTable) Reset() {
	clear(lt.labels)
	lt.pending = lt.pending[:0]
}

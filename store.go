package annotate

import (
	"bytes"
	"slices"
)

// Store holds one optional mask buffer per image position. A nil entry
// means the image was never painted, which is equivalent to a fully
// transparent mask.
//
// The store has no notion of image identity: keeping it aligned with an
// ImageSet is the caller's job (see Reorder).
type Store struct {
	masks [][]byte
}

// EnsureAligned pads the store with absent entries until it holds n.
// It never truncates.
func (s *Store) EnsureAligned(n int) {
	for len(s.masks) < n {
		s.masks = append(s.masks, nil)
	}
}

// Len returns the number of entries, painted or not.
func (s *Store) Len() int { return len(s.masks) }

// Get returns the mask at index i; ok is false when the entry is absent
// or i is out of range.
func (s *Store) Get(i int) (buf []byte, ok bool) {
	if i < 0 || i >= len(s.masks) || s.masks[i] == nil {
		return nil, false
	}
	return s.masks[i], true
}

// Commit replaces the mask at index i wholesale with a copy of buf. An
// empty buf marks the entry absent again.
func (s *Store) Commit(i int, buf []byte) error {
	if i < 0 || i >= len(s.masks) {
		return outOfRange(i, len(s.masks))
	}
	if len(buf) == 0 {
		s.masks[i] = nil
		return nil
	}
	s.masks[i] = bytes.Clone(buf)
	return nil
}

// Reorder rearranges the store by a permutation returned from
// ImageSet.Add: entry i becomes the old entry order[i], or absent when
// order[i] is -1. Entries not referenced by order are dropped, so the
// store ends up exactly len(order) long.
func (s *Store) Reorder(order []int) {
	if order == nil {
		return
	}
	next := make([][]byte, len(order))
	for i, old := range order {
		if old >= 0 && old < len(s.masks) {
			next[i] = s.masks[old]
		}
	}
	s.masks = next
}

// Snapshot returns the current entries. Buffers are shared but never
// mutated in place, so the snapshot is unaffected by later commits.
func (s *Store) Snapshot() [][]byte {
	return slices.Clone(s.masks)
}

// Painted returns how many entries hold a mask.
func (s *Store) Painted() int {
	n := 0
	for _, m := range s.masks {
		if m != nil {
			n++
		}
	}
	return n
}

//go:build go1.23

package veb

import "iter"

// All returns an iterator over every member of the set in ascending order,
// the way internal/bitset.BitSet.All walks a plain bitmap one word at a
// time. Here each step is a Next call instead of a word scan, since the
// members are spread across a tree rather than a flat array.
func (s *Set) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		x, ok := s.Min()
		for ok {
			if !yield(x) {
				return
			}
			if x == uint32(s.lv.capacity())-1 {
				return
			}
			x, ok = s.Next(x + 1)
		}
	}
}

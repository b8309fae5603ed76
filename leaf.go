package veb

import "github.com/Hegdahl/flat-veb/internal/wordset"

// Bit-block leaf. A level-b node with b <= leafBits is a single word at
// buf[off]; every operation is one or two wordset calls.

func leafContains(buf []uint64, off int, x uint32) bool {
	return wordset.Test(buf[off], uint(x))
}

func leafInsert(buf []uint64, off int, x uint32) bool {
	w, inserted := wordset.Set(buf[off], uint(x))
	buf[off] = w
	return inserted
}

func leafRemove(buf []uint64, off int, x uint32) bool {
	w, removed := wordset.Clear(buf[off], uint(x))
	buf[off] = w
	return removed
}

func leafNext(buf []uint64, off int, x uint32) (uint32, bool) {
	y, ok := wordset.Next(buf[off], uint(x))
	return uint32(y), ok
}

func leafPrev(buf []uint64, off int, x uint32) (uint32, bool) {
	y, ok := wordset.Prev(buf[off], uint(x))
	return uint32(y), ok
}

func leafMin(buf []uint64, off int) (uint32, bool) {
	y, ok := wordset.Min(buf[off])
	return uint32(y), ok
}

func leafMax(buf []uint64, off int) (uint32, bool) {
	y, ok := wordset.Max(buf[off])
	return uint32(y), ok
}

func leafClear(buf []uint64, off int) {
	buf[off] = 0
}

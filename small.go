package veb

import "github.com/Hegdahl/flat-veb/internal/wordset"

// Small-universe node. A level-b node with leafBits < b <= smallMaxBits is
// lv.chunks consecutive 64-bit bitmap words at buf[off:off+lv.chunks],
// followed by one OR-summary word at buf[off+lv.chunks] whose bit j
// records whether chunk j is non-empty. This is an optional shallow
// recursion base with lower constant overhead than a full
// min/max-plus-summary-plus-clusters node.

func smallContains(buf []uint64, off int, lv *level, x uint32) bool {
	c := off + int(x>>6)
	return leafContains(buf, c, x&63)
}

func smallInsert(buf []uint64, off int, lv *level, x uint32) bool {
	c := int(x >> 6)
	wasEmpty := buf[off+c] == 0
	inserted := leafInsert(buf, off+c, x&63)
	if wasEmpty && inserted {
		leafInsert(buf, off+lv.chunks, uint32(c))
	}
	return inserted
}

func smallRemove(buf []uint64, off int, lv *level, x uint32) bool {
	c := int(x >> 6)
	removed := leafRemove(buf, off+c, x&63)
	if removed && buf[off+c] == 0 {
		leafRemove(buf, off+lv.chunks, uint32(c))
	}
	return removed
}

func smallNext(buf []uint64, off int, lv *level, x uint32) (uint32, bool) {
	c := uint32(x >> 6)
	if y, ok := leafNext(buf, off+int(c), x&63); ok {
		return c<<6 | y, true
	}

	cNext, ok := wordset.Next(buf[off+lv.chunks], uint(c)+1)
	if !ok {
		return 0, false
	}
	y, _ := leafMin(buf, off+int(cNext))
	return uint32(cNext)<<6 | y, true
}

func smallPrev(buf []uint64, off int, lv *level, x uint32) (uint32, bool) {
	c := uint32(x >> 6)
	if y, ok := leafPrev(buf, off+int(c), x&63); ok {
		return c<<6 | y, true
	}
	if c == 0 {
		return 0, false
	}

	cPrev, ok := wordset.Prev(buf[off+lv.chunks], uint(c)-1)
	if !ok {
		return 0, false
	}
	y, _ := leafMax(buf, off+int(cPrev))
	return uint32(cPrev)<<6 | y, true
}

func smallMin(buf []uint64, off int, lv *level) (uint32, bool) {
	c, ok := leafMin(buf, off+lv.chunks)
	if !ok {
		return 0, false
	}
	y, _ := leafMin(buf, off+int(c))
	return c<<6 | y, true
}

func smallMax(buf []uint64, off int, lv *level) (uint32, bool) {
	c, ok := leafMax(buf, off+lv.chunks)
	if !ok {
		return 0, false
	}
	y, _ := leafMax(buf, off+int(c))
	return c<<6 | y, true
}

func smallClear(buf []uint64, off int, lv *level) {
	clear(buf[off : off+lv.chunks+1])
}

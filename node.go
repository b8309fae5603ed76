package veb

// node.go is the uniform query interface across recursion levels plus the
// recursive vEB node algorithms themselves. Every exported-to-the-package
// function here (nodeContains, nodeInsert, ...) dispatches on lv.kind and
// bottoms out in leaf.go or small.go; only the kindRecursive branch does
// real work, threading min/max through the header words so that insert
// and remove each make at most one recursive call into a non-empty child.

func nodeIsEmpty(buf []uint64, off int, lv *level) bool {
	switch lv.kind {
	case kindLeaf:
		return buf[off] == 0
	case kindSmall:
		return buf[off+lv.chunks] == 0
	default:
		return buf[off] == lv.emptySentinel()
	}
}

func nodeClear(buf []uint64, off int, lv *level) {
	switch lv.kind {
	case kindLeaf:
		leafClear(buf, off)
	case kindSmall:
		smallClear(buf, off, lv)
	default:
		sentinel := lv.emptySentinel()
		buf[off] = sentinel
		buf[off+1] = sentinel
		nodeClear(buf, off+lv.summaryOff, lv.summary)
		for h := 0; h < lv.clusterCount; h++ {
			nodeClear(buf, off+lv.clusterOffset(uint32(h)), lv.cluster)
		}
	}
}

func nodeContains(buf []uint64, off int, lv *level, x uint32) bool {
	switch lv.kind {
	case kindLeaf:
		return leafContains(buf, off, x)
	case kindSmall:
		return smallContains(buf, off, lv, x)
	default:
		return recContains(buf, off, lv, x)
	}
}

func nodeInsert(buf []uint64, off int, lv *level, x uint32) bool {
	switch lv.kind {
	case kindLeaf:
		return leafInsert(buf, off, x)
	case kindSmall:
		return smallInsert(buf, off, lv, x)
	default:
		return recInsert(buf, off, lv, x)
	}
}

func nodeRemove(buf []uint64, off int, lv *level, x uint32) bool {
	switch lv.kind {
	case kindLeaf:
		return leafRemove(buf, off, x)
	case kindSmall:
		return smallRemove(buf, off, lv, x)
	default:
		return recRemove(buf, off, lv, x)
	}
}

func nodeNext(buf []uint64, off int, lv *level, x uint32) (uint32, bool) {
	switch lv.kind {
	case kindLeaf:
		return leafNext(buf, off, x)
	case kindSmall:
		return smallNext(buf, off, lv, x)
	default:
		return recNext(buf, off, lv, x)
	}
}

func nodePrev(buf []uint64, off int, lv *level, x uint32) (uint32, bool) {
	switch lv.kind {
	case kindLeaf:
		return leafPrev(buf, off, x)
	case kindSmall:
		return smallPrev(buf, off, lv, x)
	default:
		return recPrev(buf, off, lv, x)
	}
}

func nodeMin(buf []uint64, off int, lv *level) (uint32, bool) {
	switch lv.kind {
	case kindLeaf:
		return leafMin(buf, off)
	case kindSmall:
		return smallMin(buf, off, lv)
	default:
		return recMin(buf, off, lv)
	}
}

func nodeMax(buf []uint64, off int, lv *level) (uint32, bool) {
	switch lv.kind {
	case kindLeaf:
		return leafMax(buf, off)
	case kindSmall:
		return smallMax(buf, off, lv)
	default:
		return recMax(buf, off, lv)
	}
}

// --- recursive node ---------------------------------------------------

// recHeader reads the min/max pair; empty is true iff min equals the
// level's sentinel (an empty node has both min and max set to it).
func recHeader(buf []uint64, off int, lv *level) (min, max uint32, empty bool) {
	m := buf[off]
	if m == lv.emptySentinel() {
		return 0, 0, true
	}
	return uint32(m), uint32(buf[off+1]), false
}

func recSetHeader(buf []uint64, off int, min, max uint32) {
	buf[off] = uint64(min)
	buf[off+1] = uint64(max)
}

func recClearHeader(buf []uint64, off int, lv *level) {
	sentinel := lv.emptySentinel()
	buf[off] = sentinel
	buf[off+1] = sentinel
}

func recMin(buf []uint64, off int, lv *level) (uint32, bool) {
	min, _, empty := recHeader(buf, off, lv)
	return min, !empty
}

func recMax(buf []uint64, off int, lv *level) (uint32, bool) {
	_, max, empty := recHeader(buf, off, lv)
	return max, !empty
}

func recContains(buf []uint64, off int, lv *level, x uint32) bool {
	min, max, empty := recHeader(buf, off, lv)
	if empty {
		return false
	}
	if x == min || x == max {
		return true
	}
	if x < min || x > max {
		return false
	}
	hi, lo := lv.split(x)
	return nodeContains(buf, off+lv.clusterOffset(hi), lv.cluster, lo)
}

// recInsert threads the old min into the clusters rather than ever
// storing it twice, which means insert makes at most one recursive call
// into a non-empty child.
func recInsert(buf []uint64, off int, lv *level, x uint32) bool {
	min, max, empty := recHeader(buf, off, lv)
	if empty {
		recSetHeader(buf, off, x, x)
		return true
	}

	if x == min || x == max {
		return false
	}

	if x < min {
		x, min = min, x
	}
	if x > max {
		max = x
	}
	recSetHeader(buf, off, min, max)

	hi, lo := lv.split(x)
	clusterOff := off + lv.clusterOffset(hi)
	if nodeIsEmpty(buf, clusterOff, lv.cluster) {
		nodeInsert(buf, off+lv.summaryOff, lv.summary, hi)
	}
	return nodeInsert(buf, clusterOff, lv.cluster, lo)
}

func recRemove(buf []uint64, off int, lv *level, x uint32) bool {
	min, max, empty := recHeader(buf, off, lv)
	if empty {
		return false
	}

	if min == max {
		if x != min {
			return false
		}
		recClearHeader(buf, off, lv)
		return true
	}

	if x == min {
		h, _ := nodeMin(buf, off+lv.summaryOff, lv.summary)
		l, _ := nodeMin(buf, off+lv.clusterOffset(h), lv.cluster)
		x = lv.join(h, l)
		min = x
	}

	hi, lo := lv.split(x)
	clusterOff := off + lv.clusterOffset(hi)
	if !nodeRemove(buf, clusterOff, lv.cluster, lo) {
		return false
	}

	if nodeIsEmpty(buf, clusterOff, lv.cluster) {
		nodeRemove(buf, off+lv.summaryOff, lv.summary, hi)
	}

	if x == max {
		if nodeIsEmpty(buf, off+lv.summaryOff, lv.summary) {
			max = min
		} else {
			h, _ := nodeMax(buf, off+lv.summaryOff, lv.summary)
			l, _ := nodeMax(buf, off+lv.clusterOffset(h), lv.cluster)
			max = lv.join(h, l)
		}
	}

	recSetHeader(buf, off, min, max)
	return true
}

func recNext(buf []uint64, off int, lv *level, x uint32) (uint32, bool) {
	min, max, empty := recHeader(buf, off, lv)
	if empty || x > max {
		return 0, false
	}
	if x <= min {
		return min, true
	}

	hi, lo := lv.split(x)
	clusterOff := off + lv.clusterOffset(hi)
	if clusterMax, ok := nodeMax(buf, clusterOff, lv.cluster); ok && clusterMax >= lo {
		y, _ := nodeNext(buf, clusterOff, lv.cluster, lo)
		return lv.join(hi, y), true
	}

	if int(hi)+1 >= lv.clusterCount {
		return max, true
	}
	hNext, ok := nodeNext(buf, off+lv.summaryOff, lv.summary, hi+1)
	if !ok {
		return max, true
	}
	l, _ := nodeMin(buf, off+lv.clusterOffset(hNext), lv.cluster)
	return lv.join(hNext, l), true
}

func recPrev(buf []uint64, off int, lv *level, x uint32) (uint32, bool) {
	min, max, empty := recHeader(buf, off, lv)
	if empty || x < min {
		return 0, false
	}
	if x >= max {
		return max, true
	}

	hi, lo := lv.split(x)
	clusterOff := off + lv.clusterOffset(hi)
	if clusterMin, ok := nodeMin(buf, clusterOff, lv.cluster); ok && clusterMin <= lo {
		y, _ := nodePrev(buf, clusterOff, lv.cluster, lo)
		return lv.join(hi, y), true
	}

	if hi == 0 {
		return min, true
	}
	hPrev, ok := nodePrev(buf, off+lv.summaryOff, lv.summary, hi-1)
	if !ok {
		return min, true
	}
	l, _ := nodeMax(buf, off+lv.clusterOffset(hPrev), lv.cluster)
	return lv.join(hPrev, l), true
}

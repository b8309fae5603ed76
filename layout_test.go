package veb

import "testing"

func TestBuildLevelKinds(t *testing.T) {
	cases := []struct {
		bits int
		kind kind
	}{
		{1, kindLeaf},
		{6, kindLeaf},
		{7, kindSmall},
		{12, kindSmall},
		{13, kindRecursive},
		{24, kindRecursive},
		{32, kindRecursive},
	}
	for _, c := range cases {
		lv := levels[c.bits]
		if lv.kind != c.kind {
			t.Errorf("levels[%d].kind = %v, want %v", c.bits, lv.kind, c.kind)
		}
	}
}

func TestLevelsAreSharedAndDeterministic(t *testing.T) {
	// the layout is a pure function of the bit-width alone.
	a := NewBits(20)
	b := NewBits(20)
	if a.lv != b.lv {
		t.Fatalf("two Sets of the same width should share one *level plan")
	}
}

func TestSmallChunkSummaryFitsOneWord(t *testing.T) {
	lv := levels[smallMaxBits]
	if lv.chunks != 64 {
		t.Fatalf("small node at the top threshold should have exactly 64 chunks, got %d", lv.chunks)
	}
}

func TestRecursiveSplitJoinRoundTrip(t *testing.T) {
	lv := levels[24]
	for _, x := range []uint32{0, 1, 12345, 1<<24 - 1, 1 << 12} {
		hi, lo := lv.split(x)
		if got := lv.join(hi, lo); got != x {
			t.Errorf("join(split(%d)) = %d, want %d", x, got, x)
		}
	}
}

func TestClusterOffsetsDoNotOverlap(t *testing.T) {
	lv := levels[16]
	if lv.kind != kindRecursive {
		t.Fatalf("expected level 16 to be recursive")
	}
	seen := map[int]bool{}
	for h := 0; h < lv.clusterCount; h++ {
		off := lv.clusterOffset(uint32(h))
		for i := 0; i < lv.cluster.size; i++ {
			if seen[off+i] {
				t.Fatalf("cluster %d overlaps a previous cluster at word %d", h, off+i)
			}
			seen[off+i] = true
		}
	}
	if lv.summaryOff+lv.summary.size > lv.clusterOff {
		t.Fatalf("summary span overruns the first cluster's offset")
	}
}

func TestMaxBitsSizeIsBounded(t *testing.T) {
	lv := levels[maxBits]
	// a full B=32 universe should cost on the order of hundreds of MiB,
	// not more; catch a layout regression that blows this up.
	const wordsPerGiB = (1 << 30) / 8
	if lv.size > wordsPerGiB {
		t.Fatalf("levels[32].size = %d words, exceeds 1 GiB budget", lv.size)
	}
}

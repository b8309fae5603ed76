package veb

import (
	"math/rand/v2"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"
)

// TestDifferentialAgainstRoaring drives a long randomized sequence of
// insert/remove/contains calls through both a Set and a RoaringBitmap used
// purely as an independent reference set, then checks the two agree at
// every step.
func TestDifferentialAgainstRoaring(t *testing.T) {
	const bits = 16
	const universe = 1 << bits
	const ops = 50_000

	s := NewBits(bits)
	ref := roaring.New()

	prng := rand.New(rand.NewPCG(42, 1337))

	// A counter kept alongside insert/remove should track cardinality
	// without ever walking the structure.
	var count int64

	for i := 0; i < ops; i++ {
		x := uint32(prng.IntN(universe))
		switch prng.IntN(3) {
		case 0:
			got := s.Insert(x)
			want := ref.CheckedAdd(x)
			require.Equalf(t, want, got, "op %d: Insert(%d)", i, x)
			if got {
				count++
			}
		case 1:
			got := s.Remove(x)
			want := ref.CheckedRemove(x)
			require.Equalf(t, want, got, "op %d: Remove(%d)", i, x)
			if got {
				count--
			}
		case 2:
			got := s.Contains(x)
			want := ref.Contains(x)
			require.Equalf(t, want, got, "op %d: Contains(%d)", i, x)
		}
		require.EqualValuesf(t, ref.GetCardinality(), count, "op %d: cardinality counter diverged", i)
	}

	require.EqualValues(t, ref.GetCardinality(), cardinality(s), "final full walk should match roaring's cardinality")
}

// cardinality counts members by walking All, exercising the iterator
// against the same buffer the rest of the test hammers on.
func cardinality(s *Set) int {
	n := 0
	for range s.All() {
		n++
	}
	return n
}

// TestPropertySuccessorPredecessorAgainstBruteForce checks successor and
// predecessor queries, including fixed points and extrema, against a
// brute-force scan over a small universe, where "the smallest member >= x"
// can be computed by definition rather than by another clever structure.
func TestPropertySuccessorPredecessorAgainstBruteForce(t *testing.T) {
	const bits = 10
	const universe = 1 << bits

	s := NewBits(bits)
	present := make([]bool, universe)

	prng := rand.New(rand.NewPCG(7, 99))
	for i := 0; i < 2000; i++ {
		x := uint32(prng.IntN(universe))
		if prng.IntN(2) == 0 {
			s.Insert(x)
			present[x] = true
		} else {
			s.Remove(x)
			present[x] = false
		}
	}

	bruteNext := func(x uint32) (uint32, bool) {
		for y := int(x); y < universe; y++ {
			if present[y] {
				return uint32(y), true
			}
		}
		return 0, false
	}
	brutePrev := func(x uint32) (uint32, bool) {
		for y := int(x); y >= 0; y-- {
			if present[y] {
				return uint32(y), true
			}
		}
		return 0, false
	}

	for x := uint32(0); x < universe; x++ {
		wantNext, wantNextOK := bruteNext(x)
		gotNext, gotNextOK := s.Next(x)
		require.Equalf(t, wantNextOK, gotNextOK, "Next(%d) ok mismatch", x)
		if wantNextOK {
			require.Equalf(t, wantNext, gotNext, "Next(%d)", x)
		}

		wantPrev, wantPrevOK := brutePrev(x)
		gotPrev, gotPrevOK := s.Prev(x)
		require.Equalf(t, wantPrevOK, gotPrevOK, "Prev(%d) ok mismatch", x)
		if wantPrevOK {
			require.Equalf(t, wantPrev, gotPrev, "Prev(%d)", x)
		}

		if present[x] {
			// A present member is a fixed point of both Next and Prev.
			require.Equal(t, x, gotNext)
			require.Equal(t, x, gotPrev)
		}
	}

	// The minimum agrees with Next(0), and the maximum with Prev(top).
	min, minOK := s.Min()
	next0, next0OK := s.Next(0)
	require.Equal(t, minOK, next0OK)
	if minOK {
		require.Equal(t, min, next0)
	}

	max, maxOK := s.Max()
	prevTop, prevTopOK := s.Prev(universe - 1)
	require.Equal(t, maxOK, prevTopOK)
	if maxOK {
		require.Equal(t, max, prevTop)
	}
}

// TestPropertyInsertRemoveAcrossAllWidths runs the same short sequence over
// every kind of node (leaf, small, recursive) so a regression in one
// representation can't hide behind coverage of the others.
func TestPropertyInsertRemoveAcrossAllWidths(t *testing.T) {
	for _, bits := range []int{1, 4, 6, 7, 12, 13, 20, 28} {
		s := NewBits(bits)
		top := uint32(s.Capacity() - 1)
		keys := []uint32{0, top}
		if top > 4 {
			keys = append(keys, 1, top/2, top-1)
		}
		for _, x := range keys {
			require.Truef(t, s.Insert(x), "bits=%d Insert(%d)", bits, x)
			require.Falsef(t, s.Insert(x), "bits=%d duplicate Insert(%d)", bits, x)
			require.Truef(t, s.Contains(x), "bits=%d Contains(%d)", bits, x)
		}
		for _, x := range keys {
			require.Truef(t, s.Remove(x), "bits=%d Remove(%d)", bits, x)
			require.Falsef(t, s.Contains(x), "bits=%d Contains(%d) after remove", bits, x)
		}
		require.Truef(t, s.IsEmpty(), "bits=%d should be empty after removing every inserted key", bits)
	}
}

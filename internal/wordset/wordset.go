// Package wordset implements the machine-word bit tricks that back the
// leaf and small-universe nodes of a vEB tree: presence test, insert,
// delete, and the successor/predecessor scans, all expressed as a handful
// of shifts, masks and math/bits calls over a single uint64.
//
// Studied [github.com/bits-and-blooms/bitset] and gaissmai/bart's own
// internal/bitset (itself "a simplified and stripped down version" of the
// same library) and rewrote what's needed from scratch: every node in a
// vEB tree is a view into a caller-owned buffer, never an owner of its own
// slice, so none of the growable-bitset machinery applies here.
package wordset

import "math/bits"

// None is returned as the second value of Next/Prev/Min/Max when no
// qualifying bit is set.
const None = false

// Test reports whether bit i of w is set.
func Test(w uint64, i uint) bool {
	return w&(1<<i) != 0
}

// Set returns w with bit i set, and whether the bit was previously clear.
func Set(w uint64, i uint) (uint64, bool) {
	mask := uint64(1) << i
	return w | mask, w&mask == 0
}

// Clear returns w with bit i cleared, and whether the bit was previously set.
func Clear(w uint64, i uint) (uint64, bool) {
	mask := uint64(1) << i
	return w &^ mask, w&mask != 0
}

// Next returns the smallest set bit of w that is >= i, the same way
// gaissmai/bart's BitSet256.NextSet scans forward a word at a time, just
// specialized down to the single-word case.
func Next(w uint64, i uint) (uint, bool) {
	masked := w &^ (uint64(1)<<i - 1)
	if masked == 0 {
		return 0, false
	}
	return uint(bits.TrailingZeros64(masked)), true
}

// Prev returns the largest set bit of w that is <= i.
//
// The (2<<i)-1 mask relies on unsigned wraparound when i == 63: 2<<63
// overflows to 0, and 0-1 wraps to all ones, which is exactly the mask
// that keeps every bit including bit 63.
func Prev(w uint64, i uint) (uint, bool) {
	masked := w & (uint64(2)<<i - 1)
	if masked == 0 {
		return 0, false
	}
	return 63 - uint(bits.LeadingZeros64(masked)), true
}

// Min returns the smallest set bit of w.
func Min(w uint64) (uint, bool) {
	if w == 0 {
		return 0, false
	}
	return uint(bits.TrailingZeros64(w)), true
}

// Max returns the largest set bit of w.
func Max(w uint64) (uint, bool) {
	if w == 0 {
		return 0, false
	}
	return 63 - uint(bits.LeadingZeros64(w)), true
}

// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package veb implements a van Emde Boas tree: a set of integers drawn from
// a bounded universe [0, 2^B), B in [1, 32], supporting membership,
// insertion, deletion, successor and predecessor queries in O(log B) time.
//
// Unlike a textbook vEB tree, the whole structure — root, summary, and
// every cluster, recursively down to the machine-word leaves — lives in
// one []uint64 buffer computed once at construction by the layout planner
// in layout.go. There are no node pointers, and no query or update
// allocates after NewBits or NewCapacity returns; recursion is offset arithmetic over a
// shared, precomputed plan (a *level), not a walk over heap objects.
//
// Construct a Set with NewBits for an exact bit-width, or NewCapacity to
// round a desired size up to the smallest built-in width that covers it.
package veb

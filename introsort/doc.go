// Package introsort provides an in-place introspective sort driven by a
// caller-supplied strict less-than predicate.
//
// # Algorithm
//
// Introsort combines:
//   - Quicksort partitioning with a median-of-three pivot
//   - A recursion depth budget of 2*floor(log2(n)); ranges that exhaust it
//     are finished by insertion sort
//   - A final insertion sort pass over the whole slice, which is cheap
//     because partitioning leaves every element within 16 positions of
//     its final place
//
// The sort recurses on the smaller partition and loops on the larger one,
// so stack depth stays O(log n). It is not stable.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-radixsort/introsort"
//
//	introsort.Sort(values)
//	introsort.SortBy(records, func(a, b Record) bool { return a.Key < b.Key })
package introsort

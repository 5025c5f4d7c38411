// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package introsort

import (
	"cmp"
	"math/bits"
)

// threshold is the range length at or below which partitioning stops and
// the range is left for insertion sort.
const threshold = 16

// Sort sorts data in ascending natural order. Floating-point NaNs are
// ordered before all other values.
func Sort[T cmp.Ordered](data []T) {
	SortBy(data, cmp.Less[T])
}

// SortBy sorts data in place so that less never reports a later element as
// smaller than an earlier one. less must be a strict weak ordering.
func SortBy[T any](data []T, less func(a, b T) bool) {
	n := len(data)
	if n < 2 {
		return
	}
	introLoop(data, 0, n, depthBudget(n), less)
	insertionSort(data, 0, n, less)
}

// IsSortedBy reports whether data is ordered under less.
func IsSortedBy[T any](data []T, less func(a, b T) bool) bool {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// depthBudget returns 2 * floor(log2(n)).
func depthBudget(n int) int {
	return 2 * (bits.Len(uint(n)) - 1)
}

// introLoop partitions data[lo:hi] until every range is at most threshold
// long. Each split costs one unit of depth on both sides.
func introLoop[T any](data []T, lo, hi, depth int, less func(a, b T) bool) {
	for hi-lo > threshold {
		if depth == 0 {
			insertionSort(data, lo, hi, less)
			return
		}
		depth--

		cut := partitionPivot(data, lo, hi, less)
		if cut-lo < hi-cut {
			introLoop(data, lo, cut, depth, less)
			lo = cut
		} else {
			introLoop(data, cut, hi, depth, less)
			hi = cut
		}
	}
}

// partitionPivot moves the median of the first, middle and last elements
// to the front and partitions the rest around it. It returns cut with
// data[lo:cut] <= pivot <= data[cut:hi] and lo < cut < hi.
func partitionPivot[T any](data []T, lo, hi int, less func(a, b T) bool) int {
	m := median3(data, lo, lo+(hi-lo)/2, hi-1, less)
	data[lo], data[m] = data[m], data[lo]
	return partition(data, lo, hi, less)
}

// partition is a Hoare two-pointer scan of data[lo+1:hi] around data[lo].
// The pivot stays at lo, where it stops the right-hand scan.
func partition[T any](data []T, lo, hi int, less func(a, b T) bool) int {
	pivot := data[lo]
	first, last := lo+1, hi
	for {
		for first < hi-1 && less(data[first], pivot) {
			first++
		}
		last--
		for last > lo && less(pivot, data[last]) {
			last--
		}
		if first >= last {
			return first
		}
		data[first], data[last] = data[last], data[first]
		first++
	}
}

// median3 returns whichever of a, b, c indexes the median value.
func median3[T any](data []T, a, b, c int, less func(a, b T) bool) int {
	if less(data[a], data[b]) {
		if less(data[b], data[c]) {
			return b
		}
		if less(data[a], data[c]) {
			return c
		}
		return a
	}
	if less(data[a], data[c]) {
		return a
	}
	if less(data[b], data[c]) {
		return c
	}
	return b
}

// insertionSort sorts data[lo:hi].
func insertionSort[T any](data []T, lo, hi int, less func(a, b T) bool) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && less(data[j], data[j-1]); j-- {
			data[j], data[j-1] = data[j-1], data[j]
		}
	}
}

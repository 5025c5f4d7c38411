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

package radix

// histogram is a flat digits x buckets table. Row d holds the counts for
// digit position d and is later rewritten in place into write cursors.
type histogram struct {
	cells     []int
	sums      []int
	buckets   int
	digits    int
	radixBits uint
	mask      uint64
}

func newHistogram(radixBits, digits int) *histogram {
	buckets := 1 << radixBits
	return &histogram{
		cells:     make([]int, digits*buckets),
		sums:      make([]int, digits),
		buckets:   buckets,
		digits:    digits,
		radixBits: uint(radixBits),
		mask:      uint64(buckets - 1),
	}
}

// row returns the cursors for digit position d.
func (h *histogram) row(d int) []int {
	return h.cells[d*h.buckets : (d+1)*h.buckets]
}

// add counts every digit of one key. All rows are filled by the same
// traversal, so the input is read once no matter how many passes follow.
func (h *histogram) add(key uint64) {
	shift := uint(0)
	base := 0
	for d := 0; d < h.digits; d++ {
		h.cells[base+int((key>>shift)&h.mask)]++
		shift += h.radixBits
		base += h.buckets
	}
}

// prefixSum converts each row into an exclusive prefix sum: cell 0 becomes
// 0 and cell i the total of cells 0..i-1 of the same row. Rows never read
// each other; sums carries one running total per row.
func (h *histogram) prefixSum() {
	for d := 0; d < h.digits; d++ {
		base := d * h.buckets
		h.sums[d] = h.cells[base]
		h.cells[base] = 0
	}

	for i := 1; i < h.buckets; i++ {
		for d := 0; d < h.digits; d++ {
			idx := d*h.buckets + i
			total := h.cells[idx] + h.sums[d]
			h.cells[idx] = h.sums[d]
			h.sums[d] = total
		}
	}
}

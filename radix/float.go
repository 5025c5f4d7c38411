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

import "math"

// FloatFlip maps an IEEE-754 float32 bit pattern to an unsigned integer
// with the same ordering as the float value.
// Negative floats: flip all bits. Non-negative floats: flip the sign bit.
func FloatFlip(f uint32) uint32 {
	mask := uint32(-int32(f>>31)) | floatSignBit
	return f ^ mask
}

// InvFloatFlip is the exact inverse of FloatFlip.
// After flipping, a set sign bit marks an originally non-negative float.
func InvFloatFlip(f uint32) uint32 {
	mask := ((f >> 31) - 1) | floatSignBit
	return f ^ mask
}

// SortFloat32 sorts float32 keys in ascending numeric order, with -0 placed
// before +0, moving vals in lock-step. Buffers and the returned pass count
// behave as in Sort.
//
// The first scatter pass writes flipped bit patterns, the last one restores
// the original patterns, and any passes in between move flipped patterns as
// plain integers. The scratch buffer therefore holds non-float bit patterns
// while the sort runs.
//
// SortFloat32 panics if the buffers differ in length, radixBits is outside
// [1, MaxRadixBits], or radixBits yields a single pass.
func SortFloat32[V any](radixBits int, keys, keysTmp []float32, vals, valsTmp []V, opts ...Option) int {
	checkBuffers(len(keys), len(keysTmp), len(vals), len(valsTmp))
	passes := checkRadix(radixBits, floatKeyBits, true)
	if len(keys) == 0 {
		return passes
	}
	cfg := newConfig(opts)

	h := newHistogram(radixBits, passes)
	for _, k := range keys {
		h.add(uint64(FloatFlip(math.Float32bits(k))))
	}
	h.prefixSum()

	mask := uint32(h.mask)
	last := passes - 1

	// Pass 0 always reads the primary buffer and writes the scratch buffer.
	scatterFlip(keys, keysTmp, vals, valsTmp, h.row(0), mask, cfg.scatter)

	shift := uint(radixBits)
	for p := 1; p < last; p++ {
		if p&1 == 0 {
			scatterBits(keys, keysTmp, vals, valsTmp, h.row(p), shift, mask, cfg.scatter)
		} else {
			scatterBits(keysTmp, keys, valsTmp, vals, h.row(p), shift, mask, cfg.scatter)
		}
		shift += uint(radixBits)
	}

	if last&1 == 0 {
		scatterUnflip(keys, keysTmp, vals, valsTmp, h.row(last), shift, mask, cfg.scatter)
	} else {
		scatterUnflip(keysTmp, keys, valsTmp, vals, h.row(last), shift, mask, cfg.scatter)
	}
	return passes
}

// scatterFlip is the first float pass: it buckets on the lowest digit of
// the flipped pattern and stores the flipped pattern.
func scatterFlip[V any](src, dst []float32, vsrc, vdst []V, cursors []int, mask uint32, mode Scatter) {
	for i, k := range src {
		bits := FloatFlip(math.Float32bits(k))
		digit := bits & mask
		j := cursors[digit]
		cursors[digit]++
		dst[j] = math.Float32frombits(bits)
		movePayload(vsrc, vdst, i, j, mode)
	}
}

// scatterBits moves already-flipped patterns like an integer pass.
func scatterBits[V any](src, dst []float32, vsrc, vdst []V, cursors []int, shift uint, mask uint32, mode Scatter) {
	for i, k := range src {
		digit := (math.Float32bits(k) >> shift) & mask
		j := cursors[digit]
		cursors[digit]++
		dst[j] = k
		movePayload(vsrc, vdst, i, j, mode)
	}
}

// scatterUnflip is the last float pass: it buckets on the flipped pattern
// and stores the original float bits.
func scatterUnflip[V any](src, dst []float32, vsrc, vdst []V, cursors []int, shift uint, mask uint32, mode Scatter) {
	for i, k := range src {
		bits := math.Float32bits(k)
		digit := (bits >> shift) & mask
		j := cursors[digit]
		cursors[digit]++
		dst[j] = math.Float32frombits(InvFloatFlip(bits))
		movePayload(vsrc, vdst, i, j, mode)
	}
}

func movePayload[V any](vsrc, vdst []V, i, j int, mode Scatter) {
	if mode == ScatterSwap {
		vdst[j], vsrc[i] = vsrc[i], vdst[j]
		return
	}
	vdst[j] = vsrc[i]
}

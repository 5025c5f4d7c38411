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

import "fmt"

// Sort sorts keys in ascending order with an LSD radix sort using
// radixBits-wide digits, moving vals in lock-step so vals[i] stays paired
// with keys[i].
//
// keysTmp and valsTmp are scratch buffers of the same length. Each pass
// scatters from one buffer into the other, starting primary to scratch.
// The returned pass count selects where the result is: even means keys and
// vals, odd means keysTmp and valsTmp (see Result).
//
// Equal keys keep their original relative order.
//
// Sort panics if the buffers differ in length or radixBits is outside
// [1, min(key width, MaxRadixBits)].
func Sort[K Unsigned, V any](radixBits int, keys, keysTmp []K, vals, valsTmp []V, opts ...Option) int {
	checkBuffers(len(keys), len(keysTmp), len(vals), len(valsTmp))
	passes := checkRadix(radixBits, keyBits[K](), false)
	if len(keys) == 0 {
		return passes
	}
	cfg := newConfig(opts)

	h := newHistogram(radixBits, passes)
	for _, k := range keys {
		h.add(uint64(k))
	}
	h.prefixSum()

	mask := K(h.mask)
	shift := uint(0)
	for p := 0; p < passes; p++ {
		if p&1 == 0 {
			scatterPass(keys, keysTmp, vals, valsTmp, h.row(p), shift, mask, cfg.scatter)
		} else {
			scatterPass(keysTmp, keys, valsTmp, vals, h.row(p), shift, mask, cfg.scatter)
		}
		shift += uint(radixBits)
	}
	return passes
}

// scatterPass moves every (key, payload) pair from src to dst at the
// cursor of its digit, post-incrementing the cursor.
func scatterPass[K Unsigned, V any](src, dst []K, vsrc, vdst []V, cursors []int, shift uint, mask K, mode Scatter) {
	if mode == ScatterSwap {
		for i, k := range src {
			digit := (k >> shift) & mask
			j := cursors[digit]
			cursors[digit]++
			dst[j] = k
			vdst[j], vsrc[i] = vsrc[i], vdst[j]
		}
		return
	}

	for i, k := range src {
		digit := (k >> shift) & mask
		j := cursors[digit]
		cursors[digit]++
		dst[j] = k
		vdst[j] = vsrc[i]
	}
}

// Result returns the buffer pair holding the sorted data after a sort that
// reported passes scatter passes.
func Result[K, V any](passes int, keys, keysTmp []K, vals, valsTmp []V) ([]K, []V) {
	if passes&1 == 0 {
		return keys, vals
	}
	return keysTmp, valsTmp
}

func checkBuffers(keys, keysTmp, vals, valsTmp int) {
	if keys != keysTmp || keys != vals || keys != valsTmp {
		panic(fmt.Sprintf("radix: buffer length mismatch: keys=%d keysTmp=%d vals=%d valsTmp=%d",
			keys, keysTmp, vals, valsTmp))
	}
}

// checkRadix validates the digit width and returns the pass count.
func checkRadix(radixBits, keyBits int, float bool) int {
	if radixBits < 1 || radixBits > keyBits {
		panic(fmt.Sprintf("radix: radix width %d out of range for %d-bit keys", radixBits, keyBits))
	}
	passes := Passes(radixBits, keyBits)
	if float && passes < 2 {
		panic(fmt.Sprintf("radix: float keys need at least 2 passes, radix width %d gives %d", radixBits, passes))
	}
	if radixBits > MaxRadixBits {
		panic(fmt.Sprintf("radix: radix width %d exceeds maximum %d", radixBits, MaxRadixBits))
	}
	return passes
}

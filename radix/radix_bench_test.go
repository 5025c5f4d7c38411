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

import (
	"fmt"
	"slices"
	"testing"

	"github.com/ajroetker/go-radixsort/internal/testutil"
)

var benchSizes = []int{64, 1024, 16384, 65536, 1 << 20}

func BenchmarkSortUint32(b *testing.B) {
	for _, n := range benchSizes {
		ref := testutil.RandomUint32(testutil.NewRand(1), n)
		for _, bits := range []int{8, 11} {
			b.Run(fmt.Sprintf("radix%d/%d", bits, n), func(b *testing.B) {
				benchmarkSort(b, bits, ref)
			})
		}
		b.Run(fmt.Sprintf("stdlib/%d", n), func(b *testing.B) {
			benchmarkStdlib(b, ref)
		})
	}
}

func BenchmarkSortUint64(b *testing.B) {
	for _, n := range benchSizes {
		ref := testutil.RandomUint64(testutil.NewRand(2), n)
		for _, bits := range []int{8, 11} {
			b.Run(fmt.Sprintf("radix%d/%d", bits, n), func(b *testing.B) {
				benchmarkSort(b, bits, ref)
			})
		}
		b.Run(fmt.Sprintf("stdlib/%d", n), func(b *testing.B) {
			benchmarkStdlib(b, ref)
		})
	}
}

func BenchmarkSortFloat32(b *testing.B) {
	for _, n := range benchSizes {
		ref := testutil.RandomFloat32(testutil.NewRand(3), n)
		for _, bits := range []int{8, 11} {
			b.Run(fmt.Sprintf("radix%d/%d", bits, n), func(b *testing.B) {
				keys := make([]float32, n)
				keysTmp := make([]float32, n)
				vals := make([]uint32, n)
				valsTmp := make([]uint32, n)
				b.SetBytes(int64(n * 8))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					copy(keys, ref)
					SortFloat32(bits, keys, keysTmp, vals, valsTmp)
				}
			})
		}
		b.Run(fmt.Sprintf("stdlib/%d", n), func(b *testing.B) {
			benchmarkStdlib(b, ref)
		})
	}
}

func BenchmarkScatterSwap(b *testing.B) {
	const n = 65536
	ref := testutil.RandomUint32(testutil.NewRand(4), n)
	payload := make([][]byte, n)
	for i := range payload {
		payload[i] = make([]byte, 16)
	}
	for _, mode := range []Scatter{ScatterCopy, ScatterSwap} {
		b.Run(mode.String(), func(b *testing.B) {
			keys := make([]uint32, n)
			keysTmp := make([]uint32, n)
			vals := make([][]byte, n)
			valsTmp := make([][]byte, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(keys, ref)
				copy(vals, payload)
				Sort11Uint32(keys, keysTmp, vals, valsTmp, WithScatter(mode))
			}
		})
	}
}

func benchmarkSort[K Unsigned](b *testing.B, bits int, ref []K) {
	n := len(ref)
	keys := make([]K, n)
	keysTmp := make([]K, n)
	vals := make([]uint32, n)
	valsTmp := make([]uint32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(keys, ref)
		Sort(bits, keys, keysTmp, vals, valsTmp)
	}
}

func benchmarkStdlib[K uint32 | uint64 | float32](b *testing.B, ref []K) {
	data := make([]K, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

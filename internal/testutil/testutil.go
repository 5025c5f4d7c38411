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

// Package testutil generates key sets and verifies sorted output for the
// radix and introsort packages, their benchmarks and the perf driver.
package testutil

import (
	"cmp"
	"math"
	"math/rand/v2"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/pkg/errors"
)

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// RandomUint32 returns n uniformly distributed uint32 keys.
func RandomUint32(rng *rand.Rand, n int) []uint32 {
	keys := make([]uint32, n)
	for i := range keys {
		keys[i] = rng.Uint32()
	}
	return keys
}

// RandomUint64 returns n uniformly distributed uint64 keys.
func RandomUint64(rng *rand.Rand, n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = rng.Uint64()
	}
	return keys
}

// RandomFloat32 returns n float32 keys spread over both signs: a random
// non-negative 31-bit integer divided by 2048, negated half of the time.
func RandomFloat32(rng *rand.Rand, n int) []float32 {
	keys := make([]float32, n)
	for i := range keys {
		f := float32(rng.Int32()) / 2048.0
		if rng.Uint32()&1 == 1 {
			f = -f
		}
		keys[i] = f
	}
	return keys
}

// Indices returns the payload 0, 1, ..., n-1.
func Indices(n int) []uint32 {
	vals := make([]uint32, n)
	for i := range vals {
		vals[i] = uint32(i)
	}
	return vals
}

// CheckSorted verifies a sorted (keys, vals) pair against the original keys:
// keys are non-decreasing, vals is a permutation of 0..n-1, and every
// vals[i] points at an original key equal to keys[i].
func CheckSorted[K cmp.Ordered](keys []K, vals []uint32, orig []K) error {
	return CheckSortedFunc(keys, vals, orig, cmp.Less[K], func(a, b K) bool { return a == b })
}

// CheckSortedFloat32 is CheckSorted for float32 keys. Pairing compares bit
// patterns so -0 and +0 are not confused.
func CheckSortedFloat32(keys []float32, vals []uint32, orig []float32) error {
	return CheckSortedFunc(keys, vals, orig,
		func(a, b float32) bool { return a < b },
		func(a, b float32) bool { return math.Float32bits(a) == math.Float32bits(b) })
}

// CheckSortedFunc is CheckSorted with caller-supplied ordering and equality.
func CheckSortedFunc[K any](keys []K, vals []uint32, orig []K, less, same func(a, b K) bool) error {
	n := len(orig)
	if len(keys) != n || len(vals) != n {
		return errors.Errorf("length mismatch: keys=%d vals=%d orig=%d", len(keys), len(vals), n)
	}

	if err := CheckPermutation(vals); err != nil {
		return errors.Wrap(err, "payload is not a permutation")
	}

	for i := 0; i < n; i++ {
		if i > 0 && less(keys[i], keys[i-1]) {
			return errors.Errorf("key sort error at index %d: %v < %v", i, keys[i], keys[i-1])
		}
		if !same(keys[i], orig[vals[i]]) {
			return errors.Errorf("value error at index %d: key %v, original[%d] = %v",
				i, keys[i], vals[i], orig[vals[i]])
		}
	}
	return nil
}

// CheckPermutation verifies that vals holds every index in [0, len(vals))
// exactly once.
func CheckPermutation(vals []uint32) error {
	n := uint64(len(vals))
	seen := roaring.New()
	for i, v := range vals {
		if uint64(v) >= n {
			return errors.Errorf("index %d out of range at position %d", v, i)
		}
		if !seen.CheckedAdd(v) {
			return errors.Errorf("index %d repeated at position %d", v, i)
		}
	}
	if seen.GetCardinality() != n {
		return errors.Errorf("expected %d distinct indices, got %d", n, seen.GetCardinality())
	}
	return nil
}

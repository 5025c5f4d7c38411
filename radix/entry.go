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

// Fixed-width entry points. The 8-bit variants trade more passes for
// 256-entry histogram rows; the 11-bit variants need fewer passes over
// 2048-entry rows.
//
//	key      radix8  radix11
//	uint32   4       3
//	uint64   8       6
//	float32  4       3

// Sort8Uint32 sorts uint32 keys with 8-bit digits. It always returns 4.
func Sort8Uint32[V any](keys, keysTmp []uint32, vals, valsTmp []V, opts ...Option) int {
	return Sort(8, keys, keysTmp, vals, valsTmp, opts...)
}

// Sort11Uint32 sorts uint32 keys with 11-bit digits. It always returns 3.
func Sort11Uint32[V any](keys, keysTmp []uint32, vals, valsTmp []V, opts ...Option) int {
	return Sort(11, keys, keysTmp, vals, valsTmp, opts...)
}

// Sort8Uint64 sorts uint64 keys with 8-bit digits. It always returns 8.
func Sort8Uint64[V any](keys, keysTmp []uint64, vals, valsTmp []V, opts ...Option) int {
	return Sort(8, keys, keysTmp, vals, valsTmp, opts...)
}

// Sort11Uint64 sorts uint64 keys with 11-bit digits. It always returns 6.
func Sort11Uint64[V any](keys, keysTmp []uint64, vals, valsTmp []V, opts ...Option) int {
	return Sort(11, keys, keysTmp, vals, valsTmp, opts...)
}

// Sort8Float32 sorts float32 keys with 8-bit digits. It always returns 4.
func Sort8Float32[V any](keys, keysTmp []float32, vals, valsTmp []V, opts ...Option) int {
	return SortFloat32(8, keys, keysTmp, vals, valsTmp, opts...)
}

// Sort11Float32 sorts float32 keys with 11-bit digits. It always returns 3.
func Sort11Float32[V any](keys, keysTmp []float32, vals, valsTmp []V, opts ...Option) int {
	return SortFloat32(11, keys, keysTmp, vals, valsTmp, opts...)
}

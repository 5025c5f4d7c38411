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

// Unsigned is the set of fixed-width key types the engine buckets on.
type Unsigned interface {
	~uint32 | ~uint64
}

// =============================================================================
// Constants for radix sort
// =============================================================================

const (
	// MaxRadixBits is the widest digit the engine accepts. A 16-bit digit
	// already needs 65536 cursors per pass.
	MaxRadixBits = 16

	// floatKeyBits is the width of a float32 key.
	floatKeyBits = 32

	// floatSignBit selects the IEEE-754 sign of a float32 bit pattern.
	floatSignBit uint32 = 0x80000000
)

// keyBits returns the bit width of K.
func keyBits[K Unsigned]() int {
	var zero K
	if uint64(^zero) > 0xFFFFFFFF {
		return 64
	}
	return 32
}

// Passes returns the number of scatter passes needed to sort keyBits-wide
// keys with radixBits-wide digits, i.e. ceil(keyBits / radixBits).
func Passes(radixBits, keyBits int) int {
	return 1 + (keyBits-1)/radixBits
}

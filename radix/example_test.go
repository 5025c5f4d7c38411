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

package radix_test

import (
	"fmt"

	"github.com/ajroetker/go-radixsort/radix"
)

func ExampleSort8Uint32() {
	keys := []uint32{5, 3, 5, 1, 9, 3, 0, 7}
	vals := []int{0, 1, 2, 3, 4, 5, 6, 7}
	keysTmp := make([]uint32, len(keys))
	valsTmp := make([]int, len(vals))

	passes := radix.Sort8Uint32(keys, keysTmp, vals, valsTmp)
	keys, vals = radix.Result(passes, keys, keysTmp, vals, valsTmp)

	fmt.Println(passes, keys, vals)
	// Output: 4 [0 1 3 3 5 5 7 9] [6 3 1 5 0 2 7 4]
}

func ExampleSort11Float32() {
	keys := []float32{-1.5, 2, 0.25, -3.25, 1}
	vals := []string{"a", "b", "c", "d", "e"}
	keysTmp := make([]float32, len(keys))
	valsTmp := make([]string, len(vals))

	passes := radix.Sort11Float32(keys, keysTmp, vals, valsTmp)
	keys, vals = radix.Result(passes, keys, keysTmp, vals, valsTmp)

	fmt.Println(passes, keys, vals)
	// Output: 3 [-3.25 -1.5 0.25 1 2] [d a c e b]
}

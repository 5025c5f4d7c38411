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

package introsort_test

import (
	"fmt"

	"github.com/ajroetker/go-radixsort/introsort"
)

func ExampleSortBy() {
	type entry struct {
		key  uint32
		name string
	}
	entries := []entry{{3, "c"}, {1, "a"}, {2, "b"}}

	introsort.SortBy(entries, func(a, b entry) bool { return a.key < b.key })
	fmt.Println(entries)
	// Output: [{1 a} {2 b} {3 c}]
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramCounts(t *testing.T) {
	h := newHistogram(4, 2)
	for _, k := range []uint64{0x00, 0x01, 0x11, 0x21, 0xF1} {
		h.add(k)
	}

	low := h.row(0)
	high := h.row(1)
	assert.Equal(t, 1, low[0x0])
	assert.Equal(t, 4, low[0x1])
	assert.Equal(t, 2, high[0x0])
	assert.Equal(t, 1, high[0x1])
	assert.Equal(t, 1, high[0x2])
	assert.Equal(t, 1, high[0xF])
}

func TestHistogramPrefixSum(t *testing.T) {
	tests := []struct {
		name     string
		counts   []int
		expected []int
	}{
		{
			name:     "simple",
			counts:   []int{1, 2, 3, 4},
			expected: []int{0, 1, 3, 6},
		},
		{
			name:     "zeros",
			counts:   []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
		},
		{
			name:     "gaps",
			counts:   []int{0, 5, 0, 2},
			expected: []int{0, 0, 5, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHistogram(2, 1)
			copy(h.row(0), tt.counts)
			h.prefixSum()
			assert.Equal(t, tt.expected, h.row(0))
		})
	}
}

func TestHistogramRowsIndependent(t *testing.T) {
	h := newHistogram(2, 3)
	copy(h.row(0), []int{4, 0, 0, 0})
	copy(h.row(1), []int{1, 1, 1, 1})
	copy(h.row(2), []int{0, 0, 0, 4})
	h.prefixSum()

	assert.Equal(t, []int{0, 4, 4, 4}, h.row(0))
	assert.Equal(t, []int{0, 1, 2, 3}, h.row(1))
	assert.Equal(t, []int{0, 0, 0, 0}, h.row(2))
	assert.Equal(t, []int{4, 4, 4}, h.sums)
}

func TestKeyBits(t *testing.T) {
	type wide uint64
	assert.Equal(t, 32, keyBits[uint32]())
	assert.Equal(t, 64, keyBits[uint64]())
	assert.Equal(t, 64, keyBits[wide]())
}

func TestParseScatter(t *testing.T) {
	tests := []struct {
		in   string
		want Scatter
		ok   bool
	}{
		{"copy", ScatterCopy, true},
		{"SWAP", ScatterSwap, true},
		{" swap ", ScatterSwap, true},
		{"move", ScatterCopy, false},
		{"", ScatterCopy, false},
	}
	for _, tt := range tests {
		got, ok := ParseScatter(tt.in)
		assert.Equal(t, tt.want, got, "ParseScatter(%q)", tt.in)
		assert.Equal(t, tt.ok, ok, "ParseScatter(%q)", tt.in)
	}
}

func TestScatterFromEnv(t *testing.T) {
	t.Setenv("RADIXSORT_SCATTER", "swap")
	assert.Equal(t, ScatterSwap, scatterFromEnv())

	t.Setenv("RADIXSORT_SCATTER", "bogus")
	assert.Equal(t, ScatterCopy, scatterFromEnv())

	t.Setenv("RADIXSORT_SCATTER", "")
	assert.Equal(t, ScatterCopy, scatterFromEnv())
}

func TestNewConfig(t *testing.T) {
	saved := defaultScatter
	t.Cleanup(func() { defaultScatter = saved })

	defaultScatter = ScatterSwap
	require.Equal(t, ScatterSwap, newConfig(nil).scatter)
	require.Equal(t, ScatterCopy, newConfig([]Option{WithScatter(ScatterCopy)}).scatter)
	require.Equal(t, ScatterCopy, newConfig([]Option{WithScatter(Scatter(42))}).scatter)
	require.Equal(t, ScatterSwap, newConfig([]Option{nil}).scatter)
	assert.Equal(t, "swap", ScatterSwap.String())
	assert.Equal(t, "unknown", Scatter(42).String())
}

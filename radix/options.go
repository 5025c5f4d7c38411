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
	"os"
	"strings"
)

// Scatter selects how payload elements move between buffers during a pass.
type Scatter int

const (
	// ScatterCopy assigns the source payload into the destination slot.
	// Both buffers may reference the same payload value afterwards.
	ScatterCopy Scatter = iota

	// ScatterSwap exchanges the source and destination slots. Each payload
	// value ends up referenced from exactly one buffer, which avoids keeping
	// stale copies of pointer-bearing payloads alive in the scratch buffer.
	ScatterSwap
)

// String returns a human-readable name for the scatter mode.
func (s Scatter) String() string {
	switch s {
	case ScatterCopy:
		return "copy"
	case ScatterSwap:
		return "swap"
	default:
		return "unknown"
	}
}

// ParseScatter maps "copy" or "swap" (case-insensitive) to a Scatter.
func ParseScatter(name string) (Scatter, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "copy":
		return ScatterCopy, true
	case "swap":
		return ScatterSwap, true
	default:
		return ScatterCopy, false
	}
}

// defaultScatter is the mode used when no WithScatter option is given.
// Set by init() from RADIXSORT_SCATTER.
var defaultScatter Scatter

func init() {
	defaultScatter = scatterFromEnv()
}

// scatterFromEnv reads the RADIXSORT_SCATTER environment variable.
// Unset or unrecognised values select ScatterCopy.
func scatterFromEnv() Scatter {
	val := os.Getenv("RADIXSORT_SCATTER")
	if val == "" {
		return ScatterCopy
	}
	s, _ := ParseScatter(val)
	return s
}

// DefaultScatter returns the scatter mode used when no option overrides it.
func DefaultScatter() Scatter {
	return defaultScatter
}

// config holds per-call settings.
type config struct {
	scatter Scatter
}

// Option configures a single sort call.
type Option interface {
	apply(*config)
}

type scatterOption Scatter

func (o scatterOption) apply(c *config) {
	c.scatter = Scatter(o)
}

// WithScatter selects the payload scatter mode for one call.
// Unknown modes fall back to ScatterCopy.
func WithScatter(s Scatter) Option {
	if s != ScatterSwap {
		s = ScatterCopy
	}
	return scatterOption(s)
}

func newConfig(opts []Option) config {
	c := config{scatter: defaultScatter}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&c)
		}
	}
	return c
}

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

// Package cpuinfo describes the machine a benchmark runs on, so perf
// reports from different hosts can be told apart.
package cpuinfo

import (
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Level is the widest vector instruction set the CPU reports.
type Level int

const (
	// LevelScalar indicates no vector extension was detected.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 (x86-64 baseline).
	LevelSSE2

	// LevelAVX2 indicates AVX2 (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512F (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON (ASIMD, 128-bit).
	LevelNEON

	// LevelSVE indicates ARM SVE (scalable vector).
	LevelSVE
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Info is a snapshot of the host.
type Info struct {
	GOOS       string   `json:"goos"`
	GOARCH     string   `json:"goarch"`
	NumCPU     int      `json:"num_cpu"`
	GOMAXPROCS int      `json:"gomaxprocs"`
	Level      string   `json:"level"`
	Features   []string `json:"features"`
	CacheLine  int      `json:"cache_line"`
}

// Detect inspects the running CPU.
func Detect() Info {
	level, features := detect()
	return Info{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Level:      level.String(),
		Features:   features,
		CacheLine:  int(unsafe.Sizeof(cpu.CacheLinePad{})),
	}
}

// String formats the snapshot as a single report line.
func (i Info) String() string {
	features := "none"
	if len(i.Features) > 0 {
		features = strings.Join(i.Features, ",")
	}
	return fmt.Sprintf("%s/%s cpus=%d procs=%d simd=%s cacheline=%d features=%s",
		i.GOOS, i.GOARCH, i.NumCPU, i.GOMAXPROCS, i.Level, i.CacheLine, features)
}

// flag pairs a feature name with its detection result.
type flag struct {
	name string
	has  bool
}

func present(flags []flag) []string {
	var names []string
	for _, f := range flags {
		if f.has {
			names = append(names, f.name)
		}
	}
	return names
}

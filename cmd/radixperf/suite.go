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

package main

import (
	"cmp"
	"context"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/ajroetker/go-radixsort/internal/testutil"
	"github.com/ajroetker/go-radixsort/introsort"
	"github.com/ajroetker/go-radixsort/radix"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// Algorithm names, in table column order.
const (
	algoRadix8    = "radix8"
	algoRadix11   = "radix11"
	algoIntrosort = "introsort"
	algoStdlib    = "stdlib"
)

var algorithms = []string{algoRadix8, algoRadix11, algoIntrosort, algoStdlib}

// Stat summarises the per-iteration wall time of one algorithm, in seconds.
type Stat struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

// Row holds the timings for one array size.
type Row struct {
	Size  int             `json:"size"`
	Stats map[string]Stat `json:"stats"`
}

// Suite holds all rows for one key type.
type Suite struct {
	Keys string `json:"keys"`
	Rows []Row  `json:"rows"`
}

// radixFunc is the shape shared by the fixed-width radix entry points.
type radixFunc[K any] func(keys, keysTmp []K, vals, valsTmp []uint32, opts ...radix.Option) int

// keyType bundles what the driver needs to benchmark one key type.
type keyType[K any] struct {
	name     string
	generate func(rng *rand.Rand, n int) []K
	radix8   radixFunc[K]
	radix11  radixFunc[K]
	less     func(a, b K) bool
	check    func(keys []K, vals []uint32, orig []K) error
}

var (
	uint32Keys = keyType[uint32]{
		name:     keysUint32,
		generate: testutil.RandomUint32,
		radix8:   radix.Sort8Uint32[uint32],
		radix11:  radix.Sort11Uint32[uint32],
		less:     cmp.Less[uint32],
		check:    testutil.CheckSorted[uint32],
	}
	uint64Keys = keyType[uint64]{
		name:     keysUint64,
		generate: testutil.RandomUint64,
		radix8:   radix.Sort8Uint64[uint32],
		radix11:  radix.Sort11Uint64[uint32],
		less:     cmp.Less[uint64],
		check:    testutil.CheckSorted[uint64],
	}
	float32Keys = keyType[float32]{
		name:     keysFloat32,
		generate: testutil.RandomFloat32,
		radix8:   radix.Sort8Float32[uint32],
		radix11:  radix.Sort11Float32[uint32],
		less:     cmp.Less[float32],
		check:    testutil.CheckSortedFloat32,
	}
)

// suiteRunner runs the benchmark for one key type.
type suiteRunner func(ctx context.Context, log *logrus.Entry, cfg Config, seed uint64) (Suite, error)

func runnerFor(name string) (suiteRunner, bool) {
	switch strings.TrimSpace(name) {
	case keysUint32:
		return uint32Keys.run, true
	case keysUint64:
		return uint64Keys.run, true
	case keysFloat32:
		return float32Keys.run, true
	default:
		return nil, false
	}
}

// runSuites runs every configured key type, concurrently when
// cfg.Parallel is set. Suites come back in cfg.Keys order.
func runSuites(ctx context.Context, log *logrus.Logger, cfg Config) ([]Suite, error) {
	runners := make([]suiteRunner, len(cfg.Keys))
	for i, name := range cfg.Keys {
		run, ok := runnerFor(name)
		if !ok {
			return nil, errors.Wrap(errUnknownKeyType, name)
		}

		runners[i] = run
	}

	suites := make([]Suite, len(cfg.Keys))

	g, ctx := errgroup.WithContext(ctx)
	if !cfg.Parallel {
		g.SetLimit(1)
	}

	for i, name := range cfg.Keys {
		run := runners[i]
		seed := cfg.Seed + uint64(i)
		entry := log.WithField("keys", strings.TrimSpace(name))

		g.Go(func() error {
			suite, err := run(ctx, entry, cfg, seed)
			if err != nil {
				return err
			}

			suites[i] = suite

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return suites, nil
}

func (kt keyType[K]) run(ctx context.Context, log *logrus.Entry, cfg Config, seed uint64) (Suite, error) {
	scatter, _ := radix.ParseScatter(cfg.Scatter)
	opts := []radix.Option{radix.WithScatter(scatter)}
	rng := testutil.NewRand(seed)

	suite := Suite{Keys: kt.name}

	for size := cfg.MinSize; size <= cfg.MaxSize; size *= 2 {
		err := ctx.Err()
		if err != nil {
			return Suite{}, errors.Wrapf(err, "%s size=%d", kt.name, size)
		}

		row, err := kt.measure(rng, size, cfg.Iterations, opts)
		if err != nil {
			return Suite{}, err
		}

		for _, algo := range algorithms {
			log.WithFields(logrus.Fields{
				"size": size,
				"algo": algo,
				"mean": row.Stats[algo].Mean,
			}).Debug("measured")
		}

		suite.Rows = append(suite.Rows, row)
	}

	log.WithField("rows", len(suite.Rows)).Info("suite done")

	return suite, nil
}

// pair is the (key, original index) element sorted by the comparison sorts.
type pair[K any] struct {
	key K
	idx uint32
}

// measure times every algorithm on iterations fresh random inputs of the
// given size and verifies each result against its input.
func (kt keyType[K]) measure(rng *rand.Rand, size, iterations int, opts []radix.Option) (Row, error) {
	samples := make(map[string][]float64, len(algorithms))
	for _, algo := range algorithms {
		samples[algo] = make([]float64, 0, iterations)
	}

	keys := make([]K, size)
	keysTmp := make([]K, size)
	vals := make([]uint32, size)
	valsTmp := make([]uint32, size)
	pairs := make([]pair[K], size)

	lessPair := func(a, b pair[K]) bool { return kt.less(a.key, b.key) }
	cmpPair := func(a, b pair[K]) int {
		switch {
		case kt.less(a.key, b.key):
			return -1
		case kt.less(b.key, a.key):
			return 1
		default:
			return 0
		}
	}

	for range iterations {
		orig := kt.generate(rng, size)

		for _, variant := range []struct {
			algo string
			sort radixFunc[K]
		}{
			{algoRadix8, kt.radix8},
			{algoRadix11, kt.radix11},
		} {
			copy(keys, orig)
			for i := range vals {
				vals[i] = uint32(i)
			}

			start := time.Now()
			passes := variant.sort(keys, keysTmp, vals, valsTmp, opts...)
			samples[variant.algo] = append(samples[variant.algo], time.Since(start).Seconds())

			sortedKeys, sortedVals := radix.Result(passes, keys, keysTmp, vals, valsTmp)

			err := kt.check(sortedKeys, sortedVals, orig)
			if err != nil {
				return Row{}, errors.Wrapf(errSortMismatch, "%s %s size=%d: %v", kt.name, variant.algo, size, err)
			}
		}

		for _, variant := range []struct {
			algo string
			sort func([]pair[K])
		}{
			{algoIntrosort, func(p []pair[K]) { introsort.SortBy(p, lessPair) }},
			{algoStdlib, func(p []pair[K]) { slices.SortFunc(p, cmpPair) }},
		} {
			for i, k := range orig {
				pairs[i] = pair[K]{key: k, idx: uint32(i)}
			}

			start := time.Now()
			variant.sort(pairs)
			samples[variant.algo] = append(samples[variant.algo], time.Since(start).Seconds())

			for i, p := range pairs {
				keys[i] = p.key
				vals[i] = p.idx
			}

			err := kt.check(keys, vals, orig)
			if err != nil {
				return Row{}, errors.Wrapf(errSortMismatch, "%s %s size=%d: %v", kt.name, variant.algo, size, err)
			}
		}
	}

	row := Row{Size: size, Stats: make(map[string]Stat, len(algorithms))}
	for _, algo := range algorithms {
		row.Stats[algo] = summarize(samples[algo])
	}

	return row, nil
}

// summarize returns the mean and sample standard deviation of xs.
// The deviation of fewer than two samples is reported as zero.
func summarize(xs []float64) Stat {
	if len(xs) == 0 {
		return Stat{}
	}

	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) < 2 || math.IsNaN(std) {
		std = 0
	}

	return Stat{Mean: mean, StdDev: std}
}

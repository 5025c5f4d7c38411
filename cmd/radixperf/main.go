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

// Command radixperf times the radix sorts against introsort and the
// standard library over doubling array sizes, verifying every result.
//
// Usage:
//
//	radixperf [flags]
//
// Example:
//
//	radixperf --keys uint32,float32 --max-size 1048576 --out report.json
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/ajroetker/go-radixsort/internal/cpuinfo"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	fs := pflag.NewFlagSet("radixperf", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	flagged := DefaultConfig()
	configPath, verbose := registerFlags(fs, &flagged)

	err := fs.Parse(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		log.WithError(err).Error("parse flags")

		return 2
	}

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := LoadConfig(*configPath, fs, flagged)
	if err != nil {
		log.WithError(err).Error("load config")

		return 2
	}

	if log.IsLevelEnabled(logrus.DebugLevel) {
		formatted, fmtErr := FormatConfig(cfg)
		if fmtErr == nil {
			log.Debugf("config:\n%s", formatted)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report := Report{
		Started:  time.Now().UTC(),
		Platform: cpuinfo.Detect(),
		Config:   cfg,
	}

	log.WithField("platform", report.Platform.String()).Info("starting")

	report.Suites, err = runSuites(ctx, log, cfg)
	if err != nil {
		log.WithError(err).Error("benchmark failed")

		return 1
	}

	err = printReport(stdout, report)
	if err != nil {
		log.WithError(err).Error("print report")

		return 1
	}

	if cfg.Out != "" {
		err = writeReport(cfg.Out, report)
		if err != nil {
			log.WithError(err).Error("save report")

			return 1
		}

		log.WithField("path", cfg.Out).Info("report written")
	}

	return 0
}

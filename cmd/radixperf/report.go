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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ajroetker/go-radixsort/internal/cpuinfo"
	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
)

// Report is everything one driver run measured.
type Report struct {
	Started  time.Time    `json:"started"`
	Platform cpuinfo.Info `json:"platform"`
	Config   Config       `json:"config"`
	Suites   []Suite      `json:"suites"`
}

// printReport writes one table per key type. Each cell is the mean
// seconds per sort.
func printReport(w io.Writer, r Report) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n", r.Platform)
	fmt.Fprintf(&buf, "# iterations=%d scatter=%s seed=%d\n", r.Config.Iterations, r.Config.Scatter, r.Config.Seed)

	for _, suite := range r.Suites {
		fmt.Fprintf(&buf, "\n## %s\n", suite.Keys)

		tw := tabwriter.NewWriter(&buf, 0, 8, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(tw, "size\t%s\t\n", strings.Join(algorithms, "\t"))

		for _, row := range suite.Rows {
			fmt.Fprintf(tw, "%d", row.Size)

			for _, algo := range algorithms {
				fmt.Fprintf(tw, "\t%.3e", row.Stats[algo].Mean)
			}

			fmt.Fprint(tw, "\t\n")
		}

		err := tw.Flush()
		if err != nil {
			return errors.Wrap(err, "format table")
		}
	}

	_, err := w.Write(buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "write table")
	}

	return nil
}

// writeReport stores r as indented JSON at path. The file is replaced
// atomically, so readers never see a partial report.
func writeReport(path string, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode report")
	}

	data = append(data, '\n')

	err = atomic.WriteFile(path, bytes.NewReader(data))
	if err != nil {
		return errors.Wrapf(err, "write report %s", path)
	}

	return nil
}

// Copyright 2026 The numdiff Authors
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

package numdiff

import (
	"io"

	"numdiff/internal/config"
)

// Diff is the whole-diff view of one file-pair comparison.
type Diff struct {
	// Hunks holds the retained hunks in original diff order. Before
	// classification it holds every parsed hunk.
	Hunks []*Hunk

	// Omitted is the number of raw lines belonging to hunks that were
	// resolved as tolerance-only by [Diff.Classify].
	Omitted int
}

// Lines returns the total number of raw lines over the retained hunks.
func (d *Diff) Lines() int {
	n := 0
	for _, h := range d.Hunks {
		n += h.Lines()
	}
	return n
}

// Clean reports whether the diff has no retained hunks, i.e. the two files
// match exactly or within tolerance.
func (d *Diff) Clean() bool {
	return len(d.Hunks) == 0
}

// Classify partitions the diff's hunks into retained and tolerance-resolved.
// Hunks for which [Hunk.ToleranceOnly] holds at epsilon are removed and
// their raw-line counts added to Omitted; the remaining hunks keep their
// original relative order. Lines are never created or lost: Lines() +
// Omitted is invariant across the call, and classifying twice with the same
// epsilon is a no-op.
func (d *Diff) Classify(epsilon float64) {
	retained := d.Hunks[:0]
	for _, h := range d.Hunks {
		if h.ToleranceOnly(epsilon) {
			d.Omitted += h.Lines()
			continue
		}
		retained = append(retained, h)
	}
	clear(d.Hunks[len(retained):])
	d.Hunks = retained
}

// Compare parses ed-style diff output from r and classifies the result.
//
// The following options are supported: [Epsilon], [Exact]. With [Exact],
// classification is skipped and every parsed hunk is retained.
func Compare(r io.Reader, opts ...Option) (*Diff, error) {
	cfg := config.FromOptions(opts, config.Epsilon|config.Exact)
	d, err := Parse(r)
	if err != nil {
		return d, err
	}
	if !cfg.Exact {
		d.Classify(cfg.Epsilon)
	}
	return d, nil
}

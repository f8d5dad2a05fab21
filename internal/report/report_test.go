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

package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"numdiff"
	"numdiff/internal/report"
)

func TestFileIdenticalPrintsNothing(t *testing.T) {
	var b strings.Builder
	p := report.New(&b, "off")
	p.File("a.out", &numdiff.Diff{})
	require.Empty(t, b.String())
}

func TestFileWithinTolerance(t *testing.T) {
	var b strings.Builder
	p := report.New(&b, "off")
	p.File("a.out", &numdiff.Diff{Omitted: 3})
	require.Equal(t, "a.out: ok (3 lines within tolerance)\n", b.String())
}

func TestFileDiffers(t *testing.T) {
	var b strings.Builder
	p := report.New(&b, "off")
	d := &numdiff.Diff{
		Hunks: []*numdiff.Hunk{{
			Raw:     []string{"4c4", "< old", "> new"},
			Added:   []string{"new"},
			Deleted: []string{"old"},
		}},
		Omitted: 3,
	}
	p.File("a.out", d)

	out := b.String()
	require.Contains(t, out, "a.out: differs (1 hunks, 3 lines, 3 lines omitted by tolerance)")
	require.Contains(t, out, "4c4\n< old\n> new\n")
}

func TestMissing(t *testing.T) {
	var b strings.Builder
	p := report.New(&b, "off")
	p.Missing("gone.out", "baseline")
	require.Equal(t, "gone.out: missing (only in baseline)\n", b.String())
}

func TestSummary(t *testing.T) {
	var b strings.Builder
	p := report.New(&b, "off")

	require.True(t, p.Summary(4, 0, 0, 12))
	require.Equal(t, "ok: 4 file pairs compared, 12 lines omitted by tolerance\n", b.String())

	b.Reset()
	require.False(t, p.Summary(4, 2, 1, 0))
	require.Equal(t, "FAIL: 3 of 5 file pairs differ\n", b.String())
}

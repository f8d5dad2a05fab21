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

// Package report renders classified diffs for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"numdiff"
)

// Printer writes per-file verdicts and a run summary. It is not safe for
// concurrent use; callers serialize output per file.
type Printer struct {
	w io.Writer

	header  *color.Color
	deleted *color.Color
	added   *color.Color
	pass    *color.Color
	fail    *color.Color
}

// New returns a Printer writing to w. The colorMode values are those of the
// --color flag: "on", "off" or "auto" (colorize only when w is a terminal,
// which the color package detects itself).
func New(w io.Writer, colorMode string) *Printer {
	p := &Printer{
		w:       w,
		header:  color.New(color.FgCyan),
		deleted: color.New(color.FgRed),
		added:   color.New(color.FgGreen),
		pass:    color.New(color.FgGreen),
		fail:    color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.header, p.deleted, p.added, p.pass, p.fail} {
		switch colorMode {
		case "on":
			c.EnableColor()
		case "off":
			c.DisableColor()
		}
	}
	return p
}

// File reports the outcome for one file pair. Identical pairs print nothing
// unless verbose summaries are wanted; tolerance-resolved pairs note the
// omitted line count; real differences print every retained hunk.
func (p *Printer) File(rel string, d *numdiff.Diff) {
	switch {
	case d.Clean() && d.Omitted == 0:
		// Identical, nothing to report.
	case d.Clean():
		fmt.Fprintf(p.w, "%s: %s (%d lines within tolerance)\n", rel, p.pass.Sprint("ok"), d.Omitted)
	default:
		fmt.Fprintf(p.w, "%s: %s (%d hunks, %d lines", rel, p.fail.Sprint("differs"), len(d.Hunks), d.Lines())
		if d.Omitted > 0 {
			fmt.Fprintf(p.w, ", %d lines omitted by tolerance", d.Omitted)
		}
		fmt.Fprintln(p.w, ")")
		for _, h := range d.Hunks {
			p.hunk(h)
		}
	}
}

func (p *Printer) hunk(h *numdiff.Hunk) {
	for _, line := range h.Raw {
		switch {
		case strings.HasPrefix(line, "< "):
			fmt.Fprintln(p.w, p.deleted.Sprint(line))
		case strings.HasPrefix(line, "> "):
			fmt.Fprintln(p.w, p.added.Sprint(line))
		default:
			fmt.Fprintln(p.w, p.header.Sprint(line))
		}
	}
}

// Missing reports a file present on only one side of the comparison.
func (p *Printer) Missing(rel, side string) {
	fmt.Fprintf(p.w, "%s: %s (only in %s)\n", rel, p.fail.Sprint("missing"), side)
}

// Summary prints the final run summary and returns whether the run was
// clean.
func (p *Printer) Summary(pairs, differing, missing, omitted int) bool {
	clean := differing == 0 && missing == 0
	if clean {
		fmt.Fprintf(p.w, "%s: %d file pairs compared", p.pass.Sprint("ok"), pairs)
	} else {
		fmt.Fprintf(p.w, "%s: %d of %d file pairs differ", p.fail.Sprint("FAIL"), differing+missing, pairs+missing)
	}
	if omitted > 0 {
		fmt.Fprintf(p.w, ", %d lines omitted by tolerance", omitted)
	}
	fmt.Fprintln(p.w)
	return clean
}

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

package linediff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	markerAdded   = "> "
	markerDeleted = "< "
	separator     = "---"
)

// EdScript compares the lines of oldText and newText and returns the changes
// as a traditional ed-style diff script, the same format the system diff
// tool emits by default. Identical inputs produce an empty script.
func EdScript(oldText, newText string) string {
	dmp := diffmatchpatch.New()

	// Diff based on lines, then decode the rune-string back to original
	// lines using the lineArray mapping.
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(oldText, newText)
	diffs := dmp.DiffMainRunes(rOld, rNew, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	decode := func(s string) []string {
		if s == "" {
			return nil
		}
		out := make([]string, 0, len(s))
		for _, r := range s {
			idx := int(r)
			if idx >= 0 && idx < len(lineArray) {
				out = append(out, strings.TrimSuffix(lineArray[idx], "\n"))
			}
		}
		return out
	}

	var b strings.Builder
	var dels, ins []string
	oldLine, newLine := 0, 0 // lines fully consumed before the pending block

	flush := func() {
		if len(dels) == 0 && len(ins) == 0 {
			return
		}
		switch {
		case len(dels) > 0 && len(ins) > 0:
			fmt.Fprintf(&b, "%sc%s\n", lineRange(oldLine+1, oldLine+len(dels)), lineRange(newLine+1, newLine+len(ins)))
			writeLines(&b, markerDeleted, dels)
			b.WriteString(separator + "\n")
			writeLines(&b, markerAdded, ins)
		case len(dels) > 0:
			fmt.Fprintf(&b, "%sd%d\n", lineRange(oldLine+1, oldLine+len(dels)), newLine)
			writeLines(&b, markerDeleted, dels)
		default:
			fmt.Fprintf(&b, "%da%s\n", oldLine, lineRange(newLine+1, newLine+len(ins)))
			writeLines(&b, markerAdded, ins)
		}
		oldLine += len(dels)
		newLine += len(ins)
		dels, ins = nil, nil
	}

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			n := len(decode(d.Text))
			oldLine += n
			newLine += n
		case diffmatchpatch.DiffDelete:
			dels = append(dels, decode(d.Text)...)
		case diffmatchpatch.DiffInsert:
			ins = append(ins, decode(d.Text)...)
		}
	}
	flush()

	return b.String()
}

func lineRange(s, e int) string {
	if s == e {
		return fmt.Sprintf("%d", s)
	}
	return fmt.Sprintf("%d,%d", s, e)
}

func writeLines(b *strings.Builder, marker string, lines []string) {
	for _, l := range lines {
		b.WriteString(marker)
		b.WriteString(l)
		b.WriteByte('\n')
	}
}

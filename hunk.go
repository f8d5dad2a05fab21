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
	"errors"
	"fmt"
	"math"
	"strconv"

	"numdiff/internal/floatscan"
)

// Hunk describes one contiguous block of changes from a line diff.
type Hunk struct {
	// Raw holds every line of the hunk in original diff order, including the
	// range header. It is intended for display.
	Raw []string

	// Added holds the content of "> " lines (present only in the new file),
	// in order of appearance, with the marker stripped.
	Added []string

	// Deleted holds the content of "< " lines (present only in the old
	// file), in order of appearance, with the marker stripped.
	Deleted []string
}

// Lines returns the number of raw lines in the hunk.
func (h *Hunk) Lines() int {
	return len(h.Raw)
}

// ToleranceOnly reports whether the hunk's added and deleted lines differ
// only by floating-point rounding within epsilon.
//
// Added and deleted lines are paired positionally: the i-th added line is
// compared against the i-th deleted line. Reordered but otherwise identical
// lines are therefore treated as a real difference. A pair counts as
// precision noise when both lines contain digits, both contain the same
// number of embedded numeric literals, every corresponding pair of literals
// satisfies |a-b| < epsilon, and the text left over after removing the
// literals is identical. A hunk with no added and no deleted lines is
// vacuously tolerance-only.
func (h *Hunk) ToleranceOnly(epsilon float64) bool {
	if len(h.Added) != len(h.Deleted) {
		// Without a 1:1 correspondence there is no way to attribute the
		// difference to rounding.
		return false
	}
	for i := range h.Added {
		if !linesWithinTolerance(h.Added[i], h.Deleted[i], epsilon) {
			return false
		}
	}
	return true
}

func linesWithinTolerance(a, b string, epsilon float64) bool {
	if !floatscan.HasDigit(a) || !floatscan.HasDigit(b) {
		// A non-numeric line that differs at all is a real difference.
		return false
	}
	na := floatscan.Numbers(a)
	nb := floatscan.Numbers(b)
	if len(na) != len(nb) {
		return false
	}
	for i := range na {
		if math.Abs(parseNumber(na[i])-parseNumber(nb[i])) >= epsilon {
			return false
		}
	}
	return floatscan.Strip(a) == floatscan.Strip(b)
}

// parseNumber converts a literal matched by the floatscan grammar. A
// literal that overflows float64 comes back as ±Inf with ErrRange; that is
// well-formed data and the infinity compares meaningfully. Any other failure
// is a bug in the grammar, not a data problem.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(fmt.Sprintf("numdiff: number grammar matched unparseable literal %q: %v", s, err))
	}
	return v
}

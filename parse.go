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
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ErrMalformedInput reports diff input that violates the ed-script grammar:
// an added or deleted line arrived before any hunk header. Well-formed diff
// output always opens a hunk before listing its lines, so this signals
// unexpected input rather than an interesting diff.
var ErrMalformedInput = errors.New("malformed diff input")

// header matches an ed-style hunk range header: a line range, an optional
// command letter, and an optional second range, e.g. "4c4", "5,7c5,7",
// "3a4,5", "10d9". It is used purely as a hunk-boundary predicate; none of
// the header's fields are consumed.
var header = regexp.MustCompile(`^\d+(,\d+)?[a-z]?(\d+(,\d+)?)?$`)

const (
	markerAdded   = "> "
	markerDeleted = "< "
)

// Parse reads ed-style diff output from r and groups it into hunks.
//
// Parsing is a single streaming pass: a line matching the range-header
// grammar closes the current hunk and opens a new one; "> " and "< " lines
// attach to the current hunk; anything else before the first header (such as
// a banner some diff tools emit) is dropped. When the stream ends, or is
// terminated early by the producer, the open hunk is flushed so the result
// is always a consistent prefix of the full diff.
//
// An added or deleted line with no open hunk is a hard failure: Parse
// returns the diff assembled so far together with an error wrapping
// [ErrMalformedInput].
//
// Classification is not applied; see [Diff.Classify] and [Compare].
func Parse(r io.Reader) (*Diff, error) {
	d := &Diff{}
	var cur *Hunk

	flush := func() {
		if cur != nil {
			d.Hunks = append(d.Hunks, cur)
			cur = nil
		}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		line := sc.Text()
		n++
		if header.MatchString(line) {
			flush()
			cur = &Hunk{Raw: []string{line}}
			continue
		}
		switch {
		case strings.HasPrefix(line, markerAdded):
			if cur == nil {
				return d, fmt.Errorf("%w: added line %d before any hunk header: %q", ErrMalformedInput, n, line)
			}
			cur.Raw = append(cur.Raw, line)
			cur.Added = append(cur.Added, line[len(markerAdded):])
		case strings.HasPrefix(line, markerDeleted):
			if cur == nil {
				return d, fmt.Errorf("%w: deleted line %d before any hunk header: %q", ErrMalformedInput, n, line)
			}
			cur.Raw = append(cur.Raw, line)
			cur.Deleted = append(cur.Deleted, line[len(markerDeleted):])
		default:
			// Separator lines inside change hunks ("---") and pre-header
			// banners carry no structure.
		}
	}
	flush()
	if err := sc.Err(); err != nil {
		return d, fmt.Errorf("reading diff input: %w", err)
	}
	return d, nil
}

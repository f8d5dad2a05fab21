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

// Package floatscan locates floating-point literals embedded in text lines.
//
// All functions share a single grammar: an optional sign, digits with an
// optional fractional part (or a pure fractional part with a leading dot),
// and an optional exponent. A bare integer matches, too. Every match is
// guaranteed to be parseable by strconv.ParseFloat.
package floatscan

import (
	"regexp"
	"strings"
)

// number is the one grammar used for extraction and stripping. Keeping it a
// single pattern guarantees that Numbers and Strip always agree on what a
// number is.
var number = regexp.MustCompile(`[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`)

// HasDigit reports whether s contains at least one decimal digit. A line
// without a digit cannot contain a number under the grammar.
func HasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// Numbers returns all number literals in s in left-to-right order, or nil if
// there are none.
func Numbers(s string) []string {
	return number.FindAllString(s, -1)
}

// Strip returns s with every number literal removed. The residual text keeps
// all other characters verbatim, including whitespace and punctuation.
func Strip(s string) string {
	return number.ReplaceAllString(s, "")
}

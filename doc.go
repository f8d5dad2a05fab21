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

// Package numdiff compares regression output files while tolerating small
// floating-point precision differences.
//
// The package consumes the output of a traditional line diff in ed style
// (range headers such as "5,7c5,7" followed by "< " and "> " lines) and
// groups it into [Hunk] values. A hunk whose added and deleted lines differ
// only in the precision of embedded numbers, within a configurable epsilon,
// is considered noise and can be filtered out with [Diff.Classify].
//
// The main entry point is [Compare], which parses a diff stream and applies
// classification in one call:
//
//	d, err := numdiff.Compare(r, numdiff.Epsilon(1e-6))
//
// numdiff never runs a diff program itself; producing the diff stream is the
// caller's concern. The numdiff command in cmd/numdiff wires a producer, a
// directory walker and colored reporting around this package.
package numdiff

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
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Diff
	}{
		{
			name:  "empty",
			input: "",
			want:  &Diff{},
		},
		{
			name:  "single-change-hunk",
			input: "4c4\n< value = 3.14158\n---\n> value = 3.14159\n",
			want: &Diff{
				Hunks: []*Hunk{{
					Raw:     []string{"4c4", "< value = 3.14158", "> value = 3.14159"},
					Added:   []string{"value = 3.14159"},
					Deleted: []string{"value = 3.14158"},
				}},
			},
		},
		{
			name:  "add-only-hunk",
			input: "3a4,5\n> new line one\n> new line two\n",
			want: &Diff{
				Hunks: []*Hunk{{
					Raw:   []string{"3a4,5", "> new line one", "> new line two"},
					Added: []string{"new line one", "new line two"},
				}},
			},
		},
		{
			name:  "delete-only-hunk",
			input: "10d9\n< stale line\n",
			want: &Diff{
				Hunks: []*Hunk{{
					Raw:     []string{"10d9", "< stale line"},
					Deleted: []string{"stale line"},
				}},
			},
		},
		{
			name: "multiple-hunks-preserve-order",
			input: "2c2\n< a = 1\n---\n> a = 2\n" +
				"8,9c8,9\n< b = 3\n< c = 4\n---\n> b = 5\n> c = 6\n",
			want: &Diff{
				Hunks: []*Hunk{
					{
						Raw:     []string{"2c2", "< a = 1", "> a = 2"},
						Added:   []string{"a = 2"},
						Deleted: []string{"a = 1"},
					},
					{
						Raw:     []string{"8,9c8,9", "< b = 3", "< c = 4", "> b = 5", "> c = 6"},
						Added:   []string{"b = 5", "c = 6"},
						Deleted: []string{"b = 3", "c = 4"},
					},
				},
			},
		},
		{
			name:  "pre-header-banner-dropped",
			input: "Binary files differ? no, just a banner\n4c4\n< x\n---\n> y\n",
			want: &Diff{
				Hunks: []*Hunk{{
					Raw:     []string{"4c4", "< x", "> y"},
					Added:   []string{"y"},
					Deleted: []string{"x"},
				}},
			},
		},
		{
			name:  "truncated-stream-flushes-open-hunk",
			input: "4c4\n< old",
			want: &Diff{
				Hunks: []*Hunk{{
					Raw:     []string{"4c4", "< old"},
					Deleted: []string{"old"},
				}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse result differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestParseMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "added-before-header", input: "> orphan line\n"},
		{name: "deleted-before-header", input: "< orphan line\n"},
		{name: "orphan-after-banner", input: "some banner\n> orphan line\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("Parse error = %v, want ErrMalformedInput", err)
			}
			if d == nil {
				t.Fatal("Parse should return the partial diff alongside the error")
			}
		})
	}
}

func TestHeaderGrammar(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"4c4", true},
		{"5,7c5,7", true},
		{"3a4,5", true},
		{"10d9", true},
		{"12,15d11", true},
		{"142c142", true},
		{"---", false},
		{"< 1.0", false},
		{"> 1.0", false},
		{"c4", false},
		{"", false},
		{"hello", false},
	}
	for _, tt := range tests {
		if got := header.MatchString(tt.line); got != tt.want {
			t.Errorf("header.MatchString(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

// Golden corpus: each testdata archive holds a raw ed-style diff and the
// expected retained hunks after classification. The comment carries
// "epsilon:" and "omitted:" pragmas.
func TestParseGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata archives found")
	}
	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatalf("parsing archive: %v", err)
			}
			epsilon, omitted := parsePragmas(t, string(ar.Comment))

			var input, retained string
			for _, f := range ar.Files {
				switch f.Name {
				case "diff":
					input = string(f.Data)
				case "retained":
					retained = string(f.Data)
				default:
					t.Fatalf("unexpected file %q in archive", f.Name)
				}
			}

			d, err := Compare(strings.NewReader(input), Epsilon(epsilon))
			if err != nil {
				t.Fatalf("Compare: %v", err)
			}
			var got strings.Builder
			for _, h := range d.Hunks {
				for _, line := range h.Raw {
					got.WriteString(line)
					got.WriteByte('\n')
				}
			}
			if diff := cmp.Diff(retained, got.String()); diff != "" {
				t.Errorf("retained hunks differ [-want,+got]:\n%s", diff)
			}
			if d.Omitted != omitted {
				t.Errorf("Omitted = %d, want %d", d.Omitted, omitted)
			}
		})
	}
}

func parsePragmas(t *testing.T, comment string) (epsilon float64, omitted int) {
	t.Helper()
	epsilon = 6e-4
	for _, line := range strings.Split(comment, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		var err error
		switch strings.TrimSpace(key) {
		case "epsilon":
			epsilon, err = strconv.ParseFloat(value, 64)
		case "omitted":
			omitted, err = strconv.Atoi(value)
		}
		if err != nil {
			t.Fatalf("bad pragma %q: %v", line, err)
		}
	}
	return epsilon, omitted
}

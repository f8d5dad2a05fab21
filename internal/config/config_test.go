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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"numdiff"
	"numdiff/internal/config"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "epsilon",
			opts: []config.Option{
				numdiff.Epsilon(1e-6),
			},
			want: config.Config{
				Epsilon: 1e-6,
				Exact:   config.Default.Exact,
			},
		},
		{
			name: "exact",
			opts: []config.Option{
				numdiff.Exact(),
			},
			want: config.Config{
				Epsilon: config.Default.Epsilon,
				Exact:   true,
			},
		},
		{
			name: "epsilon-exact",
			opts: []config.Option{
				numdiff.Epsilon(0.5),
				numdiff.Exact(),
			},
			want: config.Config{
				Epsilon: 0.5,
				Exact:   true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.Epsilon|config.Exact)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for disallowed option")
		}
	}()
	config.FromOptions([]config.Option{numdiff.Exact()}, config.Epsilon)
}

func TestFromOptionsBadEpsilon(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive epsilon")
		}
	}()
	config.FromOptions([]config.Option{numdiff.Epsilon(-1)}, config.Epsilon)
}

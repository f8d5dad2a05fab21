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

import "numdiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Epsilon sets the numeric tolerance used during classification: two numbers
// a and b count as equal when |a-b| < eps. The default is 6e-4. Eps must be
// positive.
func Epsilon(eps float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Epsilon = eps
		return config.Epsilon
	}
}

// Exact disables tolerance classification: every hunk is retained verbatim,
// making [Compare] equivalent to [Parse].
func Exact() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Exact = true
		return config.Exact
	}
}

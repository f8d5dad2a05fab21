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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// numdiff.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Epsilon is the maximum absolute difference between two numeric values that still counts
	// as equal during classification. Must be positive.
	Epsilon float64

	// Exact skips classification entirely: every hunk is retained verbatim.
	Exact bool
}

// Default is the default configuration.
var Default = Config{
	Epsilon: 6e-4,
	Exact:   false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not allowed in a given context.
type Flag int

const (
	Epsilon Flag = 1 << iota
	Exact
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if cfg.Epsilon <= 0 {
		panic("numdiff.Epsilon must be positive")
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Epsilon:
		return "numdiff.Epsilon"
	case Exact:
		return "numdiff.Exact"
	default:
		panic("never reached")
	}
}

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

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

// defaultConfigFile is looked up in the working directory when --config is
// not given.
const defaultConfigFile = "numdiff.toml"

// settings is the resolved CLI configuration. Precedence, lowest to highest:
// built-in defaults, numdiff.toml, NUMDIFF_* environment variables, flags.
type settings struct {
	Epsilon float64  `toml:"epsilon"`
	Exact   bool     `toml:"exact"`
	Include []string `toml:"include"`
	Jobs    int      `toml:"jobs"`
}

// envOverrides mirrors settings for envconfig; pointer fields distinguish
// "unset" from zero values.
type envOverrides struct {
	Epsilon *float64 `envconfig:"EPSILON"`
	Exact   *bool    `envconfig:"EXACT"`
	Jobs    *int     `envconfig:"JOBS"`
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	cfg := settings{
		Epsilon: 6e-4,
		Jobs:    runtime.NumCPU(),
	}

	path, _ := cmd.Flags().GetString("config")
	explicit := cmd.Flags().Changed("config")
	if !explicit {
		path = defaultConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	} else if explicit {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}

	var env envOverrides
	if err := envconfig.Process("numdiff", &env); err != nil {
		return cfg, fmt.Errorf("reading NUMDIFF_* environment: %w", err)
	}
	if env.Epsilon != nil {
		cfg.Epsilon = *env.Epsilon
	}
	if env.Exact != nil {
		cfg.Exact = *env.Exact
	}
	if env.Jobs != nil {
		cfg.Jobs = *env.Jobs
	}

	if cmd.Flags().Changed("epsilon") {
		cfg.Epsilon, _ = cmd.Flags().GetFloat64("epsilon")
	}
	if cmd.Flags().Changed("exact") {
		cfg.Exact, _ = cmd.Flags().GetBool("exact")
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs, _ = cmd.Flags().GetInt("jobs")
	}
	if cmd.Flags().Changed("include") {
		cfg.Include, _ = cmd.Flags().GetStringSlice("include")
	}

	if cfg.Epsilon <= 0 {
		return cfg, fmt.Errorf("epsilon must be positive, got %g", cfg.Epsilon)
	}
	// 0 (and anything below) means "one per CPU", as the --jobs help says.
	if cfg.Jobs < 1 {
		cfg.Jobs = runtime.NumCPU()
	}
	return cfg, nil
}

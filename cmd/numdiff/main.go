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

// numdiff compares regression output files against saved baselines,
// tolerating small floating-point precision differences.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// errDifferences signals real differences were found; main turns it into
// exit status 1 with no extra message (the report already said everything).
var errDifferences = errors.New("differences found")

var rootCmd = &cobra.Command{
	Use:   "numdiff <baseline> <current>",
	Short: "Float-tolerant regression output comparison",
	Long: `numdiff compares a current test run against a saved baseline, either
file against file or directory tree against directory tree. Hunks that
differ only in floating-point rounding within --epsilon are omitted, so
numeric noise does not fail a regression run.

Exit status is 0 when everything matches (exactly or within tolerance),
1 when real differences or missing files were found, and 2 on error.`,
	Args:          cobra.ExactArgs(2),
	RunE:          runCompare,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func registerFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("epsilon", 6e-4, "numeric tolerance for classification")
	cmd.Flags().Bool("exact", false, "disable tolerance, report every hunk")
	cmd.Flags().StringSlice("include", nil, "only compare files whose name matches these glob patterns")
	cmd.Flags().Int("jobs", 0, "number of file pairs to compare in parallel (0 = number of CPUs)")
	cmd.Flags().String("color", "auto", "colorize output (auto|on|off)")
	cmd.Flags().String("config", "", "path to a numdiff.toml config file")
	cmd.Flags().BoolP("verbose", "v", false, "log per-pair diagnostics to stderr")
}

func main() {
	rootCmd.Version = version
	registerFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errDifferences) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}

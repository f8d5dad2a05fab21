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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"numdiff"
	"numdiff/internal/linediff"
	"numdiff/internal/pair"
	"numdiff/internal/report"
)

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().Level(zerolog.DebugLevel)
	}

	colorMode, _ := cmd.Flags().GetString("color")
	printer := report.New(os.Stdout, colorMode)

	oldArg, newArg := args[0], args[1]
	oldInfo, err := os.Stat(oldArg)
	if err != nil {
		return err
	}
	newInfo, err := os.Stat(newArg)
	if err != nil {
		return err
	}
	if oldInfo.IsDir() != newInfo.IsDir() {
		return fmt.Errorf("cannot compare directory with file: %s vs %s", oldArg, newArg)
	}

	if !oldInfo.IsDir() {
		d, err := comparePair(cmd.Context(), cfg, logger, oldArg, newArg)
		if err != nil {
			return err
		}
		printer.File(filepath.Base(newArg), d)
		if !d.Clean() {
			return errDifferences
		}
		return nil
	}
	return compareDirs(cmd, cfg, logger, printer, oldArg, newArg)
}

func compareDirs(cmd *cobra.Command, cfg settings, logger zerolog.Logger, printer *report.Printer, oldRoot, newRoot string) error {
	set, err := pair.Dirs(oldRoot, newRoot, cfg.Include)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("pairs", len(set.Pairs)).
		Int("baseline_only", len(set.OldOnly)).
		Int("current_only", len(set.NewOnly)).
		Msg("paired directories")

	// Compare pairs in parallel but keep reporting in pairing order.
	diffs := make([]*numdiff.Diff, len(set.Pairs))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Jobs)
	for i, pr := range set.Pairs {
		i, pr := i, pr
		g.Go(func() error {
			d, err := comparePair(ctx, cfg, logger, pr.Old, pr.New)
			if err != nil {
				return fmt.Errorf("%s: %w", pr.Rel, err)
			}
			diffs[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	differing, omitted := 0, 0
	for i, pr := range set.Pairs {
		printer.File(pr.Rel, diffs[i])
		omitted += diffs[i].Omitted
		if !diffs[i].Clean() {
			differing++
		}
	}
	for _, rel := range set.OldOnly {
		printer.Missing(rel, "baseline")
	}
	for _, rel := range set.NewOnly {
		printer.Missing(rel, "current run")
	}

	if !printer.Summary(len(set.Pairs), differing, len(set.OldOnly)+len(set.NewOnly), omitted) {
		return errDifferences
	}
	return nil
}

func comparePair(ctx context.Context, cfg settings, logger zerolog.Logger, oldPath, newPath string) (*numdiff.Diff, error) {
	start := time.Now()
	script, err := linediff.Files(ctx, oldPath, newPath)
	if err != nil {
		return nil, err
	}

	opts := []numdiff.Option{numdiff.Epsilon(cfg.Epsilon)}
	if cfg.Exact {
		opts = append(opts, numdiff.Exact())
	}
	d, err := numdiff.Compare(strings.NewReader(script), opts...)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("old", oldPath).
		Str("new", newPath).
		Int("hunks", len(d.Hunks)).
		Int("omitted_lines", d.Omitted).
		Dur("elapsed", time.Since(start)).
		Msg("compared pair")
	return d, nil
}

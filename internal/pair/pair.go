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

// Package pair matches the files of a test-run directory against a baseline
// directory by relative path.
package pair

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// Pair is one comparable file pair. Old and New are full paths; Rel is the
// shared path relative to the directory roots.
type Pair struct {
	Rel      string
	Old, New string
}

// Set is the result of pairing two directory trees.
type Set struct {
	Pairs   []Pair
	OldOnly []string // relative paths present only under the baseline root
	NewOnly []string // relative paths present only under the run root
}

// Dirs walks oldRoot and newRoot and pairs their files by relative path.
// Include holds filepath.Match patterns applied to base names; empty means
// every file. Results are sorted for a deterministic comparison order.
func Dirs(oldRoot, newRoot string, include []string) (*Set, error) {
	oldFiles, err := listFiles(oldRoot, include)
	if err != nil {
		return nil, err
	}
	newFiles, err := listFiles(newRoot, include)
	if err != nil {
		return nil, err
	}

	s := &Set{}
	for _, rel := range oldFiles {
		i := sort.SearchStrings(newFiles, rel)
		if i < len(newFiles) && newFiles[i] == rel {
			s.Pairs = append(s.Pairs, Pair{
				Rel: rel,
				Old: filepath.Join(oldRoot, rel),
				New: filepath.Join(newRoot, rel),
			})
		} else {
			s.OldOnly = append(s.OldOnly, rel)
		}
	}
	olds := make(map[string]bool, len(oldFiles))
	for _, rel := range oldFiles {
		olds[rel] = true
	}
	for _, rel := range newFiles {
		if !olds[rel] {
			s.NewOnly = append(s.NewOnly, rel)
		}
	}
	return s, nil
}

// listFiles returns the sorted relative paths of all regular files under
// root whose base name matches one of the include patterns.
func listFiles(root string, include []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ok, err := matches(filepath.Base(path), include)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

func matches(name string, include []string) (bool, error) {
	if len(include) == 0 {
		return true, nil
	}
	for _, pat := range include {
		ok, err := filepath.Match(pat, name)
		if err != nil {
			return false, fmt.Errorf("bad include pattern %q: %w", pat, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

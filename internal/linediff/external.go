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

// Package linediff produces ed-style line diffs between two files.
//
// The preferred producer is the system diff tool; when it is not installed
// the pure-Go fallback in [EdScript] emits an equivalent script. Either way
// the output parses with numdiff.Parse.
package linediff

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Files diffs two files, preferring the system diff tool and falling back to
// [EdScript] when it is not installed.
func Files(ctx context.Context, oldpath, newpath string) (string, error) {
	if Available() {
		return External(ctx, oldpath, newpath)
	}
	old, err := os.ReadFile(oldpath)
	if err != nil {
		return "", fmt.Errorf("reading old file: %v", err)
	}
	new, err := os.ReadFile(newpath)
	if err != nil {
		return "", fmt.Errorf("reading new file: %v", err)
	}
	return EdScript(string(old), string(new)), nil
}

// Available reports whether the system diff tool can be found on PATH.
func Available() bool {
	_, err := exec.LookPath("diff")
	return err == nil
}

// External runs the system diff tool on two files and returns its ed-style
// output. Exit status 1 means the files differ and is not an error; any
// other non-zero status is.
func External(ctx context.Context, oldpath, newpath string) (string, error) {
	cmd := exec.CommandContext(ctx, "diff", oldpath, newpath)
	out, err := cmd.Output()
	if err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) && exit.ExitCode() == 1 {
			return string(out), nil
		}
		detail := ""
		if exit != nil {
			detail = ": " + strings.TrimSpace(string(exit.Stderr))
		}
		return "", fmt.Errorf("failed to run diff command: diff %s %s: %v%s", oldpath, newpath, err, detail)
	}
	return string(out), nil
}

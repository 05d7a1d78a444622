// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff compares multi-line strings in tests.
package diff

import (
	"fmt"
	"os"
	"os/exec"
)

// Diff returns a human-readable description of the differences
// between want and got. If the "diff" command is available, it
// returns the output of unified diff. A non-empty result means the
// strings differ or the diff command failed.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	if _, err := exec.LookPath("diff"); err != nil {
		return fmt.Sprintf("diff command unavailable\nwant: %q\ngot: %q", want, got)
	}

	write := func(s string) (string, error) {
		f, err := os.CreateTemp("", "uringbench_test")
		if err != nil {
			return "", err
		}
		defer f.Close()
		if _, err := f.WriteString(s); err != nil {
			return "", err
		}
		return f.Name(), nil
	}

	f1, err := write(want)
	if err != nil {
		return err.Error()
	}
	defer os.Remove(f1)
	f2, err := write(got)
	if err != nil {
		return err.Error()
	}
	defer os.Remove(f2)

	data, err := exec.Command("diff", "-u", f1, f2).CombinedOutput()
	if len(data) > 0 {
		// diff exits non-zero when the files don't match.
		// Ignore that as long as there is output.
		return string(data)
	}
	if err != nil {
		return err.Error()
	}
	return string(data)
}

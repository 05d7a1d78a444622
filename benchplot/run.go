// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// gnuplotCmd is the renderer binary. Tests point it at stubs.
var gnuplotCmd = "gnuplot"

// FindGnuplot probes for the external renderer and returns its
// version string. A missing renderer is a fatal precondition for the
// caller; the error carries install guidance.
func FindGnuplot() (string, error) {
	out, err := exec.Command(gnuplotCmd, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("gnuplot is not installed or not in PATH\n\n" +
			"Install gnuplot:\n" +
			"  Debian/Ubuntu: sudo apt install gnuplot\n" +
			"  macOS:         brew install gnuplot\n" +
			"  Fedora/RHEL:   sudo dnf install gnuplot")
	}
	return strings.TrimSpace(string(out)), nil
}

// A Failure records one chart the renderer could not produce.
type Failure struct {
	Chart  *Chart
	Stderr string // the renderer's diagnostic output, if any
}

// Render runs the external renderer over every chart, strictly
// sequentially, and partitions the charts into generated output files
// and failures. A render counts as successful only if the expected
// output file exists afterwards; a clean exit that produced nothing
// is still a failure. Failed charts are not retried.
//
// Unless quiet is set, one ✓/✗ status line per chart is written to w.
func Render(charts []Chart, quiet bool, w io.Writer) (generated []string, failed []Failure) {
	for i := range charts {
		c := &charts[i]
		var stderr bytes.Buffer
		cmd := exec.Command(gnuplotCmd, c.ScriptFile)
		cmd.Stderr = &stderr
		runErr := cmd.Run()

		fi, statErr := os.Stat(c.OutputFile)
		if runErr == nil && statErr == nil {
			generated = append(generated, c.OutputFile)
			if !quiet {
				fmt.Fprintf(w, "  ✓ %-40s (%8s bytes)\n",
					filepath.Base(c.OutputFile), groupInt(fi.Size()))
			}
			continue
		}

		failed = append(failed, Failure{Chart: c, Stderr: strings.TrimSpace(stderr.String())})
		if quiet {
			continue
		}
		if runErr != nil {
			fmt.Fprintf(w, "  ✗ %-40s (gnuplot error)\n", filepath.Base(c.OutputFile))
			if stderr.Len() > 0 {
				fmt.Fprintf(w, "     %s\n", strings.TrimSpace(stderr.String()))
			}
		} else {
			fmt.Fprintf(w, "  ✗ %-40s (not created)\n", filepath.Base(c.OutputFile))
		}
	}
	return generated, failed
}

// groupInt formats n with thousands separators.
func groupInt(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

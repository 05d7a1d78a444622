// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resultsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"epoll_t4_c100_m512.txt": "Sent: 200000 (1000.00 msg/s)\nThroughput (received):\n  Rate:  10.00 MB/s (80.00 Mb/s)\nErrors: 0\n",
		"uring_t4_c100_m512.txt": "Sent: 300000 (1500.00 msg/s)\nThroughput (received):\n  Rate:  15.00 MB/s (120.00 Mb/s)\nErrors: 0\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0666); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestMissingRendererProducesNothing(t *testing.T) {
	// With an empty PATH the gnuplot probe fails; the tool must
	// exit 1 with install guidance before writing any artifact.
	t.Setenv("PATH", t.TempDir())

	dir := resultsDir(t)
	output := filepath.Join(t.TempDir(), "graphs")

	var out, errOut bytes.Buffer
	code := uringplot(&out, &errOut, dir, options{output: output})
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "Install gnuplot") {
		t.Errorf("stderr = %q, want install guidance", errOut.String())
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("output directory was created before the renderer check")
	}
}

func TestBadDir(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := uringplot(&out, &errOut, filepath.Join(t.TempDir(), "nope"), options{output: "graphs"}); code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "not a directory") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestNativeEndToEnd(t *testing.T) {
	dir := resultsDir(t)
	output := filepath.Join(t.TempDir(), "graphs")

	var out, errOut bytes.Buffer
	code := uringplot(&out, &errOut, dir, options{output: output, native: true})
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errOut.String())
	}

	// One message size, one configuration: msgrate, throughput,
	// scaling, speedup.
	for _, name := range []string{
		"msgrate_512.dat", "msgrate_512.png",
		"throughput_512.dat", "throughput_512.png",
		"msgsize_scaling_4tx100c.dat", "msgsize_scaling_4tx100c.png",
		"speedup_512.dat", "speedup_512.png",
		"index.html",
	} {
		if _, err := os.Stat(filepath.Join(output, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
	// Native rendering writes no gnuplot scripts.
	if _, err := os.Stat(filepath.Join(output, "plot_msgrate_512.gnu")); err == nil {
		t.Error("native run wrote a gnuplot script")
	}
	if !strings.Contains(out.String(), "Done!") {
		t.Errorf("output = %q, want final summary", out.String())
	}
}

func TestNativeQuiet(t *testing.T) {
	dir := resultsDir(t)
	output := filepath.Join(t.TempDir(), "graphs")

	var out, errOut bytes.Buffer
	code := uringplot(&out, &errOut, dir, options{output: output, native: true, quiet: true, noHTML: true})
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errOut.String())
	}
	if out.Len() != 0 {
		t.Errorf("quiet run wrote %q", out.String())
	}
	if _, err := os.Stat(filepath.Join(output, "index.html")); err == nil {
		t.Error("-no-html run wrote an index")
	}
}

func TestEmptyResults(t *testing.T) {
	var out, errOut bytes.Buffer
	code := uringplot(&out, &errOut, t.TempDir(), options{output: "graphs", native: true})
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "no valid benchmark results") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

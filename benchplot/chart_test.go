// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/uringbench/perf/benchtab"
	"github.com/uringbench/perf/resultfmt"
)

func scalar(v float64) resultfmt.Scalar {
	return resultfmt.Scalar{Value: v, OK: true}
}

// plotTable builds the fixture used by the chart tests: one triple
// with epoll and uring at 512 bytes, plus a second configuration that
// only has data at 64 bytes.
func plotTable() *benchtab.Table {
	tab := benchtab.New()
	tab.Insert(resultfmt.Key{Mode: "epoll", Threads: 4, Conns: 100, MsgSize: 512},
		resultfmt.Metrics{MsgRate: scalar(1000), Throughput: scalar(10)})
	tab.Insert(resultfmt.Key{Mode: "uring", Threads: 4, Conns: 100, MsgSize: 512},
		resultfmt.Metrics{MsgRate: scalar(1500), Throughput: scalar(15)})
	tab.Insert(resultfmt.Key{Mode: "epoll", Threads: 2, Conns: 50, MsgSize: 64},
		resultfmt.Metrics{MsgRate: scalar(800), Throughput: scalar(2)})
	return tab
}

func TestBuild(t *testing.T) {
	charts := Build(plotTable(), "out")

	// Two message sizes and two configurations: 2 msgrate + 2
	// throughput + 2 scaling + 2 speedup.
	if len(charts) != 8 {
		t.Fatalf("Build produced %d charts, want 8", len(charts))
	}

	wantFamilies := []Family{
		FamilyMsgRate, FamilyMsgRate,
		FamilyThroughput, FamilyThroughput,
		FamilyScaling, FamilyScaling,
		FamilySpeedup, FamilySpeedup,
	}
	for i, c := range charts {
		if c.Family != wantFamilies[i] {
			t.Errorf("chart %d family = %v, want %v", i, c.Family, wantFamilies[i])
		}
	}

	// Message sizes ascend within a family.
	if got, want := charts[0].DataFile, filepath.Join("out", "msgrate_64.dat"); got != want {
		t.Errorf("first data file = %q, want %q", got, want)
	}
	if got, want := charts[1].OutputFile, filepath.Join("out", "msgrate_512.png"); got != want {
		t.Errorf("second output = %q, want %q", got, want)
	}
	// Scaling files carry the ×-cleaned configuration.
	if got, want := charts[4].ScriptFile, filepath.Join("out", "plot_msgsize_scaling_2tx50c.gnu"); got != want {
		t.Errorf("scaling script = %q, want %q", got, want)
	}
}

func TestBuildSpeedupSeries(t *testing.T) {
	charts := Build(plotTable(), "out")
	c := charts[7] // speedup at 512 bytes
	if c.Family != FamilySpeedup || !strings.Contains(c.Title, "512") {
		t.Fatalf("unexpected chart: %+v", c)
	}
	// The baseline mode is not a series of its own.
	if len(c.Series) != 2 {
		t.Fatalf("speedup series = %d, want 2 (uring, multishot)", len(c.Series))
	}
	if c.Series[0].Label != "uring" || c.Series[1].Label != "multishot" {
		t.Fatalf("series labels = %v, %v", c.Series[0].Label, c.Series[1].Label)
	}
	// uring: 1500/1000; multishot absent: sentinel 0.
	if got := c.Series[0].Values; len(got) != 1 || got[0] != 1.5 {
		t.Errorf("uring speedups = %v, want [1.5]", got)
	}
	if got := c.Series[1].Values; len(got) != 1 || got[0] != 0 {
		t.Errorf("multishot speedups = %v, want [0]", got)
	}
}

func TestBuildScalingDropsEmptyRows(t *testing.T) {
	charts := Build(plotTable(), "out")
	for _, c := range charts {
		if c.Family != FamilyScaling {
			continue
		}
		// Each configuration has data at exactly one size; the
		// other size's all-missing row must be dropped, not
		// zero-filled.
		if len(c.Xs) != 1 {
			t.Errorf("%s has %d rows, want 1 (%v)", c.DataFile, len(c.Xs), c.Xs)
		}
	}
}

func TestWriteData(t *testing.T) {
	dir := t.TempDir()
	charts := Build(plotTable(), dir)
	if err := WriteData(charts); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "msgrate_512.dat"))
	if err != nil {
		t.Fatal(err)
	}
	want := "# Config Epoll Uring Multishot\n\"4t×100c\" 1000 1500 0\n"
	if string(data) != want {
		t.Errorf("msgrate_512.dat = %q, want %q", data, want)
	}

	data, err = os.ReadFile(filepath.Join(dir, "speedup_512.dat"))
	if err != nil {
		t.Fatal(err)
	}
	want = "# Config Uring_Speedup Multishot_Speedup\n\"4t×100c\" 1.50 0.00\n"
	if string(data) != want {
		t.Errorf("speedup_512.dat = %q, want %q", data, want)
	}

	data, err = os.ReadFile(filepath.Join(dir, "msgsize_scaling_2tx50c.dat"))
	if err != nil {
		t.Fatal(err)
	}
	want = "# MsgSize Epoll Uring Multishot\n64 800 0 0\n"
	if string(data) != want {
		t.Errorf("msgsize_scaling_2tx50c.dat = %q, want %q", data, want)
	}
}

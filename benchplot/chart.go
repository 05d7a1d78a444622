// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot turns an aggregated benchmark table into charts.
//
// Chart generation is split into "what to render" and "how it is
// written": Build assembles structured Chart values holding titles,
// axes, series and data rows, and separate steps serialize them as
// whitespace-delimited data files plus gnuplot scripts, invoke the
// external renderer, or render them in-process. One Chart corresponds
// to exactly one data file, one script, and one output image.
package benchplot

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/uringbench/perf/benchdelta"
	"github.com/uringbench/perf/benchtab"
	"github.com/uringbench/perf/resultfmt"
)

// A Family selects the fixed styling of a chart.
type Family int

const (
	// FamilyMsgRate is a clustered bar chart of message rate per
	// configuration, one chart per message size.
	FamilyMsgRate Family = iota
	// FamilyThroughput is the same shape in MB/s.
	FamilyThroughput
	// FamilyScaling is a log-x line chart of message rate over
	// message size, one chart per configuration.
	FamilyScaling
	// FamilySpeedup is a clustered bar chart of speedup ratios
	// against the epoll baseline, with a reference line at 1×.
	FamilySpeedup
)

// A Series is one plotted mode: its legend label, color, and one
// value per chart row.
type Series struct {
	Label  string
	Color  string // #rrggbb
	Values []float64
}

// A Chart is a fully specified rendering job.
type Chart struct {
	Family Family
	Title  string
	XLabel string
	YLabel string

	// Labels holds the category labels of bar-family rows; Xs
	// holds the x values of scaling-family rows. Exactly one of
	// the two is populated.
	Labels []string
	Xs     []float64

	Series []Series

	DataFile   string // delimited data table consumed by the renderer
	ScriptFile string // gnuplot program bound to DataFile
	OutputFile string // image the renderer must produce
}

// Mode colors, shared by every family.
var modeColors = map[string]string{
	"epoll":     "#e74c3c",
	"uring":     "#3498db",
	"multishot": "#2ecc71",
}

// Build assembles every chart for t, in a fixed order: message-rate
// charts by ascending message size, then throughput, then per-config
// scaling, then speedup. All file paths are placed under dir.
func Build(t *benchtab.Table, dir string) []Chart {
	var charts []Chart

	rate := func(msgSize int, config, mode string) float64 {
		e, ok := t.Lookup(msgSize, config, mode)
		if !ok {
			return 0
		}
		return e.Metrics.MsgRate.Or(0)
	}

	for _, msgSize := range t.MsgSizes() {
		c := Chart{
			Family: FamilyMsgRate,
			Title:  fmt.Sprintf("Message Rate Comparison - %d byte messages", msgSize),
			XLabel: "Configuration (threads × connections)",
			YLabel: "Messages per second",
			Labels: t.Configs(msgSize),
		}
		for _, mode := range resultfmt.DisplayModes {
			s := Series{Label: mode, Color: modeColors[mode]}
			for _, config := range c.Labels {
				s.Values = append(s.Values, rate(msgSize, config, mode))
			}
			c.Series = append(c.Series, s)
		}
		setPaths(&c, dir, fmt.Sprintf("msgrate_%d", msgSize))
		charts = append(charts, c)
	}

	for _, msgSize := range t.MsgSizes() {
		c := Chart{
			Family: FamilyThroughput,
			Title:  fmt.Sprintf("Throughput Comparison - %d byte messages", msgSize),
			XLabel: "Configuration (threads × connections)",
			YLabel: "Throughput (MB/s)",
			Labels: t.Configs(msgSize),
		}
		for _, mode := range resultfmt.DisplayModes {
			s := Series{Label: mode, Color: modeColors[mode]}
			for _, config := range c.Labels {
				var v float64
				if e, ok := t.Lookup(msgSize, config, mode); ok {
					v = e.Metrics.Throughput.Or(0)
				}
				s.Values = append(s.Values, v)
			}
			c.Series = append(c.Series, s)
		}
		setPaths(&c, dir, fmt.Sprintf("throughput_%d", msgSize))
		charts = append(charts, c)
	}

	for _, config := range t.AllConfigs() {
		c := Chart{
			Family: FamilyScaling,
			Title:  fmt.Sprintf("Message Size Scaling - %s", config),
			XLabel: "Message Size (bytes)",
			YLabel: "Messages per second",
		}
		for _, mode := range resultfmt.DisplayModes {
			c.Series = append(c.Series, Series{Label: mode, Color: modeColors[mode]})
		}
		// A row is emitted only if some mode measured a nonzero
		// rate at this size; all-missing rows would plot as a
		// spurious dip to zero.
		for _, msgSize := range t.MsgSizes() {
			any := false
			var vals [3]float64
			for i, mode := range resultfmt.DisplayModes {
				vals[i] = rate(msgSize, config, mode)
				if vals[i] != 0 {
					any = true
				}
			}
			if !any {
				continue
			}
			c.Xs = append(c.Xs, float64(msgSize))
			for i := range c.Series {
				c.Series[i].Values = append(c.Series[i].Values, vals[i])
			}
		}
		setPaths(&c, dir, "msgsize_scaling_"+cleanConfig(config))
		charts = append(charts, c)
	}

	for _, msgSize := range t.MsgSizes() {
		c := Chart{
			Family: FamilySpeedup,
			Title:  fmt.Sprintf("Speedup vs epoll Baseline - %d byte messages", msgSize),
			XLabel: "Configuration (threads × connections)",
			YLabel: "Speedup (×)",
			Labels: t.Configs(msgSize),
		}
		for _, mode := range resultfmt.DisplayModes {
			if mode == resultfmt.Baseline {
				continue
			}
			s := Series{Label: mode, Color: modeColors[mode]}
			for _, config := range c.Labels {
				base := rate(msgSize, config, resultfmt.Baseline)
				s.Values = append(s.Values, benchdelta.Speedup(rate(msgSize, config, mode), base))
			}
			c.Series = append(c.Series, s)
		}
		setPaths(&c, dir, fmt.Sprintf("speedup_%d", msgSize))
		charts = append(charts, c)
	}

	return charts
}

func setPaths(c *Chart, dir, base string) {
	c.DataFile = filepath.Join(dir, base+".dat")
	c.ScriptFile = filepath.Join(dir, "plot_"+base+".gnu")
	c.OutputFile = filepath.Join(dir, base+".png")
}

// cleanConfig makes a configuration label safe for file names by
// replacing the label's "×" with a plain "x".
func cleanConfig(config string) string {
	return strings.ReplaceAll(config, "×", "x")
}

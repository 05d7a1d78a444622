// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport renders text reports over an aggregated
// benchmark table.
//
// Three independent views are provided: a detailed per-configuration
// comparison with proportional bars, a flat summary table, and the
// best observed result per mode. Each view imposes its own explicit
// sort order, so output is deterministic regardless of how the table
// was populated.
package benchreport

import (
	"fmt"
	"io"
	"strings"

	"github.com/uringbench/perf/benchdelta"
	"github.com/uringbench/perf/benchtab"
)

const barWidth = 40

// bar renders a proportional text bar for v against the column
// maximum. A zero maximum yields no bar at all rather than an empty
// frame.
func bar(v, max float64) string {
	if max == 0 {
		return ""
	}
	n := int(benchdelta.Normalize(v, max) * barWidth)
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
}

// FormatComparison writes the detailed comparison view: message sizes
// ascending, configuration labels ascending within each size, and the
// canonical mode order within each configuration. Modes absent for a
// triple are skipped. Message rate and throughput bars are normalized
// against the maximum observed within the same triple, and every
// non-baseline mode gets a percentage line against epoll when epoll
// was measured with a positive rate.
func FormatComparison(w io.Writer, t *benchtab.Table) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "BENCHMARK COMPARISON\n")
	fmt.Fprintf(w, "%s\n", rule)

	for _, msgSize := range t.MsgSizes() {
		fmt.Fprintf(w, "\n%s\n", rule)
		fmt.Fprintf(w, "MESSAGE SIZE: %d bytes\n", msgSize)
		fmt.Fprintf(w, "%s\n\n", rule)

		for _, config := range t.Configs(msgSize) {
			fmt.Fprintf(w, "Configuration: %s\n", config)
			fmt.Fprintf(w, "%s\n", strings.Repeat("-", 80))

			// Normalize bars against the best mode in this
			// triple, counting modes outside the display set.
			var maxRate, maxThroughput float64
			for _, mode := range t.Modes(msgSize, config) {
				e, _ := t.Lookup(msgSize, config, mode)
				if e.Metrics.MsgRate.OK && e.Metrics.MsgRate.Value > maxRate {
					maxRate = e.Metrics.MsgRate.Value
				}
				if e.Metrics.Throughput.OK && e.Metrics.Throughput.Value > maxThroughput {
					maxThroughput = e.Metrics.Throughput.Value
				}
			}

			for _, mode := range resultfmtModes {
				e, ok := t.Lookup(msgSize, config, mode)
				if !ok {
					continue
				}
				rate := e.Metrics.MsgRate.Or(0)
				throughput := e.Metrics.Throughput.Or(0)
				errors := e.Metrics.Errors.Or(0)

				fmt.Fprintf(w, "\n  %-12s\n", strings.ToUpper(mode))
				fmt.Fprintf(w, "    Message Rate:  %s msg/s\n", padLeft(commaf(rate, 2), 12))
				fmt.Fprintf(w, "                   %s\n", bar(rate, maxRate))
				fmt.Fprintf(w, "    Throughput:    %s MB/s\n", padLeft(commaf(throughput, 2), 12))
				fmt.Fprintf(w, "                   %s\n", bar(throughput, maxThroughput))
				fmt.Fprintf(w, "    Errors:        %s\n", padLeft(commai(errors), 12))

				if mode != baselineMode {
					if base, ok := t.Lookup(msgSize, config, baselineMode); ok {
						if pct, ok := benchdelta.Percent(rate, base.Metrics.MsgRate.Or(0)); ok {
							fmt.Fprintf(w, "    vs epoll:      %+12.1f%%\n", pct)
						}
					}
				}
			}

			fmt.Fprintf(w, "\n")
		}
	}

	fmt.Fprintf(w, "%s\n", rule)
}

// FormatSummary writes one row per (mode, configuration, message
// size) triple present in the table, sorted by that triple. The sort
// is on the mode and configuration label strings, not on numeric
// configuration order.
func FormatSummary(w io.Writer, t *benchtab.Table) {
	rule := strings.Repeat("=", 100)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "SUMMARY TABLE\n")
	fmt.Fprintf(w, "%s\n\n", rule)

	fmt.Fprintf(w, "%-12s %-12s %-10s %-15s %-12s %-10s\n",
		"Mode", "Config", "MsgSize", "Msg/s", "MB/s", "Errors")
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", 100))

	for _, tk := range t.Keys() {
		e, _ := t.Lookup(tk.MsgSize, tk.Config, tk.Mode)
		fmt.Fprintf(w, "%s %s %-10d %s  %s  %s\n",
			pad(tk.Mode, 12),
			pad(tk.Config, 12),
			tk.MsgSize,
			padLeft(commaf(e.Metrics.MsgRate.Or(0), 2), 12),
			padLeft(commaf(e.Metrics.Throughput.Or(0), 2), 9),
			padLeft(commai(e.Metrics.Errors.Or(0)), 9))
	}

	fmt.Fprintf(w, "%s\n", rule)
}

// FormatBest writes, for each canonical mode, the configuration and
// message size that achieved the highest message rate. Modes never
// observed are omitted. The scan order is fixed, so on an exact tie
// the smallest (message size, configuration) wins deterministically.
func FormatBest(w io.Writer, t *benchtab.Table) {
	type best struct {
		msgSize int
		config  string
		rate    float64
		mb      float64
	}
	found := make(map[string]best)

	for _, msgSize := range t.MsgSizes() {
		for _, config := range t.Configs(msgSize) {
			for _, mode := range t.Modes(msgSize, config) {
				e, _ := t.Lookup(msgSize, config, mode)
				rate := e.Metrics.MsgRate.Or(0)
				b, ok := found[mode]
				if !ok || rate > b.rate {
					found[mode] = best{
						msgSize: msgSize,
						config:  config,
						rate:    rate,
						mb:      e.Metrics.Throughput.Or(0),
					}
				}
			}
		}
	}

	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "BEST RESULTS BY MODE\n")
	fmt.Fprintf(w, "%s\n\n", rule)

	for _, mode := range resultfmtModes {
		b, ok := found[mode]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\n", strings.ToUpper(mode))
		fmt.Fprintf(w, "  Best: %s msg/s, %.2f MB/s\n", commaf(b.rate, 2), b.mb)
		fmt.Fprintf(w, "  Config: %s, Message size: %d bytes\n", b.config, b.msgSize)
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "%s\n", rule)
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"os"
	"strings"
)

// WriteScripts writes each chart's gnuplot program next to its data
// file. WriteData must have been called first only in the sense that
// the scripts reference the data files by path; nothing is read here.
func WriteScripts(charts []Chart) error {
	for i := range charts {
		c := &charts[i]
		if err := os.WriteFile(c.ScriptFile, []byte(c.Script()), 0666); err != nil {
			return err
		}
	}
	return nil
}

// Script returns the gnuplot program rendering c to its output file.
// This is the single serialization point of a Chart's styling; the
// per-family differences are the histogram vs. line presentation, the
// engineering-notation y format for rate charts, and the speedup
// family's baseline reference line.
func (c *Chart) Script() string {
	var b strings.Builder

	fmt.Fprintf(&b, "set terminal pngcairo size 1400,900 enhanced font 'Arial,12'\n")
	fmt.Fprintf(&b, "set output '%s'\n", c.OutputFile)
	fmt.Fprintf(&b, "set title '%s' font 'Arial,18'\n", c.Title)
	fmt.Fprintf(&b, "set xlabel '%s' font 'Arial,14'\n", c.XLabel)
	fmt.Fprintf(&b, "set ylabel '%s' font 'Arial,14'\n", c.YLabel)

	if c.Family == FamilyScaling {
		b.WriteString("set logscale x\n")
		b.WriteString("set grid xtics ytics linetype 0 linewidth 1\n")
		b.WriteString("set key top right font 'Arial,12'\n")
		for i, s := range c.Series {
			fmt.Fprintf(&b, "set style line %d lc rgb '%s' lt 1 lw 3 pt %d ps 1.5\n",
				i+1, s.Color, 7+2*i)
		}
		b.WriteString("set format y \"%.0s%c\"\n")
		b.WriteString("\n")
		for i, s := range c.Series {
			if i == 0 {
				fmt.Fprintf(&b, "plot '%s' using 1:2 with linespoints ls 1 title '%s'", c.DataFile, s.Label)
			} else {
				fmt.Fprintf(&b, ", \\\n     '' using 1:%d with linespoints ls %d title '%s'", i+2, i+1, s.Label)
			}
		}
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("set style data histogram\n")
	b.WriteString("set style histogram cluster gap 1\n")
	b.WriteString("set style fill solid 0.8 border -1\n")
	b.WriteString("set boxwidth 0.9\n")
	b.WriteString("set xtic rotate by -45 scale 0 font 'Arial,11'\n")
	b.WriteString("set grid ytics linetype 0 linewidth 1\n")
	b.WriteString("set key top left font 'Arial,12'\n")
	if c.Family == FamilyMsgRate {
		b.WriteString("set format y \"%.0s%c\"\n")
	}
	b.WriteString("set yrange [0:*]\n")
	if c.Family == FamilySpeedup {
		b.WriteString("\n# Baseline reference line at 1.0x\n")
		b.WriteString("set arrow from graph 0, first 1 to graph 1, first 1 nohead lc rgb 'gray' lw 2 dt 2\n")
	}
	b.WriteString("\n")

	for i, s := range c.Series {
		if i == 0 {
			fmt.Fprintf(&b, "plot '%s' using 2:xtic(1) title '%s' linecolor rgb '%s'", c.DataFile, s.Label, s.Color)
		} else {
			fmt.Fprintf(&b, ", \\\n     '' using %d title '%s' linecolor rgb '%s'", i+2, s.Label, s.Color)
		}
	}
	b.WriteString("\n")
	return b.String()
}

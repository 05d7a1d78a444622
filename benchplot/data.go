// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteData serializes each chart's rows to its data file: a comment
// header naming the columns, then one whitespace-delimited row per
// category. Category labels are quoted in column 1 for the bar
// families; the scaling family keys rows by numeric message size.
// Speedup ratios are written with two decimals; raw measurements are
// written in full.
func WriteData(charts []Chart) error {
	for i := range charts {
		c := &charts[i]
		if err := os.MkdirAll(filepath.Dir(c.DataFile), 0777); err != nil {
			return err
		}
		if err := os.WriteFile(c.DataFile, []byte(dataTable(c)), 0666); err != nil {
			return err
		}
	}
	return nil
}

func dataTable(c *Chart) string {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(rowKeyName(c.Family))
	for _, s := range c.Series {
		b.WriteByte(' ')
		b.WriteString(columnName(c.Family, s.Label))
	}
	b.WriteByte('\n')

	for row := 0; row < rowCount(c); row++ {
		if c.Family == FamilyScaling {
			b.WriteString(strconv.FormatFloat(c.Xs[row], 'f', -1, 64))
		} else {
			fmt.Fprintf(&b, "%q", c.Labels[row])
		}
		for _, s := range c.Series {
			b.WriteByte(' ')
			if c.Family == FamilySpeedup {
				fmt.Fprintf(&b, "%.2f", s.Values[row])
			} else {
				b.WriteString(strconv.FormatFloat(s.Values[row], 'g', -1, 64))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func rowCount(c *Chart) int {
	if c.Family == FamilyScaling {
		return len(c.Xs)
	}
	return len(c.Labels)
}

func rowKeyName(f Family) string {
	if f == FamilyScaling {
		return "MsgSize"
	}
	return "Config"
}

func columnName(f Family, label string) string {
	name := label
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	if f == FamilySpeedup {
		name += "_Speedup"
	}
	return name
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// RenderNative renders every chart to its output PNG in-process,
// without gnuplot, and partitions the charts into generated files and
// failures with the same accounting as Render. The native charts
// follow the same family styling: clustered bars for the rate,
// throughput and speedup families, a log-x line chart for scaling,
// and a dashed reference line at 1× on speedup charts.
func RenderNative(charts []Chart, quiet bool, w io.Writer) (generated []string, failed []Failure) {
	for i := range charts {
		c := &charts[i]
		err := renderNative(c)
		if err == nil {
			if fi, statErr := os.Stat(c.OutputFile); statErr == nil {
				generated = append(generated, c.OutputFile)
				if !quiet {
					fmt.Fprintf(w, "  ✓ %-40s (%8s bytes)\n",
						filepath.Base(c.OutputFile), groupInt(fi.Size()))
				}
				continue
			}
			err = fmt.Errorf("output not created")
		}
		failed = append(failed, Failure{Chart: c, Stderr: err.Error()})
		if !quiet {
			fmt.Fprintf(w, "  ✗ %-40s (%s)\n", filepath.Base(c.OutputFile), err)
		}
	}
	return generated, failed
}

func renderNative(c *Chart) error {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Y.Min = 0

	var err error
	if c.Family == FamilyScaling {
		err = nativeLines(p, c)
	} else {
		err = nativeBars(p, c)
	}
	if err != nil {
		return err
	}
	return p.Save(14*vg.Inch, 9*vg.Inch, c.OutputFile)
}

func nativeBars(p *plot.Plot, c *Chart) error {
	barWidth := vg.Points(18)
	n := len(c.Series)
	for i, s := range c.Series {
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), barWidth)
		if err != nil {
			return err
		}
		bars.Color = hexColor(s.Color)
		bars.LineStyle.Width = 0
		bars.Offset = barWidth * vg.Length(float64(i)-float64(n-1)/2)
		p.Add(bars)
		p.Legend.Add(s.Label, bars)
	}
	p.NominalX(c.Labels...)
	p.Legend.Top = true
	p.Legend.Left = true

	if c.Family == FamilySpeedup {
		// Reference line at 1×, spanning the nominal categories.
		ref := plotter.XYs{
			{X: -0.5, Y: 1},
			{X: float64(len(c.Labels)) - 0.5, Y: 1},
		}
		line, err := plotter.NewLine(ref)
		if err != nil {
			return err
		}
		line.Color = color.Gray{Y: 128}
		line.Width = vg.Points(2)
		line.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(line)
	}
	return nil
}

func nativeLines(p *plot.Plot, c *Chart) error {
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for _, s := range c.Series {
		xys := make(plotter.XYs, len(s.Values))
		for i, v := range s.Values {
			xys[i] = plotter.XY{X: c.Xs[i], Y: v}
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return err
		}
		col := hexColor(s.Color)
		line.Color = col
		line.Width = vg.Points(3)
		points.Color = col
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(4)
		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}
	return nil
}

// hexColor converts a #rrggbb string. Bad input yields black, which
// is good enough for a color table we control.
func hexColor(s string) color.Color {
	var r, g, b int
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Black
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

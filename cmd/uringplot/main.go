// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Uringplot generates performance charts from echo-server benchmark
// results.
//
// Usage:
//
//	uringplot [-o dir] [-no-html] [-native] [-q] resultsdir
//
// For every message size uringplot emits a message-rate comparison, a
// throughput comparison, and a speedup-vs-epoll chart, plus one
// message-size scaling chart per configuration. Charts are rendered
// by gnuplot from generated data and script files; with -native they
// are rendered in-process instead, and gnuplot is not required.
//
// Unless -no-html is given, an index.html referencing every rendered
// chart is written into the output directory.
//
// Uringplot exits 0 only if every chart rendered; it exits 1 on a
// missing renderer, an invalid or empty results directory, or any
// failed render.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/uringbench/perf/benchplot"
	"github.com/uringbench/perf/benchtab"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: uringplot [options] resultsdir\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

var (
	flagOutput string
	flagNoHTML = flag.Bool("no-html", false, "skip HTML index generation")
	flagNative = flag.Bool("native", false, "render charts in-process instead of with gnuplot")
	flagQuiet  bool
)

func init() {
	flag.StringVar(&flagOutput, "o", "graphs", "output `directory` for graphs")
	flag.StringVar(&flagOutput, "output", "graphs", "output `directory` for graphs")
	flag.BoolVar(&flagQuiet, "q", false, "quiet mode (less output)")
	flag.BoolVar(&flagQuiet, "quiet", false, "quiet mode (less output)")
}

func main() {
	log.SetPrefix("uringplot: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}
	exit(uringplot(os.Stdout, os.Stderr, flag.Arg(0), options{
		output: flagOutput,
		noHTML: *flagNoHTML,
		native: *flagNative,
		quiet:  flagQuiet,
	}))
}

type options struct {
	output string
	noHTML bool
	native bool
	quiet  bool
}

// uringplot runs the chart pipeline and returns the process exit
// code. The renderer precondition is checked before any artifact is
// written, so a missing gnuplot leaves the output directory
// untouched.
func uringplot(w, errw io.Writer, dir string, opts options) int {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		fmt.Fprintf(errw, "uringplot: %s is not a directory\n", dir)
		return 1
	}

	var gnuplotVersion string
	if !opts.native {
		gnuplotVersion, err = benchplot.FindGnuplot()
		if err != nil {
			fmt.Fprintf(errw, "uringplot: %v\n", err)
			return 1
		}
	}

	t, err := benchtab.ScanDir(dir, errw)
	if err != nil {
		fmt.Fprintf(errw, "uringplot: %v\n", err)
		return 1
	}
	if t.Len() == 0 {
		fmt.Fprintf(errw, "uringplot: no valid benchmark results found in %s\n", dir)
		return 1
	}

	if !opts.quiet {
		if gnuplotVersion != "" {
			fmt.Fprintf(w, "Using gnuplot: %s\n\n", gnuplotVersion)
		}
		totalConfigs := 0
		sizes := t.MsgSizes()
		for _, msgSize := range sizes {
			totalConfigs += len(t.Configs(msgSize))
		}
		fmt.Fprintf(w, "Found %d message sizes, %d configurations\n", len(sizes), totalConfigs)
		fmt.Fprintf(w, "Generating graphs in '%s/'\n\n", opts.output)
	}

	charts := benchplot.Build(t, opts.output)
	if err := benchplot.WriteData(charts); err != nil {
		fmt.Fprintf(errw, "uringplot: %v\n", err)
		return 1
	}
	if !opts.quiet {
		fmt.Fprintf(w, "Created %d data files\n", len(charts))
	}

	if !opts.native {
		if err := benchplot.WriteScripts(charts); err != nil {
			fmt.Fprintf(errw, "uringplot: %v\n", err)
			return 1
		}
		if !opts.quiet {
			fmt.Fprintf(w, "Created %d gnuplot scripts\n", len(charts))
		}
	}
	if !opts.quiet {
		fmt.Fprintf(w, "\nGenerating graphs:\n")
	}

	var generated []string
	var failed []benchplot.Failure
	if opts.native {
		generated, failed = benchplot.RenderNative(charts, opts.quiet, w)
	} else {
		generated, failed = benchplot.Render(charts, opts.quiet, w)
	}

	if !opts.quiet {
		fmt.Fprintf(w, "\nSuccessfully generated %d graphs\n", len(generated))
		if len(failed) > 0 {
			fmt.Fprintf(w, "Failed to generate %d graphs\n", len(failed))
		}
	}

	if !opts.noHTML && len(generated) > 0 {
		indexFile, err := benchplot.WriteIndex(opts.output, generated)
		if err != nil {
			fmt.Fprintf(errw, "uringplot: %v\n", err)
			return 1
		}
		if !opts.quiet {
			abs, err := filepath.Abs(indexFile)
			if err != nil {
				abs = indexFile
			}
			fmt.Fprintf(w, "\nCreated HTML index: %s\n", indexFile)
			fmt.Fprintf(w, "View in browser:    file://%s\n", abs)
		}
	}

	if !opts.quiet {
		fmt.Fprintf(w, "\n%s\nDone!\n", strings.Repeat("=", 80))
	}

	if len(failed) > 0 {
		return 1
	}
	return 0
}

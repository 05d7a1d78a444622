// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Uringstat analyzes and compares echo-server benchmark results.
//
// Usage:
//
//	uringstat [-summary-only | -best-only] resultsdir
//
// The results directory is expected to contain one report file per
// run, named mode_tTHREADS_cCONNS_mMSGSIZE.txt, as written by the
// benchmark driver. By default uringstat prints a detailed
// per-configuration comparison, a flat summary table, and the best
// result per mode. With -summary-only or -best-only only that one
// view is printed; if both are given, -summary-only wins.
//
// Uringstat exits 0 on success and 1 if the directory is invalid or
// contains no parseable results.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/uringbench/perf/benchreport"
	"github.com/uringbench/perf/benchtab"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: uringstat [options] resultsdir\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

var (
	flagSummaryOnly = flag.Bool("summary-only", false, "only show the summary table")
	flagBestOnly    = flag.Bool("best-only", false, "only show the best results by mode")
)

func main() {
	log.SetPrefix("uringstat: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}
	exit(uringstat(os.Stdout, os.Stderr, flag.Arg(0), *flagSummaryOnly, *flagBestOnly))
}

// uringstat runs the analysis and returns the process exit code.
func uringstat(w, errw io.Writer, dir string, summaryOnly, bestOnly bool) int {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		fmt.Fprintf(errw, "uringstat: %s is not a directory\n", dir)
		return 1
	}

	t, err := benchtab.ScanDir(dir, errw)
	if err != nil {
		fmt.Fprintf(errw, "uringstat: %v\n", err)
		return 1
	}
	if t.Len() == 0 {
		fmt.Fprintf(errw, "uringstat: no valid results found in %s\n", dir)
		return 1
	}

	switch {
	case summaryOnly:
		benchreport.FormatSummary(w, t)
	case bestOnly:
		benchreport.FormatBest(w, t)
	default:
		benchreport.FormatComparison(w, t)
		benchreport.FormatSummary(w, t)
		benchreport.FormatBest(w, t)
	}
	return 0
}

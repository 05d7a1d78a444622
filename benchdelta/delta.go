// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchdelta computes comparison metrics between benchmark
// measurements: normalization fractions, percentage change against a
// baseline, and speedup ratios.
//
// All functions are total. Division by zero is never an error; each
// function defines its own degenerate value, chosen for how its
// consumers present the result.
package benchdelta

// Normalize returns v as a fraction of max. When max is zero the
// fraction is 0, so a comparison bar sized by Normalize simply
// renders empty.
func Normalize(v, max float64) float64 {
	if max == 0 {
		return 0
	}
	return v / max
}

// Percent returns the percentage change from baseline to candidate.
// The comparison is meaningful only against a positive baseline; ok
// reports whether it is defined. When ok is false callers must omit
// the comparison entirely rather than print 0% or an infinity.
func Percent(candidate, baseline float64) (pct float64, ok bool) {
	if baseline <= 0 {
		return 0, false
	}
	return (candidate - baseline) / baseline * 100, true
}

// Speedup returns candidate/baseline, or 0 when baseline is not
// positive. Unlike Percent, Speedup always yields a value: it feeds
// chart series that need one point per category, so an undefined
// ratio degrades to a 0 sentinel instead of being omitted.
func Speedup(candidate, baseline float64) float64 {
	if baseline <= 0 {
		return 0
	}
	return candidate / baseline
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/uringbench/perf/resultfmt"
)

var resultfmtModes = resultfmt.DisplayModes

const baselineMode = resultfmt.Baseline

// pad left-aligns s in a field of w display runes. Configuration
// labels contain the multibyte "×", so byte-counted padding would
// misalign columns.
func pad(s string, w int) string {
	n := utf8.RuneCountInString(s)
	if n >= w {
		return s
	}
	return s + strings.Repeat(" ", w-n)
}

// padLeft right-aligns s in a field of w display runes.
func padLeft(s string, w int) string {
	n := utf8.RuneCountInString(s)
	if n >= w {
		return s
	}
	return strings.Repeat(" ", w-n) + s
}

// commaf formats v with prec decimal places and thousands separators,
// e.g. 1234567.5 → "1,234,567.50".
func commaf(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}
	return sign + groupDigits(intPart) + frac
}

// commai formats n with thousands separators.
func commai(n int) string {
	return commaf(float64(n), 0)
}

func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

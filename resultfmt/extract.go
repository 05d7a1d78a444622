// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"regexp"
	"strconv"
)

// A Scalar is a float measurement and whether it was present in the
// source text. Consumers must treat a missing Scalar as "no data" and
// may substitute zero only when formatting output.
type Scalar struct {
	Value float64
	OK    bool
}

// Or returns the measured value, or def if the measurement is absent.
func (s Scalar) Or(def float64) float64 {
	if !s.OK {
		return def
	}
	return s.Value
}

// A Count is an integer measurement and whether it was present.
type Count struct {
	Value int
	OK    bool
}

// Or returns the counted value, or def if the count is absent.
func (c Count) Or(def int) int {
	if !c.OK {
		return def
	}
	return c.Value
}

// Metrics holds the measurements extracted from one result file.
// Every field is independently optional.
type Metrics struct {
	MsgRate        Scalar // sustained send rate, msg/s
	Throughput     Scalar // received throughput, MB/s
	ThroughputBits Scalar // received throughput, Mb/s
	Errors         Count
	Elapsed        Scalar // wall time, seconds
}

// Empty reports whether no field at all was extracted. An empty
// Metrics means the file contributed no data, which callers treat
// differently from a file that reported explicit zeros.
func (m Metrics) Empty() bool {
	return !m.MsgRate.OK && !m.Throughput.OK && !m.ThroughputBits.OK &&
		!m.Errors.OK && !m.Elapsed.OK
}

// The driver's report format. Each pattern is searched independently
// over the whole text; the throughput block is multi-line, since the
// "Throughput (received):" label and its Rate line may be separated
// by other output.
var (
	msgRateRe        = regexp.MustCompile(`Sent:\s+\d+\s+\(([\d.]+)\s+msg/s\)`)
	throughputRe     = regexp.MustCompile(`(?s)Throughput \(received\):.*?Rate:\s+([\d.]+)\s+MB/s`)
	throughputBitsRe = regexp.MustCompile(`(?s)Throughput \(received\):.*?Rate:.*?\(([\d.]+)\s+Mb/s\)`)
	errorsRe         = regexp.MustCompile(`Errors:\s+(\d+)`)
	elapsedRe        = regexp.MustCompile(`Elapsed time:\s+([\d.]+)\s+seconds`)
)

// Extract pulls every recognized measurement out of the text of one
// result file. Fields whose pattern does not match are left absent;
// Extract never substitutes defaults.
func Extract(data []byte) Metrics {
	var m Metrics
	m.MsgRate = findScalar(msgRateRe, data)
	m.Throughput = findScalar(throughputRe, data)
	m.ThroughputBits = findScalar(throughputBitsRe, data)
	m.Errors = findCount(errorsRe, data)
	m.Elapsed = findScalar(elapsedRe, data)
	return m
}

func findScalar(re *regexp.Regexp, data []byte) Scalar {
	sub := re.FindSubmatch(data)
	if sub == nil {
		return Scalar{}
	}
	v, err := strconv.ParseFloat(string(sub[1]), 64)
	if err != nil {
		// [\d.]+ admits junk like "1.2.3"; a value that does
		// not parse is as good as absent.
		return Scalar{}
	}
	return Scalar{Value: v, OK: true}
}

func findCount(re *regexp.Regexp, data []byte) Count {
	sub := re.FindSubmatch(data)
	if sub == nil {
		return Count{}
	}
	v, err := strconv.Atoi(string(sub[1]))
	if err != nil {
		return Count{}
	}
	return Count{Value: v, OK: true}
}

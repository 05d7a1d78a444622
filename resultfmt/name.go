// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resultfmt parses echo-server benchmark result files.
//
// A benchmark run is identified by its file name, which encodes the
// I/O mode under test and the run configuration, and measured by the
// free-text report the benchmark driver wrote into the file. The two
// halves are parsed independently: ParseName recovers the identity,
// Extract recovers the metrics. Neither invents values: a field that
// does not appear in the source text is absent, which is not the same
// as a measured zero.
package resultfmt

import (
	"fmt"
	"regexp"
	"strconv"
)

// A Key is the identity of a single benchmark run.
//
// Mode is an open string set; reports display only the three
// canonical modes (epoll, uring, multishot) but the parser preserves
// whatever token the file name carries.
type Key struct {
	Mode    string
	Threads int
	Conns   int
	MsgSize int // message payload size in bytes
}

// ConfigLabel returns the configuration label for k, such as
// "4t×100c". The label identifies a (threads, connections) pairing
// independent of mode and message size.
func (k Key) ConfigLabel() string {
	return fmt.Sprintf("%dt×%dc", k.Threads, k.Conns)
}

// TotalConns returns the total number of connections the run opened.
func (k Key) TotalConns() int {
	return k.Threads * k.Conns
}

// DisplayModes is the canonical order in which modes appear in
// reports and chart series. Storage accepts any mode token; only
// these three are rendered.
var DisplayModes = []string{"epoll", "uring", "multishot"}

// Baseline is the mode every percentage-delta and speedup comparison
// is measured against.
const Baseline = "epoll"

// Result file names look like uring_t4_c100_m512.txt.
var nameRe = regexp.MustCompile(`^(\w+)_t(\d+)_c(\d+)_m(\d+)\.txt$`)

// ParseName extracts a Key from a result file name of the form
// mode_tTHREADS_cCONNS_mMSGSIZE.txt. The boolean reports whether the
// name matched; a non-matching name is not an error, and callers are
// expected to skip such files.
func ParseName(name string) (Key, bool) {
	m := nameRe.FindStringSubmatch(name)
	if m == nil {
		return Key{}, false
	}
	threads, err1 := strconv.Atoi(m[2])
	conns, err2 := strconv.Atoi(m[3])
	msgSize, err3 := strconv.Atoi(m[4])
	if err1 != nil || err2 != nil || err3 != nil {
		// Digit runs long enough to overflow int are not
		// plausible run parameters. Treat like any other
		// non-matching name.
		return Key{}, false
	}
	return Key{Mode: m[1], Threads: threads, Conns: conns, MsgSize: msgSize}, true
}

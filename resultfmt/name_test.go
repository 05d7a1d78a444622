// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"fmt"
	"testing"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		want Key
		ok   bool
	}{
		{"uring_t4_c100_m512.txt", Key{"uring", 4, 100, 512}, true},
		{"epoll_t1_c1_m1.txt", Key{"epoll", 1, 1, 1}, true},
		{"multishot_t16_c2000_m4096.txt", Key{"multishot", 16, 2000, 4096}, true},
		// Mode is an open set; \w admits underscores, so a
		// composite mode token parses too.
		{"uring_sqpoll_t2_c50_m64.txt", Key{"uring_sqpoll", 2, 50, 64}, true},

		{"SUMMARY.txt", Key{}, false},
		{"uring_t4_c100_m512.log", Key{}, false},
		{"uring_t4_c100.txt", Key{}, false},
		{"t4_c100_m512.txt", Key{}, false},
		{"uring_tX_c100_m512.txt", Key{}, false},
		{"uring_t4_c100_m512.txt.bak", Key{}, false},
		{"", Key{}, false},
	}
	for _, test := range tests {
		got, ok := ParseName(test.name)
		if ok != test.ok || got != test.want {
			t.Errorf("ParseName(%q) = %v, %v, want %v, %v", test.name, got, ok, test.want, test.ok)
		}
	}
}

func TestKeyConfigLabel(t *testing.T) {
	k := Key{Mode: "uring", Threads: 4, Conns: 100, MsgSize: 512}
	if got, want := k.ConfigLabel(), "4t×100c"; got != want {
		t.Errorf("ConfigLabel = %q, want %q", got, want)
	}
	if got, want := k.TotalConns(), 400; got != want {
		t.Errorf("TotalConns = %d, want %d", got, want)
	}
}

func TestParseNameRoundTrip(t *testing.T) {
	// Every parsed key must reconstruct its source name exactly.
	names := []string{
		"epoll_t1_c100_m64.txt",
		"uring_t8_c500_m1024.txt",
		"multishot_t32_c1000_m16384.txt",
	}
	for _, name := range names {
		k, ok := ParseName(name)
		if !ok {
			t.Fatalf("ParseName(%q) did not match", name)
		}
		got := fmt.Sprintf("%s_t%d_c%d_m%d.txt", k.Mode, k.Threads, k.Conns, k.MsgSize)
		if got != name {
			t.Errorf("round trip of %q = %q", name, got)
		}
	}
}

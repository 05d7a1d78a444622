// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/uringbench/perf/resultfmt"
)

// ScanDir reads every benchmark result file in dir into a new Table.
//
// Only names ending in ".txt" are considered, and "SUMMARY.txt" is
// reserved by the benchmark driver and skipped without a parse
// attempt. Names that do not match the result naming pattern are
// skipped silently. A file that cannot be read gets one diagnostic
// line on errw and is skipped; it does not abort the scan. A file
// from which no metric at all could be extracted contributes nothing.
//
// Directory enumeration order does not matter: the Table imposes its
// own ordering, and a later duplicate of a triple simply replaces the
// earlier one.
func ScanDir(dir string, errw io.Writer) (*Table, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	t := New()
	for _, ent := range ents {
		name := ent.Name()
		if ent.IsDir() || !strings.HasSuffix(name, ".txt") || name == "SUMMARY.txt" {
			continue
		}
		key, ok := resultfmt.ParseName(name)
		if !ok {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(errw, "error reading %s: %v\n", name, err)
			continue
		}
		m := resultfmt.Extract(data)
		if m.Empty() {
			continue
		}
		t.Insert(key, m)
	}
	return t, nil
}

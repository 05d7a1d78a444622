// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"bytes"
	"image/color"
	"os"
	"strings"
	"testing"
)

func TestRenderNative(t *testing.T) {
	dir := t.TempDir()
	charts := Build(plotTable(), dir)

	var buf bytes.Buffer
	generated, failed := RenderNative(charts, false, &buf)
	if len(failed) != 0 {
		t.Fatalf("failures: %+v", failed)
	}
	if len(generated) != len(charts) {
		t.Fatalf("generated %d, want %d", len(generated), len(charts))
	}
	for _, path := range generated {
		fi, err := os.Stat(path)
		if err != nil {
			t.Errorf("missing output %s: %v", path, err)
			continue
		}
		if fi.Size() == 0 {
			t.Errorf("empty output %s", path)
		}
	}
	if got := strings.Count(buf.String(), "✓"); got != len(charts) {
		t.Errorf("%d ✓ lines, want %d", got, len(charts))
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor("#e74c3c"); got != (color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}) {
		t.Errorf("hexColor(#e74c3c) = %v", got)
	}
	if got := hexColor("bogus"); got != color.Color(color.Black) {
		t.Errorf("hexColor(bogus) = %v, want black", got)
	}
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab aggregates parsed benchmark runs into a table
// keyed by (message size, configuration, mode) for comparison
// reporting.
package benchtab

import (
	"sort"

	"github.com/uringbench/perf/resultfmt"
)

// A TripleKey addresses one cell of a Table: a message size, a
// configuration label such as "4t×100c", and an I/O mode.
type TripleKey struct {
	MsgSize int
	Config  string
	Mode    string
}

// An Entry is one benchmark run held by a Table: its identity plus
// the metrics extracted from its result file.
type Entry struct {
	Key     resultfmt.Key
	Metrics resultfmt.Metrics
}

// A Table holds at most one Entry per TripleKey. It is built once,
// fully, before any reporter reads it; Tables are not safe for
// concurrent mutation.
type Table struct {
	entries map[TripleKey]*Entry
}

// New returns an empty Table.
func New() *Table {
	return &Table{entries: make(map[TripleKey]*Entry)}
}

// Insert records the run (key, m) under key's triple. If the triple
// is already present the previous entry is replaced whole: later
// inserts win, and no field of the replaced entry survives the
// replacement.
func (t *Table) Insert(key resultfmt.Key, m resultfmt.Metrics) {
	tk := TripleKey{MsgSize: key.MsgSize, Config: key.ConfigLabel(), Mode: key.Mode}
	t.entries[tk] = &Entry{Key: key, Metrics: m}
}

// Lookup returns the entry for the given triple, if any.
func (t *Table) Lookup(msgSize int, config, mode string) (*Entry, bool) {
	e, ok := t.entries[TripleKey{MsgSize: msgSize, Config: config, Mode: mode}]
	return e, ok
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// MsgSizes returns every message size present, ascending.
func (t *Table) MsgSizes() []int {
	seen := make(map[int]bool)
	var sizes []int
	for tk := range t.entries {
		if !seen[tk.MsgSize] {
			seen[tk.MsgSize] = true
			sizes = append(sizes, tk.MsgSize)
		}
	}
	sort.Ints(sizes)
	return sizes
}

// Configs returns every configuration label observed for msgSize, in
// lexicographic order.
func (t *Table) Configs(msgSize int) []string {
	seen := make(map[string]bool)
	var configs []string
	for tk := range t.entries {
		if tk.MsgSize == msgSize && !seen[tk.Config] {
			seen[tk.Config] = true
			configs = append(configs, tk.Config)
		}
	}
	sort.Strings(configs)
	return configs
}

// AllConfigs returns every configuration label observed for any
// message size, in lexicographic order.
func (t *Table) AllConfigs() []string {
	seen := make(map[string]bool)
	var configs []string
	for tk := range t.entries {
		if !seen[tk.Config] {
			seen[tk.Config] = true
			configs = append(configs, tk.Config)
		}
	}
	sort.Strings(configs)
	return configs
}

// Modes returns every mode observed for the (msgSize, config) pair,
// in lexicographic order. This includes modes outside the canonical
// display set.
func (t *Table) Modes(msgSize int, config string) []string {
	var modes []string
	for tk := range t.entries {
		if tk.MsgSize == msgSize && tk.Config == config {
			modes = append(modes, tk.Mode)
		}
	}
	sort.Strings(modes)
	return modes
}

// Keys returns every triple present, sorted by mode, then
// configuration label, then message size. This is the row order of
// the summary table, and it is a user-visible contract: both string
// components sort lexicographically.
func (t *Table) Keys() []TripleKey {
	keys := make([]TripleKey, 0, len(t.entries))
	for tk := range t.entries {
		keys = append(keys, tk)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Mode != b.Mode {
			return a.Mode < b.Mode
		}
		if a.Config != b.Config {
			return a.Config < b.Config
		}
		return a.MsgSize < b.MsgSize
	})
	return keys
}

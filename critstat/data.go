// Copyright 2024 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critstat

import (
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/criterion-tools/critcmp/critfmt"
	"github.com/criterion-tools/critcmp/critunit"
)

// Markers prefixed to the speedup label of each comparable row.
const (
	improvementMark = "✅"
	regressionMark  = "❌"
	neutralMark     = "➖"
)

const missing = "N/A"

// A Comparison holds the parsed results of a baseline ("main") run
// and a candidate ("current") run.
type Comparison struct {
	MainPath, CurrentPath string

	Main, Current critfmt.ResultMap

	// AddGeoMean adds the geometric mean of all comparable
	// speedup ratios to the report summary.
	AddGeoMean bool
}

// A Report is the rendered form of a Comparison, ready for one of
// the Format functions.
type Report struct {
	MainPath, CurrentPath string
	Tables                []*Table
	Summary               Summary
}

// A Table groups the comparison rows of one category. Empty
// categories produce no Table.
type Table struct {
	Category string
	Rows     []*Row
}

// Title returns the table's display heading.
func (t *Table) Title() string { return Title(t.Category) }

// A Row compares one benchmark between the two runs.
type Row struct {
	Name string

	// MainTime and CurrentTime are the median time strings, or
	// "N/A" when the benchmark is missing from that run.
	MainTime, CurrentTime string

	// Ratio is mainNs/currentNs, or 0 when undefined.
	Ratio float64

	// Speedup is the rendered speedup cell, marker included.
	Speedup string

	// Change is +1 for an improvement, -1 for a regression, and 0
	// otherwise.
	Change int
}

// A Summary counts improvements, regressions, and similar results
// across all benchmarks present in both runs.
type Summary struct {
	Improvements, Regressions, Similar int

	// GeoMean is the geometric mean of all comparable speedup
	// ratios, or 0 when disabled or when there are none.
	GeoMean float64
}

// Total returns the number of benchmarks counted by the summary.
func (s Summary) Total() int {
	return s.Improvements + s.Regressions + s.Similar
}

// Report builds the per-category comparison tables and the summary.
func (c *Comparison) Report() *Report {
	buckets := make(map[string][]string)
	for _, name := range c.names() {
		cat := CategoryOf(name)
		buckets[cat] = append(buckets[cat], name)
	}

	r := &Report{MainPath: c.MainPath, CurrentPath: c.CurrentPath}
	var ratios []float64
	for _, cat := range Categories {
		if len(buckets[cat]) == 0 {
			continue
		}
		t := &Table{Category: cat}
		for _, name := range buckets[cat] {
			row := c.row(name)
			t.Rows = append(t.Rows, row)
			if row.MainTime == missing || row.CurrentTime == missing {
				// Only benchmarks present in both runs count
				// toward the summary.
				continue
			}
			switch row.Change {
			case +1:
				r.Summary.Improvements++
			case -1:
				r.Summary.Regressions++
			default:
				r.Summary.Similar++
			}
			if row.Ratio > 0 {
				ratios = append(ratios, row.Ratio)
			}
		}
		r.Tables = append(r.Tables, t)
	}
	if c.AddGeoMean && len(ratios) > 0 {
		r.Summary.GeoMean = stats.GeoMean(ratios)
	}
	return r
}

// names returns the union of benchmark names from both runs, sorted.
func (c *Comparison) names() []string {
	seen := make(map[string]bool)
	var names []string
	for name := range c.Main {
		seen[name] = true
		names = append(names, name)
	}
	for name := range c.Current {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// row builds the comparison row for one benchmark.
func (c *Comparison) row(name string) *Row {
	row := &Row{Name: name, MainTime: missing, CurrentTime: missing}
	if res, ok := c.Main[name]; ok {
		row.MainTime = res.Time
	}
	if res, ok := c.Current[name]; ok {
		row.CurrentTime = res.Time
	}
	if row.MainTime == missing || row.CurrentTime == missing {
		row.Speedup = missing
		return row
	}

	ratio, label := Speedup(critunit.Nanos(row.MainTime), critunit.Nanos(row.CurrentTime))
	row.Ratio = ratio
	row.Change = change(ratio)
	switch row.Change {
	case +1:
		row.Speedup = improvementMark + " " + label
	case -1:
		row.Speedup = regressionMark + " " + label
	default:
		row.Speedup = neutralMark + " " + label
	}
	return row
}

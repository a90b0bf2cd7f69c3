// Copyright 2024 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critstat

import (
	"math"
	"testing"

	"github.com/criterion-tools/critcmp/critfmt"
)

// resultMap builds a ResultMap from alternating name, time pairs.
func resultMap(pairs ...string) critfmt.ResultMap {
	m := make(critfmt.ResultMap)
	for i := 0; i < len(pairs); i += 2 {
		m[pairs[i]] = &critfmt.Result{Name: pairs[i], Time: pairs[i+1]}
	}
	return m
}

func TestReportBuckets(t *testing.T) {
	c := &Comparison{
		Main: resultMap(
			"prefix_fast_path/a/1", "10 ns",
			"evaluation/fib/10", "10 ns",
			"cold_start", "10 ns",
		),
		Current: resultMap(
			"evaluation/fib/10", "10 ns",
			"scalability/query/100", "10 ns",
			"zz_last", "10 ns",
		),
	}
	r := c.Report()

	// Every name from either run lands in exactly one table, and
	// tables follow category declaration order.
	seen := make(map[string]int)
	var cats []string
	for _, table := range r.Tables {
		if len(table.Rows) == 0 {
			t.Errorf("empty table for category %q", table.Category)
		}
		cats = append(cats, table.Category)
		for _, row := range table.Rows {
			seen[row.Name]++
		}
	}
	for _, name := range []string{
		"prefix_fast_path/a/1", "evaluation/fib/10", "cold_start",
		"scalability/query/100", "zz_last",
	} {
		if seen[name] != 1 {
			t.Errorf("%q appears in %d buckets, want 1", name, seen[name])
		}
	}
	if len(seen) != 5 {
		t.Errorf("report covers %d names, want 5", len(seen))
	}
	wantCats := []string{"prefix_fast_path", "evaluation", "scalability", "other"}
	if len(cats) != len(wantCats) {
		t.Fatalf("got categories %q, want %q", cats, wantCats)
	}
	for i := range cats {
		if cats[i] != wantCats[i] {
			t.Errorf("category %d is %q, want %q", i, cats[i], wantCats[i])
		}
	}
}

func TestReportRows(t *testing.T) {
	c := &Comparison{
		Main: resultMap(
			"faster_bench", "200 ns",
			"slower_bench", "100 ns",
			"same_bench", "100 ns",
			"main_only", "100 ns",
		),
		Current: resultMap(
			"faster_bench", "100 ns",
			"slower_bench", "200 ns",
			"same_bench", "100 ns",
			"current_only", "100 ns",
		),
	}
	r := c.Report()

	rows := make(map[string]*Row)
	for _, table := range r.Tables {
		for _, row := range table.Rows {
			rows[row.Name] = row
		}
	}

	test := func(name, speedup string, chg int) {
		t.Helper()
		row := rows[name]
		if row == nil {
			t.Errorf("no row for %q", name)
			return
		}
		if row.Speedup != speedup || row.Change != chg {
			t.Errorf("row %q = %q, change %d, want %q, change %d",
				name, row.Speedup, row.Change, speedup, chg)
		}
	}
	test("faster_bench", "✅ 2.00× faster", +1)
	test("slower_bench", "❌ 2.00× slower (regression)", -1)
	test("same_bench", "➖ Same", 0)
	test("main_only", "N/A", 0)
	test("current_only", "N/A", 0)

	if rows["main_only"].CurrentTime != "N/A" {
		t.Errorf("main_only current time = %q, want N/A", rows["main_only"].CurrentTime)
	}
	if rows["current_only"].MainTime != "N/A" {
		t.Errorf("current_only main time = %q, want N/A", rows["current_only"].MainTime)
	}

	s := r.Summary
	if s.Improvements != 1 || s.Regressions != 1 || s.Similar != 1 {
		t.Errorf("summary = %+v, want 1 improvement, 1 regression, 1 similar", s)
	}
	if s.Total() != 3 {
		t.Errorf("summary total = %d, want 3", s.Total())
	}
}

func TestReportUnparseableTime(t *testing.T) {
	// A benchmark present in both runs with an unparseable time has
	// ratio 0, which classifies as a regression and renders without
	// a label.
	c := &Comparison{
		Main:    resultMap("weird_bench", "garbage"),
		Current: resultMap("weird_bench", "100 ns"),
	}
	r := c.Report()
	row := r.Tables[0].Rows[0]
	if row.Speedup != "❌ N/A" || row.Change != -1 {
		t.Errorf("row = %q, change %d, want %q, change -1", row.Speedup, row.Change, "❌ N/A")
	}
	if r.Summary.Regressions != 1 {
		t.Errorf("regressions = %d, want 1", r.Summary.Regressions)
	}
}

func TestReportGeoMean(t *testing.T) {
	c := &Comparison{
		Main: resultMap(
			"a_bench", "200 ns",
			"b_bench", "100 ns",
		),
		Current: resultMap(
			"a_bench", "100 ns",
			"b_bench", "200 ns",
		),
		AddGeoMean: true,
	}
	r := c.Report()
	// Ratios are 2 and 0.5; their geometric mean is 1.
	if math.Abs(r.Summary.GeoMean-1) > 1e-12 {
		t.Errorf("geomean = %v, want 1", r.Summary.GeoMean)
	}

	c.AddGeoMean = false
	if gm := c.Report().Summary.GeoMean; gm != 0 {
		t.Errorf("geomean = %v, want 0 when disabled", gm)
	}
}

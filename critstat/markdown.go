// Copyright 2024 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critstat

import (
	"bytes"
	"fmt"
)

// FormatMarkdown appends a markdown rendering of the report to buf:
// a heading and table per category, then a summary with the overall
// counts and a trailing warning or success line.
func FormatMarkdown(buf *bytes.Buffer, r *Report) {
	fmt.Fprintf(buf, "# Branch Comparison Benchmark Report\n\n")
	fmt.Fprintf(buf, "**Main Branch Results**: `%s`\n", r.MainPath)
	fmt.Fprintf(buf, "**Current Branch Results**: `%s`\n\n", r.CurrentPath)

	for _, t := range r.Tables {
		fmt.Fprintf(buf, "## %s\n\n", t.Title())
		fmt.Fprintf(buf, "| Benchmark | Main Branch | Current Branch | Speedup |\n")
		fmt.Fprintf(buf, "|-----------|-------------|----------------|---------|\n")
		for _, row := range t.Rows {
			fmt.Fprintf(buf, "| `%s` | %s | %s | %s |\n",
				row.Name, row.MainTime, row.CurrentTime, row.Speedup)
		}
		fmt.Fprintf(buf, "\n")
	}

	s := r.Summary
	fmt.Fprintf(buf, "## Summary\n\n")
	fmt.Fprintf(buf, "- **Total benchmarks**: %d\n", s.Total())
	fmt.Fprintf(buf, "- **Improvements** (>10%% faster): %d %s\n", s.Improvements, improvementMark)
	fmt.Fprintf(buf, "- **Regressions** (>10%% slower): %d %s\n", s.Regressions, regressionMark)
	fmt.Fprintf(buf, "- **Similar** (±10%%): %d %s\n", s.Similar, neutralMark)
	if s.GeoMean > 0 {
		fmt.Fprintf(buf, "- **Geometric mean speedup**: %.2f×\n", s.GeoMean)
	}

	switch {
	case s.Regressions > 0:
		fmt.Fprintf(buf, "\n⚠️ **WARNING**: Performance regressions detected!\n")
	case s.Improvements > 0:
		fmt.Fprintf(buf, "\n🎉 **Success**: Performance improvements detected!\n")
	}
}

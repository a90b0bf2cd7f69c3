// Copyright 2024 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package critstat compares two sets of Criterion benchmark results
// and renders comparison reports.
package critstat

import "fmt"

// Classification thresholds, applied to the raw speedup ratio. Note
// the asymmetry with the displayed label: a ratio below 1 is labeled
// with the inverted "slower" factor but classified on the ratio
// itself.
const (
	improvementThreshold = 1.1
	regressionThreshold  = 0.9
)

// Speedup compares two times in nanoseconds and returns the speedup
// ratio of the current run over the main run along with a display
// label. If either time is zero or missing, the comparison is
// undefined and Speedup returns (0, "N/A").
func Speedup(mainNs, currentNs float64) (float64, string) {
	if mainNs == 0 || currentNs == 0 {
		return 0, "N/A"
	}
	ratio := mainNs / currentNs
	switch {
	case ratio > 1:
		return ratio, fmt.Sprintf("%.2f× faster", ratio)
	case ratio < 1:
		return ratio, fmt.Sprintf("%.2f× slower (regression)", 1/ratio)
	}
	return 1, "Same"
}

// change classifies a ratio as an improvement (+1), a regression
// (-1), or similar (0).
func change(ratio float64) int {
	switch {
	case ratio > improvementThreshold:
		return +1
	case ratio < regressionThreshold:
		return -1
	}
	return 0
}

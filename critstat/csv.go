// Copyright 2024 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critstat

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// FormatCSV appends a CSV rendering of the report to buf, one record
// per comparison row. Time strings are emitted verbatim; the ratio
// column is empty for incomparable rows.
func FormatCSV(buf *bytes.Buffer, r *Report) {
	w := csv.NewWriter(buf)
	w.Write([]string{"category", "benchmark", "main", "current", "ratio", "speedup"})
	for _, t := range r.Tables {
		for _, row := range t.Rows {
			ratio := ""
			if row.Ratio > 0 {
				ratio = strconv.FormatFloat(row.Ratio, 'g', -1, 64)
			}
			w.Write([]string{t.Category, row.Name, row.MainTime, row.CurrentTime, ratio, row.Speedup})
		}
	}
	w.Flush()
}

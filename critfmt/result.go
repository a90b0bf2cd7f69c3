// Copyright 2024 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import "sort"

// A Result is a single benchmark timing extracted from Criterion
// output. Its fields are verbatim slices of the input text; a Result
// is never modified after it is produced.
type Result struct {
	// Name is the benchmark identifier, either a slash-delimited
	// path such as "evaluation/fib/10" or a bare identifier.
	Name string

	// Time is the median measurement of the reported range,
	// for example "124.56 µs".
	Time string

	// FullTime is the entire bracketed low/median/high range,
	// for example "123.45 µs 124.56 µs 125.67 µs".
	FullTime string
}

// A ResultMap holds the results of one input file, keyed by benchmark
// name. If a name is reported more than once, the last report wins.
type ResultMap map[string]*Result

// Names returns the benchmark names in m in sorted order.
func (m ResultMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

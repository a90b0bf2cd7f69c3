// Copyright 2024 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package critunit converts Criterion time strings to a common unit.
package critunit

import (
	"regexp"
	"strconv"
)

// toNanos gives the nanosecond multiplier for each time unit
// Criterion emits. Both spellings of microseconds occur in practice.
var toNanos = map[string]float64{
	"ns": 1,
	"µs": 1e3,
	"us": 1e3,
	"ms": 1e6,
	"s":  1e9,
}

var timeRe = regexp.MustCompile(`^([\d.]+)\s*(\S+)`)

// Nanos converts a time string such as "123.45 µs" to nanoseconds.
// An unrecognized unit is passed through with a multiplier of 1. A
// string that does not begin with a number yields 0, which callers
// treat the same as a missing measurement.
func Nanos(s string) float64 {
	m := timeRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	val, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	mult, ok := toNanos[m[2]]
	if !ok {
		mult = 1
	}
	return val * mult
}

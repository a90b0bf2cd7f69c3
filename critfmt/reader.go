// Copyright 2024 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package critfmt reads the console output format of the Criterion
// benchmarking harness.
package critfmt

import (
	"io"
	"regexp"
	"strings"
)

// timeRe matches a benchmark name followed by its reported time
// range. Criterion wraps long benchmark names onto their own line
// with the "time:" report indented on the next, so the separator must
// be allowed to cross newlines.
var timeRe = regexp.MustCompile(`(\S+/\S+/\d+|[\w]+)\s+time:\s+\[([^\]]+)\]`)

// A Reader extracts benchmark results from Criterion's console
// output.
//
// Its API is modeled on bufio.Scanner: call Scan to advance to the
// next result, Result to retrieve it, and Err to check for I/O errors
// once Scan returns false. The entire input is read on the first call
// to Scan.
type Reader struct {
	src io.Reader
	err error

	matches [][]string
	pos     int
	started bool
}

// NewReader constructs a reader extracting benchmark results from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{src: r, pos: -1}
}

// Scan advances the reader to the next result and reports whether one
// was found. Matches whose time range has fewer than two fields carry
// no median and are skipped.
func (r *Reader) Scan() bool {
	if !r.started {
		r.started = true
		data, err := io.ReadAll(r.src)
		if err != nil {
			r.err = err
			return false
		}
		r.matches = timeRe.FindAllStringSubmatch(string(data), -1)
	}
	if r.err != nil {
		return false
	}
	for r.pos+1 < len(r.matches) {
		r.pos++
		if len(strings.Fields(r.matches[r.pos][2])) >= 2 {
			return true
		}
	}
	return false
}

// Result returns the result that was just read by Scan, or nil if
// Scan has not returned true.
func (r *Reader) Result() *Result {
	if r.pos < 0 || r.pos >= len(r.matches) {
		return nil
	}
	m := r.matches[r.pos]
	return &Result{
		Name:     m[1],
		Time:     medianOf(m[2]),
		FullTime: m[2],
	}
}

// Err returns the first I/O error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// medianOf extracts the median measurement from a low/median/high
// range. Criterion reports each measurement as a value-unit pair
// ("10.2 µs"); some harness configurations attach the unit directly
// ("10.2µs"), in which case each field stands on its own.
func medianOf(rng string) string {
	f := strings.Fields(rng)
	if len(f) >= 4 && !startsDigit(f[1]) {
		return f[2] + " " + f[3]
	}
	return f[1]
}

func startsDigit(s string) bool {
	return len(s) > 0 && '0' <= s[0] && s[0] <= '9'
}

// ParseResults reads all results from r into a ResultMap.
func ParseResults(r io.Reader) (ResultMap, error) {
	m := make(ResultMap)
	rd := NewReader(r)
	for rd.Scan() {
		res := rd.Result()
		m[res.Name] = res
	}
	return m, rd.Err()
}

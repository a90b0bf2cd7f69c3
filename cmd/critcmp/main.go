// Copyright 2024 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Critcmp compares Criterion benchmark results between two branches.
//
// Usage:
//
//	critcmp [options] main_results.txt current_results.txt
//
// Each input file should contain the captured console output of a
// Criterion benchmark run. Critcmp extracts the reported time range
// of every benchmark, takes the median, and prints a markdown report
// to standard output comparing the candidate ("current") run against
// the baseline ("main") run, grouped by benchmark category.
//
// A benchmark is flagged as an improvement when the current run is
// more than 10% faster than main, and as a regression when it is
// more than 10% slower. Benchmarks present in only one file are
// listed with an N/A speedup and excluded from the summary counts.
// The report ends with a warning line if any regressions were found.
//
// The -html and -csv options select alternative output formats. The
// -geomean option adds the geometric mean of all comparable speedup
// ratios to the summary.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/criterion-tools/critcmp/critfmt"
	"github.com/criterion-tools/critcmp/critstat"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: critcmp [options] main_results.txt current_results.txt\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(1)
}

var (
	flagHTML    = flag.Bool("html", false, "print the report as HTML")
	flagCSV     = flag.Bool("csv", false, "print the report in CSV form")
	flagGeomean = flag.Bool("geomean", false, "add the geometric mean of all speedup ratios to the summary")
)

// A format renders a comparison report.
type format func(*bytes.Buffer, *critstat.Report)

func main() {
	log.SetPrefix("critcmp: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
	}

	f := format(critstat.FormatMarkdown)
	switch {
	case *flagHTML:
		f = critstat.FormatHTML
	case *flagCSV:
		f = critstat.FormatCSV
	}

	var buf bytes.Buffer
	if err := critcmp(&buf, f, flag.Arg(0), flag.Arg(1), *flagGeomean); err != nil {
		log.Fatal(err)
	}
	os.Stdout.Write(buf.Bytes())
}

// critcmp reads both result files and renders the comparison report
// into buf using f.
func critcmp(buf *bytes.Buffer, f format, mainPath, currentPath string, geomean bool) error {
	mainResults, err := critfmt.ReadFile(mainPath)
	if err != nil {
		return err
	}
	currentResults, err := critfmt.ReadFile(currentPath)
	if err != nil {
		return err
	}

	c := &critstat.Comparison{
		MainPath:    mainPath,
		CurrentPath: currentPath,
		Main:        mainResults,
		Current:     currentResults,
		AddGeoMean:  geomean,
	}
	f(buf, c.Report())
	return nil
}

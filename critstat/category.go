// Copyright 2024 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critstat

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Categories lists the benchmark categories in declaration order. A
// benchmark belongs to the first category whose tag is a substring of
// its name; names matching no tag fall through to "other", so every
// name lands in exactly one category.
var Categories = []string{
	"prefix_fast_path",
	"bulk_insertion",
	"cow_clone",
	"pattern_matching",
	"rule_matching",
	"type_lookup",
	"evaluation",
	"scalability",
	"other",
}

// CategoryOf returns the category of the named benchmark.
func CategoryOf(name string) string {
	for _, c := range Categories[:len(Categories)-1] {
		if strings.Contains(name, c) {
			return c
		}
	}
	return "other"
}

var titleCaser = cases.Title(language.English)

// Title returns the display heading for a category tag, for example
// "Prefix Fast Path" for "prefix_fast_path".
func Title(category string) string {
	return titleCaser.String(strings.ReplaceAll(category, "_", " "))
}

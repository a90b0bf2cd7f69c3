// Copyright 2024 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critstat

import (
	"bytes"
	"html/template"
)

var htmlTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Branch Comparison Benchmark Report</title>
<style>
.critcmp { border-collapse: collapse; }
.critcmp th, .critcmp td { border: 1px solid #ccc; padding: 0.2em 0.6em; }
.critcmp td:nth-child(1n+2) { text-align: right; }
.critcmp .better td:nth-child(4) { font-weight: bold; }
.critcmp .worse td:nth-child(4) { font-weight: bold; color: #c00; }
</style>
</head>
<body>
<h1>Branch Comparison Benchmark Report</h1>
<p><b>Main Branch Results</b>: <code>{{.MainPath}}</code><br>
<b>Current Branch Results</b>: <code>{{.CurrentPath}}</code></p>
{{range .Tables -}}
<h2>{{.Title}}</h2>
<table class='critcmp'>
<tr><th>Benchmark<th>Main Branch<th>Current Branch<th>Speedup
{{range .Rows -}}
<tr class='{{if eq .Change 1}}better{{else if eq .Change -1}}worse{{else}}unchanged{{end}}'><td><code>{{.Name}}</code><td>{{.MainTime}}<td>{{.CurrentTime}}<td>{{.Speedup}}
{{end -}}
</table>
{{end -}}
<h2>Summary</h2>
<ul>
<li><b>Total benchmarks</b>: {{.Summary.Total}}
<li><b>Improvements</b> (&gt;10% faster): {{.Summary.Improvements}} ✅
<li><b>Regressions</b> (&gt;10% slower): {{.Summary.Regressions}} ❌
<li><b>Similar</b> (±10%): {{.Summary.Similar}} ➖
{{if gt .Summary.GeoMean 0.0 -}}
<li><b>Geometric mean speedup</b>: {{printf "%.2f" .Summary.GeoMean}}×
{{end -}}
</ul>
{{if gt .Summary.Regressions 0 -}}
<p>⚠️ <b>WARNING</b>: Performance regressions detected!</p>
{{else if gt .Summary.Improvements 0 -}}
<p>🎉 <b>Success</b>: Performance improvements detected!</p>
{{end -}}
</body>
</html>
`))

// FormatHTML appends an HTML rendering of the report to buf.
func FormatHTML(buf *bytes.Buffer, r *Report) {
	err := htmlTemplate.Execute(buf, r)
	if err != nil {
		// Only possible errors here are the template not matching
		// the data structure. Don't make the caller check - it's
		// our fault.
		panic(err)
	}
}

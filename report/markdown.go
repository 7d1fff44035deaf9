// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nailbench/benchreport/internal/mdtab"
	"github.com/nailbench/benchreport/timeunit"
)

var (
	// Title is the document heading.
	Title = "Benchmark Results"

	// Note follows the title.
	Note = "*Generated automatically from criterion benchmark results*"
)

// Format writes the Markdown report for tables to w. With no tables,
// the report consists of only the title and note.
func Format(w io.Writer, tables []*Table) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n%s\n\n", Title, Note)
	for _, t := range tables {
		if err := t.format(&buf); err != nil {
			return err
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (t *Table) format(buf *bytes.Buffer) error {
	fmt.Fprintf(buf, "## %s Performance\n\n", t.Category)

	var tab mdtab.Table
	tab.Row().Cell("Library")
	for i, p := range t.Params {
		tab.Cell(ParamLabel(p))
		tab.SetAlign(i+1, mdtab.Right)
	}
	for _, v := range t.Variants {
		tab.Row().Cell("**" + v + "**")
		for _, p := range t.Params {
			if est, ok := t.Estimate(v, p); ok {
				tab.Cell(timeunit.Format(est))
			} else {
				tab.Cell("-")
			}
		}
	}
	if err := tab.Format(buf); err != nil {
		return err
	}

	fmt.Fprintf(buf, "\n### %s Performance Summary\n\n", t.Category)
	for _, f := range t.Fastest {
		fmt.Fprintf(buf, "- **%s**: Fastest is **%s** (%s)\n", ParamLabel(f.Param), f.Variant, timeunit.Format(f.Estimate))
	}
	if g := t.Geomean; g != nil {
		fmt.Fprintf(buf, "- **Overall**: Fastest geometric mean is **%s** (%s)\n", g.Variant, timeunit.Format(g.Estimate))
	}
	buf.WriteString("\n")
	return nil
}

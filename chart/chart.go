// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws report tables as grouped bar charts.
package chart

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/nailbench/benchreport/report"
	"github.com/nailbench/benchreport/timeunit"
)

// Formats lists the image formats Write supports.
var Formats = []string{"png", "svg"}

const barWidth = vg.Length(12)

// Plot returns a bar chart of t with one group of bars per parameter
// and one bar series per variant. Missing measurements draw as
// zero-height bars. All bars share the unit chosen for the slowest
// measurement.
func Plot(t *report.Table) (*plot.Plot, error) {
	var slowest float64
	for _, v := range t.Variants {
		for _, p := range t.Params {
			if est, ok := t.Estimate(v, p); ok && est > slowest {
				slowest = est
			}
		}
	}
	scale := timeunit.Choose(slowest)

	pl := plot.New()
	pl.Title.Text = t.Category + " Performance"
	pl.Y.Label.Text = "time (" + scale.Unit + ")"
	pl.Legend.Top = true

	n := len(t.Variants)
	for i, v := range t.Variants {
		values := make(plotter.Values, len(t.Params))
		for j, p := range t.Params {
			if est, ok := t.Estimate(v, p); ok {
				values[j] = est / scale.Factor
			}
		}
		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = vg.Length(float64(i)-float64(n-1)/2) * barWidth
		pl.Add(bars)
		pl.Legend.Add(v, bars)
	}

	labels := make([]string, len(t.Params))
	for i, p := range t.Params {
		// Code spans mean nothing on an axis.
		labels[i] = strings.Trim(report.ParamLabel(p), "`")
	}
	pl.NominalX(labels...)
	return pl, nil
}

// Write renders t as an image in the given format ("png" or "svg")
// and writes it to w.
func Write(w io.Writer, t *report.Table, format string) error {
	if !validFormat(format) {
		return fmt.Errorf("unsupported chart format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
	pl, err := Plot(t)
	if err != nil {
		return err
	}
	width := vg.Length(2+len(t.Params)) * vg.Inch
	if width < 6*vg.Inch {
		width = 6 * vg.Inch
	}
	wt, err := pl.WriterTo(width, 4*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func validFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// FileName returns the file name for the chart of category in the
// given format, for example "addition.png".
func FileName(category, format string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '-'
	}, category)
	return name + "." + format
}

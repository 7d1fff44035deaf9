// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Table is the comparison of all variants of one category.
type Table struct {
	Category string

	// Params are the parameter labels observed across all
	// variants, in column order.
	Params []string

	// Variants are the variant names, in sorted order.
	Variants []string

	// Fastest has one entry per parameter in Params, in the same
	// order, naming the variant with the smallest estimate.
	Fastest []Fastest

	// Geomean is the variant with the smallest geometric mean
	// over all parameters, considering only variants measured at
	// every parameter. It is nil if the table has fewer than two
	// parameters or no variant qualifies.
	Geomean *Fastest

	cells map[string]map[string]float64 // variant → param → estimate
}

// A Fastest names the best variant for a parameter.
type Fastest struct {
	Param    string // "" for Table.Geomean
	Variant  string
	Estimate float64
}

// Estimate returns the estimate for variant at param, if any.
func (t *Table) Estimate(variant, param string) (float64, bool) {
	est, ok := t.cells[variant][param]
	return est, ok
}

// Tables returns one Table per category, in category order.
func (c *Collection) Tables() []*Table {
	var tables []*Table
	for _, cat := range c.Categories() {
		if t := newTable(cat, c.cats[cat]); t != nil {
			tables = append(tables, t)
		}
	}
	return tables
}

// newTable builds the table for one category. It returns nil if the
// category has no data.
func newTable(cat string, cells map[string]map[string]float64) *Table {
	t := &Table{Category: cat, cells: cells}

	seen := make(map[string]bool)
	for variant, params := range cells {
		if len(params) == 0 {
			continue
		}
		t.Variants = append(t.Variants, variant)
		for p := range params {
			if !seen[p] {
				seen[p] = true
				t.Params = append(t.Params, p)
			}
		}
	}
	if len(t.Variants) == 0 {
		return nil
	}
	sort.Strings(t.Variants)
	SortParams(t.Params)

	for _, p := range t.Params {
		if f, ok := t.fastest(p); ok {
			t.Fastest = append(t.Fastest, f)
		}
	}
	if len(t.Params) >= 2 {
		t.Geomean = t.fastestGeomean()
	}
	return t
}

// fastest finds the variant with the smallest estimate at param.
// Ties go to the variant that sorts first.
func (t *Table) fastest(param string) (Fastest, bool) {
	best := Fastest{Param: param, Estimate: math.Inf(1)}
	found := false
	for _, v := range t.Variants {
		est, ok := t.cells[v][param]
		if !ok {
			continue
		}
		if !found || est < best.Estimate {
			best.Variant, best.Estimate = v, est
			found = true
		}
	}
	return best, found
}

func (t *Table) fastestGeomean() *Fastest {
	var best *Fastest
	vals := make([]float64, 0, len(t.Params))
	for _, v := range t.Variants {
		vals = vals[:0]
		for _, p := range t.Params {
			est, ok := t.cells[v][p]
			if !ok {
				break
			}
			vals = append(vals, est)
		}
		if len(vals) != len(t.Params) {
			continue
		}
		// GeoMean is NaN if any estimate is zero.
		gm := stats.GeoMean(vals)
		if math.IsNaN(gm) {
			continue
		}
		if best == nil || gm < best.Estimate {
			best = &Fastest{Variant: v, Estimate: gm}
		}
	}
	return best
}

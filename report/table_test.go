// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func collect(results ...*sample) *Collection {
	c := new(Collection)
	for _, r := range results {
		c.Add(res(r.name, r.est))
	}
	return c
}

type sample struct {
	name string
	est  float64
}

func TestFastest(t *testing.T) {
	c := collect(
		&sample{"Addition/A/64", 50e6},
		&sample{"Addition/B/64", 30e6},
		&sample{"Addition/C/128", 10e6},
	)
	tables := c.Tables()
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	tab := tables[0]
	want := []Fastest{
		{Param: "64", Variant: "B", Estimate: 30e6},
		{Param: "128", Variant: "C", Estimate: 10e6},
	}
	if diff := cmp.Diff(want, tab.Fastest); diff != "" {
		t.Errorf("fastest mismatch (-want +got):\n%s", diff)
	}
	if _, ok := tab.Estimate("C", "64"); ok {
		t.Error("C has an estimate at 64")
	}
	// No variant has data at both parameters.
	if tab.Geomean != nil {
		t.Errorf("want no geomean, got %+v", tab.Geomean)
	}
}

func TestFastestTie(t *testing.T) {
	c := collect(
		&sample{"Addition/zeta/64", 7},
		&sample{"Addition/alpha/64", 7},
	)
	tab := c.Tables()[0]
	if got := tab.Fastest[0].Variant; got != "alpha" {
		t.Errorf("tie went to %s, want alpha", got)
	}
}

func TestGeomean(t *testing.T) {
	c := collect(
		&sample{"Addition/a/1", 100},
		&sample{"Addition/a/2", 400},
		&sample{"Addition/b/1", 150},
		&sample{"Addition/b/2", 150},
		// c is fastest at 1 but incomplete.
		&sample{"Addition/c/1", 1},
		// d has a zero estimate, which has no geometric mean.
		&sample{"Addition/d/1", 0},
		&sample{"Addition/d/2", 1},
	)
	tab := c.Tables()[0]
	want := &Fastest{Variant: "b", Estimate: 150}
	approx := cmpopts.EquateApprox(0, 1e-9)
	if diff := cmp.Diff(want, tab.Geomean, approx); diff != "" {
		t.Errorf("geomean mismatch (-want +got):\n%s", diff)
	}
	if got := tab.Fastest[0]; got.Variant != "d" || got.Estimate != 0 {
		t.Errorf("fastest at 1 = %+v, want d at 0", got)
	}
}

func TestTableOrder(t *testing.T) {
	c := collect(
		&sample{"Multiplication/rug/128", 1},
		&sample{"Multiplication/nail/2", 1},
		&sample{"Multiplication/num-bigint/64", 1},
		&sample{"Multiplication/nail/8", 1},
		&sample{"Addition/nail/8", math.MaxFloat64},
	)
	tables := c.Tables()
	var cats []string
	for _, tab := range tables {
		cats = append(cats, tab.Category)
	}
	if diff := cmp.Diff([]string{"Addition", "Multiplication"}, cats); diff != "" {
		t.Errorf("category order mismatch (-want +got):\n%s", diff)
	}
	mul := tables[1]
	if diff := cmp.Diff([]string{"2", "8", "64", "128"}, mul.Params); diff != "" {
		t.Errorf("param order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"nail", "num-bigint", "rug"}, mul.Variants); diff != "" {
		t.Errorf("variant order mismatch (-want +got):\n%s", diff)
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report groups benchmark measurements by operation and
// renders them as a Markdown comparison report.
//
// A Collection accumulates critfmt Results. Each result's group
// label is classified into an operation category by an ordered list
// of Rules; within a category, results are keyed by variant (the
// implementation being measured) and parameter (such as an operand
// bit width). Collection.Tables turns the accumulated data into one
// Table per category, and Format writes those tables as a document.
package report

import (
	"sort"
	"strings"

	"github.com/nailbench/benchreport/critfmt"
)

// A Rule maps benchmark group labels containing Pattern to an
// operation category. If Skip is set, matching groups are left out
// of the report entirely.
type Rule struct {
	Pattern  string
	Category string
	Skip     bool
}

// DefaultRules classifies the addition and multiplication groups of
// a big integer benchmark suite and leaves out modular arithmetic.
var DefaultRules = []Rule{
	{Pattern: "Addition", Category: "Addition"},
	{Pattern: "Multiplication", Category: "Multiplication"},
	{Pattern: "Modular", Skip: true},
}

// Classify returns the category of a benchmark group label. The first
// rule whose pattern is a substring of group decides. ok is false if
// that rule is a skip rule or no rule matches.
func Classify(rules []Rule, group string) (category string, ok bool) {
	for _, r := range rules {
		if !strings.Contains(group, r.Pattern) {
			continue
		}
		if r.Skip {
			return "", false
		}
		return r.Category, true
	}
	return "", false
}

// A Collection is a collection of benchmark results grouped by
// category, variant and parameter.
//
// The zero value is an empty Collection using DefaultRules.
type Collection struct {
	// Rules classifies group labels into categories. If nil, it
	// defaults to DefaultRules.
	Rules []Rule

	// cats maps category → variant → parameter → estimate.
	cats map[string]map[string]map[string]float64
}

// Add adds res to the collection and reports whether it was
// classified into a category. A later result for the same category,
// variant and parameter replaces an earlier one.
func (c *Collection) Add(res *critfmt.Result) bool {
	rules := c.Rules
	if rules == nil {
		rules = DefaultRules
	}
	cat, ok := Classify(rules, res.Group)
	if !ok {
		return false
	}

	if c.cats == nil {
		c.cats = make(map[string]map[string]map[string]float64)
	}
	variants := c.cats[cat]
	if variants == nil {
		variants = make(map[string]map[string]float64)
		c.cats[cat] = variants
	}
	params := variants[res.Variant]
	if params == nil {
		params = make(map[string]float64)
		variants[res.Variant] = params
	}
	params[res.Param] = res.Estimate
	return true
}

// AddReader adds every result read from r and returns r's I/O error,
// if any.
func (c *Collection) AddReader(r *critfmt.Reader) error {
	for r.Scan() {
		c.Add(r.Result())
	}
	return r.Err()
}

// Categories returns the categories that have at least one result,
// in sorted order.
func (c *Collection) Categories() []string {
	cats := make([]string, 0, len(c.cats))
	for cat := range c.cats {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

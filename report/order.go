// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"sort"
	"strconv"
)

// compareParams orders parameter labels. Integer labels sort
// numerically and before all other labels, which sort lexically.
func compareParams(a, b string) int {
	aa, erra := strconv.ParseInt(a, 10, 64)
	bb, errb := strconv.ParseInt(b, 10, 64)
	if erra == nil && errb == nil {
		if aa < bb {
			return -1
		}
		if aa > bb {
			return 1
		}
		// Equal values spelled differently, like "8" and "08",
		// fall through to the lexical comparison.
	} else if erra == nil {
		return -1
	} else if errb == nil {
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// SortParams sorts parameter labels in report column order.
func SortParams(params []string) {
	sort.Slice(params, func(i, j int) bool {
		return compareParams(params[i], params[j]) < 0
	})
}

// ParamLabel returns the column heading for parameter p. Integer
// parameters are bit widths. Other labels are shown as code spans,
// so the bare "-" used for an absent parameter cannot collide with a
// real label.
func ParamLabel(p string) string {
	if p == "" {
		return "-"
	}
	if _, err := strconv.ParseInt(p, 10, 64); err == nil {
		return p + "-bit"
	}
	return "`" + p + "`"
}

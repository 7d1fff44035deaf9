// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtab

import (
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	check := func(s string, a Align, w int, want string) {
		t.Helper()
		got := a.pad(s, w)
		if got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}

	check("abc", Left, 6, "abc   ")
	check("abc", Center, 6, " abc  ")
	check("abc", Center, 7, "  abc  ")
	check("abc", Right, 6, "   abc")
	check("abcdef", Right, 3, "abcdef")
	check("1.00 μs", Right, 9, "  1.00 μs")
}

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var gotBuf strings.Builder
		if err := tab.Format(&gotBuf); err != nil {
			t.Fatal(err)
		}
		got := gotBuf.String()
		if want != got {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
		// Reset tab.
		tab = Table{}
	}

	// Empty table.
	check("")

	// Basic test. Narrow columns are widened to three characters.
	tab.Row().Cell("a").Cell("b")
	tab.Row().Cell("c").Cell("d")
	check("" +
		"| a   | b   |\n" +
		"|-----|-----|\n" +
		"| c   | d   |\n")

	// Cell padding.
	tab.Row().Cell("name").Cell("x")
	tab.Row().Cell("longer").Cell("y")
	check("" +
		"| name   | x   |\n" +
		"|--------|-----|\n" +
		"| longer | y   |\n")

	// Column alignment.
	tab.Row().Cell("Library").Cell("64-bit").Cell("mid")
	tab.Row().Cell("**a**").Cell("1.00 μs").Cell("x")
	tab.SetAlign(1, Right)
	tab.SetAlign(2, Center)
	check("" +
		"| Library |  64-bit | mid |\n" +
		"|---------|--------:|:---:|\n" +
		"| **a**   | 1.00 μs |  x  |\n")

	// Missing cell in the middle and at the end.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("d").Col(2).Cell("f")
	tab.Row().Cell("g")
	check("" +
		"| a   | b   | c   |\n" +
		"|-----|-----|-----|\n" +
		"| d   |     | f   |\n" +
		"| g   |     |     |\n")

	// Header only.
	tab.Row().Cell("only")
	check("" +
		"| only |\n" +
		"|------|\n")

	// Pipes are escaped.
	tab.Row().Cell("a|b")
	check("" +
		"| a\\|b |\n" +
		"|------|\n")
}

func TestColPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("moving to an earlier column did not panic")
		}
	}()
	var tab Table
	tab.Row().Cell("a").Cell("b").Col(0)
}

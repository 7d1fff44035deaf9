// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBenchchart(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	input := filepath.Join("..", "benchreport", "testdata", "results.json")

	got, err := benchchart(input, dir, "svg")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "addition.svg"),
		filepath.Join(dir, "multiplication.svg"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("written files mismatch (-want +got):\n%s", diff)
	}
	for _, path := range want {
		fi, err := os.Stat(path)
		if err != nil {
			t.Error(err)
			continue
		}
		if fi.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}

func TestBenchchartErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := benchchart(filepath.Join(dir, "missing.json"), dir, "png"); err == nil {
		t.Error("missing input accepted")
	}
	input := filepath.Join("..", "benchreport", "testdata", "results.json")
	if _, err := benchchart(input, dir, "bmp"); err == nil {
		t.Error("bmp format accepted")
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchchart draws criterion benchmark results as bar charts, one
// chart per operation, using the same grouping as benchreport.
//
// Usage:
//
//	benchchart [-format png|svg] benchmark_results.json outdir
//
// Each chart is written to outdir/<operation>.<format>, for example
// outdir/addition.png. outdir is created if needed.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/nailbench/benchreport/chart"
	"github.com/nailbench/benchreport/critfmt"
	"github.com/nailbench/benchreport/report"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: benchchart [options] benchmark_results.json outdir\n\nOptions:\n")
	flag.PrintDefaults()
}

var flagFormat = flag.String("format", "png", "image `format`: png or svg")

func main() {
	log.SetPrefix("benchchart: ")
	log.SetFlags(0)

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	files, err := benchchart(flag.Arg(0), flag.Arg(1), *flagFormat)
	if err != nil {
		log.Fatal(err)
	}
	for _, f := range files {
		fmt.Println(f)
	}
}

// benchchart reads the results in path and writes one chart per
// report table into dir. It returns the paths written.
func benchchart(path, dir, format string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c report.Collection
	if err := c.AddReader(critfmt.NewReader(f, path)); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	var written []string
	for _, t := range c.Tables() {
		var buf bytes.Buffer
		if err := chart.Write(&buf, t, format); err != nil {
			return written, fmt.Errorf("%s: %w", t.Category, err)
		}
		out := filepath.Join(dir, chart.FileName(t.Category, format))
		if err := writeFile(out, &buf); err != nil {
			return written, err
		}
		written = append(written, out)
	}
	return written, nil
}

func writeFile(name string, r io.Reader) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

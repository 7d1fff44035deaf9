// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchreport converts criterion benchmark results into a Markdown
// comparison report.
//
// Usage:
//
//	benchreport benchmark_results.json
//
// The input is the JSON Lines message stream criterion writes with
// --message-format=json, for example:
//
//	cargo criterion --message-format=json > benchmark_results.json
//
// Each "benchmark-complete" message contributes its typical time
// estimate. The benchmark id is read as group/variant/parameter:
// the group is classified into an operation (Addition or
// Multiplication; Modular groups and unrecognized groups are left
// out), the variant is the library being measured, and the parameter
// is the operand bit width. Other messages and malformed lines are
// ignored.
//
// The report, written to standard output, has one section per
// operation with a table of libraries by bit width and a summary
// naming the fastest library at each width:
//
//	## Addition Performance
//
//	| Library        |  64-bit |   128-bit |
//	|----------------|--------:|----------:|
//	| **nail**       | 1.50 μs |   2.50 μs |
//	| **num-bigint** | 1.20 μs |   3.00 μs |
//
//	### Addition Performance Summary
//
//	- **64-bit**: Fastest is **num-bigint** (1.20 μs)
//	- **128-bit**: Fastest is **nail** (2.50 μs)
//	- **Overall**: Fastest geometric mean is **num-bigint** (1.90 μs)
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nailbench/benchreport/critfmt"
	"github.com/nailbench/benchreport/report"
)

// errUsage reports a command line the usage message has already
// been printed for.
var errUsage = errors.New("usage")

func main() {
	log.SetPrefix("benchreport: ")
	log.SetFlags(0)

	if err := benchreport(os.Stdout, os.Args[1:]); err != nil {
		if err != errUsage {
			log.Print(err)
		}
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: benchreport <benchmark_results.json>\n")
}

// benchreport writes the report for the single input path in args to
// w. The argument is taken literally, so paths may begin with "-".
func benchreport(w io.Writer, args []string) error {
	if len(args) != 1 {
		usage(w)
		return errUsage
	}
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var c report.Collection
	if err := c.AddReader(critfmt.NewReader(f, path)); err != nil {
		return err
	}

	// Render fully before writing so a failure leaves no partial
	// report behind.
	var buf bytes.Buffer
	if err := report.Format(&buf, c.Tables()); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

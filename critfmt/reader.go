// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package critfmt reads the JSON Lines benchmark stream emitted by
// criterion's machine-readable message format.
//
// Each input line is an independent JSON object. Only lines whose
// "reason" is "benchmark-complete" describe a finished measurement;
// of those, the "id" field carries the slash-separated benchmark name
// and "typical.estimate" the representative time in nanoseconds.
// Every other line is skipped without comment.
package critfmt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

// CompleteReason is the "reason" value of a finished measurement.
const CompleteReason = "benchmark-complete"

// maxLine is the longest input line the Reader decodes. Longer lines
// are consumed and skipped like any other malformed line.
const maxLine = 1 << 20

// A Reader reads criterion benchmark messages.
//
// Its API is modeled on bufio.Scanner, but unlike a Scanner an
// overlong line does not stop it. A Reader retains ownership of
// the Result it returns; a caller should copy anything it needs to
// retain across calls to Scan.
//
// To construct a new Reader, either call NewReader, or call Reset on
// a zeroed Reader.
type Reader struct {
	br  *bufio.Reader
	buf []byte // current line
	err error  // current I/O error

	fileName string
	line     int
	skipped  int

	result Result
}

// A Result is a single completed benchmark measurement.
type Result struct {
	// Name is the full benchmark id, for example
	// "Nail Addition/nail/64".
	Name string

	// Group, Variant and Param are the first three
	// slash-separated segments of Name. Param is "" if Name has
	// only two segments. Segments beyond the third are ignored.
	Group, Variant, Param string

	// Estimate is the typical time of one iteration in
	// nanoseconds. It is never negative.
	Estimate float64

	// Line is the 1-based input line the result came from.
	Line int
}

// NewReader constructs a reader to parse criterion messages from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.br = bufio.NewReader(ior)
	r.buf = r.buf[:0]
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.err = nil
	r.line = 0
	r.skipped = 0
	r.result = Result{}
}

// Scan advances the reader to the next valid result and reports
// whether a result was read. Lines that are not usable results are
// silently consumed. The caller should use the Result method to get
// the result. If Scan reaches EOF or an I/O error occurs, it returns
// false, in which case the caller should use the Err method to check
// for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for {
		line, tooLong, err := r.readLine()
		if err == io.EOF {
			return false
		}
		if err != nil {
			r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line+1, err)
			return false
		}
		r.line++
		if tooLong {
			r.skipped++
			continue
		}
		if len(line) == 0 {
			continue
		}
		if r.parse(line) {
			return true
		}
		r.skipped++
	}
}

// readLine returns the next line without its line terminator. If
// the line is longer than maxLine, it is consumed but not returned,
// and tooLong is set. A final line without a newline is returned
// with a nil error; io.EOF is returned only when no input remains.
func (r *Reader) readLine() (line []byte, tooLong bool, err error) {
	r.buf = r.buf[:0]
	read := 0
	for {
		frag, err := r.br.ReadSlice('\n')
		read += len(frag)
		if !tooLong {
			r.buf = append(r.buf, frag...)
			// Allow for the "\r\n" terminator.
			if len(r.buf) > maxLine+2 {
				tooLong = true
				r.buf = r.buf[:0]
			}
		}
		switch err {
		case nil:
		case bufio.ErrBufferFull:
			continue
		case io.EOF:
			if read == 0 {
				return nil, false, io.EOF
			}
		default:
			return nil, false, err
		}
		break
	}
	if tooLong {
		return nil, true, nil
	}
	line = bytes.TrimSuffix(r.buf, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) > maxLine {
		return nil, true, nil
	}
	return line, false, nil
}

// parse decodes line into r.result and reports whether it is a
// complete, well-formed measurement.
func (r *Reader) parse(line []byte) bool {
	if !gjson.ValidBytes(line) {
		return false
	}
	msg := gjson.ParseBytes(line)
	if !msg.IsObject() {
		return false
	}
	if reason := msg.Get("reason"); reason.Type != gjson.String || reason.Str != CompleteReason {
		return false
	}
	id := msg.Get("id")
	if id.Type != gjson.String {
		return false
	}
	est := msg.Get("typical.estimate")
	if est.Type != gjson.Number || est.Num < 0 || math.IsInf(est.Num, 0) {
		return false
	}
	group, variant, param, ok := SplitName(id.Str)
	if !ok {
		return false
	}
	r.result = Result{
		Name:     id.Str,
		Group:    group,
		Variant:  variant,
		Param:    param,
		Estimate: est.Num,
		Line:     r.line,
	}
	return true
}

// SplitName splits a benchmark id into its group, variant and
// parameter segments. It reports ok=false if name has fewer than two
// segments or an empty group or variant.
func SplitName(name string) (group, variant, param string, ok bool) {
	parts := strings.Split(name, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", "", false
	}
	if len(parts) > 2 {
		param = parts[2]
	}
	return parts[0], parts[1], param, true
}

// Result returns the result read by the last call to Scan. The
// returned value is overwritten by the next call to Scan.
func (r *Reader) Result() *Result {
	return &r.result
}

// Err returns the first I/O error encountered by the Reader, if any.
// Malformed or irrelevant lines are not errors.
func (r *Reader) Err() error {
	return r.err
}

// Skipped returns the number of non-empty lines consumed so far that
// did not yield a Result.
func (r *Reader) Skipped() int {
	return r.skipped
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timeunit formats nanosecond durations for human readers.
package timeunit

import "strconv"

// A Scaler represents a scaling factor for a duration and the unit
// the scaled value is displayed in.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Nanoseconds in 1 Unit (e.g., 1 μs => 1000)
	Unit   string  // Unit suffix ("ns", "μs", "ms", "s")
}

// Format formats ns, a duration in nanoseconds, and appends the unit
// according to s. For example, if s is the microsecond Scaler,
// Format(1500) returns "1.50 μs".
func (s Scaler) Format(ns float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, ns/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, ' ')
	buf = append(buf, s.Unit...)
	return string(buf)
}

// Prec is the number of digits printed after the decimal point in
// every unit.
const Prec = 2

var (
	Nanoseconds  = Scaler{Prec, 1, "ns"}
	Microseconds = Scaler{Prec, 1e3, "μs"}
	Milliseconds = Scaler{Prec, 1e6, "ms"}
	Seconds      = Scaler{Prec, 1e9, "s"}
)

// Choose returns the Scaler for displaying ns. A value is shown in
// the largest unit it reaches one whole unit of, so 999 ns stays in
// nanoseconds and 1000 ns becomes 1.00 μs.
func Choose(ns float64) Scaler {
	switch {
	case ns < 1e3:
		return Nanoseconds
	case ns < 1e6:
		return Microseconds
	case ns < 1e9:
		return Milliseconds
	}
	return Seconds
}

// Format formats ns, a duration in nanoseconds, in the unit chosen by
// Choose.
func Format(ns float64) string {
	return Choose(ns).Format(ns)
}

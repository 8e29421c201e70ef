// seehuhn.de/go/pdfdevice - a PDF output device for generic graphics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package float formats numbers for use in PDF content streams.
package float

import (
	"regexp"
	"strconv"
	"strings"
)

// Format writes x with at most precision digits after the decimal point.
// If precision is negative, the smallest number of digits is used which
// represents x exactly.  Trailing zeros and a leading zero before the decimal point are removed,
// so that 0.5 is formatted as ".5" and 2.0 as "2".
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	switch {
	case out == "-0":
		out = "0"
	case strings.HasPrefix(out, "0."):
		out = out[1:]
	case strings.HasPrefix(out, "-0."):
		out = "-" + out[2:]
	}
	return out
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)

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

package device

import (
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfdevice/internal/float"
)

// Number of digits after the decimal point for numbers in the content
// stream.  Matrix entries are written with as many digits as are needed
// to reproduce them exactly, since "cm" deltas are concatenated by the
// reader and rounding errors would accumulate.
const (
	coordDigits = 4
	colorDigits = 4
	trfmDigits  = -1
)

func formatCoord(x float64) string {
	return float.Format(x, coordDigits)
}

func formatColor(x float64) string {
	return float.Format(x, colorDigits)
}

// formatMatrix formats the six entries of M, separated by spaces.
func formatMatrix(M matrix.Matrix) string {
	var b strings.Builder
	for i, x := range M {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(float.Format(x, trfmDigits))
	}
	return b.String()
}

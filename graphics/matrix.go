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

package graphics

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Invert returns the inverse of the transformation M.
// Unlike M.Inv(), Invert does not panic if M is singular; in this case M
// is returned unchanged.
func Invert(M matrix.Matrix) matrix.Matrix {
	if M[0]*M[3]-M[1]*M[2] == 0 {
		return M
	}
	return M.Inv()
}

// TransformVector applies the linear part of M to v, ignoring the
// translation.
func TransformVector(M matrix.Matrix, v vec.Vec2) vec.Vec2 {
	lin := matrix.Matrix{M[0], M[1], M[2], M[3], 0, 0}
	x, y := lin.Apply(v.X, v.Y)
	return vec.Vec2{X: x, Y: y}
}

// PreTranslate returns the transformation which first moves by (dx, dy)
// and then applies M.
func PreTranslate(M matrix.Matrix, dx, dy float64) matrix.Matrix {
	return matrix.Translate(dx, dy).Mul(M)
}

// PreScale returns the transformation which first scales by (sx, sy)
// and then applies M.
func PreScale(M matrix.Matrix, sx, sy float64) matrix.Matrix {
	return matrix.Scale(sx, sy).Mul(M)
}

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

package color

import (
	"errors"
	"math"

	"seehuhn.de/go/pdfdevice/pdf"
)

// SpaceLab represents a CIE 1976 L*a*b* colour space.
type SpaceLab struct {
	whitePoint [3]float64
}

// Lab returns a new CIE 1976 L*a*b* colour space.
//
// WhitePoint is the diffuse white point in CIE 1931 XYZ coordinates.
// All entries must be positive, and the Y component must be 1.
func Lab(whitePoint []float64) (*SpaceLab, error) {
	if len(whitePoint) != 3 || whitePoint[0] <= 0 || whitePoint[2] <= 0 || whitePoint[1] != 1 {
		return nil, errors.New("Lab: invalid white point")
	}
	return &SpaceLab{
		whitePoint: [3]float64{whitePoint[0], whitePoint[1], whitePoint[2]},
	}, nil
}

// Family returns /Lab.
// This implements the [Space] interface.
func (s *SpaceLab) Family() pdf.Name {
	return FamilyLab
}

// Channels returns 3.
// This implements the [Space] interface.
func (s *SpaceLab) Channels() int {
	return 3
}

// d65 is the white point of sRGB.
var d65 = [3]float64{0.9505, 1, 1.0890}

// labToRGB converts a CIE L*a*b* colour to sRGB.  The white point of the
// Lab space is mapped onto the sRGB white point by scaling XYZ.
func labToRGB(l, a, b float64) [3]float64 {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200

	finv := func(t float64) float64 {
		if t > 6.0/29 {
			return t * t * t
		}
		return 3 * (6.0 / 29) * (6.0 / 29) * (t - 4.0/29)
	}
	X := finv(fx) * d65[0]
	Y := finv(fy) * d65[1]
	Z := finv(fz) * d65[2]

	r := 3.2406*X - 1.5372*Y - 0.4986*Z
	g := -0.9689*X + 1.8758*Y + 0.0415*Z
	bb := 0.0557*X - 0.2040*Y + 1.0570*Z

	return [3]float64{gammaSRGB(r), gammaSRGB(g), gammaSRGB(bb)}
}

func gammaSRGB(x float64) float64 {
	x = clamp01(x)
	if x <= 0.0031308 {
		return 12.92 * x
	}
	return 1.055*math.Pow(x, 1/2.4) - 0.055
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}

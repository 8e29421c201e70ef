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
	"seehuhn.de/go/pdfdevice/pdf"
)

// SpaceSeparation represents a single colorant, for example a spot colour.
// The only component is the tint, ranging from 0 (no ink) to 1 (full ink).
type SpaceSeparation struct {
	// Colorant is the name of the colorant.
	Colorant string

	// Alternate is the colour space used to approximate the colorant.
	// If nil, the colorant is shown as black ink.
	Alternate Space

	// Full is the colour of the full-strength colorant in the alternate
	// colour space.
	Full []float64
}

// Separation returns a new separation colour space.
func Separation(colorant string, alternate Space, full []float64) *SpaceSeparation {
	return &SpaceSeparation{
		Colorant:  colorant,
		Alternate: alternate,
		Full:      full,
	}
}

// Family returns /Separation.
// This implements the [Space] interface.
func (s *SpaceSeparation) Family() pdf.Name {
	return FamilySeparation
}

// Channels returns 1.
// This implements the [Space] interface.
func (s *SpaceSeparation) Channels() int {
	return 1
}

// Tint returns the RGB colour of the colorant at the given tint, when the
// full-strength colorant has the RGB colour full.
func Tint(full [3]float64, tint float64) [3]float64 {
	tint = clamp01(tint)
	var res [3]float64
	for i, x := range full {
		res[i] = 1 - tint*(1-x)
	}
	return res
}

func (s *SpaceSeparation) toRGB(tint float64) [3]float64 {
	full := [3]float64{0, 0, 0}
	if s.Alternate != nil && CheckComponents(s.Alternate, s.Full) == nil {
		full = ToRGB(s.Alternate, s.Full)
	}
	return Tint(full, tint)
}

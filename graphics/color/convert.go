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

// ToRGB converts a colour to DeviceRGB.
//
// This is the generic fallback used by the PDF device for colour spaces
// other than the three device spaces.  The conversion uses the naive
// formulas; no colour management is applied.  Missing components are
// treated as 0.
func ToRGB(s Space, c []float64) [3]float64 {
	if s == nil {
		return [3]float64{}
	}
	if n := s.Channels(); len(c) < n {
		padded := make([]float64, n)
		copy(padded, c)
		c = padded
	}

	switch s := s.(type) {
	case spaceDeviceGray:
		return grayToRGB(c[0])
	case spaceDeviceRGB:
		return [3]float64{clamp01(c[0]), clamp01(c[1]), clamp01(c[2])}
	case spaceDeviceCMYK:
		return cmykToRGB(c[0], c[1], c[2], c[3])
	case *SpaceICCBased:
		return s.toRGB(c)
	case *SpaceLab:
		return labToRGB(c[0], c[1], c[2])
	case *SpaceSeparation:
		return s.toRGB(c[0])
	}

	switch s.Channels() {
	case 1:
		return grayToRGB(c[0])
	case 3:
		return [3]float64{clamp01(c[0]), clamp01(c[1]), clamp01(c[2])}
	case 4:
		return cmykToRGB(c[0], c[1], c[2], c[3])
	default:
		return [3]float64{}
	}
}

func grayToRGB(g float64) [3]float64 {
	g = clamp01(g)
	return [3]float64{g, g, g}
}

func cmykToRGB(c, m, y, k float64) [3]float64 {
	return [3]float64{
		1 - min(1, clamp01(c)+clamp01(k)),
		1 - min(1, clamp01(m)+clamp01(k)),
		1 - min(1, clamp01(y)+clamp01(k)),
	}
}

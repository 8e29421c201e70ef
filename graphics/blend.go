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
	"fmt"

	"seehuhn.de/go/pdfdevice/pdf"
)

// BlendMode selects the function used to combine colours in a
// transparency group with the backdrop.
type BlendMode int

// The separable and non-separable blend modes.
// See section 11.3.5 of ISO 32000-2:2020.
const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion

	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendNames = [...]pdf.Name{
	BlendNormal:     "Normal",
	BlendMultiply:   "Multiply",
	BlendScreen:     "Screen",
	BlendOverlay:    "Overlay",
	BlendDarken:     "Darken",
	BlendLighten:    "Lighten",
	BlendColorDodge: "ColorDodge",
	BlendColorBurn:  "ColorBurn",
	BlendHardLight:  "HardLight",
	BlendSoftLight:  "SoftLight",
	BlendDifference: "Difference",
	BlendExclusion:  "Exclusion",
	BlendHue:        "Hue",
	BlendSaturation: "Saturation",
	BlendColor:      "Color",
	BlendLuminosity: "Luminosity",
}

// Name returns the PDF name of the blend mode.
// Unknown values map to "Normal".
func (m BlendMode) Name() pdf.Name {
	if m < 0 || int(m) >= len(blendNames) {
		return blendNames[BlendNormal]
	}
	return blendNames[m]
}

// IsValid reports whether m is one of the known blend modes.
func (m BlendMode) IsValid() bool {
	return m >= 0 && int(m) < len(blendNames)
}

func (m BlendMode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
	return string(blendNames[m])
}

// ParseBlendMode returns the blend mode with the given PDF name.
func ParseBlendMode(name pdf.Name) (BlendMode, bool) {
	for i, n := range blendNames {
		if n == name {
			return BlendMode(i), true
		}
	}
	return BlendNormal, false
}

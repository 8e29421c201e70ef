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
	"fmt"
	"slices"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/pdfdevice/pdf"
)

// SpaceICCBased represents an ICC-based colour space.
type SpaceICCBased struct {
	N       int
	profile []byte
	kind    iccKind
}

type iccKind uint8

const (
	iccGray iccKind = iota
	iccRGB
	iccCMYK
	iccLab
)

// ICCBased returns a new ICC-based colour space for the given profile.
func ICCBased(profile []byte) (*SpaceICCBased, error) {
	if len(profile) == 0 {
		return nil, errors.New("ICCBased: missing profile")
	}

	// icc.Decode modifies its argument
	p, err := icc.Decode(slices.Clone(profile))
	if err != nil {
		return nil, err
	}

	var kind iccKind
	switch p.ColorSpace {
	case icc.GraySpace:
		kind = iccGray
	case icc.RGBSpace:
		kind = iccRGB
	case icc.CMYKSpace:
		kind = iccCMYK
	case icc.CIELabSpace:
		kind = iccLab
	default:
		return nil, fmt.Errorf("ICCBased: unsupported color space %v", p.ColorSpace)
	}

	return &SpaceICCBased{
		N:       p.ColorSpace.NumComponents(),
		profile: profile,
		kind:    kind,
	}, nil
}

// Family returns /ICCBased.
// This implements the [Space] interface.
func (s *SpaceICCBased) Family() pdf.Name {
	return FamilyICCBased
}

// Channels returns the number of colour components.
// This implements the [Space] interface.
func (s *SpaceICCBased) Channels() int {
	return s.N
}

// Profile returns the ICC profile data.
func (s *SpaceICCBased) Profile() []byte {
	return s.profile
}

// toRGB interprets the components according to the profile's data colour
// space.
func (s *SpaceICCBased) toRGB(c []float64) [3]float64 {
	switch s.kind {
	case iccGray:
		return grayToRGB(c[0])
	case iccCMYK:
		return cmykToRGB(c[0], c[1], c[2], c[3])
	case iccLab:
		return labToRGB(c[0], c[1], c[2])
	default:
		return [3]float64{c[0], c[1], c[2]}
	}
}

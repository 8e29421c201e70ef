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
	"slices"
)

// LineCapStyle is the style of the end of a line.
type LineCapStyle uint8

// Possible values for LineCapStyle.
// The first three values coincide with the PDF line cap codes.
const (
	LineCapButt LineCapStyle = iota
	LineCapRound
	LineCapSquare

	// LineCapTriangle ends a line with a triangle.  PDF has no
	// equivalent; the butt cap is used instead.
	LineCapTriangle
)

// PDF returns the line cap code used with the "J" operator.
func (c LineCapStyle) PDF() int {
	if c > LineCapSquare {
		return int(LineCapButt)
	}
	return int(c)
}

func (c LineCapStyle) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	case LineCapTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("LineCapStyle(%d)", int(c))
	}
}

// LineJoinStyle is the style of the corner of a line.
type LineJoinStyle uint8

// Possible values for LineJoinStyle.
// The first three values coincide with the PDF line join codes.
const (
	LineJoinMiter LineJoinStyle = iota
	LineJoinRound
	LineJoinBevel

	// LineJoinMiterXPS is the XPS variant of the miter join, which clips
	// the miter at the miter limit instead of falling back to a bevel.
	// PDF has no equivalent; the plain miter join is used instead.
	LineJoinMiterXPS
)

// PDF returns the line join code used with the "j" operator.
func (j LineJoinStyle) PDF() int {
	if j > LineJoinBevel {
		return int(LineJoinMiter)
	}
	return int(j)
}

func (j LineJoinStyle) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	case LineJoinMiterXPS:
		return "miter-xps"
	default:
		return fmt.Sprintf("LineJoinStyle(%d)", int(j))
	}
}

// StrokeStyle describes how a path is stroked.
//
// A StrokeStyle must not be modified once it has been passed to a device.
// Devices keep pointers to the styles they have seen and compare them
// field by field.
type StrokeStyle struct {
	LineWidth   float64
	Cap         LineCapStyle
	Join        LineJoinStyle
	MiterLimit  float64
	DashPattern []float64
	DashPhase   float64
}

// NewStrokeStyle returns a stroke style with the PDF default values:
// width 1, butt caps, miter joins, miter limit 10 and a solid line.
func NewStrokeStyle() *StrokeStyle {
	return &StrokeStyle{
		LineWidth:  1,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10,
	}
}

// WithDash returns a copy of s which uses the given dash pattern.
func (s *StrokeStyle) WithDash(pattern []float64, phase float64) *StrokeStyle {
	res := *s
	res.DashPattern = slices.Clone(pattern)
	res.DashPhase = phase
	return &res
}

// Equal reports whether s and other describe the same stroke style.
// A nil style is only equal to another nil style.
func (s *StrokeStyle) Equal(other *StrokeStyle) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	return s.LineWidth == other.LineWidth &&
		s.Cap == other.Cap &&
		s.Join == other.Join &&
		s.MiterLimit == other.MiterLimit &&
		s.DashEqual(other)
}

// DashEqual reports whether s and other use the same dash pattern and phase.
func (s *StrokeStyle) DashEqual(other *StrokeStyle) bool {
	return s.DashPhase == other.DashPhase &&
		slices.Equal(s.DashPattern, other.DashPattern)
}

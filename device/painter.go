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
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdevice/graphics"
	"seehuhn.de/go/pdfdevice/graphics/color"
)

// Painter is the set of painting operations understood by a device.
//
// Colours are given as a colour space, the colour components and a
// constant alpha value.  The matrix ctm maps the coordinates of paths,
// glyphs and images to device space.
//
// Clip operations, ClipImageMask and BeginMask/EndMask must be balanced
// by PopClip; BeginGroup must be balanced by EndGroup.
type Painter interface {
	FillPath(path *graphics.Path, evenOdd bool, ctm matrix.Matrix, cs color.Space, c []float64, alpha float64) error
	StrokePath(path *graphics.Path, style *graphics.StrokeStyle, ctm matrix.Matrix, cs color.Space, c []float64, alpha float64) error
	ClipPath(path *graphics.Path, evenOdd bool, ctm matrix.Matrix) error
	ClipStrokePath(path *graphics.Path, style *graphics.StrokeStyle, ctm matrix.Matrix) error

	FillText(text *graphics.Text, ctm matrix.Matrix, cs color.Space, c []float64, alpha float64) error
	StrokeText(text *graphics.Text, style *graphics.StrokeStyle, ctm matrix.Matrix, cs color.Space, c []float64, alpha float64) error
	ClipText(text *graphics.Text, ctm matrix.Matrix) error
	ClipStrokeText(text *graphics.Text, style *graphics.StrokeStyle, ctm matrix.Matrix) error
	IgnoreText(text *graphics.Text, ctm matrix.Matrix) error

	FillShade(ctm matrix.Matrix, alpha float64) error
	FillImage(img image.Image, ctm matrix.Matrix, alpha float64) error
	FillImageMask(img image.Image, ctm matrix.Matrix, cs color.Space, c []float64, alpha float64) error
	ClipImageMask(img image.Image, ctm matrix.Matrix) error

	PopClip() error

	BeginMask(bbox rect.Rect, luminosity bool, cs color.Space, backdrop []float64) error
	EndMask() error
	BeginGroup(bbox rect.Rect, cs color.Space, isolated, knockout bool, bm graphics.BlendMode, alpha float64) error
	EndGroup() error

	BeginTile(area, view rect.Rect, xStep, yStep float64, ctm matrix.Matrix, id int) (int, error)
	EndTile() error

	Close() error
}

var _ Painter = (*Device)(nil)

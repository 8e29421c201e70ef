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

// Package graphics provides the value types shared by the painting
// interface of the PDF device.
//
// This package defines stroke styles ([StrokeStyle], [LineCapStyle],
// [LineJoinStyle]), paths ([Path]), positioned glyph runs ([Text],
// [TextSpan]), blend modes ([BlendMode]) and text rendering modes
// ([TextRenderingMode]).  Geometry uses the types from
// [seehuhn.de/go/geom/matrix] and [seehuhn.de/go/geom/vec].
package graphics

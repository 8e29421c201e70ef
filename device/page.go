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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdevice/pdf"
)

// NewPage allocates a device for the content stream of a page.
//
// The device uses a coordinate system with the origin in the top left
// corner of the media box and the y axis pointing downwards.  The page
// transformation is written at the start of the content stream.  All other
// fields of opt are used as given.
func NewPage(store Store, mediaBox rect.Rect, opt *Options) *Device {
	var o Options
	if opt != nil {
		o = *opt
	}
	o.TopCTM = matrix.Matrix{1, 0, 0, -1, -mediaBox.LLx, mediaBox.URy}
	return New(store, pdf.Dict{}, nil, &o)
}

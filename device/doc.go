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

// Package device implements a painting device which writes PDF content
// streams.
//
// A [Device] receives painting commands through the methods of the
// [Painter] interface.  It keeps track of the graphics state already
// written to the content stream and only writes the operators needed to
// reach the state required by each command.  Fonts, images, transparency
// groups, soft masks and constant alpha values are written to a [Store]
// and entered into a resource dictionary, using the names
//
//	ExtGState/Alp<n>        constant alpha, in order of first use
//	ExtGState/BlendMode<n>  blend mode with number n
//	ExtGState/SM<n>         soft masks
//	Font/F<n>               fonts, in order of first use
//	XObject/Fm<n>           forms for transparency groups and soft masks
//	XObject/Img<n>          images, n is the object number of the image
//
// Use [NewPage] to draw a page, and [New] for other content streams.
package device

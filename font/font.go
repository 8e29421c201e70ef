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

// Package font defines the interface between fonts and the PDF device.
//
// A [Font] reports the information the device needs to show glyphs: how
// the font is classified and how far the pen moves for each glyph.  An
// [Embedder] writes the font program and font dictionaries into a PDF file.
// The [seehuhn.de/go/pdfdevice/font/sfntfont] package implements both
// interfaces for TrueType and OpenType fonts.
package font

import (
	"errors"

	"seehuhn.de/go/pdfdevice/pdf"
)

// Font represents a font which can be used to show text.
//
// Fonts are compared by identity: two Font values refer to the same font if
// and only if they are equal as interface values.
type Font interface {
	// PostScriptName returns the name of the font, for use in diagnostics
	// and as the BaseFont of the embedded font.
	PostScriptName() string

	// Procedural reports whether glyphs are described by content streams
	// instead of outlines.  Glyph IDs of procedural fonts are encoded as
	// single bytes.
	Procedural() bool

	// Substitute reports whether the font is a stand-in, chosen because
	// the requested font was not available.
	Substitute() bool

	// Embeddable reports whether the font program is of a type which can
	// be embedded into a PDF file.
	Embeddable() bool

	// Advance returns the advance of a glyph, in units of the font size.
	// wmode is 0 for horizontal and 1 for vertical writing.
	Advance(gid int, wmode int) float64
}

// Embedder adds fonts to a PDF file.
//
// Implementations must return the same reference when a font is embedded
// more than once.
type Embedder interface {
	Embed(f Font) (pdf.Reference, error)
}

// ErrNotSupported is returned by embedders for fonts they cannot handle.
var ErrNotSupported = errors.New("font type not supported")

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

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfdevice/font"
)

// TextRenderingMode determines whether showing text causes glyph outlines to
// be stroked, filled, used as a clipping boundary, or some combination of
// the three.
//
// See section 9.3.6 of ISO 32000-2:2020.
type TextRenderingMode uint8

// Possible values for TextRenderingMode.
const (
	TextRenderingModeFill TextRenderingMode = iota
	TextRenderingModeStroke
	TextRenderingModeFillStroke
	TextRenderingModeInvisible
	TextRenderingModeFillClip
	TextRenderingModeStrokeClip
	TextRenderingModeFillStrokeClip
	TextRenderingModeClip
)

func (m TextRenderingMode) String() string {
	switch m {
	case TextRenderingModeFill:
		return "fill"
	case TextRenderingModeStroke:
		return "stroke"
	case TextRenderingModeFillStroke:
		return "fill+stroke"
	case TextRenderingModeInvisible:
		return "invisible"
	case TextRenderingModeFillClip:
		return "fill+clip"
	case TextRenderingModeStrokeClip:
		return "stroke+clip"
	case TextRenderingModeFillStrokeClip:
		return "fill+stroke+clip"
	case TextRenderingModeClip:
		return "clip"
	default:
		return fmt.Sprintf("TextRenderingMode(%d)", int(m))
	}
}

// Glyph is a glyph placed at a pen position in user space.
// Glyphs with a negative ID are placeholders and are not shown.
type Glyph struct {
	ID   int
	X, Y float64
}

// TextSpan is a run of glyphs which share a font, a text rendering matrix
// and a writing mode.
type TextSpan struct {
	Font font.Font

	// Trm maps glyph space (scaled so that the font size is 1) to user
	// space.  The translation part is ignored; glyph positions are taken
	// from the Glyphs slice.
	Trm matrix.Matrix

	// WMode is 0 for horizontal and 1 for vertical writing.
	WMode int

	Glyphs []Glyph
}

// Text is a sequence of text spans.
type Text struct {
	Spans []*TextSpan
}

// Add appends a span to the text.
func (t *Text) Add(span *TextSpan) {
	t.Spans = append(t.Spans, span)
}

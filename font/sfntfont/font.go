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

// Package sfntfont makes TrueType and OpenType fonts available to the PDF
// device.
//
// A [Font] wraps a parsed [sfnt.Font] and implements [font.Font].  A
// [Registry] embeds such fonts as composite (Type0) PDF fonts with the
// Identity-H encoding, so that glyph IDs can be used directly as character
// codes.
package sfntfont

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfdevice/font"
)

// Options control how a font is presented to the device.
type Options struct {
	// Substitute marks the font as a stand-in for an unavailable font.
	// The PDF device refuses to embed substitute fonts.
	Substitute bool
}

// Font is a TrueType or OpenType font.
type Font struct {
	info       *sfnt.Font
	substitute bool
	lookup     func(rune) glyph.ID
}

var _ font.Font = (*Font)(nil)

// New wraps a parsed sfnt font.
func New(info *sfnt.Font, opt *Options) *Font {
	if opt == nil {
		opt = &Options{}
	}
	f := &Font{
		info:       info,
		substitute: opt.Substitute,
	}
	if info.CMapTable != nil {
		if subtable, err := info.CMapTable.GetBest(); err == nil {
			f.lookup = subtable.Lookup
		}
	}
	return f
}

// Parse reads a TrueType or OpenType font from its binary representation.
func Parse(data []byte, opt *Options) (*Font, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("sfnt font: %w", err)
	}
	return New(info, opt), nil
}

// SFNT returns the underlying font.
func (f *Font) SFNT() *sfnt.Font {
	return f.info
}

// PostScriptName implements the [font.Font] interface.
func (f *Font) PostScriptName() string {
	return f.info.PostScriptName()
}

// Procedural implements the [font.Font] interface.
// Glyphs of sfnt fonts are always given by outlines.
func (f *Font) Procedural() bool {
	return false
}

// Substitute implements the [font.Font] interface.
func (f *Font) Substitute() bool {
	return f.substitute
}

// Embeddable implements the [font.Font] interface.
// Fonts with glyf outlines and CFF-based OpenType fonts can be embedded.
func (f *Font) Embeddable() bool {
	return f.info.IsGlyf() || f.info.IsCFF()
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.info.NumGlyphs()
}

// Advance implements the [font.Font] interface.
//
// In vertical writing mode all glyphs advance by one unit downwards.
func (f *Font) Advance(gid int, wmode int) float64 {
	if wmode != 0 {
		return -1
	}
	if gid < 0 || gid >= f.info.NumGlyphs() {
		return 0
	}
	return f.info.GlyphWidthPDF(glyph.ID(gid)) / 1000
}

// GlyphID returns the glyph used for the rune r by the font's character
// map.  If the font has no mapping for r, 0 (the ".notdef" glyph) is
// returned.
func (f *Font) GlyphID(r rune) glyph.ID {
	if f.lookup == nil {
		return 0
	}
	return f.lookup(r)
}

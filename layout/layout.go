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

// Package layout converts strings into text spans for the PDF device.
//
// Text is shaped with the HarfBuzz port from go-text/typesetting, so that
// kerning, ligatures and the glyph substitutions of complex scripts are
// applied.  Glyph positions are computed in font design units and scaled
// afterwards, so that the positions agree with the glyph advances used by
// the device to encode the text.
package layout

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfdevice/font/sfntfont"
	"seehuhn.de/go/pdfdevice/graphics"
)

// Options control the behaviour of a [Shaper].
type Options struct {
	// Language is the BCP 47 language tag used for shaping.
	// The default is "en".
	Language string

	// YDown must be set if the y axis of user space points downwards,
	// as it does for devices allocated by device.NewPage.
	YDown bool

	// Substitute is passed on to the font, see [sfntfont.Options].
	Substitute bool
}

// Shaper lays out text in a single font.
//
// A Shaper is not safe for concurrent use.
type Shaper struct {
	font *sfntfont.Font
	face *gotext.Face
	upem float64
	hb   shaping.HarfbuzzShaper
	lang language.Language
	yDir float64
}

// New parses a TrueType or OpenType font and returns a Shaper for it.
func New(data []byte, opt *Options) (*Shaper, error) {
	if opt == nil {
		opt = &Options{}
	}

	f, err := sfntfont.Parse(data, &sfntfont.Options{Substitute: opt.Substitute})
	if err != nil {
		return nil, err
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("shaping: %w", err)
	}

	upem := float64(f.SFNT().UnitsPerEm)
	if upem == 0 {
		upem = 1000
	}

	lang := opt.Language
	if lang == "" {
		lang = "en"
	}

	yDir := 1.0
	if opt.YDown {
		yDir = -1
	}

	return &Shaper{
		font: f,
		face: face,
		upem: upem,
		lang: language.NewLanguage(lang),
		yDir: yDir,
	}, nil
}

// Font returns the font used by the shaper.
func (s *Shaper) Font() *sfntfont.Font {
	return s.font
}

// Shape lays out text in a single line, with the baseline starting at
// (x, y).  The font size is given in user space units.
func (s *Shaper) Shape(text string, size, x, y float64) *graphics.TextSpan {
	span := &graphics.TextSpan{
		Font: s.font,
		Trm:  matrix.Matrix{size, 0, 0, s.yDir * size, 0, 0},
	}
	s.appendGlyphs(span, []rune(text), size, x, y)
	return span
}

// Width returns the advance width of text, set in the given font size.
func (s *Shaper) Width(text string, size float64) float64 {
	var w fixed.Int26_6
	for _, g := range s.shape([]rune(text)) {
		w += g.XAdvance
	}
	return float64(w) / 64 / s.upem * size
}

// Paragraph breaks text into lines of at most the given width and lays
// out the lines, starting with the baseline at (x, y).  Consecutive
// baselines are separated by leading.  Lines are broken at white space
// only; words wider than a line are set on a line of their own.
func (s *Shaper) Paragraph(text string, size, leading, width, x, y float64) *graphics.Text {
	res := &graphics.Text{}
	spaceWidth := s.Width(" ", size)

	var line []string
	lineWidth := 0.0
	flush := func() {
		if len(line) == 0 {
			return
		}
		res.Add(s.Shape(strings.Join(line, " "), size, x, y))
		y -= s.yDir * leading
		line = line[:0]
		lineWidth = 0
	}
	for _, word := range strings.Fields(text) {
		w := s.Width(word, size)
		if len(line) > 0 && lineWidth+spaceWidth+w > width {
			flush()
		}
		if len(line) > 0 {
			lineWidth += spaceWidth
		}
		line = append(line, word)
		lineWidth += w
	}
	flush()
	return res
}

func (s *Shaper) shape(runes []rune) []shaping.Glyph {
	if len(runes) == 0 {
		return nil
	}
	script := detectScript(runes)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: scriptDirection(script),
		Face:      s.face,
		Size:      fixed.I(int(s.upem)),
		Script:    script,
		Language:  s.lang,
	}
	return s.hb.Shape(input).Glyphs
}

// appendGlyphs shapes runs at the size of one em in design units, so that
// advances and offsets are exact.
func (s *Shaper) appendGlyphs(span *graphics.TextSpan, runes []rune, size, x, y float64) {
	q := size / s.upem / 64
	var penX, penY fixed.Int26_6
	for _, g := range s.shape(runes) {
		gx := x + float64(penX+g.XOffset)*q
		gy := y + s.yDir*float64(penY+g.YOffset)*q
		span.Glyphs = append(span.Glyphs, graphics.Glyph{
			ID: int(g.GlyphID),
			X:  gx,
			Y:  gy,
		})
		penX += g.XAdvance
		penY += g.YAdvance
	}
}

// detectScript returns the script of the first character which is not
// white space.  Mixed-script text must be split by the caller.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func scriptDirection(script language.Script) di.Direction {
	switch script {
	case language.Arabic, language.Hebrew, language.Syriac, language.Thaana, language.Nko:
		return di.DirectionRTL
	default:
		return di.DirectionLTR
	}
}

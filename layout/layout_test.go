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

package layout

import (
	"bytes"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdevice/device"
	"seehuhn.de/go/pdfdevice/graphics/color"
	"seehuhn.de/go/pdfdevice/pdf"
)

func newShaper(t *testing.T, yDown bool) *Shaper {
	t.Helper()
	s, err := New(goregular.TTF, &Options{YDown: yDown})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestShape(t *testing.T) {
	s := newShaper(t, false)
	span := s.Shape("Hello", 10, 5, 20)

	if span.Font != s.Font() {
		t.Error("wrong font")
	}
	if span.Trm != (matrix.Matrix{10, 0, 0, 10, 0, 0}) {
		t.Errorf("Trm = %v", span.Trm)
	}
	if len(span.Glyphs) != 5 {
		t.Fatalf("%d glyphs, want 5", len(span.Glyphs))
	}
	for i, r := range "Hello" {
		g := span.Glyphs[i]
		if want := int(s.Font().GlyphID(r)); g.ID != want {
			t.Errorf("glyph %d: ID %d, want %d", i, g.ID, want)
		}
		if g.Y != 20 {
			t.Errorf("glyph %d: Y = %g, want 20", i, g.Y)
		}
		if i > 0 && g.X <= span.Glyphs[i-1].X {
			t.Errorf("glyph %d: X = %g does not advance", i, g.X)
		}
	}
	if span.Glyphs[0].X != 5 {
		t.Errorf("first glyph at X = %g, want 5", span.Glyphs[0].X)
	}

	last := span.Glyphs[4]
	end := last.X + 10*s.Font().Advance(last.ID, 0)
	if w := s.Width("Hello", 10); math.Abs(5+w-end) > 1e-9 {
		t.Errorf("Width = %g, glyphs end at %g", w, end)
	}
}

func TestShapeEmpty(t *testing.T) {
	s := newShaper(t, false)
	span := s.Shape("", 10, 0, 0)
	if len(span.Glyphs) != 0 {
		t.Errorf("%d glyphs for empty string", len(span.Glyphs))
	}
	if s.Width("", 10) != 0 {
		t.Error("empty string has non-zero width")
	}
}

func TestYDown(t *testing.T) {
	s := newShaper(t, true)
	span := s.Shape("x", 12, 0, 0)
	if span.Trm[3] != -12 {
		t.Errorf("Trm = %v", span.Trm)
	}
}

func TestParagraph(t *testing.T) {
	s := newShaper(t, true)
	width := s.Width("aaa bbb", 10) + 0.01

	text := s.Paragraph("aaa  bbb\nccc", 10, 12, width, 50, 100)
	if len(text.Spans) != 2 {
		t.Fatalf("%d lines, want 2", len(text.Spans))
	}
	if n := len(text.Spans[0].Glyphs); n != 7 {
		t.Errorf("first line has %d glyphs, want 7", n)
	}
	if n := len(text.Spans[1].Glyphs); n != 3 {
		t.Errorf("second line has %d glyphs, want 3", n)
	}
	if y := text.Spans[1].Glyphs[0].Y; y != 112 {
		t.Errorf("second baseline at %g, want 112", y)
	}

	long := s.Paragraph("a verylongwordwhichdoesnotfit b", 10, 12, 20, 0, 0)
	if len(long.Spans) != 3 {
		t.Errorf("%d lines, want 3", len(long.Spans))
	}
}

// TestDeviceOutput checks that shaped text is written with a single text
// matrix, i.e. that the glyph positions agree with the glyph advances.
func TestDeviceOutput(t *testing.T) {
	s := newShaper(t, true)
	data := pdf.NewData(pdf.V1_7)
	d := device.NewPage(data, rect.Rect{URx: 300, URy: 100}, nil)

	text := s.Paragraph("Hello World", 12, 14, 300, 10, 50)
	err := d.FillText(text, matrix.Identity, color.DeviceGray, []float64{0}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}

	if n := bytes.Count(d.Content(), []byte(" Tm\n")); n != 1 {
		t.Errorf("%d text matrices, want 1:\n%s", n, d.Content())
	}
}

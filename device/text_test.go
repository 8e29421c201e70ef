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
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdevice/font/sfntfont"
	"seehuhn.de/go/pdfdevice/graphics"
	"seehuhn.de/go/pdfdevice/graphics/color"
	"seehuhn.de/go/pdfdevice/pdf"
)

// size8 is the text rendering matrix for a font size of 8.  The inverse
// of this matrix is exact in binary floating point.
var size8 = matrix.Matrix{8, 0, 0, 8, 0, 0}

func TestDriftUnits(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.0004, 0},
		{0.0005, 1},
		{-0.0005, -1},
		{0.0015, 2},
		{0.0123, 12},
		{-0.0126, -13},
	}
	for _, c := range cases {
		if got := driftUnits(c.in); got != c.want {
			t.Errorf("driftUnits(%g) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestEncodeSpan(t *testing.T) {
	f := &testFont{name: "Test", advance: 0.5}
	cases := []struct {
		name   string
		wmode  int
		glyphs []graphics.Glyph
		want   string
	}{
		{
			name:   "regular",
			glyphs: []graphics.Glyph{{ID: 1, X: 10, Y: 20}, {ID: 2, X: 14, Y: 20}, {ID: 3, X: 18, Y: 20}},
			want:   "8 0 0 8 10 20 Tm\n[<000100020003>]TJ\n",
		},
		{
			name:   "kerning",
			glyphs: []graphics.Glyph{{ID: 1, X: 0}, {ID: 2, X: 4.016}},
			want:   "8 0 0 8 0 0 Tm\n[<0001>-2<0002>]TJ\n",
		},
		{
			name:   "one unit",
			glyphs: []graphics.Glyph{{ID: 1, X: 0}, {ID: 2, X: 4.008}},
			want:   "8 0 0 8 0 0 Tm\n[<0001>-1<0002>]TJ\n",
		},
		{
			name:   "new line",
			glyphs: []graphics.Glyph{{ID: 1, X: 0}, {ID: 2, X: 0, Y: 10}},
			want:   "8 0 0 8 0 0 Tm\n[<0001>]TJ\n8 0 0 8 0 10 Tm\n[<0002>]TJ\n",
		},
		{
			name:   "placeholder",
			glyphs: []graphics.Glyph{{ID: 1, X: 0}, {ID: -1, X: 100}, {ID: 2, X: 4}},
			want:   "8 0 0 8 0 0 Tm\n[<00010002>]TJ\n",
		},
		{
			name:   "vertical",
			wmode:  1,
			glyphs: []graphics.Glyph{{ID: 1, X: 0}, {ID: 2, X: 0, Y: -4}, {ID: 3, X: 0, Y: -7.984}},
			want:   "8 0 0 8 0 0 Tm\n[<00010002>-2<0003>]TJ\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			span := &graphics.TextSpan{
				Font:   f,
				Trm:    size8,
				WMode:  c.wmode,
				Glyphs: c.glyphs,
			}
			got := encodeSpan(span)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("unexpected output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeSpanProcedural(t *testing.T) {
	span := &graphics.TextSpan{
		Font:   &testFont{name: "T3", advance: 1, procedural: true},
		Trm:    matrix.Identity,
		Glyphs: []graphics.Glyph{{ID: 0x41, X: 0}, {ID: 0x42, X: 1}},
	}
	want := "1 0 0 1 0 0 Tm\n[<4142>]TJ\n"
	if diff := cmp.Diff(want, encodeSpan(span)); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func textRun(f *testFont, gids ...int) *graphics.Text {
	span := &graphics.TextSpan{Font: f, Trm: size8}
	for i, gid := range gids {
		span.Glyphs = append(span.Glyphs, graphics.Glyph{ID: gid, X: 4 * float64(i)})
	}
	text := &graphics.Text{}
	text.Add(span)
	return text
}

func TestTextRunsShareFont(t *testing.T) {
	d, _, fonts := newTestDevice()
	f := &testFont{name: "Test", advance: 0.5}
	black := []float64{0}
	id := matrix.Identity

	d.ClipPath(square(), false, id)
	d.FillText(textRun(f, 1, 2), id, color.DeviceGray, black, 1)
	d.PopClip()
	d.FillText(textRun(f, 3), id, color.DeviceGray, black, 1)
	err := d.Close()
	if err != nil {
		t.Fatal(err)
	}

	want := "q\n" + squareOps + "W n\n" +
		"BT\n/F0 1 Tf\n8 0 0 8 0 0 Tm\n[<00010002>]TJ\n" +
		"ET\nQ\n" +
		"BT\n/F0 1 Tf\n8 0 0 8 0 0 Tm\n[<0003>]TJ\n" +
		"ET\n"
	if diff := cmp.Diff(want, string(d.Content())); diff != "" {
		t.Errorf("unexpected content (-want +got):\n%s", diff)
	}

	if fonts.count != 1 {
		t.Errorf("font embedded %d times", fonts.count)
	}
	fontDict, _ := resource(d, "Font").(pdf.Dict)
	if len(fontDict) != 1 {
		t.Errorf("%d font resources, want 1", len(fontDict))
	}
}

func TestTextObjectDiscipline(t *testing.T) {
	d, _, _ := newTestDevice()
	f := &testFont{name: "Test", advance: 0.5}
	black := []float64{0}
	id := matrix.Identity

	d.FillText(textRun(f, 1), id, color.DeviceGray, black, 1)
	d.FillText(textRun(f, 2), id, color.DeviceGray, black, 1)
	d.FillPath(square(), false, id, color.DeviceGray, black, 1)
	d.FillText(textRun(f, 3), matrix.Translate(5, 5), color.DeviceGray, black, 1)
	d.FillText(textRun(f, 4), id, color.DeviceGray, black, 1)
	d.Close()

	content := string(d.Content())
	if n, m := countOps(content, "BT"), countOps(content, "ET"); n != m {
		t.Fatalf("%d BT vs. %d ET", n, m)
	}

	inText := false
	for line := range strings.Lines(content) {
		fields := strings.Fields(line)
		op := fields[len(fields)-1]
		if strings.HasSuffix(op, "]TJ") {
			op = "TJ"
		}
		switch op {
		case "BT":
			if inText {
				t.Fatal("nested text object")
			}
			inText = true
		case "ET":
			inText = false
		case "Tm", "TJ", "Tf", "Tr", "g", "gs":
			// allowed everywhere
		default:
			if inText {
				t.Errorf("operator %q inside text object", op)
			}
		}
	}

	// consecutive runs share one text object
	if !strings.HasPrefix(content, "BT\n/F0 1 Tf\n8 0 0 8 0 0 Tm\n[<0001>]TJ\n8 0 0 8 0 0 Tm\n[<0002>]TJ\nET\n") {
		t.Errorf("unexpected start of content:\n%s", content)
	}
}

func TestTextModes(t *testing.T) {
	d, _, _ := newTestDevice()
	f := &testFont{name: "Test", advance: 0.5}
	id := matrix.Identity

	d.ClipText(textRun(f, 1), id)
	d.IgnoreText(textRun(f, 2), id)
	d.PopClip()
	d.StrokeText(textRun(f, 3), nil, id, color.DeviceGray, []float64{0}, 1)
	d.Close()

	want := "q\n7 Tr\nBT\n/F0 1 Tf\n8 0 0 8 0 0 Tm\n[<0001>]TJ\nET\n" +
		"3 Tr\nBT\n8 0 0 8 0 0 Tm\n[<0002>]TJ\nET\nQ\n" +
		"1 w\n0 J\n0 j\n10 M\n1 Tr\nBT\n/F0 1 Tf\n8 0 0 8 0 0 Tm\n[<0003>]TJ\nET\n"
	if diff := cmp.Diff(want, string(d.Content())); diff != "" {
		t.Errorf("unexpected content (-want +got):\n%s", diff)
	}
}

func TestSFNTText(t *testing.T) {
	f, err := sfntfont.Parse(goregular.TTF, nil)
	if err != nil {
		t.Fatal(err)
	}
	data := pdf.NewData(pdf.V1_7)
	d := NewPage(data, rect.Rect{URx: 200, URy: 100}, nil)

	span := &graphics.TextSpan{Font: f, Trm: matrix.Matrix{12, 0, 0, -12, 0, 0}}
	x := 10.0
	for _, r := range "Go" {
		gid := int(f.GlyphID(r))
		span.Glyphs = append(span.Glyphs, graphics.Glyph{ID: gid, X: x, Y: 50})
		x += 12 * f.Advance(gid, 0)
	}
	text := &graphics.Text{}
	text.Add(span)

	err = d.FillText(text, matrix.Identity, color.DeviceGray, []float64{0}, 1)
	if err != nil {
		t.Fatal(err)
	}
	err = d.Close()
	if err != nil {
		t.Fatal(err)
	}

	content := d.Content()
	if !bytes.HasPrefix(content, []byte("1 0 0 -1 0 100 cm\nBT\n/F0 1 Tf\n")) {
		t.Errorf("unexpected content:\n%s", content)
	}
	if bytes.Contains(content, []byte(">-")) || bytes.Count(content, []byte("Tm")) != 1 {
		t.Errorf("glyphs not positioned by their advance:\n%s", content)
	}
	if _, ok := resource(d, "Font/F0").(pdf.Reference); !ok {
		t.Error("font not in resources")
	}
}

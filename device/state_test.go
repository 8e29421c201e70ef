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
	"errors"
	"image"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfdevice/graphics"
	"seehuhn.de/go/pdfdevice/graphics/color"
	"seehuhn.de/go/pdfdevice/pdf"
	"seehuhn.de/go/pdfdevice/separation"
)

func square() *graphics.Path {
	return (&graphics.Path{}).Rect(0, 0, 10, 10)
}

const squareOps = "0 0 m\n10 0 l\n10 10 l\n0 10 l\nh\n"

func TestRepeatedFill(t *testing.T) {
	d, _, _ := newTestDevice()
	gray := []float64{0.5}

	for range 2 {
		err := d.FillPath(square(), false, matrix.Identity, color.DeviceGray, gray, 1)
		if err != nil {
			t.Fatal(err)
		}
	}

	want := ".5 g\n" + squareOps + "f\n" + squareOps + "f\n"
	if diff := cmp.Diff(want, string(d.Content())); diff != "" {
		t.Errorf("unexpected content (-want +got):\n%s", diff)
	}
}

func TestColorOperators(t *testing.T) {
	d, _, _ := newTestDevice()
	p := square()
	id := matrix.Identity

	d.FillPath(p, true, id, color.DeviceRGB, []float64{1, 0, 0}, 1)
	d.StrokePath(p, nil, id, color.DeviceCMYK, []float64{0, 0, 0, 1}, 1)
	d.StrokePath(p, nil, id, color.DeviceCMYK, []float64{0, 0, 0, 1}, 1)
	d.FillPath(p, false, id, color.DeviceGray, []float64{0}, 1)

	want := "1 0 0 rg\n" + squareOps + "f*\n" +
		"0 0 0 1 K\n1 w\n0 J\n0 j\n10 M\n" + squareOps + "S\n" +
		squareOps + "S\n" +
		"0 g\n" + squareOps + "f\n"
	if diff := cmp.Diff(want, string(d.Content())); diff != "" {
		t.Errorf("unexpected content (-want +got):\n%s", diff)
	}
}

func TestColorFallback(t *testing.T) {
	d, _, _ := newTestDevice()
	lab, err := color.Lab([]float64{0.9505, 1, 1.089})
	if err != nil {
		t.Fatal(err)
	}

	// white in Lab is written as DeviceRGB white
	d.FillPath(square(), false, matrix.Identity, lab, []float64{100, 0, 0}, 1)
	want := "1 1 1 rg\n" + squareOps + "f\n"
	if diff := cmp.Diff(want, string(d.Content())); diff != "" {
		t.Errorf("unexpected content (-want +got):\n%s", diff)
	}
}

func TestInvalidColor(t *testing.T) {
	d, _, _ := newTestDevice()
	err := d.FillPath(square(), false, matrix.Identity, color.DeviceRGB, []float64{1}, 1)
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
	if d.Err != nil {
		t.Errorf("device error set: %v", d.Err)
	}
}

func TestSeparationColor(t *testing.T) {
	seps := separation.New(true)
	seps.AddEquivalents("Red", 0xff0000ff, 0x00ffff00)
	seps.AddEquivalents("Off", 0x0000ffff, 0xffff0000)
	seps.SetBehavior(1, separation.Disabled)

	data := pdf.NewData(pdf.V1_7)
	d := New(data, nil, nil, &Options{Separations: seps})

	red := color.Separation("Red", color.DeviceGray, []float64{0})
	off := color.Separation("Off", color.DeviceGray, []float64{0})
	unknown := color.Separation("Green", color.DeviceRGB, []float64{0, 1, 0})

	d.FillPath(square(), false, matrix.Identity, red, []float64{1}, 1)
	d.FillPath(square(), false, matrix.Identity, red, []float64{0.5}, 1)
	d.FillPath(square(), false, matrix.Identity, off, []float64{1}, 1)
	d.FillPath(square(), false, matrix.Identity, unknown, []float64{1}, 1)

	want := "1 0 0 rg\n" + squareOps + "f\n" +
		"1 .5 .5 rg\n" + squareOps + "f\n" +
		"1 1 1 rg\n" + squareOps + "f\n" +
		"0 1 0 rg\n" + squareOps + "f\n"
	if diff := cmp.Diff(want, string(d.Content())); diff != "" {
		t.Errorf("unexpected content (-want +got):\n%s", diff)
	}
}

func TestAlphaInterning(t *testing.T) {
	d, _, _ := newTestDevice()
	p := square()
	id := matrix.Identity
	black := []float64{0}

	d.FillPath(p, false, id, color.DeviceGray, black, 0.5)
	d.FillPath(p, false, id, color.DeviceGray, black, 0.5)
	d.FillPath(p, false, id, color.DeviceGray, black, 1)
	d.FillPath(p, false, id, color.DeviceGray, black, 0.5)
	d.StrokePath(p, nil, id, color.DeviceGray, black, 0.5)

	want := "/Alp0 gs\n" + squareOps + "f\n" +
		squareOps + "f\n" +
		"/Alp1 gs\n" + squareOps + "f\n" +
		"/Alp0 gs\n" + squareOps + "f\n" +
		"/Alp2 gs\n1 w\n0 J\n0 j\n10 M\n" + squareOps + "S\n"
	if diff := cmp.Diff(want, string(d.Content())); diff != "" {
		t.Errorf("unexpected content (-want +got):\n%s", diff)
	}

	egs, _ := resource(d, "ExtGState").(pdf.Dict)
	if len(egs) != 3 {
		t.Fatalf("%d ExtGState resources, want 3", len(egs))
	}
	if len(d.alphas) != 3 {
		t.Errorf("%d alpha entries, want 3", len(d.alphas))
	}
}

func TestAlphaDict(t *testing.T) {
	d, data, _ := newTestDevice()
	d.StrokePath(square(), nil, matrix.Identity, color.DeviceGray, []float64{0}, 0.25)

	ref, ok := resource(d, "ExtGState/Alp0").(pdf.Reference)
	if !ok {
		t.Fatal("Alp0 is not a reference")
	}
	obj, err := data.Get(ref)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(pdf.Dict{"CA": pdf.Number(0.25)}, obj); diff != "" {
		t.Errorf("unexpected ExtGState (-want +got):\n%s", diff)
	}
}

func TestCTM(t *testing.T) {
	d, _, _ := newTestDevice()
	black := []float64{0}
	M1 := matrix.Matrix{2, 0, 0, 2, 10, 20}
	M2 := matrix.Matrix{2, 0, 0, 2, 30, 20}

	d.FillPath(square(), false, M1, color.DeviceGray, black, 1)
	d.FillPath(square(), false, M1, color.DeviceGray, black, 1)
	d.FillPath(square(), false, M2, color.DeviceGray, black, 1)

	// the second matrix differs from the first by a translation of 20 in
	// device space, which is 10 units in the old user space
	want := "2 0 0 2 10 20 cm\n" + squareOps + "f\n" +
		squareOps + "f\n" +
		"1 0 0 1 10 0 cm\n" + squareOps + "f\n"
	if diff := cmp.Diff(want, string(d.Content())); diff != "" {
		t.Errorf("unexpected content (-want +got):\n%s", diff)
	}
}

// TestCTMConcatenation checks that the product of all "cm" operators in
// the content stream equals the tracked transformation matrix, also after
// many changes between matrices which cannot be written exactly with a
// few decimal digits.
func TestCTMConcatenation(t *testing.T) {
	d, _, _ := newTestDevice()
	img := image.NewGray(image.Rect(0, 0, 3, 3))
	black := []float64{0}

	for range 50 {
		if err := d.FillImage(img, matrix.Scale(600, 600), 1); err != nil {
			t.Fatal(err)
		}
		d.FillPath(square(), false, matrix.Identity, color.DeviceGray, black, 1)
	}
	d.FillPath(square(), false, matrix.Matrix{1.0 / 3, 0, 0, 1.0 / 7, 0.1, 0.2}, color.DeviceGray, black, 1)

	M := matrix.Identity
	numCM := 0
	for _, line := range strings.Split(string(d.Content()), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 7 || fields[6] != "cm" {
			continue
		}
		var delta matrix.Matrix
		for i := range delta {
			x, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				t.Fatalf("malformed cm operator %q: %v", line, err)
			}
			delta[i] = x
		}
		M = delta.Mul(M)
		numCM++
	}
	if numCM != 101 {
		t.Errorf("found %d cm operators, want 101", numCM)
	}

	want := d.top().ctm
	if diff := cmp.Diff(want, M, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("concatenated cm operators differ from CTM (-want +got):\n%s", diff)
	}
}

func TestSingularCTM(t *testing.T) {
	d, _, _ := newTestDevice()
	black := []float64{0}

	d.FillPath(square(), false, matrix.Scale(0, 0), color.DeviceGray, black, 1)
	d.FillPath(square(), false, matrix.Identity, color.DeviceGray, black, 1)
	if d.Err != nil {
		t.Fatal(d.Err)
	}
	if d.top().ctm != matrix.Identity {
		t.Errorf("CTM is %v, want identity", d.top().ctm)
	}
}

func TestStrokeStyle(t *testing.T) {
	d, _, _ := newTestDevice()
	p := (&graphics.Path{}).MoveTo(0, 0).LineTo(10, 0)
	id := matrix.Identity
	black := []float64{0}

	style := &graphics.StrokeStyle{
		LineWidth:  2,
		Cap:        graphics.LineCapTriangle,
		Join:       graphics.LineJoinMiterXPS,
		MiterLimit: 4,
	}
	same := *style
	dashed := style.WithDash([]float64{3, 1}, 0.5)
	round := *style
	round.Cap = graphics.LineCapRound

	d.StrokePath(p, style, id, color.DeviceGray, black, 1)
	d.StrokePath(p, &same, id, color.DeviceGray, black, 1)
	d.StrokePath(p, dashed, id, color.DeviceGray, black, 1)
	d.StrokePath(p, &round, id, color.DeviceGray, black, 1)

	line := "0 0 m\n10 0 l\nS\n"
	want := "2 w\n0 J\n0 j\n4 M\n" + line +
		line +
		"[3 1] .5 d\n" + line +
		"1 J\n[] 0 d\n" + line
	if diff := cmp.Diff(want, string(d.Content())); diff != "" {
		t.Errorf("unexpected content (-want +got):\n%s", diff)
	}
}

func TestFontRejection(t *testing.T) {
	cases := []*testFont{
		{name: "Proc", procedural: true},
		{name: "Subst", substitute: true},
		{name: "Bitmap", noEmbed: true},
	}
	for _, f := range cases {
		t.Run(f.name, func(t *testing.T) {
			d, _, fonts := newTestDevice()
			text := &graphics.Text{}
			text.Add(&graphics.TextSpan{
				Font:   f,
				Trm:    matrix.Identity,
				Glyphs: []graphics.Glyph{{ID: 1}},
			})
			err := d.FillText(text, matrix.Identity, color.DeviceGray, []float64{0}, 1)
			if !errors.Is(err, ErrUnsupportedFont) {
				t.Errorf("expected ErrUnsupportedFont, got %v", err)
			}
			if d.Err != nil {
				t.Errorf("device error set: %v", d.Err)
			}
			if fonts.count != 0 {
				t.Error("rejected font was embedded")
			}
		})
	}
}

func TestForeignFontDefaultEmbedder(t *testing.T) {
	// the default font embedder only handles sfnt fonts
	d := New(pdf.NewData(pdf.V1_7), nil, nil, nil)
	text := &graphics.Text{}
	text.Add(&graphics.TextSpan{
		Font:   &testFont{name: "Test", advance: 0.5},
		Trm:    matrix.Identity,
		Glyphs: []graphics.Glyph{{ID: 1}},
	})
	err := d.FillText(text, matrix.Identity, color.DeviceGray, []float64{0}, 1)
	if !errors.Is(err, ErrUnsupportedFont) {
		t.Errorf("expected ErrUnsupportedFont, got %v", err)
	}
}

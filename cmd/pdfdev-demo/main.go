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

// Pdfdev-demo draws a sample page using every operation of the PDF
// device and writes the result as a PDF file.
//
// Usage:
//
//	pdfdev-demo [-c] [-v] [-o out.pdf]
//
// Without -o, the PDF file is written to standard output.  Output to a
// terminal is refused.
package main

import (
	"flag"
	"fmt"
	"image"
	stdcolor "image/color"
	"io"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/term"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdevice/device"
	"seehuhn.de/go/pdfdevice/graphics"
	"seehuhn.de/go/pdfdevice/graphics/color"
	"seehuhn.de/go/pdfdevice/layout"
	"seehuhn.de/go/pdfdevice/pdf"
	"seehuhn.de/go/pdfdevice/separation"
)

// A4 is the size of an A4 page in PDF units.
var A4 = rect.Rect{URx: 595.276, URy: 841.89}

func main() {
	out := flag.String("o", "", "output file name")
	compress := flag.Bool("c", false, "compress streams")
	verbose := flag.Bool("v", false, "log resource allocation")
	flag.Parse()

	if *verbose {
		device.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var w io.Writer
	if *out == "" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "refusing to write PDF data to a terminal, use -o")
			os.Exit(1)
		}
		w = os.Stdout
	} else {
		fd, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer fd.Close()
		w = fd
	}

	data := pdf.NewData(pdf.V1_7)
	data.Compress = *compress
	err := writeDocument(data)
	if err == nil {
		err = data.Write(w)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeDocument adds a single page document to data.
func writeDocument(data *pdf.Data) error {
	seps := separation.New(false)
	err := seps.AddEquivalents("Corporate Blue", 0x1f4fa8ff, 0x8c5a0000)
	if err != nil {
		return err
	}

	d := device.NewPage(data, A4, &device.Options{Separations: seps})
	err = drawPage(d)
	if err != nil {
		return err
	}
	err = d.Close()
	if err != nil {
		return err
	}

	contentRef, err := data.Add(pdf.Dict{})
	if err != nil {
		return err
	}
	err = data.UpdateStream(contentRef, d.Content())
	if err != nil {
		return err
	}

	pagesRef := data.Alloc()
	pageRef, err := data.Add(pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Parent":    pagesRef,
		"MediaBox":  pdf.Array{pdf.Number(A4.LLx), pdf.Number(A4.LLy), pdf.Number(A4.URx), pdf.Number(A4.URy)},
		"Resources": d.Resources(),
		"Contents":  contentRef,
	})
	if err != nil {
		return err
	}
	err = data.Put(pagesRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  pdf.Array{pageRef},
		"Count": pdf.Integer(1),
	})
	if err != nil {
		return err
	}
	data.Root, err = data.Add(pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": pagesRef,
	})
	return err
}

// drawPage paints the sample page.  The coordinate system has the origin
// in the top left corner and the y axis pointing down.
func drawPage(d *device.Device) error {
	shaper, err := layout.New(goregular.TTF, &layout.Options{YDown: true})
	if err != nil {
		return err
	}
	id := matrix.Identity
	black := []float64{0}

	// headline, filled and then stroked on top
	title := &graphics.Text{}
	title.Add(shaper.Shape("PDF output device", 28, 72, 100))
	d.FillText(title, id, color.DeviceRGB, []float64{0.9, 0.9, 1}, 1)
	d.StrokeText(title, graphics.NewStrokeStyle().WithDash([]float64{1, 0.5}, 0), id,
		color.DeviceGray, black, 1)

	body := shaper.Paragraph("The quick brown fox jumps over the lazy dog. "+
		"Every painting operation of the device is used on this page: paths, "+
		"text, images, transparency groups and soft masks.",
		11, 14, 450, 72, 140)
	d.FillText(body, id, color.DeviceGray, black, 1)
	d.IgnoreText(body, id)

	// paths with fill and stroke
	box := (&graphics.Path{}).Rect(0, 0, 100, 60)
	d.FillPath(box, false, matrix.Translate(72, 200), color.DeviceCMYK, []float64{0, 0.2, 0.8, 0}, 1)
	thick := graphics.NewStrokeStyle()
	thick.LineWidth = 4
	thick.Join = graphics.LineJoinRound
	d.StrokePath(box, thick, matrix.Translate(72, 200), color.DeviceRGB, []float64{0.6, 0.1, 0.1}, 0.8)
	d.FillPath(circle(30), true, matrix.Translate(260, 230), color.Separation("Corporate Blue", nil, nil), []float64{0.7}, 1)
	lab, err := color.Lab([]float64{0.9505, 1, 1.089})
	if err == nil {
		d.FillPath(circle(30), false, matrix.Translate(340, 230), lab, []float64{60, 40, -20}, 1)
	}

	// text used as a clipping path
	clip := &graphics.Text{}
	clip.Add(shaper.Shape("CLIP", 60, 72, 340))
	d.ClipText(clip, id)
	for i := range 10 {
		stripe := (&graphics.Path{}).Rect(72+float64(i)*16, 280, 8, 80)
		d.FillPath(stripe, false, id, color.DeviceRGB, []float64{float64(i) / 9, 0.3, 1 - float64(i)/9}, 1)
	}
	d.PopClip()

	d.ClipStrokePath(circle(40), thick, matrix.Translate(400, 320))
	d.FillPath((&graphics.Path{}).Rect(350, 270, 100, 100), false, id, color.DeviceGray, []float64{0.3}, 1)
	d.PopClip()

	// a transparency group with two overlapping discs
	bbox := rect.Rect{LLx: 60, LLy: 400, URx: 260, URy: 540}
	d.BeginGroup(bbox, color.DeviceRGB, true, false, graphics.BlendMultiply, 0.7)
	d.FillPath(circle(50), false, matrix.Translate(130, 470), color.DeviceRGB, []float64{1, 0.8, 0}, 1)
	d.FillPath(circle(50), false, matrix.Translate(190, 470), color.DeviceRGB, []float64{0, 0.7, 1}, 0.9)
	d.EndGroup()

	// a soft mask from a gradient image
	ramp := gradient(64, 16)
	maskBox := rect.Rect{LLx: 300, LLy: 400, URx: 520, URy: 470}
	d.BeginMask(maskBox, true, color.DeviceGray, black)
	d.FillImage(ramp, matrix.Scale(220, 70).Mul(matrix.Translate(300, 400)), 1)
	d.EndMask()
	d.FillPath((&graphics.Path{}).Rect(300, 400, 220, 70), false, id, color.DeviceRGB, []float64{0.8, 0, 0.2}, 1)
	d.PopClip()

	// images
	d.FillImage(ramp, matrix.Scale(200, 50).Mul(matrix.Translate(72, 580)), 1)
	d.FillImageMask(checkerboard(8), matrix.Scale(80, 80).Mul(matrix.Translate(300, 580)),
		color.DeviceRGB, []float64{0, 0.5, 0}, 1)
	d.ClipImageMask(checkerboard(8), matrix.Scale(80, 80).Mul(matrix.Translate(400, 580)))
	d.PopClip()

	// tiling patterns and shadings are drawn as plain content
	tile := rect.Rect{URx: 10, URy: 10}
	if _, err := d.BeginTile(tile, tile, 10, 10, id, 1); err == nil {
		d.FillPath((&graphics.Path{}).Rect(72, 700, 10, 10), false, id, color.DeviceGray, black, 1)
		d.EndTile()
	}
	d.FillShade(id, 1)

	return d.Err
}

// circle returns a circle of radius r around the origin, built from four
// Bézier curves.
func circle(r float64) *graphics.Path {
	k := r * 4 * (math.Sqrt2 - 1) / 3
	p := &graphics.Path{}
	p.MoveTo(r, 0)
	p.CurveTo(r, k, k, r, 0, r)
	p.CurveTo(-k, r, -r, k, -r, 0)
	p.CurveTo(-r, -k, -k, -r, 0, -r)
	p.CurveTo(k, -r, r, -k, r, 0)
	return p.Close()
}

func gradient(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		v := uint8(255 * x / (w - 1))
		for y := range h {
			img.SetNRGBA(x, y, stdcolor.NRGBA{R: v, G: v, B: 255 - v/2, A: 255})
		}
	}
	return img
}

// checkerboard returns black squares on a transparent background.
func checkerboard(n int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	for y := range n {
		for x := range n {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, stdcolor.NRGBA{A: 255})
			}
		}
	}
	return img
}

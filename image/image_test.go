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

package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfdevice/pdf"
)

func getStream(t *testing.T, data *pdf.Data, ref pdf.Reference) (pdf.Dict, []byte) {
	t.Helper()
	obj, err := data.Get(ref)
	if err != nil {
		t.Fatal(err)
	}
	stm, ok := obj.(*pdf.Stream)
	if !ok {
		t.Fatalf("expected a stream, got %T", obj)
	}
	body, err := io.ReadAll(stm.R)
	if err != nil {
		t.Fatal(err)
	}
	return stm.Dict, body
}

func TestEmbedGray(t *testing.T) {
	data := pdf.NewData(pdf.V1_7)
	e := NewEmbedder(data, nil)

	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.Pix = []byte{0, 64, 128, 255}

	ref, err := e.Embed(img, false)
	if err != nil {
		t.Fatal(err)
	}
	dict, body := getStream(t, data, ref)
	if dict["ColorSpace"] != pdf.Name("DeviceGray") {
		t.Errorf("ColorSpace = %v", dict["ColorSpace"])
	}
	if d := cmp.Diff([]byte{0, 64, 128, 255}, body); d != "" {
		t.Errorf("unexpected samples (-want +got):\n%s", d)
	}

	ref2, err := e.Embed(img, false)
	if err != nil {
		t.Fatal(err)
	}
	if ref2 != ref {
		t.Errorf("same image embedded twice: %s, %s", ref, ref2)
	}
	if data.NumObjects() != 1 {
		t.Errorf("%d objects written, want 1", data.NumObjects())
	}
}

func TestEmbedAlpha(t *testing.T) {
	data := pdf.NewData(pdf.V1_7)
	e := NewEmbedder(data, nil)

	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{B: 255, A: 128})

	ref, err := e.Embed(img, false)
	if err != nil {
		t.Fatal(err)
	}
	dict, body := getStream(t, data, ref)
	if d := cmp.Diff([]byte{255, 0, 0, 0, 0, 255}, body); d != "" {
		t.Errorf("unexpected samples (-want +got):\n%s", d)
	}
	maskRef, ok := dict["SMask"].(pdf.Reference)
	if !ok {
		t.Fatal("missing SMask")
	}
	_, alpha := getStream(t, data, maskRef)
	if d := cmp.Diff([]byte{255, 128}, alpha); d != "" {
		t.Errorf("unexpected alpha (-want +got):\n%s", d)
	}
}

func TestEmbedMask(t *testing.T) {
	data := pdf.NewData(pdf.V1_7)
	e := NewEmbedder(data, nil)

	img := image.NewGray(image.Rect(0, 0, 9, 1))
	for x := range 9 {
		if x%2 == 1 {
			img.Pix[x] = 255
		}
	}

	ref, err := e.Embed(img, true)
	if err != nil {
		t.Fatal(err)
	}
	dict, body := getStream(t, data, ref)
	if dict["ImageMask"] != pdf.Boolean(true) {
		t.Error("ImageMask not set")
	}
	// dark pixels are painted (bit 0), light pixels are not (bit 1)
	if d := cmp.Diff([]byte{0b01010101, 0b00000000}, body); d != "" {
		t.Errorf("unexpected mask (-want +got):\n%s", d)
	}

	// the same image can be embedded both ways
	ref2, err := e.Embed(img, false)
	if err != nil {
		t.Fatal(err)
	}
	if ref2 == ref {
		t.Error("mask and image share a reference")
	}
}

func TestMaxPixels(t *testing.T) {
	data := pdf.NewData(pdf.V1_7)
	e := NewEmbedder(data, &Options{MaxPixels: 100})

	img := image.NewRGBA(image.Rect(0, 0, 40, 10))
	ref, err := e.Embed(img, false)
	if err != nil {
		t.Fatal(err)
	}
	dict, _ := getStream(t, data, ref)
	w := dict["Width"].(pdf.Integer)
	h := dict["Height"].(pdf.Integer)
	if w*h > 100 || w != 4*h {
		t.Errorf("image scaled to %dx%d", w, h)
	}
}

func TestJPEG(t *testing.T) {
	data := pdf.NewData(pdf.V1_7)
	e := NewEmbedder(data, &Options{JPEGQuality: 80})

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	ref, err := e.Embed(img, false)
	if err != nil {
		t.Fatal(err)
	}
	dict, body := getStream(t, data, ref)
	if dict["Filter"] != pdf.Name("DCTDecode") {
		t.Errorf("Filter = %v", dict["Filter"])
	}
	if !bytes.HasPrefix(body, []byte{0xff, 0xd8}) {
		t.Error("missing JPEG start-of-image marker")
	}
}

func TestEmpty(t *testing.T) {
	e := NewEmbedder(pdf.NewData(pdf.V1_7), nil)
	_, err := e.Embed(image.NewGray(image.Rectangle{}), false)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	_, err = e.Embed(nil, false)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

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

// Package image converts Go images into PDF image XObjects.
//
// An [Embedder] writes each image at most once; later requests for the same
// image value return the same reference.  The device package uses an
// Embedder to implement its image painting operations.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"math"
	"reflect"

	"golang.org/x/image/draw"

	"seehuhn.de/go/pdfdevice/pdf"
)

// Options control how images are embedded.
type Options struct {
	// MaxPixels, if positive, limits the number of pixels in an embedded
	// image.  Larger images are scaled down, preserving the aspect ratio.
	MaxPixels int

	// Compress selects FlateDecode compression for the image samples.
	Compress bool

	// JPEGQuality, if positive, selects lossy DCTDecode compression with
	// the given quality (1-100) for colour images without transparency.
	JPEGQuality int
}

// ErrEmpty is returned when an image without pixels is embedded.
var ErrEmpty = errors.New("image has no pixels")

// Embedder writes images to a PDF file.
type Embedder struct {
	w   pdf.Putter
	opt Options

	images map[any]pdf.Reference
	masks  map[any]pdf.Reference
}

// NewEmbedder returns an Embedder which stores images in w.
// If opt is nil, default options are used.
func NewEmbedder(w pdf.Putter, opt *Options) *Embedder {
	if opt == nil {
		opt = &Options{}
	}
	return &Embedder{
		w:      w,
		opt:    *opt,
		images: make(map[any]pdf.Reference),
		masks:  make(map[any]pdf.Reference),
	}
}

// Embed writes img as an image XObject and returns its reference.
// If mask is true, the image is written as a stencil mask: pixels which are
// at least half opaque and dark are painted with the current fill colour.
func (e *Embedder) Embed(img image.Image, mask bool) (pdf.Reference, error) {
	if img == nil {
		return 0, ErrEmpty
	}
	cache := e.images
	if mask {
		cache = e.masks
	}
	key, cacheable := cacheKey(img)
	if cacheable {
		if ref, ok := cache[key]; ok {
			return ref, nil
		}
	}

	b := img.Bounds()
	if b.Empty() {
		return 0, ErrEmpty
	}
	img = e.limitSize(img)

	var ref pdf.Reference
	var err error
	if mask {
		ref, err = e.writeMask(img)
	} else {
		ref, err = e.writeImage(img)
	}
	if err != nil {
		return 0, err
	}

	if cacheable {
		cache[key] = ref
	}
	return ref, nil
}

// cacheKey returns a map key which identifies img.  Only images of
// comparable type can be cached.
func cacheKey(img image.Image) (any, bool) {
	if !reflect.TypeOf(img).Comparable() {
		return nil, false
	}
	return img, true
}

// limitSize scales img down, if needed, so that it has at most
// e.opt.MaxPixels pixels.
func (e *Embedder) limitSize(img image.Image) image.Image {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if e.opt.MaxPixels <= 0 || n <= e.opt.MaxPixels {
		return img
	}

	scale := math.Sqrt(float64(e.opt.MaxPixels) / float64(n))
	w := max(1, int(float64(b.Dx())*scale))
	h := max(1, int(float64(b.Dy())*scale))
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func (e *Embedder) writeImage(img image.Image) (pdf.Reference, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	dict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(width),
		"Height":           pdf.Integer(height),
		"BitsPerComponent": pdf.Integer(8),
	}

	var data []byte
	var alpha []byte
	switch img := img.(type) {
	case *image.Gray:
		dict["ColorSpace"] = pdf.Name("DeviceGray")
		data = make([]byte, 0, width*height)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := img.PixOffset(b.Min.X, y)
			data = append(data, img.Pix[i:i+width]...)
		}
	case *image.CMYK:
		dict["ColorSpace"] = pdf.Name("DeviceCMYK")
		data = make([]byte, 0, 4*width*height)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := img.PixOffset(b.Min.X, y)
			data = append(data, img.Pix[i:i+4*width]...)
		}
	default:
		// convert to NRGBA format
		rgba := image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

		dict["ColorSpace"] = pdf.Name("DeviceRGB")
		data = make([]byte, 0, 3*width*height)
		alpha = make([]byte, 0, width*height)
		opaque := true
		for i := 0; i < len(rgba.Pix); i += 4 {
			data = append(data, rgba.Pix[i:i+3]...)
			a := rgba.Pix[i+3]
			alpha = append(alpha, a)
			if a != 0xff {
				opaque = false
			}
		}
		if opaque {
			alpha = nil
		}

		if alpha == nil && e.opt.JPEGQuality > 0 {
			return e.writeJPEG(dict, rgba)
		}
	}

	if alpha != nil {
		maskRef, err := e.writeStream(pdf.Dict{
			"Type":             pdf.Name("XObject"),
			"Subtype":          pdf.Name("Image"),
			"Width":            pdf.Integer(width),
			"Height":           pdf.Integer(height),
			"ColorSpace":       pdf.Name("DeviceGray"),
			"BitsPerComponent": pdf.Integer(8),
		}, alpha, e.opt.Compress)
		if err != nil {
			return 0, err
		}
		dict["SMask"] = maskRef
	}

	return e.writeStream(dict, data, e.opt.Compress)
}

func (e *Embedder) writeJPEG(dict pdf.Dict, img *image.NRGBA) (pdf.Reference, error) {
	buf := &bytes.Buffer{}
	err := jpeg.Encode(buf, img, &jpeg.Options{Quality: min(e.opt.JPEGQuality, 100)})
	if err != nil {
		return 0, fmt.Errorf("jpeg encoding: %w", err)
	}
	dict["Filter"] = pdf.Name("DCTDecode")
	return e.writeStream(dict, buf.Bytes(), false)
}

// writeMask writes a 1-bit stencil mask.  A sample value of 0 marks the
// painted pixels.
func (e *Embedder) writeMask(img image.Image) (pdf.Reference, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	gray := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)

	stride := (width + 7) / 8
	data := make([]byte, stride*height)
	for y := range height {
		for x := range width {
			i := gray.PixOffset(x, y)
			r, g, bl, a := gray.Pix[i], gray.Pix[i+1], gray.Pix[i+2], gray.Pix[i+3]
			lum := (299*int(r) + 587*int(g) + 114*int(bl)) / 1000
			if a >= 0x80 && lum < 0x80 {
				continue
			}
			data[y*stride+x/8] |= 0x80 >> (x % 8)
		}
	}

	dict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(width),
		"Height":           pdf.Integer(height),
		"ImageMask":        pdf.Boolean(true),
		"BitsPerComponent": pdf.Integer(1),
	}
	return e.writeStream(dict, data, e.opt.Compress)
}

func (e *Embedder) writeStream(dict pdf.Dict, data []byte, compress bool) (pdf.Reference, error) {
	stm, err := pdf.NewStream(dict, data, compress)
	if err != nil {
		return 0, err
	}
	ref := e.w.Alloc()
	err = e.w.Put(ref, stm)
	if err != nil {
		return 0, err
	}
	return ref, nil
}

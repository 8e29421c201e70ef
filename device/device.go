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
	"fmt"
	"image"
	"log/slog"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfdevice/font"
	"seehuhn.de/go/pdfdevice/font/sfntfont"
	"seehuhn.de/go/pdfdevice/graphics/color"
	pdfimage "seehuhn.de/go/pdfdevice/image"
	"seehuhn.de/go/pdfdevice/pdf"
	"seehuhn.de/go/pdfdevice/separation"
)

// Store is the object store used by a device.
// [*pdf.Data] implements this interface.
type Store interface {
	// Add stores obj as a new indirect object.
	Add(obj pdf.Object) (pdf.Reference, error)

	// UpdateStream turns the object ref into a stream with the given
	// contents.
	UpdateStream(ref pdf.Reference, data []byte) error
}

// ImageEmbedder writes images to the PDF file.
// [*image.Embedder] implements this interface.
type ImageEmbedder interface {
	// Embed writes img as an image XObject.  If mask is true, the image
	// is written as a stencil mask.
	Embed(img image.Image, mask bool) (pdf.Reference, error)
}

// Options control the construction of a device.
type Options struct {
	// TopCTM, if not the zero matrix or the identity, is written as a
	// "cm" operator at the start of the content stream.
	TopCTM matrix.Matrix

	// Fonts is used to embed the fonts of text spans.  If this is nil and
	// the store implements [pdf.Putter], the fonts from package sfntfont
	// are supported.
	Fonts font.Embedder

	// Images is used to embed images.  If this is nil and the store
	// implements [pdf.Putter], images are embedded using package image.
	Images ImageEmbedder

	// Separations, if set, supplies the colorants used by separation
	// colour spaces.
	Separations separation.Query

	// Logger overrides the package-wide logger set by [SetLogger].
	Logger *slog.Logger
}

// Device writes a PDF content stream.
//
// Painting commands are received one at a time.  For each command, the
// device compares the requested graphics state with the state it has
// already written and emits only the operators needed to reach the new
// state.  Resources (fonts, images, extended graphics states and form
// XObjects) are created in the store and entered into the resource
// dictionary.
//
// A Device is not safe for concurrent use.
type Device struct {
	// Err is the first fatal error encountered.  Once set, all further
	// operations fail with this error.
	Err error

	store     Store
	resources pdf.Dict
	content   *bytes.Buffer

	fonts       font.Embedder
	images      ImageEmbedder
	separations separation.Query
	log         *slog.Logger

	stack  []*frame
	inText bool
	closed bool

	alphas    []alphaEntry
	groups    []groupEntry
	fontTable []font.Font
	imageNums map[uint32]bool
	numForms  int
	numSMasks int
}

// New allocates a new device which writes into buf and records its
// resources in res.  If buf is nil, a new buffer is allocated.  If res is
// nil, a new resource dictionary is allocated.  If opt is nil, default
// options are used.
func New(store Store, res pdf.Dict, buf *bytes.Buffer, opt *Options) *Device {
	if opt == nil {
		opt = &Options{}
	}
	if buf == nil {
		buf = &bytes.Buffer{}
	}
	if res == nil {
		res = pdf.Dict{}
	}

	d := &Device{
		store:       store,
		resources:   res,
		content:     buf,
		fonts:       opt.Fonts,
		images:      opt.Images,
		separations: opt.Separations,
		log:         opt.Logger,
		imageNums:   make(map[uint32]bool),
	}
	if p, ok := store.(pdf.Putter); ok {
		if d.fonts == nil {
			d.fonts = sfntfont.NewRegistry(p, nil)
		}
		if d.images == nil {
			d.images = pdfimage.NewEmbedder(p, nil)
		}
	}
	if d.log == nil {
		d.log = Logger()
	}

	d.stack = []*frame{{
		ctm: matrix.Identity,
		paint: [2]paint{
			{space: color.DeviceGray, alpha: 1},
			{space: color.DeviceGray, alpha: 1},
		},
		font: -1,
		buf:  buf,
	}}

	top := opt.TopCTM
	if top != (matrix.Matrix{}) && top != matrix.Identity {
		d.write(formatMatrix(top), "cm")
	}

	return d
}

// Resources returns the resource dictionary of the content stream.
func (d *Device) Resources() pdf.Dict {
	return d.resources
}

// Content returns the content stream written so far.
// The returned slice is only valid until the next device operation.
func (d *Device) Content() []byte {
	return d.content.Bytes()
}

// Depth returns the number of frames on the graphics state stack.
// The value is 1 when all clips, groups and masks have been ended.
func (d *Device) Depth() int {
	return len(d.stack)
}

// Close ends an open text object and checks that the graphics state stack
// is balanced.  The device cannot be used after Close.
func (d *Device) Close() error {
	if err := d.check(); err != nil {
		return err
	}
	d.endText()
	d.closed = true
	if len(d.stack) != 1 {
		return fmt.Errorf("%d frames left: %w", len(d.stack)-1, ErrUnbalanced)
	}
	return d.Err
}

// check returns the error which prevents the device from being used.
func (d *Device) check() error {
	if d.Err != nil {
		return d.Err
	}
	if d.closed {
		return ErrClosed
	}
	return nil
}

// setErr records err as the device error, unless an earlier error is
// already stored.
func (d *Device) setErr(err error) {
	if err != nil && d.Err == nil {
		d.Err = err
	}
}

// write writes one operator line into the buffer of the top frame.
// The arguments are separated by spaces.
func (d *Device) write(args ...any) {
	_, err := fmt.Fprintln(d.top().buf, args...)
	d.setErr(err)
}

// writeRaw writes s into the buffer of the top frame, without adding
// separators.
func (d *Device) writeRaw(s string) {
	_, err := d.top().buf.WriteString(s)
	d.setErr(err)
}

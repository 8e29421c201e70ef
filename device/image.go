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

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfdevice/graphics/color"
	"seehuhn.de/go/pdfdevice/pdf"
)

var errNoImageEmbedder = errors.New("no image embedder")

// imageMatrix converts the transformation for an image in the unit square
// with the origin at the top left into the PDF image space, where the
// origin is at the bottom left.
func imageMatrix(ctm matrix.Matrix) matrix.Matrix {
	return matrix.Translate(0, -1).Mul(matrix.Scale(1, -1)).Mul(ctm)
}

// embedImage writes img to the PDF file.  Failures are logged and the
// image is skipped.
func (d *Device) embedImage(img image.Image, mask bool) (pdf.Reference, bool) {
	if d.images == nil {
		d.log.Warn("image skipped", "error", errNoImageEmbedder)
		return 0, false
	}
	ref, err := d.images.Embed(img, mask)
	if err != nil {
		d.log.Warn("image skipped", "mask", mask, "error", err)
		return 0, false
	}
	return ref, true
}

// FillImage paints img.  The image occupies the unit square in the
// coordinate system given by ctm, with the first pixel row at y=0.
//
// If the image cannot be embedded, a warning is logged and nothing is
// painted.
func (d *Device) FillImage(img image.Image, ctm matrix.Matrix, alpha float64) error {
	if err := d.check(); err != nil {
		return err
	}
	d.endText()

	ref, ok := d.embedImage(img, false)
	if !ok {
		return nil
	}
	if err := d.setAlpha(alpha, roleFill); err != nil {
		return d.callErr(err)
	}
	d.setCTM(imageMatrix(ctm))
	d.write(imageName(ref), "Do")
	if err := d.registerImage(ref); err != nil {
		return d.callErr(err)
	}
	return d.Err
}

// FillImageMask paints the colour c through the stencil mask img.
//
// If the mask cannot be embedded, a warning is logged and nothing is
// painted.
func (d *Device) FillImageMask(img image.Image, ctm matrix.Matrix, cs color.Space, c []float64, alpha float64) error {
	if err := d.check(); err != nil {
		return err
	}
	d.endText()

	ref, ok := d.embedImage(img, true)
	if !ok {
		return nil
	}

	d.push(nil, frameClip, finalizer{})
	err := d.setAlpha(alpha, roleFill)
	if err == nil {
		err = d.setColor(cs, c, roleFill)
	}
	if err == nil {
		d.setCTM(imageMatrix(ctm))
		d.write(imageName(ref), "Do")
		err = d.registerImage(ref)
	}
	d.pop()
	if err != nil {
		return d.callErr(err)
	}
	return d.Err
}

// ClipImageMask intersects the clipping path with a stencil mask.  This is
// not supported: the clip has no effect, but a frame is pushed so that the
// matching PopClip is balanced.
func (d *Device) ClipImageMask(img image.Image, ctm matrix.Matrix) error {
	if err := d.check(); err != nil {
		return err
	}
	d.endText()
	d.push(nil, frameClip, finalizer{})
	return d.Err
}

func imageName(ref pdf.Reference) string {
	return "/Img" + strconv.FormatUint(uint64(ref.Number()), 10)
}

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
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdevice/graphics"
	"seehuhn.de/go/pdfdevice/graphics/color"
	"seehuhn.de/go/pdfdevice/pdf"
)

// BeginGroup starts a transparency group.  All painting operations up to
// the matching EndGroup are collected into a form XObject, which is then
// composited onto the page using the blend mode bm and the constant
// alpha value alpha.
//
// Groups with the same isolated and knockout flags, alpha and colour
// space share one group attributes dictionary, but each call creates a
// new form XObject.
func (d *Device) BeginGroup(bbox rect.Rect, cs color.Space, isolated, knockout bool, bm graphics.BlendMode, alpha float64) error {
	if err := d.check(); err != nil {
		return err
	}
	d.endText()

	formRef, num, err := d.newForm(bbox, isolated, knockout, alpha, cs)
	if err != nil {
		return d.callErr(err)
	}
	err = d.internBlendMode(bm)
	if err != nil {
		return d.callErr(err)
	}
	err = d.setAlpha(alpha, roleFill)
	if err != nil {
		return d.callErr(err)
	}

	// The blend mode is not tracked, so it is scoped to the "Do".
	d.write("q", "/BlendMode"+strconv.Itoa(int(bm)), "gs", "/Fm"+strconv.Itoa(num), "Do", "Q")

	f := d.push(&bytes.Buffer{}, frameGroup, finalizer{kind: finalizeForm, ref: formRef})
	f.knockout = knockout
	// The group alpha is applied when the form is painted; inside the form,
	// painting starts with the default alpha.  The form content is drawn
	// in the coordinate system of the "Do" operator.
	f.paint[roleFill].alpha = 1
	f.paint[roleStroke].alpha = 1
	return d.Err
}

// EndGroup ends the transparency group started by the matching call to
// BeginGroup and writes the content stream of the group's form XObject.
func (d *Device) EndGroup() error {
	if err := d.check(); err != nil {
		return err
	}
	if d.top().kind != frameGroup {
		return errNoGroup
	}
	d.endText()
	d.pop()
	return d.Err
}

// BeginMask starts the definition of a soft mask.  The painting
// operations up to the matching EndMask define the mask.  If luminosity
// is true, the luminosity of the painted content is used as the mask
// value, otherwise the alpha channel is used.  The backdrop colour is
// given in the colour space cs.
//
// After EndMask, the mask applies to all painting operations up to the
// next PopClip.
func (d *Device) BeginMask(bbox rect.Rect, luminosity bool, cs color.Space, backdrop []float64) error {
	if err := d.check(); err != nil {
		return err
	}
	d.endText()

	formRef, _, err := d.newForm(bbox, false, false, 1, cs)
	if err != nil {
		return d.callErr(err)
	}

	n := 0
	if cs != nil {
		n = cs.Channels()
	}
	bc := make(pdf.Array, n)
	for i := range n {
		var x float64
		if i < len(backdrop) {
			x = backdrop[i]
		}
		bc[i] = pdf.Number(x)
	}
	subtype := pdf.Name("Alpha")
	if luminosity {
		subtype = "Luminosity"
	}
	smaskRef, err := d.store.Add(pdf.Dict{
		"Type": pdf.Name("Mask"),
		"S":    subtype,
		"G":    formRef,
		"BC":   bc,
	})
	if err != nil {
		return d.callErr(err)
	}
	egsRef, err := d.store.Add(pdf.Dict{
		"Type":  pdf.Name("ExtGState"),
		"SMask": smaskRef,
	})
	if err != nil {
		return d.callErr(err)
	}
	num := d.numSMasks
	d.numSMasks++
	err = d.register("ExtGState/SM"+strconv.Itoa(num), egsRef)
	if err != nil {
		return d.callErr(err)
	}
	d.write("/SM"+strconv.Itoa(num), "gs")

	saved := d.top().snapshot()
	f := d.push(&bytes.Buffer{}, frameMask, finalizer{kind: finalizeForm, ref: formRef})
	f.saved = saved
	return d.Err
}

// EndMask ends the definition of a soft mask.
//
// The mask content is written as the content stream of the mask's form
// XObject.  The frame started by BeginMask stays on the stack and from
// now on writes into the enclosing content stream; it is removed by the
// next PopClip.
func (d *Device) EndMask() error {
	if err := d.check(); err != nil {
		return err
	}
	f := d.top()
	if f.kind != frameMask || f.finalize.kind != finalizeForm {
		return errNoMask
	}

	d.endText()
	d.write("Q")
	err := d.store.UpdateStream(f.finalize.ref, f.buf.Bytes())
	if err != nil {
		return d.callErr(err)
	}

	parent := d.stack[len(d.stack)-2]
	f.buf = parent.buf
	f.kind = frameClip
	f.finalize = finalizer{}
	if f.saved != nil {
		f.restoreTracked(f.saved)
		f.saved = nil
	}
	d.write("q")
	return d.Err
}

// BeginTile starts the definition of a tiling pattern.  Tiling patterns
// are not supported; the content is written as if no pattern was in
// use.  The returned value is always 0, which tells the caller that the
// tile content must be sent.
func (d *Device) BeginTile(area, view rect.Rect, xStep, yStep float64, ctm matrix.Matrix, id int) (int, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	d.endText()
	return 0, nil
}

// EndTile ends the definition of a tiling pattern.
func (d *Device) EndTile() error {
	if err := d.check(); err != nil {
		return err
	}
	d.endText()
	return nil
}

// FillShade fills the current clipping area with a shading.  Shadings are
// not supported; only the text object is closed.
func (d *Device) FillShade(ctm matrix.Matrix, alpha float64) error {
	if err := d.check(); err != nil {
		return err
	}
	d.endText()
	return nil
}

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
	"fmt"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdevice/graphics"
	"seehuhn.de/go/pdfdevice/graphics/color"
)

// beginText sets the text rendering mode and opens a text object, if none
// is open.
func (d *Device) beginText(mode graphics.TextRenderingMode) {
	d.setTextMode(mode)
	if !d.inText {
		d.write("BT")
		d.inText = true
	}
}

// endText closes the current text object, if any.
// All painting operations other than text showing call this first.
func (d *Device) endText() {
	if !d.inText {
		return
	}
	d.inText = false
	d.write("ET")
}

// FillText fills the glyphs of text.
func (d *Device) FillText(text *graphics.Text, ctm matrix.Matrix, cs color.Space, c []float64, alpha float64) error {
	if err := d.check(); err != nil {
		return err
	}
	for _, span := range text.Spans {
		d.setCTM(ctm)
		d.beginText(graphics.TextRenderingModeFill)
		if err := d.setFont(span.Font); err != nil {
			return d.callErr(err)
		}
		if err := d.setAlpha(alpha, roleFill); err != nil {
			return d.callErr(err)
		}
		if err := d.setColor(cs, c, roleFill); err != nil {
			return d.callErr(err)
		}
		d.showSpan(span)
	}
	return d.Err
}

// StrokeText strokes the outlines of the glyphs of text.
func (d *Device) StrokeText(text *graphics.Text, style *graphics.StrokeStyle, ctm matrix.Matrix, cs color.Space, c []float64, alpha float64) error {
	if err := d.check(); err != nil {
		return err
	}
	for _, span := range text.Spans {
		d.setCTM(ctm)
		d.setStrokeStyle(style)
		d.beginText(graphics.TextRenderingModeStroke)
		if err := d.setFont(span.Font); err != nil {
			return d.callErr(err)
		}
		if err := d.setAlpha(alpha, roleStroke); err != nil {
			return d.callErr(err)
		}
		if err := d.setColor(cs, c, roleStroke); err != nil {
			return d.callErr(err)
		}
		d.showSpan(span)
	}
	return d.Err
}

// ClipText intersects the clipping path with the glyph outlines of text.
// The clip stays in effect until the matching call to PopClip.
func (d *Device) ClipText(text *graphics.Text, ctm matrix.Matrix) error {
	return d.clipText(text, nil, ctm, graphics.TextRenderingModeClip)
}

// ClipStrokeText intersects the clipping path with the stroked glyph
// outlines of text.  The clip stays in effect until the matching call to
// PopClip.
func (d *Device) ClipStrokeText(text *graphics.Text, style *graphics.StrokeStyle, ctm matrix.Matrix) error {
	return d.clipText(text, style, ctm, graphics.TextRenderingModeStrokeClip)
}

func (d *Device) clipText(text *graphics.Text, style *graphics.StrokeStyle, ctm matrix.Matrix, mode graphics.TextRenderingMode) error {
	if err := d.check(); err != nil {
		return err
	}
	d.endText()
	d.push(nil, frameClip, finalizer{})
	for _, span := range text.Spans {
		d.setCTM(ctm)
		if style != nil {
			d.setStrokeStyle(style)
		}
		d.beginText(mode)
		if err := d.setFont(span.Font); err != nil {
			d.endText()
			return d.callErr(err)
		}
		d.showSpan(span)
	}
	// the clip takes effect when the text object ends
	d.endText()
	return d.Err
}

// IgnoreText writes text using the invisible text rendering mode.  The
// text does not change the page appearance, but can be searched and
// extracted.
func (d *Device) IgnoreText(text *graphics.Text, ctm matrix.Matrix) error {
	if err := d.check(); err != nil {
		return err
	}
	for _, span := range text.Spans {
		d.setCTM(ctm)
		d.beginText(graphics.TextRenderingModeInvisible)
		if err := d.setFont(span.Font); err != nil {
			return d.callErr(err)
		}
		d.showSpan(span)
	}
	return d.Err
}

// showSpan writes the glyphs of a span using "Tm" and "TJ" operators.
func (d *Device) showSpan(span *graphics.TextSpan) {
	if len(span.Glyphs) == 0 {
		return
	}
	d.writeRaw(encodeSpan(span))
}

// encodeSpan converts a span into text positioning and showing operators.
//
// Glyphs are expected to follow each other at the distance given by the
// glyph advance.  Small deviations along the writing direction are encoded
// as adjustments in the TJ array; all other deviations start a new TJ
// operator at the glyph position.
func encodeSpan(span *graphics.TextSpan) string {
	tm := span.Trm
	tm[4] = span.Glyphs[0].X
	tm[5] = span.Glyphs[0].Y
	inv := graphics.Invert(tm)

	glyphFormat := "%04x"
	if span.Font.Procedural() {
		glyphFormat = "%02x"
	}

	var b strings.Builder
	b.WriteString(formatMatrix(tm))
	b.WriteString(" Tm\n[<")
	for _, g := range span.Glyphs {
		if g.ID < 0 {
			continue
		}

		// deviation from the expected pen position, in text space units
		dev := graphics.TransformVector(inv, vec.Vec2{X: g.X - tm[4], Y: g.Y - tm[5]})
		dx := driftUnits(dev.X)
		dy := driftUnits(dev.Y)

		tm[4] = g.X
		tm[5] = g.Y

		if dx != 0 || dy != 0 {
			switch {
			case span.WMode == 0 && dy == 0:
				fmt.Fprintf(&b, ">%d<", -dx)
			case span.WMode == 1 && dx == 0:
				fmt.Fprintf(&b, ">%d<", -dy)
			default:
				b.WriteString(">]TJ\n")
				b.WriteString(formatMatrix(tm))
				b.WriteString(" Tm\n[<")
			}
		}

		fmt.Fprintf(&b, glyphFormat, g.ID)

		adv := span.Font.Advance(g.ID, span.WMode)
		if span.WMode == 0 {
			tm = graphics.PreTranslate(tm, adv, 0)
		} else {
			tm = graphics.PreTranslate(tm, 0, adv)
		}
	}
	b.WriteString(">]TJ\n")
	return b.String()
}

// driftUnits converts a distance in text space into thousandths of a text
// space unit, rounding to the nearest integer with ties away from zero.
func driftUnits(x float64) int {
	x *= 1000
	if x < 0 {
		return int(x - 0.5)
	}
	return int(x + 0.5)
}

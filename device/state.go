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
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfdevice/font"
	"seehuhn.de/go/pdfdevice/graphics"
	"seehuhn.de/go/pdfdevice/graphics/color"
	"seehuhn.de/go/pdfdevice/separation"
)

// This file implements the state-diffing emitter.  Each method compares
// the requested value with the value stored in the top frame and writes
// an operator only if they differ.

// setCTM makes ctm the current transformation matrix.  Since "cm"
// concatenates with the existing matrix, the difference between the old
// and the new matrix is written.
func (d *Device) setCTM(ctm matrix.Matrix) {
	f := d.top()
	if f.ctm == ctm {
		return
	}
	// "cm" is not allowed inside a text object
	d.endText()

	delta := ctm.Mul(graphics.Invert(f.ctm))
	f.ctm = ctm
	d.write(formatMatrix(delta), "cm")
}

// setColor sets the fill or stroke colour.  Colours which are not in one
// of the device colour spaces are converted to DeviceRGB.
func (d *Device) setColor(cs color.Space, c []float64, role paintRole) error {
	if err := color.CheckComponents(cs, c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	if !color.IsDevice(cs) {
		rgb := d.toRGB(cs, c)
		cs, c = color.DeviceRGB, rgb[:]
	}
	n := cs.Channels()

	p := &d.top().paint[role]
	diff := false
	if p.space != cs {
		p.space = cs
		diff = true
	}
	for i := range n {
		if p.color[i] != c[i] {
			p.color[i] = c[i]
			diff = true
		}
	}
	if !diff {
		return nil
	}

	args := make([]any, 0, n+1)
	for i := range n {
		args = append(args, formatColor(c[i]))
	}
	var op string
	switch cs {
	case color.DeviceGray:
		op = "g"
	case color.DeviceRGB:
		op = "rg"
	default:
		op = "k"
	}
	if role == roleStroke {
		op = strings.ToUpper(op)
	}
	args = append(args, op)
	d.write(args...)
	return nil
}

// toRGB converts a colour to DeviceRGB.  Separation colours use the
// equivalent colour of the colorant, if it is known to the device.
func (d *Device) toRGB(cs color.Space, c []float64) [3]float64 {
	if sep, ok := cs.(*color.SpaceSeparation); ok && d.separations != nil {
		i := separation.Index(d.separations, sep.Colorant)
		if i >= 0 {
			switch d.separations.Behavior(i) {
			case separation.Disabled:
				return [3]float64{1, 1, 1}
			default:
				eq := d.separations.Equivalent(i, color.DeviceRGB)
				if len(eq) == 3 {
					return color.Tint([3]float64(eq), c[0])
				}
			}
		}
	}
	return color.ToRGB(cs, c)
}

// setAlpha sets the constant alpha value for the paint role.
func (d *Device) setAlpha(alpha float64, role paintRole) error {
	p := &d.top().paint[role]
	if p.alpha == alpha {
		return nil
	}
	idx, err := d.internAlpha(alpha, role)
	if err != nil {
		return err
	}
	p.alpha = alpha
	d.write("/Alp"+strconv.Itoa(idx), "gs")
	return nil
}

// setStrokeStyle writes the operators for all fields of style which differ
// from the current stroke style.
func (d *Device) setStrokeStyle(style *graphics.StrokeStyle) {
	if style == nil {
		style = graphics.NewStrokeStyle()
	}
	f := d.top()
	old := f.style
	if old == style || old.Equal(style) {
		return
	}

	if old == nil || old.LineWidth != style.LineWidth {
		d.write(formatCoord(style.LineWidth), "w")
	}
	if old == nil || old.Cap != style.Cap {
		d.write(style.Cap.PDF(), "J")
	}
	if old == nil || old.Join != style.Join {
		d.write(style.Join.PDF(), "j")
	}
	if old == nil || old.MiterLimit != style.MiterLimit {
		d.write(formatCoord(style.MiterLimit), "M")
	}
	if old == nil && len(style.DashPattern) == 0 {
		// a solid line is the initial state
	} else if old == nil || !old.DashEqual(style) {
		d.write(formatDash(style.DashPattern, style.DashPhase), "d")
	}
	f.style = style
}

func formatDash(pattern []float64, phase float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range pattern {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatCoord(x))
	}
	b.WriteString("] ")
	b.WriteString(formatCoord(phase))
	return b.String()
}

// setFont selects the font for showing text.  The font size is always 1;
// the actual size is part of the text matrix.
func (d *Device) setFont(f font.Font) error {
	fr := d.top()
	if fr.font >= 0 && d.fontTable[fr.font] == f {
		return nil
	}

	switch {
	case f == nil:
		return fmt.Errorf("missing font: %w", ErrUnsupportedFont)
	case f.Procedural():
		return fmt.Errorf("%s: procedural fonts are not supported: %w",
			f.PostScriptName(), ErrUnsupportedFont)
	case f.Substitute():
		return fmt.Errorf("%s: substitute fonts are not supported: %w",
			f.PostScriptName(), ErrUnsupportedFont)
	case !f.Embeddable():
		return fmt.Errorf("%s: font type cannot be embedded: %w",
			f.PostScriptName(), ErrUnsupportedFont)
	}

	idx, err := d.internFont(f)
	if errors.Is(err, font.ErrNotSupported) {
		return fmt.Errorf("%s: %w: %w", f.PostScriptName(), ErrUnsupportedFont, err)
	} else if err != nil {
		return err
	}
	fr.font = idx
	d.write("/F"+strconv.Itoa(idx), 1, "Tf")
	return nil
}

// setTextMode sets the text rendering mode.
func (d *Device) setTextMode(mode graphics.TextRenderingMode) {
	f := d.top()
	if f.textMode == mode {
		return
	}
	f.textMode = mode
	d.write(int(mode), "Tr")
}

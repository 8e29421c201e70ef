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

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfdevice/graphics"
	"seehuhn.de/go/pdfdevice/graphics/color"
	"seehuhn.de/go/pdfdevice/pdf"
)

// paintRole selects between the fill and the stroke parameters.
type paintRole int

const (
	roleFill paintRole = iota
	roleStroke
)

// paint is the colour state for one paint role.
type paint struct {
	space color.Space
	color [4]float64
	alpha float64
}

// frameKind records which operation pushed a frame.
type frameKind uint8

const (
	frameClip frameKind = iota
	frameGroup
	frameMask
)

// finalizeKind enumerates the actions run when a frame is popped.
type finalizeKind uint8

const (
	finalizeNone finalizeKind = iota

	// finalizeForm writes the frame's buffer as the content stream of
	// the form XObject ref.
	finalizeForm
)

type finalizer struct {
	kind finalizeKind
	ref  pdf.Reference
}

// frame is one entry of the graphics state stack.
//
// Frames only hold values, apart from the stroke style (which is never
// modified) and the output buffer (which may be shared with the parent).
type frame struct {
	ctm      matrix.Matrix
	paint    [2]paint
	style    *graphics.StrokeStyle
	font     int
	textMode graphics.TextRenderingMode
	knockout bool

	buf      *bytes.Buffer
	kind     frameKind
	finalize finalizer

	// saved holds the tracked state at the time a mask was started,
	// for restoring it in EndMask.
	saved *frame
}

func (d *Device) top() *frame {
	return d.stack[len(d.stack)-1]
}

// push duplicates the top frame.  If buf is not nil, the new frame writes
// into buf instead of the parent's buffer.  A "q" operator is written into
// the buffer of the new frame.
func (d *Device) push(buf *bytes.Buffer, kind frameKind, fin finalizer) *frame {
	parent := d.top()
	f := *parent
	if buf != nil {
		f.buf = buf
	}
	f.kind = kind
	f.finalize = fin
	f.saved = nil
	d.stack = append(d.stack, &f)

	d.write("q")
	return &f
}

// pop writes a "Q" operator, runs the finalize action of the top frame and
// removes the frame.  The reference stored in the finalize action is
// returned.
//
// Popping the last frame is a programming error and causes a panic.
func (d *Device) pop() pdf.Reference {
	if len(d.stack) <= 1 {
		panic("device: pop of the last graphics state")
	}

	f := d.top()
	d.write("Q")

	switch f.finalize.kind {
	case finalizeForm:
		d.setErr(d.store.UpdateStream(f.finalize.ref, f.buf.Bytes()))
	}

	d.stack[len(d.stack)-1] = nil
	d.stack = d.stack[:len(d.stack)-1]
	return f.finalize.ref
}

// snapshot returns a copy of the tracked state of f.
func (f *frame) snapshot() *frame {
	c := *f
	c.saved = nil
	return &c
}

// restoreTracked copies the tracked graphics state from s into f, leaving
// the output binding of f unchanged.
func (f *frame) restoreTracked(s *frame) {
	f.ctm = s.ctm
	f.paint = s.paint
	f.style = s.style
	f.font = s.font
	f.textMode = s.textMode
	f.knockout = s.knockout
}

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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdevice/graphics"
	"seehuhn.de/go/pdfdevice/graphics/color"
)

// writePath writes the path construction operators for p.
// Quadratic segments are converted to cubic Bézier curves.
func (d *Device) writePath(p *graphics.Path) {
	var cur, start vec.Vec2
	for cmd, pts := range p.All() {
		switch cmd {
		case graphics.CmdMoveTo:
			d.write(formatCoord(pts[0].X), formatCoord(pts[0].Y), "m")
			cur, start = pts[0], pts[0]
		case graphics.CmdLineTo:
			d.write(formatCoord(pts[0].X), formatCoord(pts[0].Y), "l")
			cur = pts[0]
		case graphics.CmdQuadTo:
			c1 := cur.Add(pts[0].Sub(cur).Mul(2.0 / 3.0))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3.0))
			d.write(
				formatCoord(c1.X), formatCoord(c1.Y),
				formatCoord(c2.X), formatCoord(c2.Y),
				formatCoord(pts[1].X), formatCoord(pts[1].Y), "c")
			cur = pts[1]
		case graphics.CmdCubeTo:
			d.write(
				formatCoord(pts[0].X), formatCoord(pts[0].Y),
				formatCoord(pts[1].X), formatCoord(pts[1].Y),
				formatCoord(pts[2].X), formatCoord(pts[2].Y), "c")
			cur = pts[2]
		case graphics.CmdClose:
			d.write("h")
			cur = start
		}
	}
}

// FillPath fills the interior of path.  If evenOdd is true, the even-odd
// rule is used to determine the interior, otherwise the nonzero winding
// number rule is used.
func (d *Device) FillPath(path *graphics.Path, evenOdd bool, ctm matrix.Matrix, cs color.Space, c []float64, alpha float64) error {
	if err := d.check(); err != nil {
		return err
	}
	d.endText()
	if err := d.setAlpha(alpha, roleFill); err != nil {
		return d.callErr(err)
	}
	if err := d.setColor(cs, c, roleFill); err != nil {
		return d.callErr(err)
	}
	d.setCTM(ctm)
	d.writePath(path)
	if evenOdd {
		d.write("f*")
	} else {
		d.write("f")
	}
	return d.Err
}

// StrokePath strokes path using the given stroke style.
// A nil style selects the default style from [graphics.NewStrokeStyle].
func (d *Device) StrokePath(path *graphics.Path, style *graphics.StrokeStyle, ctm matrix.Matrix, cs color.Space, c []float64, alpha float64) error {
	if err := d.check(); err != nil {
		return err
	}
	d.endText()
	if err := d.setAlpha(alpha, roleStroke); err != nil {
		return d.callErr(err)
	}
	if err := d.setColor(cs, c, roleStroke); err != nil {
		return d.callErr(err)
	}
	d.setCTM(ctm)
	d.setStrokeStyle(style)
	d.writePath(path)
	d.write("S")
	return d.Err
}

// ClipPath intersects the clipping path with the interior of path.
// The clip stays in effect until the matching call to PopClip.
func (d *Device) ClipPath(path *graphics.Path, evenOdd bool, ctm matrix.Matrix) error {
	if err := d.check(); err != nil {
		return err
	}
	d.endText()
	d.push(nil, frameClip, finalizer{})
	d.setCTM(ctm)
	d.writePath(path)
	if evenOdd {
		d.write("W*", "n")
	} else {
		d.write("W", "n")
	}
	return d.Err
}

// ClipStrokePath intersects the clipping path with the area covered when
// stroking path.  PDF has no operator for this; the interior of the path
// is used instead.  The clip stays in effect until the matching call to
// PopClip.
func (d *Device) ClipStrokePath(path *graphics.Path, style *graphics.StrokeStyle, ctm matrix.Matrix) error {
	if err := d.check(); err != nil {
		return err
	}
	d.endText()
	d.push(nil, frameClip, finalizer{})
	// TODO(voss): stroke the path into a shading pattern instead
	d.setCTM(ctm)
	d.writePath(path)
	d.write("W", "n")
	return d.Err
}

// PopClip ends the most recent clip or mask.
//
// Calling PopClip when no clip is in effect is a programming error and
// causes a panic.
func (d *Device) PopClip() error {
	if err := d.check(); err != nil {
		return err
	}
	d.endText()
	d.pop()
	return d.Err
}

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

package graphics

import (
	"iter"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// PathCmd is a path construction command.
type PathCmd uint8

// The path construction commands.
const (
	CmdMoveTo PathCmd = iota
	CmdLineTo
	CmdQuadTo
	CmdCubeTo
	CmdClose
)

func (c PathCmd) numPoints() int {
	switch c {
	case CmdMoveTo, CmdLineTo:
		return 1
	case CmdQuadTo:
		return 2
	case CmdCubeTo:
		return 3
	default:
		return 0
	}
}

// Path is a sequence of sub-paths built from straight lines and Bézier
// curves.  The zero value is an empty path.
type Path struct {
	Cmds   []PathCmd
	Coords []vec.Vec2
}

// MoveTo starts a new sub-path at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.Cmds = append(p.Cmds, CmdMoveTo)
	p.Coords = append(p.Coords, vec.Vec2{X: x, Y: y})
	return p
}

// LineTo appends a straight line to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.Cmds = append(p.Cmds, CmdLineTo)
	p.Coords = append(p.Coords, vec.Vec2{X: x, Y: y})
	return p
}

// QuadTo appends a quadratic Bézier curve with control point (x1, y1),
// ending at (x2, y2).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) *Path {
	p.Cmds = append(p.Cmds, CmdQuadTo)
	p.Coords = append(p.Coords, vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2})
	return p
}

// CurveTo appends a cubic Bézier curve with control points (x1, y1) and
// (x2, y2), ending at (x3, y3).
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) *Path {
	p.Cmds = append(p.Cmds, CmdCubeTo)
	p.Coords = append(p.Coords,
		vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}, vec.Vec2{X: x3, Y: y3})
	return p
}

// Close closes the current sub-path.
func (p *Path) Close() *Path {
	p.Cmds = append(p.Cmds, CmdClose)
	return p
}

// Rect appends a closed rectangle with corner (x, y), width w and height h.
func (p *Path) Rect(x, y, w, h float64) *Path {
	return p.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
}

// IsEmpty reports whether the path contains no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Cmds) == 0
}

// All iterates over the commands of the path together with their points.
// Quadratic segments are reported as [CmdQuadTo]; the slice of points
// must not be retained by the caller.
func (p *Path) All() iter.Seq2[PathCmd, []vec.Vec2] {
	return func(yield func(PathCmd, []vec.Vec2) bool) {
		if p == nil {
			return
		}
		pos := 0
		for _, cmd := range p.Cmds {
			n := cmd.numPoints()
			if !yield(cmd, p.Coords[pos:pos+n]) {
				return
			}
			pos += n
		}
	}
}

// BBox returns the smallest rectangle containing all points of the path,
// including the control points of curves.
func (p *Path) BBox() rect.Rect {
	if p == nil || len(p.Coords) == 0 {
		return rect.Rect{}
	}
	res := rect.Rect{
		LLx: p.Coords[0].X, LLy: p.Coords[0].Y,
		URx: p.Coords[0].X, URy: p.Coords[0].Y,
	}
	for _, pt := range p.Coords[1:] {
		res.LLx = min(res.LLx, pt.X)
		res.LLy = min(res.LLy, pt.Y)
		res.URx = max(res.URx, pt.X)
		res.URy = max(res.URy, pt.Y)
	}
	return res
}

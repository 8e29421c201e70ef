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

package font

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdevice/pdf"
)

// Descriptor represents a PDF font descriptor.
//
// See section 9.8.1 of ISO 32000-2:2020.
type Descriptor struct {
	FontName string

	IsFixedPitch bool // flag
	IsSerif      bool // flag
	IsSymbolic   bool // flag
	IsScript     bool // flag
	IsItalic     bool // flag
	ForceBold    bool // flag

	FontBBox    rect.Rect
	ItalicAngle float64
	Ascent      float64
	Descent     float64
	Leading     float64 // optional (default: 0)
	CapHeight   float64
	XHeight     float64 // optional (default: 0)
	StemV       float64 // 0 = unknown
}

// AsDict converts the font descriptor into a PDF dictionary.
// The font file entry must be added by the caller.
func (d *Descriptor) AsDict() pdf.Dict {
	var flags pdf.Integer
	if d.IsFixedPitch {
		flags |= flagFixedPitch
	}
	if d.IsSerif {
		flags |= flagSerif
	}
	if d.IsSymbolic {
		flags |= flagSymbolic
	} else {
		flags |= flagNonsymbolic
	}
	if d.IsScript {
		flags |= flagScript
	}
	if d.IsItalic {
		flags |= flagItalic
	}
	if d.ForceBold {
		flags |= flagForceBold
	}

	dict := pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"FontName":    pdf.Name(d.FontName),
		"Flags":       flags,
		"ItalicAngle": pdf.Number(d.ItalicAngle),
		"FontBBox": pdf.Array{
			pdf.Number(d.FontBBox.LLx), pdf.Number(d.FontBBox.LLy),
			pdf.Number(d.FontBBox.URx), pdf.Number(d.FontBBox.URy),
		},
		"Ascent":    pdf.Number(d.Ascent),
		"Descent":   pdf.Number(d.Descent),
		"CapHeight": pdf.Number(d.CapHeight),
		"StemV":     pdf.Number(d.StemV),
	}
	if d.Leading != 0 {
		dict["Leading"] = pdf.Number(d.Leading)
	}
	if d.XHeight != 0 {
		dict["XHeight"] = pdf.Number(d.XHeight)
	}
	return dict
}

// Possible values for PDF Font Descriptor Flags.
const (
	flagFixedPitch  pdf.Integer = 1 << 0
	flagSerif       pdf.Integer = 1 << 1
	flagSymbolic    pdf.Integer = 1 << 2
	flagScript      pdf.Integer = 1 << 3
	flagNonsymbolic pdf.Integer = 1 << 5
	flagItalic      pdf.Integer = 1 << 6
	flagForceBold   pdf.Integer = 1 << 18
)

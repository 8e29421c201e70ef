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

package sfntfont

import (
	"bytes"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfdevice/font"
	"seehuhn.de/go/pdfdevice/pdf"
)

// RegistryOptions control how fonts are written into a PDF file.
type RegistryOptions struct {
	// Compress enables FlateDecode compression of font programs.
	Compress bool
}

// Registry embeds fonts into a PDF file.
// Each font is embedded at most once.
type Registry struct {
	w        pdf.Putter
	compress bool
	refs     map[*Font]pdf.Reference
}

var _ font.Embedder = (*Registry)(nil)

// NewRegistry returns a registry which writes fonts to w.
func NewRegistry(w pdf.Putter, opt *RegistryOptions) *Registry {
	if opt == nil {
		opt = &RegistryOptions{}
	}
	return &Registry{
		w:        w,
		compress: opt.Compress,
		refs:     make(map[*Font]pdf.Reference),
	}
}

// Embed implements the [font.Embedder] interface.
// Only fonts created by this package can be embedded.
func (r *Registry) Embed(f font.Font) (pdf.Reference, error) {
	sf, ok := f.(*Font)
	if !ok {
		return 0, fmt.Errorf("font %q: %w", f.PostScriptName(), font.ErrNotSupported)
	}
	if ref, ok := r.refs[sf]; ok {
		return ref, nil
	}
	if !sf.Embeddable() {
		return 0, fmt.Errorf("font %q: %w", sf.PostScriptName(), font.ErrNotSupported)
	}

	ref, err := sf.embed(r.w, r.compress)
	if err != nil {
		return 0, err
	}
	r.refs[sf] = ref
	return ref, nil
}

// embed writes the font as a Type0 font with Identity-H encoding.
// CIDs coincide with glyph IDs.
func (f *Font) embed(w pdf.Putter, compress bool) (pdf.Reference, error) {
	info := f.info
	fontName := info.PostScriptName()
	isGlyf := info.IsGlyf()

	fontDictRef := w.Alloc()
	cidFontRef := w.Alloc()
	fdRef := w.Alloc()
	fontFileRef := w.Alloc()

	// The widths must agree with Font.Advance, so they are not rounded.
	n := info.NumGlyphs()
	ww := make([]float64, n)
	for gid := range ww {
		ww[gid] = info.GlyphWidthPDF(glyph.ID(gid))
	}
	W, DW := encodeWidths(ww)

	fontDict := pdf.Dict{
		"Type":            pdf.Name("Font"),
		"Subtype":         pdf.Name("Type0"),
		"BaseFont":        pdf.Name(fontName),
		"Encoding":        pdf.Name("Identity-H"),
		"DescendantFonts": pdf.Array{cidFontRef},
	}

	ROS := pdf.Dict{
		"Registry":   pdf.String("Adobe"),
		"Ordering":   pdf.String("Identity"),
		"Supplement": pdf.Integer(0),
	}
	cidFontDict := pdf.Dict{
		"Type":           pdf.Name("Font"),
		"BaseFont":       pdf.Name(fontName),
		"CIDSystemInfo":  ROS,
		"FontDescriptor": fdRef,
	}
	if isGlyf {
		cidFontDict["Subtype"] = pdf.Name("CIDFontType2")
		cidFontDict["CIDToGIDMap"] = pdf.Name("Identity")
	} else {
		cidFontDict["Subtype"] = pdf.Name("CIDFontType0")
	}
	if math.Abs(DW-1000) > 0.01 {
		cidFontDict["DW"] = pdf.Number(DW)
	}
	if W != nil {
		cidFontDict["W"] = W
	}

	qv := info.FontMatrix[3] * 1000
	bbox := info.FontBBoxPDF()
	fd := &font.Descriptor{
		FontName:     fontName,
		IsFixedPitch: info.IsFixedPitch(),
		IsSerif:      info.IsSerif,
		IsSymbolic:   true,
		IsScript:     info.IsScript,
		IsItalic:     info.IsItalic,
		FontBBox: rect.Rect{
			LLx: math.Round(bbox.LLx), LLy: math.Round(bbox.LLy),
			URx: math.Round(bbox.URx), URy: math.Round(bbox.URy),
		},
		ItalicAngle: math.Round(info.ItalicAngle*10) / 10,
		Ascent:      math.Round(float64(info.Ascent) * qv),
		Descent:     math.Round(float64(info.Descent) * qv),
		Leading:     math.Round(float64(info.Ascent-info.Descent+info.LineGap) * qv),
		CapHeight:   math.Round(float64(info.CapHeight) * qv),
		XHeight:     math.Round(float64(info.XHeight) * qv),
	}
	fdDict := fd.AsDict()

	// See section 9.9 of ISO 32000-2:2020 for details.
	buf := &bytes.Buffer{}
	var fontFileDict pdf.Dict
	if isGlyf {
		fdDict["FontFile2"] = fontFileRef
		length1, err := info.WriteTrueTypePDF(buf)
		if err != nil {
			return 0, fmt.Errorf("TrueType font %q: %w", fontName, err)
		}
		fontFileDict = pdf.Dict{"Length1": pdf.Integer(length1)}
	} else {
		fdDict["FontFile3"] = fontFileRef
		err := info.WriteOpenTypeCFFPDF(buf)
		if err != nil {
			return 0, fmt.Errorf("OpenType/CFF font %q: %w", fontName, err)
		}
		fontFileDict = pdf.Dict{"Subtype": pdf.Name("OpenType")}
	}
	fontFile, err := pdf.NewStream(fontFileDict, buf.Bytes(), compress)
	if err != nil {
		return 0, err
	}

	refs := []pdf.Reference{fontDictRef, cidFontRef, fdRef, fontFileRef}
	objs := []pdf.Object{fontDict, cidFontDict, fdDict, fontFile}
	for i, ref := range refs {
		err := w.Put(ref, objs[i])
		if err != nil {
			return 0, err
		}
	}
	return fontDictRef, nil
}

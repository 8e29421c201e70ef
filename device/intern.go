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

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdevice/font"
	"seehuhn.de/go/pdfdevice/graphics"
	"seehuhn.de/go/pdfdevice/graphics/color"
	"seehuhn.de/go/pdfdevice/pdf"
)

// This file implements the resource tables of a device.  Each table hands
// out resource names in order of first use; names are never reused.

type alphaEntry struct {
	alpha float64
	role  paintRole
}

type groupEntry struct {
	isolated bool
	knockout bool
	alpha    float64
	space    color.Space
	ref      pdf.Reference
}

// register enters ref into the resource dictionary under path.
func (d *Device) register(path string, obj pdf.Object) error {
	err := pdf.PutPath(d.resources, path, obj)
	if err != nil {
		return err
	}
	d.log.Debug("new resource", "path", path)
	return nil
}

// internAlpha returns the index of the ExtGState which sets the given
// alpha value for the paint role, creating the ExtGState if needed.
func (d *Device) internAlpha(alpha float64, role paintRole) (int, error) {
	for i, e := range d.alphas {
		if e.alpha == alpha && e.role == role {
			return i, nil
		}
	}

	key := pdf.Name("ca")
	if role == roleStroke {
		key = "CA"
	}
	ref, err := d.store.Add(pdf.Dict{key: pdf.Number(alpha)})
	if err != nil {
		return 0, err
	}
	idx := len(d.alphas)
	err = d.register(fmt.Sprintf("ExtGState/Alp%d", idx), ref)
	if err != nil {
		return 0, err
	}
	d.alphas = append(d.alphas, alphaEntry{alpha: alpha, role: role})
	return idx, nil
}

// internGroup returns the transparency group dictionary for the given
// parameters, creating it if needed.  Several forms may share one group.
func (d *Device) internGroup(isolated, knockout bool, alpha float64, cs color.Space) (pdf.Reference, error) {
	for _, g := range d.groups {
		if g.isolated == isolated && g.knockout == knockout &&
			g.alpha == alpha && g.space == cs {
			return g.ref, nil
		}
	}

	group := pdf.Dict{
		"Type": pdf.Name("Group"),
		"S":    pdf.Name("Transparency"),
		"K":    pdf.Boolean(knockout),
		"I":    pdf.Boolean(isolated),
	}
	n := 0
	if cs != nil {
		n = cs.Channels()
	}
	switch n {
	case 0:
		// no blending colour space
	case 1:
		group["CS"] = pdf.Name("DeviceGray")
	case 4:
		group["CS"] = pdf.Name("DeviceCMYK")
	default:
		group["CS"] = pdf.Name("DeviceRGB")
	}
	ref, err := d.store.Add(group)
	if err != nil {
		return 0, err
	}
	d.groups = append(d.groups, groupEntry{
		isolated: isolated,
		knockout: knockout,
		alpha:    alpha,
		space:    cs,
		ref:      ref,
	})
	return ref, nil
}

// newForm creates a form XObject which uses the transparency group given
// by the remaining arguments.  The form is entered into the resource
// dictionary as "Fm<n>"; the number n is returned.  The content stream of
// the form is written when the form is finalized.
func (d *Device) newForm(bbox rect.Rect, isolated, knockout bool, alpha float64, cs color.Space) (pdf.Reference, int, error) {
	groupRef, err := d.internGroup(isolated, knockout, alpha, cs)
	if err != nil {
		return 0, 0, err
	}

	form := pdf.Dict{
		"Subtype":  pdf.Name("Form"),
		"Group":    groupRef,
		"FormType": pdf.Integer(1),
		"BBox": pdf.Array{
			pdf.Number(bbox.LLx), pdf.Number(bbox.LLy),
			pdf.Number(bbox.URx), pdf.Number(bbox.URy),
		},
	}
	formRef, err := d.store.Add(form)
	if err != nil {
		return 0, 0, err
	}

	num := d.numForms
	d.numForms++
	err = d.register(fmt.Sprintf("XObject/Fm%d", num), formRef)
	if err != nil {
		return 0, 0, err
	}
	return formRef, num, nil
}

// internBlendMode makes sure that the resource dictionary contains an
// ExtGState "BlendMode<n>" which selects the blend mode bm.
func (d *Device) internBlendMode(bm graphics.BlendMode) error {
	path := fmt.Sprintf("ExtGState/BlendMode%d", int(bm))
	if pdf.GetPath(d.resources, path) != nil {
		return nil
	}
	egs := pdf.Dict{
		"Type": pdf.Name("ExtGState"),
		"BM":   bm.Name(),
	}
	return d.register(path, egs)
}

// internFont returns the index of f in the font table, embedding the font
// and entering it into the resource dictionary if needed.
func (d *Device) internFont(f font.Font) (int, error) {
	for i, g := range d.fontTable {
		if g == f {
			return i, nil
		}
	}

	if d.fonts == nil {
		return 0, fmt.Errorf("%s: no font embedder: %w", f.PostScriptName(), ErrUnsupportedFont)
	}
	ref, err := d.fonts.Embed(f)
	if err != nil {
		return 0, err
	}
	idx := len(d.fontTable)
	err = d.register(fmt.Sprintf("Font/F%d", idx), ref)
	if err != nil {
		return 0, err
	}
	d.fontTable = append(d.fontTable, f)
	return idx, nil
}

// registerImage enters an image XObject into the resource dictionary,
// unless this was done before.  The resource name is "Img<n>", where n is
// the object number of the image.
func (d *Device) registerImage(ref pdf.Reference) error {
	num := ref.Number()
	if d.imageNums[num] {
		return nil
	}
	err := d.register(fmt.Sprintf("XObject/Img%d", num), ref)
	if err != nil {
		return err
	}
	d.imageNums[num] = true
	return nil
}

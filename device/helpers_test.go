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
	"io"
	"strings"
	"testing"

	"seehuhn.de/go/pdfdevice/font"
	"seehuhn.de/go/pdfdevice/pdf"
)

// testFont is a font with a fixed glyph advance.
type testFont struct {
	name       string
	advance    float64
	procedural bool
	substitute bool
	noEmbed    bool
}

func (f *testFont) PostScriptName() string { return f.name }
func (f *testFont) Procedural() bool       { return f.procedural }
func (f *testFont) Substitute() bool       { return f.substitute }
func (f *testFont) Embeddable() bool       { return !f.noEmbed }

func (f *testFont) Advance(gid int, wmode int) float64 {
	if wmode != 0 {
		return -f.advance
	}
	return f.advance
}

// testFonts writes a minimal font dictionary for every font.
type testFonts struct {
	store Store
	count int
}

func (e *testFonts) Embed(f font.Font) (pdf.Reference, error) {
	e.count++
	return e.store.Add(pdf.Dict{
		"Type":     pdf.Name("Font"),
		"BaseFont": pdf.Name(f.PostScriptName()),
	})
}

// newTestDevice returns a device without page transformation, which
// embeds fonts using testFonts.
func newTestDevice() (*Device, *pdf.Data, *testFonts) {
	data := pdf.NewData(pdf.V1_7)
	fonts := &testFonts{store: data}
	d := New(data, nil, nil, &Options{Fonts: fonts})
	return d, data, fonts
}

// streamData returns the contents of the stream ref.
func streamData(t *testing.T, data *pdf.Data, ref pdf.Reference) string {
	t.Helper()
	obj, err := data.Get(ref)
	if err != nil {
		t.Fatal(err)
	}
	stm, ok := obj.(*pdf.Stream)
	if !ok {
		t.Fatalf("%s is a %T, not a stream", ref, obj)
	}
	body, err := io.ReadAll(stm.R)
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

// resource returns the entry path of the resource dictionary of d.
func resource(d *Device, path string) pdf.Object {
	return pdf.GetPath(d.Resources(), path)
}

// countOps counts the lines of content which consist of the operator op,
// possibly with operands.
func countOps(content, op string) int {
	n := 0
	for line := range strings.Lines(content) {
		fields := strings.Fields(line)
		for _, f := range fields {
			if f == op {
				n++
			}
		}
	}
	return n
}

var errStoreFull = errors.New("store is full")

// failingStore fails all operations after the first n objects.
type failingStore struct {
	*pdf.Data
	n int
}

func (s *failingStore) Add(obj pdf.Object) (pdf.Reference, error) {
	if s.n <= 0 {
		return 0, errStoreFull
	}
	s.n--
	return s.Data.Add(obj)
}

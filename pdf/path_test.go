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

package pdf

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPutPath(t *testing.T) {
	res := Dict{}
	ref := NewReference(7, 0)

	err := PutPath(res, "ExtGState/Alp0", ref)
	if err != nil {
		t.Fatal(err)
	}
	err = PutPath(res, "ExtGState/Alp1", Integer(1))
	if err != nil {
		t.Fatal(err)
	}
	err = PutPath(res, "Font/F0", ref)
	if err != nil {
		t.Fatal(err)
	}

	want := Dict{
		"ExtGState": Dict{
			"Alp0": ref,
			"Alp1": Integer(1),
		},
		"Font": Dict{
			"F0": ref,
		},
	}
	if d := cmp.Diff(want, res); d != "" {
		t.Errorf("unexpected resources (-want +got):\n%s", d)
	}

	if GetPath(res, "ExtGState/Alp0") != ref {
		t.Error("GetPath failed")
	}
	if GetPath(res, "XObject/Fm0") != nil {
		t.Error("GetPath found a missing entry")
	}
}

func TestPutPathNotDict(t *testing.T) {
	res := Dict{"Font": Integer(1)}
	err := PutPath(res, "Font/F0", Integer(2))
	if !errors.Is(err, ErrNotDict) {
		t.Errorf("expected ErrNotDict, got %v", err)
	}
}

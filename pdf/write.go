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
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
)

// Write writes the document as a complete PDF file to w.
// The document catalog must have been set in d.Root.
func (d *Data) Write(w io.Writer) error {
	if d.Root == 0 {
		return errors.New("missing document catalog")
	}

	out := &posWriter{w: bufio.NewWriter(w)}
	fmt.Fprintf(out, "%%PDF-%s\n%%\x80\x80\x80\x80\n", d.Version)

	refs := slices.SortedFunc(maps.Keys(d.objects), func(a, b Reference) int {
		return int(a.Number()) - int(b.Number())
	})
	offsets := make(map[uint32]int64, len(refs))
	for _, ref := range refs {
		obj, err := d.Get(ref)
		if err != nil {
			return err
		}
		offsets[ref.Number()] = out.pos
		fmt.Fprintf(out, "%d %d obj\n", ref.Number(), ref.Generation())
		err = obj.PDF(out)
		if err != nil {
			return err
		}
		fmt.Fprint(out, "\nendobj\n")
	}

	xrefPos := out.pos
	size := d.lastRef + 1
	fmt.Fprintf(out, "xref\n0 %d\n0000000000 65535 f\r\n", size)
	for i := uint32(1); i < size; i++ {
		if pos, ok := offsets[i]; ok {
			fmt.Fprintf(out, "%010d 00000 n\r\n", pos)
		} else {
			fmt.Fprint(out, "0000000000 00001 f\r\n")
		}
	}

	trailer := Dict{
		"Size": Integer(size),
		"Root": d.Root,
	}
	fmt.Fprint(out, "trailer\n")
	err := trailer.PDF(out)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nstartxref\n%d\n%%%%EOF\n", xrefPos)

	if out.err != nil {
		return out.err
	}
	return out.w.Flush()
}

type posWriter struct {
	w   *bufio.Writer
	pos int64
	err error
}

func (w *posWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.pos += int64(n)
	w.err = err
	return n, err
}

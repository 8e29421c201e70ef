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
	"math"

	"seehuhn.de/go/dag"

	"seehuhn.de/go/pdfdevice/pdf"
)

// encodeWidths constructs the W and DW entries for a CIDFont dictionary.
// The widths are indexed by CID.
func encodeWidths(widths []float64) (pdf.Array, float64) {
	if len(widths) == 0 {
		return nil, 1000
	}
	dw := mostFrequent(widths)

	g := wwGraph{widths, dw}
	ee, err := dag.ShortestPath(g, len(widths))
	if err != nil {
		panic(err)
	}

	var res pdf.Array
	pos := 0
	for _, e := range ee {
		switch {
		case e > 0:
			res = append(res,
				pdf.Integer(pos),
				pdf.Integer(pos+int(e)-1),
				pdf.Number(widths[pos]))
		case e < 0:
			var wi pdf.Array
			for i := pos; i < pos+int(-e); i++ {
				wi = append(wi, pdf.Number(widths[i]))
			}
			res = append(res, pdf.Integer(pos), wi)
		}
		pos = g.To(pos, e)
	}
	return res, dw
}

type wwGraph struct {
	ww []float64
	dw float64
}

// A wwEdge encodes how the next CID width is encoded:
//
//	e=0: the width of the next CID is the default width, so no entry is needed
//	e>0: the next e CIDs have the same width, encode as a range
//	e<0: the next -e CIDs are encoded as an array
type wwEdge int16

const maxRun = math.MaxInt16

func (g wwGraph) AppendEdges(ee []wwEdge, v int) []wwEdge {
	ww := g.ww
	if math.Abs(ww[v]-g.dw) < 0.01 {
		return append(ee, 0)
	}

	n := min(len(ww), v+maxRun)

	i := v + 1
	for i < n && ww[i] == ww[v] {
		i++
	}
	if i > v+1 {
		ee = append(ee, wwEdge(i-v))
	}

	// arrays only extend over non-default widths
	for i = v + 1; i <= n; i++ {
		ee = append(ee, wwEdge(v-i))
		if i < n && math.Abs(ww[i]-g.dw) < 0.01 {
			break
		}
	}
	return ee
}

func (g wwGraph) Length(v int, e wwEdge) int {
	// for simplicity we assume that all integers in the output have 3 digits
	switch {
	case e == 0:
		return 0
	case e > 0:
		// "%d %d %d\n"
		return 12
	default:
		// "%d [%d ... %d]\n"
		return 6 + 4*int(-e)
	}
}

func (g wwGraph) To(v int, e wwEdge) int {
	if e == 0 {
		return v + 1
	}
	step := int(e)
	if step < 0 {
		step = -step
	}
	return v + step
}

func mostFrequent(ww []float64) float64 {
	hist := make(map[float64]int)
	for _, wi := range ww {
		hist[wi]++
	}

	bestCount := 0
	bestVal := 0.0
	for wi, count := range hist {
		if count > bestCount || (count == bestCount && wi < bestVal) {
			bestCount = count
			bestVal = wi
		}
	}
	return bestVal
}

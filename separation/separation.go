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

// Package separation keeps track of a small set of named colorants, each of
// which can be rendered as a composite colour, as its own spot plane, or
// not at all.
//
// The PDF device only reads separations through the [Query] interface.
package separation

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/pdfdevice/graphics/color"
)

// MaxSeparations is the maximum number of separations in a set.
const MaxSeparations = 64

// Behavior describes how a separation is rendered.
type Behavior uint8

// Possible values for Behavior.
const (
	// Composite separations are rendered using process colours,
	// via their equivalent colours.
	Composite Behavior = iota

	// Spot separations are rendered into their own plane.
	Spot

	// Disabled separations are not rendered at all.
	Disabled
)

func (b Behavior) String() string {
	switch b {
	case Composite:
		return "composite"
	case Spot:
		return "spot"
	case Disabled:
		return "disabled"
	default:
		return fmt.Sprintf("Behavior(%d)", int(b))
	}
}

// Query is the read-only view of a set of separations.
type Query interface {
	// Count returns the number of separations.
	Count() int

	// Name returns the name of separation i.
	Name(i int) string

	// Behavior returns the current behavior of separation i.
	Behavior(i int) Behavior

	// Equivalent returns the colour of the full-strength colorant i in
	// the colour space cs, which must be DeviceRGB or DeviceCMYK.
	Equivalent(i int, cs color.Space) []float64
}

// Errors returned when modifying a set of separations.
var (
	ErrFull     = errors.New("too many separations")
	ErrIndex    = errors.New("separation index out of range")
	ErrFixed    = errors.New("separations are not controllable")
	ErrBehavior = errors.New("invalid separation behavior")
)

type entry struct {
	name     string
	behavior Behavior
	rgb      [3]float64
	cmyk     [4]float64
}

// Separations is a set of named separations.
// The zero value is an empty, controllable set.
type Separations struct {
	fixed   bool
	entries []entry
}

var _ Query = (*Separations)(nil)

// New returns an empty set of separations.  If controllable is false,
// the behavior of the separations cannot be changed once they are added.
func New(controllable bool) *Separations {
	return &Separations{fixed: !controllable}
}

// Add adds a separation.  The equivalent colours are obtained by converting
// full ink on the given channel of cs.
func (s *Separations) Add(name string, cs color.Space, channel int) error {
	if cs == nil || channel < 0 || channel >= cs.Channels() {
		return fmt.Errorf("separation %q: invalid channel %d", name, channel)
	}
	c := make([]float64, cs.Channels())
	c[channel] = 1
	rgb := color.ToRGB(cs, c)
	return s.add(name, rgb, rgbToCMYK(rgb))
}

// AddEquivalents adds a separation with explicitly given equivalent colours.
// The RGB colour is encoded as 0xRRGGBBAA, the CMYK colour as 0xCCMMYYKK.
func (s *Separations) AddEquivalents(name string, rgba, cmyk uint32) error {
	rgb := [3]float64{
		float64(rgba>>24&0xff) / 255,
		float64(rgba>>16&0xff) / 255,
		float64(rgba>>8&0xff) / 255,
	}
	cmykf := [4]float64{
		float64(cmyk>>24&0xff) / 255,
		float64(cmyk>>16&0xff) / 255,
		float64(cmyk>>8&0xff) / 255,
		float64(cmyk&0xff) / 255,
	}
	return s.add(name, rgb, cmykf)
}

func (s *Separations) add(name string, rgb [3]float64, cmyk [4]float64) error {
	if len(s.entries) >= MaxSeparations {
		return fmt.Errorf("separation %q: %w", name, ErrFull)
	}
	s.entries = append(s.entries, entry{
		name: norm.NFC.String(name),
		rgb:  rgb,
		cmyk: cmyk,
	})
	return nil
}

// SetBehavior changes how separation i is rendered.
func (s *Separations) SetBehavior(i int, b Behavior) error {
	if s.fixed {
		return ErrFixed
	}
	if i < 0 || i >= len(s.entries) {
		return fmt.Errorf("separation %d: %w", i, ErrIndex)
	}
	if b > Disabled {
		return fmt.Errorf("separation %d: %w", i, ErrBehavior)
	}
	s.entries[i].behavior = b
	return nil
}

// Count implements the [Query] interface.
func (s *Separations) Count() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Name implements the [Query] interface.
// The empty string is returned for invalid indices.
func (s *Separations) Name(i int) string {
	if i < 0 || i >= s.Count() {
		return ""
	}
	return s.entries[i].name
}

// Behavior implements the [Query] interface.
// Invalid indices are reported as [Disabled].
func (s *Separations) Behavior(i int) Behavior {
	if i < 0 || i >= s.Count() {
		return Disabled
	}
	return s.entries[i].behavior
}

// Equivalent implements the [Query] interface.
// For invalid indices or colour spaces, nil is returned.
func (s *Separations) Equivalent(i int, cs color.Space) []float64 {
	if i < 0 || i >= s.Count() {
		return nil
	}
	e := &s.entries[i]
	switch cs {
	case color.DeviceRGB:
		return e.rgb[:]
	case color.DeviceCMYK:
		return e.cmyk[:]
	default:
		return nil
	}
}

// Controllable reports whether the behavior of the separations can be
// changed.
func (s *Separations) Controllable() bool {
	return !s.fixed
}

// AllComposite reports whether all separations are rendered as composite
// colours.  This is the common case.
func (s *Separations) AllComposite() bool {
	for i := range s.Count() {
		if s.entries[i].behavior != Composite {
			return false
		}
	}
	return true
}

// ActiveCount returns the number of separations which are not disabled.
func (s *Separations) ActiveCount() int {
	n := 0
	for i := range s.Count() {
		if s.entries[i].behavior != Disabled {
			n++
		}
	}
	return n
}

// CloneForOverprint returns a copy of s where all composite separations are
// turned into spot separations.  If no separation is composite, nil is
// returned since s is already suitable for overprint simulation.
func (s *Separations) CloneForOverprint() *Separations {
	found := false
	for i := range s.Count() {
		if s.entries[i].behavior == Composite {
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	res := &Separations{
		fixed:   s.fixed,
		entries: make([]entry, len(s.entries)),
	}
	copy(res.entries, s.entries)
	for i := range res.entries {
		if res.entries[i].behavior == Composite {
			res.entries[i].behavior = Spot
		}
	}
	return res
}

// Index returns the index of the separation with the given name, or -1 if
// there is no such separation.  Names are compared after Unicode NFC
// normalisation.
func Index(q Query, name string) int {
	if q == nil {
		return -1
	}
	name = norm.NFC.String(name)
	for i := range q.Count() {
		if q.Name(i) == name {
			return i
		}
	}
	return -1
}

func rgbToCMYK(rgb [3]float64) [4]float64 {
	k := 1 - max(rgb[0], rgb[1], rgb[2])
	if k >= 1 {
		return [4]float64{0, 0, 0, 1}
	}
	return [4]float64{
		(1 - rgb[0] - k) / (1 - k),
		(1 - rgb[1] - k) / (1 - k),
		(1 - rgb[2] - k) / (1 - k),
		k,
	}
}

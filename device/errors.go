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

import "errors"

var (
	// ErrUnsupportedFont is returned by the text painting operations if
	// a span uses a font which cannot be written to a PDF file.  The
	// returned error wraps ErrUnsupportedFont and describes the reason.
	ErrUnsupportedFont = errors.New("unsupported font")

	// ErrUnbalanced is returned by Close if clips, groups or masks have
	// not been ended.
	ErrUnbalanced = errors.New("unbalanced graphics state stack")

	// ErrInvalidColor is returned when a colour has too few components
	// for its colour space.
	ErrInvalidColor = errors.New("invalid colour")

	// ErrClosed is returned when a device is used after Close.
	ErrClosed = errors.New("device is closed")

	errNoMask  = errors.New("EndMask without BeginMask")
	errNoGroup = errors.New("EndGroup without BeginGroup")
)

// callErr prepares err for returning from a painting operation.  Errors
// caused by the arguments of a single call leave the device usable; all
// other errors are stored in Device.Err.
func (d *Device) callErr(err error) error {
	if errors.Is(err, ErrUnsupportedFont) || errors.Is(err, ErrInvalidColor) {
		return err
	}
	d.setErr(err)
	return err
}

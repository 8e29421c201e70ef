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

// Package color implements the colour spaces understood by the PDF device.
//
// The device writes colours only in the three device colour spaces.  Colours
// in all other spaces are converted to DeviceRGB using [ToRGB].
package color

import (
	"fmt"

	"seehuhn.de/go/pdfdevice/pdf"
)

// Space represents a colour space.
//
// Colour spaces are compared by identity; the device spaces are available
// as the singletons [DeviceGray], [DeviceRGB] and [DeviceCMYK].
type Space interface {
	// Family returns the family of the colour space.
	Family() pdf.Name

	// Channels returns the number of colour components.
	Channels() int
}

// Colour space families.
const (
	FamilyDeviceGray pdf.Name = "DeviceGray"
	FamilyDeviceRGB  pdf.Name = "DeviceRGB"
	FamilyDeviceCMYK pdf.Name = "DeviceCMYK"
	FamilyLab        pdf.Name = "Lab"
	FamilyICCBased   pdf.Name = "ICCBased"
	FamilySeparation pdf.Name = "Separation"
)

// Singleton objects for the device colour spaces.
var (
	DeviceGray Space = spaceDeviceGray{}
	DeviceRGB  Space = spaceDeviceRGB{}
	DeviceCMYK Space = spaceDeviceCMYK{}
)

// == DeviceGray =============================================================

type spaceDeviceGray struct{}

func (spaceDeviceGray) Family() pdf.Name { return FamilyDeviceGray }

func (spaceDeviceGray) Channels() int { return 1 }

// == DeviceRGB ==============================================================

type spaceDeviceRGB struct{}

func (spaceDeviceRGB) Family() pdf.Name { return FamilyDeviceRGB }

func (spaceDeviceRGB) Channels() int { return 3 }

// == DeviceCMYK =============================================================

type spaceDeviceCMYK struct{}

func (spaceDeviceCMYK) Family() pdf.Name { return FamilyDeviceCMYK }

func (spaceDeviceCMYK) Channels() int { return 4 }

// IsDevice reports whether s is one of the three device colour spaces.
func IsDevice(s Space) bool {
	switch s {
	case DeviceGray, DeviceRGB, DeviceCMYK:
		return true
	default:
		return false
	}
}

// CheckComponents returns an error if the number of colour components does
// not match the colour space.
func CheckComponents(s Space, c []float64) error {
	if s == nil {
		return fmt.Errorf("missing colour space")
	}
	if n := s.Channels(); len(c) < n {
		return fmt.Errorf("%s colour needs %d components, got %d", s.Family(), n, len(c))
	}
	return nil
}

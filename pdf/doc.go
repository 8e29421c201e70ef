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

// Package pdf implements the PDF object model used by the output device.
//
// The native PDF object types are represented by Go types which implement
// the [Object] interface:
//
//	Array
//	Boolean
//	Dict
//	Integer
//	Name
//	Number
//	Reference
//	Stream
//	String
//
// [Data] is an in-memory object store.  The device package creates resource
// objects through it and fills in the stream data of Form XObjects once the
// corresponding content has been generated.  [Data.Write] serializes the
// complete document as a PDF file.
package pdf

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
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"maps"
)

// Version represents a version of PDF standard.
type Version int

// PDF versions supported by this library.
const (
	V1_4 Version = iota + 4
	V1_5
	V1_6
	V1_7
	V2_0
)

func (ver Version) String() string {
	switch ver {
	case V1_4, V1_5, V1_6, V1_7:
		return fmt.Sprintf("1.%d", int(ver))
	case V2_0:
		return "2.0"
	default:
		return fmt.Sprintf("Version(%d)", int(ver))
	}
}

// Putter is the interface used to add objects to a PDF file.
type Putter interface {
	// Alloc allocates a new object number for an indirect object.
	Alloc() Reference

	// Put stores an object under a previously allocated reference.
	Put(ref Reference, obj Object) error
}

// Data is an in-memory representation of a PDF document.
//
// Data acts as the object store for content generated by the device
// package: objects are created with [Data.Add], stream contents are filled
// in later with [Data.UpdateStream].
type Data struct {
	Version Version

	// Compress controls whether stream data stored via UpdateStream
	// is compressed with FlateDecode.
	Compress bool

	// Root is the reference of the document catalog.
	Root Reference

	objects map[Reference]Object
	lastRef uint32
}

// ErrUnknownObject is returned when an operation refers to an object number
// which has not been allocated.
var ErrUnknownObject = errors.New("unknown object")

// NewData allocates a new, empty PDF document.
func NewData(v Version) *Data {
	return &Data{
		Version: v,
		objects: map[Reference]Object{},
	}
}

// Alloc allocates a new object number for an indirect object.
func (d *Data) Alloc() Reference {
	for {
		d.lastRef++
		ref := NewReference(d.lastRef, 0)
		if _, ok := d.objects[ref]; !ok {
			return ref
		}
	}
}

// Put stores obj under the reference ref.
// Storing a nil object removes the object from the document.
func (d *Data) Put(ref Reference, obj Object) error {
	if ref.Number() == 0 || ref.Number() > d.lastRef {
		return fmt.Errorf("put %s: %w", ref, ErrUnknownObject)
	}
	if obj == nil {
		delete(d.objects, ref)
	} else {
		d.objects[ref] = obj
	}
	return nil
}

// Add allocates a new indirect object and stores obj in it.
func (d *Data) Add(obj Object) (Reference, error) {
	ref := d.Alloc()
	err := d.Put(ref, obj)
	if err != nil {
		return 0, err
	}
	return ref, nil
}

// Get returns the object stored under ref.
// For stream objects, the returned stream can be read from the beginning.
func (d *Data) Get(ref Reference) (Object, error) {
	obj, ok := d.objects[ref]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", ref, ErrUnknownObject)
	}
	if s, ok := obj.(*Stream); ok {
		if ss, ok := s.R.(io.Seeker); ok {
			_, err := ss.Seek(0, io.SeekStart)
			if err != nil {
				return nil, err
			}
		}
	}
	return obj, nil
}

// UpdateStream replaces the contents of the object ref by a stream.
// If the object is a dictionary, the dictionary becomes the stream
// dictionary.  If the object is already a stream, its dictionary is kept
// and the data is replaced.
func (d *Data) UpdateStream(ref Reference, data []byte) error {
	obj, ok := d.objects[ref]
	if !ok {
		return fmt.Errorf("update stream %s: %w", ref, ErrUnknownObject)
	}

	var dict Dict
	switch obj := obj.(type) {
	case Dict:
		dict = obj
	case *Stream:
		dict = obj.Dict
	default:
		return fmt.Errorf("update stream %s: cannot convert %T into a stream", ref, obj)
	}
	dict = maps.Clone(dict)
	delete(dict, "Filter")
	stm, err := NewStream(dict, data, d.Compress)
	if err != nil {
		return fmt.Errorf("update stream %s: %w", ref, err)
	}
	d.objects[ref] = stm
	return nil
}

// NewStream returns a stream object with the given dictionary and data.
// The dictionary is copied, and the Length entry is set.  If compress is
// true, the data is compressed using FlateDecode and the Filter entry is
// overwritten.
func NewStream(dict Dict, data []byte, compress bool) (*Stream, error) {
	streamDict := make(Dict, len(dict)+2)
	for key, val := range dict {
		streamDict[key] = val
	}

	if compress {
		buf := &bytes.Buffer{}
		zw := zlib.NewWriter(buf)
		_, err := zw.Write(data)
		if err != nil {
			return nil, err
		}
		err = zw.Close()
		if err != nil {
			return nil, err
		}
		data = buf.Bytes()
		streamDict["Filter"] = Name("FlateDecode")
	}
	streamDict["Length"] = Integer(len(data))

	return &Stream{
		Dict: streamDict,
		R:    bytes.NewReader(data),
	}, nil
}

// NumObjects returns the number of objects stored in the document.
func (d *Data) NumObjects() int {
	return len(d.objects)
}

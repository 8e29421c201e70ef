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
	"fmt"
	"strings"
)

// ErrNotDict is returned by PutPath when an intermediate path element
// exists but is not a dictionary.
var ErrNotDict = errors.New("not a dictionary")

// PutPath stores obj in dict under a slash-separated key path, for example
// "ExtGState/Alp0".  Intermediate dictionaries are created as needed.
func PutPath(dict Dict, path string, obj Object) error {
	if dict == nil {
		return fmt.Errorf("put %q: %w", path, ErrNotDict)
	}
	keys := strings.Split(path, "/")
	for _, key := range keys[:len(keys)-1] {
		next, ok := dict[Name(key)]
		if !ok {
			sub := Dict{}
			dict[Name(key)] = sub
			dict = sub
			continue
		}
		sub, ok := next.(Dict)
		if !ok {
			return fmt.Errorf("put %q: element %q: %w", path, key, ErrNotDict)
		}
		dict = sub
	}
	dict[Name(keys[len(keys)-1])] = obj
	return nil
}

// GetPath returns the object stored in dict under a slash-separated key
// path.  If any element of the path is missing, nil is returned.
func GetPath(dict Dict, path string) Object {
	keys := strings.Split(path, "/")
	for _, key := range keys[:len(keys)-1] {
		sub, ok := dict[Name(key)].(Dict)
		if !ok {
			return nil
		}
		dict = sub
	}
	return dict[Name(keys[len(keys)-1])]
}

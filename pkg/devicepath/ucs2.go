/*
Copyright © 2022 - 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package devicepath

import (
	"errors"
	"fmt"
	"slices"

	efi "github.com/canonical/go-efilib"
)

// ErrNotNulTerminated is returned when a UCS-2 string has no terminating NUL.
var ErrNotNulTerminated = errors.New("string is not nul-terminated")

// InvalidCharError reports a character that is not a valid UCS-2 character.
// Code holds the full code point, which may lie outside the basic
// multilingual plane when the input was a Go string.
type InvalidCharError struct {
	Pos  int
	Code rune
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid UCS-2 character %U at position %d", e.Code, e.Pos)
}

// InteriorNulError reports a NUL found before the last code unit.
type InteriorNulError struct {
	Pos int
}

func (e *InteriorNulError) Error() string {
	return fmt.Sprintf("nul character found at position %d before the end of the string", e.Pos)
}

// Surrogates are UTF-16 only, UCS-2 has no use for them.
func isUCS2(code uint16) bool {
	return code < 0xd800 || code > 0xdfff
}

// CString16 is an owned, validated, nul-terminated UCS-2 string. The
// terminating NUL is part of the value.
type CString16 []uint16

// NewCString16 validates codes as a UCS-2 string whose only NUL is its last
// element.
func NewCString16(codes []uint16) (CString16, error) {
	for pos, code := range codes {
		if !isUCS2(code) {
			return nil, &InvalidCharError{Pos: pos, Code: rune(code)}
		}
		if code == 0 {
			if pos != len(codes)-1 {
				return nil, &InteriorNulError{Pos: pos}
			}
			return CString16(slices.Clone(codes)), nil
		}
	}
	return nil, ErrNotNulTerminated
}

// CString16FromString encodes s as UCS-2. Characters outside the basic
// multilingual plane and NUL characters are rejected.
func CString16FromString(s string) (CString16, error) {
	out := make([]uint16, 0, len(s)+1)
	pos := 0
	for _, r := range s {
		switch {
		case r == 0:
			return nil, &InteriorNulError{Pos: pos}
		case r > 0xffff || !isUCS2(uint16(r)):
			return nil, &InvalidCharError{Pos: pos, Code: r}
		}
		out = append(out, uint16(r))
		pos++
	}
	return append(out, 0), nil
}

// Len returns the number of characters, the terminating NUL excluded.
func (s CString16) Len() int {
	if len(s) == 0 {
		return 0
	}
	return len(s) - 1
}

// Equal compares two strings code unit by code unit.
func (s CString16) Equal(other CString16) bool {
	return slices.Equal(s, other)
}

func (s CString16) String() string {
	return efi.ConvertUTF16ToUTF8(s)
}

// UnalignedCStr16 is a UCS-2 string stored in a packed record. It is decoded
// lazily, use ToCString16 to validate and copy it.
type UnalignedCStr16 struct {
	codes UnalignedSlice[uint16]
}

// Len returns the number of code units, the terminating NUL included.
func (s UnalignedCStr16) Len() int {
	return s.codes.Len()
}

// Codes returns the accessor over the raw code units.
func (s UnalignedCStr16) Codes() UnalignedSlice[uint16] {
	return s.codes
}

// ToCString16 copies and validates the string.
func (s UnalignedCStr16) ToCString16() (CString16, error) {
	return NewCString16(s.codes.ToSlice())
}

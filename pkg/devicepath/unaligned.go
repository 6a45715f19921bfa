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
	"encoding/binary"
	"fmt"
	"iter"
)

// UnalignedSlice provides copy-only access to fixed size little-endian
// elements packed into a byte region that carries no alignment guarantee.
// Elements are decoded from their bytes on every access, nothing is ever
// reinterpreted in place.
type UnalignedSlice[T any] struct {
	data   []byte
	size   int
	decode func([]byte) T
}

func newUnalignedSlice[T any](data []byte, size int, decode func([]byte) T) UnalignedSlice[T] {
	n := len(data) / size
	return UnalignedSlice[T]{data: data[: n*size : n*size], size: size, decode: decode}
}

// NewUint16Slice returns an accessor over the uint16 elements in data. A
// trailing odd byte is not part of any element.
func NewUint16Slice(data []byte) UnalignedSlice[uint16] {
	return newUnalignedSlice(data, 2, binary.LittleEndian.Uint16)
}

// NewUint32Slice returns an accessor over the uint32 elements in data.
func NewUint32Slice(data []byte) UnalignedSlice[uint32] {
	return newUnalignedSlice(data, 4, binary.LittleEndian.Uint32)
}

// NewUint64Slice returns an accessor over the uint64 elements in data.
func NewUint64Slice(data []byte) UnalignedSlice[uint64] {
	return newUnalignedSlice(data, 8, binary.LittleEndian.Uint64)
}

// Len returns the number of elements.
func (s UnalignedSlice[T]) Len() int {
	if s.size == 0 {
		return 0
	}
	return len(s.data) / s.size
}

// IsEmpty is true if there are no elements.
func (s UnalignedSlice[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Get returns a copy of the element at index, false if index is out of range.
func (s UnalignedSlice[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= s.Len() {
		return zero, false
	}
	off := index * s.size
	return s.decode(s.data[off : off+s.size]), true
}

// CopyTo copies every element into dest. It panics if dest does not have
// exactly Len() elements.
func (s UnalignedSlice[T]) CopyTo(dest []T) {
	if len(dest) != s.Len() {
		panic(fmt.Sprintf(
			"source slice length (%d) does not match destination slice length (%d)",
			s.Len(), len(dest),
		))
	}
	for i := range dest {
		dest[i], _ = s.Get(i)
	}
}

// ToSlice returns an owned copy of all elements.
func (s UnalignedSlice[T]) ToSlice() []T {
	out := make([]T, s.Len())
	s.CopyTo(out)
	return out
}

// Iter returns a new forward iterator starting at the first element.
func (s UnalignedSlice[T]) Iter() *UnalignedSliceIter[T] {
	return &UnalignedSliceIter[T]{slice: s}
}

// All returns a sequence over a copy of every element.
func (s UnalignedSlice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.Len(); i++ {
			v, _ := s.Get(i)
			if !yield(v) {
				return
			}
		}
	}
}

// UnalignedSliceIter walks an UnalignedSlice once. Call Iter again to restart.
type UnalignedSliceIter[T any] struct {
	slice UnalignedSlice[T]
	index int
}

// Next returns the next element, false once the slice is exhausted.
func (it *UnalignedSliceIter[T]) Next() (T, bool) {
	v, ok := it.slice.Get(it.index)
	if ok {
		it.index++
	}
	return v, ok
}

// Field readers for packed records. The caller guarantees data holds the
// field, out of range offsets panic like any slice expression.

func uint16At(data []byte, off int) uint16 {
	v, _ := NewUint16Slice(data[off : off+2]).Get(0)
	return v
}

func uint32At(data []byte, off int) uint32 {
	v, _ := NewUint32Slice(data[off : off+4]).Get(0)
	return v
}

func uint64At(data []byte, off int) uint64 {
	v, _ := NewUint64Slice(data[off : off+8]).Get(0)
	return v
}

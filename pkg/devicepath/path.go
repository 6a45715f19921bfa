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

// Package devicepath decodes UEFI device paths.
//
// A device path is a packed list of variable length nodes, each starting
// with a 4 byte header (type, sub type, little-endian length). The path is
// terminated by an end-entire node and may hold several instances separated
// by end-instance nodes:
//
//	| ACPI | PCI | END_INSTANCE | CDROM | FILEPATH | END_ENTIRE |
//	|------ Instance -----------|-------- Instance ------------|
//	|---------------------- DevicePath ------------------------|
//
// Every type here is a view over a caller owned buffer. Nothing is copied
// unless explicitly requested, and the buffer must not be modified while a
// view derived from it is in use. Views are safe for concurrent reads.
package devicepath

import (
	"bytes"
	"fmt"
	"slices"
)

// Instance is a run of nodes ending with an end-instance or end-entire node.
type Instance struct {
	data []byte
}

// NodeIter iterates the nodes of the instance, stopping at its end node.
func (i Instance) NodeIter() *NodeIterator {
	return newNodeIterator(i.data, stopAnyEnd)
}

// Terminator returns the end node closing the instance.
func (i Instance) Terminator() (Node, bool) {
	nodes := newNodeIterator(i.data, stopNever)
	for node, ok := nodes.Next(); ok; node, ok = nodes.Next() {
		if node.IsEnd() {
			return node, true
		}
	}
	return Node{}, false
}

// Len returns the size of the instance in bytes, end node included.
func (i Instance) Len() int {
	return len(i.data)
}

// Bytes returns the raw instance.
func (i Instance) Bytes() []byte {
	return i.data
}

// Equal compares the raw bytes of both instances.
func (i Instance) Equal(other Instance) bool {
	return bytes.Equal(i.data, other.data)
}

// DevicePath is a complete device path, from its first node to its
// end-entire node.
type DevicePath struct {
	data []byte
}

// SizeInBytes returns the size of the device path starting at b, the sum of
// all node lengths up to and including the first end-entire node. Bytes
// after that node are not inspected.
func SizeInBytes(b []byte) (int, error) {
	total := 0
	for {
		if total == len(b) {
			return 0, ErrMissingEndEntire
		}
		node, err := NodeFromBytes(b[total:])
		if err != nil {
			return 0, fmt.Errorf("node at offset %d: %w", total, err)
		}
		total += int(node.Length())
		if node.IsEndEntire() {
			return total, nil
		}
	}
}

// FromBytes bounds the device path at the start of b. The buffer may be
// longer than the path, as with load options carrying optional data.
func FromBytes(b []byte) (DevicePath, error) {
	size, err := SizeInBytes(b)
	if err != nil {
		return DevicePath{}, err
	}
	return DevicePath{data: b[:size:size]}, nil
}

// InstanceIter iterates the instances of the path.
func (p DevicePath) InstanceIter() *InstanceIterator {
	return &InstanceIterator{remaining: p.data}
}

// NodeIter iterates all the nodes of the path, crossing instance boundaries.
// End-instance nodes are yielded like any other node, only the end-entire
// node stops the iteration.
func (p DevicePath) NodeIter() *NodeIterator {
	return newNodeIterator(p.data, stopEndEntire)
}

// Len returns the size of the path in bytes, end-entire node included.
func (p DevicePath) Len() int {
	return len(p.data)
}

// Bytes returns the raw path.
func (p DevicePath) Bytes() []byte {
	return p.data
}

// Clone returns a path backed by its own copy of the bytes.
func (p DevicePath) Clone() DevicePath {
	return DevicePath{data: slices.Clone(p.data)}
}

// Equal compares the raw bytes of both paths.
func (p DevicePath) Equal(other DevicePath) bool {
	return bytes.Equal(p.data, other.data)
}

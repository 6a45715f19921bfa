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
	"bytes"
	"fmt"
)

// Node is a read-only view of a single device path node, header included.
// It borrows the underlying buffer.
type Node struct {
	data []byte
}

// NodeFromBytes returns a view of the node starting at b. The view covers
// exactly the declared node length, any following bytes are ignored.
func NodeFromBytes(b []byte) (Node, error) {
	h, err := HeaderFromBytes(b)
	if err != nil {
		return Node{}, err
	}
	length := int(h.Length)
	if length < HeaderSize {
		return Node{}, fmt.Errorf("%w: node declares %d bytes, minimum is %d", ErrInvalidLength, length, HeaderSize)
	}
	if length > len(b) {
		return Node{}, fmt.Errorf("%w: node declares %d bytes, only %d available", ErrInvalidLength, length, len(b))
	}
	return Node{data: b[:length:length]}, nil
}

// Header returns the decoded node header.
func (n Node) Header() Header {
	return ReadHeader(n.data)
}

// DeviceType returns the node type.
func (n Node) DeviceType() DeviceType {
	return DeviceType(n.data[0])
}

// SubType returns the node sub type.
func (n Node) SubType() DeviceSubType {
	return DeviceSubType(n.data[1])
}

// FullType returns the (type, sub type) pair of the node.
func (n Node) FullType() FullType {
	return FullType{DeviceType: n.DeviceType(), SubType: n.SubType()}
}

// Length returns the size of the node in bytes, including the header.
func (n Node) Length() uint16 {
	return uint16At(n.data, 2)
}

// IsEnd is true for both end-instance and end-entire nodes.
func (n Node) IsEnd() bool {
	return n.DeviceType() == DeviceTypeEnd
}

// IsEndInstance is true if the node ends a path instance but not the path.
func (n Node) IsEndInstance() bool {
	return n.FullType() == FullTypeEndInstance
}

// IsEndEntire is true if the node ends the entire device path.
func (n Node) IsEndEntire() bool {
	return n.FullType() == FullTypeEndEntire
}

// Data returns the node payload, everything after the header.
func (n Node) Data() []byte {
	return n.data[HeaderSize:]
}

// Bytes returns the raw node, header included.
func (n Node) Bytes() []byte {
	return n.data
}

// Equal compares the raw bytes of both nodes. Unknown node types compare
// correctly without decoding their payload.
func (n Node) Equal(other Node) bool {
	return bytes.Equal(n.data, other.data)
}

func (n Node) String() string {
	return fmt.Sprintf("%s(len=%d)", n.FullType(), n.Length())
}

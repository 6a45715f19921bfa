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
	"fmt"

	efi "github.com/canonical/go-efilib"
)

// HardDriveMediaLength is the fixed size of a hard drive media node.
const HardDriveMediaLength = 42

const (
	hdPartitionNumberOffset = 4
	hdPartitionStartOffset  = 8
	hdPartitionSizeOffset   = 16
	hdSignatureOffset       = 24
	hdSignatureSize         = 16
	hdPartitionFormatOffset = 40
	hdSignatureTypeOffset   = 41
)

// Signature type tags of a hard drive media node.
const (
	SignatureTypeNone efi.HardDriveSignatureType = 0x00
	SignatureTypeMBR  efi.HardDriveSignatureType = 0x01
	SignatureTypeGUID efi.HardDriveSignatureType = 0x02
)

// HardDriveMediaNode describes a partition on a hard drive.
type HardDriveMediaNode struct {
	node Node
}

// AsHardDriveMedia returns the node as a HardDriveMediaNode, false if it is
// of another kind. It panics if the node is not exactly HardDriveMediaLength
// bytes long, firmware must not report a different size for this record.
func (n Node) AsHardDriveMedia() (HardDriveMediaNode, bool) {
	if n.FullType() != FullTypeMediaHardDrive {
		return HardDriveMediaNode{}, false
	}
	if n.Length() != HardDriveMediaLength {
		panic(fmt.Sprintf("hard drive media device path node has length %d, expected %d", n.Length(), HardDriveMediaLength))
	}
	return HardDriveMediaNode{node: n}, true
}

// Node returns the generic view of the node.
func (h HardDriveMediaNode) Node() Node {
	return h.node
}

// PartitionNumber is the 1-based partition index, 0 means the whole disk.
func (h HardDriveMediaNode) PartitionNumber() uint32 {
	return uint32At(h.node.data, hdPartitionNumberOffset)
}

// PartitionStart is the starting LBA of the partition.
func (h HardDriveMediaNode) PartitionStart() uint64 {
	return uint64At(h.node.data, hdPartitionStartOffset)
}

// PartitionSize is the size of the partition in logical blocks.
func (h HardDriveMediaNode) PartitionSize() uint64 {
	return uint64At(h.node.data, hdPartitionSizeOffset)
}

// PartitionFormat is the partition table format, efi.LegacyMBR or efi.GPT.
// Other values are returned as is.
func (h HardDriveMediaNode) PartitionFormat() efi.MBRType {
	return efi.MBRType(h.node.data[hdPartitionFormatOffset])
}

// SignatureType returns the raw signature type tag.
func (h HardDriveMediaNode) SignatureType() efi.HardDriveSignatureType {
	return efi.HardDriveSignatureType(h.node.data[hdSignatureTypeOffset])
}

// PartitionSignature decodes the signature region according to its type tag:
// an efi.MBRHardDriveSignature for MBR, an efi.GUIDHardDriveSignature for
// GUID. It returns nil when the node carries no known signature.
func (h HardDriveMediaNode) PartitionSignature() efi.HardDriveSignature {
	raw := h.node.data[hdSignatureOffset : hdSignatureOffset+hdSignatureSize]
	switch h.SignatureType() {
	case SignatureTypeMBR:
		return efi.MBRHardDriveSignature(uint32At(raw, 0))
	case SignatureTypeGUID:
		var guid efi.GUID
		copy(guid[:], raw)
		return efi.GUIDHardDriveSignature(guid)
	default:
		return nil
	}
}

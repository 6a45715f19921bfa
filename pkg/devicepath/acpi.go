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

// ACPINodeLength is the size of an ACPI node: header, HID and UID.
const ACPINodeLength = 12

// ACPINode is an ACPI device path node.
type ACPINode struct {
	node Node
}

// AsACPI returns the node as an ACPINode, false if it is of another kind.
// It panics if the node does not have the fixed ACPI length.
func (n Node) AsACPI() (ACPINode, bool) {
	if n.FullType() != FullTypeACPI {
		return ACPINode{}, false
	}
	if n.Length() != ACPINodeLength {
		panic(fmt.Sprintf("acpi device path node has length %d, expected %d", n.Length(), ACPINodeLength))
	}
	return ACPINode{node: n}, true
}

// Node returns the generic view of the node.
func (a ACPINode) Node() Node {
	return a.node
}

// HID is the PnP hardware ID, a compressed EISA-type ID matching the _HID of
// the ACPI namespace.
func (a ACPINode) HID() efi.EISAID {
	return efi.EISAID(uint32At(a.node.data, 4))
}

// UID distinguishes devices sharing the same HID.
func (a ACPINode) UID() uint32 {
	return uint32At(a.node.data, 8)
}

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

package devicepath_test

import (
	efi "github.com/canonical/go-efilib"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rancher/elemental-devpath/pkg/devicepath"
)

var _ = Describe("ACPINode", Label("devicepath", "acpi"), func() {
	It("decodes the hardware and unique IDs", func() {
		raw, err := efi.DevicePath{
			&efi.ACPIDevicePathNode{HID: efi.EISAID(0x0a0341d0), UID: 3},
		}.Bytes()
		Expect(err).ToNot(HaveOccurred())

		node, err := devicepath.NodeFromBytes(raw)
		Expect(err).ToNot(HaveOccurred())
		acpi, ok := node.AsACPI()
		Expect(ok).To(BeTrue())
		Expect(acpi.Node().Length()).To(Equal(uint16(devicepath.ACPINodeLength)))
		Expect(acpi.HID().String()).To(Equal("PNP0a03"))
		Expect(acpi.UID()).To(Equal(uint32(3)))
	})

	It("does not match other node kinds", func() {
		node, err := devicepath.NodeFromBytes(mbrPartitionBytes)
		Expect(err).ToNot(HaveOccurred())
		_, ok := node.AsACPI()
		Expect(ok).To(BeFalse())
	})

	It("panics on a node of the wrong length", func() {
		node, err := devicepath.NodeFromBytes(addNode(nil, 0x02, 0x01, 1, 2, 3, 4))
		Expect(err).ToNot(HaveOccurred())
		Expect(func() { node.AsACPI() }).To(Panic())
	})
})

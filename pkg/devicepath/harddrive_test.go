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

var mbrPartitionBytes = []byte{
	0x04, 0x01, 0x2a, 0x00, 0x01, 0x00, 0x00, 0x00, 0x3f, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xc1, 0xbf, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, 0xfa, 0xfd, 0x1a, 0xbe,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01,
}

var guidPartitionBytes = []byte{
	0x04, 0x01, 0x2a, 0x00, 0x01, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x10, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0xa0, 0x39, 0xaa, 0x41,
	0x35, 0x3d, 0x84, 0x4f, 0xb1, 0x95, 0xae, 0x3a, 0x95, 0x0b, 0xfb, 0xad, 0x02, 0x02,
}

func hardDriveNode(raw []byte) devicepath.HardDriveMediaNode {
	GinkgoHelper()
	node, err := devicepath.NodeFromBytes(raw)
	Expect(err).ToNot(HaveOccurred())
	hd, ok := node.AsHardDriveMedia()
	Expect(ok).To(BeTrue())
	return hd
}

var _ = Describe("HardDriveMediaNode", Label("devicepath", "harddrive"), func() {
	It("decodes an MBR partition", func() {
		hd := hardDriveNode(mbrPartitionBytes)
		Expect(hd.Node().Length()).To(Equal(uint16(devicepath.HardDriveMediaLength)))
		Expect(hd.PartitionFormat()).To(Equal(efi.LegacyMBR))
		Expect(hd.PartitionNumber()).To(Equal(uint32(1)))
		Expect(hd.PartitionSize()).To(Equal(uint64(1032129)))
		Expect(hd.PartitionStart()).To(Equal(uint64(63)))
		Expect(hd.SignatureType()).To(Equal(devicepath.SignatureTypeMBR))
		Expect(hd.SignatureType()).To(Equal(efi.MBRHardDriveSignature(0).Type()))
		Expect(hd.PartitionSignature()).To(Equal(efi.MBRHardDriveSignature(0xBE1AFDFA)))
	})

	It("decodes a GPT partition", func() {
		hd := hardDriveNode(guidPartitionBytes)
		Expect(hd.PartitionFormat()).To(Equal(efi.MBRType(efi.GPT)))
		Expect(hd.PartitionNumber()).To(Equal(uint32(1)))
		Expect(hd.PartitionSize()).To(Equal(uint64(200704)))
		Expect(hd.PartitionStart()).To(Equal(uint64(128)))
		Expect(hd.SignatureType()).To(Equal(devicepath.SignatureTypeGUID))
		Expect(hd.SignatureType()).To(Equal(efi.GUIDHardDriveSignature{}.Type()))

		guid := efi.MakeGUID(0x41aa39a0, 0x3d35, 0x4f84, 0xb195, [6]uint8{0xae, 0x3a, 0x95, 0x0b, 0xfb, 0xad})
		Expect(hd.PartitionSignature()).To(Equal(efi.GUIDHardDriveSignature(guid)))
		Expect(hd.PartitionSignature().String()).To(Equal("41aa39a0-3d35-4f84-b195-ae3a950bfbad"))
	})

	It("returns no signature for unknown signature types", func() {
		raw := append([]byte(nil), guidPartitionBytes...)
		raw[41] = 0x00
		Expect(hardDriveNode(raw).SignatureType()).To(Equal(devicepath.SignatureTypeNone))
		Expect(hardDriveNode(raw).PartitionSignature()).To(BeNil())
		raw[41] = 0x07
		Expect(hardDriveNode(raw).PartitionSignature()).To(BeNil())
	})

	It("decodes at an odd offset", func() {
		buf := append([]byte{0x00}, mbrPartitionBytes...)
		hd := hardDriveNode(buf[1:])
		Expect(hd.PartitionSize()).To(Equal(uint64(1032129)))
	})

	It("does not match other node kinds", func() {
		node, err := devicepath.NodeFromBytes(addNode(nil, 0x04, 0x02, make([]byte, 20)...))
		Expect(err).ToNot(HaveOccurred())
		_, ok := node.AsHardDriveMedia()
		Expect(ok).To(BeFalse())
	})

	It("panics on a node of the wrong length", func() {
		node, err := devicepath.NodeFromBytes(addNode(nil, 0x04, 0x01, make([]byte, 40)...))
		Expect(err).ToNot(HaveOccurred())
		Expect(func() { node.AsHardDriveMedia() }).To(Panic())
	})

	It("decodes nodes serialized by go-efilib", func() {
		guid := efi.MakeGUID(0x1c5d5c8a, 0x0ef0, 0x4b5e, 0x9a1b, [6]uint8{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})
		raw, err := efi.DevicePath{
			&efi.HardDriveDevicePathNode{
				PartitionNumber: 2,
				PartitionStart:  0x800,
				PartitionSize:   0x32000,
				Signature:       efi.GUIDHardDriveSignature(guid),
				MBRType:         efi.GPT,
			},
		}.Bytes()
		Expect(err).ToNot(HaveOccurred())

		dp, err := devicepath.FromBytes(raw)
		Expect(err).ToNot(HaveOccurred())
		node, ok := dp.NodeIter().Next()
		Expect(ok).To(BeTrue())
		hd, ok := node.AsHardDriveMedia()
		Expect(ok).To(BeTrue())
		Expect(hd.PartitionNumber()).To(Equal(uint32(2)))
		Expect(hd.PartitionStart()).To(Equal(uint64(0x800)))
		Expect(hd.PartitionSize()).To(Equal(uint64(0x32000)))
		Expect(hd.PartitionFormat()).To(Equal(efi.MBRType(efi.GPT)))
		Expect(hd.PartitionSignature()).To(Equal(efi.GUIDHardDriveSignature(guid)))
	})
})

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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rancher/elemental-devpath/pkg/devicepath"
)

var _ = Describe("Node", Label("devicepath", "node"), func() {
	Describe("header", func() {
		It("decodes type, sub type and little-endian length", func() {
			h := devicepath.ReadHeader([]byte{0x04, 0x01, 0x2a, 0x00})
			Expect(h.DeviceType).To(Equal(devicepath.DeviceTypeMedia))
			Expect(h.SubType).To(Equal(devicepath.SubTypeMediaHardDrive))
			Expect(h.Length).To(Equal(uint16(42)))
			Expect(h.FullType()).To(Equal(devicepath.FullTypeMediaHardDrive))
		})

		It("rejects truncated headers", func() {
			_, err := devicepath.HeaderFromBytes([]byte{0x7f, 0xff, 0x04})
			Expect(err).To(MatchError(devicepath.ErrInvalidLength))
		})

		It("keeps unknown types representable", func() {
			h := devicepath.ReadHeader([]byte{0xa0, 0xb0, 0x04, 0x00})
			Expect(h.DeviceType.String()).To(Equal("DeviceType(0xa0)"))
			Expect(h.SubType.String()).To(Equal("0xb0"))
			Expect(devicepath.SubTypeEndInstance.String()).To(Equal("0x01"))
			Expect(h.FullType().Name()).To(BeEmpty())
			Expect(h.FullType().String()).To(Equal("DeviceType(0xa0)/0xb0"))
		})
	})

	Describe("view", func() {
		var raw []byte

		BeforeEach(func() {
			raw = addNode(nil, 0x01, 0x01, 0x00, 0x1f)
			raw = append(raw, 0xaa, 0xbb)
		})

		It("is bounded to the declared length", func() {
			node, err := devicepath.NodeFromBytes(raw)
			Expect(err).ToNot(HaveOccurred())
			Expect(node.DeviceType()).To(Equal(devicepath.DeviceTypeHardware))
			Expect(node.SubType()).To(Equal(devicepath.SubTypeHardwarePCI))
			Expect(node.FullType().Name()).To(Equal("pci"))
			Expect(node.Length()).To(Equal(uint16(6)))
			Expect(node.Header().Length).To(Equal(uint16(6)))
			Expect(node.Data()).To(Equal([]byte{0x00, 0x1f}))
			Expect(node.Bytes()).To(HaveLen(6))
			Expect(node.String()).To(Equal("pci(len=6)"))
		})

		It("rejects lengths below the header size", func() {
			_, err := devicepath.NodeFromBytes([]byte{0x01, 0x01, 0x03, 0x00})
			Expect(err).To(MatchError(devicepath.ErrInvalidLength))
		})

		It("rejects lengths beyond the buffer", func() {
			_, err := devicepath.NodeFromBytes(raw[:5])
			Expect(err).To(MatchError(devicepath.ErrInvalidLength))
		})
	})

	DescribeTable("end node detection",
		func(deviceType, subType uint8, end, endInstance, endEntire bool) {
			node, err := devicepath.NodeFromBytes(addNode(nil, deviceType, subType))
			Expect(err).ToNot(HaveOccurred())
			Expect(node.IsEnd()).To(Equal(end))
			Expect(node.IsEndInstance()).To(Equal(endInstance))
			Expect(node.IsEndEntire()).To(Equal(endEntire))
		},
		Entry("end entire", uint8(0x7f), uint8(0xff), true, false, true),
		Entry("end instance", uint8(0x7f), uint8(0x01), true, true, false),
		Entry("end with unknown sub type", uint8(0x7f), uint8(0x02), true, false, false),
		Entry("sub type 0xff of another type", uint8(0x04), uint8(0xff), false, false, false),
		Entry("media file path", uint8(0x04), uint8(0x04), false, false, false),
	)

	Describe("equality", func() {
		It("only compares bytes within the node length", func() {
			a := append(addNode(nil, 0xa0, 0xb0, 1, 2, 3), 0x11)
			b := append(addNode(nil, 0xa0, 0xb0, 1, 2, 3), 0x22, 0x33)

			na, err := devicepath.NodeFromBytes(a)
			Expect(err).ToNot(HaveOccurred())
			nb, err := devicepath.NodeFromBytes(b)
			Expect(err).ToNot(HaveOccurred())
			Expect(na.Equal(nb)).To(BeTrue())
		})

		It("detects a change of any byte within the node", func() {
			a := addNode(nil, 0xa0, 0xb0, 1, 2, 3)
			na, err := devicepath.NodeFromBytes(a)
			Expect(err).ToNot(HaveOccurred())

			for i := range a {
				b := append([]byte(nil), a...)
				b[i] ^= 0x40
				nb, err := devicepath.NodeFromBytes(b)
				if err != nil {
					// the length field was changed past the buffer
					continue
				}
				Expect(na.Equal(nb)).To(BeFalse(), "byte %d", i)
			}
		})
	})
})

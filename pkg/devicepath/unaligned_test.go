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

var _ = Describe("UnalignedSlice", Label("devicepath", "unaligned"), func() {
	var buf []byte

	BeforeEach(func() {
		// The leading byte pushes every element to an odd address
		buf = []byte{0xff, 0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0xee}
	})

	It("reads elements at any offset", func() {
		s := devicepath.NewUint16Slice(buf[1:])
		Expect(s.Len()).To(Equal(3))
		Expect(s.IsEmpty()).To(BeFalse())
		for i, expected := range []uint16{1, 2, 3} {
			v, ok := s.Get(i)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(expected))
		}
	})

	It("reports out of range indexes as absent", func() {
		s := devicepath.NewUint16Slice(buf[1:])
		_, ok := s.Get(3)
		Expect(ok).To(BeFalse())
		_, ok = s.Get(-1)
		Expect(ok).To(BeFalse())
	})

	It("is empty for a zero value or a short buffer", func() {
		var s devicepath.UnalignedSlice[uint32]
		Expect(s.IsEmpty()).To(BeTrue())
		Expect(devicepath.NewUint32Slice(buf[:3]).IsEmpty()).To(BeTrue())
		Expect(devicepath.NewUint64Slice(nil).Len()).To(Equal(0))
	})

	It("decodes little-endian wider elements", func() {
		Expect(devicepath.NewUint32Slice(buf[1:5]).ToSlice()).To(Equal([]uint32{0x00020001}))
		Expect(devicepath.NewUint64Slice(buf).ToSlice()).To(Equal([]uint64{0xee000300020001ff}))
	})

	It("copies into a destination of the same length", func() {
		s := devicepath.NewUint16Slice(buf[1:])
		dest := make([]uint16, 3)
		s.CopyTo(dest)
		Expect(dest).To(Equal([]uint16{1, 2, 3}))
	})

	It("panics when copying into a destination of another length", func() {
		s := devicepath.NewUint16Slice(buf[1:])
		Expect(func() { s.CopyTo(make([]uint16, 2)) }).To(Panic())
		Expect(func() { s.CopyTo(make([]uint16, 4)) }).To(Panic())
	})

	It("iterates and restarts", func() {
		s := devicepath.NewUint16Slice(buf[1:])
		for range 2 {
			var got []uint16
			it := s.Iter()
			for v, ok := it.Next(); ok; v, ok = it.Next() {
				got = append(got, v)
			}
			Expect(got).To(Equal([]uint16{1, 2, 3}))
		}

		var all []uint16
		for v := range s.All() {
			all = append(all, v)
		}
		Expect(all).To(Equal([]uint16{1, 2, 3}))
	})
})

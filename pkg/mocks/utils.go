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

package mocks

import (
	"encoding/binary"
	"fmt"

	efi "github.com/canonical/go-efilib"
)

const bootAttrs = efi.AttributeNonVolatile | efi.AttributeBootserviceAccess | efi.AttributeRuntimeAccess

// FakeBootEntries stores the given load options as Boot#### variables, keyed by
// boot number, and sets BootOrder to order. Used for unit testing only.
func FakeBootEntries(vars *MockEFIVariables, entries map[int]*efi.LoadOption, order ...int) error {
	for num, opt := range entries {
		data, err := opt.Bytes()
		if err != nil {
			return fmt.Errorf("cannot encode Boot%04X: %w", num, err)
		}
		err = vars.SetVariable(efi.GlobalVariable, fmt.Sprintf("Boot%04X", num), data, bootAttrs)
		if err != nil {
			return err
		}
	}
	if len(order) == 0 {
		return nil
	}
	data := make([]byte, 0, 2*len(order))
	for _, num := range order {
		data = binary.LittleEndian.AppendUint16(data, uint16(num))
	}
	return vars.SetVariable(efi.GlobalVariable, "BootOrder", data, bootAttrs)
}

// FakeLoadOption returns an active load option booting path from a GPT partition.
func FakeLoadOption(description, path string) *efi.LoadOption {
	return &efi.LoadOption{
		Attributes:  efi.LoadOptionActive,
		Description: description,
		FilePath: efi.DevicePath{
			&efi.ACPIDevicePathNode{HID: efi.EISAID(0x0a0341d0), UID: 0},
			&efi.PCIDevicePathNode{Function: 0, Device: 0x1d},
			&efi.HardDriveDevicePathNode{
				PartitionNumber: 1,
				PartitionStart:  2048,
				PartitionSize:   131072,
				Signature:       efi.GUIDHardDriveSignature(FakePartitionGUID),
				MBRType:         efi.GPT,
			},
			efi.FilePathDevicePathNode(path),
		},
	}
}

// FakePartitionGUID is the partition signature used by FakeLoadOption
var FakePartitionGUID = efi.MakeGUID(0xc12a7328, 0xf81f, 0x11d2, 0xba4b, [6]uint8{0x00, 0xa0, 0xc9, 0x3e, 0xc9, 0x3b})

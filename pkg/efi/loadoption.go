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

package efi

import (
	"errors"
	"fmt"

	efi "github.com/canonical/go-efilib"

	"github.com/rancher/elemental-devpath/pkg/devicepath"
)

// ErrInvalidLoadOption is wrapped by every load option decoding failure
var ErrInvalidLoadOption = errors.New("invalid load option")

// attributes (u32) + file path list length (u16)
const loadOptionHeaderSize = 6

// LoadOption is a decoded EFI_LOAD_OPTION. Its device paths and optional data
// borrow the buffer it was parsed from.
type LoadOption struct {
	Attributes   efi.LoadOptionAttributes
	Description  devicepath.CString16
	FilePaths    []devicepath.DevicePath
	OptionalData []byte
}

// ParseLoadOption decodes the contents of a Boot#### variable.
func ParseLoadOption(data []byte) (*LoadOption, error) {
	if len(data) < loadOptionHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is too short for the header", ErrInvalidLoadOption, len(data))
	}
	attrs, _ := devicepath.NewUint32Slice(data[0:4]).Get(0)
	listLen, _ := devicepath.NewUint16Slice(data[4:6]).Get(0)

	desc := devicepath.NewUint16Slice(data[loadOptionHeaderSize:])
	descLen := -1
	for i := 0; i < desc.Len(); i++ {
		if code, _ := desc.Get(i); code == 0 {
			descLen = i + 1
			break
		}
	}
	if descLen < 0 {
		return nil, fmt.Errorf("%w: description: %w", ErrInvalidLoadOption, devicepath.ErrNotNulTerminated)
	}
	codes := make([]uint16, descLen)
	devicepath.NewUint16Slice(data[loadOptionHeaderSize : loadOptionHeaderSize+2*descLen]).CopyTo(codes)
	description, err := devicepath.NewCString16(codes)
	if err != nil {
		return nil, fmt.Errorf("%w: description: %w", ErrInvalidLoadOption, err)
	}

	off := loadOptionHeaderSize + 2*descLen
	end := off + int(listLen)
	if listLen == 0 {
		return nil, fmt.Errorf("%w: empty file path list", ErrInvalidLoadOption)
	}
	if end > len(data) {
		return nil, fmt.Errorf("%w: file path list of %d bytes exceeds the %d bytes left", ErrInvalidLoadOption, listLen, len(data)-off)
	}

	opt := &LoadOption{
		Attributes:   efi.LoadOptionAttributes(attrs),
		Description:  description,
		OptionalData: data[end:],
	}
	for list := data[off:end]; len(list) > 0; {
		path, err := devicepath.FromBytes(list)
		if err != nil {
			return nil, fmt.Errorf("%w: file path %d: %w", ErrInvalidLoadOption, len(opt.FilePaths), err)
		}
		opt.FilePaths = append(opt.FilePaths, path)
		list = list[path.Len():]
	}
	return opt, nil
}

// FilePath returns the device path of the boot application.
func (o *LoadOption) FilePath() devicepath.DevicePath {
	return o.FilePaths[0]
}

func (o *LoadOption) IsActive() bool {
	return o.Attributes&efi.LoadOptionActive > 0
}

func (o *LoadOption) IsHidden() bool {
	return o.Attributes&efi.LoadOptionHidden > 0
}

// Storage locates the partition and file the option boots from.
func (o *LoadOption) Storage() (*Storage, error) {
	return FindStorage(o.FilePath())
}
